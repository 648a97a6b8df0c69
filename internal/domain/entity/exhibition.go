package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tipos válidos para Exhibition.
const (
	ExhibitionPermanent = "Permanent"
	ExhibitionTemporary = "Temporary"
	ExhibitionSpecial   = "Special"
)

// ValidExhibitionType indica si t es uno de los tipos permitidos.
func ValidExhibitionType(t string) bool {
	return t == ExhibitionPermanent || t == ExhibitionTemporary || t == ExhibitionSpecial
}

// Exhibition exposición del museo, permanente o con rango de fechas.
type Exhibition struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Type        string             `bson:"type" json:"type"` // Permanent, Temporary, Special
	StartDate   time.Time          `bson:"startDate" json:"startDate"`
	EndDate     *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status      string             `bson:"status" json:"status"` // upcoming por defecto
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
