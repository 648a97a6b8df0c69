package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection pieza o conjunto del catálogo del museo.
// Image guarda una ruta bajo /uploads o una URL absoluta; nunca ambas.
type Collection struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Period      string             `bson:"period" json:"period"`
	Origin      string             `bson:"origin" json:"origin"`
	Material    string             `bson:"material,omitempty" json:"material,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Status      string             `bson:"status" json:"status"` // active por defecto
	ViewCount   int                `bson:"viewCount" json:"viewCount"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
