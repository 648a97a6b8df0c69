package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact mensaje recibido por el formulario público de contacto.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"` // new hasta que alguien lo atiende
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
