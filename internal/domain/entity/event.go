package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event actividad puntual del museo (taller, charla, función).
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"` // hora legible, p.ej. "10:00 AM"
	Location    string             `bson:"location" json:"location"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Status      string             `bson:"status" json:"status"` // upcoming por defecto
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
