package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News nota de prensa o novedad del portal.
// Content admite HTML; se sanitiza antes de persistir.
type News struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Status      string             `bson:"status" json:"status"` // published por defecto
	PublishDate time.Time          `bson:"publishDate" json:"publishDate"`
	Views       int                `bson:"views" json:"views"`
}
