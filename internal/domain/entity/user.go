package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Estados válidos para User.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario del panel de administración.
// Los usuarios no se borran desde la API; solo cambia su status/role.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // único (índice en el store)
	PasswordHash string             `bson:"password" json:"-"`  // bcrypt, nunca expuesto
	Role         string             `bson:"role" json:"role"`   // admin, editor, viewer
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
