package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/museum-portal/internal/domain"
)

// Código de WriteError cuando el documento no pasa el validador de la colección.
const codeDocumentValidationFailure = 121

// objectID convierte un id hex a ObjectID. Un id malformado no puede
// referenciar ningún documento, así que se trata como no encontrado.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNotFound
	}
	return oid, nil
}

// translateWriteError traduce errores del store a errores de dominio:
//   - validación de esquema (121) → *domain.ValidationError con los mensajes del store
//   - clave duplicada (unique email) → domain.ErrEmailAlreadyExists
//
// Cualquier otro error se devuelve tal cual (fallo de store desconocido → 500).
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		var msgs []string
		for _, e := range we.WriteErrors {
			if e.Code == codeDocumentValidationFailure {
				msgs = append(msgs, e.Message)
			}
		}
		if len(msgs) > 0 {
			return &domain.ValidationError{Messages: msgs}
		}
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailAlreadyExists
	}
	return err
}
