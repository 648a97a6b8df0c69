package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveAccount    = errors.New("cuenta inactiva")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrStoreUnavailable   = errors.New("almacén de datos no disponible")
)

// ValidationError agrupa los problemas de un draft antes de persistir.
// Fields enumera TODOS los campos requeridos ausentes, no solo el primero,
// para que el cliente pueda mostrarlos de una vez. Messages lleva los
// mensajes por campo cuando el rechazo viene del esquema del store.
type ValidationError struct {
	Fields   []string
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return "campos requeridos ausentes: " + strings.Join(e.Fields, ", ")
	}
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return "validación fallida"
}

// InvalidDateError indica que un campo fecha no parsea a una fecha válida.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("formato de fecha inválido en el campo %q: %q", e.Field, e.Value)
}

// UploadError envuelve un fallo del almacén de archivos (tamaño, tipo, IO).
// Se reporta al cliente como 400 con el mensaje de la librería de storage.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "subida de archivo fallida: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }
