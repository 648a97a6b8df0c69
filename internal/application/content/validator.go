package content

import (
	"time"

	"github.com/jhoicas/museum-portal/internal/domain"
)

// requiredFields conjunto de campos requeridos por tipo de registro.
var requiredFields = map[Kind][]string{
	KindCollection: {"title", "description", "category", "period", "origin"},
	KindExhibition: {"title", "description", "type", "startDate"},
	KindEvent:      {"title", "description", "date", "location"},
	KindNews:       {"title", "excerpt", "content"},
}

// dateLayouts formatos de fecha aceptados en los formularios.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// Validate aplica las reglas de campos requeridos del tipo indicado.
// Un campo cuenta como ausente si no viene o queda vacío tras el trim.
// El error enumera TODOS los campos ausentes, no solo el primero.
func Validate(d Draft, kind Kind) error {
	required, ok := requiredFields[kind]
	if !ok {
		return &domain.ValidationError{Messages: []string{"tipo de registro desconocido: " + string(kind)}}
	}
	var missing []string
	for _, f := range required {
		if !d.Has(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &domain.ValidationError{Fields: missing}
	}
	return nil
}

// ParseDate parsea un campo fecha a su representación canónica (time.Time).
// Devuelve *domain.InvalidDateError si el valor no es una fecha válida.
func ParseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &domain.InvalidDateError{Field: field, Value: value}
}
