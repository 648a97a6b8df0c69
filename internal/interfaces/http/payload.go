package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/content"
	"github.com/jhoicas/museum-portal/internal/domain"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
)

// imageField nombre del campo de archivo en los formularios de administración.
const imageField = "image"

// ParseDraft normaliza una petición de alta/edición de contenido en un único
// draft, sea cual sea su content-type:
//
//   - multipart/form-data (solo si el header lo declara): se extrae el campo
//     de archivo "image" y se guarda en el store; la ruta resultante pasa a
//     ser la imagen del draft. Los campos array se colapsan a su primer
//     elemento (peculiaridad de algunos clientes multipart) y todo string
//     se recorta.
//   - cualquier otro content-type: el cuerpo se parsea como JSON plano.
//
// Si no hubo archivo pero el cuerpo trae imageUrl (o un image con URL), esa
// URL pasa a ser la imagen del draft y el campo imageUrl nunca se persiste.
// Un fallo del store de archivos se devuelve como *domain.UploadError
// (400 para el cliente, con el mensaje de la librería de storage).
func ParseDraft(c *fiber.Ctx, store *storage.Store) (content.Draft, error) {
	draft := content.Draft{Fields: map[string]string{}}

	ct := c.Get(fiber.HeaderContentType)
	if strings.Contains(ct, fiber.MIMEMultipartForm) {
		if err := parseMultipart(c, store, &draft); err != nil {
			return content.Draft{}, err
		}
	} else {
		if err := parseJSONBody(c, &draft); err != nil {
			return content.Draft{}, err
		}
	}

	// Sin archivo subido, una URL de imagen en el cuerpo gana el puesto.
	if draft.Image == "" {
		if url := draft.Fields["imageUrl"]; url != "" {
			draft.Image = url
		} else if url := draft.Fields[imageField]; url != "" {
			draft.Image = url
		}
	}
	delete(draft.Fields, "imageUrl")
	delete(draft.Fields, imageField)

	return draft, nil
}

func parseMultipart(c *fiber.Ctx, store *storage.Store, draft *content.Draft) error {
	form, err := c.MultipartForm()
	if err != nil {
		return &domain.UploadError{Err: fmt.Errorf("multipart malformado: %w", err)}
	}
	for name, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		// Campos array → primer elemento; strings siempre recortados.
		draft.Fields[name] = strings.TrimSpace(values[0])
	}
	files := form.File[imageField]
	if len(files) == 0 {
		return nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return &domain.UploadError{Err: err}
	}
	defer f.Close()
	publicPath, err := store.Save(fh.Filename, fh.Size, f)
	if err != nil {
		return &domain.UploadError{Err: err}
	}
	draft.Image = publicPath
	return nil
}

func parseJSONBody(c *fiber.Ctx, draft *content.Draft) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return &domain.ValidationError{Messages: []string{"cuerpo JSON inválido"}}
	}
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			draft.Fields[name] = strings.TrimSpace(v)
		case float64:
			draft.Fields[name] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			draft.Fields[name] = strconv.FormatBool(v)
		case nil:
			// ausente a efectos de validación
		default:
			// objetos/arrays anidados no tienen lugar en un draft plano
		}
	}
	return nil
}
