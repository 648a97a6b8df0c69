// Package content normaliza, valida y construye los registros de contenido
// del portal (colecciones, exposiciones, eventos, noticias) a partir de los
// drafts que llegan por la API de administración.
package content

import "strings"

// Kind identifica el tipo de registro de contenido.
type Kind string

const (
	KindCollection Kind = "collection"
	KindExhibition Kind = "exhibition"
	KindEvent      Kind = "event"
	KindNews       Kind = "news"
)

// Draft es el borrador normalizado de un registro: campos escalares ya
// recortados (trim) más la imagen resuelta (ruta bajo /uploads o URL
// absoluta). Lo produce el normalizador de payloads sea cual sea el
// content-type de origen (multipart o JSON).
type Draft struct {
	Fields map[string]string
	Image  string
}

// Get devuelve el valor de un campo, o "" si no está presente.
func (d Draft) Get(name string) string {
	if d.Fields == nil {
		return ""
	}
	return d.Fields[name]
}

// Has indica si el campo está presente y no vacío tras el trim. Los drafts
// llegan recortados del normalizador, pero quien construya uno a mano recibe
// el mismo criterio.
func (d Draft) Has(name string) bool { return strings.TrimSpace(d.Get(name)) != "" }
