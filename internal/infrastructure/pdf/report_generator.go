// Package pdf genera el reporte de estadísticas del panel de administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del museo  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sección | Registros                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de uso interno                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/museum-portal/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 94, Green: 53, Blue: 19}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// StatsReportGenerator genera el reporte de contadores usando Maroto v2.
type StatsReportGenerator struct {
	museumName string
}

// NewStatsReportGenerator construye el generador.
func NewStatsReportGenerator(museumName string) *StatsReportGenerator {
	return &StatsReportGenerator{museumName: museumName}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *StatsReportGenerator) Generate(stats *dto.StatsDTO, at time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Reporte de estadísticas", true).
		WithAuthor(g.museumName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(at))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range statRows(stats) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Documento de uso interno del panel de administración.", props.Text{
			Size: 7, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del museo (izq) y fecha de generación (der).
func (g *StatsReportGenerator) headerRow(at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.museumName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de estadísticas del portal", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(9).Add(
		h("Sección", 8, align.Left),
		h("Registros", 4, align.Right),
	)
}

func statRows(stats *dto.StatsDTO) []core.Row {
	entries := []struct {
		label string
		value int64
	}{
		{"Piezas de colección activas", stats.Collections},
		{"Exposiciones", stats.Exhibitions},
		{"Eventos", stats.Events},
		{"Noticias publicadas", stats.News},
		{"Mensajes de contacto sin atender", stats.Contacts},
	}
	rows := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row.New(8).Add(
			col.New(8).Add(text.New(e.label, props.Text{
				Size: 9, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(strconv.FormatInt(e.value, 10), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}
