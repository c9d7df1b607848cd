// Package pdf exporta la tabla de categorías de precio a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: "Manage Categories"          │  Fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Bottom | Top | Portion | Company | Price       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de categorías                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	"github.com/jhoicas/category-admin/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 43, Green: 108, Blue: 176}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoCategoryPDFGenerator implementa usecase.CategoryPDFGenerator usando Maroto v2.
type MarotoCategoryPDFGenerator struct {
	author string
}

// NewMarotoCategoryPDFGenerator construye el generador; author se usa en los metadatos.
func NewMarotoCategoryPDFGenerator(author string) *MarotoCategoryPDFGenerator {
	return &MarotoCategoryPDFGenerator{author: author}
}

// GenerateCategoriesPDF genera el PDF con una fila por categoría, en el orden recibido.
func (g *MarotoCategoryPDFGenerator) GenerateCategoriesPDF(
	_ context.Context,
	categories []entity.Category,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Manage Categories", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(categories)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(categories)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Manage Categories", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// tableColumns ancho de cada columna en la grilla de 12.
var tableColumns = []struct {
	label string
	size  int
	align align.Type
}{
	{"ID", 1, align.Center},
	{"Bottom Threshold", 2, align.Right},
	{"Top Threshold", 2, align.Right},
	{"Portion Size", 2, align.Center},
	{"Company", 3, align.Left},
	{"Sales Price", 2, align.Right},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(tableColumns))
	for _, c := range tableColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

// tableRows una fila por categoría.
func tableRows(categories []entity.Category) []core.Row {
	result := make([]core.Row, 0, len(categories))
	for _, c := range categories {
		values := []string{
			strconv.FormatInt(c.ID, 10),
			c.BottomThreshold.String(),
			c.TopThreshold.String(),
			nonEmpty(c.PortionSize, "—"),
			nonEmpty(c.Company, "—"),
			c.SalesPrice.StringFixed(2),
		}
		cols := make([]core.Col, 0, len(tableColumns))
		for i, tc := range tableColumns {
			cols = append(cols, col.New(tc.size).Add(text.New(values[i], props.Text{
				Size: 8, Align: tc.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(7).Add(cols...))
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(fmt.Sprintf("Total: %d", total), props.Text{
			Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
