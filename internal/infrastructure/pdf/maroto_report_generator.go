// Package pdf implementa la generación del reporte imprimible de movimientos
// (kárdex) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | N° | Detalle | Líneas | Cant | Usuario│
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de movimientos listados                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de movimientos usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF del kárdex y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(movements []*entity.Movement, title string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	return row.New(10).Add(
		text.NewCol(8, title, props.Text{
			Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
		}),
		text.NewCol(4, "Generado: "+time.Now().Format("2006-01-02 15:04"), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 3,
		}),
	)
}

func tableHeaderRow() core.Row {
	return row.New(7).Add(
		text.NewCol(2, "Fecha", headerCell()),
		text.NewCol(2, "Tipo", headerCell()),
		text.NewCol(1, "N°", headerCell()),
		text.NewCol(4, "Detalle", headerCell()),
		text.NewCol(1, "Líneas", headerCell()),
		text.NewCol(2, "Usuario", headerCell()),
	)
}

func headerCell() props.Text {
	return props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
}

func movementRow(m *entity.Movement) core.Row {
	detail := m.Detail
	if m.Document != nil && m.Document.Number != "" {
		detail = fmt.Sprintf("%s %s — %s", m.Document.Type, m.Document.Number, m.Detail)
	}
	return row.New(6).Add(
		text.NewCol(2, m.Date.Format("2006-01-02"), bodyCell()),
		text.NewCol(2, m.Kind, bodyCell()),
		text.NewCol(1, strconv.FormatInt(m.Seq, 10), bodyCell()),
		text.NewCol(4, detail, bodyCell()),
		text.NewCol(1, strconv.Itoa(len(m.Items)), bodyCell()),
		text.NewCol(2, m.User, bodyCell()),
	)
}

func bodyCell() props.Text {
	return props.Text{Size: 8}
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		text.NewCol(12, fmt.Sprintf("%d movimientos listados", total), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 2,
		}),
	)
}
