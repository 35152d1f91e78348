// Package pdf genera la etiqueta imprimible de un activo fijo con Maroto v2.
//
// Layout (A5):
//
//	┌──────────────────────────────────────┐
//	│  Nombre del activo / nombre árabe    │
//	│  Categoría │ Código                  │
//	│  ──────────────────────────────────  │
//	│  CÓDIGO DE BARRAS (Code128)          │
//	│  product_code                        │
//	│  ──────────────────────────────────  │
//	│  Sede / Bodega                       │
//	└──────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Activos-api/internal/application/reporting"
)

var _ reporting.AssetLabelGenerator = (*MarotoLabelGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implementa reporting.AssetLabelGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator construye el generador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateAssetLabel genera el PDF de la etiqueta y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateAssetLabel(_ context.Context, data reporting.LabelData) ([]byte, error) {
	if data.Asset == nil {
		return nil, fmt.Errorf("pdf: etiqueta sin activo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta "+data.Asset.ProductCode, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(titleRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(barcodeRows(data.Asset.ProductCode)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(locationRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(data reporting.LabelData) core.Row {
	a := data.Asset
	// Solo texto latino: las fuentes estándar del PDF no tienen glifos árabes.
	return row.New(22).Add(
		col.New(8).Add(
			text.New(a.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Categoría: "+nonEmpty(a.Category, "—"), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("CÓDIGO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(a.ProductCode, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		),
	)
}

func barcodeRows(productCode string) []core.Row {
	return []core.Row{
		row.New(3),
		row.New(30).Add(
			col.New(12).Add(code.NewBar(productCode, props.Barcode{Percent: 90, Center: true})),
		),
		row.New(8).Add(
			col.New(12).Add(text.New(productCode, props.Text{Size: 10, Align: align.Center, Top: 2})),
		),
	}
}

func locationRow(data reporting.LabelData) core.Row {
	branch, warehouse := "—", "—"
	if data.Branch != nil {
		branch = data.Branch.Name
	}
	if data.Warehouse != nil {
		warehouse = data.Warehouse.Name
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("SEDE", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(branch, props.Text{Size: 9, Top: 5}),
		),
		col.New(6).Add(
			text.New("BODEGA", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(warehouse, props.Text{Size: 9, Align: align.Right, Top: 5}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
