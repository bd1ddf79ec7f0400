package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bodega-api/internal/application/ports"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

var _ ports.LabelGenerator = (*LabelGenerator)(nil)

// LabelGenerator genera etiquetas de estantería en PDF con código QR usando
// maroto. El QR codifica el SKU para que los operadores puedan escanearlo al
// registrar movimientos.
type LabelGenerator struct{}

func NewLabelGenerator() *LabelGenerator {
	return &LabelGenerator{}
}

// GenerateProductLabel produce una etiqueta de 100x60 mm con QR del SKU,
// nombre y ubicación del producto.
func (g *LabelGenerator) GenerateProductLabel(product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(100, 60).
		WithLeftMargin(5).
		WithRightMargin(5).
		WithTopMargin(5).
		Build()

	m := maroto.New(cfg)

	m.AddRow(30,
		code.NewQrCol(4, product.SKU, props.Rect{
			Center:  true,
			Percent: 95,
		}),
		text.NewCol(8, product.Name, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Left,
			Top:   4,
		}),
	)

	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("SKU: %s", product.SKU), props.Text{
			Size:  9,
			Align: align.Left,
		}),
	)

	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Ubicación: %s", product.Location), props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}
