package ports

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// DescriptionService define el puerto de salida hacia el proveedor de IA que
// redacta descripciones de producto. Cualquier adaptador (Anthropic, Gemini,
// mock) debe implementar esta interfaz; la aplicación solo conoce el contrato.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type DescriptionService interface {
	GenerateDescription(ctx context.Context, sku, name string) (string, error)
}

// ImageStorage define el puerto hacia el almacenamiento de imágenes de producto.
// Save devuelve la ruta pública del archivo guardado ("" si data está vacío).
type ImageStorage interface {
	Save(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// LabelGenerator genera la etiqueta imprimible (PDF con código QR) de un producto.
type LabelGenerator interface {
	GenerateProductLabel(product *entity.Product) ([]byte, error)
}
