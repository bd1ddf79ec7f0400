package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ActivityResult es una fila del historial global de actividad
// (movimiento + datos del producto al que pertenece).
type ActivityResult struct {
	Movement    entity.StockMovement
	ProductName string
	SKU         string
}

// StockMovementRepository define el puerto de persistencia para el libro de movimientos.
// Los movimientos son append-only: no hay Update y el único Delete es el borrado
// en cascada cuando se elimina el producto.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error)
	// AllByProduct devuelve el historial completo, el más reciente primero (export).
	AllByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error)
	ListRecent(ctx context.Context, limit int) ([]ActivityResult, error)
	DeleteByProduct(ctx context.Context, productID int64) error
}

// OutflowResult agrega las salidas (OUT) de un producto en una ventana de tiempo.
type OutflowResult struct {
	ProductID   int64
	SKU         string
	ProductName string
	Stock       int64
	TotalOut    int64
}

// StockBar es una barra del gráfico de stock del dashboard.
type StockBar struct {
	Name  string
	Stock int64
}

// ReportRepository consultas de solo lectura para el dashboard y el asesor de reposición.
type ReportRepository interface {
	// Stats devuelve total de SKUs, valorización total (stock × precio) y
	// cantidad de productos con stock bajo (stock < umbral).
	Stats(ctx context.Context, lowStockThreshold int64) (totalSKUs int64, totalValuation decimal.Decimal, lowStock int64, err error)
	TopStock(ctx context.Context, limit int) ([]StockBar, error)
	// TopOutflow suma las cantidades OUT por producto desde `since`, ordenadas
	// por salida total descendente, limitadas a topN.
	TopOutflow(ctx context.Context, since time.Time, topN int) ([]OutflowResult, error)
}
