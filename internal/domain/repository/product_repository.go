package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) durante la
	// transacción en curso. Solo tiene sentido sobre un Querier transaccional.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateStock fija el contador de stock. Uso exclusivo del Ledger, dentro
	// de una transacción que ya bloqueó la fila.
	UpdateStock(ctx context.Context, id int64, stock int64) error
	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	List(ctx context.Context, query string, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, query string) (int, error)
	ListByLocation(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
