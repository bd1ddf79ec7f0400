package catalog

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner transacción para el borrado en cascada (movimientos + producto).
// Misma forma que ledger.TxRunner; el adaptador postgres implementa ambos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
