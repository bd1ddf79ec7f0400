package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = "id, product_id, type, quantity, notes, ending_stock, created_at"

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: no existe UPDATE de movimientos.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y fija el ID generado.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, notes, ending_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.Notes, movement.EndingStock, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto, el más reciente primero.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	return scanMovements(rows)
}

// AllByProduct devuelve el historial completo de un producto, el más reciente primero (export).
func (r *StockMovementRepo) AllByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("all movements by product: %w", err)
	}
	return scanMovements(rows)
}

// ListRecent devuelve los últimos movimientos de todos los productos con
// nombre y SKU (rastro global de auditoría).
func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]repository.ActivityResult, error) {
	query := `
		SELECT sm.id, sm.product_id, sm.type, sm.quantity, sm.notes, sm.ending_stock, sm.created_at,
		       p.name, p.sku
		FROM stock_movements sm
		JOIN products p ON p.id = sm.product_id
		ORDER BY sm.created_at DESC, sm.id DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []repository.ActivityResult
	for rows.Next() {
		var a repository.ActivityResult
		if err := rows.Scan(
			&a.Movement.ID, &a.Movement.ProductID, &a.Movement.Type, &a.Movement.Quantity,
			&a.Movement.Notes, &a.Movement.EndingStock, &a.Movement.CreatedAt,
			&a.ProductName, &a.SKU,
		); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// DeleteByProduct borra todos los movimientos de un producto (cascada del
// borrado de producto; siempre dentro de la transacción que borra el producto).
func (r *StockMovementRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_movements WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movements by product: %w", err)
	}
	return nil
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.Notes, &m.EndingStock, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
