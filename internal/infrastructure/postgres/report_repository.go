package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard y el asesor de reposición.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reporting.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// Stats devuelve total de SKUs, valorización (stock × precio) y cantidad de
// productos bajo el umbral de stock. COALESCE protege la tabla vacía.
func (r *ReportRepo) Stats(ctx context.Context, lowStockThreshold int64) (int64, decimal.Decimal, int64, error) {
	const query = `
	SELECT
	    COUNT(*)                                                AS total_skus,
	    COALESCE(SUM(stock * price), 0)                         AS total_valuation,
	    COALESCE(SUM(CASE WHEN stock < $1 THEN 1 ELSE 0 END), 0) AS low_stock
	FROM products`

	var totalSKUs, lowStock int64
	var valuation decimal.Decimal
	err := r.pool.QueryRow(ctx, query, lowStockThreshold).Scan(&totalSKUs, &valuation, &lowStock)
	if err != nil {
		return 0, decimal.Zero, 0, fmt.Errorf("report.Stats: %w", err)
	}
	return totalSKUs, valuation, lowStock, nil
}

// TopStock devuelve los `limit` productos con más stock (gráfico del dashboard).
func (r *ReportRepo) TopStock(ctx context.Context, limit int) ([]repository.StockBar, error) {
	const query = `
	SELECT name, stock
	FROM products
	ORDER BY stock DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopStock: %w", err)
	}
	defer rows.Close()

	var bars []repository.StockBar
	for rows.Next() {
		var b repository.StockBar
		if err := rows.Scan(&b.Name, &b.Stock); err != nil {
			return nil, fmt.Errorf("report.TopStock scan: %w", err)
		}
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// TopOutflow suma las cantidades OUT por producto desde `since`, ordenadas por
// salida total descendente. Productos sin salidas en la ventana no aparecen.
func (r *ReportRepo) TopOutflow(ctx context.Context, since time.Time, topN int) ([]repository.OutflowResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.sku,
	    p.name,
	    p.stock,
	    COALESCE(SUM(sm.quantity), 0) AS total_out
	FROM products p
	JOIN stock_movements sm ON sm.product_id = p.id
	WHERE sm.type = 'OUT'
	  AND sm.created_at >= $1
	GROUP BY p.id, p.sku, p.name, p.stock
	ORDER BY total_out DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, since, topN)
	if err != nil {
		return nil, fmt.Errorf("report.TopOutflow: %w", err)
	}
	defer rows.Close()

	var results []repository.OutflowResult
	for rows.Next() {
		var row repository.OutflowResult
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.ProductName, &row.Stock, &row.TotalOut); err != nil {
			return nil, fmt.Errorf("report.TopOutflow scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
