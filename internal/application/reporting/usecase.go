// Package reporting agrupa las lecturas del dashboard, el mapa de bodega y la
// exportación del historial de movimientos (CSV y XLSX).
package reporting

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// lowStockThreshold umbral de alerta de stock bajo del dashboard.
const lowStockThreshold = 10

// chartTopN barras del gráfico de stock.
const chartTopN = 10

// UseCase lecturas de reporting. Sin efectos de escritura.
type UseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
	reportRepo  repository.ReportRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	reportRepo repository.ReportRepository,
) *UseCase {
	return &UseCase{productRepo: productRepo, movRepo: movRepo, reportRepo: reportRepo}
}

// DashboardStats tarjetas + gráfico del dashboard principal.
func (uc *UseCase) DashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	totalSKUs, valuation, lowStock, err := uc.reportRepo.Stats(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}
	bars, err := uc.reportRepo.TopStock(ctx, chartTopN)
	if err != nil {
		return nil, err
	}
	chart := make([]dto.StockBarDTO, 0, len(bars))
	for _, b := range bars {
		chart = append(chart, dto.StockBarDTO{Name: b.Name, Stock: b.Stock})
	}
	return &dto.DashboardStatsDTO{
		TotalSKUs:      totalSKUs,
		TotalValuation: valuation,
		LowStockAlert:  lowStock,
		StockChart:     chart,
	}, nil
}

// WarehouseMap productos ordenados por ubicación física.
func (uc *UseCase) WarehouseMap(ctx context.Context) ([]dto.WarehouseSlotDTO, error) {
	list, err := uc.productRepo.ListByLocation(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseSlotDTO, 0, len(list))
	for _, p := range list {
		out = append(out, dto.WarehouseSlotDTO{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			Stock:     p.Stock,
			Location:  p.Location,
		})
	}
	return out, nil
}

// historyFor carga producto + historial completo (más reciente primero) para un export.
func (uc *UseCase) historyFor(ctx context.Context, productID int64) (*entity.Product, []*entity.StockMovement, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	history, err := uc.movRepo.AllByProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	return product, history, nil
}
