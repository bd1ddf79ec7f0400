// Package advisor genera recomendaciones de reposición a partir del libro de
// movimientos: una extrapolación lineal de la demanda OUT reciente.
package advisor

import (
	"context"
	"math"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Valores por defecto de la proyección.
const (
	DefaultWindowDays  = 30
	DefaultTopN        = 3
	DefaultHorizonDays = 90

	// minSuggestedQty piso de la cantidad sugerida cuando la proyección da <= 0.
	minSuggestedQty = 10
	// noRiskSentinel días-hasta-vacío cuando no hubo salidas en la ventana.
	noRiskSentinel = 999
)

// UseCase asesor de reposición. Solo lectura: una agregación sobre
// stock_movements sin efectos de escritura ni transacción.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el asesor.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

// Recommend suma las salidas por producto en los últimos windowDays, rankea
// por salida total descendente y proyecta la demanda de los próximos
// horizonDays para los topN productos con más movimiento.
func (uc *UseCase) Recommend(ctx context.Context, windowDays, topN, horizonDays int) ([]dto.RestockSuggestionDTO, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	since := time.Now().AddDate(0, 0, -windowDays)
	rows, err := uc.reportRepo.TopOutflow(ctx, since, topN)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RestockSuggestionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, project(r, windowDays, horizonDays))
	}
	return out, nil
}

// project aplica la extrapolación lineal a un producto.
func project(r repository.OutflowResult, windowDays, horizonDays int) dto.RestockSuggestionDTO {
	avgDailyOut := float64(r.TotalOut) / float64(windowDays)

	suggested := int64(math.Ceil(avgDailyOut * float64(horizonDays)))
	if suggested <= 0 {
		suggested = minSuggestedQty
	}

	var daysToEmpty int64 = noRiskSentinel
	if avgDailyOut > 0 {
		daysToEmpty = int64(math.Floor(float64(r.Stock) / avgDailyOut))
	}

	return dto.RestockSuggestionDTO{
		ProductID:    r.ProductID,
		SKU:          r.SKU,
		ProductName:  r.ProductName,
		CurrentStock: r.Stock,
		TotalOut:     r.TotalOut,
		AvgDailyOut:  avgDailyOut,
		SuggestedQty: suggested,
		DaysToEmpty:  daysToEmpty,
	}
}
