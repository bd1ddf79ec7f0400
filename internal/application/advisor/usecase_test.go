package advisor_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/advisor"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas precargadas y captura los argumentos de la consulta.
type fakeReportRepo struct {
	rows      []repository.OutflowResult
	gotSince  time.Time
	gotTopN   int
	returnErr error
}

func (r *fakeReportRepo) Stats(context.Context, int64) (int64, decimal.Decimal, int64, error) {
	return 0, decimal.Zero, 0, nil
}

func (r *fakeReportRepo) TopStock(context.Context, int) ([]repository.StockBar, error) {
	return nil, nil
}

func (r *fakeReportRepo) TopOutflow(_ context.Context, since time.Time, topN int) ([]repository.OutflowResult, error) {
	r.gotSince = since
	r.gotTopN = topN
	return r.rows, r.returnErr
}

func TestRecommend_ProyeccionLineal(t *testing.T) {
	// 300 unidades OUT en 30 días → 10/día; horizonte 90 días → 900 sugeridas.
	// Con 40 en stock y 10/día de salida quedan 4 días de cobertura.
	repo := &fakeReportRepo{rows: []repository.OutflowResult{
		{ProductID: 1, SKU: "WH-001", ProductName: "Guantes", Stock: 40, TotalOut: 300},
	}}
	uc := advisor.NewUseCase(repo)

	out, err := uc.Recommend(context.Background(), 30, 3, 90)
	require.NoError(t, err)
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, int64(1), s.ProductID)
	assert.InDelta(t, 10.0, s.AvgDailyOut, 0.001)
	assert.Equal(t, int64(900), s.SuggestedQty)
	assert.Equal(t, int64(4), s.DaysToEmpty)
}

func TestRecommend_RedondeaSugerenciaHaciaArriba(t *testing.T) {
	// 100 OUT en 30 días → 3.333/día; 90 días → 300 exacto.
	// 10 OUT en 30 días → 0.333/día; 90 días → 30 exacto.
	// 7 OUT en 30 días → 0.2333/día; 90 días → 21 exacto.
	// Caso con resto: 8 OUT en 30 días → 0.2666/día; ×90 = 24 exacto... usamos
	// ventana 7 para forzar fracción: 5 OUT en 7 días ×90 = 64.28 → ceil 65.
	repo := &fakeReportRepo{rows: []repository.OutflowResult{
		{ProductID: 1, SKU: "WH-001", Stock: 100, TotalOut: 5},
	}}
	uc := advisor.NewUseCase(repo)

	out, err := uc.Recommend(context.Background(), 7, 1, 90)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(65), out[0].SuggestedQty, "la sugerencia redondea hacia arriba")
}

func TestRecommend_SinSalidas_UsaPisoYSentinela(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.OutflowResult{
		{ProductID: 2, SKU: "WH-002", Stock: 15, TotalOut: 0},
	}}
	uc := advisor.NewUseCase(repo)

	out, err := uc.Recommend(context.Background(), 30, 3, 90)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, int64(10), out[0].SuggestedQty, "sin demanda aplica la cantidad mínima sugerida")
	assert.Equal(t, int64(999), out[0].DaysToEmpty, "sin salidas no hay riesgo de quiebre")
}

func TestRecommend_DefaultsYVentana(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := advisor.NewUseCase(repo)

	before := time.Now().AddDate(0, 0, -advisor.DefaultWindowDays)
	_, err := uc.Recommend(context.Background(), 0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, advisor.DefaultTopN, repo.gotTopN, "topN <= 0 cae al default")
	assert.WithinDuration(t, before, repo.gotSince, 5*time.Second,
		"la ventana por defecto es de 30 días hacia atrás")
}

func TestRecommend_StockBajoDemandaAlta_DiasEnteros(t *testing.T) {
	// 45 unidades, 60 OUT en 30 días → 2/día → 22.5 días → floor 22.
	repo := &fakeReportRepo{rows: []repository.OutflowResult{
		{ProductID: 3, SKU: "WH-003", Stock: 45, TotalOut: 60},
	}}
	uc := advisor.NewUseCase(repo)

	out, err := uc.Recommend(context.Background(), 30, 1, 90)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(22), out[0].DaysToEmpty, "los días de cobertura se truncan hacia abajo")
}
