package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/catalog"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

const placeholderURL = "https://placehold.co/600x400?text=No+Image"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[int64]*entity.Product{},
		nextID:   1,
	}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	p.ID = r.nextID
	r.nextID++
	dup := *p
	r.products[p.ID] = &dup
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	dup := *p
	return &dup, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			dup := *p
			return &dup, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	dup := *p
	r.products[p.ID] = &dup
	return nil
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id int64, stock int64) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) Search(_ context.Context, term string, limit int) ([]*entity.Product, error) {
	return r.List(context.Background(), term, limit, 0)
}

func (r *fakeProductRepo) List(_ context.Context, _ string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		dup := *p
		out = append(out, &dup)
	}
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (r *fakeProductRepo) Count(context.Context, string) (int, error) {
	return len(r.products), nil
}

func (r *fakeProductRepo) ListByLocation(context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

// fakeCascadeTx ejecuta fn contra el mismo repo y un fake de movimientos que
// registra el borrado en cascada.
type fakeCascadeTx struct {
	repo          *fakeProductRepo
	deletedCalled []int64
}

func (tx *fakeCascadeTx) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(tx.repo, &cascadeMovRepo{tx: tx})
}

type cascadeMovRepo struct{ tx *fakeCascadeTx }

func (r *cascadeMovRepo) Create(context.Context, *entity.StockMovement) error { return nil }

func (r *cascadeMovRepo) ListByProduct(context.Context, int64, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *cascadeMovRepo) AllByProduct(context.Context, int64) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *cascadeMovRepo) ListRecent(context.Context, int) ([]repository.ActivityResult, error) {
	return nil, nil
}

func (r *cascadeMovRepo) DeleteByProduct(_ context.Context, productID int64) error {
	r.tx.deletedCalled = append(r.tx.deletedCalled, productID)
	return nil
}

type fakeDescSvc struct {
	description string
	err         error
	called      bool
}

func (s *fakeDescSvc) GenerateDescription(context.Context, string, string) (string, error) {
	s.called = true
	return s.description, s.err
}

type fakeImageStore struct {
	url string
	err error
}

func (s *fakeImageStore) Save(context.Context, string, string, []byte) (string, error) {
	return s.url, s.err
}

type fakeLabelGen struct{}

func (g *fakeLabelGen) GenerateProductLabel(*entity.Product) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testDeps struct {
	repo    *fakeProductRepo
	tx      *fakeCascadeTx
	descSvc *fakeDescSvc
	images  *fakeImageStore
}

func newTestUseCase() (*catalog.UseCase, *testDeps) {
	deps := &testDeps{
		repo:    newFakeProductRepo(),
		descSvc: &fakeDescSvc{},
		images:  &fakeImageStore{},
	}
	deps.tx = &fakeCascadeTx{repo: deps.repo}
	uc := catalog.NewUseCase(
		deps.repo, deps.tx, deps.descSvc, deps.images, &fakeLabelGen{},
		placeholderURL, nil,
	)
	return uc, deps
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:      "WH-001",
		Name:     "Guantes de nitrilo",
		Price:    decimal.NewFromInt(1000),
		Location: "A-01-01",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ProductoNuevoConStockCero(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	assert.Equal(t, "WH-001", out.SKU)
	assert.Equal(t, int64(0), out.Stock, "todo producto nace con stock 0")
	assert.Equal(t, placeholderURL, out.ImageURL, "sin upload se usa el placeholder")
}

func TestCreate_RecortaEspacios(t *testing.T) {
	uc, _ := newTestUseCase()

	in := validCreate()
	in.SKU = "  WH-001  "
	in.Name = " Guantes de nitrilo "
	in.Location = " A-01-01 "

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "WH-001", out.SKU)
	assert.Equal(t, "Guantes de nitrilo", out.Name)
	assert.Equal(t, "A-01-01", out.Location)
}

func TestCreate_SKUDuplicado_RetornaConflicto(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), validCreate())
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := newTestUseCase()

	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sku muy corto", func(in *dto.CreateProductRequest) { in.SKU = "AB" }},
		{"nombre muy corto", func(in *dto.CreateProductRequest) { in.Name = "ab" }},
		{"ubicación muy corta", func(in *dto.CreateProductRequest) { in.Location = "A" }},
		{"precio bajo el mínimo", func(in *dto.CreateProductRequest) { in.Price = decimal.NewFromInt(99) }},
		{"precio cero", func(in *dto.CreateProductRequest) { in.Price = decimal.Zero }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_DescripcionIA_SoloSiFaltaDescripcion(t *testing.T) {
	uc, deps := newTestUseCase()
	deps.descSvc.description = "Guantes resistentes para manipulación en bodega."

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.True(t, deps.descSvc.called)
	assert.Equal(t, deps.descSvc.description, out.Description)

	// Con descripción manual el proveedor de IA no se invoca.
	deps.descSvc.called = false
	in := validCreate()
	in.SKU = "WH-002"
	in.Description = "Descripción escrita a mano"
	out, err = uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, deps.descSvc.called)
	assert.Equal(t, "Descripción escrita a mano", out.Description)
}

func TestCreate_FallaIA_DegradaSinDescripcion(t *testing.T) {
	uc, deps := newTestUseCase()
	deps.descSvc.err = errors.New("proveedor caído")

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err, "la falla del proveedor de IA nunca bloquea la creación")
	assert.Empty(t, out.Description)
}

func TestCreate_FallaAlmacenamientoImagen_UsaPlaceholder(t *testing.T) {
	uc, deps := newTestUseCase()
	deps.images.err = errors.New("disco lleno")

	in := validCreate()
	in.Image = &dto.ImageUpload{Filename: "foto.jpg", ContentType: "image/jpeg", Data: []byte{1, 2, 3}}

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, placeholderURL, out.ImageURL)
}

func TestCreate_ImagenGuardada_UsaRutaPublica(t *testing.T) {
	uc, deps := newTestUseCase()
	deps.images.url = "/uploads/ab12_foto.jpg"

	in := validCreate()
	in.Image = &dto.ImageUpload{Filename: "foto.jpg", ContentType: "image/jpeg", Data: []byte{1, 2, 3}}

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/ab12_foto.jpg", out.ImageURL)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas y actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_Inexistente_RetornaNil(t *testing.T) {
	uc, _ := newTestUseCase()

	out, err := uc.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGetBySKU_RoundTrip(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := uc.GetBySKU(context.Background(), "WH-001")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, created.ID, out.ID)
}

func TestUpdate_NoTocaStock(t *testing.T) {
	uc, deps := newTestUseCase()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	// Simular stock acumulado por el libro de movimientos.
	deps.repo.products[created.ID].Stock = 42

	newName := "Guantes de nitrilo talla L"
	newPrice := decimal.NewFromInt(1500)
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, out.Name)
	assert.True(t, newPrice.Equal(out.Price))
	assert.Equal(t, int64(42), out.Stock, "el CRUD jamás modifica el contador de stock")
	assert.True(t, out.UpdatedAt.After(created.CreatedAt) || out.UpdatedAt.Equal(created.CreatedAt))
}

func TestUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	name := "Nuevo nombre"
	_, err := uc.Update(context.Background(), 999, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ValidaCamposResultantes(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	badPrice := decimal.NewFromInt(5)
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Price: &badPrice})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete en cascada y etiquetas
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_BorraMovimientosYProducto(t *testing.T) {
	uc, deps := newTestUseCase()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	assert.Contains(t, deps.tx.deletedCalled, created.ID,
		"el borrado debe eliminar primero el historial de movimientos")
	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newTestUseCase()
	assert.ErrorIs(t, uc.Delete(context.Background(), 999), domain.ErrNotFound)
}

func TestLabel_GeneraPDFConNombreDeArchivo(t *testing.T) {
	uc, _ := newTestUseCase()

	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	pdf, filename, err := uc.Label(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Label_WH-001.pdf", filename)
}

func TestLabel_ProductoInexistente(t *testing.T) {
	uc, _ := newTestUseCase()

	_, _, err := uc.Label(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
