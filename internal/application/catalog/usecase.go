// Package catalog implementa el CRUD de productos. El stock nunca se modifica
// desde aquí: pertenece al libro de movimientos (package ledger).
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/ports"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// minPrice precio mínimo en unidades menores de moneda.
var minPrice = decimal.NewFromInt(100)

// aiTimeout tope para la llamada al proveedor de IA durante Create.
const aiTimeout = 10 * time.Second

// UseCase casos de uso CRUD para productos.
//
// descSvc e images son colaboradores opcionales (pueden ser nil): su falla
// degrada a placeholder y nunca bloquea la creación del producto.
type UseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
	descSvc  ports.DescriptionService
	images   ports.ImageStorage
	labels   ports.LabelGenerator
	placeholderURL string
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	repo repository.ProductRepository,
	txRunner TxRunner,
	descSvc ports.DescriptionService,
	images ports.ImageStorage,
	labels ports.LabelGenerator,
	placeholderURL string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		repo:           repo,
		txRunner:       txRunner,
		descSvc:        descSvc,
		images:         images,
		labels:         labels,
		placeholderURL: placeholderURL,
		log:            log,
	}
}

// Create crea un nuevo producto con stock 0.
//
// Hace check-then-insert sobre el SKU; la carrera residual entre dos creates
// concurrentes con el mismo SKU la resuelve el constraint UNIQUE de la DB,
// que el repositorio mapea también a ErrDuplicateSKU.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if err := validateFields(in.SKU, in.Name, in.Location, in.Price); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	description := in.Description
	if description == "" && uc.descSvc != nil {
		description = uc.generateDescription(ctx, in.SKU, in.Name)
	}

	imageURL := uc.storeImage(ctx, in.Image)

	now := time.Now()
	product := &entity.Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: description,
		Price:       in.Price,
		Location:    in.Location,
		ImageURL:    imageURL,
		Stock:       0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// generateDescription pide una descripción al proveedor de IA con timeout
// propio. Si falla, se registra y el producto se crea sin descripción:
// el enriquecimiento es opcional por contrato.
func (uc *UseCase) generateDescription(ctx context.Context, sku, name string) string {
	aiCtx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()
	desc, err := uc.descSvc.GenerateDescription(aiCtx, sku, name)
	if err != nil {
		if uc.log != nil {
			uc.log.Warn().Err(err).Str("sku", sku).Msg("descripción IA no disponible, se continúa sin ella")
		}
		return ""
	}
	return desc
}

// storeImage guarda la imagen subida y devuelve su ruta pública.
// Sin upload, o si el almacenamiento falla, devuelve el placeholder.
func (uc *UseCase) storeImage(ctx context.Context, img *dto.ImageUpload) string {
	if img == nil || len(img.Data) == 0 || uc.images == nil {
		return uc.placeholderURL
	}
	url, err := uc.images.Save(ctx, img.Filename, img.ContentType, img.Data)
	if err != nil || url == "" {
		if uc.log != nil {
			uc.log.Warn().Err(err).Msg("no se pudo guardar la imagen, se usa placeholder")
		}
		return uc.placeholderURL
	}
	return url
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *UseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por SKU (flujo del escáner QR). (nil, nil) si no existe.
func (uc *UseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos de catálogo de un producto. Nunca toca Stock.
func (uc *UseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		product.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Location != nil {
		product.Location = strings.TrimSpace(*in.Location)
	}
	if err := validateFields(product.SKU, product.Name, product.Location, product.Price); err != nil {
		return nil, err
	}
	if in.Image != nil && len(in.Image.Data) > 0 {
		product.ImageURL = uc.storeImage(ctx, in.Image)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto y todos sus movimientos en una sola transacción.
// Es el único punto fuera del Ledger que necesita transacción: el borrado
// cruza dos tablas y no pueden quedar movimientos huérfanos.
func (uc *UseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := movRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		return productRepo.Delete(ctx, id)
	})
}

// List lista productos con búsqueda opcional (ILIKE sobre nombre o SKU) y paginación.
func (uc *UseCase) List(ctx context.Context, query string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Search búsqueda acotada por término (autocomplete del formulario de transacciones).
func (uc *UseCase) Search(ctx context.Context, term string, limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	list, err := uc.repo.Search(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Label genera la etiqueta PDF (QR del SKU) de un producto.
func (uc *UseCase) Label(ctx context.Context, id int64) ([]byte, string, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if product == nil {
		return nil, "", domain.ErrNotFound
	}
	if uc.labels == nil {
		return nil, "", domain.ErrExternalProvider
	}
	pdf, err := uc.labels.GenerateProductLabel(product)
	if err != nil {
		return nil, "", err
	}
	return pdf, "Label_" + product.SKU + ".pdf", nil
}

func validateFields(sku, name, location string, price decimal.Decimal) error {
	if len(sku) < 3 || len(name) < 3 {
		return domain.ErrInvalidInput
	}
	if len(location) < 2 {
		return domain.ErrInvalidInput
	}
	if price.LessThan(minPrice) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
