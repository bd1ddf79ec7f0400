// Package ledger implementa el libro de movimientos de stock: la única vía
// para modificar el contador de stock de un producto. Cada operación corre en
// una transacción con bloqueo de fila (SELECT FOR UPDATE) y deja un registro
// inmutable en stock_movements con el stock resultante.
package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// UseCase registra movimientos de stock de forma transaccional (IN/OUT),
// individuales o masivos, y expone las lecturas del historial.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository // lecturas fuera de transacción
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// Apply registra un movimiento individual y devuelve el stock resultante.
//
// Secuencia dentro de la transacción: bloquear la fila del producto, validar
// existencia, calcular el nuevo stock, rechazar salidas que lo dejarían en
// negativo, insertar el movimiento con ending_stock y actualizar el contador.
// Cualquier error revierte todo: nunca queda un movimiento sin su update de
// stock ni viceversa.
//
// Reintentar un Apply idéntico NO es idempotente: genera un segundo movimiento
// y duplica el delta. La deduplicación es responsabilidad del caller.
func (uc *UseCase) Apply(ctx context.Context, in dto.ApplyMovementRequest) (int64, error) {
	if err := validateMovement(in.Type, in.Quantity, in.Notes); err != nil {
		return 0, err
	}

	now := time.Now()
	var newStock int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		ns, err := applyOne(ctx, productRepo, movRepo, in.ProductID, in.Type, in.Quantity, strings.TrimSpace(in.Notes), now)
		if err != nil {
			return err
		}
		newStock = ns
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// ApplyBulk procesa todos los renglones dentro de UNA transacción, todo-o-nada:
// el primer renglón que falle (producto inexistente o stock insuficiente)
// revierte el lote completo. Devuelve la cantidad de renglones aplicados solo
// si todos tuvieron éxito.
//
// Los renglones se procesan en orden ascendente de ProductID para que dos
// lotes concurrentes adquieran los bloqueos de fila siempre en el mismo orden
// y no puedan interbloquearse.
func (uc *UseCase) ApplyBulk(ctx context.Context, in dto.BulkMovementRequest) (int, error) {
	if len(in.Items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	notes := strings.TrimSpace(in.Notes)
	for _, item := range in.Items {
		if err := validateMovement(in.Type, item.Quantity, notes); err != nil {
			return 0, err
		}
	}

	items := make([]dto.BulkItem, len(in.Items))
	copy(items, in.Items)
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	now := time.Now()
	count := 0
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error {
		for _, item := range items {
			if _, err := applyOne(ctx, productRepo, movRepo, item.ProductID, in.Type, item.Quantity, notes, now); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// applyOne ejecuta el algoritmo por renglón usando los repositorios de la
// transacción en curso. La fila del producto queda bloqueada hasta el Commit.
func applyOne(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	productID int64,
	movType string,
	quantity int64,
	notes string,
	now time.Time,
) (int64, error) {
	product, err := productRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}

	newStock := product.Stock + quantity
	if movType == entity.MovementTypeOUT {
		newStock = product.Stock - quantity
		if newStock < 0 {
			return 0, &domain.InsufficientStockError{Current: product.Stock}
		}
	}

	mov := &entity.StockMovement{
		ProductID:   productID,
		Type:        movType,
		Quantity:    quantity,
		Notes:       notes,
		EndingStock: newStock,
		CreatedAt:   now,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return 0, err
	}
	if err := productRepo.UpdateStock(ctx, productID, newStock); err != nil {
		return 0, err
	}
	return newStock, nil
}

func validateMovement(movType string, quantity int64, notes string) error {
	if movType != entity.MovementTypeIN && movType != entity.MovementTypeOUT {
		return domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if strings.TrimSpace(notes) == "" {
		return domain.ErrMissingNotes
	}
	return nil
}

// History devuelve los movimientos de un producto, el más reciente primero.
func (uc *UseCase) History(ctx context.Context, productID int64, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.ListByProduct(ctx, productID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// Activity devuelve el rastro global de auditoría (todos los productos),
// el movimiento más reciente primero.
func (uc *UseCase) Activity(ctx context.Context, limit int) ([]dto.ActivityEntryDTO, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := uc.movRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ActivityEntryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ActivityEntryDTO{
			MovementResponse: toMovementResponse(&r.Movement),
			ProductName:      r.ProductName,
			SKU:              r.SKU,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		EndingStock: m.EndingStock,
		CreatedAt:   m.CreatedAt,
	}
}
