package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/advisor"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
)

// InventoryHandler maneja el libro de movimientos y el asesor de reposición.
type InventoryHandler struct {
	ledgerUC  *ledger.UseCase
	advisorUC *advisor.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledgerUC *ledger.UseCase, advisorUC *advisor.UseCase) *InventoryHandler {
	return &InventoryHandler{ledgerUC: ledgerUC, advisorUC: advisorUC}
}

// movementResult cuerpo de respuesta de un movimiento aplicado.
type movementResult struct {
	ProductID int64 `json:"product_id"`
	NewStock  int64 `json:"new_stock"`
}

// bulkResult cuerpo de respuesta de una transacción masiva.
type bulkResult struct {
	Applied int `json:"applied"`
}

// Apply godoc
// @Summary      Registrar movimiento de stock
// @Description  Aplica una entrada (IN) o salida (OUT) de forma transaccional y devuelve el stock resultante.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementRequest  true  "Movimiento"
// @Success      200   {object}  movementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente; incluye current_stock"
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if done, err := validateStruct(c, in); done {
		return err
	}
	newStock, err := h.ledgerUC.Apply(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(movementResult{ProductID: in.ProductID, NewStock: newStock})
}

// ApplyBulk godoc
// @Summary      Registrar transacción masiva
// @Description  Aplica varios renglones en UNA transacción, todo-o-nada: si un renglón falla se revierte el lote completo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkMovementRequest  true  "Lote de movimientos"
// @Success      200   {object}  bulkResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/bulk [post]
func (h *InventoryHandler) ApplyBulk(c *fiber.Ctx) error {
	var in dto.BulkMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if done, err := validateStruct(c, in); done {
		return err
	}
	applied, err := h.ledgerUC.ApplyBulk(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(bulkResult{Applied: applied})
}

// History godoc
// @Summary      Historial de un producto
// @Description  Movimientos del producto, el más reciente primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path   int  true   "ID del producto"
// @Param        limit      query  int  false  "Límite"   default(20)
// @Param        offset     query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements/{productId} [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	productID, ok := parseID(c, "productId")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "productId numérico requerido"})
	}
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.ledgerUC.History(c.Context(), productID, page)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Activity godoc
// @Summary      Actividad reciente global
// @Description  Rastro de auditoría de todos los productos, el movimiento más reciente primero.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.ActivityEntryDTO
// @Router       /api/inventory/activity [get]
func (h *InventoryHandler) Activity(c *fiber.Ctx) error {
	out, err := h.ledgerUC.Activity(c.Context(), c.QueryInt("limit", 100))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Sugerencias de reposición
// @Description  Proyección lineal de demanda sobre las salidas recientes; rankea los productos con más movimiento OUT.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        window   query  int  false  "Ventana en días"    default(30)
// @Param        top      query  int  false  "Cantidad de productos"  default(3)
// @Param        horizon  query  int  false  "Horizonte en días"  default(90)
// @Success      200  {array}  dto.RestockSuggestionDTO
// @Router       /api/inventory/restock [get]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	out, err := h.advisorUC.Recommend(
		c.Context(),
		c.QueryInt("window", advisor.DefaultWindowDays),
		c.QueryInt("top", advisor.DefaultTopN),
		c.QueryInt("horizon", advisor.DefaultHorizonDays),
	)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}
