package dto

import "time"

// ApplyMovementRequest body para POST /api/inventory/movements.
type ApplyMovementRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64  `json:"quantity" validate:"required"`
	Notes     string `json:"notes" validate:"required"`
}

// BulkItem un renglón de una transacción masiva.
type BulkItem struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required"`
}

// BulkMovementRequest body para POST /api/inventory/movements/bulk.
// Todos los renglones comparten el mismo tipo y las mismas notas; la
// transacción es todo-o-nada.
type BulkMovementRequest struct {
	Type  string     `json:"type" validate:"required,oneof=IN OUT"`
	Notes string     `json:"notes" validate:"required"`
	Items []BulkItem `json:"items" validate:"required,min=1,dive"`
}

// MovementResponse un movimiento del libro de inventario.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Notes       string    `json:"notes"`
	EndingStock int64     `json:"ending_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityEntryDTO una fila del historial global de actividad.
type ActivityEntryDTO struct {
	MovementResponse
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
}
