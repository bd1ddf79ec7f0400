package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// StockMovement es un registro inmutable del libro de inventario.
// Se crea únicamente como efecto de una transacción del Ledger; no existe
// actualización ni borrado individual (solo el borrado en cascada del producto).
type StockMovement struct {
	ID          int64
	ProductID   int64
	Type        string // IN | OUT
	Quantity    int64  // siempre positiva; el signo lo da Type
	Notes       string
	EndingStock int64 // stock del producto inmediatamente después de aplicar este movimiento
	CreatedAt   time.Time
}
