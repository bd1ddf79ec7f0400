package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un SKU del almacén.
// Stock es el contador acumulado y solo se modifica vía movimientos del libro
// de inventario (nunca desde el CRUD de catálogo).
type Product struct {
	ID          int64
	SKU         string // código único, inmutable una vez asignado
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario en unidades menores de moneda
	Location    string          // código de zona de bodega, ej. "A-01-01"
	ImageURL    string
	Stock       int64 // invariante: Stock >= 0
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
