package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateSKU       = errors.New("el SKU ya existe")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser un número positivo")
	ErrMissingNotes       = errors.New("las notas de la transacción son obligatorias")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrExternalProvider   = errors.New("proveedor externo no disponible")
)

// InsufficientStockError indica que una salida (OUT) dejaría el stock en negativo.
// Lleva el stock actual para que el operador sepa cuánto queda disponible.
type InsufficientStockError struct {
	Current int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente, quedan %d unidades", e.Current)
}
