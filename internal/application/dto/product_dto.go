package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ImageUpload datos binarios de una imagen subida con el formulario.
// Opcional: si Data está vacío se usa la imagen placeholder.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProductRequest entrada para crear un producto. El stock inicial siempre es 0.
type CreateProductRequest struct {
	SKU         string          `json:"sku" form:"sku" validate:"required,min=3,max=100"`
	Name        string          `json:"name" form:"name" validate:"required,min=3,max=200"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	Location    string          `json:"location" form:"location" validate:"required,min=2,max=50"`
	Image       *ImageUpload    `json:"-" form:"-"`
}

// UpdateProductRequest entrada para actualizar un producto (nunca toca Stock).
type UpdateProductRequest struct {
	SKU         *string          `json:"sku" validate:"omitempty,min=3,max=100"`
	Name        *string          `json:"name" validate:"omitempty,min=3,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Location    *string          `json:"location" validate:"omitempty,min=2,max=50"`
	Image       *ImageUpload     `json:"-"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Location    string          `json:"location"`
	ImageURL    string          `json:"image_url"`
	Stock       int64           `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
