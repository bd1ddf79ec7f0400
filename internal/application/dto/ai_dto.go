package dto

// GenerateDescriptionRequest entrada para el generador de descripciones con IA.
type GenerateDescriptionRequest struct {
	SKU  string `json:"sku" validate:"required,min=3"`
	Name string `json:"name" validate:"required,min=3"`
}

// GenerateDescriptionResponse descripción generada por el modelo.
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}
