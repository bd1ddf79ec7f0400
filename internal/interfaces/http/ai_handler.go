package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/ports"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// AIHandler expone la generación de descripciones de producto con IA.
type AIHandler struct {
	descSvc ports.DescriptionService
	log     *logger.Logger
}

// NewAIHandler construye el handler. descSvc puede ser nil si no hay proveedor configurado.
func NewAIHandler(descSvc ports.DescriptionService, log *logger.Logger) *AIHandler {
	return &AIHandler{descSvc: descSvc, log: log}
}

// GenerateDescription godoc
// @Summary      Generar descripción con IA
// @Description  Redacta una descripción comercial corta a partir del SKU y el nombre.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateDescriptionRequest  true  "SKU y nombre"
// @Success      200   {object}  dto.GenerateDescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/ai/description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	if h.descSvc == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "AI_DISABLED", Message: "proveedor de IA no configurado"})
	}
	var in dto.GenerateDescriptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if done, err := validateStruct(c, in); done {
		return err
	}

	start := time.Now()
	description, err := h.descSvc.GenerateDescription(c.Context(), in.SKU, in.Name)
	if err != nil {
		h.log.Warn().Err(err).Str("sku", in.SKU).Msg("generación de descripción IA fallida")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_PROVIDER", Message: "proveedor de IA no disponible"})
	}
	h.log.Info().Str("sku", in.SKU).Dur("elapsed", time.Since(start)).Msg("descripción IA generada")
	return c.JSON(dto.GenerateDescriptionResponse{Description: description})
}
