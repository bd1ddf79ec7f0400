package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
)

// validate instancia compartida del validador de structs; es segura para uso
// concurrente y cachea la metadata de los tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct corre los tags `validate` de un DTO y, si hay violaciones,
// responde 400 con el primer campo inválido. Devuelve true si escribió la
// respuesta de error.
func validateStruct(c *fiber.Ctx, s any) (bool, error) {
	err := validate.Struct(s)
	if err == nil {
		return false, nil
	}
	msg := "datos de entrada inválidos"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg = fmt.Sprintf("campo %s no cumple la regla %s", strings.ToLower(fe.Field()), fe.Tag())
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
