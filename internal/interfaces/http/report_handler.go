package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/reporting"
)

// ReportHandler maneja dashboard, mapa de bodega y exportación de historial.
type ReportHandler struct {
	uc *reporting.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Estadísticas del dashboard
// @Description  Total de SKUs, valuación del inventario, alerta de stock bajo y top 10 por stock.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.DashboardStats(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// WarehouseMap godoc
// @Summary      Mapa de bodega
// @Description  Productos ordenados por ubicación física (pasillo-estante-posición).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseSlotDTO
// @Router       /api/reports/warehouse-map [get]
func (h *ReportHandler) WarehouseMap(c *fiber.Ctx) error {
	out, err := h.uc.WarehouseMap(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar historial de movimientos
// @Description  Descarga el historial completo de un producto como CSV (por defecto) o XLSX (?format=xlsx).
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        id      path   int     true   "ID del producto"
// @Param        format  query  string  false  "csv | xlsx"  default(csv)
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/export/{id} [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id numérico requerido"})
	}

	var (
		file *dto.ExportFileDTO
		err  error
	)
	switch c.Query("format", "csv") {
	case "csv":
		file, err = h.uc.ExportHistoryCSV(c.Context(), id)
	case "xlsx":
		file, err = h.uc.ExportHistoryXLSX(c.Context(), id)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser csv o xlsx"})
	}
	if err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Filename+`"`)
	return c.Send(file.Data)
}
