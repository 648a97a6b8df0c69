package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

// StatsHandler contadores y reporte PDF del dashboard.
type StatsHandler struct {
	uc     *usecase.StatsUseCase
	report *pdf.StatsReportGenerator
	errorWriter
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase, report *pdf.StatsReportGenerator, log *logger.Logger, dev bool) *StatsHandler {
	return &StatsHandler{uc: uc, report: report, errorWriter: errorWriter{log: log, dev: dev}}
}

// Counts godoc
// @Summary      Contadores del dashboard
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/admin/stats [get]
func (h *StatsHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.Counts(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(dto.OK("", out))
}

// Report godoc
// @Summary      Reporte de estadísticas en PDF
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/admin/stats/report [get]
func (h *StatsHandler) Report(c *fiber.Ctx) error {
	stats, err := h.uc.Counts(c.Context())
	if err != nil {
		return h.writeError(c, err)
	}
	buf, err := h.report.Generate(stats, time.Now())
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estadisticas.pdf"`)
	return c.Send(buf)
}
