package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/middleware"
)

const dateParamLayout = "2006-01-02"

// reportingHandler handles HTTP requests for aggregated ledger views.
type reportingHandler struct {
	summaryService portssvc.SummarySvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(ss portssvc.SummarySvc) *reportingHandler {
	return &reportingHandler{summaryService: ss}
}

// registerReportingRoutes registers all reporting-related routes.
func registerReportingRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvc) {
	h := newReportingHandler(summaryService)

	reporting := rg.Group("/reporting")
	{
		reporting.GET("/summary", h.getSummary)
		reporting.GET("/projects", h.listProjects)
	}
}

// getSummary godoc
// @Summary Get the financial summary
// @Description Aggregates earnings, fees and withdrawals per currency, kind, project and client over an optional date window.
// @Tags reporting
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.FinancialSummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reporting/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to")
	if !ok {
		return
	}

	summary, err := h.summaryService.GetSummary(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// listProjects godoc
// @Summary List distinct projects observed in the ledger
// @Description Rolls up milestone payment history per project name: totals, payment counts and first/last payment dates.
// @Tags reporting
// @Produce json
// @Success 200 {array} domain.ProjectRollup
// @Security BearerAuth
// @Router /reporting/projects [get]
func (h *reportingHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rollups, err := h.summaryService.ListDistinctProjects(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, rollups)
}

// parseDateParam parses an optional YYYY-MM-DD query parameter. On a malformed
// value it writes a 400 response and reports !ok.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateParamLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " date, expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}
