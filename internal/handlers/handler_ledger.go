package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flsuite/freelance_ledger_app/internal/apperrors"
	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
	"github.com/flsuite/freelance_ledger_app/internal/middleware"
	"github.com/flsuite/freelance_ledger_app/internal/platform/config"
)

// ledgerHandler handles HTTP requests for import and entry CRUD.
type ledgerHandler struct {
	importService portssvc.ImportSvc
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(is portssvc.ImportSvc, ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{importService: is, ledgerService: ls}
}

// registerLedgerRoutes registers all ledger-related routes.
func registerLedgerRoutes(rg *gin.RouterGroup, cfg *config.Config, importService portssvc.ImportSvc, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(importService, ledgerService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/import", middleware.RateLimit(newLimiter(cfg.ImportRateLimit, "10-M")), h.importExport)
		ledger.POST("/entries", h.createEntry)
		ledger.GET("/entries", h.listEntries)
		ledger.GET("/entries/:entryID", h.getEntry)
		ledger.PUT("/entries/:entryID", h.updateEntry)
		ledger.DELETE("/entries/:entryID", h.deleteEntry)
	}
}

// importExport godoc
// @Summary Import a transaction export
// @Description Parses the raw export text and persists every new economic row. Malformed and duplicate rows are skipped, never fatal.
// @Tags ledger
// @Accept json
// @Produce json
// @Param import body dto.ImportRequest true "Raw export text"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/import [post]
func (h *ledgerHandler) importExport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.importService.ImportFromExport(c.Request.Context(), req.Export, userID)
	if err != nil {
		logger.Error("Import failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Import failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// createEntry godoc
// @Summary Create a manual ledger entry
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Entry with the same date, description and amount exists"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.CreateManualEntry(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "An entry with the same date, description and amount already exists"})
		default:
			logger.Error("Failed to create entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create entry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List ledger entries
// @Description Returns a filtered, token-paginated page of entries, newest first.
// @Tags ledger
// @Produce json
// @Param type query string false "Transaction kind"
// @Param currency query string false "Currency code"
// @Param projectName query string false "Project name substring"
// @Param search query string false "Free text over description and notes"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/entries [get]
func (h *ledgerHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListEntries(c.Request.Context(), params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == 400 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
			return
		}
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEntry godoc
// @Summary Get a ledger entry by ID
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [get]
func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		} else {
			logger.Error("Failed to get entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a ledger entry
// @Tags ledger
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [put]
func (h *ledgerHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.ledgerService.UpdateEntry(c.Request.Context(), entryID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Update collides with an existing entry"})
		default:
			logger.Error("Failed to update entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a ledger entry
// @Tags ledger
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 204 {object} nil
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ledger/entries/{entryID} [delete]
func (h *ledgerHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.ledgerService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entry not found"})
		} else {
			logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete entry"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
