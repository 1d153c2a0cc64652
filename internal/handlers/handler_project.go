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
)

// projectHandler handles HTTP requests that bridge the project subsystem and the ledger.
type projectHandler struct {
	releaseService  portssvc.ReleaseSvc
	backfillService portssvc.BackfillSvc
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(rs portssvc.ReleaseSvc, bs portssvc.BackfillSvc) *projectHandler {
	return &projectHandler{releaseService: rs, backfillService: bs}
}

// registerProjectRoutes registers all project-related routes.
func registerProjectRoutes(rg *gin.RouterGroup, releaseService portssvc.ReleaseSvc, backfillService portssvc.BackfillSvc) {
	h := newProjectHandler(releaseService, backfillService)

	projects := rg.Group("/projects")
	{
		projects.POST("/milestone-release", h.milestoneReleased)
		projects.POST("/backfill", h.backfillProject)
	}
}

// milestoneReleased godoc
// @Summary Book ledger entries for a released milestone
// @Description Creates the payment entry and, when a platform fee applies, the fee entry. Idempotent per milestone ID.
// @Tags projects
// @Accept json
// @Produce json
// @Param release body dto.MilestoneReleaseRequest true "Milestone release details"
// @Success 200 {array} dto.EntryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/milestone-release [post]
func (h *projectHandler) milestoneReleased(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MilestoneReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.releaseService.OnMilestoneReleased(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to book milestone release", slog.String("error", err.Error()), slog.String("milestone_id", req.MilestoneID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to book milestone release"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// backfillProject godoc
// @Summary Backfill a project from ledger history
// @Description Synthesizes a client, a completed project and one released milestone per historical payment for a project name observed only in the ledger.
// @Tags projects
// @Accept json
// @Produce json
// @Param backfill body dto.BackfillProjectRequest true "Project to backfill"
// @Success 201 {object} domain.Project
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No milestone payments found for the project name"
// @Security BearerAuth
// @Router /projects/backfill [post]
func (h *projectHandler) backfillProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BackfillProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	project, err := h.backfillService.CreateProjectFromLedgerHistory(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoData) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No milestone payments found for project " + req.ProjectName})
			return
		}
		logger.Error("Failed to backfill project", slog.String("error", err.Error()), slog.String("project_name", req.ProjectName))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to backfill project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}
