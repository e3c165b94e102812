package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/dto"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

// decisionHandler handles HTTP requests for the decision registry.
type decisionHandler struct {
	decisionService portssvc.DecisionRegistrySvc
}

// newDecisionHandler creates a new decisionHandler.
func newDecisionHandler(ds portssvc.DecisionRegistrySvc) *decisionHandler {
	return &decisionHandler{
		decisionService: ds,
	}
}

// registerDecisionRoutes registers routes related to decisions.
func registerDecisionRoutes(rg *gin.RouterGroup, decisionService portssvc.DecisionRegistrySvc) {
	h := newDecisionHandler(decisionService)

	decisions := rg.Group("/decisions")
	{
		decisions.POST("", h.createDecision)
		decisions.GET("", h.listDecisions)
		decisions.GET("/:id", h.getDecision)
		decisions.POST("/:id/deactivate", h.deactivateDecision)
	}
}

// createDecision godoc
// @Summary Register a decision
// @Description Records a resolution that authorizes a set of event types, optionally bounded by amount and period.
// @Tags decisions
// @Accept  json
// @Produce  json
// @Param   decision body dto.CreateDecisionRequest true "Decision details"
// @Success 201 {object} domain.Decision
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /decisions [post]
func (h *decisionHandler) createDecision(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDecision", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("creator_user_id", userID))
	logger.Info("Received request to create decision", slog.String("decision_type", string(req.DecisionType)))

	decision, err := h.decisionService.CreateDecision(c.Request.Context(), req.ToDecision(), userID)
	if err != nil {
		respondWithError(c, logger, err, "creating decision")
		return
	}
	c.JSON(http.StatusCreated, decision)
}

// listDecisions godoc
// @Summary List a profile's decisions
// @Tags decisions
// @Produce  json
// @Param   businessProfileID query string true "Business profile"
// @Param   activeOnly query bool false "Only active decisions"
// @Success 200 {object} dto.ListDecisionsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /decisions [get]
func (h *decisionHandler) listDecisions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDecisionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListDecisions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	decisions, err := h.decisionService.ListDecisions(c.Request.Context(), params.BusinessProfileID, params.ActiveOnly)
	if err != nil {
		respondWithError(c, logger, err, "listing decisions")
		return
	}
	c.JSON(http.StatusOK, dto.ListDecisionsResponse{Decisions: decisions})
}

// getDecision godoc
// @Summary Get a decision by ID
// @Tags decisions
// @Produce  json
// @Param   id path string true "Decision ID"
// @Success 200 {object} domain.Decision
// @Failure 404 {object} map[string]string "Decision not found"
// @Security BearerAuth
// @Router /decisions/{id} [get]
func (h *decisionHandler) getDecision(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	decisionID := c.Param("id")

	decision, err := h.decisionService.GetDecision(c.Request.Context(), decisionID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("decision_id", decisionID)), err, "getting decision")
		return
	}
	c.JSON(http.StatusOK, decision)
}

// deactivateDecision godoc
// @Summary Deactivate a decision
// @Description Events already posted under the decision keep their reference.
// @Tags decisions
// @Param   id path string true "Decision ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Decision not found"
// @Security BearerAuth
// @Router /decisions/{id}/deactivate [post]
func (h *decisionHandler) deactivateDecision(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	decisionID := c.Param("id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	if err := h.decisionService.DeactivateDecision(c.Request.Context(), decisionID, userID); err != nil {
		respondWithError(c, logger.With(slog.String("decision_id", decisionID)), err, "deactivating decision")
		return
	}
	c.Status(http.StatusNoContent)
}
