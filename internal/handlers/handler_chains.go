package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/dto"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

// chainHandler handles chain lookup and event reconciliation.
type chainHandler struct {
	reconciler  portssvc.ChainReconcilerSvc
	viewService portssvc.ViewSvc
}

func newChainHandler(rs portssvc.ChainReconcilerSvc, vs portssvc.ViewSvc) *chainHandler {
	return &chainHandler{reconciler: rs, viewService: vs}
}

// registerChainRoutes registers chain routes plus the attach actions on events.
func registerChainRoutes(rg *gin.RouterGroup, reconciler portssvc.ChainReconcilerSvc, viewService portssvc.ViewSvc) {
	h := newChainHandler(reconciler, viewService)

	chains := rg.Group("/chains")
	{
		chains.GET("/search", h.searchChains)
		chains.POST("/reconcile", h.bulkReconcile)
		chains.GET("/:id", h.getChain)
		chains.GET("/:id/events", h.listChainEvents)
	}

	events := rg.Group("/events/:id")
	{
		events.POST("/attach", h.attachEvent)
		events.POST("/auto-attach", h.autoAttachEvent)
	}
}

// autoAttachEvent godoc
// @Summary Attach an event to its chain automatically
// @Description Tries object, entity, invoice and cash document references in that order and opens a new chain when none match.
// @Tags chains
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} domain.AttachResult
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/auto-attach [post]
func (h *chainHandler) autoAttachEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	res, err := h.reconciler.AutoAttachEvent(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "auto-attaching event")
		return
	}
	c.JSON(http.StatusOK, res)
}

// attachEvent godoc
// @Summary Attach an event to a chosen chain
// @Tags chains
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   request body dto.AttachEventRequest true "Target chain"
// @Success 200 {object} domain.AttachResult
// @Failure 400 {object} map[string]string "Invalid input or profile mismatch"
// @Failure 404 {object} map[string]string "Event or chain not found"
// @Security BearerAuth
// @Router /events/{id}/attach [post]
func (h *chainHandler) attachEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	var req dto.AttachEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AttachEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("event_id", eventID), slog.String("chain_id", req.ChainID))

	res, err := h.reconciler.AttachEventToChain(c.Request.Context(), eventID, req.ChainID, req.CausationEventID, userID)
	if err != nil {
		respondWithError(c, logger, err, "attaching event")
		return
	}
	c.JSON(http.StatusOK, res)
}

// searchChains godoc
// @Summary Search chains to attach an event to
// @Tags chains
// @Produce  json
// @Param   businessProfileID query string true "Business profile"
// @Param   q query string false "Text matched against number, title and type"
// @Param   chainType query string false "Restrict to a chain type"
// @Param   limit query int false "Maximum candidates" default(20)
// @Success 200 {object} dto.SearchChainsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /chains/search [get]
func (h *chainHandler) searchChains(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchChainsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for SearchChains", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	candidates, err := h.reconciler.SearchChainsForAttach(c.Request.Context(), params.ToChainSearchQuery())
	if err != nil {
		respondWithError(c, logger, err, "searching chains")
		return
	}
	c.JSON(http.StatusOK, dto.SearchChainsResponse{Candidates: candidates})
}

// bulkReconcile godoc
// @Summary Auto-attach a batch of orphaned events
// @Description Processes the oldest orphans first. A cancelled request returns the partial result.
// @Tags chains
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkReconcileRequest true "Profile and batch size"
// @Success 200 {object} domain.BulkResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /chains/reconcile [post]
func (h *chainHandler) bulkReconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkReconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	logger = logger.With(slog.String("business_profile_id", req.BusinessProfileID))

	res, err := h.reconciler.BulkAutoAttachOrphanedEvents(c.Request.Context(), req.BusinessProfileID, req.Limit)
	if err != nil {
		respondWithError(c, logger, err, "reconciling orphaned events")
		return
	}
	logger.Info("Bulk reconcile finished",
		slog.Int("processed", res.Processed), slog.Int("attached", res.Attached), slog.Int("failed", res.Failed))
	c.JSON(http.StatusOK, res)
}

// getChain godoc
// @Summary Get a chain by ID
// @Tags chains
// @Produce  json
// @Param   id path string true "Chain ID"
// @Success 200 {object} domain.Chain
// @Failure 404 {object} map[string]string "Chain not found"
// @Security BearerAuth
// @Router /chains/{id} [get]
func (h *chainHandler) getChain(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	chainID := c.Param("id")

	chain, err := h.reconciler.GetChain(c.Request.Context(), chainID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("chain_id", chainID)), err, "getting chain")
		return
	}
	c.JSON(http.StatusOK, chain)
}

// listChainEvents godoc
// @Summary List a chain's events
// @Tags chains
// @Produce  json
// @Param   id path string true "Chain ID"
// @Success 200 {object} dto.ChainEventsResponse
// @Failure 404 {object} map[string]string "Chain not found"
// @Security BearerAuth
// @Router /chains/{id}/events [get]
func (h *chainHandler) listChainEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("chain_id", c.Param("id")))
	chainID := c.Param("id")

	chain, err := h.reconciler.GetChain(c.Request.Context(), chainID)
	if err != nil {
		respondWithError(c, logger, err, "getting chain")
		return
	}
	events, err := h.viewService.ChainEvents(c.Request.Context(), chainID)
	if err != nil {
		respondWithError(c, logger, err, "listing chain events")
		return
	}
	c.JSON(http.StatusOK, dto.ChainEventsResponse{Chain: *chain, Events: events})
}
