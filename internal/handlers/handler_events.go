package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/dto"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

// eventHandler handles HTTP requests against the event store.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

// newEventHandler creates a new eventHandler.
func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{
		eventService: es,
	}
}

// registerEventRoutes registers routes related to events.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("/:id", h.getEvent)
		events.PATCH("/:id", h.updateEvent)
		events.POST("/:id/advance", h.advanceStatus)
		events.POST("/:id/block", h.blockEvent)
		events.POST("/:id/unblock", h.unblockEvent)
	}
}

// createEvent godoc
// @Summary Record a business event
// @Description Appends an event to the ledger. Sending the same id again returns the stored event unchanged.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} domain.Event
// @Failure 400 {object} map[string]interface{} "Invalid input format or missing fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("actor_id", actorID))
	logger.Info("Received request to record event",
		slog.String("event_type", string(req.EventType)),
		slog.String("business_profile_id", req.BusinessProfileID))

	event, err := h.eventService.CreateEvent(c.Request.Context(), req.ToEventDraft(actorID))
	if err != nil {
		respondWithError(c, logger, err, "recording event")
		return
	}

	logger.Info("Event recorded", slog.String("event_id", event.ID))
	c.JSON(http.StatusCreated, event)
}

// getEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "getting event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// updateEvent godoc
// @Summary Patch an event
// @Description Before posting any listed field may change. After posting only needsAction and metadata may.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   patch body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} domain.Event
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 422 {object} map[string]string "Event is posted"
// @Security BearerAuth
// @Router /events/{id} [patch]
func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("event_id", eventID), slog.String("user_id", userID))

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, req.ToEventPatch(), userID)
	if err != nil {
		respondWithError(c, logger, err, "updating event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// advanceStatus godoc
// @Summary Move an event to its next status
// @Description Runs the enforcement checks first. A denied check is answered with 422 and the check in the body.
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   request body dto.AdvanceStatusRequest true "Target status"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 409 {object} map[string]string "Concurrent status change"
// @Failure 422 {object} dto.TransitionResponse "Transition denied"
// @Security BearerAuth
// @Router /events/{id}/advance [post]
func (h *eventHandler) advanceStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdvanceStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}
	role := middleware.GetUserRoleFromContext(c)
	logger = logger.With(slog.String("event_id", eventID), slog.String("target_status", string(req.TargetStatus)))

	res, err := h.eventService.AdvanceStatus(c.Request.Context(), eventID, req.TargetStatus, userID, role)
	if err != nil {
		respondWithError(c, logger, err, "advancing event status")
		return
	}
	if !res.Check.IsAllowed {
		logger.Info("Status change denied", slog.String("code", string(res.Check.Code)))
		c.JSON(http.StatusUnprocessableEntity, dto.ToTransitionResponse(res))
		return
	}
	c.JSON(http.StatusOK, dto.ToTransitionResponse(res))
}

// blockEvent godoc
// @Summary Block an event
// @Tags events
// @Accept  json
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   request body dto.BlockEventRequest true "Blocking entity and reason"
// @Success 200 {object} domain.Event
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/block [post]
func (h *eventHandler) blockEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	var req dto.BlockEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BlockEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.BlockEvent(c.Request.Context(), eventID, req.BlockedBy, req.Reason, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "blocking event")
		return
	}
	c.JSON(http.StatusOK, event)
}

// unblockEvent godoc
// @Summary Clear an event's block
// @Tags events
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/unblock [post]
func (h *eventHandler) unblockEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	event, err := h.eventService.UnblockEvent(c.Request.Context(), eventID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "unblocking event")
		return
	}
	c.JSON(http.StatusOK, event)
}
