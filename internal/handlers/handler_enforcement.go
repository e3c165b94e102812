package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

type enforcementHandler struct {
	enforcementService portssvc.EnforcementSvc
}

func newEnforcementHandler(es portssvc.EnforcementSvc) *enforcementHandler {
	return &enforcementHandler{enforcementService: es}
}

// registerEnforcementRoutes exposes the dry-run checks, so a UI can grey out
// actions before the user attempts them.
func registerEnforcementRoutes(rg *gin.RouterGroup, enforcementService portssvc.EnforcementSvc) {
	h := newEnforcementHandler(enforcementService)

	checks := rg.Group("/events/:id/checks")
	{
		checks.GET("/post", h.canPost)
		checks.GET("/progress", h.canProgress)
		checks.GET("/approve", h.canApprove)
	}
}

// canPost godoc
// @Summary Check whether an event may be posted
// @Tags enforcement
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 200 {object} domain.Check
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/checks/post [get]
func (h *enforcementHandler) canPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	check, err := h.enforcementService.CanPostEvent(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "checking posting")
		return
	}
	c.JSON(http.StatusOK, check)
}

// canProgress godoc
// @Summary Check whether an event may move to a status
// @Tags enforcement
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   target query string true "Target status"
// @Success 200 {object} domain.Check
// @Failure 400 {object} map[string]string "Missing target"
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/checks/progress [get]
func (h *enforcementHandler) canProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	target := domain.EventStatus(c.Query("target"))
	if target == "" {
		logger.Warn("Missing target status")
		c.JSON(http.StatusBadRequest, gin.H{"error": "target query parameter is required"})
		return
	}

	check, err := h.enforcementService.CanProgressStatus(c.Request.Context(), eventID, target)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "checking status progression")
		return
	}
	c.JSON(http.StatusOK, check)
}

// canApprove godoc
// @Summary Check whether the caller's role may approve an event
// @Description The role defaults to the caller's token role.
// @Tags enforcement
// @Produce  json
// @Param   id path string true "Event ID"
// @Param   role query string false "Authority level to check instead of the caller's"
// @Success 200 {object} domain.Check
// @Failure 404 {object} map[string]string "Event not found"
// @Security BearerAuth
// @Router /events/{id}/checks/approve [get]
func (h *enforcementHandler) canApprove(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")
	role := middleware.GetUserRoleFromContext(c)
	if r := c.Query("role"); r != "" {
		role = domain.AuthorityLevel(r)
	}

	check, err := h.enforcementService.CanUserApprove(c.Request.Context(), eventID, role)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "checking approval authority")
		return
	}
	c.JSON(http.StatusOK, check)
}
