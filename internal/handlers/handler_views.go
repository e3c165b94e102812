package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/core/domain"
	portssvc "github.com/quarzasiphix/ksef-ai-sub008/internal/core/ports/services"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/dto"
	"github.com/quarzasiphix/ksef-ai-sub008/internal/middleware"
)

type viewHandler struct {
	viewService portssvc.ViewSvc
}

func newViewHandler(vs portssvc.ViewSvc) *viewHandler {
	return &viewHandler{viewService: vs}
}

// registerViewRoutes registers the read-only projections of the event store.
func registerViewRoutes(rg *gin.RouterGroup, viewService portssvc.ViewSvc) {
	h := newViewHandler(viewService)

	views := rg.Group("/views")
	{
		views.GET("/ledger", h.filtered("ledger", viewService.LedgerView))
		views.GET("/invoices", h.filtered("invoices", viewService.InvoiceView))
		views.GET("/expenses", h.filtered("expenses", viewService.ExpenseView))
		views.GET("/audit", h.filtered("audit", viewService.AuditView))
		views.GET("/inbox", h.profileOnly("inbox", viewService.InboxView))
		views.GET("/orphans", h.profileOnly("orphans", viewService.OrphanView))
	}
}

type filteredView func(ctx context.Context, filter domain.ViewFilter) (*domain.EventPage, error)

type profileView func(ctx context.Context, businessProfileID string, limit int, nextToken *string) (*domain.EventPage, error)

// filtered serves the ledger, invoice, expense and audit views.
//
// @Summary Query a ledger view
// @Description ledger, invoices and expenses list posted events by occurrence time; audit lists every event by recording time.
// @Tags views
// @Produce  json
// @Param   view path string true "ledger, invoices, expenses or audit"
// @Param   businessProfileID query string true "Business profile"
// @Param   from query string false "Lower bound, RFC 3339"
// @Param   to query string false "Upper bound, RFC 3339"
// @Param   eventType query []string false "Event types" collectionFormat(multi)
// @Param   documentType query []string false "Document types" collectionFormat(multi)
// @Param   counterparty query string false "Counterparty substring"
// @Param   actorID query string false "Actor"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} domain.EventPage
// @Failure 400 {object} map[string]string "Invalid filter or token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /views/{view} [get]
func (h *viewHandler) filtered(name string, query filteredView) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("view", name))
		var params dto.ViewParams
		if err := c.ShouldBindQuery(&params); err != nil {
			logger.Warn("Failed to bind view query", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
			return
		}
		filter, err := params.ToViewFilter()
		if err != nil {
			respondWithError(c, logger, err, "parsing view filter")
			return
		}

		page, err := query(c.Request.Context(), filter)
		if err != nil {
			respondWithError(c, logger, err, "querying view")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// profileOnly serves the inbox and orphan views, which take no filters.
//
// @Summary Query a work queue
// @Description inbox lists unposted events needing action; orphans lists events without a chain.
// @Tags views
// @Produce  json
// @Param   queue path string true "inbox or orphans"
// @Param   businessProfileID query string true "Business profile"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Continuation token"
// @Success 200 {object} domain.EventPage
// @Failure 400 {object} map[string]string "Invalid token"
// @Security BearerAuth
// @Router /views/{queue} [get]
func (h *viewHandler) profileOnly(name string, query profileView) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("view", name))
		var params dto.ViewParams
		if err := c.ShouldBindQuery(&params); err != nil {
			logger.Warn("Failed to bind view query", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
			return
		}

		page, err := query(c.Request.Context(), params.BusinessProfileID, params.Limit, params.Token())
		if err != nil {
			respondWithError(c, logger, err, "querying view")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
