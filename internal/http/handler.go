package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/box-service/internal/domain/dto"
	"github.com/guttosm/box-service/internal/domain/model"
	"github.com/guttosm/box-service/internal/i18n"
	"github.com/guttosm/box-service/internal/middleware"
	"github.com/guttosm/box-service/internal/service"
)

// Handler serves the recommendation and catalog endpoints of a site.
type Handler struct {
	recommender service.RecommendationService
	catalog     service.CatalogService
	audit       middleware.AuditWriter
	logs        service.LoggingService
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAuditWriter records an audit entry for every recommendation and cache action.
func WithAuditWriter(w middleware.AuditWriter) HandlerOption {
	return func(h *Handler) {
		h.audit = w
	}
}

// WithLogQueries enables the audit log listing over logs.
func WithLogQueries(logs service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.logs = logs
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(recommender service.RecommendationService, catalog service.CatalogService, opts ...HandlerOption) *Handler {
	h := &Handler{
		recommender: recommender,
		catalog:     catalog,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// bindItems decodes and checks the request envelope, answering 400 itself on failure.
func (h *Handler) bindItems(c *gin.Context, builder *ResponseBuilder) ([]model.RequestItem, bool) {
	req, err := bindBody[dto.ItemsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	if err := req.Validate(); err != nil {
		key := i18n.ErrKeyInvalidItems
		if errors.Is(err, dto.ErrTooManyItems) {
			key = i18n.ErrKeyTooManyItems
		}
		builder.ErrorWithDetails(http.StatusBadRequest, key, err, map[string]string{
			"field":  "items",
			"reason": err.Error(),
		})
		return nil, false
	}
	return req.Items, true
}

// Recommend handles POST /api/sites/:site_id/recommendations.
//
// @Summary      Recommend a single box model
// @Description  Ranks the box models that can hold the whole order on their own, best first. An empty recomendaciones list means no single model suffices. Supports idempotency via Idempotency-Key header.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        site_id path string true "Site id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ItemsRequest true "Order lines"
// @Success      200 {object} dto.SuccessResponse{data=model.RecommendationResult} "Ranked recommendations"
// @Failure      400 {object} dto.ErrorResponse "Invalid order"
// @Failure      404 {object} dto.ErrorResponse "Unknown site or product"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Router       /api/sites/{site_id}/recommendations [post]
func (h *Handler) Recommend(c *gin.Context) {
	builder := NewResponseBuilder(c)
	items, ok := h.bindItems(c, builder)
	if !ok {
		return
	}

	siteID := c.Param(middleware.SiteIDParam)
	result, err := h.recommender.Recommend(c.Request.Context(), siteID, items)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionRecommend, "Recommendation failed", err, map[string]interface{}{
			"items": len(items),
		})
		respondError(builder, err)
		return
	}

	fields := map[string]interface{}{
		"items":           len(items),
		"total_unidades":  result.TotalUnits,
		"recomendaciones": len(result.Recommendations),
	}
	if len(result.Recommendations) > 0 {
		best := result.Recommendations[0]
		fields["modelo_id"] = best.ModelID
		fields["cajas_requeridas"] = best.BoxesRequired
	}
	middleware.AuditLog(h.audit, c, model.ActionRecommend, "Recommendation computed", fields)

	builder.SuccessOK(result)
}

// PackMixed handles POST /api/sites/:site_id/recommendations/mix.
//
// @Summary      Pack an order over several box models
// @Description  Builds a mixed-model plan. Units that no model with stock can take are reported in sin_cobertura and the request still succeeds.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        site_id path string true "Site id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.ItemsRequest true "Order lines"
// @Success      200 {object} dto.SuccessResponse{data=model.MixedResult} "Mixed plan"
// @Failure      400 {object} dto.ErrorResponse "Invalid order"
// @Failure      404 {object} dto.ErrorResponse "Unknown site or product"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Router       /api/sites/{site_id}/recommendations/mix [post]
func (h *Handler) PackMixed(c *gin.Context) {
	builder := NewResponseBuilder(c)
	items, ok := h.bindItems(c, builder)
	if !ok {
		return
	}

	siteID := c.Param(middleware.SiteIDParam)
	result, err := h.recommender.PackMixed(c.Request.Context(), siteID, items)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionPackMixed, "Mixed packing failed", err, map[string]interface{}{
			"items": len(items),
		})
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionPackMixed, "Mixed plan computed", map[string]interface{}{
		"items":          len(items),
		"total_unidades": result.TotalUnits,
		"total_cajas":    result.Mix.TotalBoxes,
		"sin_cobertura":  result.Mix.TotalUnmetUnits,
	})

	builder.SuccessOK(result)
}

// Evaluate handles POST /api/sites/:site_id/recommendations/evaluate.
//
// @Summary      Evaluate every box model against an order
// @Description  Diagnostic view listing, per box model, the best orientation of each item or null when it does not fit.
// @Tags         Recommendations
// @Accept       json
// @Produce      json
// @Param        site_id path string true "Site id"
// @Param        request body dto.ItemsRequest true "Order lines"
// @Success      200 {object} dto.SuccessResponse{data=model.EvaluationResult} "Per-model compatibility"
// @Failure      400 {object} dto.ErrorResponse "Invalid order"
// @Failure      404 {object} dto.ErrorResponse "Unknown site or product"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/sites/{site_id}/recommendations/evaluate [post]
func (h *Handler) Evaluate(c *gin.Context) {
	builder := NewResponseBuilder(c)
	items, ok := h.bindItems(c, builder)
	if !ok {
		return
	}

	result, err := h.recommender.Evaluate(c.Request.Context(), c.Param(middleware.SiteIDParam), items)
	if err != nil {
		middleware.AuditLogError(h.audit, c, model.ActionEvaluate, "Evaluation failed", err, nil)
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionEvaluate, "Evaluation computed", map[string]interface{}{
		"items":   len(items),
		"modelos": len(result.Evaluations),
	})

	builder.SuccessOK(result)
}

// BoxModels handles GET /api/sites/:site_id/box-models.
//
// @Summary      Catalog snapshot
// @Description  Returns the compatible box models of a site with their available stock. The snapshot may be cached for CACHE_TTL.
// @Tags         Catalog
// @Produce      json
// @Param        site_id path string true "Site id"
// @Success      200 {object} dto.SuccessResponse{data=model.CatalogSnapshot} "Catalog snapshot"
// @Failure      404 {object} dto.ErrorResponse "Unknown site"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/sites/{site_id}/box-models [get]
func (h *Handler) BoxModels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap, err := h.catalog.Snapshot(c.Request.Context(), c.Param(middleware.SiteIDParam))
	if err != nil {
		respondError(builder, err)
		return
	}
	builder.SuccessOK(snap)
}

// InvalidateCatalogCache handles DELETE /api/sites/:site_id/box-models/cache.
//
// @Summary      Drop the cached catalog snapshot
// @Description  Forces the next request for the site to read models and stock from the catalog store.
// @Tags         Catalog
// @Produce      json
// @Param        site_id path string true "Site id"
// @Success      200 {object} dto.SuccessResponse "Cache dropped"
// @Router       /api/sites/{site_id}/box-models/cache [delete]
func (h *Handler) InvalidateCatalogCache(c *gin.Context) {
	siteID := c.Param(middleware.SiteIDParam)
	h.catalog.Invalidate(siteID)

	middleware.AuditLog(h.audit, c, model.ActionInvalidateSite, "Catalog cache invalidated", nil)

	NewResponseBuilder(c).SuccessOK(gin.H{
		"site_id": siteID,
		"message": i18n.GetTranslator().Translate(i18n.SuccessKeyCacheInvalidated, i18n.GetLocale(c)),
	})
}

// AuditLogs handles GET /api/sites/:site_id/audit-logs.
//
// @Summary      List audit entries of a site
// @Description  Pages through persisted recommendation and cache audit entries, newest first. Requires MongoDB request logs.
// @Tags         Catalog
// @Produce      json
// @Param        site_id    path  string true  "Site id"
// @Param        action     query string false "Action type, e.g. recommend or pack_mixed"
// @Param        level      query string false "Log level"
// @Param        request_id query string false "Request id"
// @Param        from       query string false "RFC 3339 lower bound"
// @Param        to         query string false "RFC 3339 upper bound"
// @Param        limit      query int    false "Page size, at most 500" default(50)
// @Param        skip       query int    false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogPage} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Request logs disabled"
// @Router       /api/sites/{site_id}/audit-logs [get]
func (h *Handler) AuditLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.logs == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceNotAvailable, nil)
		return
	}

	var q dto.AuditLogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	opts := q.Options(c.Param(middleware.SiteIDParam))
	entries, err := h.logs.QueryLogs(c.Request.Context(), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	total, err := h.logs.CountLogs(c.Request.Context(), opts)
	if err != nil {
		respondError(builder, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}

	builder.SuccessOK(dto.AuditLogPage{
		Entries: entries,
		Total:   total,
		Limit:   opts.Limit,
		Skip:    opts.Skip,
	})
}
