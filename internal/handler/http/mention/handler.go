package mention

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"negative-mentions/internal/common/pagination"
	"negative-mentions/internal/handler/http/requestid"
	"negative-mentions/internal/handler/http/respond"
	"negative-mentions/internal/observability/logging"
	"negative-mentions/internal/session"
	"negative-mentions/internal/usecase/feed"
)

// Handler serves the mentions feed endpoints.
type Handler struct {
	service *feed.Service
	pageCfg pagination.Config
	logger  *slog.Logger
}

// NewHandler creates a feed handler backed by the given pipeline service.
func NewHandler(service *feed.Service, pageCfg pagination.Config, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		pageCfg: pageCfg,
		logger:  logger,
	}
}

// Feed handles GET /feed. It renders the session's current feed page under the
// filter described by the query string. An explicit page parameter jumps the
// session to that page; otherwise the session's stored page is served, clamped
// to the filtered set's page count.
func (h *Handler) Feed(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	logger := logging.WithRequestID(r.Context(), h.logger)

	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	cfg, err := parseFilter(r, h.service.Catalog)
	if err != nil {
		logger.Warn("Invalid filter parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	params, err := pagination.ParseQueryParams(r, h.pageCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	vm := h.service.Render(sess, cfg, params)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, vm.Page)
	pagination.RecordDuration("handler", duration.Seconds())

	logger.Info("Feed response",
		"page", vm.Page,
		"limit", vm.Limit,
		"returned_count", len(vm.Mentions),
		"duration_ms", duration.Milliseconds(),
		"request_id", requestid.FromContext(r.Context()))

	respond.JSON(w, http.StatusOK, toFeedResponse(vm))
}

// NextPage handles POST /feed/page/next.
func (h *Handler) NextPage(w http.ResponseWriter, r *http.Request) {
	h.turnPage(w, r, 1)
}

// PrevPage handles POST /feed/page/prev.
func (h *Handler) PrevPage(w http.ResponseWriter, r *http.Request) {
	h.turnPage(w, r, -1)
}

// turnPage moves the session's page by delta and renders the result. Moves
// past the first or last page leave the page unchanged.
func (h *Handler) turnPage(w http.ResponseWriter, r *http.Request, delta int) {
	startTime := time.Now()
	logger := logging.WithRequestID(r.Context(), h.logger)

	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	cfg, err := parseFilter(r, h.service.Catalog)
	if err != nil {
		logger.Warn("Invalid filter parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	params, err := pagination.ParseQueryParams(r, h.pageCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters", "error", err.Error())
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	vm := h.service.TurnPage(sess, cfg, params.Limit, delta)

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, vm.Page)
	pagination.RecordDuration("handler", duration.Seconds())

	respond.JSON(w, http.StatusOK, toFeedResponse(vm))
}

// Trends handles GET /feed/trends. It returns per-year, per-company record
// counts over the filtered set, ordered by year then company.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	cfg, err := parseFilter(r, h.service.Catalog)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"trends": h.service.Trends(sess, cfg),
	})
}

// Keywords handles GET /feed/keywords. It returns the most frequent negative
// keywords across the filtered texts.
func (h *Handler) Keywords(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	cfg, err := parseFilter(r, h.service.Catalog)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"keywords": h.service.Keywords(sess, cfg),
	})
}
