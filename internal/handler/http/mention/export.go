package mention

import (
	"fmt"
	"log/slog"
	"net/http"

	"negative-mentions/internal/dataset"
	"negative-mentions/internal/handler/http/respond"
	"negative-mentions/internal/session"
)

// Export handles GET /feed/export. It streams the filtered set as a CSV
// attachment with the same columns the feed serves.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", dataset.ExportFilename))

	if err := h.service.Export(w, sess, cfg); err != nil {
		// Headers are already out; all we can do is log.
		h.logger.Error("csv export failed",
			slog.String("session_id", sess.ID),
			slog.Any("error", err))
	}
}
