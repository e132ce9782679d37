package mention

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"negative-mentions/internal/handler/http/auth"
	"negative-mentions/internal/handler/http/respond"
	"negative-mentions/internal/observability/tracing"
	"negative-mentions/internal/session"
)

// uploadMemoryLimit is how much of a multipart body ParseMultipartForm keeps
// in memory before spilling to disk. The body size cap is enforced upstream.
const uploadMemoryLimit = 10 << 20

// Upload handles POST /dataset. It accepts a CSV or XLSX file in the "file"
// multipart field and makes it the session's active batch. A file that cannot
// be parsed is rejected outright; a parseable file missing required columns is
// accepted but replaced by a sample batch, with the reason in the warning
// field.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("missing file field"))
		return
	}
	defer file.Close()

	// Parsing is the expensive part of an upload, so it gets its own span.
	_, span := tracing.GetTracer().Start(r.Context(), "dataset.parse")
	batch, err := h.service.Loader.FromUpload(header.Filename, file)
	span.End()
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sess.SetUpload(&batch)
	h.logger.Info("dataset uploaded",
		slog.String("user", auth.UserFromContext(r.Context())),
		slog.String("session_id", sess.ID),
		slog.String("filename", header.Filename),
		slog.String("origin", string(batch.Origin)),
		slog.Int("records", len(batch.Mentions)))

	respond.JSON(w, http.StatusOK, toDatasetInfo(batch))
}

// DeleteDataset handles DELETE /dataset. It discards the session's uploaded
// batch; subsequent renders fall back to generated sample data.
func (h *Handler) DeleteDataset(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	sess.ClearUpload()
	respond.JSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Dataset handles GET /dataset. It reports the origin and size of the
// session's active batch without rendering the feed. The use_sample query
// parameter picks the batch size the same way the feed does when no upload
// exists.
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	if sess == nil {
		respond.Error(w, http.StatusInternalServerError, fmt.Errorf("no session"))
		return
	}

	useSample := true
	if v := r.URL.Query().Get("use_sample"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("invalid use_sample: must be true or false"))
			return
		}
		useSample = parsed
	}

	batch := h.service.Loader.Active(useSample, sess.Upload())
	respond.JSON(w, http.StatusOK, toDatasetInfo(batch))
}
