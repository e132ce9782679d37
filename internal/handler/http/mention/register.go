package mention

import "net/http"

// Register wires the feed routes onto mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /feed", h.Feed)
	mux.HandleFunc("POST /feed/page/next", h.NextPage)
	mux.HandleFunc("POST /feed/page/prev", h.PrevPage)
	mux.HandleFunc("GET /feed/trends", h.Trends)
	mux.HandleFunc("GET /feed/keywords", h.Keywords)
	mux.HandleFunc("GET /feed/export", h.Export)
	mux.HandleFunc("POST /dataset", h.Upload)
	mux.HandleFunc("DELETE /dataset", h.DeleteDataset)
	mux.HandleFunc("GET /dataset", h.Dataset)
}
