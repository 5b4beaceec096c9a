package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.dbPing != nil {
		if err := h.dbPing(r.Context()); err != nil {
			h.log.InternalError("health: db check failed", err)
			writeError(w, http.StatusServiceUnavailable, "db_unavailable", "database unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
