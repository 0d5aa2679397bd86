package api

import (
	"net/http"
)

// handleHealth reports process liveness. It must stay independent of engine
// readiness so orchestration probes succeed during model warm-up.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]string{
		"status":  "ok",
		"service": "chandra-ocr",
	})
}
