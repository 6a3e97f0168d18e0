package http

import (
	"net/http"
)

// health answers liveness probes. It is intentionally not wrapped in the
// JSON envelope: probes expect a bare 200 with a fixed body.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("OK"))
}
