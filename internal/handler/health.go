package handler

import "net/http"

// health handles GET /healthz. It reports process liveness only; storage is
// opened and migrated before the server starts accepting traffic.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
