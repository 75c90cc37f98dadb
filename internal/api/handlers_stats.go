package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleParseStats(w http.ResponseWriter, r *http.Request) {
	rec := s.orchestrator.Metrics()
	if rec == nil || rec.Stats() == nil {
		jsonError(w, "parse stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth":  s.orchestrator.QueueDepth(),
		"jobs_tracked": s.orchestrator.JobCount(),
		"stats":        rec.Stats().Snapshot(),
	})
}
