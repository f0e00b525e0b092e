package api

import (
	"net/http"
	"strconv"

	"github.com/okian/grandstand/internal/domain/rewards"
)

type rewardsResponse struct {
	Success bool `json:"success"`
	rewards.Outcome
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	limit := queryInt(r, "limit", 10)
	outcome := s.deps.Leaderboard(r.Context(), user.ID, limit)
	writeJSON(w, http.StatusOK, rewardsResponse{Success: outcome.Success, Outcome: outcome})
}

func (s *Server) handleRewards(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	outcome := s.deps.UserRewards(r.Context(), user.ID)
	writeJSON(w, http.StatusOK, rewardsResponse{Success: outcome.Success, Outcome: outcome})
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
