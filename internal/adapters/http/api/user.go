package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/okian/grandstand/internal/adapters/store"
	service "github.com/okian/grandstand/internal/app"
	"github.com/okian/grandstand/internal/domain/model"
)

type loginRequest struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
	Created bool       `json:"created"`
}

type userResponse struct {
	Success bool             `json:"success"`
	User    model.User       `json:"user"`
	Stats   *model.UserStats `json:"stats,omitempty"`
}

type favoriteTeamRequest struct {
	Team string `json:"team"`
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	overview, err := s.deps.UserOverview(r.Context(), user.ID)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{Success: true, User: overview.User, Stats: &overview.Stats})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	user, created, err := s.deps.Login(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	setSessionCookie(w, user.Username)
	writeJSON(w, http.StatusOK, loginResponse{Success: true, User: user, Created: created})
}

func (s *Server) handleFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	user, err := s.ensureUser(w, r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	var req favoriteTeamRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	updated, err := s.deps.SetFavoriteTeam(r.Context(), user.ID, req.Team)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{Success: true, User: updated})
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrEmptyUsername),
		errors.Is(err, service.ErrEmptyTeam),
		errors.Is(err, service.ErrNoQuiz),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrNoActiveQuiz):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
