package api

import (
	"net/http"

	service "github.com/okian/grandstand/internal/app"
	"github.com/okian/grandstand/internal/domain/model"
)

const sessionCookie = "grandstand_user"

// cookie lifetime in seconds, thirty days.
const sessionMaxAge = 30 * 24 * 60 * 60

func setSessionCookie(w http.ResponseWriter, username string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    username,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ensureUser resolves the request's user from the session cookie, minting a
// guest identity when no cookie is present.
func (s *Server) ensureUser(w http.ResponseWriter, r *http.Request) (model.User, error) {
	username := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		username = c.Value
	}
	if username == "" {
		username = service.GuestUsername()
	}
	user, _, err := s.deps.Login(r.Context(), username)
	if err != nil {
		return model.User{}, err
	}
	setSessionCookie(w, user.Username)
	return user, nil
}
