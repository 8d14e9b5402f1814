package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"car-service-booking/internal/http/middleware"
)

// TokenIssuer mints a session token for an email. *auth.Service satisfies it.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

// CreateSessionHandler logs a user in: it signs a token for the posted email
// and sets it as an http-only cookie. The email is not verified against any
// credential; that trust boundary is inherited from the original contract.
type CreateSessionHandler struct {
	Tokens       TokenIssuer
	CookieSecure bool
	Log          zerolog.Logger
}

type createSessionReq struct {
	Email string `json:"email"`
}

func (h *CreateSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		h.Log.Error().Err(err).Msg("token issue failed")
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.CookieSecure,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// Logout instructs the client to discard the session cookie. Already-issued
// tokens stay valid until expiry; there is no server-side revocation.
func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"logout": true})
}
