package handlers

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nishat/internal/middleware"
)

// adminCookieMaxAge is how long a login lasts.
const adminCookieMaxAge = 7 * 24 * time.Hour

// AuthConfig holds the single admin account and the cookie sentinel.
// When PasswordHash is set it is a bcrypt hash and Password is ignored.
// A nil Throttle leaves failed logins unlimited.
type AuthConfig struct {
	Email        string
	Password     string
	PasswordHash string
	CookieValue  string
	Secure       bool
	Throttle     *middleware.LoginThrottle
}

// Auth serves login, logout and session checks for the admin UI.
type Auth struct {
	cfg AuthConfig
}

// NewAuth creates a new Auth handler group.
func NewAuth(cfg AuthConfig) *Auth {
	return &Auth{cfg: cfg}
}

// Login handles POST /api/auth/login.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.Email == "" || body.Password == "" {
		writeError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	key := middleware.ThrottleKey(r, body.Email)
	if wait := a.cfg.Throttle.RetryAfter(key); wait > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		writeError(w, "Too many attempts, please try again later", http.StatusTooManyRequests)
		return
	}

	if !a.checkCredentials(body.Email, body.Password) {
		a.cfg.Throttle.Fail(key)
		slog.Warn("admin login failed", "email", body.Email, "remote", middleware.ClientIP(r))
		writeError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	a.cfg.Throttle.Succeed(key)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    a.cfg.CookieValue,
		Path:     "/",
		MaxAge:   int(adminCookieMaxAge.Seconds()),
		HttpOnly: false, // the admin UI reads it to decide whether to show controls
		Secure:   a.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Info("admin logged in", "email", body.Email)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Logout handles POST /api/auth/logout.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   a.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Session handles GET /api/auth/session.
func (a *Auth) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": middleware.IsAdmin(r, a.cfg.CookieValue),
	})
}

func (a *Auth) checkCredentials(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.cfg.Email)) == 1
	var passOK bool
	if a.cfg.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Password)) == 1
	}
	return emailOK && passOK
}
