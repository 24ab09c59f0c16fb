package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/color-game/schemefinder/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminKeyHeader = "X-Admin-Key"

var ErrAdminKey = errors.New("invalid admin key")

func handleCors(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Admin-Key")
		if r.Method == http.MethodOptions {
			return
		}
		h.ServeHTTP(w, r)
	}
}

// sessionFromCookie resolves the session named by the signed session cookie
func (app *Application) sessionFromCookie(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(models.SESSION_COOKIE_NAME)
	if err != nil {
		return nil, errors.New("no session cookie found")
	}

	claims, err := models.ValidateSessionToken(cookie.Value, app.Config.SessionSecret)
	if err != nil {
		return nil, err
	}

	session, ok := app.Sessions.Get(claims.SessionID)
	if !ok {
		return nil, errors.New("session expired")
	}
	return session, nil
}

func (app *Application) issueSessionCookie(w http.ResponseWriter, session *Session) error {
	expiry := time.Now().Add(app.Config.SessionTTL)
	claims := models.SessionClaims{
		SessionID: session.ID,
		Scope:     "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(app.Config.SessionSecret))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     models.SESSION_COOKIE_NAME,
		Value:    signed,
		HttpOnly: true,
		Secure:   !app.Config.DevMode,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		Expires:  expiry,
	})
	return nil
}

// withSession attaches the caller's session, starting a new one when the
// cookie is missing, invalid or points at a swept session.
func (app *Application) withSession(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := app.sessionFromCookie(r)
		if err != nil {
			session = app.Sessions.Create(app.Palettes)
			if err := app.issueSessionCookie(w, session); err != nil {
				app.internalServerError(w, r, err)
				return
			}
		}

		h.ServeHTTP(w, r.WithContext(withSessionContext(r.Context(), session)))
	}
}

// requireAdmin checks the admin key header against the configured bcrypt hash
func (app *Application) requireAdmin(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(adminKeyHeader)
		if app.Config.AdminKeyHash == "" || key == "" {
			app.invalidAuthorization(w, r, ErrAdminKey)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(app.Config.AdminKeyHash), []byte(key)); err != nil {
			app.invalidAuthorization(w, r, ErrAdminKey)
			return
		}

		h.ServeHTTP(w, r)
	}
}
