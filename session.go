package scribe

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "admin_session"

// AdminSession is a narrow typed view over the signed cookie session. It
// exposes only the admin-user attribute and flash notices, never a general
// key-value bag.
type AdminSession struct {
	c echo.Context
}

func adminSession(c echo.Context) AdminSession {
	return AdminSession{c: c}
}

// User returns the authenticated admin username, or "" when unauthenticated.
func (s AdminSession) User() string {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return ""
	}
	user, _ := sess.Values["user"].(string)
	return user
}

// SetUser marks the session as authenticated for the given username.
func (s AdminSession) SetUser(name string) error {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return err
	}
	sess.Values["user"] = name
	return sess.Save(s.c.Request(), s.c.Response())
}

// Clear logs the session out unconditionally, regardless of prior state.
func (s AdminSession) Clear() error {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(s.c.Request(), s.c.Response())
}

// AddFlash queues a one-time notice for the next rendered page.
func (s AdminSession) AddFlash(msg string) error {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return err
	}
	sess.AddFlash(msg)
	return sess.Save(s.c.Request(), s.c.Response())
}

// Flashes drains and returns any queued notices.
func (s AdminSession) Flashes() []string {
	sess, err := session.Get(sessionName, s.c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(s.c.Request(), s.c.Response())
	}
	var out []string
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// isAdmin reports whether the session holds exactly the configured admin
// username. Any other value, including empty, is unauthenticated.
func (a *App) isAdmin(c echo.Context) bool {
	user := adminSession(c).User()
	return user != "" && user == a.Config.AdminUser
}

// checkCredentials compares a login attempt against the configured admin
// account in constant time.
func (a *App) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Config.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Config.AdminPassword)) == 1
	return userOK && passOK
}

func (a *App) newSessionStore() *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(a.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60 * 12,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}
