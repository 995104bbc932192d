package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/domain/entity"
	"github.com/Akshayathangaraj/InsurAI-Infosys/internal/infrastructure/session"
	"github.com/Akshayathangaraj/InsurAI-Infosys/pkg/token"
)

// Locals keys for the loaded session and its id.
const (
	LocalSession = "session"
	LocalSID     = "sid"
)

// Guard gates page access. Two policies compose per route: authenticated-only
// and role-restricted. Both redirect to the login page on failure; an
// unauthorized visitor and an unauthenticated one are deliberately
// indistinguishable.
type Guard struct {
	store  *session.Store
	cookie string
}

// NewGuard builds the route guard.
func NewGuard(store *session.Store, cookieName string) *Guard {
	return &Guard{store: store, cookie: cookieName}
}

// LoadSession resolves the session cookie into c.Locals for every request.
// A missing or unknown session is not an error here; the per-route policies
// decide what to do about it.
func (g *Guard) LoadSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(g.cookie)
		if sid != "" {
			c.Locals(LocalSID, sid)
			if sess, err := g.store.Get(c.UserContext(), sid); err == nil {
				c.Locals(LocalSession, sess)
			}
		}
		return c.Next()
	}
}

// RequireAuth admits any authenticated session.
func (g *Guard) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g.liveSession(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireRole admits an authenticated session whose role is in the allowed
// set.
func (g *Guard) RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := g.liveSession(c)
		if sess == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		for _, role := range roles {
			if sess.Role == role {
				return c.Next()
			}
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// liveSession answers the loaded session, or nil when there is none or its
// token has visibly expired. An expired session is torn down on the spot so
// the user lands on the login page instead of a dashboard of failing calls.
// Tokens whose claims cannot be read pass through; the backend stays the
// authority on their validity.
func (g *Guard) liveSession(c *fiber.Ctx) *entity.Session {
	sess := SessionFrom(c)
	if !sess.Authenticated() {
		return nil
	}
	if token.Expired(sess.Token, time.Now()) {
		if sid := SIDFrom(c); sid != "" {
			_ = g.store.Clear(c.UserContext(), sid)
		}
		g.ExpireCookie(c)
		return nil
	}
	return sess
}

// ExpireCookie removes the session cookie from the browser.
func (g *Guard) ExpireCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     g.cookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SetCookie installs the session cookie after login.
func (g *Guard) SetCookie(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     g.cookie,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// SessionFrom answers the session loaded by LoadSession, or nil.
func SessionFrom(c *fiber.Ctx) *entity.Session {
	if sess, ok := c.Locals(LocalSession).(*entity.Session); ok {
		return sess
	}
	return nil
}

// SIDFrom answers the session id from the request cookie, or "".
func SIDFrom(c *fiber.Ctx) string {
	if sid, ok := c.Locals(LocalSID).(string); ok {
		return sid
	}
	return ""
}
