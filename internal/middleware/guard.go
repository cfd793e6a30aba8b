package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/config"
	"github.com/haulbid/admin-console/internal/session"
)

// SessionKey is the fiber locals key holding the resolved session.
const SessionKey = "admin_session"

// RequireSession guards the admin pages: it resolves the signed cookie to a
// stored session and redirects unauthenticated navigation to the login page,
// preserving the originally requested path for the post-login return.
func RequireSession(cfg config.Config, sessions session.Repository, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		toLogin := func() error {
			target := "/admin/login?next=" + url.QueryEscape(c.OriginalURL())
			return c.Redirect(target, http.StatusSeeOther)
		}

		value := c.Cookies(session.CookieName)
		if value == "" {
			return toLogin()
		}

		sid, err := session.DecodeCookie(cfg.CookieSecret, value)
		if err != nil {
			logger.Debug("session cookie rejected", "error", err)
			return toLogin()
		}

		sess, err := sessions.Find(c.UserContext(), sid)
		if err != nil {
			if err != session.ErrNotFound {
				logger.Warn("session lookup failed", "error", err)
			}
			return toLogin()
		}

		c.Locals(SessionKey, sess)
		return c.Next()
	}
}

// SessionFrom extracts the session the guard stored on the request.
func SessionFrom(c *fiber.Ctx) (session.Session, bool) {
	sess, ok := c.Locals(SessionKey).(session.Session)
	return sess, ok
}
