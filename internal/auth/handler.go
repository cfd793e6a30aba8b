package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/config"
	"github.com/haulbid/admin-console/internal/session"
)

const dashboardPath = "/admin/dashboard"

// Handler exposes the login page, the login form submission and logout.
type Handler struct {
	cfg    config.Config
	svc    *Service
	logger *slog.Logger
}

// NewHandler wires the auth endpoints.
func NewHandler(cfg config.Config, svc *Service, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, svc: svc, logger: logger}
}

// LoginPage renders the login form. Visitors who already hold a live session
// are sent straight to the dashboard.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	if sid := h.sessionID(c); sid != "" && h.svc.IsAuthenticated(c.UserContext(), sid) {
		return c.Redirect(dashboardPath, http.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Title": "Sign in",
		"Next":  safeReturnPath(c.Query("next")),
	})
}

// Login handles the form submission: authenticate upstream, set the signed
// session cookie and return to the originally requested page.
func (h *Handler) Login(c *fiber.Ctx) error {
	identifier := strings.TrimSpace(c.FormValue("identifier"))
	password := c.FormValue("password")
	next := safeReturnPath(c.FormValue("next"))

	if identifier == "" || password == "" {
		return c.Status(http.StatusBadRequest).Render("login", fiber.Map{
			"Title": "Sign in",
			"Error": "Identifier and password are required",
			"Next":  next,
		})
	}

	sess, err := h.svc.Login(c.UserContext(), identifier, password)
	if err != nil {
		h.logger.Warn("login rejected", "identifier", identifier, "error", err)
		return c.Status(http.StatusUnauthorized).Render("login", fiber.Map{
			"Title": "Sign in",
			"Error": err.Error(),
			"Next":  next,
		})
	}

	value, err := session.EncodeCookie(h.cfg.CookieSecret, sess.ID, h.svc.SessionTTL())
	if err != nil {
		h.logger.Error("encode session cookie", "error", err)
		return c.Status(http.StatusInternalServerError).Render("login", fiber.Map{
			"Title": "Sign in",
			"Error": "Sign-in failed, please try again",
			"Next":  next,
		})
	}

	c.Cookie(h.cookie(value, sess.ExpiresAt))
	h.logger.Info("admin signed in", "identifier", identifier, "role", sess.Role)

	if next == "" {
		next = dashboardPath
	}
	return c.Redirect(next, http.StatusSeeOther)
}

// Logout clears the session and the cookie.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if sid := h.sessionID(c); sid != "" {
		if err := h.svc.Logout(c.UserContext(), sid); err != nil {
			h.logger.Warn("logout", "error", err)
		}
	}

	expired := h.cookie("", time.Now().Add(-time.Hour))
	c.Cookie(expired)
	return c.Redirect("/admin/login", http.StatusSeeOther)
}

func (h *Handler) sessionID(c *fiber.Ctx) string {
	value := c.Cookies(session.CookieName)
	if value == "" {
		return ""
	}
	sid, err := session.DecodeCookie(h.cfg.CookieSecret, value)
	if err != nil {
		return ""
	}
	return sid
}

func (h *Handler) cookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		Secure:   !h.cfg.IsDev(),
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// safeReturnPath accepts only local absolute paths for the post-login
// redirect, rejecting anything that could leave the console.
func safeReturnPath(next string) string {
	if next == "" {
		return ""
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	if strings.ContainsAny(next, "\r\n\\") || strings.Contains(next, "://") {
		return ""
	}
	return next
}
