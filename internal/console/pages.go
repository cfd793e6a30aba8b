// Package console renders the admin pages. Every handler runs behind the
// session guard: it reads the bearer token from the request's session, pulls
// data through the query cache and renders an HTML view.
package console

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/middleware"
	"github.com/haulbid/admin-console/internal/platform"
)

// Pages bundles the dependencies shared by every page handler.
type Pages struct {
	client  *platform.Client
	queries *cache.Queries
	logger  *slog.Logger
}

// NewPages wires the page handlers.
func NewPages(client *platform.Client, queries *cache.Queries, logger *slog.Logger) *Pages {
	return &Pages{client: client, queries: queries, logger: logger}
}

// render draws a page inside the admin layout, attaching session identity and
// any flash message carried in the query string.
func (p *Pages) render(c *fiber.Ctx, name string, data fiber.Map) error {
	sess, _ := middleware.SessionFrom(c)
	data["Identifier"] = sess.Identifier
	data["Role"] = sess.Role
	if v, _ := data["Error"].(string); v == "" {
		if flash := c.Query("err"); flash != "" {
			data["Error"] = flash
		}
	}
	if flash := c.Query("ok"); flash != "" {
		data["Notice"] = flash
	}
	return c.Render(name, data, "layout")
}

// sessionToken returns the bearer token the guard resolved for this request.
func sessionToken(c *fiber.Ctx) string {
	sess, _ := middleware.SessionFrom(c)
	return sess.Token
}

// loginRedirect sends the browser back to the login page, preserving the
// current location. Used when the upstream rejects a stored token.
func loginRedirect(c *fiber.Ctx) error {
	return c.Redirect("/admin/login?next="+url.QueryEscape(c.OriginalURL()), http.StatusSeeOther)
}

// bannerOrRedirect logs a fetch error and returns its message for inline
// display. A true second return means the stored token was rejected upstream
// and the caller must redirect to login instead.
func (p *Pages) bannerOrRedirect(c *fiber.Ctx, err error) (string, bool) {
	if err == nil {
		return "", false
	}
	if platform.IsUnauthorized(err) {
		return "", true
	}
	p.logger.Error("upstream fetch failed", "path", c.Path(), "error", err)
	return err.Error(), false
}

// mutationRedirect finishes a mutation with a redirect carrying the outcome
// as a flash message.
func mutationRedirect(c *fiber.Ctx, target string, err error) error {
	if err != nil {
		if platform.IsUnauthorized(err) {
			return loginRedirect(c)
		}
		return c.Redirect(target+"?err="+url.QueryEscape(err.Error()), http.StatusSeeOther)
	}
	return c.Redirect(target, http.StatusSeeOther)
}

// NotFound renders the catch-all page. It sits outside the guarded group, so
// it renders standalone rather than inside the admin layout.
func (p *Pages) NotFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).Render("not_found", fiber.Map{})
}
