package console

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/platform"
)

// Admins lists staff accounts with free-text and role filtering, plus the
// register form.
func (p *Pages) Admins(c *fiber.Ctx) error {
	token := sessionToken(c)

	admins, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyAdmins(),
		func(ctx context.Context) ([]platform.Admin, error) {
			return p.client.AllAdmins(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	q, role := c.Query("q"), c.Query("role")
	return p.render(c, "admins", fiber.Map{
		"Title":  "Admins",
		"Active": "admins",
		"Admins": FilterAdmins(admins, q, role),
		"Query":  q,
		"Role":   role,
		"Error":  banner,
	})
}

// RegisterAdmin creates a staff account and invalidates the admins list.
func (p *Pages) RegisterAdmin(c *fiber.Ctx) error {
	token := sessionToken(c)

	fullName := strings.TrimSpace(c.FormValue("full_name"))
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if fullName == "" || email == "" || password == "" {
		return mutationRedirect(c, "/admin/admins", fiber.NewError(http.StatusBadRequest, "full name, email and password are required"))
	}

	if err := p.client.RegisterAdmin(c.UserContext(), token, fullName, email, password); err != nil {
		p.logger.Error("register admin failed", "email", email, "error", err)
		return mutationRedirect(c, "/admin/admins", err)
	}

	p.queries.Invalidate(c.UserContext(), cache.KeyAdmins())
	p.logger.Info("admin registered", "email", email)
	return mutationRedirect(c, "/admin/admins", nil)
}
