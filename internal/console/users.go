package console

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/platform"
)

// Users lists shipper accounts with free-text and status filtering.
func (p *Pages) Users(c *fiber.Ctx) error {
	token := sessionToken(c)

	users, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyUsers(),
		func(ctx context.Context) ([]platform.User, error) {
			return p.client.AllUsers(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	q, status := c.Query("q"), c.Query("status")
	return p.render(c, "users", fiber.Map{
		"Title":    "Users",
		"Active":   "users",
		"Users":    FilterUsers(users, q, status),
		"Query":    q,
		"Status":   status,
		"Statuses": platform.AccountStatuses,
		"Error":    banner,
	})
}

// UserDetail shows one shipper with their escrow payment history.
func (p *Pages) UserDetail(c *fiber.Ctx) error {
	token := sessionToken(c)
	id := c.Params("id")

	users, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyUsers(),
		func(ctx context.Context) ([]platform.User, error) {
			return p.client.AllUsers(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	var user *platform.User
	for i := range users {
		if users[i].ID == id {
			user = &users[i]
			break
		}
	}
	if user == nil && banner == "" {
		return c.Status(http.StatusNotFound).Render("not_found", fiber.Map{})
	}

	payments, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyUserPayments(id),
		func(ctx context.Context) ([]platform.Payment, error) {
			return p.client.UserPaymentHistory(ctx, token, id)
		})
	if banner == "" {
		var redirect bool
		banner, redirect = p.bannerOrRedirect(c, err)
		if redirect {
			return loginRedirect(c)
		}
	}

	return p.render(c, "user_detail", fiber.Map{
		"Title":    "User",
		"Active":   "users",
		"User":     user,
		"Payments": payments,
		"Statuses": platform.AccountStatuses,
		"Error":    banner,
	})
}

// UpdateUserStatus applies a status change to a shipper account and
// invalidates the users list so the next render reflects it.
func (p *Pages) UpdateUserStatus(c *fiber.Ctx) error {
	token := sessionToken(c)
	id := c.Params("id")
	status := platform.AccountStatus(c.FormValue("status"))

	if !validAccountStatus(status) {
		return mutationRedirect(c, "/admin/users", fiber.NewError(http.StatusBadRequest, "unknown status"))
	}

	err := p.client.UpdateUserStatus(c.UserContext(), token, id, status)
	if err != nil {
		p.logger.Error("update user status failed", "user", id, "status", status, "error", err)
		return mutationRedirect(c, "/admin/users", err)
	}

	p.queries.Invalidate(c.UserContext(), cache.KeyUsers(), cache.KeyTransporters())
	p.logger.Info("user status updated", "user", id, "status", status)
	return mutationRedirect(c, "/admin/users", nil)
}

func validAccountStatus(status platform.AccountStatus) bool {
	for _, s := range platform.AccountStatuses {
		if s == status {
			return true
		}
	}
	return false
}
