package console

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/platform"
)

// Transporters lists carrier accounts with free-text and status filtering.
func (p *Pages) Transporters(c *fiber.Ctx) error {
	token := sessionToken(c)

	transporters, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyTransporters(),
		func(ctx context.Context) ([]platform.Transporter, error) {
			return p.client.AllTransporters(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	q, status := c.Query("q"), c.Query("status")
	return p.render(c, "transporters", fiber.Map{
		"Title":        "Transporters",
		"Active":       "transporters",
		"Transporters": FilterTransporters(transporters, q, status),
		"Query":        q,
		"Status":       status,
		"Statuses":     platform.AccountStatuses,
		"Error":        banner,
	})
}

// TransporterDetail shows one carrier with their withdrawal history.
func (p *Pages) TransporterDetail(c *fiber.Ctx) error {
	token := sessionToken(c)
	id := c.Params("id")

	transporters, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyTransporters(),
		func(ctx context.Context) ([]platform.Transporter, error) {
			return p.client.AllTransporters(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	var transporter *platform.Transporter
	for i := range transporters {
		if transporters[i].ID == id {
			transporter = &transporters[i]
			break
		}
	}
	if transporter == nil && banner == "" {
		return c.Status(http.StatusNotFound).Render("not_found", fiber.Map{})
	}

	withdrawals, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyTransporterWithdrawals(id),
		func(ctx context.Context) ([]platform.WithdrawalRecord, error) {
			return p.client.TransporterWithdrawHistory(ctx, token, id)
		})
	if banner == "" {
		var redirect bool
		banner, redirect = p.bannerOrRedirect(c, err)
		if redirect {
			return loginRedirect(c)
		}
	}

	return p.render(c, "transporter_detail", fiber.Map{
		"Title":       "Transporter",
		"Active":      "transporters",
		"Transporter": transporter,
		"Withdrawals": withdrawals,
		"Statuses":    platform.AccountStatuses,
		"Error":       banner,
	})
}

// UpdateTransporterStatus applies a status change to a carrier account. The
// backend shares one endpoint for shipper and carrier status updates.
func (p *Pages) UpdateTransporterStatus(c *fiber.Ctx) error {
	token := sessionToken(c)
	id := c.Params("id")
	status := platform.AccountStatus(c.FormValue("status"))

	if !validAccountStatus(status) {
		return mutationRedirect(c, "/admin/transporters", fiber.NewError(http.StatusBadRequest, "unknown status"))
	}

	err := p.client.UpdateUserStatus(c.UserContext(), token, id, status)
	if err != nil {
		p.logger.Error("update transporter status failed", "transporter", id, "status", status, "error", err)
		return mutationRedirect(c, "/admin/transporters", err)
	}

	p.queries.Invalidate(c.UserContext(), cache.KeyTransporters(), cache.KeyUsers())
	p.logger.Info("transporter status updated", "transporter", id, "status", status)
	return mutationRedirect(c, "/admin/transporters", nil)
}
