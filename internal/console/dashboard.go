package console

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/platform"
)

// Dashboard shows the aggregate stats and the recent shipment feed.
func (p *Pages) Dashboard(c *fiber.Ctx) error {
	token := sessionToken(c)

	stat, statErr := cache.Fetch(c.UserContext(), p.queries, cache.KeyStats(),
		func(ctx context.Context) (platform.DashboardStat, error) {
			return p.client.Stat(ctx, token)
		})

	recent, recentErr := cache.Fetch(c.UserContext(), p.queries, cache.KeyRecentShipments(),
		func(ctx context.Context) ([]platform.Shipment, error) {
			return p.client.RecentShipments(ctx, token)
		})

	err := statErr
	if err == nil {
		err = recentErr
	}
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	return p.render(c, "dashboard", fiber.Map{
		"Title":  "Dashboard",
		"Active": "dashboard",
		"Stat":   stat,
		"Recent": recent,
		"Error":  banner,
	})
}
