package console

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/haulbid/admin-console/internal/cache"
	"github.com/haulbid/admin-console/internal/platform"
)

// requestFilterStatuses drive the filter dropdown; processed requests show up
// in the list but cannot be assigned from the console.
var requestFilterStatuses = []platform.WithdrawalStatus{
	platform.WithdrawalPending,
	platform.WithdrawalApproved,
	platform.WithdrawalRejected,
	platform.WithdrawalProcessed,
}

// Requests lists withdrawal requests with free-text and status filtering.
func (p *Pages) Requests(c *fiber.Ctx) error {
	token := sessionToken(c)

	requests, err := cache.Fetch(c.UserContext(), p.queries, cache.KeyRequests(),
		func(ctx context.Context) ([]platform.WithdrawalRequest, error) {
			return p.client.AllWithdrawalRequests(ctx, token)
		})
	banner, redirect := p.bannerOrRedirect(c, err)
	if redirect {
		return loginRedirect(c)
	}

	q, status := c.Query("q"), c.Query("status")
	return p.render(c, "requests", fiber.Map{
		"Title":          "Withdrawal Requests",
		"Active":         "requests",
		"Requests":       FilterRequests(requests, q, status),
		"Query":          q,
		"Status":         status,
		"Statuses":       requestFilterStatuses,
		"ReviewStatuses": platform.WithdrawalStatuses,
		"Error":          banner,
	})
}

// UpdateRequestStatus moves a withdrawal request to a new review status and
// invalidates the requests list along with the requester's withdrawal
// history, which reflects the review outcome.
func (p *Pages) UpdateRequestStatus(c *fiber.Ctx) error {
	token := sessionToken(c)
	id := c.Params("id")
	status := platform.WithdrawalStatus(c.FormValue("status"))

	if !validWithdrawalStatus(status) {
		return mutationRedirect(c, "/admin/requests", fiber.NewError(http.StatusBadRequest, "unknown status"))
	}

	err := p.client.UpdateWithdrawalStatus(c.UserContext(), token, id, status)
	if err != nil {
		p.logger.Error("update withdrawal status failed", "request", id, "status", status, "error", err)
		return mutationRedirect(c, "/admin/requests", err)
	}

	keys := []string{cache.KeyRequests()}
	if userID := c.FormValue("user_id"); userID != "" {
		keys = append(keys, cache.KeyTransporterWithdrawals(userID))
	}
	p.queries.Invalidate(c.UserContext(), keys...)
	p.logger.Info("withdrawal status updated", "request", id, "status", status)
	return mutationRedirect(c, "/admin/requests", nil)
}

func validWithdrawalStatus(status platform.WithdrawalStatus) bool {
	for _, s := range platform.WithdrawalStatuses {
		if s == status {
			return true
		}
	}
	return false
}
