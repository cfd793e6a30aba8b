package platform

import "context"

// AllWithdrawalRequests lists every cash-out request awaiting or past review.
func (c *Client) AllWithdrawalRequests(ctx context.Context, token string) ([]WithdrawalRequest, error) {
	return getList[WithdrawalRequest](ctx, c, token, "/admin/get-all-withdrawal-requests", "Failed to fetch withdrawal requests")
}

type updateWithdrawalRequest struct {
	WithdrawalRequestID string           `json:"withdrawalRequestId"`
	Status              WithdrawalStatus `json:"status"`
}

// UpdateWithdrawalStatus moves a withdrawal request to a new review status.
func (c *Client) UpdateWithdrawalStatus(ctx context.Context, token, requestID string, status WithdrawalStatus) error {
	return c.postNoContent(ctx, token, "/admin/update-withdrawal-request-status", updateWithdrawalRequest{
		WithdrawalRequestID: requestID,
		Status:              status,
	}, "Failed to update withdrawal status")
}
