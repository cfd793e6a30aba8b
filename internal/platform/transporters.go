package platform

import (
	"context"
	"fmt"
)

// AllTransporters lists every carrier account.
func (c *Client) AllTransporters(ctx context.Context, token string) ([]Transporter, error) {
	return getList[Transporter](ctx, c, token, "/admin/get-all-transporters", "Failed to fetch transporters")
}

// TransporterWithdrawHistory lists a carrier's past withdrawal requests.
func (c *Client) TransporterWithdrawHistory(ctx context.Context, token, userID string) ([]WithdrawalRecord, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}
	return getList[WithdrawalRecord](ctx, c, token, "/admin/get-transporter-withdraw-history/"+userID, "Failed to fetch withdrawal history")
}
