package platform

import (
	"context"
	"fmt"
)

// AllUsers lists every shipper account.
func (c *Client) AllUsers(ctx context.Context, token string) ([]User, error) {
	return getList[User](ctx, c, token, "/admin/get-all-users", "Failed to fetch users")
}

// UserPaymentHistory lists the escrow payments a shipper was party to.
func (c *Client) UserPaymentHistory(ctx context.Context, token, userID string) ([]Payment, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is required")
	}
	return getList[Payment](ctx, c, token, "/admin/get-user-payment-history/"+userID, "Failed to fetch payment history")
}

type updateUserStatusRequest struct {
	UserID string        `json:"userId"`
	Status AccountStatus `json:"status"`
}

// UpdateUserStatus assigns a new account status to a shipper or transporter.
func (c *Client) UpdateUserStatus(ctx context.Context, token, userID string, status AccountStatus) error {
	return c.postNoContent(ctx, token, "/admin/update-user-status", updateUserStatusRequest{
		UserID: userID,
		Status: status,
	}, "Failed to update user status")
}
