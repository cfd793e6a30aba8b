package platform

import "context"

// AllAdmins lists every staff account.
func (c *Client) AllAdmins(ctx context.Context, token string) ([]Admin, error) {
	return getList[Admin](ctx, c, token, "/admin/get-all-admins", "Failed to fetch admins")
}

type registerAdminRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterAdmin creates a new staff account.
func (c *Client) RegisterAdmin(ctx context.Context, token, fullName, email, password string) error {
	return c.postNoContent(ctx, token, "/admin/register", registerAdminRequest{
		FullName: fullName,
		Email:    email,
		Password: password,
	}, "Failed to register admin")
}
