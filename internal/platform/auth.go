package platform

import (
	"context"
	"encoding/json"
	"net/http"
)

const loginFallback = "Login failed"

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login exchanges staff credentials for a bearer token. The call never
// carries a bearer header itself. A non-success status or a success body
// without a token both fail with the backend message when one is present.
func (c *Client) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	status, raw, err := c.do(ctx, http.MethodPost, "/admin/login", "", loginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return LoginResult{}, err
	}
	if !success(status) {
		return LoginResult{}, apiError(status, raw, loginFallback)
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return LoginResult{}, decodeErr(err)
	}
	if result.Token == "" {
		return LoginResult{}, &APIError{Status: status, Message: loginFallback}
	}
	return result, nil
}
