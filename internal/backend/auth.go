package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful login. User is kept raw so the
// caller decides which fields it trusts.
type LoginResult struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	User        json.RawMessage `json:"user"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	Password  string `json:"password"`
}

// Login exchanges email and password for an identity and credential.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	result := new(LoginResult)
	resp, err := c.do(c.request(ctx, "").SetBody(req), http.MethodPost, "/auth/login")
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return nil, fmt.Errorf("backend: decode login: %w", err)
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("backend: login response carried no access token")
	}
	return result, nil
}

// Register creates an account. The created user is not consumed.
func (c *Client) Register(ctx context.Context, token string, req RegisterRequest) error {
	_, err := c.do(c.request(ctx, token).SetBody(req), http.MethodPost, "/auth/register")
	return err
}
