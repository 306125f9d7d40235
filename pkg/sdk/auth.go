package sdk

import (
	"context"
	"net/http"
)

// Login exchanges operator credentials for a bearer token. The request is
// sent without any stored credential.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/login", nil, LoginRequest{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:       env.Token,
		Username:    env.Username,
		Permissions: env.Permissions,
	}, nil
}
