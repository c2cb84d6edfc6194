package api

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

func (c *Client) Login(ctx context.Context, email, password string) (*AuthData, error) {
	req := c.request(ctx, "").SetBody(Credentials{Email: email, Password: password})
	return c.auth(ctx, req, "/users/login")
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthData, error) {
	req := c.request(ctx, "").SetBody(Registration{Name: name, Email: email, Password: password})
	return c.auth(ctx, req, "/users/register")
}

func (c *Client) auth(ctx context.Context, req *resty.Request, url string) (*AuthData, error) {
	data := new(AuthData)
	if err := c.do(ctx, req, resty.MethodPost, url, data); err != nil {
		return nil, err
	}
	if data.Token == "" {
		return nil, fmt.Errorf("%w: no token in %s response", ErrMalformed, url)
	}
	return data, nil
}

// Me returns the profile the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*Profile, error) {
	p := new(Profile)
	if err := c.do(ctx, c.request(ctx, token), resty.MethodGet, "/users/me", p); err != nil {
		return nil, err
	}
	if p.ID == "" && p.Email == "" {
		return nil, fmt.Errorf("%w: no user in /users/me response", ErrMalformed)
	}
	return p, nil
}
