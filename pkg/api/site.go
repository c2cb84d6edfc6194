package api

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
)

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	if err := c.do(ctx, c.request(ctx, ""), resty.MethodGet, "/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) GetProject(ctx context.Context, id ID) (*Project, error) {
	p := new(Project)
	err := c.do(ctx, c.request(ctx, ""), resty.MethodGet, "/projects/"+url.PathEscape(id.String()), p)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) SendMessage(ctx context.Context, msg ContactMessage) error {
	return c.do(ctx, c.request(ctx, "").SetBody(msg), resty.MethodPost, "/contact", nil)
}
