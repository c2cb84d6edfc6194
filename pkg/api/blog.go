package api

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"
)

func postURL(id ID) string {
	return "/blog/" + url.PathEscape(id.String())
}

func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	posts := []Post{}
	if err := c.do(ctx, c.request(ctx, ""), resty.MethodGet, "/blog", &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, id ID) (*Post, error) {
	p := new(Post)
	if err := c.do(ctx, c.request(ctx, ""), resty.MethodGet, postURL(id), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) CreatePost(ctx context.Context, token string, in PostInput) (*Post, error) {
	p := new(Post)
	req := c.request(ctx, token).SetBody(in)
	if err := c.do(ctx, req, resty.MethodPost, "/blog", p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) UpdatePost(ctx context.Context, token string, id ID, in PostInput) (*Post, error) {
	p := new(Post)
	req := c.request(ctx, token).SetBody(in)
	if err := c.do(ctx, req, resty.MethodPut, postURL(id), p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) DeletePost(ctx context.Context, token string, id ID) error {
	return c.do(ctx, c.request(ctx, token), resty.MethodDelete, postURL(id), nil)
}

func (c *Client) AddComment(ctx context.Context, token string, postID ID, in CommentInput) (*Comment, error) {
	cm := new(Comment)
	req := c.request(ctx, token).SetBody(in)
	if err := c.do(ctx, req, resty.MethodPost, postURL(postID)+"/comments", cm); err != nil {
		return nil, err
	}
	return cm, nil
}
