package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/amiskov/folio/pkg/logger"
)

// Client talks to the blog backend REST API.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("api: can't create cookie jar, %w", err)
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetCookieJar(jar).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: c}, nil
}

// envelope is the backend's wrapped response shape. Some endpoints answer
// with the bare payload instead, see decode.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (e envelope) reason() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and decodes its normalized payload into out (may be nil).
func (c *Client) do(ctx context.Context, req *resty.Request, method, url string, out interface{}) error {
	resp, err := req.Execute(method, url)
	if err != nil {
		logger.Log(ctx).Errorf("api: %s %s failed, %v", method, url, err)
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, url, err)
	}
	if err := decode(resp.StatusCode(), resp.Status(), resp.Body(), out); err != nil {
		logger.Log(ctx).Debugf("api: %s %s: %v", method, url, err)
		return err
	}
	return nil
}

// decode is the single place where response shapes are normalized:
// non-2xx and {"success": false} become *StatusError, {"data": X} and a bare
// X both decode into out.
func decode(code int, status string, body []byte, out interface{}) error {
	var env envelope
	envErr := json.Unmarshal(body, &env)

	if code < 200 || code > 299 {
		msg := ""
		if envErr == nil {
			msg = env.reason()
		}
		if msg == "" {
			msg = "API Error: " + status
		}
		return &StatusError{Code: code, Message: msg}
	}

	if envErr == nil && env.Success != nil && !*env.Success {
		msg := env.reason()
		if msg == "" {
			msg = "request failed"
		}
		return &StatusError{Code: code, Message: msg}
	}

	if out == nil {
		return nil
	}

	payload := body
	if envErr == nil && env.Data != nil {
		payload = env.Data
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformed)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
