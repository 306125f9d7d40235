package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const apiPrefix = "/api"

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	middleware []Middleware
	doer       Doer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

func WithMiddleware(mw ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, mw...)
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	var d Doer = c.httpClient
	for i := len(c.middleware) - 1; i >= 0; i-- {
		d = c.middleware[i](d)
	}
	c.doer = d
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// PanelURL is the address of the plugin's own browser panel.
func (c *Client) PanelURL() string {
	return c.baseURL + "/"
}

type envelope struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data"`
	Enabled     bool            `json:"enabled"`
	Token       string          `json:"token"`
	Username    string          `json:"username"`
	Permissions []string        `json:"permissions"`
}

func (e *envelope) decodeData(target interface{}) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Data, target); err != nil {
		return &TransportError{Op: "decode data", Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, target interface{}) (*envelope, error) {
	env, err := c.do(ctx, http.MethodGet, path, nil, nil, true)
	if err != nil {
		return nil, err
	}
	if target != nil {
		if err := env.decodeData(target); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*envelope, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, true)
}

func (c *Client) delete(ctx context.Context, path string, query url.Values) error {
	_, err := c.do(ctx, http.MethodDelete, path, query, nil, true)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, authenticated bool) (*envelope, error) {
	op := method + " " + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	target := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	var token string
	if authenticated && c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if token != "" && isAuthFailure(resp.StatusCode) {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message, Authenticated: true}
	}
	if decodeErr != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("unexpected response (%d): %w", resp.StatusCode, decodeErr)}
	}
	if !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message, Authenticated: token != ""}
	}
	return &env, nil
}
