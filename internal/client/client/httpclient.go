package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reomoon/memo/internal/client/models"
	"github.com/reomoon/memo/internal/common"
	"github.com/reomoon/memo/internal/netx"
)

// HTTPClient talks JSON to the memo proxy server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns a client for the proxy at baseURL
// (e.g. "http://localhost:3000"). Every call is bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, header map[string]string, in, out any) error {
	return mapError(netx.DoJSON(ctx, c.http, method, c.baseURL+path, header, in, out))
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/healthz", nil, nil, &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) GenerateTitle(ctx context.Context, body string) (string, error) {
	var resp struct {
		Title string `json:"title"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/generateTitle", nil, map[string]string{"body": body}, &resp); err != nil {
		return "", err
	}
	return resp.Title, nil
}

func (c *HTTPClient) Summarize(ctx context.Context, body string) (string, error) {
	var resp struct {
		Summary string `json:"summary"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/summarize", nil, map[string]string{"body": body}, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *HTTPClient) ClassifyCategory(ctx context.Context, text string) (string, error) {
	var resp struct {
		Category string `json:"category"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/classifyCategory", nil, map[string]string{"text": text}, &resp); err != nil {
		return "", err
	}
	return resp.Category, nil
}

func (c *HTTPClient) AuthURL(ctx context.Context, redirect string) (string, error) {
	path := "/api/auth/github"
	if redirect != "" {
		path += "?redirect=" + url.QueryEscape(redirect)
	}
	var resp struct {
		AuthURL string `json:"authUrl"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.AuthURL, nil
}

func (c *HTTPClient) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	var resp struct {
		SessionID    string      `json:"sessionId"`
		SessionToken string      `json:"sessionToken"`
		User         models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/github/callback", nil, map[string]string{"code": code}, &resp); err != nil {
		return nil, err
	}

	id := resp.SessionID
	if id == "" {
		id = resp.SessionToken
	}
	if id == "" {
		return nil, errors.New("no session in response")
	}
	return &Session{ID: id, User: resp.User}, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	header := map[string]string{common.SessionHeaderName: sessionID}
	if err := c.do(ctx, http.MethodGet, "/api/auth/user", header, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context, sessionID string) error {
	header := map[string]string{common.SessionHeaderName: sessionID}
	return c.do(ctx, http.MethodPost, "/api/auth/logout", header, nil, nil)
}
