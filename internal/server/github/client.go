// Package github implements the two OAuth calls the auth proxy makes to
// GitHub: exchanging a code for an access token and reading the profile.
package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/reomoon/memo/internal/netx"
	"github.com/reomoon/memo/internal/server/models"
)

const (
	DefaultAuthorizeURL = "https://github.com/login/oauth/authorize"
	DefaultTokenURL     = "https://github.com/login/oauth/access_token"
	DefaultAPIURL       = "https://api.github.com"

	acceptHeader = "application/vnd.github.v3+json"
)

// Client holds the OAuth app credentials and GitHub endpoints.
type Client struct {
	ClientID     string
	ClientSecret string

	AuthorizeURL string
	TokenURL     string
	APIURL       string

	http *http.Client
}

// New returns a Client for github.com.
func New(clientID, clientSecret string, timeout time.Duration) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AuthorizeURL: DefaultAuthorizeURL,
		TokenURL:     DefaultTokenURL,
		APIURL:       DefaultAPIURL,
		http:         &http.Client{Timeout: timeout},
	}
}

// Configured reports whether both OAuth credentials are set.
func (c *Client) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// AuthCodeURL returns the authorization page URL for redirect with the
// "user" scope.
func (c *Client) AuthCodeURL(redirect string) string {
	q := url.Values{}
	q.Set("client_id", c.ClientID)
	q.Set("redirect_uri", redirect)
	q.Set("scope", "user")
	return c.AuthorizeURL + "?" + q.Encode()
}

// Exchange trades code for an access token. An empty token with a nil error
// means GitHub rejected the code.
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	in := map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"code":          code,
	}
	var out struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	header := map[string]string{"Accept": acceptHeader}
	if err := netx.DoJSON(ctx, c.http, http.MethodPost, c.TokenURL, header, in, &out); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

// User fetches the profile of the token owner.
func (c *Client) User(ctx context.Context, accessToken string) (*models.User, error) {
	header := map[string]string{
		"Accept":        acceptHeader,
		"Authorization": "Bearer " + accessToken,
	}
	var u models.User
	if err := netx.DoJSON(ctx, c.http, http.MethodGet, strings.TrimRight(c.APIURL, "/")+"/user", header, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
