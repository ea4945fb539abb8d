package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/BerryBytes/agsctl/internal/auth"
	"github.com/BerryBytes/agsctl/internal/rest"
	"github.com/rs/zerolog"
)

const tokenPath = "/generateToken"

// Options holds the connection parameters for a Client.
type Options struct {
	AdminURL    string
	TokenURL    string
	PortalURL   string
	Username    string
	Password    string
	VerifyCerts bool
	Timeout     time.Duration
}

// Client talks to the ArcGIS Server admin API. With the default token
// strategy it owns its token cache and injects the token as a parameter;
// any other Authenticator signs each request instead.
type Client struct {
	AdminURL      string
	TokenURL      string
	Credentials   auth.Credentials
	VerifyCerts   bool
	HTTPClient    HTTPClient
	Authenticator auth.Authenticator
	Logger        zerolog.Logger

	tokens *auth.TokenSource
}

func WithHTTPClient(c HTTPClient) func(*Client) {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithAuthenticator sets the signing strategy. A *auth.TokenAuth replaces the
// client's token endpoint, credentials and token cache with its own; any
// other kind signs each request and no token parameter is sent.
func WithAuthenticator(a auth.Authenticator) func(*Client) {
	return func(client *Client) {
		client.Authenticator = a
	}
}

func WithLogger(l zerolog.Logger) func(*Client) {
	return func(client *Client) {
		client.Logger = l
	}
}

func NewClient(o Options, opts ...func(*Client)) *Client {
	c := &Client{
		AdminURL:    strings.TrimRight(o.AdminURL, "/"),
		TokenURL:    ResolveTokenURL(o.AdminURL, o.TokenURL, o.PortalURL),
		Credentials: auth.Credentials{Username: o.Username, Password: o.Password},
		VerifyCerts: o.VerifyCerts,
		Logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.HTTPClient == nil {
		c.HTTPClient = rest.NewHTTPClient(c.VerifyCerts, o.Timeout)
	}

	if tokenAuth, ok := c.Authenticator.(*auth.TokenAuth); ok {
		c.TokenURL = tokenAuth.TokenURL
		c.Credentials = tokenAuth.Credentials
		c.tokens = tokenAuth.Source()
		return c
	}

	c.tokens = auth.NewTokenSource(c.TokenURL, c.Credentials, c.HTTPClient)
	c.tokens.Logger = c.Logger
	return c
}

// ResolveTokenURL returns tokenURL verbatim when set, otherwise derives it
// from the portal URL or, failing that, the admin URL.
func ResolveTokenURL(adminURL, tokenURL, portalURL string) string {
	if tokenURL != "" {
		return tokenURL
	}
	if portalURL != "" {
		return strings.TrimRight(portalURL, "/") + tokenPath
	}
	return strings.TrimRight(adminURL, "/") + tokenPath
}

func (c *Client) usesToken() bool {
	return c.Authenticator == nil || c.Authenticator.Kind() == auth.KindToken
}

// Token returns the session token, requesting it on first use.
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.tokens.Token(ctx)
}

// BuildParams merges extra with f=json and the session token. The standard
// keys win over caller-supplied ones.
func (c *Client) BuildParams(ctx context.Context, extra map[string]string) (map[string]string, error) {
	params := make(map[string]string, len(extra)+2)
	for k, v := range extra {
		params[k] = v
	}
	params["f"] = "json"

	if !c.usesToken() {
		delete(params, "token")
		return params, nil
	}

	token, err := c.Token(ctx)
	if err != nil {
		return nil, err
	}
	params["token"] = token
	return params, nil
}

func (c *Client) Get(ctx context.Context, url string, params map[string]string) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, url, params)
}

func (c *Client) Post(ctx context.Context, url string, params map[string]string) (map[string]any, error) {
	return c.request(ctx, http.MethodPost, url, params)
}

func (c *Client) request(ctx context.Context, method, url string, params map[string]string) (map[string]any, error) {
	built, err := c.BuildParams(ctx, params)
	if err != nil {
		return nil, err
	}

	req, err := rest.NewRequest(ctx, method, url, built)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if !c.usesToken() {
		if err := c.Authenticator.Sign(req); err != nil {
			return nil, fmt.Errorf("failed to sign request: %w", err)
		}
	}

	c.Logger.Debug().Str("method", method).Str("url", url).Msg("admin request")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var urlErr *neturl.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = rest.RedactURL(urlErr.URL)
		}
		return nil, fmt.Errorf("%s %s failed: %w", method, url, err)
	}

	if v, ok := c.Authenticator.(auth.ResponseVerifier); ok && !c.usesToken() {
		if err := v.Verify(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}

	parsed, err := rest.ParseResponse(resp)
	if err != nil {
		c.Logger.Debug().Err(err).Str("method", method).Str("url", url).Msg("admin request failed")
		return nil, err
	}
	return parsed, nil
}
