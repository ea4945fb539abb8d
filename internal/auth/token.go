package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/BerryBytes/agsctl/internal/rest"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	// TokenTimeout bounds a token request made by a TokenAuth's own HTTP client.
	TokenTimeout = 30 * time.Second
	// TokenClient is the client identifier sent to the token endpoint.
	TokenClient = "requestip"
	// TokenExpiration is the requested token lifetime in minutes.
	TokenExpiration = 60
)

// TokenParams returns the form parameters for a token request.
func TokenParams(creds Credentials) map[string]string {
	return map[string]string{
		"username":   creds.Username,
		"password":   creds.Password,
		"client":     TokenClient,
		"expiration": strconv.Itoa(TokenExpiration),
		"f":          "json",
	}
}

// TokenSource is a read-through cache of size one over the token endpoint.
// The token is fetched on first use and never refreshed. Concurrent first
// calls share a single request; a failed fetch leaves the cache empty.
type TokenSource struct {
	TokenURL    string
	Credentials Credentials
	Client      HTTPDoer
	Logger      zerolog.Logger

	mu    sync.Mutex
	token string
	group singleflight.Group
}

func NewTokenSource(tokenURL string, creds Credentials, client HTTPDoer) *TokenSource {
	return &TokenSource{
		TokenURL:    tokenURL,
		Credentials: creds,
		Client:      client,
		Logger:      zerolog.Nop(),
	}
}

// Cached returns the cached token without touching the network.
func (s *TokenSource) Cached() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Token returns the cached token, fetching it first if necessary.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	if token, ok := s.Cached(); ok {
		return token, nil
	}

	// The shared fetch outlives any single caller; each caller still
	// stops waiting when its own ctx is done.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("token", func() (any, error) {
		if token, ok := s.Cached(); ok {
			return token, nil
		}
		token, err := s.fetch(fetchCtx)
		if err != nil {
			return "", err
		}
		s.mu.Lock()
		s.token = token
		s.mu.Unlock()
		return token, nil
	})

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrTokenAcquisition, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (s *TokenSource) fetch(ctx context.Context) (string, error) {
	if s.Client == nil {
		return "", fmt.Errorf("%w: no HTTP client configured", ErrTokenAcquisition)
	}

	req, err := rest.NewRequest(ctx, http.MethodPost, s.TokenURL, TokenParams(s.Credentials))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenAcquisition, err)
	}

	s.Logger.Debug().Str("url", s.TokenURL).Object("credentials", s.Credentials).Msg("requesting token")

	resp, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenAcquisition, err)
	}

	parsed, err := rest.ParseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenAcquisition, err)
	}

	token, _ := parsed["token"].(string)
	if token == "" {
		return "", fmt.Errorf("%w: %w", ErrTokenAcquisition, errors.New("response has no token field"))
	}
	return token, nil
}

// TokenAuth signs requests with a token query parameter.
type TokenAuth struct {
	Credentials Credentials
	TokenURL    string
	VerifyCerts bool

	source *TokenSource
}

func NewTokenAuth(creds Credentials, tokenURL string, verifyCerts bool) *TokenAuth {
	return &TokenAuth{
		Credentials: creds,
		TokenURL:    tokenURL,
		VerifyCerts: verifyCerts,
		source:      NewTokenSource(tokenURL, creds, rest.NewHTTPClient(verifyCerts, TokenTimeout)),
	}
}

func (a *TokenAuth) Kind() Kind {
	return KindToken
}

// Source exposes the token cache backing this strategy.
func (a *TokenAuth) Source() *TokenSource {
	return a.source
}

func (a *TokenAuth) Sign(req *http.Request) error {
	token, err := a.source.Token(req.Context())
	if err != nil {
		return err
	}
	q := req.URL.Query()
	q.Set("token", token)
	req.URL.RawQuery = q.Encode()
	return nil
}
