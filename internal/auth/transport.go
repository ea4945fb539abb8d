package auth

import (
	"fmt"
	"net/http"
)

type signingTransport struct {
	auth Authenticator
	base http.RoundTripper
}

// NewTransport wraps base so every request is signed by a.
func NewTransport(a Authenticator, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &signingTransport{auth: a, base: base}
}

func (t *signingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	signed := req.Clone(req.Context())
	if err := t.auth.Sign(signed); err != nil {
		return nil, fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := t.base.RoundTrip(signed)
	if err != nil {
		return nil, err
	}

	if v, ok := t.auth.(ResponseVerifier); ok {
		if err := v.Verify(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}
