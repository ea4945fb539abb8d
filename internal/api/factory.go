package api

import (
	"fmt"

	"github.com/BerryBytes/agsctl/internal/auth"
	"github.com/BerryBytes/agsctl/internal/config"
)

// FromSettings builds a Client for the configured auth type. password must
// already be resolved; it is ignored by strategies that do not use it.
func FromSettings(s config.Settings, password string, opts ...func(*Client)) (*Client, error) {
	kind, err := auth.ParseKind(s.AuthType)
	if err != nil {
		return nil, err
	}

	o := Options{
		AdminURL:    s.AdminURL,
		TokenURL:    s.TokenURL,
		PortalURL:   s.PortalURL,
		Username:    s.Username,
		Password:    password,
		VerifyCerts: s.VerifyCerts,
		Timeout:     s.Timeout,
	}

	if kind != auth.KindToken {
		tokenURL := ResolveTokenURL(s.AdminURL, s.TokenURL, s.PortalURL)
		authenticator, err := auth.BuildAuth(kind, s.Username, password, tokenURL, s.VerifyCerts)
		if err != nil {
			return nil, fmt.Errorf("failed to configure %s authentication: %w", kind, err)
		}
		opts = append([]func(*Client){WithAuthenticator(authenticator)}, opts...)
	}

	return NewClient(o, opts...), nil
}
