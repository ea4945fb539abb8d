package auth

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Kind names an authentication strategy.
type Kind string

const (
	KindToken    Kind = "token"
	KindKerberos Kind = "kerberos"
	KindNTLM     Kind = "ntlm"
	KindSAML     Kind = "saml"
)

func (k Kind) String() string {
	return string(k)
}

// ParseKind maps a case-insensitive name onto a Kind.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := builders[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// Credentials are passed through to the token endpoint untouched.
type Credentials struct {
	Username string
	Password string
}

// MarshalZerologObject keeps the password out of structured logs.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", c.Username).Str("password", "********")
}

func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: ********}", c.Username)
}
