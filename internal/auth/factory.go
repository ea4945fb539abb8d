package auth

import "fmt"

type builder func(creds Credentials, tokenURL string, verifyCerts bool) (Authenticator, error)

var builders = map[Kind]builder{
	KindToken: func(creds Credentials, tokenURL string, verifyCerts bool) (Authenticator, error) {
		return NewTokenAuth(creds, tokenURL, verifyCerts), nil
	},
	KindKerberos: func(Credentials, string, bool) (Authenticator, error) {
		return NewKerberosAuth(MutualAuthOptional), nil
	},
	KindNTLM: notImplemented(KindNTLM),
	KindSAML: notImplemented(KindSAML),
}

func notImplemented(kind Kind) builder {
	return func(Credentials, string, bool) (Authenticator, error) {
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, kind)
	}
}

// BuildAuth selects the signing strategy for kind. The kerberos strategy
// ignores the credentials and token endpoint.
func BuildAuth(kind Kind, username, password, tokenURL string, verifyCerts bool) (Authenticator, error) {
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a valid auth type", ErrUnknownKind, kind)
	}
	return build(Credentials{Username: username, Password: password}, tokenURL, verifyCerts)
}
