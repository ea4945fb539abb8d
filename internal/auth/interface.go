package auth

import "net/http"

// Authenticator attaches authentication material to outbound requests.
type Authenticator interface {
	Kind() Kind
	Sign(req *http.Request) error
}

// ResponseVerifier is implemented by strategies that inspect the server's reply.
type ResponseVerifier interface {
	Verify(resp *http.Response) error
}

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
