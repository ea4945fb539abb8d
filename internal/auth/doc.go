// Package auth selects and implements the request-signing strategies used
// against the ArcGIS Server admin API.
//
// BuildAuth dispatches on a Kind:
//
//   - token: a short-lived token from the generateToken endpoint, added as a
//     "token" query parameter. See TokenSource for the caching rules.
//   - kerberos: SPNEGO Negotiate header from the user's credential cache.
//   - ntlm, saml: declared but always fail with ErrNotImplemented.
//
// Any strategy can be installed on an http.Client with NewTransport.
package auth
