package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/jcmturner/gokrb5/v8/client"
	krbconfig "github.com/jcmturner/gokrb5/v8/config"
	krbcredentials "github.com/jcmturner/gokrb5/v8/credentials"
	"github.com/jcmturner/gokrb5/v8/spnego"
)

// MutualAuth controls whether the server must prove its identity back.
type MutualAuth int

const (
	MutualAuthRequired MutualAuth = iota
	MutualAuthOptional
	MutualAuthDisabled
)

var ErrMutualAuthFailed = errors.New("server did not return a mutual authentication token")

// KerberosAuth signs requests with a SPNEGO Negotiate header using the
// current user's credential cache. The Kerberos client is loaded on first use.
type KerberosAuth struct {
	MutualAuth MutualAuth
	ConfigPath string
	CCachePath string
	// SPN overrides the service principal; empty derives HTTP/<host>.
	SPN string

	once   sync.Once
	client *client.Client
	err    error
}

func NewKerberosAuth(mutual MutualAuth) *KerberosAuth {
	return &KerberosAuth{
		MutualAuth: mutual,
		ConfigPath: defaultKrb5Config(),
		CCachePath: defaultCCachePath(),
	}
}

func (a *KerberosAuth) Kind() Kind {
	return KindKerberos
}

func (a *KerberosAuth) Sign(req *http.Request) error {
	cl, err := a.loadClient()
	if err != nil {
		return err
	}
	if err := spnego.SetSPNEGOHeader(cl, req, a.SPN); err != nil {
		return fmt.Errorf("failed to set SPNEGO header: %w", err)
	}
	return nil
}

// Verify only enforces a Negotiate reply when mutual auth is required.
func (a *KerberosAuth) Verify(resp *http.Response) error {
	if a.MutualAuth != MutualAuthRequired {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil
	}
	for _, h := range resp.Header.Values("WWW-Authenticate") {
		if strings.HasPrefix(h, "Negotiate ") {
			return nil
		}
	}
	return ErrMutualAuthFailed
}

func (a *KerberosAuth) loadClient() (*client.Client, error) {
	a.once.Do(func() {
		cfg, err := krbconfig.Load(a.ConfigPath)
		if err != nil {
			a.err = fmt.Errorf("failed to load kerberos config %s: %w", a.ConfigPath, err)
			return
		}
		ccache, err := krbcredentials.LoadCCache(a.CCachePath)
		if err != nil {
			a.err = fmt.Errorf("failed to load kerberos credential cache %s: %w", a.CCachePath, err)
			return
		}
		a.client, a.err = client.NewFromCCache(ccache, cfg, client.DisablePAFXFAST(true))
		if a.err != nil {
			a.err = fmt.Errorf("failed to create kerberos client: %w", a.err)
		}
	})
	return a.client, a.err
}

func defaultKrb5Config() string {
	if path := os.Getenv("KRB5_CONFIG"); path != "" {
		return path
	}
	return "/etc/krb5.conf"
}

func defaultCCachePath() string {
	if name := os.Getenv("KRB5CCNAME"); name != "" {
		return strings.TrimPrefix(name, "FILE:")
	}
	return fmt.Sprintf("/tmp/krb5cc_%d", os.Getuid())
}
