package auth

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKerberosAuth_Defaults(t *testing.T) {
	t.Setenv("KRB5_CONFIG", "/opt/krb5.conf")
	t.Setenv("KRB5CCNAME", "FILE:/tmp/krb5cc_test")

	krb := NewKerberosAuth(MutualAuthOptional)
	assert.Equal(t, "/opt/krb5.conf", krb.ConfigPath)
	assert.Equal(t, "/tmp/krb5cc_test", krb.CCachePath)
	assert.Empty(t, krb.SPN)
}

func TestKerberosAuth_SignMissingConfig(t *testing.T) {
	krb := NewKerberosAuth(MutualAuthOptional)
	krb.ConfigPath = filepath.Join(t.TempDir(), "missing.conf")

	req, err := http.NewRequest(http.MethodGet, "http://example.com/arcgis/admin", nil)
	require.NoError(t, err)

	err = krb.Sign(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load kerberos config")
	assert.Empty(t, req.Header.Get("Authorization"))

	// the load error is sticky
	assert.Equal(t, err, krb.Sign(req))
}

func TestKerberosAuth_Verify(t *testing.T) {
	negotiate := http.Header{}
	negotiate.Set("WWW-Authenticate", "Negotiate oRQwEqADCgEAoQsGCSqGSIb3EgECAg==")

	tests := []struct {
		name    string
		mutual  MutualAuth
		status  int
		header  http.Header
		wantErr bool
	}{
		{name: "optional without reply token", mutual: MutualAuthOptional, status: http.StatusOK, header: http.Header{}},
		{name: "disabled without reply token", mutual: MutualAuthDisabled, status: http.StatusOK, header: http.Header{}},
		{name: "required with reply token", mutual: MutualAuthRequired, status: http.StatusOK, header: negotiate},
		{name: "required without reply token", mutual: MutualAuthRequired, status: http.StatusOK, header: http.Header{}, wantErr: true},
		{name: "required on unauthorized", mutual: MutualAuthRequired, status: http.StatusUnauthorized, header: http.Header{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			krb := NewKerberosAuth(tt.mutual)
			err := krb.Verify(&http.Response{StatusCode: tt.status, Header: tt.header})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMutualAuthFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
