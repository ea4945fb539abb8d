package api_test

import (
	"testing"
	"time"

	"github.com/BerryBytes/agsctl/internal/api"
	"github.com/BerryBytes/agsctl/internal/auth"
	"github.com/BerryBytes/agsctl/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSettings(t *testing.T) {
	settings := config.Settings{
		AdminURL:    "http://myserver/arcgis/admin",
		Username:    "user",
		AuthType:    "token",
		VerifyCerts: true,
		Timeout:     5 * time.Second,
	}

	client, err := api.FromSettings(settings, "pass")
	require.NoError(t, err)
	assert.Equal(t, "http://myserver/arcgis/admin", client.AdminURL)
	assert.Equal(t, "http://myserver/arcgis/admin/generateToken", client.TokenURL)
	assert.Equal(t, auth.Credentials{Username: "user", Password: "pass"}, client.Credentials)
	assert.True(t, client.VerifyCerts)
	assert.Nil(t, client.Authenticator)
}

func TestFromSettings_Kerberos(t *testing.T) {
	client, err := api.FromSettings(config.Settings{
		AdminURL: "http://myserver/arcgis/admin",
		AuthType: "Kerberos",
	}, "")
	require.NoError(t, err)
	require.NotNil(t, client.Authenticator)
	assert.Equal(t, auth.KindKerberos, client.Authenticator.Kind())
}

func TestFromSettings_Errors(t *testing.T) {
	_, err := api.FromSettings(config.Settings{AdminURL: "http://h/arcgis/admin", AuthType: "ntlm"}, "")
	assert.ErrorIs(t, err, auth.ErrNotImplemented)

	_, err = api.FromSettings(config.Settings{AdminURL: "http://h/arcgis/admin", AuthType: "oauth"}, "")
	assert.ErrorIs(t, err, auth.ErrUnknownKind)
}
