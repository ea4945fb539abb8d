package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/home/user/.config/agsctl"

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(testDir, 0700))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, name), []byte(content), 0600))
}

func TestLoad_NoConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, testDir)
	require.NoError(t, err)
	assert.NotNil(t, cfg.RawCustomConfig)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, DefaultAuthType, cfg.AuthType)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.VerifyCerts)
	assert.Error(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config.yaml", `
arcgis:
  admin_url: http://myserver/arcgis/admin
  portal_url: http://myserver/portal/sharing/rest
  username: user
  password: ssm:/ags/password
  auth_type: kerberos
  verify_certs: true
  timeout: 10s
aws:
  region: us-east-1
  profile: publishing
`)

	cfg, err := Load(fs, testDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testDir, "config.yaml"), cfg.ConfigFile)
	assert.Equal(t, "http://myserver/arcgis/admin", cfg.AdminURL)
	assert.Equal(t, "http://myserver/portal/sharing/rest", cfg.PortalURL)
	assert.Equal(t, "user", cfg.Username)
	assert.Equal(t, "ssm:/ags/password", cfg.Password)
	assert.Equal(t, "kerberos", cfg.AuthType)
	assert.True(t, cfg.VerifyCerts)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "publishing", cfg.AWSProfile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_JSONFallback(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config.json", `{"arcgis": {"admin_url": "https://gis/arcgis/admin", "token_url": "https://gis/arcgis/tokens/generateToken"}}`)

	cfg, err := Load(fs, testDir)
	require.NoError(t, err)
	assert.Equal(t, "https://gis/arcgis/admin", cfg.AdminURL)
	assert.Equal(t, "https://gis/arcgis/tokens/generateToken", cfg.TokenURL)
}

func TestLoad_InvalidFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config.yml", "arcgis: [unterminated")

	_, err := Load(fs, testDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config.yaml", "arcgis:\n  admin_url: http://h/arcgis/admin\n  timeout: soon\n")

	_, err := Load(fs, testDir)
	assert.ErrorContains(t, err, "invalid timeout")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config.yaml", "arcgis:\n  admin_url: http://file/arcgis/admin\n  username: fileuser\n")

	t.Setenv("AGS_ADMIN_URL", "http://env/arcgis/admin")
	t.Setenv("AGS_PASSWORD", "envpass")
	t.Setenv("AGS_VERIFY_CERTS", "true")
	t.Setenv("AGS_TIMEOUT", "5s")
	t.Setenv("AGS_AWS_REGION", "eu-central-1")

	cfg, err := Load(fs, testDir)
	require.NoError(t, err)
	assert.Equal(t, "http://env/arcgis/admin", cfg.AdminURL)
	assert.Equal(t, "fileuser", cfg.Username)
	assert.Equal(t, "envpass", cfg.Password)
	assert.True(t, cfg.VerifyCerts)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "eu-central-1", cfg.AWSRegion)
}

func TestFindConfigFile_Precedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "config.json", "{}")
	writeFile(t, fs, "config.yml", "{}")

	path, err := FindConfigFile(&Config{FS: fs, ConfigDir: testDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(testDir, "config.yml"), path)
}

func TestFindConfigFile_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, 0700))

	_, err := FindConfigFile(&Config{FS: fs, ConfigDir: testDir})
	assert.ErrorIs(t, err, ErrNoConfigFile)
}

func TestSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := Load(fs, testDir)
	require.NoError(t, err)

	cfg.RawCustomConfig.ArcGIS.AdminURL = "http://myserver/arcgis/admin"
	cfg.RawCustomConfig.ArcGIS.Username = "user"
	require.NoError(t, cfg.Save())

	assert.Equal(t, filepath.Join(testDir, "config.yaml"), cfg.ConfigFile)

	reloaded, err := Load(fs, testDir)
	require.NoError(t, err)
	assert.Equal(t, "http://myserver/arcgis/admin", reloaded.AdminURL)
	assert.Equal(t, "user", reloaded.Username)
}

func TestSave_RewritesLoadedFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{
			name:     "existing config.yml",
			file:     "config.yml",
			content:  "arcgis:\n  admin_url: http://old/arcgis/admin\n",
			contains: "admin_url: http://new/arcgis/admin",
		},
		{
			name:     "existing config.json",
			file:     "config.json",
			content:  `{"arcgis": {"admin_url": "http://old/arcgis/admin"}}`,
			contains: `"admin_url": "http://new/arcgis/admin"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeFile(t, fs, tt.file, tt.content)
			path := filepath.Join(testDir, tt.file)

			cfg, err := Load(fs, testDir)
			require.NoError(t, err)
			require.Equal(t, path, cfg.ConfigFile)

			cfg.RawCustomConfig.ArcGIS.AdminURL = "http://new/arcgis/admin"
			require.NoError(t, cfg.Save())
			assert.Equal(t, path, cfg.ConfigFile)

			exists, err := afero.Exists(fs, filepath.Join(testDir, "config.yaml"))
			require.NoError(t, err)
			assert.False(t, exists)

			data, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.contains)

			reloaded, err := Load(fs, testDir)
			require.NoError(t, err)
			assert.Equal(t, path, reloaded.ConfigFile)
			assert.Equal(t, "http://new/arcgis/admin", reloaded.AdminURL)
		})
	}
}
