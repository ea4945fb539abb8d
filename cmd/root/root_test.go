package root

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerryBytes/agsctl/internal/auth"
	"github.com/BerryBytes/agsctl/internal/config"
	mock_agsctl "github.com/BerryBytes/agsctl/tests/mock"
	generalutils "github.com/BerryBytes/agsctl/utils/general"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "/home/publisher/.config/agsctl"

func newAdminServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/arcgis/admin/generateToken", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("username") != "publisher" || r.PostForm.Get("password") != "hunter2" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": 400, "message": "Unable to generate token.", "details": []string{"Invalid username or password."}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok-1", "expires": 1700000000000})
	})
	mux.HandleFunc("/arcgis/admin/services", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-1", r.URL.Query().Get("token"))
		assert.Equal(t, "json", r.URL.Query().Get("f"))
		_ = json.NewEncoder(w).Encode(map[string]any{"folders": []string{"Cadastre"}, "services": []any{}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func depsWithConfig(t *testing.T, prompter *mock_agsctl.MockPrompter, yaml string) Dependencies {
	fs := afero.NewMemMapFs()
	if yaml != "" {
		require.NoError(t, afero.WriteFile(fs, configDir+"/config.yaml", []byte(yaml), 0600))
	}
	return Dependencies{
		Prompter:       prompter,
		GeneralManager: generalutils.NewGeneralUtilsManager(),
		LoadConfig: func() (*config.Config, error) {
			return config.Load(fs, configDir)
		},
	}
}

func TestNewRootCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rootCmd := NewRootCmd(depsWithConfig(t, mock_agsctl.NewMockPrompter(ctrl), ""))

	assert.Equal(t, "agsctl", rootCmd.Use)
	assert.Equal(t, "ArcGIS Server admin CLI", rootCmd.Short)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"init", "token", "service"})
}

func TestRootCmdNoSubcommandShowsHelp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rootCmd := NewRootCmd(depsWithConfig(t, mock_agsctl.NewMockPrompter(ctrl), ""))
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "No subcommand provided")
	assert.Contains(t, out.String(), "service")
}

func TestRootCmdEndToEnd(t *testing.T) {
	srv := newAdminServer(t)
	t.Setenv("PUBLISHER_PASSWORD", "hunter2")

	validConfig := "arcgis:\n  admin_url: " + srv.URL + "/arcgis/admin\n  username: publisher\n  password: env:PUBLISHER_PASSWORD\n"

	tests := []struct {
		name          string
		config        string
		args          []string
		mockSetup     func(p *mock_agsctl.MockPrompter)
		expectedOut   string
		expectedError string
		expectedIs    error
	}{
		{
			name:        "token",
			config:      validConfig,
			args:        []string{"token"},
			expectedOut: "tok-1\n",
		},
		{
			name:        "service list with debug logging",
			config:      validConfig,
			args:        []string{"--debug", "service", "list"},
			expectedOut: `"Cadastre"`,
		},
		{
			name:   "prompted password",
			config: "arcgis:\n  admin_url: " + srv.URL + "/arcgis/admin\n  username: publisher\n",
			args:   []string{"token"},
			mockSetup: func(p *mock_agsctl.MockPrompter) {
				p.EXPECT().PromptForPassword("Password for publisher").Return("hunter2", nil)
			},
			expectedOut: "tok-1\n",
		},
		{
			name:          "wrong password",
			config:        "arcgis:\n  admin_url: " + srv.URL + "/arcgis/admin\n  username: publisher\n  password: nope\n",
			args:          []string{"token"},
			expectedError: "Invalid username or password.",
			expectedIs:    auth.ErrTokenAcquisition,
		},
		{
			name:          "missing admin URL",
			args:          []string{"token"},
			expectedError: "admin URL is not configured",
		},
		{
			name:       "unknown auth type",
			config:     "arcgis:\n  admin_url: " + srv.URL + "/arcgis/admin\n  auth_type: oauth\n",
			args:       []string{"token"},
			expectedIs: auth.ErrUnknownKind,
		},
		{
			name:       "ntlm is not implemented",
			config:     "arcgis:\n  admin_url: " + srv.URL + "/arcgis/admin\n  auth_type: ntlm\n",
			args:       []string{"service", "list"},
			expectedIs: auth.ErrNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPrompter := mock_agsctl.NewMockPrompter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockPrompter)
			}

			rootCmd := NewRootCmd(depsWithConfig(t, mockPrompter, tt.config))
			var out, errOut bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&errOut)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()
			if tt.expectedError != "" || tt.expectedIs != nil {
				require.Error(t, err)
				if tt.expectedError != "" {
					assert.Contains(t, err.Error(), tt.expectedError)
				}
				if tt.expectedIs != nil {
					assert.ErrorIs(t, err, tt.expectedIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.expectedOut)
			assert.NotContains(t, errOut.String(), "hunter2")
		})
	}
}
