package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BerryBytes/agsctl/models"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix       = "ags"
	DefaultAuthType = "token"
	DefaultTimeout  = 30 * time.Second
)

var ErrNoConfigFile = errors.New("no config file found")

var configFileNames = []string{"config.yml", "config.yaml", "config.json"}

// Settings is the effective configuration: file values overridden by
// AGS_* environment variables.
type Settings struct {
	AdminURL    string        `split_words:"true"`
	TokenURL    string        `split_words:"true"`
	PortalURL   string        `split_words:"true"`
	Username    string        `split_words:"true"`
	Password    string        `split_words:"true"`
	AuthType    string        `split_words:"true"`
	VerifyCerts bool          `split_words:"true"`
	Timeout     time.Duration `split_words:"true"`
	AWSRegion   string        `split_words:"true"`
	AWSProfile  string        `split_words:"true"`
}

type Config struct {
	Settings

	ConfigDir       string
	ConfigFile      string
	FS              afero.Fs
	RawCustomConfig *models.Config
}

// NewConfig loads ~/.config/agsctl and an optional .env from the working directory.
func NewConfig() (*Config, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return Load(afero.NewOsFs(), filepath.Join(userHome, ".config", "agsctl"))
}

// Load reads the config file in dir, if any, and applies environment overrides.
func Load(fs afero.Fs, dir string) (*Config, error) {
	cfg := &Config{
		ConfigDir: dir,
		FS:        fs,
	}

	fileConfig, path, err := loadConfigFile(cfg)
	switch {
	case errors.Is(err, ErrNoConfigFile):
		cfg.RawCustomConfig = &models.Config{}
	case err != nil:
		return nil, err
	default:
		cfg.RawCustomConfig = fileConfig
		cfg.ConfigFile = path
	}

	if err := cfg.applyFile(); err != nil {
		return nil, err
	}
	if err := envconfig.Process(EnvPrefix, &cfg.Settings); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyFile() error {
	arc := c.RawCustomConfig.ArcGIS
	c.AdminURL = arc.AdminURL
	c.TokenURL = arc.TokenURL
	c.PortalURL = arc.PortalURL
	c.Username = arc.Username
	c.Password = arc.Password
	c.AuthType = arc.AuthType
	if arc.VerifyCerts != nil {
		c.VerifyCerts = *arc.VerifyCerts
	}
	if arc.Timeout != "" {
		timeout, err := time.ParseDuration(arc.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", arc.Timeout, err)
		}
		c.Timeout = timeout
	}
	c.AWSRegion = c.RawCustomConfig.AWS.Region
	c.AWSProfile = c.RawCustomConfig.AWS.Profile
	return nil
}

func (c *Config) applyDefaults() {
	if c.AuthType == "" {
		c.AuthType = DefaultAuthType
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks the settings needed to reach the admin API.
func (c *Config) Validate() error {
	if c.AdminURL == "" {
		return errors.New("admin URL is not configured; run 'agsctl init' or set AGS_ADMIN_URL")
	}
	return nil
}

func loadConfigFile(cfg *Config) (*models.Config, string, error) {
	configFilePath, err := FindConfigFile(cfg)
	if err != nil {
		return nil, "", err
	}

	fileData, err := afero.ReadFile(cfg.FS, configFilePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read config file: %w", err)
	}

	var parsedConfig models.Config
	if err := yaml.Unmarshal(fileData, &parsedConfig); err != nil {
		if err := json.Unmarshal(fileData, &parsedConfig); err != nil {
			return nil, "", fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	return &parsedConfig, configFilePath, nil
}

func FindConfigFile(cfg *Config) (string, error) {
	if _, err := cfg.FS.Stat(cfg.ConfigDir); os.IsNotExist(err) {
		return "", ErrNoConfigFile
	} else if err != nil {
		return "", fmt.Errorf("failed to stat directory %s: %w", cfg.ConfigDir, err)
	}

	for _, name := range configFileNames {
		possiblePath := filepath.Join(cfg.ConfigDir, name)
		if _, err := cfg.FS.Stat(possiblePath); err == nil {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}

// Save writes RawCustomConfig back to the file it was loaded from, or to
// config.yaml when there was none. The file may hold a password, so it is
// written with owner-only permissions.
func (c *Config) Save() error {
	configFilePath := c.ConfigFile
	if configFilePath == "" {
		configFilePath = filepath.Join(c.ConfigDir, "config.yaml")
	}
	if err := c.FS.MkdirAll(filepath.Dir(configFilePath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshalConfig(configFilePath, c.RawCustomConfig)
	if err != nil {
		return err
	}

	if err := afero.WriteFile(c.FS, configFilePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	c.ConfigFile = configFilePath
	return nil
}

func marshalConfig(path string, cfg *models.Config) ([]byte, error) {
	if filepath.Ext(path) == ".json" {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return data, nil
}
