package root

import (
	"context"
	"fmt"

	"github.com/BerryBytes/agsctl/cmd/service"
	"github.com/BerryBytes/agsctl/cmd/setup"
	"github.com/BerryBytes/agsctl/cmd/token"
	"github.com/BerryBytes/agsctl/internal/api"
	"github.com/BerryBytes/agsctl/internal/auth"
	"github.com/BerryBytes/agsctl/internal/config"
	"github.com/BerryBytes/agsctl/internal/credentials"
	generalutils "github.com/BerryBytes/agsctl/utils/general"
	promptutils "github.com/BerryBytes/agsctl/utils/prompt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type Dependencies struct {
	Prompter       promptutils.Prompter
	GeneralManager generalutils.GeneralUtilsInterface
	LoadConfig     func() (*config.Config, error)
}

func DefaultDependencies() Dependencies {
	return Dependencies{
		Prompter:       promptutils.NewPrompt(),
		GeneralManager: generalutils.NewGeneralUtilsManager(),
		LoadConfig:     config.NewConfig,
	}
}

var RootCmd = NewRootCmd(DefaultDependencies())

func NewRootCmd(deps Dependencies) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "agsctl",
		Short: "ArcGIS Server admin CLI",
		Long:  `A CLI tool for publishing and managing services through the ArcGIS Server admin API.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if debug {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("No subcommand provided. Showing help...")
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	newClient := NewClientFactory(deps)

	rootCmd.AddCommand(setup.NewInitCmd(setup.SetupDependencies{
		Prompter:   deps.Prompter,
		LoadConfig: deps.LoadConfig,
	}))
	rootCmd.AddCommand(token.NewTokenCmd(token.TokenDependencies{
		NewClient: newClient,
	}))
	rootCmd.AddCommand(service.NewServiceCmd(service.ServiceDependencies{
		NewClient:      newClient,
		Prompter:       deps.Prompter,
		GeneralManager: deps.GeneralManager,
	}))

	return rootCmd
}

// NewClientFactory loads and validates the configuration, resolves the
// password reference for token auth and builds the admin client.
func NewClientFactory(deps Dependencies) service.ClientFactory {
	return func(ctx context.Context) (api.AdminClient, error) {
		cfg, err := deps.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		kind, err := auth.ParseKind(cfg.AuthType)
		if err != nil {
			return nil, err
		}

		password := cfg.Password
		if kind == auth.KindToken {
			resolver := credentials.NewResolver(cfg.AWSRegion, cfg.AWSProfile, deps.Prompter)
			password, err = resolver.ResolvePassword(ctx, cfg.Username, cfg.Password)
			if err != nil {
				return nil, err
			}
		}

		log.Debug().Str("admin_url", cfg.AdminURL).Str("auth", kind.String()).Msg("configured admin client")
		client, err := api.FromSettings(cfg.Settings, password, api.WithLogger(log.Logger))
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}
