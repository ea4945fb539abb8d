package setup

import (
	"errors"
	"fmt"
	"time"

	"github.com/BerryBytes/agsctl/internal/auth"
	"github.com/BerryBytes/agsctl/internal/config"
	generalutils "github.com/BerryBytes/agsctl/utils/general"
	promptutils "github.com/BerryBytes/agsctl/utils/prompt"
	"github.com/spf13/cobra"
)

type SetupDependencies struct {
	Prompter   promptutils.Prompter
	LoadConfig func() (*config.Config, error)
}

var authKinds = []string{auth.KindToken.String(), auth.KindKerberos.String()}

func NewInitCmd(deps SetupDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the agsctl configuration",
		Long: `Interactively writes ~/.config/agsctl/config.yaml.
The password may be a literal, env:NAME, ssm:/parameter/path, or left empty to be prompted on each run.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInit(cmd, deps)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			}
			return err
		},
	}
}

func runInit(cmd *cobra.Command, deps SetupDependencies) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	raw := cfg.RawCustomConfig
	arc := &raw.ArcGIS

	adminURL, err := deps.Prompter.PromptWithDefault("Admin URL", arc.AdminURL)
	if err != nil {
		return err
	}
	if !generalutils.IsValidAdminURL(adminURL) {
		return fmt.Errorf("invalid admin URL %q", adminURL)
	}
	arc.AdminURL = adminURL

	authType, err := deps.Prompter.PromptForSelection("Authentication type", authKinds)
	if err != nil {
		return err
	}
	arc.AuthType = authType

	if authType == auth.KindToken.String() {
		if arc.Username, err = deps.Prompter.PromptWithDefault("Username", arc.Username); err != nil {
			return err
		}
		if arc.Password, err = deps.Prompter.PromptOptional("Password reference (empty to prompt)", arc.Password); err != nil {
			return err
		}
		if arc.TokenURL, err = deps.Prompter.PromptOptional("Token URL (empty to derive)", arc.TokenURL); err != nil {
			return err
		}
		if arc.PortalURL, err = deps.Prompter.PromptOptional("Portal URL (optional)", arc.PortalURL); err != nil {
			return err
		}
	}

	timeout, err := deps.Prompter.PromptWithDefault("Request timeout", timeoutDefault(arc.Timeout))
	if err != nil {
		return err
	}
	if _, err := time.ParseDuration(timeout); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", timeout, err)
	}
	arc.Timeout = timeout

	verify := deps.Prompter.PromptForConfirmation("Verify TLS certificates")
	arc.VerifyCerts = &verify

	if err := cfg.Save(); err != nil {
		return err
	}
	cmd.Printf("Configuration written to %s\n", cfg.ConfigFile)
	return nil
}

func timeoutDefault(current string) string {
	if current != "" {
		return current
	}
	return config.DefaultTimeout.String()
}
