package token

import (
	"errors"
	"fmt"

	"github.com/BerryBytes/agsctl/cmd/service"
	promptutils "github.com/BerryBytes/agsctl/utils/prompt"
	"github.com/spf13/cobra"
)

type TokenDependencies struct {
	NewClient service.ClientFactory
}

func NewTokenCmd(deps TokenDependencies) *cobra.Command {
	return &cobra.Command{
		Use:          "token",
		Short:        "Acquire an admin token and print it",
		Long:         "Exchanges the configured credentials for a short-lived ArcGIS Server token and prints it to stdout.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := deps.NewClient(cmd.Context())
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			} else if err != nil {
				return err
			}

			token, err := client.Token(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}
