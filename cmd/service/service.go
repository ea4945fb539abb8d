package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BerryBytes/agsctl/internal/api"
	"github.com/BerryBytes/agsctl/models"
	generalutils "github.com/BerryBytes/agsctl/utils/general"
	promptutils "github.com/BerryBytes/agsctl/utils/prompt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ClientFactory builds an admin client on demand so commands that fail
// flag validation never touch config or credentials.
type ClientFactory func(ctx context.Context) (api.AdminClient, error)

type ServiceDependencies struct {
	NewClient      ClientFactory
	Prompter       promptutils.Prompter
	GeneralManager generalutils.GeneralUtilsInterface
	FS             afero.Fs
}

type refFlags struct {
	folder      string
	serviceType string
}

func (f *refFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.folder, "folder", "f", "", "Service folder (root folder when empty)")
	cmd.Flags().StringVarP(&f.serviceType, "type", "t", models.DefaultServiceType, "Service type")
}

func (f *refFlags) ref(name string) (models.ServiceRef, error) {
	if !generalutils.IsValidServiceName(name) {
		return models.ServiceRef{}, fmt.Errorf("invalid service name %q", name)
	}
	if f.folder != "" && !generalutils.IsValidServiceName(f.folder) {
		return models.ServiceRef{}, fmt.Errorf("invalid folder name %q", f.folder)
	}
	return models.ServiceRef{Name: name, Folder: f.folder, Type: f.serviceType}, nil
}

func NewServiceCmd(deps ServiceDependencies) *cobra.Command {
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}

	serviceCmd := &cobra.Command{
		Use:          "service",
		Short:        "Manage ArcGIS Server services",
		Long:         "Inspect, publish, edit and control services through the ArcGIS Server admin API.",
		SilenceUsage: true,
	}

	serviceCmd.AddCommand(
		refCmd(deps, "get NAME", "Show a service definition", func(ctx context.Context, c api.AdminClient, ref models.ServiceRef) (map[string]any, error) {
			return c.GetServiceParams(ctx, ref)
		}),
		refCmd(deps, "start NAME", "Start a service", func(ctx context.Context, c api.AdminClient, ref models.ServiceRef) (map[string]any, error) {
			return c.StartService(ctx, ref)
		}),
		refCmd(deps, "stop NAME", "Stop a service", func(ctx context.Context, c api.AdminClient, ref models.ServiceRef) (map[string]any, error) {
			return c.StopService(ctx, ref)
		}),
		refCmd(deps, "status NAME", "Show the configured and real state of a service", func(ctx context.Context, c api.AdminClient, ref models.ServiceRef) (map[string]any, error) {
			return c.ServiceStatus(ctx, ref)
		}),
		editCmd(deps),
		deleteCmd(deps),
		existsCmd(deps),
		createCmd(deps),
		listCmd(deps),
		createFolderCmd(deps),
	)

	return serviceCmd
}

type refAction func(ctx context.Context, c api.AdminClient, ref models.ServiceRef) (map[string]any, error)

func refCmd(deps ServiceDependencies, use, short string, action refAction) *cobra.Command {
	var flags refFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := flags.ref(args[0])
			if err != nil {
				return err
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				return action(ctx, c, ref)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func editCmd(deps ServiceDependencies) *cobra.Command {
	var flags refFlags
	var configPath string
	cmd := &cobra.Command{
		Use:   "edit NAME",
		Short: "Replace a service definition with the JSON in --config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := flags.ref(args[0])
			if err != nil {
				return err
			}
			definition, err := readDefinition(deps.FS, configPath)
			if err != nil {
				return err
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				return c.EditService(ctx, ref, definition)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the service definition JSON")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func deleteCmd(deps ServiceDependencies) *cobra.Command {
	var flags refFlags
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := flags.ref(args[0])
			if err != nil {
				return err
			}
			if !yes && !deps.Prompter.PromptForConfirmation(fmt.Sprintf("Delete service %s", ref)) {
				cmd.Println("Aborted.")
				return nil
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				return c.DeleteService(ctx, ref)
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func existsCmd(deps ServiceDependencies) *cobra.Command {
	var flags refFlags
	cmd := &cobra.Command{
		Use:   "exists NAME",
		Short: "Report whether a service exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := flags.ref(args[0])
			if err != nil {
				return err
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				exists, err := c.ServiceExists(ctx, ref)
				if err != nil {
					return nil, err
				}
				return map[string]any{"exists": exists}, nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func createCmd(deps ServiceDependencies) *cobra.Command {
	var folder, configPath string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a service from the JSON definition in --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if folder != "" && !generalutils.IsValidServiceName(folder) {
				return fmt.Errorf("invalid folder name %q", folder)
			}
			definition, err := readDefinition(deps.FS, configPath)
			if err != nil {
				return err
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				return c.CreateService(ctx, folder, definition)
			})
		},
	}
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Target folder (root folder when empty)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the service definition JSON")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func listCmd(deps ServiceDependencies) *cobra.Command {
	var folder string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the services and folders in a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if folder != "" && !generalutils.IsValidServiceName(folder) {
				return fmt.Errorf("invalid folder name %q", folder)
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				return c.ListServices(ctx, folder)
			})
		},
	}
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder to list (root folder when empty)")
	return cmd
}

func createFolderCmd(deps ServiceDependencies) *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "create-folder NAME",
		Short: "Create a services folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !generalutils.IsValidServiceName(args[0]) {
				return fmt.Errorf("invalid folder name %q", args[0])
			}
			return run(cmd, deps, func(ctx context.Context, c api.AdminClient) (map[string]any, error) {
				return c.CreateFolder(ctx, args[0], description)
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Folder description")
	return cmd
}

func run(cmd *cobra.Command, deps ServiceDependencies, call func(ctx context.Context, c api.AdminClient) (map[string]any, error)) error {
	ctx := cmd.Context()
	client, err := deps.NewClient(ctx)
	if errors.Is(err, promptutils.ErrInterrupted) {
		return nil
	} else if err != nil {
		return err
	}

	resp, err := call(ctx, client)
	if err != nil {
		return err
	}
	return deps.GeneralManager.PrintResponse(cmd.OutOrStdout(), resp)
}

func readDefinition(fs afero.Fs, path string) (json.RawMessage, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service definition: %w", err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("service definition %s is not valid JSON", path)
	}
	return json.RawMessage(data), nil
}
