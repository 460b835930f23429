package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// NewRegistriesCommand creates the registries command group.
func NewRegistriesCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "registries",
		Aliases: []string{"registry"},
		Short:   "Inspect registries",
		Long:    "List and inspect container registries",
	}

	cmd.AddCommand(newRegistriesListCommand(opts))
	cmd.AddCommand(newRegistriesGetCommand(opts))

	return cmd
}

func newRegistriesListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registries",
		Long:  "List every container registry of the deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			registries, err := fetch[[]coder.Registry](commandContext(cmd), client.Registries(), "registries")
			if err != nil {
				return err
			}

			return renderRegistries(cmd, opts, registries)
		},
	}
}

func newRegistriesGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get REGISTRY_ID",
		Short: "Get registry details",
		Long:  "Display detailed information about a specific registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			registry, err := fetch[coder.Registry](commandContext(cmd), client.Registries().Get(args[0]), "registry")
			if err != nil {
				return err
			}

			return render(cmd, opts, registry, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", registry.ID)
				_ = table.Append("Name", registry.FriendlyName)
				_ = table.Append("Registry", registry.Registry)
				_ = table.Append("Organization", registry.OrganizationID)
				_ = table.Append("Created", formatDate(registry.CreatedAt))
				_ = table.Append("Updated", formatDate(registry.UpdatedAt))
			})
		},
	}
}

func renderRegistries(cmd *cobra.Command, opts *Options, registries []coder.Registry) error {
	return renderList(cmd, opts, registries, "registries", func(table *tablewriter.Table) {
		table.Header("Name", "ID", "Registry", "Organization", "Created")

		for _, registry := range registries {
			_ = table.Append(registry.FriendlyName, registry.ID, registry.Registry,
				registry.OrganizationID, formatDate(registry.CreatedAt))
		}
	})
}
