package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the coder CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand(opts))
	cmd.AddCommand(newConfigGetCommand(opts))
	cmd.AddCommand(newConfigSetCommand(opts))

	return cmd
}

func newConfigShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the session token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			masked := opts.Config.Masked()

			return render(cmd, opts, masked, func(table *tablewriter.Table) {
				table.Header("Key", "Value")

				for _, key := range config.Keys {
					value, _ := masked.Get(key)
					_ = table.Append(key, orDefault(value))
				}

				_ = table.Append("file", orDefault(masked.Path))
			})
		},
	}
}

func newConfigGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			masked := opts.Config.Masked()

			value, err := masked.Get(args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)

			return nil
		},
	}
}

func newConfigSetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and save it to the configuration file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			// Reload the file alone so flag and environment overrides are not saved.
			stored, err := config.LoadFile(opts.Config.Path)
			if err != nil {
				return err
			}

			err = stored.Set(key, value)
			if err != nil {
				return err
			}

			err = stored.Save()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", key, stored.Path)

			return nil
		},
	}
}
