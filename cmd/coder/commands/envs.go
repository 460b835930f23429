package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// NewEnvsCommand creates the environments command group.
func NewEnvsCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "envs",
		Aliases: []string{"environments", "env"},
		Short:   "Inspect environments",
		Long:    "Inspect development environments",
	}

	cmd.AddCommand(newEnvsGetCommand(opts))
	cmd.AddCommand(newEnvsMemberCommand(opts))

	return cmd
}

func newEnvsGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ENV_ID",
		Short: "Get environment details",
		Long:  "Display detailed information about a specific environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			env, err := fetch[coder.Environment](commandContext(cmd), client.Environments().Get(args[0]), "environment")
			if err != nil {
				return err
			}

			return render(cmd, opts, env, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", env.ID)
				_ = table.Append("Name", env.Name)
				_ = table.Append("Owner", env.Username)
				_ = table.Append("Organization", env.OrganizationID)
				_ = table.Append("Image", env.ImageID+":"+env.ImageTag)
				_ = table.Append("Status", string(env.LatestStat.ContainerStatus))
				_ = table.Append("CPU cores", strconv.FormatFloat(env.CPUCores, 'f', -1, 64))
				_ = table.Append("Memory", fmt.Sprintf("%d GB", env.MemoryGB))
				_ = table.Append("Disk", fmt.Sprintf("%d GB", env.DiskGB))
				_ = table.Append("GPUs", strconv.FormatInt(env.GPUs, 10))
				_ = table.Append("Updating", formatBool(env.Updating))
				_ = table.Append("Auto-off threshold", env.AutoOffThreshold.String())
				_ = table.Append("Rebuild messages", strconv.Itoa(len(env.RebuildMessages)))
				_ = table.Append("Last built", formatDate(env.LastBuiltAt))
				_ = table.Append("Created", formatDate(env.CreatedAt))
			})
		},
	}
}

func newEnvsMemberCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "member ORG_ID USER_ID",
		Short: "List a member's environments",
		Long:  "List the environments a member owns within an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			query := client.Orgs().Get(args[0]).Member(args[1]).Envs()

			envs, err := fetch[[]coder.Environment](commandContext(cmd), query, "environments")
			if err != nil {
				return err
			}

			return renderEnvironments(cmd, opts, envs)
		},
	}
}

func renderEnvironments(cmd *cobra.Command, opts *Options, envs []coder.Environment) error {
	return renderList(cmd, opts, envs, "environments", func(table *tablewriter.Table) {
		table.Header("Name", "ID", "Owner", "Status", "Image", "CPU", "Memory", "Updated")

		for _, env := range envs {
			_ = table.Append(env.Name, env.ID, env.Username, string(env.LatestStat.ContainerStatus),
				env.ImageID+":"+env.ImageTag, strconv.FormatFloat(env.CPUCores, 'f', -1, 64),
				fmt.Sprintf("%d GB", env.MemoryGB), formatDate(env.UpdatedAt))
		}
	})
}
