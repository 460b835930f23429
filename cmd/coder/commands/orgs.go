package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Inspect organizations",
		Long:    "List and inspect organizations and the resources they own",
	}

	cmd.AddCommand(newOrgsListCommand(opts))
	cmd.AddCommand(newOrgsGetCommand(opts))
	cmd.AddCommand(newOrgsNamespacesCommand(opts))
	cmd.AddCommand(newOrgsMembersCommand(opts))
	cmd.AddCommand(newOrgsMemberCommand(opts))
	cmd.AddCommand(newOrgsEnvsCommand(opts))
	cmd.AddCommand(newOrgsImagesCommand(opts))
	cmd.AddCommand(newOrgsRegistriesCommand(opts))
	cmd.AddCommand(newOrgsServicesCommand(opts))
	cmd.AddCommand(newOrgsServiceCommand(opts))

	return cmd
}

func newOrgsListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations the user has access to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			orgs, err := fetch[[]coder.Organization](commandContext(cmd), client.Orgs(), "organizations")
			if err != nil {
				return err
			}

			return renderList(cmd, opts, orgs, "organizations", func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Default", "Members", "Environments", "Namespace", "Created")

				for _, org := range orgs {
					_ = table.Append(org.Name, org.ID, formatBool(org.Default),
						strconv.Itoa(len(org.Members)), strconv.FormatInt(org.EnvironmentCount, 10),
						orDefault(org.ResourceNamespace), formatDate(org.CreatedAt))
				}
			})
		},
	}
}

func newOrgsGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_ID",
		Short: "Get organization details",
		Long:  "Display detailed information about a specific organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			org, err := fetch[coder.Organization](commandContext(cmd), client.Orgs().Get(args[0]), "organization")
			if err != nil {
				return err
			}

			return render(cmd, opts, org, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", org.ID)
				_ = table.Append("Name", org.Name)
				_ = table.Append("Description", orDefault(org.Description))
				_ = table.Append("Default", formatBool(org.Default))
				_ = table.Append("Members", strconv.Itoa(len(org.Members)))
				_ = table.Append("Environments", strconv.FormatInt(org.EnvironmentCount, 10))
				_ = table.Append("Namespace", orDefault(org.ResourceNamespace))
				_ = table.Append("Auto-off threshold", strconv.FormatInt(org.AutoOffThreshold, 10))
				_ = table.Append("CPU provisioning rate", strconv.FormatInt(org.CPUProvisioningRate, 10))
				_ = table.Append("Created", formatDate(org.CreatedAt))
				_ = table.Append("Updated", formatDate(org.UpdatedAt))
			})
		},
	}
}

func newOrgsNamespacesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "namespaces",
		Short: "List resource namespaces",
		Long:  "List the resource namespaces used by organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			namespaces, err := fetch[[]string](commandContext(cmd), client.Orgs().Namespaces(), "namespaces")
			if err != nil {
				return err
			}

			return renderList(cmd, opts, namespaces, "namespaces", func(table *tablewriter.Table) {
				table.Header("Namespace")

				for _, namespace := range namespaces {
					_ = table.Append(namespace)
				}
			})
		},
	}
}

func newOrgsMembersCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "members ORG_ID",
		Short: "List organization members",
		Long:  "List the members of an organization with their roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			members, err := fetch[[]coder.OrgMember](commandContext(cmd), client.Orgs().Get(args[0]).Members(), "members")
			if err != nil {
				return err
			}

			return renderList(cmd, opts, members, "members", func(table *tablewriter.Table) {
				table.Header("Username", "Email", "ID", "Roles", "Active environments", "Joined")

				for _, member := range members {
					_ = table.Append(member.Username, member.Email, member.ID,
						formatRoles(member.OrganizationRoles), formatBool(member.HasActiveEnvironments),
						formatDate(member.JoinedAt))
				}
			})
		},
	}
}

func newOrgsMemberCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "member ORG_ID USER_ID",
		Short: "Get organization member details",
		Long:  "Display one member of an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			member, err := fetch[coder.OrgMember](commandContext(cmd), client.Orgs().Get(args[0]).Member(args[1]), "member")
			if err != nil {
				return err
			}

			return render(cmd, opts, member, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", member.ID)
				_ = table.Append("Username", member.Username)
				_ = table.Append("Email", orDefault(member.Email))
				_ = table.Append("Organization roles", formatRoles(member.OrganizationRoles))
				_ = table.Append("Active environments", formatBool(member.HasActiveEnvironments))
				_ = table.Append("Joined", formatDate(member.JoinedAt))
				_ = table.Append("Roles updated", formatDate(member.RolesUpdatedAt))
			})
		},
	}
}

func newOrgsEnvsCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "envs ORG_ID",
		Short: "List organization environments",
		Long:  "List the environments of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			envs, err := fetch[[]coder.Environment](commandContext(cmd), client.Orgs().Get(args[0]).Envs(), "environments")
			if err != nil {
				return err
			}

			return renderEnvironments(cmd, opts, envs)
		},
	}
}

func newOrgsImagesCommand(opts *Options) *cobra.Command {
	var withEnvs bool

	cmd := &cobra.Command{
		Use:   "images ORG_ID",
		Short: "List organization images",
		Long:  "List the images registered with an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			query := client.Orgs().Get(args[0]).Images()
			if cmd.Flags().Changed("envs") {
				query = query.WithEnvs(withEnvs)
			}

			images, err := fetch[[]coder.Image](commandContext(cmd), query, "images")
			if err != nil {
				return err
			}

			return renderImages(cmd, opts, images)
		},
	}

	cmd.Flags().BoolVar(&withEnvs, "envs", false, "include the environments using each image")

	return cmd
}

func newOrgsRegistriesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "registries ORG_ID",
		Short: "List organization registries",
		Long:  "List the container registries of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			registries, err := fetch[[]coder.Registry](commandContext(cmd), client.Orgs().Get(args[0]).Registries(), "registries")
			if err != nil {
				return err
			}

			return renderRegistries(cmd, opts, registries)
		},
	}
}

func newOrgsServicesCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "services ORG_ID",
		Short: "List organization services",
		Long:  "List the sidecar services defined in an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			services, err := fetch[[]coder.Service](commandContext(cmd), client.Orgs().Get(args[0]).Services(), "services")
			if err != nil {
				return err
			}

			return renderList(cmd, opts, services, "services", func(table *tablewriter.Table) {
				table.Header("Name", "ID", "Image", "Tag", "Privileged")

				for _, service := range services {
					_ = table.Append(service.Name, service.ID, service.ImageID, service.ImageTag,
						formatBool(service.Privileged))
				}
			})
		},
	}
}

func newOrgsServiceCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "service ORG_ID SERVICE_ID",
		Short: "Get service details",
		Long:  "Display one sidecar service of an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			service, err := fetch[coder.Service](commandContext(cmd), client.Orgs().Get(args[0]).Service(args[1]), "service")
			if err != nil {
				return err
			}

			return render(cmd, opts, service, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", service.ID)
				_ = table.Append("Name", service.Name)
				_ = table.Append("Description", orDefault(service.Description))
				_ = table.Append("Image", service.ImageID+":"+service.ImageTag)
				_ = table.Append("Command", orDefault(service.Command))
				_ = table.Append("Args", formatList(service.Args))
				_ = table.Append("Privileged", formatBool(service.Privileged))
				_ = table.Append("Volume mounts", strconv.Itoa(len(service.VolumeMounts)))
				_ = table.Append("Environment variables", strconv.Itoa(len(service.EnvVars)))
			})
		},
	}
}

func formatRoles(roles []coder.OrgRole) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}

	return formatList(names)
}
