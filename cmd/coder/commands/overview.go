package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// Overview summarizes a deployment from the point of view of the current user.
type Overview struct {
	User          coder.User           `json:"user"          yaml:"user"`
	Organizations []coder.Organization `json:"organizations" yaml:"organizations"`
	Registries    []coder.Registry     `json:"registries"    yaml:"registries"`
	Namespaces    []string             `json:"namespaces"    yaml:"namespaces"`
}

// NewOverviewCommand creates the overview command.
func NewOverviewCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Summarize the deployment",
		Long:  "Fetch the current user, organizations, registries and namespaces concurrently and summarize them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			overview, err := fetchOverview(cmd, client)
			if err != nil {
				return err
			}

			return render(cmd, opts, overview, func(table *tablewriter.Table) {
				table.Header("Organization", "ID", "Members", "Environments", "Namespace")

				for _, org := range overview.Organizations {
					_ = table.Append(org.Name, org.ID, strconv.Itoa(len(org.Members)),
						strconv.FormatInt(org.EnvironmentCount, 10), orDefault(org.ResourceNamespace))
				}

				table.Footer("User: "+overview.User.Username, "",
					"Registries: "+strconv.Itoa(len(overview.Registries)), "",
					"Namespaces: "+strconv.Itoa(len(overview.Namespaces)))
			})
		},
	}
}

func fetchOverview(cmd *cobra.Command, client *coder.Client) (*Overview, error) {
	overview := &Overview{}

	group, ctx := errgroup.WithContext(commandContext(cmd))

	group.Go(func() error {
		user, err := fetch[coder.User](ctx, client.Users().Me(), "current user")
		overview.User = user

		return err
	})

	group.Go(func() error {
		orgs, err := fetch[[]coder.Organization](ctx, client.Orgs(), "organizations")
		overview.Organizations = orgs

		return err
	})

	group.Go(func() error {
		registries, err := fetch[[]coder.Registry](ctx, client.Registries(), "registries")
		overview.Registries = registries

		return err
	})

	group.Go(func() error {
		namespaces, err := fetch[[]string](ctx, client.Orgs().Namespaces(), "namespaces")
		overview.Namespaces = namespaces

		return err
	})

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	return overview, nil
}
