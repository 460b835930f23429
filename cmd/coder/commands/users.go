package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect users",
		Long:    "List and inspect users of the Coder deployment",
	}

	cmd.AddCommand(newUsersListCommand(opts))
	cmd.AddCommand(newUsersGetCommand(opts))
	cmd.AddCommand(newUsersMeCommand(opts))

	return cmd
}

func newUsersListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List every user of the deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			users, err := fetch[[]coder.User](commandContext(cmd), client.Users(), "users")
			if err != nil {
				return err
			}

			return renderUsers(cmd, opts, users)
		},
	}
}

func newUsersGetCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Get user details",
		Long:  "Display detailed information about a specific user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			user, err := fetch[coder.User](commandContext(cmd), client.Users().Get(args[0]), "user")
			if err != nil {
				return err
			}

			return renderUser(cmd, opts, user)
		},
	}
}

func newUsersMeCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated user",
		Long:  "Display the user the session token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}

			user, err := fetch[coder.User](commandContext(cmd), client.Users().Me(), "current user")
			if err != nil {
				return err
			}

			return renderUser(cmd, opts, user)
		},
	}
}

func renderUsers(cmd *cobra.Command, opts *Options, users []coder.User) error {
	return renderList(cmd, opts, users, "users", func(table *tablewriter.Table) {
		table.Header("Username", "Name", "Email", "ID", "Roles", "Created")

		for _, user := range users {
			_ = table.Append(user.Username, user.Name, user.Email, user.ID,
				formatList(user.Roles), formatDate(user.CreatedAt))
		}
	})
}

func renderUser(cmd *cobra.Command, opts *Options, user coder.User) error {
	return render(cmd, opts, user, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", user.ID)
		_ = table.Append("Username", user.Username)
		_ = table.Append("Name", orDefault(user.Name))
		_ = table.Append("Email", orDefault(user.Email))
		_ = table.Append("Roles", formatList(user.Roles))
		_ = table.Append("Dotfiles", orDefault(user.DotfilesGitURI))
		_ = table.Append("Created", formatDate(user.CreatedAt))
		_ = table.Append("Updated", formatDate(user.UpdatedAt))
	})
}
