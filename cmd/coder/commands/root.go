package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/coder-go/internal/config"
	"github.com/fivetwenty-io/coder-go/internal/constants"
	"github.com/fivetwenty-io/coder-go/internal/logging"
	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// Options is the state shared by every command of one invocation.
type Options struct {
	ConfigPath string
	Config     *config.Config
	Logger     zerolog.Logger
}

// NewRootCommand creates the coder command with every subcommand attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &Options{Logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "coder",
		Short: "Coder management API CLI",
		Long: `A read-only command-line interface for the Coder management API.

It lists and inspects users, organizations, environments, images, registries
and services of a Coder deployment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default is $HOME/.coder/config.yml)")
	flags.StringP("url", "u", "", "manager URL (env MANAGER_URL)")
	flags.StringP("token", "t", "", "session token (env API_KEY)")
	flags.StringP("output", "o", "", "output format (table, json, yaml)")
	flags.Duration("timeout", 0, "request timeout")
	flags.String("user-agent", "", "User-Agent sent with requests")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (console, json)")
	flags.Bool("debug", false, "log HTTP requests and responses")

	cmd.AddCommand(NewVersionCommand(version, commit, date))
	cmd.AddCommand(NewConfigCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))
	cmd.AddCommand(NewOrgsCommand(opts))
	cmd.AddCommand(NewEnvsCommand(opts))
	cmd.AddCommand(NewImagesCommand(opts))
	cmd.AddCommand(NewRegistriesCommand(opts))
	cmd.AddCommand(NewOverviewCommand(opts))

	return cmd
}

func (o *Options) load(cmd *cobra.Command) error {
	cfg, err := config.LoadWithFlags(o.ConfigPath, cmd.Flags())
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if cfg.Logging.Debug {
		level = "debug"
	}

	logger, err := logging.Setup(level, cfg.Logging.Format, cfg.Logging.Color)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	o.Config = cfg
	o.Logger = logger

	o.Logger.Debug().Str("path", cfg.Path).Str("url", cfg.URL).Msg("configuration loaded")

	return nil
}

// client creates an API client from the loaded configuration.
func (o *Options) client() (*coder.Client, error) {
	err := o.Config.Validate()
	if err != nil {
		return nil, err
	}

	return o.clientFor(o.Config.URL, o.Config.Token)
}

func (o *Options) clientFor(url, token string) (*coder.Client, error) {
	clientOpts := []coder.Option{
		coder.WithLogger(logging.NewAdapter(o.Logger)),
		coder.WithDebug(o.Config.Logging.Debug),
	}

	if o.Config.Timeout > 0 {
		clientOpts = append(clientOpts, coder.WithTimeout(o.Config.Timeout))
	}

	if o.Config.UserAgent != "" {
		clientOpts = append(clientOpts, coder.WithUserAgent(o.Config.UserAgent))
	}

	client, err := coder.New(url, token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func (o *Options) output() string {
	if o.Config == nil || o.Config.Output == "" {
		return constants.FormatTable
	}

	return o.Config.Output
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// fetch executes q and turns an API error response into an error.
func fetch[T any](ctx context.Context, q coder.Executor[T], what string) (T, error) {
	resp, err := q.Execute(ctx)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("failed to get %s: %w", what, err)
	}

	value, err := resp.Result()
	if err != nil {
		return value, fmt.Errorf("failed to get %s: %w", what, err)
	}

	return value, nil
}
