package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/coder-go/internal/config"
	"github.com/fivetwenty-io/coder-go/internal/constants"
	"github.com/fivetwenty-io/coder-go/internal/logging"
	"github.com/fivetwenty-io/coder-go/pkg/coder"
)

// NewLoginCommand creates the login command.
func NewLoginCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "login [URL]",
		Short: "Log in to a Coder manager",
		Long: `Verify a session token against a Coder manager and store the manager URL
and token in the configuration file.

The token is read from --token, or prompted for when not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, opts, args)
		},
	}
}

func runLogin(cmd *cobra.Command, opts *Options, args []string) error {
	managerURL := opts.Config.URL
	if len(args) == 1 {
		managerURL = args[0]
	}

	managerURL = strings.TrimRight(strings.TrimSpace(managerURL), "/")
	if managerURL == "" {
		return constants.ErrManagerURLRequired
	}

	token := opts.Config.Token
	if token == "" {
		var err error

		token, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}

	if token == "" {
		return constants.ErrTokenRequired
	}

	client, err := opts.clientFor(managerURL, token)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), constants.ShortHTTPTimeout)
	defer cancel()

	me, err := fetch[coder.User](ctx, client.Users().Me(), "current user")
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	stored, err := config.LoadFile(opts.Config.Path)
	if err != nil {
		return err
	}

	stored.URL = managerURL
	stored.Token = token

	err = stored.Save()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to %s as %s\n", managerURL, me.Username)

	opts.Logger.Debug().Str("path", stored.Path).Msg("credentials saved")

	return nil
}

// promptToken reads the token without echo from a terminal, or as one line
// from piped input.
func promptToken(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if file, ok := in.(*os.File); ok && logging.IsTerminal(file) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Session token: ")

		secret, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(line), nil
}
