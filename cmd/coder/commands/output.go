package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/coder-go/internal/config"
	"github.com/fivetwenty-io/coder-go/internal/constants"
)

const defaultIndent = 2

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// render writes data in the configured output format. fill populates the
// table used for the table format.
func render[T any](cmd *cobra.Command, opts *Options, data T, fill func(table *tablewriter.Table)) error {
	out := cmd.OutOrStdout()

	switch opts.output() {
	case constants.FormatJSON:
		return StandardJSONRenderer(out, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(out, data)
	default:
		table := tablewriter.NewWriter(out)
		fill(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderList is render for collections; an empty table prints a notice instead.
func renderList[T any](cmd *cobra.Command, opts *Options, items []T, noun string, fill func(table *tablewriter.Table)) error {
	if items == nil {
		items = []T{}
	}

	if len(items) == 0 && opts.output() == constants.FormatTable {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No %s found\n", noun)

		return nil
	}

	return render(cmd, opts, items, fill)
}

// outputOnly is the configuration of commands that render without loading the
// config file.
func outputOnly(output string) *config.Config {
	return &config.Config{Output: strings.ToLower(output)}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(constants.DateFormat)
}

func formatList(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}

func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

func orDefault(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
