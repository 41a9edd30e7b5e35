// Package cli implements the scribectl command set: a scriptable
// client for the scribe server covering note CRUD, the search
// operations, and raw tool dispatch.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/entrhq/scribe/pkg/client"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Server  string
	Format  string // "text" | "json"
	Timeout time.Duration
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// DefaultServer is used when neither the flag nor SCRIBE_SERVER is set.
const DefaultServer = "http://localhost:8000"

// NewRootCommand creates the root command for scribectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "scribectl",
		Short:         "scribectl - command-line client for the scribe note server",
		Long:          "A command-line client for the scribe note server: manage notes, run date and keyword searches, and call tools directly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", envOr("SCRIBE_SERVER", DefaultServer), "scribe server base URL")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", client.DefaultTimeout, "request timeout")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewSearchDateCommand(opts))
	cmd.AddCommand(NewMentionsCommand(opts))
	cmd.AddCommand(NewCallCommand(opts))
	cmd.AddCommand(NewToolsCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewTimeCommand(opts))
	cmd.AddCommand(NewCalcCommand(opts))

	return cmd
}

// Client builds the HTTP client configured by the global flags.
func (o *RootOptions) Client() *client.Client {
	c := client.New(o.Server)
	c.HTTP.Timeout = o.Timeout
	return c
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// envOr returns the environment variable's value, or fallback when it
// is unset or empty.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
