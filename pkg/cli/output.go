package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/entrhq/scribe/pkg/types"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Tool reported a failure (validation, unknown id, bad expression)
	ExitCommandError = 2 // Command error (server unreachable, bad flags, malformed JSON)
)

// ExitError carries a specific exit code out of a command. An empty
// Message means the failure was already printed on stdout (tool results
// carry their own error text) and the launcher should exit silently.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. Errors that are not
// ExitErrors map to ExitCommandError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// printResponse renders a tool response in the configured format. In
// text mode the response text goes to stdout either way; a tool-level
// failure becomes a silent non-zero exit since the text already
// explains it.
func printResponse(cmd *cobra.Command, opts *RootOptions, resp *types.CallToolResponse) error {
	if opts.Format == "json" {
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(resp); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode response", err)
		}
		if resp.IsError {
			return NewExitError(ExitFailure, "")
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Text())
	if resp.IsError {
		return NewExitError(ExitFailure, "")
	}
	return nil
}

// printJSON renders structured data for json-format commands that have
// a richer representation than the tool text.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return WrapExitError(ExitCommandError, "failed to encode output", err)
	}
	return nil
}
