package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/viewpick/errors"
	"github.com/grovetools/viewpick/tui/theme"
)

// Exit codes returned by viewpick commands
const (
	ExitOK        = 0
	ExitError     = 1
	ExitCancelled = 2
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err based on its code and returns the exit code
// the process should use.
func (h *ErrorHandler) Handle(err error) int {
	if err == nil {
		return ExitOK
	}

	prefix := theme.IconError
	switch errors.GetCode(err) {
	case errors.ErrCodeCancelled:
		return ExitCancelled

	case errors.ErrCodeEmptySelection:
		fmt.Fprintln(h.Out, theme.RenderStatus("warning", theme.IconWarning+" Please select at least one view."))
		return ExitError

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s Configuration not found: %v\n", prefix, detail(err, "path"))
		fmt.Fprintf(h.Out, "Run 'viewpick config schema' to see the supported settings.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "%s %v\n", prefix, err)
		fmt.Fprintf(h.Out, "Check the file with 'viewpick config layers'.\n")

	case errors.ErrCodeViewFileInvalid:
		fmt.Fprintf(h.Out, "%s Could not read view file %v\n", prefix, detail(err, "path"))
		if h.Verbose {
			fmt.Fprintf(h.Out, "  %v\n", err)
		}

	case errors.ErrCodeDuplicateIdentity:
		fmt.Fprintf(h.Out, "%s View id '%v' appears more than once in the export\n", prefix, detail(err, "id"))

	case errors.ErrCodeLoadFailed:
		fmt.Fprintf(h.Out, "%s Could not load views: %v\n", prefix, err)

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", prefix, err)
	}

	if h.Verbose {
		if pickErr, ok := err.(*errors.PickError); ok {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", pickErr.ToJSON())
		}
	}
	return ExitError
}

func detail(err error, key string) interface{} {
	pickErr, ok := err.(*errors.PickError)
	if !ok {
		return err.Error()
	}
	if v, ok := pickErr.Details[key]; ok {
		return v
	}
	if pickErr.Cause != nil {
		return detail(pickErr.Cause, key)
	}
	return pickErr.Message
}
