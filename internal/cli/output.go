package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/staffdesk/internal/validation"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewFormatter reads the --json and --quiet flags and binds the command's
// output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result. human is printed in
// human-readable mode.
func (f *OutputFormatter) Success(data interface{}, human string) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintln(f.out(), human)
	return err
}

// Fail reports err in the current output mode and returns it for cobra. A
// validation report lists every failing field.
func (f *OutputFormatter) Fail(err error) error {
	var fields map[string]string
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		fields = vErr.Errors()
	}
	if fmtErr := f.writeError(ErrorCode(err), err.Error(), suggestionFor(err), fields); fmtErr != nil {
		return fmtErr
	}
	return &reportedError{err: err}
}

// suggestionFor returns a hint for errors the user can act on
func suggestionFor(err error) string {
	switch ExitCodeFor(err) {
	case ExitNotFound:
		return "run the list command to see the existing IDs"
	case ExitIntegrity:
		return "move or delete the sellers of this department first"
	default:
		return ""
	}
}

// reportedError marks an error the formatter already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already printed by an OutputFormatter
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

func (f *OutputFormatter) writeError(code, message, suggestion string, fields map[string]string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		if len(fields) > 0 {
			errData["fields"] = fields
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		_, err := fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
		return err
	}
	return nil
}
