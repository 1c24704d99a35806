package probe

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/evyataryagoni/devtools/internal/config"
)

// Exit codes of the key checker
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Run performs one key check and reports it like an operator expects:
// status and body on stdout for success, the failure on stderr otherwise
// Returns the process exit code
func Run(ctx context.Context, opts Options, stdout, stderr io.Writer) int {
	client, err := NewClient(opts)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			fmt.Fprintf(stderr, "Missing %s environment variable.\n", config.APIKeyEnv)
			return ExitFailure
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	result, err := client.Check(ctx)
	if err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) {
			fmt.Fprintln(stderr, remoteErr.Error())
			return ExitFailure
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintf(stdout, "Status: %d\n", result.StatusCode)
	fmt.Fprintf(stdout, "Response: %s\n", result.Body)
	return ExitOK
}
