package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/evyataryagoni/devtools/internal/config"
	"github.com/evyataryagoni/devtools/internal/logger"
	"github.com/evyataryagoni/devtools/internal/probe"
	"github.com/spf13/cobra"
)

// ExitError carries a non-zero exit code out of a command
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps a command error to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return probe.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return probe.ExitFailure
}

// NewCheckKeyCommand builds the check-key command
// Flag defaults come from cfg; opts may carry an HTTP client and logger (both optional)
func NewCheckKeyCommand(cfg *config.Config, opts probe.Options) *cobra.Command {
	var (
		model    string
		endpoint string
		timeout  time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "check-key",
		Short: "Check that OPENAI_API_KEY is accepted by the chat-completions API",
		Long: "Sends a single chat-completion request using the key from the " + config.APIKeyEnv + " environment variable.\n" +
			"Prints the status and raw response on success; exits 1 on a missing key, an HTTP error or a transport error.",
		Example:       "  OPENAI_API_KEY=sk-... check-key\n  check-key --model gpt-4o-mini --timeout 10s",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateProbe(); err != nil {
				return err
			}

			opts.APIKey = cfg.APIKey
			opts.Model = model
			opts.Endpoint = endpoint
			opts.Timeout = timeout
			if opts.Logger == nil {
				opts.Logger = logger.New(logger.Config{
					Level:  logLevel,
					Pretty: cfg.LogPretty,
					Output: cmd.ErrOrStderr(),
				})
			}

			if code := probe.Run(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr()); code != probe.ExitOK {
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", cfg.Model, "Model identifier sent in the request (defaults OPENAI_MODEL or "+config.DefaultModel+")")
	cmd.Flags().StringVar(&endpoint, "endpoint", cfg.APIURL, "Chat-completions URL (defaults OPENAI_API_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.ProbeTimeout(), "Maximum wait for the response (defaults PROBE_TIMEOUT_SECONDS or 30s)")
	cmd.Flags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level for stderr diagnostics: debug|info|warn|error")

	return cmd
}

// Execute runs cmd and prints errors that are not plain exit codes to stderr
func Execute(cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.Execute()
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}
