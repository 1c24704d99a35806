package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/evyataryagoni/devtools/internal/config"
	"github.com/evyataryagoni/devtools/internal/logger"
	"github.com/evyataryagoni/devtools/internal/models"
	"github.com/go-playground/validator/v10"
)

// Fixed conversation sent by the key checker
const (
	SystemPrompt = "You are a simple tester."
	UserPrompt   = "Say hello."
)

// Options configures a Client
// Zero values fall back to the defaults in the config package
type Options struct {
	APIKey     string
	Endpoint   string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client   // Injected transport, e.g. a MockTransport client in tests
	Logger     *logger.Logger // Optional, discards when nil
}

// Result is a successful (2xx) response
type Result struct {
	StatusCode int
	Body       string
}

// Client sends a single chat-completion request to check an API key
//
// Responsibilities:
//   - Build and validate the fixed request body
//   - Send exactly one POST (no retries)
//   - Classify the outcome: Result, *RemoteError or *TransportError
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	model      string
	validator  *validator.Validate
	logger     *logger.Logger
}

// NewClient creates a key checker client
//
// Returns:
//   - *Client: the client
//   - error: ErrMissingCredential when opts.APIKey is empty
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if opts.Endpoint == "" {
		opts.Endpoint = config.DefaultAPIURL
	}
	if opts.Model == "" {
		opts.Model = config.DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = config.DefaultProbeTimeout * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	// Copy so the caller's client keeps its own timeout
	httpClient := &http.Client{}
	if opts.HTTPClient != nil {
		clientCopy := *opts.HTTPClient
		httpClient = &clientCopy
	}
	httpClient.Timeout = opts.Timeout

	return &Client{
		httpClient: httpClient,
		endpoint:   opts.Endpoint,
		apiKey:     opts.APIKey,
		model:      opts.Model,
		validator:  validator.New(),
		logger:     opts.Logger.WithComponent("KeyCheck"),
	}, nil
}

// NewRequest builds the fixed chat-completion body for the client's model
func (c *Client) NewRequest() models.ChatRequest {
	return models.ChatRequest{
		Model: c.model,
		Messages: []models.ChatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: UserPrompt},
		},
	}
}

// Check sends the request once and classifies the outcome
//
// Returns:
//   - *Result: status and raw body for a 2xx response
//   - error: *RemoteError for any other status, *TransportError when no response was read,
//     or a plain error when the request could not be built
func (c *Client) Check(ctx context.Context) (*Result, error) {
	chatReq := c.NewRequest()
	if err := c.validator.Struct(chatReq); err != nil {
		return nil, fmt.Errorf("invalid chat request: %w", err)
	}

	payload, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Str("model", c.model).
		Dur("timeout", c.httpClient.Timeout).
		Msg("Sending key check request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := &TransportError{Err: err}
		c.logger.Debug().Err(err).Bool("timeout", transportErr.Timeout()).Msg("Key check transport failure")
		return nil, transportErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration_ms", time.Since(start)).
		Msg("Key check response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &Result{StatusCode: resp.StatusCode, Body: string(body)}, nil
}
