package probe

import (
	"io"
	"net/http"
	"strings"
)

// MockTransport is a test double for http.RoundTripper
// It records every request and answers with a configured response or error
type MockTransport struct {
	// Control behavior
	StatusCode int    // Status of the canned response (default 200)
	Body       string // Body of the canned response
	Err        error  // When set, RoundTrip fails with it and no response

	// Track calls for verification in tests
	Requests []*http.Request
	Bodies   []string
}

// NewMockTransport creates a mock answering every request with status and body
func NewMockTransport(statusCode int, body string) *MockTransport {
	return &MockTransport{
		StatusCode: statusCode,
		Body:       body,
		Requests:   []*http.Request{},
	}
}

// NewFailingMockTransport creates a mock failing every request with err
func NewFailingMockTransport(err error) *MockTransport {
	return &MockTransport{
		Err:      err,
		Requests: []*http.Request{},
	}
}

// RoundTrip implements http.RoundTripper
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.Requests = append(m.Requests, req)

	body := ""
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		req.Body.Close()
		body = string(b)
	}
	m.Bodies = append(m.Bodies, body)

	if m.Err != nil {
		return nil, m.Err
	}

	status := m.StatusCode
	if status == 0 {
		status = http.StatusOK
	}

	return &http.Response{
		StatusCode:    status,
		Status:        http.StatusText(status),
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(strings.NewReader(m.Body)),
		ContentLength: int64(len(m.Body)),
		Request:       req,
	}, nil
}

// Client returns an http.Client using this transport
func (m *MockTransport) Client() *http.Client {
	return &http.Client{Transport: m}
}
