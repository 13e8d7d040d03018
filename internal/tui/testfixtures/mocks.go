// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// This file contains mocks for the submission path:
//   - MockSubmitter: in-process stand-in for publisher.Client
//   - Endpoint: httptest server recording the requests it receives
//
// All mocks are thread-safe and provide verification methods for assertions in tests.
//
// Example usage:
//
//	func TestMyComponent(t *testing.T) {
//	    sub := testfixtures.NewMockSubmitter()
//	    sub.Err = testfixtures.MissingIDError()
//
//	    // Use the mock in your test...
//	    // Later verify calls:
//	    require.Equal(t, 1, sub.CallCount())
//	}
package testfixtures

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/publisher"
)

// MockSubmitter is a mock implementation of the wizard's Submitter.
type MockSubmitter struct {
	mu sync.Mutex

	// Receipt to return from Submit
	Receipt *publisher.Receipt
	// Error to return from Submit
	Err error

	calls []post.Values
}

// NewMockSubmitter creates a MockSubmitter that accepts every submission.
func NewMockSubmitter() *MockSubmitter {
	return &MockSubmitter{Receipt: AcceptedReceipt()}
}

// Submit records the values and returns the configured outcome.
func (m *MockSubmitter) Submit(ctx context.Context, v post.Values) (*publisher.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, v)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Receipt, nil
}

// CallCount returns how many times Submit was called.
func (m *MockSubmitter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastValues returns the values of the most recent Submit call.
func (m *MockSubmitter) LastValues() post.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return post.Values{}
	}
	return m.calls[len(m.calls)-1]
}

// Request is one request received by an Endpoint.
type Request struct {
	Method      string
	ContentType string
	Body        string
}

// Endpoint is a test HTTP server standing in for the posts collection.
type Endpoint struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	reply    string
	requests []Request
}

// NewEndpoint starts an endpoint replying with the given status and raw body.
// The server is closed when the test ends.
func NewEndpoint(t *testing.T, status int, reply string) *Endpoint {
	t.Helper()
	e := &Endpoint{status: status, reply: reply}
	e.Server = httptest.NewServer(http.HandlerFunc(e.handle))
	t.Cleanup(e.Close)
	return e
}

func (e *Endpoint) handle(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)

	e.mu.Lock()
	e.requests = append(e.requests, Request{
		Method:      r.Method,
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(data),
	})
	status, reply := e.status, e.reply
	e.mu.Unlock()

	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

// Reply changes the response for subsequent requests.
func (e *Endpoint) Reply(status int, reply string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
	e.reply = reply
}

// Requests returns a copy of the requests received so far.
func (e *Endpoint) Requests() []Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Request(nil), e.requests...)
}
