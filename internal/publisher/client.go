// Package publisher sends blog posts to a remote posts endpoint and
// classifies the response.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mark3labs/postr/internal/logger"
	"github.com/mark3labs/postr/internal/post"
)

// ContentType is sent with every submission.
const ContentType = "application/json; charset=UTF-8"

// Payload is the JSON document posted to the endpoint.
type Payload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// NewPayload merges the form values with the posting user's id.
func NewPayload(v post.Values, userID int) Payload {
	return Payload{
		Title:  v.Title,
		Body:   v.Body,
		UserID: userID,
	}
}

// Receipt is returned for an accepted submission.
type Receipt struct {
	ID     string         // Textual form of the assigned id
	Status int            // HTTP status of the response
	Fields map[string]any // Full decoded response object
}

// Client posts blog posts to a single endpoint.
type Client struct {
	// Endpoint is the URL posts are sent to.
	Endpoint string

	// UserID identifies the posting user in every payload.
	UserID int

	// HTTPClient is the underlying HTTP client. It carries no timeout; a
	// request only ends when it settles or its context is cancelled.
	HTTPClient *http.Client
}

// NewClient creates a new submission client.
func NewClient(endpoint string, userID int) *Client {
	return &Client{
		Endpoint:   endpoint,
		UserID:     userID,
		HTTPClient: &http.Client{},
	}
}

// Submit sends one POST with the given values. It makes exactly one attempt.
// Any failure is returned as a *SubmitError.
func (c *Client) Submit(ctx context.Context, v post.Values) (*Receipt, error) {
	payload := NewPayload(v, c.UserID)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SubmitError{Kind: KindTransport, Err: fmt.Errorf("encoding payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &SubmitError{Kind: KindTransport, Err: err}
	}
	req.Header.Set("Content-type", ContentType)

	logger.Debug("POST %s (title=%d chars, body=%d chars)", c.Endpoint, len(v.Title), len(v.Body))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("POST %s failed: %v", c.Endpoint, err)
		return nil, &SubmitError{Kind: KindTransport, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("reading response from %s: %v", c.Endpoint, err)
		return nil, &SubmitError{Kind: KindTransport, Status: resp.StatusCode, Err: err}
	}

	receipt, err := classify(data)
	if err != nil {
		var se *SubmitError
		if errors.As(err, &se) {
			se.Status = resp.StatusCode
		}
		logger.Error("POST %s rejected (status %d): %v", c.Endpoint, resp.StatusCode, err)
		return nil, err
	}

	receipt.Status = resp.StatusCode
	logger.Info("POST %s accepted with id %s (status %d)", c.Endpoint, receipt.ID, resp.StatusCode)
	return receipt, nil
}

// classify decodes a response body and decides whether it carries an id.
// The HTTP status does not take part in the decision.
func classify(data []byte) (*Receipt, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &SubmitError{Kind: KindDecode, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &SubmitError{Kind: KindDecode, Err: errors.New("unexpected data after JSON value")}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &SubmitError{Kind: KindMissingID, Err: fmt.Errorf("%w: response is not an object", errNoID)}
	}

	id, ok := obj["id"]
	if !ok || !truthy(id) {
		return nil, &SubmitError{Kind: KindMissingID, Err: errNoID}
	}

	return &Receipt{
		ID:     fmt.Sprint(id),
		Fields: obj,
	}, nil
}

// truthy applies JSON truthiness: null, false, 0 and "" are false, anything
// else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case string:
		return x != ""
	default:
		return true
	}
}
