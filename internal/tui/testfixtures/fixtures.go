package testfixtures

import (
	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/publisher"
)

// Fixed test values for consistent assertions
const (
	FixedTitle   = "Hi"
	FixedBody    = "Hello world"
	FixedPostID  = "101"
	FixedUserID  = 1
	ShortBody    = "x"
	FixedPayload = `{"title":"Hi","body":"Hello world","userId":1}`
)

// ValidValues returns values that pass validation.
func ValidValues() post.Values {
	return post.Values{Title: FixedTitle, Body: FixedBody}
}

// ShortBodyValues returns values whose body is one character too short.
func ShortBodyValues() post.Values {
	return post.Values{Title: FixedTitle, Body: ShortBody}
}

// AcceptedReceipt returns the receipt of an accepted submission.
func AcceptedReceipt() *publisher.Receipt {
	return &publisher.Receipt{
		ID:     FixedPostID,
		Status: 201,
		Fields: map[string]any{"id": FixedPostID, "title": FixedTitle},
	}
}

// MissingIDError returns the failure produced for a response without an id.
func MissingIDError() error {
	return &publisher.SubmitError{Kind: publisher.KindMissingID, Status: 404}
}
