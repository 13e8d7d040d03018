package postwizard

import "github.com/mark3labs/postr/internal/publisher"

// TitleSubmittedMsg is sent when the user confirms a valid title with enter.
type TitleSubmittedMsg struct {
	Title string
}

// SubmitRequestedMsg is sent when the user asks to submit from the body page.
type SubmitRequestedMsg struct{}

// SubmitResultMsg carries the settled outcome of the single in-flight request.
type SubmitResultMsg struct {
	Receipt *publisher.Receipt
	Err     error
}

// BodyEditedMsg is sent when the external editor returns with new body content.
type BodyEditedMsg struct {
	Content string
}
