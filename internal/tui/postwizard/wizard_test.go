package postwizard

import (
	"context"
	"net/http"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/publisher"
	"github.com/mark3labs/postr/internal/tui/testfixtures"
	"github.com/mark3labs/postr/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func newTestWizard(t *testing.T, s Submitter) *WizardModel {
	t.Helper()
	t.Setenv("EDITOR", "")
	m := New(context.Background(), s)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	return m
}

// press sends a key and feeds back the wizard-level messages its command
// produces. The command of the last fed message is returned, or the key's
// own command when nothing was fed back.
func press(m *WizardModel, key string) tea.Cmd {
	_, cmd := m.Update(testfixtures.Key(key))
	if out := feed(m, cmd); out != nil {
		return out
	}
	return cmd
}

// setBody replaces the body the way an edit would.
func setBody(m *WizardModel, s string) {
	m.bodyStep.SetValue(s)
	m.syncButtons()
}

func feed(m *WizardModel, cmd tea.Cmd) tea.Cmd {
	var out tea.Cmd
	for _, msg := range testfixtures.Collect(cmd) {
		switch msg.(type) {
		case TitleSubmittedMsg, SubmitRequestedMsg, wizard.TabExitForwardMsg, wizard.TabExitBackwardMsg:
			_, out = m.Update(msg)
		}
	}
	return out
}

// complete runs the in-flight request and delivers its result.
func complete(t *testing.T, m *WizardModel, cmd tea.Cmd) {
	t.Helper()
	result, ok := testfixtures.Find[SubmitResultMsg](testfixtures.Collect(cmd))
	require.True(t, ok, "expected a submission result")
	m.Update(result)
}

func typeText(m *WizardModel, s string) {
	for _, r := range s {
		m.Update(testfixtures.Key(string(r)))
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// toBody fills in a valid title and moves to the body page.
func toBody(t *testing.T, m *WizardModel, title string) {
	t.Helper()
	m.titleStep.SetValue(title)
	press(m, "enter")
	require.Equal(t, PageBody, m.Page())
}

func TestWizard_Initial(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())

	require.Equal(t, PageTitle, m.Page())
	require.False(t, m.Loading())
	require.False(t, m.Succeeded())
	require.False(t, m.Failed())
	require.True(t, m.Values().IsZero())

	res := m.Validation()
	require.Equal(t, post.MsgTitleRequired, res.Message(post.FieldTitle))
	require.Equal(t, post.MsgBodyRequired, res.Message(post.FieldBody))

	view := m.Render()
	require.True(t, testfixtures.Contains(view, "Step 1: Title"))
	require.True(t, testfixtures.Contains(view, "Next →"))
	require.False(t, testfixtures.Contains(view, "Success."))
	require.False(t, testfixtures.Contains(view, "Error."))
}

func TestWizard_HappyPath(t *testing.T) {
	sub := testfixtures.NewMockSubmitter()
	m := newTestWizard(t, sub)

	typeText(m, "Hi")
	require.Equal(t, "Hi", m.Values().Title)
	press(m, "enter")
	require.Equal(t, PageBody, m.Page())
	require.True(t, testfixtures.Contains(m.Render(), "Step 2: Body"))

	setBody(m, testfixtures.FixedBody)
	require.True(t, m.bodyButtonBar.IsEnabled(wizard.ButtonSubmit))

	cmd := press(m, "ctrl+s")
	require.True(t, m.Loading())
	require.True(t, testfixtures.Contains(m.Render(), "Loading..."))
	require.False(t, testfixtures.Contains(m.Render(), "Step 2: Body"))

	complete(t, m, cmd)
	require.False(t, m.Loading())
	require.True(t, m.Succeeded())
	require.False(t, m.Failed())
	require.Equal(t, PageTitle, m.Page())
	require.True(t, m.Values().IsZero(), "values reset after success")
	require.Equal(t, testfixtures.ValidValues(), sub.LastValues())

	view := m.Render()
	require.True(t, testfixtures.Contains(view, "Success."))
	require.True(t, testfixtures.Contains(view, "Step 1: Title"))

	res := m.Result()
	require.Len(t, res.Receipts, 1)
	require.Equal(t, testfixtures.FixedPostID, res.Receipts[0].ID)
}

func TestWizard_NextBlockedByShortTitle(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	typeText(m, "H")

	press(m, "enter")
	require.Equal(t, PageTitle, m.Page())
	require.Equal(t, post.MsgTooShort, m.Validation().Message(post.FieldTitle))
	require.True(t, testfixtures.Contains(m.Render(), post.MsgTooShort))

	// The Next button is equally inert
	press(m, "tab")
	require.Equal(t, wizard.ButtonNext, m.titleButtonBar.FocusedButton())
	press(m, "enter")
	require.Equal(t, PageTitle, m.Page())
	require.Equal(t, "H", m.Values().Title)
}

func TestWizard_NextButton(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	m.titleStep.SetValue("Hi")

	press(m, "tab")
	press(m, "enter")
	require.Equal(t, PageBody, m.Page())
	require.False(t, m.buttonFocused, "focus returns to content on page change")
}

func TestWizard_SubmitBlockedByShortBody(t *testing.T) {
	sub := testfixtures.NewMockSubmitter()
	m := newTestWizard(t, sub)
	toBody(t, m, "Hi")

	setBody(m, testfixtures.ShortBody)
	require.False(t, m.bodyButtonBar.IsEnabled(wizard.ButtonSubmit))

	press(m, "ctrl+s")
	require.False(t, m.Loading())
	require.Equal(t, 0, sub.CallCount())
	require.Equal(t, post.MsgTooShort, m.Validation().Message(post.FieldBody))
}

func TestWizard_SubmitFailureKeepsValues(t *testing.T) {
	sub := testfixtures.NewMockSubmitter()
	sub.Err = testfixtures.MissingIDError()
	m := newTestWizard(t, sub)
	toBody(t, m, "Hi")
	setBody(m, testfixtures.FixedBody)

	cmd := press(m, "ctrl+d")
	require.True(t, m.Loading())
	complete(t, m, cmd)

	require.False(t, m.Loading())
	require.True(t, m.Failed())
	require.False(t, m.Succeeded())
	require.Equal(t, PageBody, m.Page())
	require.Equal(t, testfixtures.ValidValues(), m.Values())
	require.True(t, testfixtures.Contains(m.Render(), "Error."))
	require.Equal(t, 1, m.Result().Failures)
}

func TestWizard_FlagsAccumulate(t *testing.T) {
	sub := testfixtures.NewMockSubmitter()
	m := newTestWizard(t, sub)

	toBody(t, m, "Hi")
	setBody(m, testfixtures.FixedBody)
	complete(t, m, press(m, "ctrl+s"))
	require.True(t, m.Succeeded())

	sub.Err = testfixtures.MissingIDError()
	toBody(t, m, "Again")
	setBody(m, testfixtures.FixedBody)
	complete(t, m, press(m, "ctrl+s"))

	require.True(t, m.Succeeded(), "success flag is never cleared")
	require.True(t, m.Failed())
	view := m.Render()
	require.True(t, testfixtures.Contains(view, "Success."))
	require.True(t, testfixtures.Contains(view, "Error."))
}

func TestWizard_LoadingIgnoresInput(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	toBody(t, m, "Hi")
	setBody(m, testfixtures.FixedBody)

	cmd := press(m, "ctrl+s")
	require.True(t, m.Loading())

	for _, key := range []string{"esc", "x", "tab", "enter", "ctrl+s"} {
		require.Nil(t, press(m, key), key)
	}
	require.Equal(t, PageBody, m.Page())
	require.Equal(t, testfixtures.ValidValues(), m.Values())
	require.True(t, m.Loading())

	_, quit := m.Update(testfixtures.Key("ctrl+c"))
	require.True(t, isQuit(quit))

	complete(t, m, cmd)
	require.False(t, m.Loading())
}

func TestWizard_StaleResultIgnored(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())

	m.Update(SubmitResultMsg{Receipt: testfixtures.AcceptedReceipt()})
	require.False(t, m.Succeeded())
	require.Empty(t, m.Result().Receipts)
}

func TestWizard_PreviousKeepsValues(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	toBody(t, m, "Hi")
	setBody(m, testfixtures.ShortBody)

	cmd := press(m, "esc")
	require.False(t, isQuit(cmd))
	require.Equal(t, PageTitle, m.Page())
	require.Equal(t, post.Values{Title: "Hi", Body: testfixtures.ShortBody}, m.Values())

	press(m, "enter")
	require.Equal(t, PageBody, m.Page())
	require.Equal(t, testfixtures.ShortBody, m.Values().Body)
}

func TestWizard_PreviousButton(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	toBody(t, m, "Hi")

	press(m, "tab")
	require.Equal(t, wizard.ButtonPrevious, m.bodyButtonBar.FocusedButton())
	press(m, "enter")
	require.Equal(t, PageTitle, m.Page())
}

func TestWizard_ButtonFocusCycle(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	toBody(t, m, "Hi")

	// Submit disabled: tab walks Previous then back to the body
	press(m, "tab")
	require.True(t, m.buttonFocused)
	press(m, "tab")
	require.False(t, m.buttonFocused)

	// Submit enabled: shift+tab lands on it
	setBody(m, testfixtures.FixedBody)
	press(m, "shift+tab")
	require.Equal(t, wizard.ButtonSubmit, m.bodyButtonBar.FocusedButton())

	cmd := press(m, "enter")
	require.True(t, m.Loading())
	require.NotNil(t, cmd)
}

func TestWizard_EscQuitsFromTitle(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())

	require.True(t, isQuit(press(m, "esc")))
}

func TestWizard_EscFromButtonsReturnsToContent(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())

	press(m, "tab")
	require.True(t, m.buttonFocused)
	require.False(t, isQuit(press(m, "esc")))
	require.False(t, m.buttonFocused)
}

func TestWizard_ValidationIdempotent(t *testing.T) {
	m := newTestWizard(t, testfixtures.NewMockSubmitter())
	m.titleStep.SetValue("H")

	first := m.Validation()
	second := m.Validation()
	require.Equal(t, first, second)
}

func TestWizard_ViewBeforeResize(t *testing.T) {
	m := New(context.Background(), testfixtures.NewMockSubmitter())

	view := m.View()
	require.True(t, view.AltScreen)
}

func TestWizard_AgainstEndpoint(t *testing.T) {
	e := testfixtures.NewEndpoint(t, http.StatusCreated, `{"id": 101}`)
	m := newTestWizard(t, publisher.NewClient(e.URL, testfixtures.FixedUserID))

	toBody(t, m, testfixtures.FixedTitle)
	setBody(m, testfixtures.FixedBody)
	complete(t, m, press(m, "ctrl+s"))

	require.True(t, m.Succeeded())
	reqs := e.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, testfixtures.FixedPayload, reqs[0].Body)
	require.Equal(t, publisher.ContentType, reqs[0].ContentType)

	e.Reply(http.StatusOK, `{"title": "Hi"}`)
	toBody(t, m, testfixtures.FixedTitle)
	setBody(m, testfixtures.FixedBody)
	complete(t, m, press(m, "ctrl+s"))

	require.True(t, m.Failed())
	require.Equal(t, PageBody, m.Page())
}
