// Package postwizard implements the two-page blog post form: a title page,
// a body page and the submission lifecycle that follows.
package postwizard

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/postr/internal/logger"
	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/publisher"
	"github.com/mark3labs/postr/internal/tui/theme"
	"github.com/mark3labs/postr/internal/tui/wizard"
)

// Page enumeration for the form flow
const (
	PageTitle = 0 // Title input
	PageBody  = 1 // Body textarea and submission
)

// Modal layout constants
const (
	modalWidth = 70 // Total modal width including border
)

// Submitter sends validated values to the remote endpoint.
type Submitter interface {
	Submit(ctx context.Context, v post.Values) (*publisher.Receipt, error)
}

// Result holds what happened during a wizard session.
type Result struct {
	Receipts []*publisher.Receipt // Accepted submissions, in order
	Failures int                  // Submissions classified as failures
}

// WizardModel is the main BubbleTea model for the post form.
// It owns the page index, the form values and the submission flags.
type WizardModel struct {
	page    int  // Current page (0-1)
	loading bool // A submission is in flight
	success bool // The most recent settled submission was accepted
	failed  bool // The most recent settled submission was a failure
	width   int  // Terminal width
	height  int  // Terminal height

	submitter Submitter
	ctx       context.Context
	result    Result

	// Page components; both persist so values survive Previous/Next
	titleStep *TitleStep
	bodyStep  *BodyStep
	spinner   spinner.Model

	// Button bar with focus tracking
	buttonFocused bool // True if buttons have focus (vs page content)

	// Cached button bars per page (prevents focus reset on re-render)
	titleButtonBar *wizard.ButtonBar
	bodyButtonBar  *wizard.ButtonBar
}

// New creates a wizard on the title page with empty values.
func New(ctx context.Context, s Submitter) *WizardModel {
	t := theme.Current()
	m := &WizardModel{
		page:      PageTitle,
		submitter: s,
		ctx:       ctx,
		titleStep: NewTitleStep(),
		bodyStep:  NewBodyStep(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))),
		),
		titleButtonBar: wizard.NewButtonBar(wizard.CreateNextButton()),
		bodyButtonBar:  wizard.NewButtonBar(wizard.CreatePreviousSubmitButtons(false)),
	}
	m.syncButtons()
	return m
}

// Run is the entry point for the post wizard.
// It creates a standalone BubbleTea program, runs it until the user quits
// and returns what was submitted along the way.
func Run(ctx context.Context, s Submitter) (*Result, error) {
	m := New(ctx, s)

	p := tea.NewProgram(m, tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	res := wizModel.Result()
	return &res, nil
}

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	return m.titleStep.Init()
}

// Page returns the current page index.
func (m *WizardModel) Page() int { return m.page }

// Loading reports whether a submission is in flight.
func (m *WizardModel) Loading() bool { return m.loading }

// Succeeded reports whether the last settled submission was accepted.
func (m *WizardModel) Succeeded() bool { return m.success }

// Failed reports whether the last settled submission was a failure.
func (m *WizardModel) Failed() bool { return m.failed }

// Result returns a copy of the session result so far.
func (m *WizardModel) Result() Result {
	res := m.result
	res.Receipts = append([]*publisher.Receipt(nil), m.result.Receipts...)
	return res
}

// Values returns the current form values.
func (m *WizardModel) Values() post.Values {
	return post.Values{
		Title: m.titleStep.Value(),
		Body:  m.bodyStep.Value(),
	}
}

// Validation returns the validation result for the current values.
func (m *WizardModel) Validation() post.Result {
	return post.Validate(m.Values())
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncButtons()
	return model, cmd
}

func (m *WizardModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The loading view has no interactive elements
		if m.loading {
			return m, nil
		}

		// Handle button-focused keyboard input
		if m.buttonFocused {
			bar := m.currentButtonBar()
			switch msg.String() {
			case "tab", "right":
				if !bar.FocusNext() {
					m.focusContent()
				}
				return m, nil
			case "shift+tab", "left":
				if !bar.FocusPrev() {
					m.focusContent()
				}
				return m, nil
			case "enter", " ", "space":
				return m.activateButton(bar.FocusedButton())
			case "esc":
				m.focusContent()
				return m, nil
			}
			return m, nil
		}

		// Global keybindings
		switch msg.String() {
		case "esc":
			if m.page == PageTitle {
				return m, tea.Quit
			}
			return m.goPrevious()
		case "ctrl+e":
			if m.page == PageBody && EditorAvailable() {
				return m, m.bodyStep.OpenEditor(m.titleStep.Value())
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.titleStep.SetSize(msg.Width, msg.Height)
		m.bodyStep.SetSize(msg.Width, msg.Height)
		for _, bar := range []*wizard.ButtonBar{m.titleButtonBar, m.bodyButtonBar} {
			bar.SetWidth(modalWidth)
		}
		return m, nil

	case TitleSubmittedMsg:
		return m.goNext()

	case SubmitRequestedMsg:
		return m.submit()

	case SubmitResultMsg:
		return m.settle(msg)

	case BodyEditedMsg:
		cmd := m.bodyStep.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case wizard.TabExitForwardMsg:
		m.focusButtons(true)
		return m, nil

	case wizard.TabExitBackwardMsg:
		m.focusButtons(false)
		return m, nil
	}

	// Forward messages to current page
	if m.loading {
		return m, nil
	}
	return m, m.updateCurrentPage(msg)
}

// updateCurrentPage forwards a message to the current page.
func (m *WizardModel) updateCurrentPage(msg tea.Msg) tea.Cmd {
	switch m.page {
	case PageTitle:
		return m.titleStep.Update(msg)
	case PageBody:
		return m.bodyStep.Update(msg)
	}
	return nil
}

// activateButton performs the action of the focused button.
func (m *WizardModel) activateButton(id wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case wizard.ButtonNext:
		return m.goNext()
	case wizard.ButtonPrevious:
		return m.goPrevious()
	case wizard.ButtonSubmit:
		return m.submit()
	}
	return m, nil
}

// goNext moves from the title page to the body page. An invalid title
// leaves everything unchanged.
func (m *WizardModel) goNext() (tea.Model, tea.Cmd) {
	if m.page != PageTitle || m.loading {
		return m, nil
	}
	if post.ValidateField(post.FieldTitle, m.titleStep.Value()) != "" {
		logger.Debug("Next ignored: title invalid")
		return m, nil
	}

	m.page = PageBody
	m.focusContent()
	return m, m.bodyStep.Init()
}

// goPrevious returns to the title page without validating.
func (m *WizardModel) goPrevious() (tea.Model, tea.Cmd) {
	if m.page != PageBody || m.loading {
		return m, nil
	}

	m.page = PageTitle
	m.focusContent()
	return m, m.titleStep.Init()
}

// submit starts the single in-flight request when the form is valid.
func (m *WizardModel) submit() (tea.Model, tea.Cmd) {
	if m.page != PageBody || m.loading {
		return m, nil
	}
	values := m.Values()
	if !post.Validate(values).Valid() {
		logger.Debug("Submit ignored: form invalid")
		return m, nil
	}

	m.loading = true
	m.buttonFocused = false
	m.currentButtonBar().Blur()

	ctx := m.ctx
	s := m.submitter
	request := func() tea.Msg {
		receipt, err := s.Submit(ctx, values)
		return SubmitResultMsg{Receipt: receipt, Err: err}
	}
	return m, tea.Batch(m.spinner.Tick, request)
}

// settle applies the outcome of the in-flight request.
func (m *WizardModel) settle(msg SubmitResultMsg) (tea.Model, tea.Cmd) {
	if !m.loading {
		return m, nil
	}
	m.loading = false

	if msg.Err != nil || msg.Receipt == nil {
		logger.Warn("submission failed: %v", msg.Err)
		m.failed = true
		m.result.Failures++
		m.focusContent()
		return m, nil
	}

	logger.Info("post created with id %s", msg.Receipt.ID)
	m.success = true
	m.result.Receipts = append(m.result.Receipts, msg.Receipt)

	m.titleStep.SetValue("")
	m.bodyStep.SetValue("")
	m.page = PageTitle
	m.focusContent()
	return m, m.titleStep.Init()
}

// syncButtons keeps Submit enabled exactly when the form is valid.
func (m *WizardModel) syncButtons() {
	m.bodyButtonBar.SetEnabled(wizard.ButtonSubmit, m.Validation().Valid())
	if m.buttonFocused && m.currentButtonBar().FocusedButton() == wizard.ButtonNone {
		m.focusContent()
	}
}

func (m *WizardModel) currentButtonBar() *wizard.ButtonBar {
	if m.page == PageBody {
		return m.bodyButtonBar
	}
	return m.titleButtonBar
}

// focusButtons moves focus from the page content to its button bar.
func (m *WizardModel) focusButtons(first bool) {
	bar := m.currentButtonBar()
	if first {
		bar.FocusFirst()
	} else {
		bar.FocusLast()
	}
	if bar.FocusedButton() == wizard.ButtonNone {
		return
	}
	m.buttonFocused = true
	m.titleStep.Blur()
	m.bodyStep.Blur()
}

// focusContent gives focus back to the current page's input.
func (m *WizardModel) focusContent() {
	m.buttonFocused = false
	m.titleButtonBar.Blur()
	m.bodyButtonBar.Blur()
	if m.page == PageBody {
		m.titleStep.Blur()
		m.bodyStep.Focus()
	} else {
		m.bodyStep.Blur()
		m.titleStep.Focus()
	}
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.Render()

	// Center on screen
	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Draw to canvas using ultraviolet
	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// Render returns the wizard content before centering.
func (m *WizardModel) Render() string {
	s := theme.Current().S()

	if m.loading {
		return s.Modal.Width(modalWidth).Render(
			s.Loading.Render(m.spinner.View() + " Loading..."),
		)
	}

	var banners []string
	if m.success {
		banners = append(banners, s.SuccessBanner.Render("Success."))
	}
	if m.failed {
		banners = append(banners, s.ErrorBanner.Render("Error."))
	}

	var (
		stepTitle   string
		stepContent string
		hint        string
	)
	switch m.page {
	case PageTitle:
		stepTitle = "New Blog Post - Step 1: Title"
		stepContent = m.titleStep.View()
		hint = wizard.RenderHintBar("enter", "next", "tab", "buttons", "esc", "quit")
	case PageBody:
		stepTitle = "New Blog Post - Step 2: Body"
		stepContent = m.bodyStep.View()
		pairs := []string{"ctrl+s", "submit", "tab", "buttons", "esc", "back"}
		if EditorAvailable() {
			pairs = append(pairs, "ctrl+e", "editor")
		}
		hint = wizard.RenderHintBar(pairs...)
	}

	form := s.Modal.Width(modalWidth).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		s.HeaderTitle.MarginBottom(1).Render(stepTitle),
		stepContent,
		"",
		m.currentButtonBar().Render(),
		"",
		hint,
	))

	return lipgloss.JoinVertical(lipgloss.Left, append(banners, form)...)
}
