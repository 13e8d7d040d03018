package postwizard

import (
	"testing"

	"github.com/mark3labs/postr/internal/post"
	"github.com/mark3labs/postr/internal/tui/testfixtures"
	"github.com/mark3labs/postr/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func TestTitleStep_Initial(t *testing.T) {
	step := NewTitleStep()

	require.Equal(t, "", step.Value())
	require.Equal(t, post.MsgTitleRequired, step.Error())
	require.True(t, testfixtures.Contains(step.View(), post.MsgTitleRequired))
}

func TestTitleStep_Typing(t *testing.T) {
	step := NewTitleStep()

	step.Update(testfixtures.Key("H"))
	require.Equal(t, "H", step.Value())
	require.Equal(t, post.MsgTooShort, step.Error())

	step.Update(testfixtures.Key("i"))
	require.Equal(t, "Hi", step.Value())
	require.Equal(t, "", step.Error())
	require.False(t, testfixtures.Contains(step.View(), post.MsgTooShort))
}

func TestTitleStep_EnterInvalid(t *testing.T) {
	step := NewTitleStep()
	step.SetValue("H")

	cmd := step.Update(testfixtures.Key("enter"))
	require.Nil(t, cmd, "invalid title must not advance")
}

func TestTitleStep_EnterValid(t *testing.T) {
	step := NewTitleStep()
	step.SetValue("  Hi  ")

	msgs := testfixtures.Collect(step.Update(testfixtures.Key("enter")))
	submitted, ok := testfixtures.Find[TitleSubmittedMsg](msgs)
	require.True(t, ok)
	require.Equal(t, "  Hi  ", submitted.Title, "title is not trimmed")
}

func TestTitleStep_TabExits(t *testing.T) {
	step := NewTitleStep()

	_, ok := testfixtures.Find[wizard.TabExitForwardMsg](testfixtures.Collect(step.Update(testfixtures.Key("tab"))))
	require.True(t, ok)

	_, ok = testfixtures.Find[wizard.TabExitBackwardMsg](testfixtures.Collect(step.Update(testfixtures.Key("shift+tab"))))
	require.True(t, ok)
}

func TestTitleStep_BlurIgnoresTyping(t *testing.T) {
	step := NewTitleStep()
	step.Blur()

	step.Update(testfixtures.Key("x"))
	require.Equal(t, "", step.Value())

	step.Focus()
	step.Update(testfixtures.Key("x"))
	require.Equal(t, "x", step.Value())
}
