package cli

import (
	"github.com/alexanderramin/merma/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the content area.
type cmdOutputMsg struct {
	output string
}

// noticeMsg replaces the one-line notice under the session panel.
type noticeMsg struct {
	notice domain.Notice
}

// refreshViewMsg is broadcast to every view after the session changes.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// noticeCmd returns a tea.Cmd that shows n and refreshes the views.
func noticeCmd(n domain.Notice) tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return noticeMsg{notice: n} },
		func() tea.Msg { return refreshViewMsg{} },
	)
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}
