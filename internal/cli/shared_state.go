package cli

import "github.com/alexanderramin/merma/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Notice is the result line of the last action.
	Notice domain.Notice

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), notice and command bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 6 - s.logoHeight()
	if h < 1 {
		return 1
	}
	return h
}

func (s *SharedState) logoHeight() int {
	if s.App == nil || s.App.Logo == "" {
		return 0
	}
	return lineCount(s.App.Logo)
}
