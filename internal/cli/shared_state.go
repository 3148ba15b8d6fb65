package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ChartWidth returns the width available to a chart inside a panel.
func (s *SharedState) ChartWidth() int {
	if s.Width <= 0 {
		return 72
	}
	return max(s.Width-4, 30)
}
