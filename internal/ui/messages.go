package ui

import (
	"denpicker/internal/domain"
)

// catalogLoadedMsg carries the outcome of the one catalog fetch
type catalogLoadedMsg struct {
	entries []domain.CatalogEntry
	err     error
}

// clipboardMsg reports a copy of an image URL
type clipboardMsg struct {
	content string
	err     error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// clearStatusMsg clears the transient status message
type clearStatusMsg struct{}
