// Package dispatch defines the closed set of outbound effects the editor
// emits back to its frontend after handling a key event — window/focus
// requests and search-panel updates it has no business performing
// itself, mirroring spec's "stream of outbound dispatches" boundary.
package dispatch

// Kind tags which Dispatch variant is populated.
type Kind int

const (
	// CloseCurrentWindow asks the frontend to close the window hosting
	// this editor instance and move focus to ChangeFocusedTo.
	CloseCurrentWindow Kind = iota
	// SetSearch asks the frontend's search panel to adopt Regex.
	SetSearch
)

// Dispatch is a single outbound effect; exactly the fields matching Kind
// are meaningful.
type Dispatch struct {
	Kind Kind

	// ChangeFocusedTo identifies the window to focus after closing the
	// current one; meaningful when Kind == CloseCurrentWindow.
	ChangeFocusedTo string

	// Regex is the pattern to install in the frontend's search provider;
	// meaningful when Kind == SetSearch.
	Regex string
}

// NewCloseCurrentWindow builds a CloseCurrentWindow dispatch.
func NewCloseCurrentWindow(changeFocusedTo string) Dispatch {
	return Dispatch{Kind: CloseCurrentWindow, ChangeFocusedTo: changeFocusedTo}
}

// NewSetSearch builds a SetSearch dispatch.
func NewSetSearch(regex string) Dispatch {
	return Dispatch{Kind: SetSearch, Regex: regex}
}
