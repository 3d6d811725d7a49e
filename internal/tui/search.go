package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchMsg represents messages that the search component handles
type SearchMsg interface {
	isSearchMsg()
}

type StartSearchMsg struct{}

func (StartSearchMsg) isSearchMsg() {}

// ExecuteSearchMsg keeps the typed text as the active query
type ExecuteSearchMsg struct{}

func (ExecuteSearchMsg) isSearchMsg() {}

// CancelSearchMsg restores the query that was active before StartSearchMsg
type CancelSearchMsg struct{}

func (CancelSearchMsg) isSearchMsg() {}

type ClearSearchMsg struct{}

func (ClearSearchMsg) isSearchMsg() {}

// SearchModel holds the live search box. The list is filtered on every
// keystroke, so Query is meaningful while the box is still focused.
type SearchModel struct {
	Active   bool
	Input    textinput.Model
	previous string
}

// NewSearchModel creates a new search model with default values
func NewSearchModel() SearchModel {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search quotes"
	input.CharLimit = 200
	return SearchModel{Input: input}
}

// Update applies msg to the search model
func (s *SearchModel) Update(msg SearchMsg) tea.Cmd {
	switch msg.(type) {
	case StartSearchMsg:
		s.Active = true
		s.previous = s.Input.Value()
		s.Input.CursorEnd()
		return s.Input.Focus()
	case ExecuteSearchMsg:
		s.Active = false
		s.Input.Blur()
	case CancelSearchMsg:
		s.Active = false
		s.Input.SetValue(s.previous)
		s.Input.Blur()
	case ClearSearchMsg:
		s.Active = false
		s.previous = ""
		s.Input.SetValue("")
		s.Input.Blur()
	}
	return nil
}

// Forward passes a key or blink message to the text input while searching
func (s *SearchModel) Forward(msg tea.Msg) tea.Cmd {
	if !s.Active {
		return nil
	}
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd
}

// IsActive returns whether search mode is currently active
func (s *SearchModel) IsActive() bool {
	return s.Active
}

// Query returns the text the list is filtered by
func (s *SearchModel) Query() string {
	return s.Input.Value()
}
