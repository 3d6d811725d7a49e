package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/yiblet/quotegen/internal/quote"
)

// LeftPaneMsg represents messages that the left pane component handles
type LeftPaneMsg interface {
	isLeftPaneMsg()
}

type NavigateUpMsg struct{}

func (NavigateUpMsg) isLeftPaneMsg() {}

type NavigateDownMsg struct {
	MaxIndex int // Maximum valid index for bounds checking
}

func (NavigateDownMsg) isLeftPaneMsg() {}

type GoToTopMsg struct{}

func (GoToTopMsg) isLeftPaneMsg() {}

type GoToBottomMsg struct {
	MaxIndex int
}

func (GoToBottomMsg) isLeftPaneMsg() {}

type SelectItemMsg struct {
	Index int
}

func (SelectItemMsg) isLeftPaneMsg() {}

// ClampCursorMsg keeps the cursor inside a list that just changed length.
type ClampCursorMsg struct {
	Count int
}

func (ClampCursorMsg) isLeftPaneMsg() {}

type ResizeLeftPaneMsg struct {
	Width  int
	Height int
}

func (ResizeLeftPaneMsg) isLeftPaneMsg() {}

// LeftPaneModel holds the cursor and scroll offset of the quote list
type LeftPaneModel struct {
	Cursor int // Row under the cursor
	Offset int // First visible row
	Width  int
	Height int
}

// NewLeftPaneModel creates a new left pane model with default values
func NewLeftPaneModel(width, height int) LeftPaneModel {
	return LeftPaneModel{Width: width, Height: height}
}

// Update applies msg to the left pane
func (l *LeftPaneModel) Update(msg LeftPaneMsg) error {
	switch m := msg.(type) {
	case NavigateUpMsg:
		if l.Cursor > 0 {
			l.Cursor--
		}
	case NavigateDownMsg:
		if l.Cursor < m.MaxIndex {
			l.Cursor++
		}
	case GoToTopMsg:
		l.Cursor = 0
	case GoToBottomMsg:
		if m.MaxIndex >= 0 {
			l.Cursor = m.MaxIndex
		}
	case SelectItemMsg:
		if m.Index >= 0 {
			l.Cursor = m.Index
		}
	case ClampCursorMsg:
		l.Cursor = max(min(l.Cursor, m.Count-1), 0)
	case ResizeLeftPaneMsg:
		l.Width = m.Width
		l.Height = m.Height
	}
	l.scrollIntoView()
	return nil
}

// visibleRows is the number of list rows that fit in the pane
func (l *LeftPaneModel) visibleRows() int {
	// border (2), title + blank line (2), status line (2)
	return max(l.Height-6, 1)
}

func (l *LeftPaneModel) scrollIntoView() {
	rows := l.visibleRows()
	if l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if l.Cursor >= l.Offset+rows {
		l.Offset = l.Cursor - rows + 1
	}
	l.Offset = max(l.Offset, 0)
}

// listRow formats a quote as `"text" #category`, cut to width cells
func listRow(q quote.Quote, width int) string {
	row := fmt.Sprintf("\"%s\" %s", quote.Preview(q.Text, 200), q.Tag())
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(row) > width {
		row = xansi.Truncate(row, width, "…")
	}
	return row
}

// LeftPaneView renders the filtered quote list as a pure function.
// selectedID marks the quote shown in the preview pane.
func LeftPaneView(model LeftPaneModel, quotes []quote.Quote, selectedID string, focused bool) (string, error) {
	borderColor := "62"
	if focused {
		borderColor = "205"
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(model.Width).
		Height(model.Height - 4)

	var content strings.Builder
	title := fmt.Sprintf("Quotes (%d)", len(quotes))
	if focused {
		title = "● " + title
	}
	content.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n")

	if len(quotes) == 0 {
		content.WriteString(lipgloss.NewStyle().Faint(true).Render("No quotes found"))
		return style.Render(content.String()), nil
	}

	rowWidth := model.Width - 4
	end := min(model.Offset+model.visibleRows(), len(quotes))
	for i := model.Offset; i < end; i++ {
		q := quotes[i]
		marker := "  "
		if q.ID == selectedID {
			marker = "▸ "
		}
		line := marker + listRow(q, rowWidth-2)

		if i == model.Cursor {
			line = lipgloss.NewStyle().
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230")).
				Width(rowWidth).
				Render(line)
		}
		content.WriteString(line + "\n")
	}

	return style.Render(content.String()), nil
}
