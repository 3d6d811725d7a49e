package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yiblet/quotegen/internal/quote"
)

// RightPaneMsg represents messages that the right pane component handles
type RightPaneMsg interface {
	isRightPaneMsg()
}

type ScrollUpMsg struct{}

func (ScrollUpMsg) isRightPaneMsg() {}

type ScrollDownMsg struct {
	MaxScroll int
}

func (ScrollDownMsg) isRightPaneMsg() {}

type ScrollToTopMsg struct{}

func (ScrollToTopMsg) isRightPaneMsg() {}

type ScrollToBottomMsg struct {
	MaxScroll int
}

func (ScrollToBottomMsg) isRightPaneMsg() {}

type ResizeRightPaneMsg struct {
	Width  int
	Height int
}

func (ResizeRightPaneMsg) isRightPaneMsg() {}

// UpdateContentMsg resets the scroll position after the previewed quote changes
type UpdateContentMsg struct{}

func (UpdateContentMsg) isRightPaneMsg() {}

// RightPaneModel holds the state of the preview pane
type RightPaneModel struct {
	Width   int
	Height  int
	ViewPos int // First visible body line
}

// PreviewInfo is the summary shown under the previewed quote
type PreviewInfo struct {
	Results  int    // Quotes passing the current filter
	Category string // Active category filter
	Search   string // Active search text
	Premium  bool
}

// NewRightPaneModel creates a new right pane model with default values
func NewRightPaneModel(width, height int) RightPaneModel {
	return RightPaneModel{Width: width, Height: height}
}

// Update applies msg to the right pane
func (r *RightPaneModel) Update(msg RightPaneMsg) error {
	switch m := msg.(type) {
	case ScrollUpMsg:
		if r.ViewPos > 0 {
			r.ViewPos--
		}
	case ScrollDownMsg:
		if r.ViewPos < m.MaxScroll {
			r.ViewPos++
		}
	case ScrollToTopMsg:
		r.ViewPos = 0
	case ScrollToBottomMsg:
		r.ViewPos = max(m.MaxScroll, 0)
	case ResizeRightPaneMsg:
		r.Width = m.Width
		r.Height = m.Height
	case UpdateContentMsg:
		r.ViewPos = 0
	}
	return nil
}

// textWidth is the number of cells available to the wrapped quote
func (r RightPaneModel) textWidth() int {
	return max(r.Width-6, 1)
}

// bodyHeight is the number of lines available to the quote body
func (r RightPaneModel) bodyHeight() int {
	// border (2), title (2), footer (3), status line (2)
	return max(r.Height-9, 1)
}

// previewLines wraps the quote the way the preview pane draws it
func previewLines(model RightPaneModel, q quote.Quote) []string {
	lines := WrapText("“"+q.Text+"”", model.textWidth())
	return append(lines, "", q.Tag())
}

// getMaxScroll returns the largest useful ViewPos for q
func getMaxScroll(model RightPaneModel, q *quote.Quote) int {
	if q == nil {
		return 0
	}
	return max(len(previewLines(model, *q))-model.bodyHeight(), 0)
}

// RightPaneView renders the preview of q as a pure function
func RightPaneView(model RightPaneModel, q *quote.Quote, info PreviewInfo, focused bool) (string, error) {
	borderColor := "62"
	if focused {
		borderColor = "205"
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(model.Width - 2).
		Height(model.Height - 4)

	title := "Preview"
	if focused {
		title = "● " + title
	}

	var content strings.Builder
	if q == nil {
		content.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n")
		content.WriteString("No quote selected. Press a to add one.\n")
	} else {
		lines := previewLines(model, *q)
		height := model.bodyHeight()
		if maxScroll := getMaxScroll(model, q); maxScroll > 0 {
			bottom := min(model.ViewPos+height, len(lines))
			title += fmt.Sprintf(" (%d-%d/%d)", model.ViewPos+1, bottom, len(lines))
		}
		content.WriteString(lipgloss.NewStyle().Bold(true).Render(title) + "\n\n")

		textStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
		tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("246"))

		end := min(model.ViewPos+height, len(lines))
		for i := model.ViewPos; i < end; i++ {
			if i == len(lines)-1 {
				content.WriteString(tagStyle.Render(lines[i]) + "\n")
				continue
			}
			content.WriteString(textStyle.Render(lines[i]) + "\n")
		}
	}

	content.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render(previewFooter(info)))

	return style.Render(content.String()), nil
}

// previewFooter summarizes the filter and premium state
func previewFooter(info PreviewInfo) string {
	category := info.Category
	if category == "" {
		category = quote.AllCategories
	}

	parts := []string{
		fmt.Sprintf("%d result(s)", info.Results),
		"category: " + category,
	}
	if info.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", info.Search))
	}
	if info.Premium {
		parts = append(parts, "premium: unlocked")
	} else {
		parts = append(parts, "premium: locked (watermark)")
	}
	return strings.Join(parts, " • ")
}
