package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/yiblet/quotegen/internal/premium"
	"github.com/yiblet/quotegen/internal/quote"
)

// ModalMsg represents messages that the modal component handles
type ModalMsg interface {
	isModalMsg()
}

type ShowModalMsg struct {
	Title   string
	Content string
	Options string
	Color   string // Border color, red when empty
}

func (ShowModalMsg) isModalMsg() {}

type HideModalMsg struct{}

func (HideModalMsg) isModalMsg() {}

// ModalModel holds the state for modal dialogs
type ModalModel struct {
	Active  bool
	Title   string
	Content string
	Options string
	Color   string
	Width   int
}

// NewModalModel creates a new modal model
func NewModalModel() ModalModel {
	return ModalModel{Width: 60}
}

// Update handles modal messages
func (m *ModalModel) Update(msg ModalMsg) error {
	switch msg := msg.(type) {
	case ShowModalMsg:
		m.Active = true
		m.Title = msg.Title
		m.Content = msg.Content
		m.Options = msg.Options
		m.Color = msg.Color
	case HideModalMsg:
		m.Active = false
		m.Title = ""
		m.Content = ""
		m.Options = ""
		m.Color = ""
	}
	return nil
}

// ModalView draws the modal centered over backgroundView
func ModalView(model ModalModel, backgroundView string, windowWidth, windowHeight int) string {
	if !model.Active {
		return backgroundView
	}

	body := lipgloss.NewStyle().Bold(true).Render(model.Title)
	if model.Content != "" {
		body += "\n\n" + model.Content
	}
	if model.Options != "" {
		body += "\n\n" + lipgloss.NewStyle().Faint(true).Render(model.Options)
	}

	color := model.Color
	if color == "" {
		color = "9"
	}
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(1, 2).
		Width(min(model.Width, max(windowWidth-4, 10))).
		Align(lipgloss.Center).
		Render(body)

	return overlayCenter(backgroundView, modal, windowWidth, windowHeight)
}

// overlayCenter pastes fg over the middle of bg, cell-accurately
func overlayCenter(bg, fg string, w, h int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < h {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")

	fgW := 0
	for _, line := range fgLines {
		fgW = max(fgW, xansi.StringWidth(line))
	}
	fgW = min(fgW, w)
	if fgW <= 0 {
		return bg
	}

	x := max((w-fgW)/2, 0)
	y := max((len(bgLines)-len(fgLines))/2, 0)

	for i, fgLine := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLine := bgLines[row]
		if pad := x - xansi.StringWidth(bgLine); pad > 0 {
			bgLine += strings.Repeat(" ", pad)
		}

		if n := xansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			fgLine = xansi.Cut(fgLine, 0, fgW)
		}

		bgLines[row] = xansi.Cut(bgLine, 0, x) + fgLine + xansi.Cut(bgLine, x+fgW, w)
	}

	return strings.Join(bgLines, "\n")
}

// ShowDeleteConfirmation creates the modal asked before removing q
func ShowDeleteConfirmation(q quote.Quote) ShowModalMsg {
	return ShowModalMsg{
		Title:   "Delete quote?",
		Content: quote.Preview(q.Text, 120) + "\n" + q.Tag(),
		Options: "[Y] Yes, delete    [N] No, cancel",
	}
}

// ShowPremiumConfirmation creates the modal asked before unlocking premium
func ShowPremiumConfirmation() ShowModalMsg {
	return ShowModalMsg{
		Title:   "Premium",
		Content: premium.UnlockPrompt,
		Options: "[Y] Unlock    [N] Not now",
		Color:   "220",
	}
}

// ShowMessage creates an informational modal dismissed by any key
func ShowMessage(title, content string) ShowModalMsg {
	return ShowModalMsg{
		Title:   title,
		Content: content,
		Options: "Press any key to continue",
		Color:   "62",
	}
}
