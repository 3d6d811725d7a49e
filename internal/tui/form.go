package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AddFormModel holds the two inputs of the add-quote form
type AddFormModel struct {
	Text     textinput.Model
	Category textinput.Model
	focus    int
}

// NewAddFormModel creates an empty, unfocused form
func NewAddFormModel() AddFormModel {
	text := textinput.New()
	text.Prompt = "Quote:    "
	text.Placeholder = "Hidup adalah perjalanan, bukan tujuan."
	text.CharLimit = 1000

	category := textinput.New()
	category.Prompt = "Category: "
	category.Placeholder = "uncategorized"
	category.CharLimit = 60

	return AddFormModel{Text: text, Category: category}
}

// Open clears the form and focuses the text input
func (f *AddFormModel) Open(width int) tea.Cmd {
	f.Text.SetValue("")
	f.Category.SetValue("")
	f.Text.Width = max(width-20, 10)
	f.Category.Width = max(width-20, 10)
	f.focus = 0
	f.Category.Blur()
	return f.Text.Focus()
}

// Close blurs both inputs
func (f *AddFormModel) Close() {
	f.Text.Blur()
	f.Category.Blur()
}

// NextField moves focus between the text and category inputs
func (f *AddFormModel) NextField() tea.Cmd {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.Category.Blur()
		return f.Text.Focus()
	}
	f.Text.Blur()
	return f.Category.Focus()
}

// OnCategory reports whether the category input has focus
func (f *AddFormModel) OnCategory() bool {
	return f.focus == 1
}

// Values returns the typed text and category
func (f *AddFormModel) Values() (string, string) {
	return f.Text.Value(), f.Category.Value()
}

// Forward passes msg to the focused input
func (f *AddFormModel) Forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.Text, cmd = f.Text.Update(msg)
	} else {
		f.Category, cmd = f.Category.Update(msg)
	}
	return cmd
}

// AddFormView renders the form as a centered box
func AddFormView(form AddFormModel, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Add quote") + "\n\n")
	b.WriteString(form.Text.View() + "\n")
	b.WriteString(form.Category.View() + "\n\n")
	b.WriteString(lipgloss.NewStyle().Faint(true).Render("[Tab] next field    [Enter] save    [Esc] cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2).
		Width(max(width-8, 30)).
		Render(b.String())
}

// PathPromptModel is the single-line input used to pick an import file
type PathPromptModel struct {
	Input textinput.Model
}

// NewPathPromptModel creates the import path prompt
func NewPathPromptModel() PathPromptModel {
	input := textinput.New()
	input.Prompt = "File: "
	input.Placeholder = "quotes_export.json"
	input.CharLimit = 4096
	return PathPromptModel{Input: input}
}

// Open clears and focuses the prompt
func (p *PathPromptModel) Open(width int) tea.Cmd {
	p.Input.SetValue("")
	p.Input.Width = max(width-16, 10)
	return p.Input.Focus()
}

// Forward passes msg to the input
func (p *PathPromptModel) Forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return cmd
}

// Path returns the trimmed path typed so far
func (p *PathPromptModel) Path() string {
	return strings.TrimSpace(p.Input.Value())
}

// PathPromptView renders the import prompt as a box
func PathPromptView(prompt PathPromptModel, width int) string {
	body := lipgloss.NewStyle().Bold(true).Render("Import quotes (.json)") + "\n\n" +
		prompt.Input.View() + "\n\n" +
		lipgloss.NewStyle().Faint(true).Render("[Enter] import    [Esc] cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2).
		Width(max(width-8, 30)).
		Render(body)
}
