package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAddFormModel(t *testing.T) {
	form := NewAddFormModel()
	form.Open(80)

	if !form.Text.Focused() || form.OnCategory() {
		t.Fatal("Expected the text field to be focused first")
	}

	form.Forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Sabar")})
	form.NextField()
	if !form.OnCategory() || form.Text.Focused() {
		t.Fatal("Expected focus to move to the category field")
	}
	form.Forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hikmah")})

	text, category := form.Values()
	if text != "Sabar" || category != "hikmah" {
		t.Errorf("Expected (Sabar, hikmah), got (%q, %q)", text, category)
	}

	form.NextField()
	if form.OnCategory() {
		t.Error("Expected focus to wrap back to the text field")
	}

	// Reopening starts from a clean form
	form.Open(80)
	if text, category := form.Values(); text != "" || category != "" {
		t.Errorf("Expected empty values after reopening, got (%q, %q)", text, category)
	}

	form.Close()
	if form.Text.Focused() || form.Category.Focused() {
		t.Error("Expected both fields blurred after close")
	}
}

func TestAddFormView(t *testing.T) {
	form := NewAddFormModel()
	form.Open(80)

	view := AddFormView(form, 80)
	for _, want := range []string{"Add quote", "Quote:", "Category:", "[Enter] save"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected form view to contain %q", want)
		}
	}
}

func TestPathPromptModel(t *testing.T) {
	prompt := NewPathPromptModel()
	prompt.Open(80)

	prompt.Forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  /tmp/quotes.json ")})
	if prompt.Path() != "/tmp/quotes.json" {
		t.Errorf("Expected trimmed path, got %q", prompt.Path())
	}

	view := PathPromptView(prompt, 80)
	if !strings.Contains(view, "Import quotes") {
		t.Error("Expected prompt title in the view")
	}
}
