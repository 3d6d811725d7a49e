package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(s *SearchModel, text string) {
	s.Forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestNewSearchModel(t *testing.T) {
	model := NewSearchModel()

	if model.IsActive() {
		t.Error("Expected search to be inactive initially")
	}
	if model.Query() != "" {
		t.Errorf("Expected empty query, got %q", model.Query())
	}
}

func TestSearchModel_StartAndExecute(t *testing.T) {
	model := NewSearchModel()

	model.Update(StartSearchMsg{})
	if !model.IsActive() || !model.Input.Focused() {
		t.Fatal("Expected search to be active and focused")
	}

	typeInto(&model, "cinta")
	if model.Query() != "cinta" {
		t.Errorf("Expected live query 'cinta', got %q", model.Query())
	}

	model.Update(ExecuteSearchMsg{})
	if model.IsActive() || model.Input.Focused() {
		t.Error("Expected search to be inactive after execute")
	}
	if model.Query() != "cinta" {
		t.Errorf("Expected query kept after execute, got %q", model.Query())
	}
}

func TestSearchModel_CancelRestores(t *testing.T) {
	model := NewSearchModel()

	model.Update(StartSearchMsg{})
	typeInto(&model, "hidup")
	model.Update(ExecuteSearchMsg{})

	model.Update(StartSearchMsg{})
	typeInto(&model, " lagi")
	model.Update(CancelSearchMsg{})

	if model.Query() != "hidup" {
		t.Errorf("Expected cancel to restore 'hidup', got %q", model.Query())
	}
	if model.IsActive() {
		t.Error("Expected search to be inactive after cancel")
	}
}

func TestSearchModel_Clear(t *testing.T) {
	model := NewSearchModel()

	model.Update(StartSearchMsg{})
	typeInto(&model, "hidup")
	model.Update(ClearSearchMsg{})

	if model.Query() != "" {
		t.Errorf("Expected cleared query, got %q", model.Query())
	}

	// A cancel after clearing has nothing to restore
	model.Update(StartSearchMsg{})
	model.Update(CancelSearchMsg{})
	if model.Query() != "" {
		t.Errorf("Expected empty query, got %q", model.Query())
	}
}

func TestSearchModel_IgnoresKeysWhenInactive(t *testing.T) {
	model := NewSearchModel()

	if cmd := model.Forward(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}); cmd != nil {
		t.Error("Expected no command while inactive")
	}
	if model.Query() != "" {
		t.Errorf("Expected keys to be ignored while inactive, got %q", model.Query())
	}
}
