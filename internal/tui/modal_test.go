package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"github.com/yiblet/quotegen/internal/premium"
	"github.com/yiblet/quotegen/internal/quote"
)

func TestModalModel_ShowHide(t *testing.T) {
	model := NewModalModel()
	if model.Active {
		t.Fatal("Expected modal to start hidden")
	}

	model.Update(ShowModalMsg{Title: "T", Content: "C", Options: "O", Color: "62"})
	if !model.Active || model.Title != "T" || model.Content != "C" || model.Options != "O" || model.Color != "62" {
		t.Errorf("Unexpected modal state after show: %+v", model)
	}

	model.Update(HideModalMsg{})
	if model.Active || model.Title != "" || model.Content != "" || model.Color != "" {
		t.Errorf("Expected modal cleared after hide: %+v", model)
	}
}

func TestModalView_Inactive(t *testing.T) {
	bg := "line one\nline two"
	if got := ModalView(NewModalModel(), bg, 40, 10); got != bg {
		t.Errorf("Expected background unchanged, got %q", got)
	}
}

func TestModalView_Overlay(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 19) + strings.Repeat(".", 80)
	model := NewModalModel()
	model.Update(ShowDeleteConfirmation(quote.Quote{Text: "Cinta itu buta", Category: "cinta"}))

	view := ModalView(model, bg, 80, 20)
	lines := strings.Split(view, "\n")

	if len(lines) != 20 {
		t.Fatalf("Expected 20 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := xansi.StringWidth(line); w != 80 {
			t.Errorf("Line %d: expected width 80, got %d", i, w)
		}
	}
	for _, want := range []string{"Delete quote?", "Cinta itu buta", "#cinta", "[Y] Yes"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected overlay to contain %q", want)
		}
	}
	if !strings.HasPrefix(lines[0], "....") {
		t.Error("Expected background to stay visible above the modal")
	}
}

func TestOverlayCenter_ShortBackground(t *testing.T) {
	view := overlayCenter("x", "box", 20, 5)
	lines := strings.Split(view, "\n")

	if len(lines) != 5 {
		t.Fatalf("Expected background padded to 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "box") {
		t.Errorf("Expected box on the middle line, got %q", lines)
	}
}

func TestModalConstructors(t *testing.T) {
	p := ShowPremiumConfirmation()
	if p.Content != premium.UnlockPrompt {
		t.Errorf("Expected premium prompt, got %q", p.Content)
	}

	m := ShowMessage("Import failed", "File format not supported.")
	if m.Title != "Import failed" || !strings.Contains(m.Options, "any key") {
		t.Errorf("Unexpected message modal: %+v", m)
	}

	long := quote.Quote{Text: strings.Repeat("a", 300), Category: "x"}
	d := ShowDeleteConfirmation(long)
	if !strings.Contains(d.Content, "...") {
		t.Error("Expected a long quote to be shortened in the delete prompt")
	}
}
