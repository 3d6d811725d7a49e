package quote

import (
	"fmt"
	"strings"
	"testing"
)

func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		category     string
		wantText     string
		wantCategory string
		wantOK       bool
	}{
		{"plain", "Hello", "life", "Hello", "life", true},
		{"trims both", "  Hello \n", "\t life ", "Hello", "life", true},
		{"blank category", "Hello", "   ", "Hello", DefaultCategory, true},
		{"blank text", "   ", "life", "", "life", false},
		{"empty everything", "", "", "", DefaultCategory, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, category, ok := Normalize(tt.text, tt.category)
			if text != tt.wantText {
				t.Errorf("Expected text %q, got %q", tt.wantText, text)
			}
			if category != tt.wantCategory {
				t.Errorf("Expected category %q, got %q", tt.wantCategory, category)
			}
			if ok != tt.wantOK {
				t.Errorf("Expected ok %v, got %v", tt.wantOK, ok)
			}
		})
	}
}

func TestQuote_ClipboardText(t *testing.T) {
	q := Quote{ID: "1", Text: "Hidup adalah perjalanan", Category: "motivasi"}
	want := `"Hidup adalah perjalanan" — #motivasi`
	if got := q.ClipboardText(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSeed(t *testing.T) {
	seed := Seed(sequentialIDs())
	if len(seed) != 3 {
		t.Fatalf("Expected 3 seed quotes, got %d", len(seed))
	}

	wantCategories := []string{"motivasi", "cinta", "islami"}
	for i, q := range seed {
		if q.ID != fmt.Sprintf("id-%d", i+1) {
			t.Errorf("Expected id-%d, got %s", i+1, q.ID)
		}
		if q.Category != wantCategories[i] {
			t.Errorf("Expected category %s, got %s", wantCategories[i], q.Category)
		}
		if strings.TrimSpace(q.Text) == "" {
			t.Errorf("Seed quote %d has empty text", i)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := NewID()
		if id == "" {
			t.Fatal("Expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
