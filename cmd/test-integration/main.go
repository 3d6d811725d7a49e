package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/yiblet/quotegen/internal/clipboard/mockboard"
	"github.com/yiblet/quotegen/internal/collection"
	"github.com/yiblet/quotegen/internal/outfs"
	"github.com/yiblet/quotegen/internal/premium"
	"github.com/yiblet/quotegen/internal/render"
	"github.com/yiblet/quotegen/internal/store/memstore"
	"github.com/yiblet/quotegen/internal/tui"
)

// Drives the TUI with scripted keys and checks every frame keeps its width.
func main() {
	fmt.Println("Testing TUI Layout")
	fmt.Println("==================")

	gw := memstore.New()
	c, err := collection.Open(gw)
	if err != nil {
		log.Fatalf("Error opening collection: %v", err)
	}

	dir, err := os.MkdirTemp("", "quotegen-tui-")
	if err != nil {
		log.Fatalf("Error creating output dir: %v", err)
	}
	defer os.RemoveAll(dir)

	model := tui.NewModel(tui.Deps{
		Collection: c,
		Premium:    premium.New(gw, nil),
		Renderer:   render.New(),
		Output:     outfs.NewWithRoot(dir),
		Clipboard:  mockboard.New(),
		ImageSize:  540,
	})

	const width, height = 120, 24
	model.Update(tea.WindowSizeMsg{Width: width, Height: height})

	steps := []struct {
		name string
		keys []tea.KeyMsg
	}{
		{"initial", nil},
		{"move down", runes("j")},
		{"search", append(runes("/"), runes("cinta")...)},
		{"keep search", []tea.KeyMsg{{Type: tea.KeyEnter}}},
		{"clear search", []tea.KeyMsg{{Type: tea.KeyEsc}}},
		{"next category", runes("f")},
		{"add form", runes("a")},
		{"close form", []tea.KeyMsg{{Type: tea.KeyEsc}}},
		{"delete modal", runes("d")},
		{"decline", runes("n")},
		{"help", runes("z")},
	}

	failures := 0
	for _, step := range steps {
		for _, key := range step.keys {
			model.Update(key)
		}

		lines := strings.Split(model.View(), "\n")
		widest := 0
		for _, line := range lines {
			widest = max(widest, xansi.StringWidth(line))
		}

		status := "ok"
		if widest > width {
			status = "TOO WIDE"
			failures++
		}
		fmt.Printf("%-14s %3d lines, widest %3d  %s\n", step.name, len(lines), widest, status)
	}

	fmt.Println(strings.Repeat("=", 40))
	fmt.Println(model.View())

	if failures > 0 {
		fmt.Printf("\n%d frame(s) exceeded %d columns\n", failures, width)
		os.Exit(1)
	}
	fmt.Println("\nLayout verification complete!")
}

func runes(s string) []tea.KeyMsg {
	return []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune(s)}}
}
