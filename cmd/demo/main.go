package main

import (
	"fmt"
	"log"
	"os"

	"github.com/yiblet/quotegen/internal/collection"
	"github.com/yiblet/quotegen/internal/interchange"
	"github.com/yiblet/quotegen/internal/logging"
	"github.com/yiblet/quotegen/internal/outfs"
	"github.com/yiblet/quotegen/internal/quote"
	"github.com/yiblet/quotegen/internal/render"
	"github.com/yiblet/quotegen/internal/store/memstore"
)

func main() {
	fmt.Println("quotegen Collection Demo")

	logger := logging.NewWithWriter(logging.Config{Level: "debug"}, os.Stderr)

	gw := memstore.New()
	c, err := collection.Open(gw, collection.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to open collection: %v", err)
	}
	fmt.Printf("Seeded with %d quotes\n\n", c.Len())

	fmt.Println("Adding quotes:")
	for _, entry := range [][2]string{
		{"Jangan menyerah, hari ini berat tapi besok lebih baik.", "motivasi"},
		{"Ilmu tanpa amal bagaikan pohon tanpa buah.", "islami"},
		{"Rindu itu berat.", ""},
		{"   ", "kosong"},
	} {
		q, added, err := c.Add(entry[0], entry[1])
		if err != nil {
			log.Printf("Failed to add quote: %v", err)
			continue
		}
		if !added {
			fmt.Println("  (blank text skipped)")
			continue
		}
		fmt.Printf("  %s %s\n", quote.Preview(q.Text, 50), q.Tag())
	}

	n, err := c.ImportBatch([]byte(`[{"text":"Waktu adalah pedang.","category":"motivasi"},{"quote":"Legacy field"},{"text":""}]`))
	if err != nil {
		log.Fatalf("Failed to import batch: %v", err)
	}
	fmt.Printf("\nImported %d quote(s)\n", n)

	fmt.Println("\nCategories:")
	for _, category := range c.Categories() {
		count := len(c.Filter(quote.Query{Category: category}))
		fmt.Printf("  %-14s %d\n", category, count)
	}

	fmt.Println("\nSearch \"adalah\":")
	for i, q := range c.Filter(quote.Query{Search: "adalah"}) {
		fmt.Printf("  %d. %s\n", i, quote.Preview(q.Text, 60))
	}

	dir, err := os.MkdirTemp("", "quotegen-demo-")
	if err != nil {
		log.Fatalf("Failed to create output dir: %v", err)
	}
	output := outfs.NewWithRoot(dir)

	q, ok := c.Random(quote.Query{Category: "motivasi"})
	if !ok {
		log.Fatalf("No motivasi quotes to render")
	}
	renderer := render.New(render.WithLogger(logger))
	png, err := renderer.Render(q, render.Options{Size: 540})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	imagePath, err := output.WriteFile(interchange.ImageFilename(q.ID), png)
	if err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	fmt.Printf("\nRendered %q (%d bytes)\n  %s\n", quote.Preview(q.Text, 40), len(png), imagePath)

	data, err := c.Export()
	if err != nil {
		log.Fatalf("Failed to export: %v", err)
	}
	exportPath, err := output.WriteFile(interchange.ExportFilename, data)
	if err != nil {
		log.Fatalf("Failed to write export: %v", err)
	}
	fmt.Printf("Exported %d quotes\n  %s\n", c.Len(), exportPath)
}
