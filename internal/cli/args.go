package cli

import (
	"fmt"
	"strings"

	"github.com/yiblet/quotegen/internal/config"
)

// Args represents the top-level command structure
type Args struct {
	DBPath     *string `arg:"--db" help:"SQLite database path (default ~/.config/quotegen/quotegen.db)"`
	ConfigPath *string `arg:"--config" help:"config file path (default ~/.config/quotegen/config.yaml)"`

	Add        *AddCmd        `arg:"subcommand:add" help:"Add a quote"`
	List       *ListCmd       `arg:"subcommand:list" help:"List quotes, optionally filtered"`
	Categories *CategoriesCmd `arg:"subcommand:categories" help:"List categories"`
	Rm         *RmCmd         `arg:"subcommand:rm" help:"Delete a quote"`
	Render     *RenderCmd     `arg:"subcommand:render" help:"Render a quote as a PNG card"`
	Random     *RandomCmd     `arg:"subcommand:random" help:"Print a random quote"`
	Copy       *CopyCmd       `arg:"subcommand:copy" help:"Copy a quote to the clipboard"`
	Export     *ExportCmd     `arg:"subcommand:export" help:"Export all quotes as JSON"`
	Import     *ImportCmd     `arg:"subcommand:import" help:"Import quotes from a JSON file"`
	Premium    *PremiumCmd    `arg:"subcommand:premium" help:"Show or unlock premium"`
	Config     *ConfigCmd     `arg:"subcommand:config" help:"Manage configuration"`
}

// AddCmd represents 'quotegen add'
type AddCmd struct {
	Text     string `arg:"positional,required" help:"quote text"`
	Category string `arg:"-c,--category" help:"category (default uncategorized)"`
}

// ListCmd represents 'quotegen list'
type ListCmd struct {
	Search   string `arg:"-s,--search" help:"case-insensitive text filter"`
	Category string `arg:"-c,--category" help:"category filter (all for every category)"`
}

// CategoriesCmd represents 'quotegen categories'
type CategoriesCmd struct{}

// RmCmd represents 'quotegen rm'
type RmCmd struct {
	ID  string `arg:"positional,required" help:"quote id, id prefix or list index"`
	Yes bool   `arg:"-y,--yes" help:"skip confirmation prompt"`
}

// RenderCmd represents 'quotegen render'
type RenderCmd struct {
	ID     *string `arg:"positional" help:"quote id, id prefix or list index (default: selected quote)"`
	Output *string `arg:"-o,--output" help:"output file (default: quote-<id>.png in the output directory)"`
	Size   *int    `arg:"--size" help:"image size in pixels (at most 4096)"`
}

// RandomCmd represents 'quotegen random'
type RandomCmd struct {
	Search   string `arg:"-s,--search" help:"case-insensitive text filter"`
	Category string `arg:"-c,--category" help:"category filter"`
}

// CopyCmd represents 'quotegen copy'
type CopyCmd struct {
	ID *string `arg:"positional" help:"quote id, id prefix or list index (default: selected quote)"`
}

// ExportCmd represents 'quotegen export'
type ExportCmd struct {
	Output *string `arg:"-o,--output" help:"output file (default: quotes_export.json in the output directory)"`
}

// ImportCmd represents 'quotegen import'
type ImportCmd struct {
	File string `arg:"positional,required" help:"JSON file to import"`
}

// PremiumCmd represents 'quotegen premium'
type PremiumCmd struct {
	Unlock bool `arg:"--unlock" help:"unlock premium (removes the watermark)"`
	Yes    bool `arg:"-y,--yes" help:"skip confirmation prompt"`
}

// ConfigCmd represents 'quotegen config'
type ConfigCmd struct {
	Get  *ConfigGetCmd  `arg:"subcommand:get" help:"Get a configuration value"`
	Set  *ConfigSetCmd  `arg:"subcommand:set" help:"Set a configuration value"`
	List *ConfigListCmd `arg:"subcommand:list" help:"List all configuration values"`
}

// ConfigGetCmd represents 'quotegen config get'
type ConfigGetCmd struct {
	Key string `arg:"positional,required" help:"configuration key"`
}

// ConfigSetCmd represents 'quotegen config set'
type ConfigSetCmd struct {
	Key   string `arg:"positional,required" help:"configuration key"`
	Value string `arg:"positional,required" help:"configuration value"`
}

// ConfigListCmd represents 'quotegen config list'
type ConfigListCmd struct{}

// Description returns the program description
func (Args) Description() string {
	return "quotegen - collect quotes and turn them into shareable square images"
}

// Version returns the program version
func (Args) Version() string {
	return "quotegen 0.1.0"
}

// Epilogue returns additional help text
func (Args) Epilogue() string {
	return `Examples:
  quotegen                                   # Interactive TUI
  quotegen add "Hidup adalah perjalanan" -c motivasi
  quotegen list -s cinta                     # Search quotes
  quotegen render 0 --size 1080              # Render newest quote
  quotegen export -o backup.json
  quotegen import backup.json
  quotegen config set image-size 2048`
}

// Interactive reports whether no subcommand was given.
func (args *Args) Interactive() bool {
	return args.Add == nil && args.List == nil && args.Categories == nil &&
		args.Rm == nil && args.Render == nil && args.Random == nil &&
		args.Copy == nil && args.Export == nil && args.Import == nil &&
		args.Premium == nil && args.Config == nil
}

// Validate performs validation on the parsed arguments
func (args *Args) Validate() error {
	if args.DBPath != nil && strings.TrimSpace(*args.DBPath) == "" {
		return fmt.Errorf("--db must not be empty")
	}
	if args.Render != nil {
		return args.Render.Validate()
	}
	if args.Rm != nil {
		return args.Rm.Validate()
	}
	if args.Config != nil {
		return args.Config.Validate()
	}
	return nil
}

// Validate validates render command arguments
func (r *RenderCmd) Validate() error {
	if r.Size != nil && *r.Size <= 0 {
		return fmt.Errorf("size must be positive")
	}
	if r.Size != nil && *r.Size > config.MaxImageSize {
		return fmt.Errorf("size must be at most %d", config.MaxImageSize)
	}
	if r.Output != nil && strings.TrimSpace(*r.Output) == "" {
		return fmt.Errorf("output file must not be empty")
	}
	return nil
}

// Validate validates rm command arguments
func (r *RmCmd) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("quote id must not be empty")
	}
	return nil
}

// Validate validates config command arguments
func (c *ConfigCmd) Validate() error {
	if c.Get == nil && c.Set == nil && c.List == nil {
		return fmt.Errorf("no config subcommand specified")
	}
	return nil
}
