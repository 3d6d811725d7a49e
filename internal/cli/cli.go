package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yiblet/quotegen/internal/clipboard"
	"github.com/yiblet/quotegen/internal/clipboard/sysboard"
	"github.com/yiblet/quotegen/internal/collection"
	"github.com/yiblet/quotegen/internal/config"
	"github.com/yiblet/quotegen/internal/interchange"
	"github.com/yiblet/quotegen/internal/logging"
	"github.com/yiblet/quotegen/internal/outfs"
	"github.com/yiblet/quotegen/internal/premium"
	"github.com/yiblet/quotegen/internal/quote"
	"github.com/yiblet/quotegen/internal/render"
	"github.com/yiblet/quotegen/internal/store"
	"github.com/yiblet/quotegen/internal/store/dbstore"
	"github.com/yiblet/quotegen/internal/tui"
)

const (
	DBFileName  = "quotegen.db"
	LogFileName = "quotegen.log"
)

// CLI handles the command-line interface
type CLI struct {
	gateway    store.Gateway
	collection *collection.Collection
	premium    *premium.Flag
	renderer   *render.Renderer
	output     *outfs.OutFS
	clipboard  clipboard.Clipboard
	config     *config.ConfigManager
	imageSize  int
	logger     *slog.Logger
	logCloser  io.Closer

	out io.Writer
	in  *bufio.Reader
}

// New creates a new CLI instance
func New() (*CLI, error) {
	return NewWithArgs(nil)
}

// NewWithArgs creates a new CLI instance honoring --db and --config
func NewWithArgs(args *Args) (*CLI, error) {
	if args == nil {
		args = &Args{}
	}

	var cm *config.ConfigManager
	if args.ConfigPath != nil {
		cm = config.NewConfigManagerWithPath(*args.ConfigPath)
	} else {
		var err error
		if cm, err = config.NewConfigManager(); err != nil {
			return nil, err
		}
	}

	cfg, err := cm.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The TUI owns the terminal, so its logs go to a file.
	logCfg := logging.Config{Level: cfg.LogLevel, File: cfg.LogFile}
	if args.Interactive() && logCfg.File == "" {
		if logCfg.File, err = outfs.ConfigPath(LogFileName); err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
	}
	logger, logCloser := logging.New(logCfg)

	// Determine database path (precedence: flag > config > default)
	dbPath := cfg.DataPath
	if args.DBPath != nil {
		dbPath = *args.DBPath
	}
	if dbPath == "" {
		if dbPath, err = outfs.ConfigPath(DBFileName); err != nil {
			logCloser.Close()
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
	}

	gw, err := dbstore.NewSQLiteGateway(dbPath)
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("failed to create database store: %w", err)
	}

	output, err := outfs.New(cfg.OutputDir)
	if err != nil {
		gw.Close()
		logCloser.Close()
		return nil, err
	}

	c, err := newCLI(gw, output, sysboard.New(), logger, cfg.ImageSize)
	if err != nil {
		gw.Close()
		logCloser.Close()
		return nil, err
	}
	c.config = cm
	c.logCloser = logCloser
	return c, nil
}

// newCLI wires the application around an already opened gateway.
func newCLI(gw store.Gateway, output *outfs.OutFS, cb clipboard.Clipboard, logger *slog.Logger, imageSize int) (*CLI, error) {
	coll, err := collection.Open(gw, collection.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to open quote collection: %w", err)
	}

	return &CLI{
		gateway:    gw,
		collection: coll,
		premium:    premium.New(gw, logger),
		renderer:   render.New(render.WithLogger(logger)),
		output:     output,
		clipboard:  cb,
		imageSize:  imageSize,
		logger:     logger,
		out:        os.Stdout,
		in:         bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the database and log file
func (c *CLI) Close() error {
	err := c.gateway.Close()
	if c.logCloser != nil {
		if cerr := c.logCloser.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Execute runs the CLI command based on parsed arguments
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.Add != nil:
		return c.executeAdd(args.Add)
	case args.List != nil:
		return c.executeList(args.List)
	case args.Categories != nil:
		return c.executeCategories()
	case args.Rm != nil:
		return c.executeRm(args.Rm)
	case args.Render != nil:
		return c.executeRender(args.Render)
	case args.Random != nil:
		return c.executeRandom(args.Random)
	case args.Copy != nil:
		return c.executeCopy(args.Copy)
	case args.Export != nil:
		return c.executeExport(args.Export)
	case args.Import != nil:
		return c.executeImport(args.Import)
	case args.Premium != nil:
		return c.executePremium(args.Premium)
	case args.Config != nil:
		return c.executeConfig(args.Config)
	default:
		return c.launchTUI()
	}
}

// confirm prompts on stdout and reads a y/N answer
func (c *CLI) confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	response, _ := c.in.ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func (c *CLI) confirmer(skip bool) collection.ConfirmFunc {
	if skip {
		return func(string) bool { return true }
	}
	return c.confirm
}

// resolve looks up ref, or the selected quote when ref is nil
func (c *CLI) resolve(ref *string) (quote.Quote, error) {
	if ref != nil {
		return c.collection.Lookup(*ref)
	}
	q, ok := c.collection.Selected()
	if !ok {
		return quote.Quote{}, fmt.Errorf("no quotes yet; add one with 'quotegen add'")
	}
	return q, nil
}

// executeAdd handles 'quotegen add'
func (c *CLI) executeAdd(cmd *AddCmd) error {
	q, added, err := c.collection.Add(cmd.Text, cmd.Category)
	if !added {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to store quote: %w", err)
	}
	fmt.Fprintf(c.out, "Added %s: %s %s\n", q.ID, quote.Preview(q.Text, 60), q.Tag())
	return nil
}

// executeList handles 'quotegen list'
func (c *CLI) executeList(cmd *ListCmd) error {
	all := c.collection.List()
	view := quote.Filter(all, quote.Query{Search: cmd.Search, Category: cmd.Category})

	for _, q := range view {
		idx := indexOf(all, q.ID)
		fmt.Fprintf(c.out, "[%d] %s  \"%s\" %s\n", idx, q.ID, quote.Preview(q.Text, 60), q.Tag())
	}
	fmt.Fprintf(c.out, "%d result(s)\n", len(view))
	return nil
}

func indexOf(quotes []quote.Quote, id string) int {
	for i, q := range quotes {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// executeCategories handles 'quotegen categories'
func (c *CLI) executeCategories() error {
	for _, cat := range c.collection.Categories() {
		fmt.Fprintln(c.out, cat)
	}
	return nil
}

// executeRm handles 'quotegen rm'
func (c *CLI) executeRm(cmd *RmCmd) error {
	q, err := c.collection.Lookup(cmd.ID)
	if err != nil {
		return err
	}

	removed, err := c.collection.Remove(q.ID, c.confirmer(cmd.Yes))
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
	}
	if !removed {
		fmt.Fprintln(c.out, "Delete cancelled.")
		return nil
	}
	fmt.Fprintf(c.out, "Deleted %s\n", q.ID)
	return nil
}

// executeRender handles 'quotegen render'
func (c *CLI) executeRender(cmd *RenderCmd) error {
	q, err := c.resolve(cmd.ID)
	if err != nil {
		return err
	}

	size := c.imageSize
	if cmd.Size != nil {
		size = *cmd.Size
	}

	data, err := c.renderer.Render(q, render.Options{Size: size, NoWatermark: c.premium.Unlocked()})
	if err != nil {
		if errors.Is(err, render.ErrUnavailable) {
			c.logger.Warn("render skipped", "id", q.ID, "error", err)
		}
		return fmt.Errorf("failed to render quote: %w", err)
	}

	path, err := c.writeOutput(cmd.Output, interchange.ImageFilename(q.ID), data)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved %s (%dx%d)\n", path, size, size)
	return nil
}

// writeOutput writes to an explicit path, or to name in the output directory
func (c *CLI) writeOutput(explicit *string, name string, data []byte) (string, error) {
	target := c.output
	if explicit != nil {
		abs, err := filepath.Abs(*explicit)
		if err != nil {
			return "", fmt.Errorf("invalid output path: %w", err)
		}
		target = outfs.NewWithRoot(filepath.Dir(abs))
		name = filepath.Base(abs)
	}

	path, err := target.WriteFile(name, data)
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// executeRandom handles 'quotegen random'
func (c *CLI) executeRandom(cmd *RandomCmd) error {
	q, ok := c.collection.Random(quote.Query{Search: cmd.Search, Category: cmd.Category})
	if !ok {
		fmt.Fprintln(c.out, "No matching quotes.")
		return nil
	}
	fmt.Fprintf(c.out, "%s\n%s\n", q.ClipboardText(), q.ID)
	return nil
}

// executeCopy handles 'quotegen copy'
func (c *CLI) executeCopy(cmd *CopyCmd) error {
	q, err := c.resolve(cmd.ID)
	if err != nil {
		return err
	}
	if err := clipboard.CopyQuote(c.clipboard, q); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Copied to clipboard: %s\n", quote.Preview(q.ClipboardText(), 60))
	return nil
}

// executeExport handles 'quotegen export'
func (c *CLI) executeExport(cmd *ExportCmd) error {
	data, err := c.collection.Export()
	if err != nil {
		return err
	}

	path, err := c.writeOutput(cmd.Output, interchange.ExportFilename, data)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Exported %d quote(s) to %s\n", c.collection.Len(), path)
	return nil
}

// executeImport handles 'quotegen import'
func (c *CLI) executeImport(cmd *ImportCmd) error {
	n, err := c.collection.ImportResult(<-interchange.ReadFileAsync(cmd.File))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	fmt.Fprintf(c.out, "Imported %d quote(s)\n", n)
	return nil
}

// executePremium handles 'quotegen premium'
func (c *CLI) executePremium(cmd *PremiumCmd) error {
	if !cmd.Unlock {
		if c.premium.Unlocked() {
			fmt.Fprintln(c.out, "Premium: unlocked (no watermark)")
		} else {
			fmt.Fprintln(c.out, "Premium: locked (images carry a watermark)")
		}
		return nil
	}

	unlocked, err := c.premium.Unlock(c.confirmer(cmd.Yes))
	if err != nil {
		return err
	}
	if !unlocked {
		fmt.Fprintln(c.out, "Unlock cancelled.")
		return nil
	}
	fmt.Fprintln(c.out, "Premium unlocked.")
	return nil
}

// executeConfig handles 'quotegen config'
func (c *CLI) executeConfig(cmd *ConfigCmd) error {
	switch {
	case cmd.Get != nil:
		value, err := c.config.Get(cmd.Get.Key)
		if err != nil {
			return fmt.Errorf("failed to get config value: %w", err)
		}
		fmt.Fprintln(c.out, value)
		return nil
	case cmd.Set != nil:
		if err := c.config.Update(cmd.Set.Key, cmd.Set.Value); err != nil {
			return fmt.Errorf("failed to set config value: %w", err)
		}
		fmt.Fprintf(c.out, "Set %s = %s\n", cmd.Set.Key, cmd.Set.Value)
		return nil
	case cmd.List != nil:
		values, err := c.config.List()
		if err != nil {
			return fmt.Errorf("failed to list config values: %w", err)
		}
		fmt.Fprintf(c.out, "Current configuration (%s):\n", c.config.GetConfigPath())
		for _, key := range []string{"data-path", "output-dir", "image-size", "log-level", "log-file"} {
			fmt.Fprintf(c.out, "  %s = %s\n", key, values[key])
		}
		return nil
	default:
		return fmt.Errorf("no config subcommand specified")
	}
}

// launchTUI starts the interactive TUI
func (c *CLI) launchTUI() error {
	model := tui.NewModel(tui.Deps{
		Collection: c.collection,
		Premium:    c.premium,
		Renderer:   c.renderer,
		Output:     c.output,
		Clipboard:  c.clipboard,
		ImageSize:  c.imageSize,
		Logger:     c.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
