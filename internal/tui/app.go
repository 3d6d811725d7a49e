package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yiblet/quotegen/internal/clipboard"
	"github.com/yiblet/quotegen/internal/collection"
	"github.com/yiblet/quotegen/internal/interchange"
	"github.com/yiblet/quotegen/internal/logging"
	"github.com/yiblet/quotegen/internal/outfs"
	"github.com/yiblet/quotegen/internal/premium"
	"github.com/yiblet/quotegen/internal/quote"
	"github.com/yiblet/quotegen/internal/render"
)

// flashDuration is how long status line notifications stay visible
const flashDuration = 2 * time.Second

// PaneType represents which pane is focused
type PaneType int

const (
	LeftPane PaneType = iota
	RightPane
)

// UIMode represents the current modal state of the application
type UIMode int

const (
	NormalMode UIMode = iota
	SearchMode
	HelpMode
	AddMode
	ImportMode
	DeleteMode
	PremiumMode
	MessageMode
)

// AppMsg represents messages that the app component handles
type AppMsg interface {
	isAppMsg()
}

type flashExpiredMsg struct{}

func (flashExpiredMsg) isAppMsg() {}

// imageSavedMsg carries the outcome of a render-and-write command
type imageSavedMsg struct {
	ID   string
	Path string
	Err  error
}

func (imageSavedMsg) isAppMsg() {}

// importReadMsg carries a resolved import read back into the update loop
type importReadMsg struct {
	Result interchange.ReadResult
}

func (importReadMsg) isAppMsg() {}

// Deps are the services the TUI drives
type Deps struct {
	Collection *collection.Collection
	Premium    *premium.Flag
	Renderer   *render.Renderer
	Output     *outfs.OutFS
	Clipboard  clipboard.Clipboard
	ImageSize  int
	Logger     *slog.Logger
}

// answer is a confirmation already given through a modal
type answer bool

func (a answer) Confirm(string) bool { return bool(a) }

// AppModel orchestrates all sub-models
type AppModel struct {
	Width       int
	Height      int
	LeftWidth   int
	RightWidth  int
	ActivePane  PaneType
	CurrentMode UIMode

	// Sub-models
	LeftPane  LeftPaneModel
	RightPane RightPaneModel
	Search    SearchModel
	Form      AddFormModel
	Import    PathPromptModel
	Modal     ModalModel

	// Category is the active category filter, "all" for none
	Category string
	// Items is the filtered view shown in the left pane
	Items []quote.Quote
	// PendingDelete is the id awaiting confirmation in DeleteMode
	PendingDelete string

	FlashMessage string
	FlashExpiry  time.Time

	deps Deps
	log  *slog.Logger
}

// NewModel creates the TUI over deps with the stored selection in view
func NewModel(deps Deps) *AppModel {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.ImageSize <= 0 {
		deps.ImageSize = render.DefaultSize
	}

	// Real dimensions arrive with the first WindowSizeMsg
	defaultWidth := 120
	defaultHeight := 24
	defaultLeftWidth := 45
	defaultRightWidth := defaultWidth - defaultLeftWidth - 2

	a := &AppModel{
		Width:       defaultWidth,
		Height:      defaultHeight,
		LeftWidth:   defaultLeftWidth,
		RightWidth:  defaultRightWidth,
		ActivePane:  LeftPane,
		CurrentMode: NormalMode,
		LeftPane:    NewLeftPaneModel(defaultLeftWidth, defaultHeight),
		RightPane:   NewRightPaneModel(defaultRightWidth, defaultHeight),
		Search:      NewSearchModel(),
		Form:        NewAddFormModel(),
		Import:      NewPathPromptModel(),
		Modal:       NewModalModel(),
		Category:    quote.AllCategories,
		deps:        deps,
		log:         deps.Logger.With("component", "tui"),
	}
	a.refresh()
	a.focusSelected()
	return a
}

// Init initializes the app model (required by tea.Model interface)
func (a *AppModel) Init() tea.Cmd {
	return nil
}

// Update handles app-level messages and routes to appropriate sub-models
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowResize(m)
	case tea.KeyMsg:
		return a.handleKeyPress(m)
	case flashExpiredMsg:
		// A newer flash may have replaced the one this tick was for
		if !time.Now().Before(a.FlashExpiry) {
			a.FlashMessage = ""
			a.FlashExpiry = time.Time{}
		}
		return a, nil
	case imageSavedMsg:
		return a, a.handleImageSaved(m)
	case importReadMsg:
		return a, a.handleImportRead(m)
	}

	// Cursor blink and similar input messages
	switch a.CurrentMode {
	case SearchMode:
		return a, a.Search.Forward(msg)
	case AddMode:
		return a, a.Form.Forward(msg)
	case ImportMode:
		return a, a.Import.Forward(msg)
	}
	return a, nil
}

// handleWindowResize processes window resize events
func (a *AppModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.Width = max(msg.Width, 40)
	a.Height = msg.Height

	minLeftWidth := 20
	minRightWidth := 30
	borderSpacing := 2

	if a.Width < minLeftWidth+minRightWidth+borderSpacing {
		a.LeftWidth = minLeftWidth
		a.RightWidth = max(a.Width-a.LeftWidth-borderSpacing, minRightWidth)
	} else {
		// Quote rows are long, so the list gets up to half the screen
		preferredLeftWidth := 45
		a.LeftWidth = max(min(preferredLeftWidth, a.Width/2), minLeftWidth)
		a.RightWidth = a.Width - a.LeftWidth - borderSpacing
		if a.RightWidth < minRightWidth {
			a.RightWidth = minRightWidth
			a.LeftWidth = a.Width - a.RightWidth - borderSpacing
		}
	}

	a.LeftPane.Update(ResizeLeftPaneMsg{Width: a.LeftWidth, Height: a.Height})
	a.RightPane.Update(ResizeRightPaneMsg{Width: a.RightWidth, Height: a.Height})
	a.RightPane.Update(UpdateContentMsg{})

	return a, nil
}

// handleKeyPress processes key press events using mode-first architecture
func (a *AppModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.CurrentMode {
	case SearchMode:
		return a.handleSearchModeKeys(msg)
	case AddMode:
		return a.handleAddModeKeys(msg)
	case ImportMode:
		return a.handleImportModeKeys(msg)
	case HelpMode:
		return a.handleHelpModeKeys(key)
	case DeleteMode:
		return a.handleDeleteModeKeys(key)
	case PremiumMode:
		return a.handlePremiumModeKeys(key)
	case MessageMode:
		return a.handleMessageModeKeys()
	default:
		return a.handleNormalModeKeys(key)
	}
}

// handleSearchModeKeys filters the list live as the query is typed
func (a *AppModel) handleSearchModeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.Search.Update(CancelSearchMsg{})
		a.CurrentMode = NormalMode
		a.refresh()
		return a, nil
	case "enter":
		a.Search.Update(ExecuteSearchMsg{})
		a.CurrentMode = NormalMode
		return a, nil
	}

	cmd := a.Search.Forward(msg)
	a.refresh()
	return a, cmd
}

func (a *AppModel) handleAddModeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.Form.Close()
		a.CurrentMode = NormalMode
		return a, nil
	case "tab", "shift+tab":
		return a, a.Form.NextField()
	case "enter":
		return a, a.submitAdd()
	}
	return a, a.Form.Forward(msg)
}

func (a *AppModel) handleImportModeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.Import.Input.Blur()
		a.CurrentMode = NormalMode
		return a, nil
	case "enter":
		path := a.Import.Path()
		if path == "" {
			return a, a.setFlashMessage("Enter a .json file path", flashDuration)
		}
		a.Import.Input.Blur()
		a.CurrentMode = NormalMode
		return a, tea.Batch(
			a.setFlashMessage("Importing "+path+"...", flashDuration),
			readImportCmd(path),
		)
	}
	return a, a.Import.Forward(msg)
}

// handleHelpModeKeys processes keys when in help mode
func (a *AppModel) handleHelpModeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "z", "esc", "q":
		a.CurrentMode = NormalMode
	}
	return a, nil
}

// handleDeleteModeKeys answers the delete confirmation modal
func (a *AppModel) handleDeleteModeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		id := a.PendingDelete
		a.closeModal()

		removed, err := a.deps.Collection.Remove(id, answer(true))
		a.refresh()
		a.RightPane.Update(UpdateContentMsg{})
		if err != nil {
			a.log.Error("failed to delete quote", "id", id, "error", err)
			if removed {
				return a, a.showMessage("Could not save quotes", err.Error())
			}
			return a, a.setFlashMessage(fmt.Sprintf("Error deleting quote: %v", err), flashDuration)
		}
		return a, a.setFlashMessage("Quote deleted", flashDuration)
	case "n", "N", "esc":
		a.closeModal()
		return a, a.setFlashMessage("Delete cancelled", flashDuration)
	}
	return a, nil
}

// handlePremiumModeKeys answers the premium unlock modal
func (a *AppModel) handlePremiumModeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		a.closeModal()
		unlocked, err := a.deps.Premium.Unlock(answer(true))
		if err != nil {
			a.log.Error("failed to unlock premium", "error", err)
			return a, a.showMessage("Premium", err.Error())
		}
		if unlocked {
			return a, a.setFlashMessage("Premium unlocked: images no longer carry a watermark", flashDuration)
		}
		return a, nil
	case "n", "N", "esc":
		a.closeModal()
	}
	return a, nil
}

func (a *AppModel) handleMessageModeKeys() (tea.Model, tea.Cmd) {
	a.closeModal()
	return a, nil
}

// handleNormalModeKeys processes keys when in normal mode
func (a *AppModel) handleNormalModeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "esc":
		if a.Search.Query() != "" {
			a.Search.Update(ClearSearchMsg{})
			a.refresh()
			return a, nil
		}
		return a, tea.Quit
	case "tab":
		if a.ActivePane == LeftPane {
			a.ActivePane = RightPane
		} else {
			a.ActivePane = LeftPane
		}
		return a, nil
	case "h", "left":
		a.ActivePane = LeftPane
		return a, nil
	case "l", "right":
		a.ActivePane = RightPane
		return a, nil
	case "z":
		a.CurrentMode = HelpMode
		return a, nil
	case "/":
		a.CurrentMode = SearchMode
		return a, a.Search.Update(StartSearchMsg{})
	case "f", "F":
		step := 1
		if key == "F" {
			step = -1
		}
		a.Category = quote.NextCategory(a.deps.Collection.Categories(), a.Category, step)
		a.refresh()
		return a, a.setFlashMessage("Category: "+a.Category, flashDuration)
	case "a":
		a.CurrentMode = AddMode
		return a, a.Form.Open(a.Width)
	case "i":
		a.CurrentMode = ImportMode
		return a, a.Import.Open(a.Width)
	case "enter":
		return a, a.previewCursor()
	case "d":
		return a, a.confirmDelete()
	case "r":
		return a, a.randomQuote()
	case "s":
		return a, a.saveImage()
	case "e":
		return a, a.exportQuotes()
	case "c":
		return a, a.copyToClipboard()
	case "p":
		return a, a.confirmPremium()
	}

	if a.ActivePane == LeftPane {
		return a.handleLeftPaneKeys(key)
	}
	return a.handleRightPaneKeys(key)
}

func (a *AppModel) handleLeftPaneKeys(key string) (tea.Model, tea.Cmd) {
	maxIndex := len(a.Items) - 1
	switch key {
	case "up", "k":
		a.LeftPane.Update(NavigateUpMsg{})
	case "down", "j":
		a.LeftPane.Update(NavigateDownMsg{MaxIndex: maxIndex})
	case "g":
		a.LeftPane.Update(GoToTopMsg{})
	case "G":
		a.LeftPane.Update(GoToBottomMsg{MaxIndex: maxIndex})
	}
	return a, nil
}

func (a *AppModel) handleRightPaneKeys(key string) (tea.Model, tea.Cmd) {
	maxScroll := getMaxScroll(a.RightPane, a.previewed())
	switch key {
	case "up", "k":
		a.RightPane.Update(ScrollUpMsg{})
	case "down", "j":
		a.RightPane.Update(ScrollDownMsg{MaxScroll: maxScroll})
	case "g":
		a.RightPane.Update(ScrollToTopMsg{})
	case "G":
		a.RightPane.Update(ScrollToBottomMsg{MaxScroll: maxScroll})
	}
	return a, nil
}

// query is the filter currently applied to the list
func (a *AppModel) query() quote.Query {
	return quote.Query{Search: a.Search.Query(), Category: a.Category}
}

// refresh recomputes the filtered view and keeps the cursor in range
func (a *AppModel) refresh() {
	a.Items = a.deps.Collection.Filter(a.query())
	a.LeftPane.Update(ClampCursorMsg{Count: len(a.Items)})
}

// focusSelected moves the cursor onto the previewed quote when it is listed
func (a *AppModel) focusSelected() {
	q, ok := a.deps.Collection.Selected()
	if !ok {
		return
	}
	for i, item := range a.Items {
		if item.ID == q.ID {
			a.LeftPane.Update(SelectItemMsg{Index: i})
			return
		}
	}
}

// previewed returns the selected quote, or nil when nothing is selected
func (a *AppModel) previewed() *quote.Quote {
	q, ok := a.deps.Collection.Selected()
	if !ok {
		return nil
	}
	return &q
}

// cursorQuote returns the quote under the list cursor
func (a *AppModel) cursorQuote() (quote.Quote, bool) {
	if a.LeftPane.Cursor < 0 || a.LeftPane.Cursor >= len(a.Items) {
		return quote.Quote{}, false
	}
	return a.Items[a.LeftPane.Cursor], true
}

func (a *AppModel) previewCursor() tea.Cmd {
	q, ok := a.cursorQuote()
	if !ok {
		return nil
	}
	if err := a.deps.Collection.Select(q.ID); err != nil {
		return a.setFlashMessage(err.Error(), flashDuration)
	}
	a.RightPane.Update(UpdateContentMsg{})
	return nil
}

func (a *AppModel) submitAdd() tea.Cmd {
	text, category := a.Form.Values()
	q, added, err := a.deps.Collection.Add(text, category)
	if !added {
		return a.setFlashMessage("Quote text is empty", flashDuration)
	}

	a.Form.Close()
	a.CurrentMode = NormalMode
	a.refresh()
	a.focusSelected()
	a.RightPane.Update(UpdateContentMsg{})

	if err != nil {
		a.log.Error("failed to save quotes", "error", err)
		return a.showMessage("Could not save quotes", err.Error())
	}
	if !a.query().Matches(q) {
		return a.setFlashMessage("Quote added (hidden by the current filter)", flashDuration)
	}
	return a.setFlashMessage("Quote added", flashDuration)
}

func (a *AppModel) confirmDelete() tea.Cmd {
	q, ok := a.cursorQuote()
	if !ok {
		return a.setFlashMessage("No quote selected", flashDuration)
	}
	a.PendingDelete = q.ID
	a.Modal.Update(ShowDeleteConfirmation(q))
	a.CurrentMode = DeleteMode
	return nil
}

func (a *AppModel) confirmPremium() tea.Cmd {
	if a.deps.Premium.Unlocked() {
		return a.setFlashMessage("Premium is already unlocked", flashDuration)
	}
	a.Modal.Update(ShowPremiumConfirmation())
	a.CurrentMode = PremiumMode
	return nil
}

func (a *AppModel) randomQuote() tea.Cmd {
	if _, ok := a.deps.Collection.Random(a.query()); !ok {
		return a.setFlashMessage("No quotes match the current filter", flashDuration)
	}
	a.focusSelected()
	a.RightPane.Update(UpdateContentMsg{})
	return nil
}

// saveImage renders the previewed quote off the update loop
func (a *AppModel) saveImage() tea.Cmd {
	q := a.previewed()
	if q == nil {
		return a.setFlashMessage("No quote selected", flashDuration)
	}

	opts := render.Options{Size: a.deps.ImageSize, NoWatermark: a.deps.Premium.Unlocked()}
	return tea.Batch(
		a.setFlashMessage("Rendering image...", flashDuration),
		renderImageCmd(a.deps.Renderer, a.deps.Output, *q, opts),
	)
}

// renderImageCmd renders q and writes quote-<id>.png. A render failure skips the write.
func renderImageCmd(renderer *render.Renderer, output *outfs.OutFS, q quote.Quote, opts render.Options) tea.Cmd {
	return func() tea.Msg {
		data, err := renderer.Render(q, opts)
		if err != nil {
			return imageSavedMsg{ID: q.ID, Err: err}
		}
		path, err := output.WriteFile(interchange.ImageFilename(q.ID), data)
		return imageSavedMsg{ID: q.ID, Path: path, Err: err}
	}
}

func (a *AppModel) handleImageSaved(msg imageSavedMsg) tea.Cmd {
	switch {
	case errors.Is(msg.Err, render.ErrUnavailable):
		a.log.Warn("image rendering unavailable", "id", msg.ID, "error", msg.Err)
		return a.showMessage("Image unavailable", "Images cannot be rendered on this system.")
	case msg.Err != nil:
		a.log.Error("failed to save image", "id", msg.ID, "error", msg.Err)
		return a.showMessage("Save failed", msg.Err.Error())
	}
	a.log.Info("image saved", "id", msg.ID, "path", msg.Path)
	return a.setFlashMessage("Saved "+msg.Path, flashDuration)
}

func (a *AppModel) exportQuotes() tea.Cmd {
	data, err := a.deps.Collection.Export()
	if err != nil {
		return a.showMessage("Export failed", err.Error())
	}
	path, err := a.deps.Output.WriteFile(interchange.ExportFilename, data)
	if err != nil {
		a.log.Error("failed to export quotes", "error", err)
		return a.showMessage("Export failed", err.Error())
	}
	return a.setFlashMessage(fmt.Sprintf("Exported %d quote(s) to %s", a.deps.Collection.Len(), path), flashDuration)
}

// readImportCmd starts the read immediately and waits for it inside the command
func readImportCmd(path string) tea.Cmd {
	future := interchange.ReadFileAsync(path)
	return func() tea.Msg {
		return importReadMsg{Result: <-future}
	}
}

func (a *AppModel) handleImportRead(msg importReadMsg) tea.Cmd {
	n, err := a.deps.Collection.ImportResult(msg.Result)
	a.refresh()
	a.focusSelected()

	var readErr *interchange.ReadError
	switch {
	case errors.Is(err, interchange.ErrFormat):
		return a.showMessage("Import failed", "File format not supported.")
	case errors.As(err, &readErr):
		a.log.Warn("import read failed", "file", msg.Result.Name, "error", err)
		return a.showMessage("Import failed", readErr.Error())
	case err != nil:
		a.log.Error("failed to save imported quotes", "error", err)
		return a.showMessage("Could not save quotes", err.Error())
	case n == 0:
		return a.setFlashMessage("No quotes found in file", flashDuration)
	}
	return a.setFlashMessage(fmt.Sprintf("Imported %d quote(s)", n), flashDuration)
}

// copyToClipboard copies the previewed quote as `"text" — #category`
func (a *AppModel) copyToClipboard() tea.Cmd {
	q := a.previewed()
	if q == nil {
		return a.setFlashMessage("No quote selected", flashDuration)
	}
	if a.deps.Clipboard == nil {
		return a.setFlashMessage(clipboard.ErrUnsupported.Error(), flashDuration)
	}

	if err := clipboard.CopyQuote(a.deps.Clipboard, *q); err != nil {
		a.log.Warn("failed to copy quote", "error", err)
		if errors.Is(err, clipboard.ErrUnsupported) {
			return a.setFlashMessage(err.Error(), flashDuration)
		}
		return a.setFlashMessage(fmt.Sprintf("Error copying quote: %v", err), flashDuration)
	}
	return a.setFlashMessage("Copied quote to clipboard", flashDuration)
}

func (a *AppModel) showMessage(title, content string) tea.Cmd {
	a.Modal.Update(ShowMessage(title, content))
	a.CurrentMode = MessageMode
	return nil
}

func (a *AppModel) closeModal() {
	a.Modal.Update(HideModalMsg{})
	a.PendingDelete = ""
	a.CurrentMode = NormalMode
}

// setFlashMessage sets a flash message that will disappear after the specified duration
func (a *AppModel) setFlashMessage(message string, duration time.Duration) tea.Cmd {
	a.FlashMessage = message
	a.FlashExpiry = time.Now().Add(duration)
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

// View method for tea.Model compatibility
func (a *AppModel) View() string {
	view, err := AppView(*a)
	if err != nil {
		return "Error: " + err.Error()
	}
	return view
}

// AppView renders the complete application using pure functions
func AppView(model AppModel) (string, error) {
	if model.Width == 0 {
		return "Initializing...", nil
	}

	if model.CurrentMode == HelpMode {
		return renderHelpView(model) + "\n\n" + renderStatusLine(model), nil
	}

	view, err := renderNormalView(model)
	if err != nil {
		return "", err
	}

	switch {
	case model.Modal.Active:
		return ModalView(model.Modal, view, model.Width, model.Height), nil
	case model.CurrentMode == AddMode:
		return overlayCenter(view, AddFormView(model.Form, model.Width), model.Width, model.Height), nil
	case model.CurrentMode == ImportMode:
		return overlayCenter(view, PathPromptView(model.Import, model.Width), model.Width, model.Height), nil
	}
	return view, nil
}

// renderNormalView renders the list and preview side by side
func renderNormalView(model AppModel) (string, error) {
	selectedID := ""
	sel, ok := model.deps.Collection.Selected()
	var previewed *quote.Quote
	if ok {
		selectedID = sel.ID
		previewed = &sel
	}

	left, err := LeftPaneView(model.LeftPane, model.Items, selectedID, model.ActivePane == LeftPane)
	if err != nil {
		return "", err
	}

	info := PreviewInfo{
		Results:  len(model.Items),
		Category: model.Category,
		Search:   model.Search.Query(),
		Premium:  model.deps.Premium.Unlocked(),
	}
	right, err := RightPaneView(model.RightPane, previewed, info, model.ActivePane == RightPane)
	if err != nil {
		return "", err
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n\n" + renderStatusLine(model), nil
}

// renderStatusLine renders the bottom status line (pure function)
func renderStatusLine(model AppModel) string {
	style := lipgloss.NewStyle().Width(model.Width)

	if model.FlashMessage != "" && time.Now().Before(model.FlashExpiry) {
		return style.Foreground(lipgloss.Color("10")).Render(model.FlashMessage)
	}

	var status string
	switch model.CurrentMode {
	case SearchMode:
		status = model.Search.Input.View() + "  (Enter to keep, Esc to cancel)"
	case HelpMode:
		status = "Help Mode - Press z to return to normal view, q to quit"
	case AddMode:
		status = "Adding a quote"
	case ImportMode:
		status = "Importing quotes"
	default:
		status = "Press z for help, q to quit"
		if q := model.Search.Query(); q != "" {
			status = fmt.Sprintf("Search: %q (Esc to clear)  |  %s", q, status)
		}
	}
	return style.Render(status)
}

const helpContent = `quotegen - Quote collection and image maker

NAVIGATION:
  j, ↓        Move down (list: next quote, preview: scroll down)
  k, ↑        Move up (list: previous quote, preview: scroll up)
  g, G        Go to top / bottom
  Tab         Toggle between list and preview
  h, l        Focus list / preview
  Enter       Preview the quote under the cursor

FILTERING:
  /           Search quote text (live, case-insensitive)
  f, F        Next / previous category
  Esc         Clear the search

QUOTES:
  a           Add a quote
  d           Delete the quote under the cursor
  r           Preview a random quote from the current filter
  c           Copy the previewed quote to the clipboard

FILES:
  s           Save the previewed quote as a PNG image
  e           Export all quotes to quotes_export.json
  i           Import quotes from a .json file

OTHER:
  p           Unlock premium (removes the image watermark)
  z           Toggle this help screen
  q           Quit
  Ctrl+c      Force quit

Press z again to return to normal view.`

// renderHelpView renders the help content as a single pane (pure function)
func renderHelpView(model AppModel) string {
	var b strings.Builder
	b.WriteString(helpContent)
	b.WriteString("\n\nImages are written to " + model.deps.Output.Root())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1).
		Width(model.Width - 4).
		Height(model.Height - 4).
		Render(b.String())
}
