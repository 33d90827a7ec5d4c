package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"denpicker/internal/catalog"
	"denpicker/internal/config"
	"denpicker/internal/domain"
	"denpicker/internal/eventbus"
	"denpicker/internal/selection"
	"denpicker/internal/ui/input"
	inputtypes "denpicker/internal/ui/input/types"
	"denpicker/internal/ui/logic"
	"denpicker/internal/ui/views"
)

const (
	appName = "PokePicker"
	title   = "Pick your Pokemon"

	// optionRows is the height of the picker dropdown
	optionRows = 6

	statusTimeout = 3 * time.Second
)

// Deps are the collaborators the model is built from
type Deps struct {
	Config  *config.Config
	Store   *selection.Store
	Source  catalog.Source
	Bus     eventbus.EventBus
	Logger  *zap.Logger
	Context context.Context
}

// Model represents the UI state
type Model struct {
	cfg    *config.Config
	store  *selection.Store
	source catalog.Source
	bus    eventbus.EventBus
	logger *zap.Logger
	ctx    context.Context

	// Catalog state, resolved once by the fetch command
	catalogStatus domain.CatalogStatus
	catalogErr    error
	entries       []domain.CatalogEntry
	index         catalog.Index

	options    []domain.CatalogEntry // entries matching the query
	optionNav  *logic.Navigator
	slotCursor int
	detailID   string

	statusMessage string
	inPagerMode   bool

	width   int
	height  int
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	inputHandler *input.Handler
	renderer     *views.Renderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(deps Deps) *Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		cfg:           cfg,
		store:         deps.Store,
		source:        deps.Source,
		bus:           deps.Bus,
		logger:        logger.Named("ui"),
		ctx:           ctx,
		catalogStatus: domain.CatalogLoading,
		optionNav:     logic.NewNavigator(optionRows),
		spinner:       sp,
		help:          help.New(),
		keys:          newKeyMap(),
		inputHandler:  input.New(),
		renderer:      views.NewRenderer(),
		helpOps:       NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init loads the saved selection and starts the catalog fetch
func (m *Model) Init() tea.Cmd {
	m.store.Initialize()
	m.clampSlotCursor()
	return tea.Batch(m.fetchCatalog(), m.spinner.Tick, textinput.Blink)
}

// fetchCatalog runs the single catalog query
func (m *Model) fetchCatalog() tea.Cmd {
	source := m.source
	ctx := m.ctx
	return func() tea.Msg {
		if source == nil {
			return catalogLoadedMsg{err: fmt.Errorf("no catalog source configured")}
		}
		entries, err := source.Fetch(ctx)
		return catalogLoadedMsg{entries: entries, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case catalogLoadedMsg:
		m.handleCatalogLoaded(msg)
		return m, nil

	case spinner.TickMsg:
		if m.catalogStatus != domain.CatalogLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("failed to copy to clipboard", zap.String("content", msg.content), zap.Error(msg.err))
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err))
		}
		return m, m.setStatus("Copied " + msg.content)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) handleCatalogLoaded(msg catalogLoadedMsg) {
	if msg.err != nil {
		m.catalogStatus = domain.CatalogFailed
		m.catalogErr = msg.err
		m.logger.Error("catalog fetch failed", zap.Error(msg.err))
		m.publish(domain.CatalogFailedEvent{Err: msg.err})
		return
	}

	m.catalogStatus = domain.CatalogReady
	m.entries = msg.entries
	m.index = catalog.BuildIndex(msg.entries)
	m.refilter()
	m.logger.Info("catalog loaded", zap.Int("entries", len(msg.entries)))
	m.publish(domain.CatalogLoadedEvent{Count: len(msg.entries)})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.MoveOptionAction:
		if a.Delta < 0 {
			m.optionNav.MoveUp()
		} else {
			m.optionNav.MoveDown()
		}

	case inputtypes.UpdateQueryAction:
		m.refilter()

	case inputtypes.AppendAction:
		if m.store.Append(a.ID) {
			m.logger.Debug("added to den", zap.String("id", a.ID))
			m.inputHandler.ResetQuery()
			m.refilter()
		}

	case inputtypes.MoveSlotAction:
		m.slotCursor += a.Delta
		m.clampSlotCursor()

	case inputtypes.RemoveAction:
		if m.store.Remove(a.ID) {
			m.logger.Debug("removed from den", zap.String("id", a.ID))
			m.clampSlotCursor()
		}

	case inputtypes.ClearAction:
		if m.store.Full() {
			m.store.Clear()
			m.slotCursor = 0
			m.logger.Debug("den cleared")
		}

	case inputtypes.OpenDetailAction:
		m.detailID = a.ID

	case inputtypes.CloseDetailAction:
		m.detailID = ""

	case inputtypes.CopyImageAction:
		if a.ID == "" {
			return nil
		}
		return copyToClipboard(catalog.ImageURL(m.cfg.ImageTemplate(), a.ID))

	case inputtypes.ShowHelpAction:
		return m.showHelp()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// showHelp opens the key reference in the pager, or toggles the inline
// full help when there is no program to hand the terminal to
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}
	content := RenderHelpContent(m.keys)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// refilter recomputes the options for the current query, keeping the
// highlight on the same entry when it still matches
func (m *Model) refilter() {
	highlighted, hadHighlight := m.HighlightedOption()
	m.options = logic.FilterOptions(m.entries, m.inputHandler.Query())
	m.optionNav.SetCount(len(m.options))
	m.optionNav.Reset()
	if !hadHighlight {
		return
	}
	for i, e := range m.options {
		if strconv.Itoa(e.ID) == highlighted {
			m.optionNav.SetSelectedIndex(i)
			return
		}
	}
}

func (m *Model) clampSlotCursor() {
	last := m.store.Len() - 1
	if m.slotCursor > last {
		m.slotCursor = last
	}
	if m.slotCursor < 0 {
		m.slotCursor = 0
	}
}

// HighlightedOption returns the id of the option under the picker cursor
func (m *Model) HighlightedOption() (string, bool) {
	i := m.optionNav.SelectedIndex()
	if i < 0 || i >= len(m.options) {
		return "", false
	}
	return strconv.Itoa(m.options[i].ID), true
}

// SlotCursor returns the slot index under the cursor
func (m *Model) SlotCursor() int {
	return m.slotCursor
}

// SlotID returns the identifier in slot i
func (m *Model) SlotID(i int) (string, bool) {
	return m.store.At(i)
}

// DenFull reports whether every slot is taken
func (m *Model) DenFull() bool {
	return m.store.Full()
}

// DetailID returns the identifier shown in the detail overlay
func (m *Model) DetailID() string {
	return m.detailID
}

// Query returns the search text
func (m *Model) Query() string {
	return m.inputHandler.Query()
}

// Items returns the current selection
func (m *Model) Items() []string {
	return m.store.Items()
}

// label formats the display name for id; stale ids give ""
func (m *Model) label(id string) string {
	return logic.Capitalize(m.index.Name(id))
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	mode := m.inputHandler.CurrentMode()
	full := m.store.Full()

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		AppName:       appName,
		Title:         title,
		Focus:         mode.String(),
		DenFull:       full,
		DenCount:      m.store.Len(),
		DenCapacity:   selection.MaxLength,
		InputView:     m.inputHandler.TextInput().View(),
		Query:         m.inputHandler.Query(),
		CatalogStatus: m.catalogStatus,
		SpinnerView:   m.spinner.View(),
		StatusMessage: m.statusMessage,
		ShowAvatars:   m.cfg.UISettings.ShowAvatars,
	}
	if m.catalogErr != nil {
		state.CatalogError = m.catalogErr.Error()
	}

	start, end := m.optionNav.VisibleRange()
	selected := m.optionNav.SelectedIndex()
	for i := start; i < end && i < len(m.options); i++ {
		id := strconv.Itoa(m.options[i].ID)
		state.Options = append(state.Options, views.OptionRow{
			ID:          id,
			Label:       logic.Capitalize(m.options[i].Name),
			Chosen:      m.store.Contains(id),
			Highlighted: i == selected,
		})
	}
	state.OptionsAbove = start > 0
	state.OptionsBelow = end < len(m.options)

	for _, slot := range m.store.Slots() {
		state.Slots = append(state.Slots, views.SlotRow{
			Index:    slot.Index,
			ID:       slot.ID,
			Label:    m.label(slot.ID),
			Occupied: slot.Occupied,
			Cursor:   mode != inputtypes.ModePicker && slot.Index == m.slotCursor,
		})
	}

	if mode == inputtypes.ModeDetail && m.detailID != "" {
		state.Detail = &views.DetailView{
			ID:       m.detailID,
			Label:    m.label(m.detailID),
			ImageURL: catalog.ImageURL(m.cfg.ImageTemplate(), m.detailID),
		}
	}

	state.HelpView = m.help.View(m.keys.forMode(mode, full))
	return state
}
