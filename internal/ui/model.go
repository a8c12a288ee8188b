package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"multipick/internal/config"
	"multipick/internal/eventbus"
	"multipick/internal/pointer"
	"multipick/internal/ui/input/types"
	"multipick/internal/ui/logic"
	"multipick/internal/ui/viewmodels"
	"multipick/internal/ui/views"
	"multipick/internal/ui/widget"
)

const statusTimeout = 3 * time.Second

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// ModelOption configures a Model
type ModelOption func(*Model)

// WithRegistry routes pointer-down events through reg instead of
// pointer.Default
func WithRegistry(reg *pointer.Registry) ModelOption {
	return func(m *Model) {
		if reg != nil {
			m.registry = reg
		}
	}
}

// Model is the Bubble Tea host for a SelectionInput
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	match    logic.Matcher
	registry *pointer.Registry
	widget   *widget.SelectionInput

	// UI-specific state
	width         int
	height        int
	textInput     textinput.Model
	keys          keyMap
	help          help.Model
	renderer      *views.Renderer
	layout        views.Layout      // hit regions of the last rendered frame
	chips         []viewmodels.Chip // chips of the last rendered frame
	statusMessage string
	statusIsError bool
	inPagerMode   bool

	// label under the pointer when the left button went down
	pressedSuggestion string
	pressedChip       string

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a host for candidates using the matcher named in cfg
func NewModel(bus eventbus.EventBus, cfg *config.Config, candidates []string, opts ...ModelOption) (*Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	match, err := logic.MatcherByName(cfg.Match)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = widget.Placeholder
	ti.Focus()

	m := &Model{
		bus:       bus,
		config:    cfg,
		match:     match,
		registry:  pointer.Default,
		textInput: ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
		renderer:  views.NewRenderer(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.widget = m.newWidget(candidates)
	m.widget.Mount()
	m.widget.Dispatch(types.Focus{})

	return m, nil
}

func (m *Model) newWidget(candidates []string) *widget.SelectionInput {
	opts := []widget.Option{
		widget.WithMatcher(m.match),
		widget.WithRegistry(m.registry),
	}
	if m.bus != nil {
		opts = append(opts, widget.WithEventBus(m.bus))
	}
	return widget.New(candidates, opts...)
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Widget returns the hosted widget
func (m *Model) Widget() *widget.SelectionInput {
	return m.widget
}

// Selection returns the picked labels in chip order
func (m *Model) Selection() []string {
	return m.widget.Selection()
}

// Close unmounts the widget
func (m *Model) Close() {
	m.widget.Unmount()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textInput.Width = msg.Width - len(m.textInput.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.FocusMsg:
		m.widget.Dispatch(types.Focus{})
		return m, nil

	case tea.BlurMsg:
		m.widget.Dispatch(types.Blur{})
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inPagerMode {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		log.Printf("Quit requested with %d selected", len(m.widget.Selection()))
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, m.fetchHelpPager(NewHelpRenderer().RenderHelpContent())

	case key.Matches(msg, m.keys.Copy):
		return m, copySelection(m.widget.Selection())

	case key.Matches(msg, m.keys.Focus):
		if m.textInput.Focused() {
			m.blurInput()
			return m, nil
		}
		return m, m.focusInput()
	}

	if m.textInput.Focused() {
		if k, ok := widgetKey(msg, m.keys); ok {
			res := m.widget.Dispatch(types.KeyPressed{Key: k})
			if res.Handled {
				m.syncInput()
				return m, nil
			}
		}
	}

	// Everything else belongs to the text input
	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if after := m.textInput.Value(); after != before {
		m.widget.Dispatch(types.TextChanged{Value: after})
		m.syncInput()
	}
	return m, cmd
}

// widgetKey maps a host key to the widget's key vocabulary
func widgetKey(msg tea.KeyMsg, keys keyMap) (types.Key, bool) {
	switch {
	case key.Matches(msg, keys.Down):
		return types.KeyArrowDown, true
	case key.Matches(msg, keys.Up):
		return types.KeyArrowUp, true
	case key.Matches(msg, keys.Enter):
		return types.KeyEnter, true
	}
	return "", false
}

// handleMouse emulates browser press and click semantics on top of the
// hit regions of the last rendered frame
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.inPagerMode {
		return nil
	}
	p := pointer.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.registry.Dispatch(pointer.Event{Target: p})
		m.pressedSuggestion, m.pressedChip = "", ""

		if label, ok := m.layout.SuggestionAt(p); ok {
			m.pressedSuggestion = label
			res := m.widget.Dispatch(types.SuggestionMouseDown{Label: label})
			m.syncInput()
			if res.PreventDefault {
				return nil
			}
			m.blurInput()
			return nil
		}
		if label, ok := m.layout.ChipButtonAt(p); ok {
			m.pressedChip = label
		}
		if m.layout.InInput(p) {
			return m.focusInput()
		}
		m.blurInput()
		return nil

	case tea.MouseActionRelease:
		pressedSuggestion, pressedChip := m.pressedSuggestion, m.pressedChip
		m.pressedSuggestion, m.pressedChip = "", ""

		if label, ok := m.layout.SuggestionAt(p); ok && label == pressedSuggestion {
			m.widget.Dispatch(types.SuggestionClick{Label: label})
			m.syncInput()
			return nil
		}
		if label, ok := m.layout.ChipButtonAt(p); ok && label == pressedChip {
			for _, chip := range m.chips {
				if chip.Label == label {
					chip.Remove()
					break
				}
			}
			return nil
		}
	}
	return nil
}

func (m *Model) focusInput() tea.Cmd {
	if m.textInput.Focused() {
		return nil
	}
	cmd := m.textInput.Focus()
	m.widget.Dispatch(types.Focus{})
	return cmd
}

func (m *Model) blurInput() {
	if !m.textInput.Focused() {
		return
	}
	m.textInput.Blur()
	m.widget.Dispatch(types.Blur{})
}

// syncInput makes the text input show the widget's query, which is
// cleared by picks
func (m *Model) syncInput() {
	if q := m.widget.Query(); m.textInput.Value() != q {
		m.textInput.SetValue(q)
	}
}

// handleNonKeyboardMsg handles messages that are not keyboard input
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CandidatesReloadedMsg:
		m.replaceWidget(msg.Candidates)
		if m.bus != nil {
			m.bus.Publish(eventbus.CandidatesReloadedEvent{Source: msg.Source, Count: len(msg.Candidates)})
		}
		return m, m.setStatus(fmt.Sprintf("Reloaded %d candidates", len(msg.Candidates)), false)

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			if e.Err != nil {
				return m, m.setStatus(fmt.Sprintf("%s: %v", e.Message, e.Err), true)
			}
			return m, m.setStatus(e.Message, true)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Clipboard write failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		}
		return m, m.setStatus(fmt.Sprintf("Copied %d items", msg.count), false)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			return m, m.setStatus("Help unavailable", true)
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
		m.statusIsError = false
		return m, nil

	default:
		// Cursor blink and other text input messages
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}

// replaceWidget swaps in a widget over new candidates. The old widget
// releases its pointer listener first.
func (m *Model) replaceWidget(candidates []string) {
	m.widget.Unmount()
	m.widget = m.newWidget(candidates)
	m.widget.SetInputBounds(m.layout.Input)
	m.widget.Mount()
	if m.textInput.Focused() {
		m.widget.Dispatch(types.Focus{})
	}
	m.textInput.SetValue("")
	m.pressedSuggestion, m.pressedChip = "", ""
	log.Printf("Widget replaced with %d candidates", len(candidates))
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	var helpView string
	if m.config.UISettings.ShowHelp {
		helpView = m.help.View(m.keys)
	}

	vs := m.widget.View()
	m.chips = vs.Chips
	m.layout = m.renderer.Render(views.Frame{
		Width:         m.width,
		Height:        m.height,
		Widget:        vs,
		Input:         m.textInput.View(),
		Focused:       m.textInput.Focused(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Help:          helpView,
	})
	m.widget.SetInputBounds(m.layout.Input)
	return m.layout.Content
}

// copySelection returns a command that writes the selection to the
// system clipboard, one label per line
func copySelection(selection []string) tea.Cmd {
	return func() tea.Msg {
		err := writeClipboard(strings.Join(selection, "\n"))
		return clipboardMsg{count: len(selection), err: err}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return func() tea.Msg { return helpPagerMsg{err: fmt.Errorf("program not set")} }
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := NewHelpOps(m.program).ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
