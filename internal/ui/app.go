package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"napt/internal/creds"
	"napt/internal/history"
	"napt/internal/submit"
)

type viewState int

const (
	viewCompose  viewState = iota
	viewSettings           // edit email+token
	viewHistory            // browse recent sends
)

const (
	focusThought = iota
	focusSource
)

const (
	focusEmail = iota
	focusToken
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Submitter *submit.Submitter
	Creds     creds.Store
	History   *history.Store // nil disables the history view
	Log       *slog.Logger
}

// Model is the root Bubble Tea model: three views, four text inputs, and
// the single submission state value.
type Model struct {
	opts Options

	view viewState

	// Compose view
	thoughtInput textinput.Model
	sourceInput  textinput.Model
	composeFocus int
	state        submit.RequestState

	// Settings view
	emailInput    textinput.Model
	tokenInput    textinput.Model
	settingsFocus int
	settingsNote  string

	// History view
	historyViewport viewport.Model

	width, height int
}

// normalized fills the optional fields so later code can rely on them.
func (o Options) normalized() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Log == nil {
		o.Log = slog.New(slog.DiscardHandler)
	}
	return o
}

// NewModel builds the root model in the compose view with an Idle state.
func NewModel(opts Options) Model {
	opts = opts.normalized()

	thought := textinput.New()
	thought.Placeholder = "What's on your mind?"
	thought.Focus()

	source := textinput.New()
	source.Placeholder = "https://… (optional source)"

	email := textinput.New()
	email.Placeholder = "you@example.com"

	token := textinput.New()
	token.Placeholder = "API token"
	token.EchoMode = textinput.EchoPassword

	return Model{
		opts:            opts,
		view:            viewCompose,
		thoughtInput:    thought,
		sourceInput:     source,
		emailInput:      email,
		tokenInput:      token,
		state:           submit.Idle(),
		historyViewport: viewport.New(0, 0),
	}
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(opts Options) error {
	opts = opts.normalized()
	model := NewModel(opts)
	program := tea.NewProgram(&model, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context.Err() != nil {
		// Cancelled from outside (SIGINT/SIGTERM) is a clean shutdown.
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := msg.Width - 6
		if inputWidth < 20 {
			inputWidth = 20
		}
		m.thoughtInput.Width = inputWidth
		m.sourceInput.Width = inputWidth
		m.emailInput.Width = inputWidth
		m.tokenInput.Width = inputWidth
		m.historyViewport.Width = msg.Width
		m.historyViewport.Height = msg.Height - 4 // room for header + footer
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case submitDoneMsg:
		m.state = msg.state
		if m.state.Phase() == submit.PhaseSuccess {
			// Inputs clear only on success so a failed send can be retried
			// without retyping.
			m.thoughtInput.Reset()
			m.sourceInput.Reset()
			m.setComposeFocus(focusThought)
		}
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.settingsNote = "Save failed: " + msg.err.Error()
			return m, clearNoteAfter()
		}
		m.settingsNote = "Credentials saved"
		return m, clearNoteAfter()

	case settingsClearedMsg:
		if msg.err != nil {
			m.settingsNote = "Clear failed: " + msg.err.Error()
			return m, clearNoteAfter()
		}
		m.emailInput.Reset()
		m.tokenInput.Reset()
		m.settingsNote = "Credentials cleared"
		return m, clearNoteAfter()

	case historyLoadedMsg:
		if msg.err != nil {
			m.opts.Log.Warn("history load failed", "error", msg.err)
			m.historyViewport.SetContent("Could not load history: " + msg.err.Error())
		} else {
			m.historyViewport.SetContent(renderHistory(msg.entries, m.width))
		}
		m.historyViewport.GotoTop()
		m.view = viewHistory
		return m, nil

	case clearNoteMsg:
		m.settingsNote = ""
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case viewCompose:
		return m.handleComposeKey(msg)
	case viewSettings:
		return m.handleSettingsKey(msg)
	case viewHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m *Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.composeFocus == focusThought {
			m.setComposeFocus(focusSource)
		} else {
			m.setComposeFocus(focusThought)
		}
		return m, nil
	case "enter":
		// Send is disabled while a submission is in flight; this is the
		// single-flight guarantee.
		if m.state.Phase() == submit.PhaseLoading {
			return m, nil
		}
		thought := m.thoughtInput.Value()
		source := m.sourceInput.Value()
		m.state = submit.Loading()
		return m, m.submitCmd(thought, source)
	case "ctrl+e":
		m.openSettings()
		return m, nil
	case "ctrl+r":
		if m.opts.History == nil {
			return m, nil
		}
		return m, m.loadHistoryCmd()
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = viewCompose
		m.setComposeFocus(focusThought)
		return m, nil
	case "tab", "shift+tab":
		if m.settingsFocus == focusEmail {
			m.setSettingsFocus(focusToken)
		} else {
			m.setSettingsFocus(focusEmail)
		}
		return m, nil
	case "enter":
		return m, m.saveCredsCmd(m.emailInput.Value(), m.tokenInput.Value())
	case "ctrl+x":
		return m, m.clearCredsCmd()
	}
	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = viewCompose
		return m, nil
	}
	var cmd tea.Cmd
	m.historyViewport, cmd = m.historyViewport.Update(msg)
	return m, cmd
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.view {
	case viewCompose:
		if m.composeFocus == focusThought {
			m.thoughtInput, cmd = m.thoughtInput.Update(msg)
		} else {
			m.sourceInput, cmd = m.sourceInput.Update(msg)
		}
	case viewSettings:
		if m.settingsFocus == focusEmail {
			m.emailInput, cmd = m.emailInput.Update(msg)
		} else {
			m.tokenInput, cmd = m.tokenInput.Update(msg)
		}
	case viewHistory:
		m.historyViewport, cmd = m.historyViewport.Update(msg)
	}
	return cmd
}

func (m *Model) setComposeFocus(focus int) {
	m.composeFocus = focus
	m.thoughtInput.Blur()
	m.sourceInput.Blur()
	if focus == focusThought {
		m.thoughtInput.Focus()
	} else {
		m.sourceInput.Focus()
	}
}

func (m *Model) setSettingsFocus(focus int) {
	m.settingsFocus = focus
	m.emailInput.Blur()
	m.tokenInput.Blur()
	if focus == focusEmail {
		m.emailInput.Focus()
	} else {
		m.tokenInput.Focus()
	}
}

func (m *Model) openSettings() {
	m.view = viewSettings
	m.settingsNote = ""
	// Prefill the email so a token rotation doesn't force retyping it. The
	// token field always starts blank.
	if pair, err := m.opts.Creds.Get(); err == nil {
		m.emailInput.SetValue(pair.Email)
	}
	m.tokenInput.Reset()
	m.setSettingsFocus(focusEmail)
}
