// internal/shell/shell.go
//
// The interactive shell for rosterbook. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// Input flows one line at a time through a textinput. At the prompt a line
// is a command; inside a form it is a field number, a field value, or
// "commit". Commands run synchronously against the store and their output
// lands in the transcript.

package shell

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcwhitley/rosterbook/internal/config"
	"github.com/marcwhitley/rosterbook/internal/logbook"
	"github.com/marcwhitley/rosterbook/internal/roster"
)

// sessionMode represents which "screen" we're on
type sessionMode int

const (
	modePrompt         sessionMode = iota // command prompt with transcript
	modeEmployeeForm                      // numbered-field employee form
	modeDepartmentForm                    // numbered-field department form
)

const (
	transcriptLimit   = 200
	promptPlaceholder = `type a command, or "help"`
)

// Model is the main application model. In bubbletea, this holds ALL the
// shell's state.
type Model struct {
	store   *roster.Store
	journal *logbook.Logbook
	cfg     *config.Config

	mode       sessionMode
	form       *form
	transcript []string

	// UI components
	input     textinput.Model
	accent    string
	statusMsg string

	// A corruption error ends the session; main reads it back after the
	// program exits.
	fatalErr error

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// New builds the shell over an empty-or-seeded store.
func New(store *roster.Store, journal *logbook.Logbook, cfg *config.Config) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = promptPlaceholder
	input.CharLimit = 120
	input.Focus()

	accent := "#5B8DEF"
	if cfg != nil {
		accent = cfg.Accent()
	}
	m := &Model{
		store:     store,
		journal:   journal,
		cfg:       cfg,
		mode:      modePrompt,
		input:     input,
		accent:    accent,
		statusMsg: "Ready.",
	}
	m.logInfo("session opened")
	return m
}

// Err returns the fatal error that ended the session, if any.
func (m *Model) Err() error { return m.fatalErr }

// Init is called once when the program starts.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.mode != modePrompt {
				m.abandonForm()
				return m, nil
			}
		case "enter":
			return m.submitLine()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitLine consumes the current input line in whatever mode we're in.
func (m *Model) submitLine() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	switch m.mode {
	case modePrompt:
		return m.runCommand(line)
	case modeEmployeeForm, modeDepartmentForm:
		return m.handleFormLine(line)
	}
	return m, nil
}

// say appends output lines to the transcript, splitting any embedded
// newlines so the scrollback trims cleanly.
func (m *Model) say(lines ...string) {
	for _, line := range lines {
		m.transcript = append(m.transcript, strings.Split(line, "\n")...)
	}
	if len(m.transcript) > transcriptLimit {
		m.transcript = m.transcript[len(m.transcript)-transcriptLimit:]
	}
}

// reportError routes an operation failure. Recoverable errors land in the
// transcript and status line; corruption ends the session with a non-zero
// exit, because the in-memory books can no longer be trusted.
func (m *Model) reportError(err error) tea.Cmd {
	if roster.IsCorruption(err) {
		m.fatalErr = err
		m.statusMsg = "Internal books no longer balance; shutting down."
		m.say("FATAL: " + err.Error())
		m.logError("%v", err)
		slog.Error("corruption detected", "err", err)
		return tea.Quit
	}
	m.statusMsg = err.Error()
	m.say(err.Error())
	m.logWarn("%v", err)
	return nil
}

func (m *Model) logInfo(format string, args ...any) {
	if m.journal == nil {
		return
	}
	m.journal.Info(format, args...)
}

func (m *Model) logWarn(format string, args ...any) {
	if m.journal == nil {
		return
	}
	m.journal.Warn(format, args...)
}

func (m *Model) logError(format string, args ...any) {
	if m.journal == nil {
		return
	}
	m.journal.Error(format, args...)
}
