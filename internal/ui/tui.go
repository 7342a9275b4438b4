// Package ui is the interactive front end: a two-pane terminal window
// with the raw deck text on the left, the derived chunks on the right,
// and a status line driving the copy-one-at-a-time workflow.
package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"kernelchunk/internal/deck"
	"kernelchunk/internal/session"
)

type sessionState int

const (
	stateDefault sessionState = iota
	stateFilePicker
)

// Model is the whole UI state. All session data lives here and is passed
// down explicitly; there are no package-level mutable globals.
type Model struct {
	state         sessionState
	status        string
	defaultStatus string
	logger        *zap.Logger

	// UI components
	input      textarea.Model
	chunks     list.Model
	filepicker filepicker.Model
	focusList  bool

	// Session
	seq           *session.Sequence
	inputFilePath string
}

func New(logger *zap.Logger, set Settings) Model {
	defaultStatus := "Ctrl+O: Load | Ctrl+K: Chunk | Ctrl+Y: Copy Next | Ctrl+R: Clear | Tab: Switch Panes"

	m := Model{
		state:         stateDefault,
		status:        defaultStatus,
		defaultStatus: defaultStatus,
		logger:        logger,
	}

	t := textarea.New()
	t.ShowLineNumbers = true
	t.FocusedStyle.Base = focusedStyle
	t.BlurredStyle.Base = blurredStyle
	t.Placeholder = "Load a kernel deck file or paste its JSON here."
	t.Focus()
	m.input = t

	m.chunks = list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	m.chunks.Title = "Chunks"
	m.chunks.SetShowHelp(false)

	fp := filepicker.New()
	fp.AllowedTypes = []string{".json"}
	fp.CurrentDirectory, _ = filepath.Abs(set.StartDir)
	m.filepicker = fp

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.filepicker.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		panelWidth := (msg.Width - h) / 2
		panelHeight := msg.Height - v - 3

		m.input.SetWidth(panelWidth)
		m.input.SetHeight(panelHeight)
		m.chunks.SetSize(panelWidth, panelHeight)
		m.filepicker.Height = panelHeight
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateFilePicker:
			if msg.String() == "esc" {
				m.state = stateDefault
				m.status = "File selection cancelled."
				return m, resetStatusCmd()
			}
			var cmd tea.Cmd
			m.filepicker, cmd = m.filepicker.Update(msg)
			if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
				m.state = stateDefault
				return m, readFileCmd(path)
			}
			return m, cmd
		default:
			return updateDefault(msg, m)
		}

	case resetStatusMsg:
		m.status = m.defaultStatus
		return m, nil

	case fileReadMsg:
		m.input.SetValue(string(msg.content))
		m.inputFilePath = msg.path
		m.status = fmt.Sprintf("Loaded '%s' — Ctrl+K to chunk it.", filepath.Base(msg.path))
		m.state = stateDefault
		return m, resetStatusCmd()

	case errMsg:
		m.logger.Warn("file load failed", zap.Error(msg.err))
		m.status = fmt.Sprintf("Could not load file: %v", msg.err)
		return m, resetStatusCmd()
	}

	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)
		return m, cmd
	}
	if m.state == stateDefault && !m.focusList {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func updateDefault(msg tea.KeyMsg, m Model) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+o":
		m.state = stateFilePicker
		m.status = "Select a deck file to load."
		return m, m.filepicker.Init()

	case "ctrl+k":
		return chunkInput(m)

	case "ctrl+y":
		return copyNext(m)

	case "ctrl+r":
		m.seq = nil
		m.chunks.SetItems(nil)
		m.status = "Cleared chunks."
		return m, resetStatusCmd()

	case "tab":
		m.focusList = !m.focusList
		if m.focusList {
			m.input.Blur()
			return m, nil
		}
		m.input.Focus()
		return m, textarea.Blink
	}

	if m.focusList {
		var cmd tea.Cmd
		m.chunks, cmd = m.chunks.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// chunkInput reparses the text pane. A fresh parse always replaces the
// whole sequence; a failed parse leaves the previous one untouched.
func chunkInput(m Model) (tea.Model, tea.Cmd) {
	res, err := deck.Parse(m.input.Value())
	if err != nil {
		m.logger.Warn("parse failed", zap.Error(err))
		m.status = statusForError(err)
		return m, resetStatusCmd()
	}

	m.seq = session.New(res.Chunks)
	m.chunks.SetItems(chunkItems(m.seq))
	m.logger.Info("deck chunked", zap.Int("chunks", m.seq.Len()))
	m.status = fmt.Sprintf("%d chunks ready — Ctrl+Y copies the next one.", m.seq.Len())
	return m, nil
}

func copyNext(m Model) (tea.Model, tea.Cmd) {
	if m.seq == nil || m.seq.Len() == 0 {
		m.status = "Nothing to copy — chunk a deck first (Ctrl+K)."
		return m, resetStatusCmd()
	}

	chunk := m.seq.Advance()
	if chunk == nil {
		m.chunks.SetItems(chunkItems(m.seq))
		m.status = fmt.Sprintf("All %d chunks copied — counter reset.", m.seq.Len())
		return m, resetStatusCmd()
	}

	text, err := deck.EncodeChunk(chunk)
	if err != nil {
		m.status = fmt.Sprintf("Could not encode chunk: %v", err)
		return m, resetStatusCmd()
	}
	if err := clipboardWriteAll(text); err != nil {
		m.logger.Warn("clipboard write failed", zap.Error(err))
		m.status = fmt.Sprintf("Clipboard error: %v", err)
		return m, resetStatusCmd()
	}

	m.chunks.SetItems(chunkItems(m.seq))
	m.status = fmt.Sprintf("Copied chunk %d/%d to clipboard.", m.seq.Cursor(), m.seq.Len())
	return m, resetStatusCmd()
}

// statusForError maps the parse error taxonomy onto user-facing status
// text. Decode errors carry the decoder's own diagnostic; shape errors
// read as usage hints.
func statusForError(err error) string {
	var decodeErr *deck.DecodeError
	var shapeErr *deck.UnrecognizedShapeError
	switch {
	case errors.Is(err, deck.ErrEmptyInput):
		return "Paste or load a kernel deck first."
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Parse error: %v", decodeErr.Err)
	case errors.As(err, &shapeErr):
		return fmt.Sprintf("No kernels found: %s.", shapeErr.Reason)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return docStyle.Render(m.filepicker.View())
	default:
		panels := lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), m.chunks.View())
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, panels, helpStyle.Render(m.status)))
	}
}
