// Package tui provides the Bubble Tea poem composer.
package tui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/strophe/internal/analysis"
	"github.com/verte-zerg/strophe/internal/model"
	"github.com/verte-zerg/strophe/internal/report"
	"github.com/verte-zerg/strophe/internal/store"
)

const interactiveSource = "interactive"

type mode int

const (
	modeEdit mode = iota
	modeReport
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea composer UI: a textarea for entering
// a poem and a scrollable viewport showing its analysis report.
type Model struct {
	analyzer *analysis.Analyzer
	store    *store.Store
	verbose  bool

	mode     mode
	textarea textarea.Model
	viewport viewport.Model

	poem   string
	result model.Analysis
	saved  bool

	errMsg    string
	statusMsg string

	width  int
	height int
}

// NewModel constructs a composer model. The store may be nil, in which
// case saving is disabled.
func NewModel(analyzer *analysis.Analyzer, st *store.Store, verbose bool) *Model {
	ta := textarea.New()
	ta.Placeholder = "Type or paste a poem..."
	ta.ShowLineNumbers = false
	ta.Focus()
	return &Model{
		analyzer: analyzer,
		store:    st,
		verbose:  verbose,
		textarea: ta,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateReport(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.runAnalysis()
		return m, nil
	}
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m *Model) updateReport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "e":
		m.mode = modeEdit
		m.statusMsg = ""
		m.textarea.Focus()
		return m, textarea.Blink
	case "n":
		m.mode = modeEdit
		m.statusMsg = ""
		m.saved = false
		m.poem = ""
		m.textarea.Reset()
		m.textarea.Focus()
		return m, textarea.Blink
	case "s":
		m.saveAnalysis()
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) runAnalysis() {
	poem := m.textarea.Value()
	result, err := m.analyzer.Analyze(poem)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyInput) {
			m.errMsg = "nothing to analyze yet"
		} else {
			m.errMsg = err.Error()
		}
		return
	}
	m.poem = poem
	m.result = result
	m.saved = false
	m.errMsg = ""
	m.statusMsg = ""
	m.mode = modeReport
	m.resize()

	var buf bytes.Buffer
	if err := report.RenderAnalysis(&buf, result, m.verbose); err != nil {
		m.errMsg = err.Error()
		m.mode = modeEdit
		return
	}
	m.viewport.SetContent(buf.String())
	m.viewport.GotoTop()
}

func (m *Model) saveAnalysis() {
	if m.store == nil {
		m.statusMsg = "history store unavailable"
		return
	}
	if m.saved {
		m.statusMsg = "already saved"
		return
	}
	rec := analysis.Summarize(m.poem, interactiveSource, m.result, time.Now())
	if _, err := m.store.InsertAnalysis(context.Background(), rec); err != nil {
		m.statusMsg = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.saved = true
	m.statusMsg = "saved to history"
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	// Header and footer take one line each plus a blank spacer.
	bodyHeight := m.height - 4
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	m.textarea.SetWidth(m.width)
	m.textarea.SetHeight(bodyHeight)
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	if m.mode == modeEdit {
		body = m.textarea.View()
	} else {
		body = m.viewport.View()
	}
	return m.renderHeader() + "\n" + body + "\n\n" + m.renderFooter()
}

func (m *Model) renderHeader() string {
	title := "strophe"
	if m.mode == modeReport {
		title = "strophe · analysis"
	}
	if m.width > 0 {
		title = runewidth.Truncate(title, m.width, "…")
	}
	return titleStyle.Render(title)
}

func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return errorStyle.Render(m.errMsg)
	}
	var parts []string
	if m.mode == modeEdit {
		poem := m.textarea.Value()
		parts = append(parts,
			fmt.Sprintf("Lines %d", len(analysis.Lines(poem))),
			fmt.Sprintf("Words %d", len(analysis.Words(poem))),
			"Esc analyze",
			"Ctrl+C quit",
		)
	} else {
		parts = append(parts, "s save", "e edit", "n new", "q quit")
	}
	footer := footerStyle.Render(strings.Join(parts, "  •  "))
	if m.statusMsg != "" {
		footer += "  " + statusStyle.Render(m.statusMsg)
	}
	return footer
}
