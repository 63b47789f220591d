package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/confkit/pkg/conf"
)

// viewMode selects between the parsed key listing and the raw file text.
type viewMode int

const (
	modeKeys viewMode = iota
	modeRaw
)

type model struct {
	path       string
	profileTok string

	keys  []conf.KeyLine
	lines []string

	mode   viewMode
	cursor int // selected entry in the key view
	offset int // first visible row

	width  int
	height int
	ready  bool

	status string
	err    error
}

// loadedMsg carries a freshly parsed document into the update loop.
type loadedMsg struct {
	keys  []conf.KeyLine
	lines []string
}

type errMsg struct{ err error }

func newModel(path, profileTok string) model {
	return model{
		path:       path,
		profileTok: profileTok,
	}
}

func (m model) Init() tea.Cmd {
	return m.load
}

// load reads and parses the file. Runs as a command so the UI never
// blocks on disk.
func (m model) load() tea.Msg {
	ed, err := conf.Open(m.path, conf.OpenOptions{Profile: m.profileTok})
	if err != nil {
		return errMsg{err}
	}
	return loadedMsg{
		keys:  ed.Keys(),
		lines: ed.Lines(),
	}
}

// rowCount returns the number of rows in the active view.
func (m model) rowCount() int {
	if m.mode == modeRaw {
		return len(m.lines)
	}
	return len(m.keys)
}

// viewRows is the number of rows the list area can display.
func (m model) viewRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampCursor keeps the selection inside the list and in view.
func (m *model) clampCursor() {
	if n := m.rowCount(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	rows := m.viewRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}
