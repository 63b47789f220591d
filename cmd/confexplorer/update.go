package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.clampCursor()
		return m, nil

	case loadedMsg:
		m.keys = msg.keys
		m.lines = msg.lines
		m.err = nil
		m.status = fmt.Sprintf("%d key lines, %d lines total", len(msg.keys), len(msg.lines))
		m.clampCursor()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.cursor--
		m.clampCursor()

	case key.Matches(msg, keys.Down):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, keys.PageUp):
		m.cursor -= m.viewRows()
		m.clampCursor()

	case key.Matches(msg, keys.PageDown):
		m.cursor += m.viewRows()
		m.clampCursor()

	case key.Matches(msg, keys.Home):
		m.cursor = 0
		m.clampCursor()

	case key.Matches(msg, keys.End):
		m.cursor = m.rowCount() - 1
		m.clampCursor()

	case key.Matches(msg, keys.ToggleRaw):
		if m.mode == modeKeys {
			m.mode = modeRaw
		} else {
			m.mode = modeKeys
		}
		m.cursor, m.offset = 0, 0
		m.clampCursor()

	case key.Matches(msg, keys.Refresh):
		m.status = "reloading..."
		return m, m.load
	}
	return m, nil
}
