package main

import (
	"fmt"
	"strings"
)

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	title := "confexplorer"
	if m.mode == modeRaw {
		title += " (raw)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString(" ")
	b.WriteString(pathStyle.Render(m.path))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.renderRows())

	b.WriteString(helpStyle.Render(
		"j/k move · g/G jump · tab raw view · r reload · q quit"))
	return b.String()
}

func (m model) renderRows() string {
	var b strings.Builder
	rows := m.viewRows()
	total := m.rowCount()

	if total == 0 {
		b.WriteString(statusStyle.Render("(no key lines)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.offset + rows
	if end > total {
		end = total
	}
	for i := m.offset; i < end; i++ {
		line := m.renderRow(i)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) renderRow(i int) string {
	if m.mode == modeRaw {
		return " " + m.lines[i]
	}
	k := m.keys[i]
	if k.Commented {
		return " " + commentedStyle.Render(fmt.Sprintf("%s = %s", k.Key, k.Value))
	}
	return fmt.Sprintf(" %s = %s", keyStyle.Render(k.Key), valueStyle.Render(k.Value))
}
