package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// SessionSummary contains data for the session table printed on exit.
type SessionSummary struct {
	ID     string
	Left   string // formatted start time
	Back   string // formatted end time
	Away   string // human-readable duration
	Reason string
	Frames int
}

// Session prints a one-row table describing the finished away period.
func (p *Printer) Session(s SessionSummary) {
	p.Println()
	p.Section("SESSION")

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	reason := s.Reason
	if reason == "" {
		reason = "-"
	}
	away := s.Away
	if p.isTTY {
		away = lipgloss.NewStyle().Foreground(ColorGreen).Render(away)
	}

	t.AppendHeader(table.Row{"ID", "Left", "Back", "Away", "Frames", "Reason"})
	t.AppendRow(table.Row{shortID(s.ID), s.Left, s.Back, away, s.Frames, reason})

	t.Render()
	p.Println()
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// tableStyle returns the standard amber-themed table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiYellow, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
	}
	style.Options.SeparateRows = false
	return style
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.isTTY {
		style := lipgloss.NewStyle().Foreground(ColorAmber).Bold(true)
		p.Println(style.Render(title))
	} else {
		p.Println(title)
	}
}
