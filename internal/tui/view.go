package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"countdown/internal/timer"
)

func iconLabel(icon timer.Icon) string {
	switch icon {
	case timer.IconStart:
		return "start"
	case timer.IconPause:
		return "pause"
	case timer.IconReset:
		return "reset"
	case timer.IconPlus:
		return "+1"
	case timer.IconMinus:
		return "-1"
	case timer.IconMode:
		return "field"
	default:
		return ""
	}
}

var slotKeys = [3]string{"↑", "⏎", "↓"}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("COUNTDOWN"))
	b.WriteString("\n\n")

	minStyle := m.theme.Digit
	if m.view.minHi {
		minStyle = m.theme.Edit
	}
	secStyle := m.theme.Digit
	if m.view.secHi {
		secStyle = m.theme.Edit
	}
	clock := lipgloss.JoinHorizontal(lipgloss.Center,
		minStyle.Render(m.view.minText),
		m.theme.Label.Render("m"),
		m.theme.Digit.Render(":"),
		secStyle.Render(m.view.secText),
		m.theme.Label.Render("s"),
	)
	b.WriteString(clock)
	b.WriteString("\n\n")

	if m.view.banner {
		b.WriteString(m.theme.Banner.Render("Time's Up!"))
		b.WriteString("\n\n")
	}

	if m.counting() && m.runTotal > 0 {
		frac := 1 - float64(m.machine.Remaining())/float64(m.runTotal)
		b.WriteString(m.progress.ViewAs(frac))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.Status.Render(m.statusLine()))
	b.WriteString("\n")

	for slot, key := range slotKeys {
		label := iconLabel(m.view.icons[slot])
		if label == "" {
			continue
		}
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("%s %s", key, label)))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	help := "↑/k start·pause  ⏎ field  m mode  ↓/j reset  q quit"
	if m.err != nil {
		help = fmt.Sprintf("history error: %v", m.err)
	}
	if m.width > 8 {
		help = ansi.Truncate(help, m.width-4, "…")
	}
	b.WriteString(m.theme.Dim.Render(help))

	return m.theme.Base.Render(b.String())
}

func (m Model) statusLine() string {
	switch m.machine.Mode() {
	case timer.ModeEditMinutes:
		return "editing minutes"
	case timer.ModeEditSeconds:
		return "editing seconds"
	default:
		switch m.machine.RunState() {
		case timer.RunCounting:
			return "counting"
		case timer.RunExpired:
			return "expired - ready to go again"
		default:
			return "ready"
		}
	}
}
