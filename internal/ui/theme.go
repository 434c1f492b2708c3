package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	IconBolt   = "⚡"
	IconTrophy = "🏆"
	IconTimer  = "⏱"
	IconCheck  = "✔"
	IconError  = "✖"
	IconInfo   = "ℹ"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Modal      = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cAccent).Padding(1, 2)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Selected   = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	ActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Underline(true)

	Prompt       = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Padding(0, 2)
	PromptSolved = lipgloss.NewStyle().Bold(true).Foreground(cGood).Padding(0, 2)
	Input        = lipgloss.NewStyle().Bold(true).Underline(true)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Clock colors the countdown as it runs low.
func Clock(text string, seconds int) string {
	switch {
	case seconds <= 10:
		return Bad.Render(IconTimer + " " + text)
	case seconds <= 30:
		return Warn.Render(IconTimer + " " + text)
	default:
		return H2.Render(IconTimer + " " + text)
	}
}

// Options renders a row of choices with the current one highlighted.
func Options(labels []string, current int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == current {
			parts[i] = ActiveTab.Render(l)
		} else {
			parts[i] = Muted.Render(l)
		}
	}
	return strings.Join(parts, "  ")
}
