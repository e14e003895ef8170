package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"everyrhythm/internal/config"
	"everyrhythm/internal/engine"
	"everyrhythm/internal/game"
	"everyrhythm/internal/score"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#EC8000"))

var panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#EC8000")).
	Padding(0, 3)

var perfectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
var goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0C0C0"))
var missStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC143C"))
var faintStyle = lipgloss.NewStyle().Faint(true)

type statLine struct {
	name  string
	value string
}

type statList struct {
	lines []statLine
}

func (l *statList) add(name, value string) {
	l.lines = append(l.lines, statLine{name, value})
}

func (l statList) View() string {
	width := 0
	for _, line := range l.lines {
		if w := lipgloss.Width(line.name); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, line := range l.lines {
		fmt.Fprintf(&b, "%*v  %v\n", width+1, line.name+":", line.value)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderSummary(title string, s engine.Summary) string {
	sl := statList{}
	sl.add("Score", fmt.Sprintf("%v", s.Score))
	sl.add("Accuracy", fmt.Sprintf("%.1f%%", s.Accuracy))
	sl.add("Max combo", fmt.Sprintf("%v", s.MaxCombo))
	sl.add("Perfect", perfectStyle.Render(fmt.Sprintf("%v", s.Perfect)))
	sl.add("Good", goodStyle.Render(fmt.Sprintf("%v", s.Good)))
	sl.add("Miss", missStyle.Render(fmt.Sprintf("%v", s.Miss)))
	sl.add("Notes", fmt.Sprintf("%v", s.Total))
	return titleStyle.Render(title) + "\n" + panelStyle.Render(sl.View())
}

// renderHistory lists the stored sessions for a beat map, each one
// rescored through the engine from its recorded inputs.
func renderHistory(m *game.BeatMap, replays []score.Replay) string {
	if len(replays) == 0 {
		return faintStyle.Render("no stored sessions for " + m.Title)
	}

	var b strings.Builder
	for i, r := range replays {
		s := engine.Replay(config.Windows(), m.Beats, r.Inputs)
		fmt.Fprintf(&b, "%2v) %v  score %7v  %5.1f%%  combo %3v\n",
			i+1, r.Created.Format("2006-01-02 15:04"), s.Score, s.Accuracy, s.MaxCombo)
	}
	return titleStyle.Render(m.Title+" history") + "\n" +
		panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
