package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shadow Console theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMission = "⚔️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconFlame   = "🔥"
	IconCrown   = "👑"
	IconTimer   = "⏱️"
	IconScroll  = "📜"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLock    = "🔒"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("135") // violet
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
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// priorityColors maps the canonical rank letters onto the hunter palette.
var priorityColors = map[string]lipgloss.Color{
	"E": cMuted,
	"D": lipgloss.Color("34"),
	"C": lipgloss.Color("39"),
	"B": cPrimary,
	"A": lipgloss.Color("205"),
	"S": cGold,
}

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

// PriorityBadge renders a rank letter in its tier color, S-rank bolded
// like a boss tag.
func PriorityBadge(priority string) string {
	c, ok := priorityColors[priority]
	if !ok {
		return Muted.Render(priority)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render("[" + priority + "]")
}

// RankTitle renders a rank title in the table's own color code.
func RankTitle(title, color string) string {
	if color == "" {
		return title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(title)
}

func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed", "done":
		return Good.Render("completed")
	case "in-progress", "in progress":
		return H2.Render("in-progress")
	case "pending":
		return Warn.Render("pending")
	default:
		return Muted.Render(status)
	}
}

// XPBar renders a fixed-width progress bar for a 0..1 ratio.
func XPBar(progress float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return Gold.Render(bar)
}

// StreakText renders a streak count, flame for an active run.
func StreakText(days int) string {
	if days <= 0 {
		return Muted.Render("no streak")
	}
	return fmt.Sprintf("%s %s", IconFlame, Warn.Render(fmt.Sprintf("%d day streak", days)))
}
