package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/storage"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

type boardTab int

const (
	tabMissions boardTab = iota
	tabQuests
	tabAchievements
)

var tabNames = []string{"Missions", "Quests", "Achievements"}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	player       *storage.Player
	tasks        []storage.Task
	daily        []storage.Quest
	weekly       []storage.Quest
	achievements []storage.Achievement

	tab        boardTab
	selected   int
	hideDone   bool
	xpBar      progress.Model
	lastLog    string
	loading    bool
	err        error
}

type loadedMsg struct {
	player       *storage.Player
	tasks        []storage.Task
	daily        []storage.Quest
	weekly       []storage.Quest
	achievements []storage.Achievement
	err          error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 30
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		xpBar:   bar,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Player(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TaskRepo().ListAll(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		daily, weekly, err := m.svc.Quests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		achievements, err := m.svc.Achievements(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{player: p, tasks: tasks, daily: daily, weekly: weekly, achievements: achievements}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.player = msg.player
		m.tasks = msg.tasks
		m.daily = msg.daily
		m.weekly = msg.weekly
		m.achievements = msg.achievements
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = completionLine(msg.res)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab":
			m.tab = (m.tab + 1) % boardTab(len(tabNames))
			m.selected = 0
			return m, nil
		case "h":
			m.hideDone = !m.hideDone
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.tab != tabMissions {
				return m, nil
			}
			rows := m.missionRows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			t := rows[m.selected]
			if t.Status == "completed" {
				m.lastLog = "Already completed."
				return m, nil
			}
			m.lastLog = "Completing " + t.Title + "…"
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func completionLine(res *engine.CompleteResult) string {
	line := fmt.Sprintf("%s +%d XP", ui.IconDone, res.XPAwarded)
	if res.LevelUp {
		line += fmt.Sprintf("  %s → level %d", ui.BadgeLevelUp, res.LevelAfter)
	}
	for _, q := range res.QuestsUnlocked {
		line += fmt.Sprintf("  %s quest: %s", ui.IconScroll, q.Title)
	}
	for _, a := range res.AchievementsUnlocked {
		line += fmt.Sprintf("  %s %s", ui.IconTrophy, a.Title)
	}
	return line
}

func (m boardModel) missionRows() []storage.Task {
	if !m.hideDone {
		return m.tasks
	}
	var out []storage.Task
	for _, t := range m.tasks {
		if t.Status != "completed" {
			out = append(out, t)
		}
	}
	return out
}

func (m boardModel) rowCount() int {
	switch m.tab {
	case tabQuests:
		return len(m.daily) + len(m.weekly)
	case tabAchievements:
		return len(m.achievements)
	default:
		return len(m.missionRows())
	}
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabQuests:
		b.WriteString(m.renderQuests())
	case tabAchievements:
		b.WriteString(m.renderAchievements())
	default:
		b.WriteString(m.renderMissions())
	}

	b.WriteString("\n\n")
	b.WriteString(ui.Dim.Render("tab: switch view  j/k: move  c/space: complete  h: hide done  r: refresh  q: quit"))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderHeader() string {
	if m.player == nil {
		return ui.Heading(ui.IconMission, "Shadow Console — loading…")
	}
	info := engine.GetLevelInfo(m.player.TotalXP)
	rank := engine.GetRankInfo(m.player.TotalXP)
	return fmt.Sprintf("%s  %s  Lv %d %s  %s  %d/%d XP  %s",
		ui.Heading(ui.IconMission, m.player.Name),
		ui.RankTitle(rank.Title, rank.Color),
		info.Level,
		m.xpBar.ViewAs(info.Progress/100),
		ui.IconBolt,
		info.CurrentXP,
		info.XPToNext,
		ui.StreakText(m.player.CurrentStreak))
}

func (m boardModel) renderTabs() string {
	var parts []string
	for i, name := range tabNames {
		if boardTab(i) == m.tab {
			parts = append(parts, ui.SelectedRow.Render(" "+name+" "))
		} else {
			parts = append(parts, ui.Muted.Render(" "+name+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m boardModel) renderMissions() string {
	if m.loading {
		return "Loading…"
	}
	rows := m.missionRows()
	if len(rows) == 0 {
		return ui.Muted.Render("(no missions — add one with `sc add`)")
	}
	var out []string
	for i, t := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = ui.Gold.Render("> ")
		}
		due := ""
		if t.DueDate != nil {
			due = ui.Dim.Render("  due " + t.DueDate.Format("Jan 2"))
		}
		out = append(out, fmt.Sprintf("%s%s %s  %s  %s%s",
			cursor,
			ui.PriorityBadge(t.Priority),
			t.Title,
			ui.StatusText(t.Status),
			ui.Dim.Render(t.Category),
			due))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderQuests() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	section := func(title string, quests []storage.Quest) {
		out = append(out, ui.H2.Render(title))
		for _, q := range quests {
			mark := ui.IconScroll
			if q.Completed {
				mark = ui.IconDone
			}
			out = append(out, fmt.Sprintf("  %s %s  %d/%d  %s",
				mark, q.Title, q.Current, q.Target,
				ui.Gold.Render(fmt.Sprintf("+%d XP", q.XPReward))))
		}
	}
	section("Daily", m.daily)
	out = append(out, "")
	section("Weekly", m.weekly)
	return strings.Join(out, "\n")
}

func (m boardModel) renderAchievements() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	for _, a := range m.achievements {
		if a.Unlocked {
			out = append(out, fmt.Sprintf("  %s %s — %s", a.Icon, ui.Good.Render(a.Title), ui.Dim.Render(a.Description)))
		} else {
			out = append(out, fmt.Sprintf("  %s %s — %s", ui.IconLock, ui.Muted.Render(a.Title), ui.Dim.Render(a.Description)))
		}
	}
	return strings.Join(out, "\n")
}
