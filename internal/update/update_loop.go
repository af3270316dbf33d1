package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/views"
)

const dayTickInterval = time.Minute

func dayTickCmd() tea.Cmd {
	return tea.Tick(dayTickInterval, func(t time.Time) tea.Msg { return DayTickMsg{At: t} })
}

func (m Model) Init() tea.Cmd {
	return dayTickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Input.Mode != InputNone {
			return m.handleInputKey(typed), nil
		}
		if m.Palette.Active {
			if keyStr == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.InProgress:
			m.switchView(ViewInProgress)
			return m, nil
		case m.Keys.Someday:
			m.switchView(ViewSomeday)
			return m, nil
		case m.Keys.Completed:
			m.switchView(ViewCompleted)
			return m, nil
		case m.Keys.Habits:
			m.switchView(ViewHabits)
			return m, nil
		case "tab":
			m.switchView(nextView(m.CurrentView, 1))
			return m, nil
		case "shift+tab":
			m.switchView(nextView(m.CurrentView, -1))
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case "esc":
			if m.Overlay != "" {
				m.Overlay = ""
				m.Status = StatusBar{Text: "summary closed"}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewInProgress, ViewSomeday:
			return m.handleTaskListKey(typed), nil
		case ViewCompleted:
			return m.handleCompletedKey(typed), nil
		case ViewHabits:
			return m.handleHabitsKey(typed), nil
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.switchView(typed.View)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case DayTickMsg:
		before := m.Board.Habits.DateKey
		m.refresh()
		if before != "" && m.Board.Habits.DateKey != before {
			m.notify("New day", "habit checks reset for "+m.Board.Habits.DateKey, "info")
		}
		return m, dayTickCmd()
	}

	return m, nil
}

func (m *Model) switchView(v View) {
	m.CurrentView = v
	m.refresh()
}

func nextView(v View, delta int) View {
	for i, candidate := range viewOrder {
		if candidate == v {
			n := len(viewOrder)
			return viewOrder[((i+delta)%n+n)%n]
		}
	}
	return ViewInProgress
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	c := m.Board.Counts
	tabs := []string{
		fmt.Sprintf("%s In progress (%d)", m.Keys.InProgress, c.InProgress),
		fmt.Sprintf("%s Someday (%d)", m.Keys.Someday, c.Someday),
		fmt.Sprintf("%s Completed (%d)", m.Keys.Completed, c.Completed),
		fmt.Sprintf("%s Habits %d%%", m.Keys.Habits, m.Board.Habits.Percent),
	}
	active := 0
	for i, v := range viewOrder {
		if v == m.CurrentView {
			active = i
		}
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("dayboard | %s | view: %s", m.Board.Habits.DateKey, m.CurrentView),
		Tabs:         tabs,
		ActiveTab:    active,
		LeftPane:     m.renderLeftPane(),
		RightPane:    m.renderRightPane(),
		StatusLine:   status,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s/%s/%s/%s views | tab next | / cmd | %s help | %s quit",
			m.Keys.InProgress, m.Keys.Someday, m.Keys.Completed, m.Keys.Habits, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewInProgress, ViewSomeday, ViewCompleted, ViewHabits:
		return true
	default:
		return false
	}
}
