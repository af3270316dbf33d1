package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderInputView(mode InputMode) string {
	if m.Input.Mode != mode {
		return ""
	}
	return fmt.Sprintf("%s: %s", m.Input.Mode, m.textInput.View())
}

// suggestionHint lists earlier titles matching what is being typed as a new
// task, from the add input or an "add" palette command.
func (m Model) suggestionHint() string {
	var typed string
	switch {
	case m.Input.Mode == InputAddTask:
		typed = m.textInput.Value()
	case m.Palette.Active && strings.HasPrefix(m.Palette.Input, "add "):
		typed = strings.TrimPrefix(m.Palette.Input, "add ")
	default:
		return ""
	}
	if strings.Contains(typed, memoSeparator) {
		return ""
	}
	matches := m.app.Tasks.Match(typed, m.suggestionLimit())
	if len(matches) == 0 {
		return ""
	}
	if len(matches) > hintLimit {
		matches = matches[:hintLimit]
	}
	return "suggestions: " + strings.Join(matches, ", ")
}

func (m Model) suggestionLimit() int {
	return max(len(m.Board.Suggestions), 1)
}

func (m Model) renderLeftPane() string {
	switch m.CurrentView {
	case ViewInProgress, ViewSomeday:
		return views.RenderTaskPanel(m.taskPanelData())
	case ViewCompleted:
		return views.RenderCompletedPanel(m.completedPanelData())
	case ViewHabits:
		return views.RenderHabitsPanel(m.habitsPanelData(true))
	default:
		return ""
	}
}

func (m Model) renderRightPane() string {
	parts := []string{m.renderCommandPalette(), m.suggestionHint()}
	if m.CurrentView == ViewCompleted {
		parts = append(parts, m.renderInputView(InputEditTask), m.renderInputView(InputEditMemo))
	}
	switch {
	case m.Overlay != "":
		parts = append(parts, m.Overlay)
	case m.HelpVisible:
		parts = append(parts, m.renderHelpView())
	case m.CurrentView == ViewHabits:
		c := m.Board.Counts
		parts = append(parts, fmt.Sprintf("tasks: %d in progress | %d someday | %d completed",
			c.InProgress, c.Someday, c.Completed))
	default:
		parts = append(parts, views.RenderHabitsPanel(m.habitsPanelData(false)))
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	})
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}
