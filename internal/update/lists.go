package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// handleTaskListKey drives the in-progress and someday views.
func (m Model) handleTaskListKey(msg tea.KeyMsg) Model {
	list := m.currentList()
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "a":
		m.startInput(InputAddTask, "", model.ListInProgress, "")
	case "e":
		if t, ok := m.selectedTask(); ok {
			m.startEdit(t, list)
		}
	case "c", "x":
		t, ok := m.selectedTask()
		if !ok {
			return m
		}
		_, err := m.app.Tasks.Complete(list, t.ID)
		m.afterChange("completed: "+t.Title, err)
	case "m":
		t, ok := m.selectedTask()
		if !ok {
			return m
		}
		to := model.ListSomeday
		if list == model.ListSomeday {
			to = model.ListInProgress
		}
		err := m.app.Tasks.Move(list, m.cursor(), to, 0)
		m.afterChange(fmt.Sprintf("moved to %s: %s", viewFor(to), t.Title), err)
	case "J", "K":
		delta := 1
		if msg.String() == "K" {
			delta = -1
		}
		from := m.cursor()
		to := from + delta
		if to < 0 || to >= len(m.currentTasks()) {
			return m
		}
		err := m.app.Tasks.Move(list, from, list, to)
		if err == nil {
			m.Cursors[m.CurrentView] = to
		}
		m.afterChange("reordered", err)
	case "d":
		t, ok := m.selectedTask()
		if !ok {
			return m
		}
		err := m.app.Tasks.Delete(list, t.ID)
		m.afterChange("deleted: "+t.Title, err)
	}
	return m
}

// handleCompletedKey drives the week-grouped completed view. Week headers
// expand and collapse; task rows can be edited or deleted.
func (m Model) handleCompletedKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "enter", " ":
		row, ok := m.selectedCompletedRow()
		if !ok {
			return m
		}
		open := m.app.ToggleWeek(row.WeekKey)
		state := "collapsed"
		if open {
			state = "expanded"
		}
		m.Cursors[ViewCompleted] = m.weekRowIndex(row.WeekKey)
		m.afterChange(fmt.Sprintf("week %s %s", row.WeekKey, state), nil)
	case "e":
		row, ok := m.selectedCompletedRow()
		if !ok || row.TaskID == "" {
			return m
		}
		if t, found := m.app.Tasks.Find(model.ListCompleted, row.TaskID); found {
			m.startEdit(t, model.ListCompleted)
		}
	case "d":
		row, ok := m.selectedCompletedRow()
		if !ok || row.TaskID == "" {
			return m
		}
		err := m.app.Tasks.Delete(model.ListCompleted, row.TaskID)
		m.afterChange("deleted completed task", err)
	}
	return m
}

// startEdit edits the title first, then the memo, so neither field is ever
// parsed for a separator.
func (m *Model) startEdit(t model.Task, list model.List) {
	m.startInput(InputEditTask, t.ID, list, t.Title)
	m.Input.Memo = t.Memo
}

func (m Model) weekRowIndex(key string) int {
	for i, row := range m.completedRows() {
		if row.WeekKey == key && row.TaskID == "" {
			return i
		}
	}
	return 0
}

func (m Model) handleHabitsKey(msg tea.KeyMsg) Model {
	id := m.selectedHabitID()
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case " ", "enter", "x":
		if id == "" {
			return m
		}
		checked := !m.app.Habits.Checked(id)
		err := m.app.Habits.Toggle(id, checked)
		text := "unchecked"
		if checked {
			text = "checked"
		}
		m.afterChange(text, err)
	case "a":
		m.startInput(InputAddHabit, "", "", "")
	case "e":
		if id == "" {
			return m
		}
		m.startInput(InputRenameHabit, id, "", m.Board.Habits.Items[m.Cursors[ViewHabits]].Label)
	case "d":
		if id == "" {
			return m
		}
		err := m.app.Habits.RemoveItem(id)
		m.afterChange("habit removed", err)
	case "t":
		m.startInput(InputTotalDays, "", "", overrideValue(m.app.State().Habits.Overrides.TotalDays))
	case "s":
		m.startInput(InputStreak, "", "", overrideValue(m.app.State().Habits.Overrides.Streak))
	}
	return m
}

func overrideValue(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprint(*n)
}

func viewFor(l model.List) View {
	switch l {
	case model.ListSomeday:
		return ViewSomeday
	case model.ListCompleted:
		return ViewCompleted
	default:
		return ViewInProgress
	}
}
