package update

import (
	"github.com/sandeepkv93/dayboard/internal/app"
	"github.com/sandeepkv93/dayboard/internal/completed"
	"github.com/sandeepkv93/dayboard/internal/habits"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func taskItems(list []model.Task) []views.TaskItemData {
	out := make([]views.TaskItemData, 0, len(list))
	for _, t := range list {
		item := views.TaskItemData{
			ID:      t.ID,
			Title:   t.Title,
			Memo:    t.Memo,
			AddedAt: formatTime(t.AddedAt),
		}
		if t.CompletedAt != nil {
			item.Completed = true
			item.DoneAt = formatTime(*t.CompletedAt)
		}
		out = append(out, item)
	}
	return out
}

func weekGroups(buckets []completed.Bucket, all bool) []views.WeekGroupData {
	out := make([]views.WeekGroupData, 0, len(buckets))
	for _, b := range buckets {
		g := views.WeekGroupData{
			Key:      b.Key,
			Range:    weekRange(b.Start),
			Expanded: b.Expanded,
		}
		if b.Expanded || all {
			g.Items = taskItems(b.Tasks)
		}
		out = append(out, g)
	}
	return out
}

func habitItems(items []habits.ItemStatus) []views.HabitItemData {
	out := make([]views.HabitItemData, 0, len(items))
	for _, it := range items {
		out = append(out, views.HabitItemData{ID: it.ID, Label: it.Label, Checked: it.Checked})
	}
	return out
}

func stamps(week []habits.DayStamp) []views.StampData {
	out := make([]views.StampData, 0, len(week))
	for _, d := range week {
		out = append(out, views.StampData{Label: d.Label, Percent: d.Percent, Today: d.Today})
	}
	return out
}

func habitsData(s habits.Summary) views.HabitsPanelData {
	return views.HabitsPanelData{
		Percent:        s.Percent,
		Message:        s.Message,
		Streak:         s.Streak,
		StreakOverride: s.StreakOverride,
		TotalDays:      s.TotalDays,
		TotalOverride:  s.TotalOverride,
		Items:          habitItems(s.Items),
		Week:           stamps(s.Week),
	}
}

// SummaryData flattens a board for the markdown summary. Completed weeks are
// listed in full whether or not they are expanded in the UI.
func SummaryData(b app.Board) views.SummaryData {
	return views.SummaryData{
		Date:       b.Habits.DateKey,
		Counts:     [3]int{b.Counts.InProgress, b.Counts.Completed, b.Counts.Someday},
		InProgress: taskItems(b.InProgress),
		Someday:    taskItems(b.Someday),
		Weeks:      weekGroups(b.Completed, true),
		Habits:     habitsData(b.Habits),
	}
}

func (m Model) taskPanelData() views.TaskPanelData {
	data := views.TaskPanelData{
		Name:    string(m.CurrentView),
		Items:   taskItems(m.currentTasks()),
		Editing: m.Input.Mode == InputEditTask || m.Input.Mode == InputEditMemo,
	}
	if t, ok := m.selectedTask(); ok {
		data.SelectedID = t.ID
	}
	switch m.Input.Mode {
	case InputAddTask, InputEditTask, InputEditMemo:
		data.InputView = m.renderInputView(m.Input.Mode)
	}
	return data
}

func (m Model) completedPanelData() views.CompletedPanelData {
	data := views.CompletedPanelData{
		Weeks: weekGroups(m.Board.Completed, false),
		Total: m.Board.Counts.Completed,
	}
	if row, ok := m.selectedCompletedRow(); ok {
		data.SelectedKey = row.WeekKey
		data.SelectedID = row.TaskID
	}
	return data
}

// habitsPanelData builds the habit panel. The compact variant shown beside
// other views has no cursor or input.
func (m Model) habitsPanelData(full bool) views.HabitsPanelData {
	data := habitsData(m.Board.Habits)
	data.ProgressView = m.habitProgress.ViewAs(float64(data.Percent) / 100)
	if !full {
		return data
	}
	data.SelectedID = m.selectedHabitID()
	switch m.Input.Mode {
	case InputAddHabit, InputRenameHabit, InputTotalDays, InputStreak:
		data.InputView = m.renderInputView(m.Input.Mode)
	}
	return data
}
