package views

import (
	"fmt"
	"strings"
)

type TaskItemData struct {
	ID        string
	Title     string
	Memo      string
	AddedAt   string
	DoneAt    string
	Completed bool
}

type TaskPanelData struct {
	Name       string
	Items      []TaskItemData
	SelectedID string
	InputView  string
	Editing    bool
}

type WeekGroupData struct {
	Key      string
	Range    string
	Expanded bool
	Items    []TaskItemData
}

type CompletedPanelData struct {
	Weeks       []WeekGroupData
	SelectedKey string
	SelectedID  string
	Total       int
}

type HabitItemData struct {
	ID      string
	Label   string
	Checked bool
}

type StampData struct {
	Label   string
	Percent int
	Today   bool
}

type HabitsPanelData struct {
	Percent        int
	ProgressView   string
	Message        string
	Streak         int
	StreakOverride bool
	TotalDays      int
	TotalOverride  bool
	Items          []HabitItemData
	SelectedID     string
	Week           []StampData
	InputView      string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func cursor(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d):\n", strings.ToLower(data.Name), len(data.Items)))
	b.WriteString("actions: [a]add [e]edit [c]complete [m]move [J/K]reorder [d]delete\n")
	if data.InputView != "" {
		b.WriteString(data.InputView + "\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("  (empty)")
		return b.String()
	}
	for _, item := range data.Items {
		b.WriteString(fmt.Sprintf("%s %s\n", cursor(item.ID == data.SelectedID), item.Title))
		if item.Memo != "" {
			b.WriteString(mutedStyle.Render("    "+item.Memo) + "\n")
		}
		b.WriteString(mutedStyle.Render("    added "+item.AddedAt) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCompletedPanel(data CompletedPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("completed (%d):\n", data.Total))
	b.WriteString("actions: [enter]expand/collapse [e]edit [d]delete\n")
	if len(data.Weeks) == 0 {
		b.WriteString("  (nothing finished yet)")
		return b.String()
	}
	for _, week := range data.Weeks {
		marker := "+"
		if week.Expanded {
			marker = "-"
		}
		selected := data.SelectedID == "" && week.Key == data.SelectedKey
		b.WriteString(fmt.Sprintf("%s [%s] %s %s (%d)\n", cursor(selected), marker, week.Key, week.Range, len(week.Items)))
		if !week.Expanded {
			continue
		}
		for _, item := range week.Items {
			b.WriteString(fmt.Sprintf("  %s %s %s\n", cursor(item.ID == data.SelectedID), doneStyle.Render("✓"), item.Title))
			b.WriteString(mutedStyle.Render(fmt.Sprintf("      added %s, done %s", item.AddedAt, item.DoneAt)) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHabitsPanel(data HabitsPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("habits: %d%%\n", data.Percent))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	b.WriteString(data.Message + "\n")
	b.WriteString(fmt.Sprintf("streak: %d%s | 100%% days: %d%s\n",
		data.Streak, overrideMark(data.StreakOverride), data.TotalDays, overrideMark(data.TotalOverride)))
	b.WriteString("actions: [space]check [a]add [e]rename [d]delete [t]total [s]streak\n")
	if data.InputView != "" {
		b.WriteString(data.InputView + "\n")
	}
	for _, item := range data.Items {
		box := "[ ]"
		if item.Checked {
			box = doneStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor(item.ID == data.SelectedID), box, item.Label))
	}
	if len(data.Week) > 0 {
		b.WriteString("\nthis week:\n")
		b.WriteString(RenderStamps(data.Week))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func overrideMark(on bool) string {
	if on {
		return "*"
	}
	return ""
}

// RenderStamps draws one cell per day: a full mark for 100%, a partial mark
// for any progress and a dot otherwise. Today is bracketed.
func RenderStamps(days []StampData) string {
	cells := make([]string, 0, len(days))
	for _, d := range days {
		mark := "·"
		switch {
		case d.Percent >= 100:
			mark = doneStyle.Render("●")
		case d.Percent > 0:
			mark = "◐"
		}
		cell := fmt.Sprintf("%s %s", d.Label, mark)
		if d.Today {
			cell = "[" + cell + "]"
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, "  ")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
