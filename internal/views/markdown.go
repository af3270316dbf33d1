package views

import (
	"fmt"
	"strings"
)

type SummaryData struct {
	Date       string
	Counts     [3]int
	InProgress []TaskItemData
	Someday    []TaskItemData
	Weeks      []WeekGroupData
	Habits     HabitsPanelData
}

// SummaryMarkdown renders the board as markdown for glamour or plain output.
func SummaryMarkdown(data SummaryData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Dayboard %s\n\n", data.Date)
	fmt.Fprintf(&b, "| In progress | Completed | Someday |\n|---|---|---|\n| %d | %d | %d |\n\n",
		data.Counts[0], data.Counts[1], data.Counts[2])

	writeTaskSection(&b, "In progress", data.InProgress)
	writeTaskSection(&b, "Someday", data.Someday)

	b.WriteString("## Completed\n\n")
	if len(data.Weeks) == 0 {
		b.WriteString("_Nothing finished yet._\n\n")
	}
	for _, w := range data.Weeks {
		fmt.Fprintf(&b, "### Week %s (%s)\n\n", w.Key, w.Range)
		for _, item := range w.Items {
			fmt.Fprintf(&b, "- [x] %s _(done %s)_\n", escape(item.Title), item.DoneAt)
		}
		b.WriteString("\n")
	}

	h := data.Habits
	fmt.Fprintf(&b, "## Habits: %d%%\n\n> %s\n\n", h.Percent, h.Message)
	for _, item := range h.Items {
		box := " "
		if item.Checked {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, escape(item.Label))
	}
	fmt.Fprintf(&b, "\n**Streak:** %d%s  \n**100%% days:** %d%s\n",
		h.Streak, overrideMark(h.StreakOverride), h.TotalDays, overrideMark(h.TotalOverride))
	if len(h.Week) > 0 {
		b.WriteString("\n| ")
		for _, d := range h.Week {
			b.WriteString(d.Label + " | ")
		}
		b.WriteString("\n|")
		for range h.Week {
			b.WriteString("---|")
		}
		b.WriteString("\n| ")
		for _, d := range h.Week {
			fmt.Fprintf(&b, "%d%% | ", d.Percent)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeTaskSection(b *strings.Builder, title string, items []TaskItemData) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(items) == 0 {
		b.WriteString("_Empty._\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- [ ] %s", escape(item.Title))
		if item.Memo != "" {
			fmt.Fprintf(b, " - %s", escape(item.Memo))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "|", `\|`, "\n", " ")

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
