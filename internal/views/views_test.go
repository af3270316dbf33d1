package views

import (
	"strings"
	"testing"
)

func TestRenderTaskPanel(t *testing.T) {
	out := RenderTaskPanel(TaskPanelData{
		Name:       "In progress",
		SelectedID: "b",
		Items: []TaskItemData{
			{ID: "a", Title: "Write report", Memo: "draft first", AddedAt: "6/3 09:00"},
			{ID: "b", Title: "Call bank", AddedAt: "6/3 10:00"},
		},
	})
	for _, want := range []string{"in progress (2):", "  Write report", "> Call bank", "draft first"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if empty := RenderTaskPanel(TaskPanelData{Name: "Someday"}); !strings.Contains(empty, "(empty)") {
		t.Fatalf("unexpected empty panel: %s", empty)
	}
}

func TestRenderCompletedPanelHidesCollapsedWeeks(t *testing.T) {
	out := RenderCompletedPanel(CompletedPanelData{
		Total:       2,
		SelectedKey: "2024-22",
		Weeks: []WeekGroupData{
			{Key: "2024-22", Range: "6/2-6/8", Expanded: true, Items: []TaskItemData{{ID: "x", Title: "Shipped"}}},
			{Key: "2024-21", Range: "5/26-6/1", Items: []TaskItemData{{ID: "y", Title: "Hidden task"}}},
		},
	})
	if !strings.Contains(out, "> [-] 2024-22") || !strings.Contains(out, "  [+] 2024-21") {
		t.Fatalf("unexpected week headers:\n%s", out)
	}
	if !strings.Contains(out, "Shipped") || strings.Contains(out, "Hidden task") {
		t.Fatalf("expected only expanded week tasks:\n%s", out)
	}
}

func TestRenderHabitsPanel(t *testing.T) {
	out := RenderHabitsPanel(HabitsPanelData{
		Percent:        40,
		Message:        "One step at a time",
		Streak:         3,
		StreakOverride: true,
		TotalDays:      10,
		SelectedID:     "gym",
		Items:          []HabitItemData{{ID: "gym", Label: "Go to the gym"}, {ID: "nc1", Label: "Lesson", Checked: true}},
		Week:           []StampData{{Label: "6/3", Percent: 100}, {Label: "6/4", Percent: 40, Today: true}, {Label: "6/5"}},
	})
	for _, want := range []string{"habits: 40%", "One step at a time", "streak: 3* | 100% days: 10\n", "> [ ] Go to the gym", "[6/4 ◐]", "6/5 ·"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderAppIncludesTabsAndStatus(t *testing.T) {
	out := RenderApp(AppData{
		Header:     "dayboard",
		Tabs:       []string{"Tasks", "Habits"},
		ActiveTab:  1,
		LeftPane:   "left",
		RightPane:  "right",
		StatusLine: "ready",
		Footer:     "q quit",
	})
	for _, want := range []string{"dayboard", "Tasks", "Habits", "left", "right", "ready", "q quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestPaletteAndNotification(t *testing.T) {
	if RenderCommandPalette(false, "add x") != "" {
		t.Fatal("expected inactive palette to render nothing")
	}
	if got := RenderCommandPalette(true, "add x"); got != "command: /add x" {
		t.Fatalf("unexpected palette: %q", got)
	}
	if RenderNotification("info", "  ") != "" {
		t.Fatal("expected blank notification to render nothing")
	}
	if got := RenderNotification("warn", "saved"); got != "notification: [WARN] saved" {
		t.Fatalf("unexpected notification: %q", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(SummaryData{
		Date:       "2024-06-04",
		Counts:     [3]int{1, 1, 0},
		InProgress: []TaskItemData{{Title: "Fix *bold* | pipe", Memo: "note"}},
		Weeks:      []WeekGroupData{{Key: "2024-22", Range: "6/2-6/8", Items: []TaskItemData{{Title: "Done", DoneAt: "6/3"}}}},
		Habits: HabitsPanelData{
			Percent: 100,
			Message: "Perfect! Give yourself credit",
			Items:   []HabitItemData{{Label: "Gym", Checked: true}},
			Week:    []StampData{{Label: "6/3", Percent: 100}},
		},
	})
	for _, want := range []string{
		"# Dayboard 2024-06-04",
		"| 1 | 1 | 0 |",
		`- [ ] Fix \*bold\* \| pipe - note`,
		"## Someday\n\n_Empty._",
		"### Week 2024-22 (6/2-6/8)",
		"- [x] Done _(done 6/3)_",
		"## Habits: 100%",
		"- [x] Gym",
		"| 100% | ",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in:\n%s", want, md)
		}
	}
}

func TestRenderMarkdownFallbacks(t *testing.T) {
	if RenderMarkdown("   ", 0) != "" {
		t.Fatal("expected blank markdown to render nothing")
	}
	out := RenderMarkdown("# Title\n\nbody text", 60)
	if !strings.Contains(out, "body") {
		t.Fatalf("expected rendered body, got %q", out)
	}
}
