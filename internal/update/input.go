package update

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/habits"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/tasks"
)

func (m *Model) startInput(mode InputMode, targetID string, list model.List, value string) {
	m.Input = InputState{Mode: mode, TargetID: targetID, List: list}
	m.textInput.Prompt = "> "
	m.textInput.Placeholder = placeholderFor(mode)
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.textInput.Focus()
	m.Status = StatusBar{Text: fmt.Sprintf("%s: enter to save, esc to cancel", mode)}
}

func placeholderFor(mode InputMode) string {
	switch mode {
	case InputAddTask:
		return "title | memo"
	case InputEditTask:
		return "title"
	case InputEditMemo:
		return "memo, blank for none"
	case InputAddHabit, InputRenameHabit:
		return "habit label"
	case InputTotalDays, InputStreak:
		return "number, blank to clear"
	default:
		return ""
	}
}

func (m *Model) closeInput() {
	m.Input = InputState{}
	m.textInput.SetValue("")
	m.textInput.Blur()
}

func (m Model) handleInputKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeInput()
		m.Status = StatusBar{Text: "cancelled"}
	case "enter":
		m = m.submitInput()
	default:
		if msg.Type == tea.KeyRunes {
			m.textInput.SetValue(m.textInput.Value() + string(msg.Runes))
			return m
		}
		if msg.Type == tea.KeySpace {
			m.textInput.SetValue(m.textInput.Value() + " ")
			return m
		}
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		_ = cmd
	}
	return m
}

// submitInput applies the input. A rejected value keeps the input open so the
// user can fix it.
func (m Model) submitInput() Model {
	in := m.Input
	raw := m.textInput.Value()
	var (
		text string
		err  error
	)
	switch in.Mode {
	case InputAddTask:
		title, memo := splitMemo(raw)
		var t model.Task
		t, err = m.app.Tasks.Add(title, memo)
		text = "added: " + t.Title
	case InputEditTask:
		title := strings.TrimSpace(raw)
		if title == "" {
			err = tasks.ErrEmptyTitle
			break
		}
		m.startInput(InputEditMemo, in.TargetID, in.List, in.Memo)
		m.Input.Title = title
		return m
	case InputEditMemo:
		err = m.app.Tasks.Edit(in.List, in.TargetID, in.Title, strings.TrimSpace(raw))
		text = "updated: " + in.Title
	case InputAddHabit:
		var it model.HabitItem
		it, err = m.app.Habits.AddItem(raw)
		text = "habit added: " + it.Label
	case InputRenameHabit:
		err = m.app.Habits.EditItem(in.TargetID, raw)
		text = "habit renamed"
	case InputTotalDays, InputStreak:
		var n *int
		n, err = habits.ParseOverride(raw)
		if err != nil {
			break
		}
		if in.Mode == InputTotalDays {
			err = m.app.Habits.SetTotalDaysOverride(n)
		} else {
			err = m.app.Habits.SetStreakOverride(n)
		}
		text = overrideText(in.Mode, n)
	}
	if err != nil && !isStale(err) {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.closeInput()
	m.afterChange(text, err)
	return m
}

func overrideText(mode InputMode, n *int) string {
	if n == nil {
		return fmt.Sprintf("%s override cleared", mode)
	}
	return fmt.Sprintf("%s set to %s", mode, strconv.Itoa(*n))
}

// afterChange re-reads the board after a mutation and reports the outcome.
// Stale-row errors leave the status alone.
func (m *Model) afterChange(text string, err error) {
	m.refresh()
	switch {
	case err != nil && isStale(err):
		return
	case err != nil:
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	if ferr := m.app.FlushError(); ferr != nil {
		m.LastError = ferr
		m.Status = StatusBar{Text: "not saved: " + ferr.Error(), IsError: true}
		m.notify("Save failed", ferr.Error(), "error")
		return
	}
	m.Status = StatusBar{Text: text}
}
