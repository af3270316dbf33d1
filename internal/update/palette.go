package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/views"
)

const overlayWidth = 56

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			t, err := m.app.Tasks.Add(a.Title, a.Memo)
			if err != nil {
				return commands.Result{}, err
			}
			m.CurrentView = ViewInProgress
			m.Cursors[ViewInProgress] = 0
			return commands.Result{Message: fmt.Sprintf("added: %s", t.Title)}, nil
		},
		Habit: func(h commands.HabitArgs) (commands.Result, error) {
			m.CurrentView = ViewHabits
			switch h.Action {
			case commands.HabitAdd:
				it, err := m.app.Habits.AddItem(h.Label)
				if err != nil {
					return commands.Result{}, err
				}
				return commands.Result{Message: fmt.Sprintf("habit added: %s (%s)", it.Label, it.ID)}, nil
			case commands.HabitRename:
				if err := m.app.Habits.EditItem(h.ID, h.Label); err != nil {
					return commands.Result{}, err
				}
				return commands.Result{Message: fmt.Sprintf("habit renamed: %s", h.Label)}, nil
			case commands.HabitRemove:
				if err := m.app.Habits.RemoveItem(h.ID); err != nil {
					return commands.Result{}, err
				}
				return commands.Result{Message: fmt.Sprintf("habit removed: %s", h.ID)}, nil
			case commands.HabitCheck:
				checked := !m.app.Habits.Checked(h.ID)
				if err := m.app.Habits.Toggle(h.ID, checked); err != nil {
					return commands.Result{}, err
				}
				return commands.Result{Message: fmt.Sprintf("habit %s checked=%t", h.ID, checked)}, nil
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown habit action: %s", h.Action)}
			}
		},
		Total: func(o commands.OverrideArgs) (commands.Result, error) {
			if err := m.app.Habits.SetTotalDaysOverride(o.Value); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: overrideText(InputTotalDays, o.Value)}, nil
		},
		Streak: func(o commands.OverrideArgs) (commands.Result, error) {
			if err := m.app.Habits.SetStreakOverride(o.Value); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: overrideText(InputStreak, o.Value)}, nil
		},
		Week: func(w commands.WeekArgs) (commands.Result, error) {
			if !m.hasWeek(w.Key) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "unknown week: " + w.Key,
				}
			}
			m.CurrentView = ViewCompleted
			state := "collapsed"
			if m.app.ToggleWeek(w.Key) {
				state = "expanded"
			}
			return commands.Result{Message: fmt.Sprintf("week %s %s", w.Key, state)}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			switch s.Subject {
			case "tasks":
				m.CurrentView = ViewInProgress
			case "someday":
				m.CurrentView = ViewSomeday
			case "completed":
				m.CurrentView = ViewCompleted
			case "habits":
				m.CurrentView = ViewHabits
			case "summary":
				m.Overlay = views.RenderMarkdown(views.SummaryMarkdown(SummaryData(m.app.Board())), overlayWidth)
				return commands.Result{Message: "summary shown, esc to close"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("show %s", s.Subject)}, nil
		},
	})
	m.refresh()
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else if ferr := m.app.FlushError(); ferr != nil {
		m.LastError = ferr
		m.Status = StatusBar{Text: "not saved: " + ferr.Error(), IsError: true}
		m.notify("Save failed", ferr.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

// hasWeek reports whether a completed bucket exists for key. Expansion state
// is only kept for weeks that have tasks.
func (m Model) hasWeek(key string) bool {
	for _, b := range m.Board.Completed {
		if b.Key == key {
			return true
		}
	}
	return false
}
