package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/dayboard/internal/app"
	"github.com/sandeepkv93/dayboard/internal/model"
)

type View string

const (
	ViewInProgress View = "In progress"
	ViewSomeday    View = "Someday"
	ViewCompleted  View = "Completed"
	ViewHabits     View = "Habits"
)

var viewOrder = []View{ViewInProgress, ViewSomeday, ViewCompleted, ViewHabits}

// InputMode says what the shared text input is collecting.
type InputMode string

const (
	InputNone        InputMode = ""
	InputAddTask     InputMode = "add task"
	InputEditTask    InputMode = "edit title"
	InputEditMemo    InputMode = "edit memo"
	InputAddHabit    InputMode = "add habit"
	InputRenameHabit InputMode = "rename habit"
	InputTotalDays   InputMode = "100% days"
	InputStreak      InputMode = "streak"
)

type InputState struct {
	Mode     InputMode
	TargetID string
	List     model.List
	// Title carries the edited title into the memo step.
	Title string
	Memo  string
}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	InProgress string
	Someday    string
	Completed  string
	Habits     string
	Help       string
	Quit       string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	CurrentView   View
	Cursors       map[View]int
	Board         app.Board
	Input         InputState
	Palette       CommandPaletteState
	HelpVisible   bool
	Overlay       string
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error

	app *app.App
	now func() time.Time
	// Bubble components used for rich TUI controls
	textInput     textinput.Model
	commandInput  textinput.Model
	habitProgress progress.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// DayTickMsg wakes the model so a habit day rollover shows up without a
// keypress.
type DayTickMsg struct {
	At time.Time
}

type Option func(*Model)

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		InProgress: "1",
		Someday:    "2",
		Completed:  "3",
		Habits:     "4",
		Help:       "?",
		Quit:       "q",
	}
}

func NewModel(a *app.App, opts ...Option) Model {
	m := Model{
		CurrentView: ViewInProgress,
		Cursors:     make(map[View]int, len(viewOrder)),
		Keys:        DefaultKeyMap(),
		app:         a,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.initBubbleComponents()
	m.refresh()
	if err := a.LoadError(); err != nil {
		text := "stored data was unreadable, started fresh"
		if a.ReadOnly() {
			text = "could not read stored data, changes this session are not saved"
		}
		m.Status = StatusBar{Text: text, IsError: true}
		m.notify("Load", err.Error(), "error")
	}
	return m
}

func (m *Model) initBubbleComponents() {
	m.textInput = textinput.New()
	m.textInput.CharLimit = 200
	m.textInput.Width = 48

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.Placeholder = "add | habit | total | streak | week | show"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.habitProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	m.helpModel = help.New()
}

// refresh re-reads the board and keeps every cursor inside its list.
func (m *Model) refresh() {
	m.Board = m.app.Board()
	for _, v := range viewOrder {
		m.Cursors[v] = clamp(m.Cursors[v], m.rowCount(v))
	}
}

func (m Model) rowCount(v View) int {
	switch v {
	case ViewInProgress:
		return len(m.Board.InProgress)
	case ViewSomeday:
		return len(m.Board.Someday)
	case ViewCompleted:
		return len(m.completedRows())
	case ViewHabits:
		return len(m.Board.Habits.Items)
	default:
		return 0
	}
}

func (m Model) cursor() int {
	return m.Cursors[m.CurrentView]
}

func (m *Model) moveCursor(delta int) {
	m.Cursors[m.CurrentView] = clamp(m.Cursors[m.CurrentView]+delta, m.rowCount(m.CurrentView))
}

func (m Model) currentList() model.List {
	if m.CurrentView == ViewSomeday {
		return model.ListSomeday
	}
	return model.ListInProgress
}

func (m Model) currentTasks() []model.Task {
	if m.CurrentView == ViewSomeday {
		return m.Board.Someday
	}
	return m.Board.InProgress
}

func (m Model) selectedTask() (model.Task, bool) {
	items := m.currentTasks()
	c := m.cursor()
	if c < 0 || c >= len(items) {
		return model.Task{}, false
	}
	return items[c], true
}

func (m Model) selectedHabitID() string {
	items := m.Board.Habits.Items
	c := m.Cursors[ViewHabits]
	if c < 0 || c >= len(items) {
		return ""
	}
	return items[c].ID
}

// completedRow is a week header when TaskID is empty, a task otherwise.
type completedRow struct {
	WeekKey string
	TaskID  string
}

func (m Model) completedRows() []completedRow {
	var rows []completedRow
	for _, b := range m.Board.Completed {
		rows = append(rows, completedRow{WeekKey: b.Key})
		if !b.Expanded {
			continue
		}
		for _, t := range b.Tasks {
			rows = append(rows, completedRow{WeekKey: b.Key, TaskID: t.ID})
		}
	}
	return rows
}

func (m Model) selectedCompletedRow() (completedRow, bool) {
	rows := m.completedRows()
	c := m.Cursors[ViewCompleted]
	if c < 0 || c >= len(rows) {
		return completedRow{}, false
	}
	return rows[c], true
}
