// Package tasks implements the task lists: adding, completing, moving,
// editing and deleting tasks across in-progress, completed and someday.
package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/dayboard/internal/model"
)

var (
	ErrEmptyTitle      = errors.New("tasks: title is required")
	ErrTaskNotFound    = errors.New("tasks: task not found")
	ErrIndexOutOfRange = errors.New("tasks: index out of range")
)

const DefaultSuggestionLimit = 100

type Store struct {
	state  *model.State
	now    func() time.Time
	newID  func() string
	commit func()
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithCommit registers the hook run after every successful mutation.
func WithCommit(commit func()) Option {
	return func(s *Store) {
		if commit != nil {
			s.commit = commit
		}
	}
}

func NewStore(state *model.State, opts ...Option) *Store {
	s := &Store{
		state:  state,
		now:    time.Now,
		newID:  uuid.NewString,
		commit: func() {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add prepends a new task to the in-progress list.
func (s *Store) Add(title, memo string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, ErrEmptyTitle
	}
	t := model.Task{
		ID:      s.newID(),
		Title:   title,
		Memo:    strings.TrimSpace(memo),
		AddedAt: s.now(),
	}
	s.state.InProgress = append([]model.Task{t}, s.state.InProgress...)
	s.commit()
	return t, nil
}

// Complete moves a task from in-progress or someday to the front of the
// completed list and stamps its completion time.
func (s *Store) Complete(from model.List, id string) (model.Task, error) {
	if err := model.CheckTransition(from, model.ListCompleted); err != nil {
		return model.Task{}, err
	}
	src, err := s.state.Tasks(from)
	if err != nil {
		return model.Task{}, err
	}
	idx := indexOf(*src, id)
	if idx < 0 {
		return model.Task{}, fmt.Errorf("%w: %s in %s", ErrTaskNotFound, id, from)
	}
	t := (*src)[idx]
	*src = removeAt(*src, idx)
	done := s.now()
	t.CompletedAt = &done
	s.state.Completed = append([]model.Task{t}, s.state.Completed...)
	s.commit()
	return t, nil
}

func (s *Store) Delete(list model.List, id string) error {
	tasks, err := s.state.Tasks(list)
	if err != nil {
		return err
	}
	idx := indexOf(*tasks, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s in %s", ErrTaskNotFound, id, list)
	}
	*tasks = removeAt(*tasks, idx)
	s.commit()
	return nil
}

// Edit replaces title and memo as given. Callers reject blank titles.
func (s *Store) Edit(list model.List, id, title, memo string) error {
	tasks, err := s.state.Tasks(list)
	if err != nil {
		return err
	}
	idx := indexOf(*tasks, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s in %s", ErrTaskNotFound, id, list)
	}
	(*tasks)[idx].Title = title
	(*tasks)[idx].Memo = memo
	s.commit()
	return nil
}

// Move reorders within in-progress or someday, or moves a task between them.
// toIndex is clamped to the destination bounds.
func (s *Store) Move(from model.List, fromIndex int, to model.List, toIndex int) error {
	if err := model.CheckTransition(from, to); err != nil {
		return err
	}
	if to == model.ListCompleted {
		return fmt.Errorf("%w: use Complete to finish a task", model.ErrInvalidTransition)
	}
	src, _ := s.state.Tasks(from)
	if fromIndex < 0 || fromIndex >= len(*src) {
		return fmt.Errorf("%w: %d in %s", ErrIndexOutOfRange, fromIndex, from)
	}
	t := (*src)[fromIndex]
	*src = removeAt(*src, fromIndex)

	dst, _ := s.state.Tasks(to)
	toIndex = min(max(toIndex, 0), len(*dst))
	*dst = insertAt(*dst, toIndex, t)
	s.commit()
	return nil
}

func (s *Store) Find(list model.List, id string) (model.Task, bool) {
	tasks, err := s.state.Tasks(list)
	if err != nil {
		return model.Task{}, false
	}
	idx := indexOf(*tasks, id)
	if idx < 0 {
		return model.Task{}, false
	}
	return (*tasks)[idx], true
}

type Counts struct {
	InProgress int
	Completed  int
	Someday    int
}

func (s *Store) Counts() Counts {
	return Counts{
		InProgress: len(s.state.InProgress),
		Completed:  len(s.state.Completed),
		Someday:    len(s.state.Someday),
	}
}

// Suggestions lists distinct titles for autocomplete, in-progress first, then
// someday, then completed. A non-positive limit uses DefaultSuggestionLimit.
func (s *Store) Suggestions(limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, list := range [][]model.Task{s.state.InProgress, s.state.Someday, s.state.Completed} {
		for _, t := range list {
			if len(out) == limit {
				return out
			}
			if strings.TrimSpace(t.Title) == "" || seen[t.Title] {
				continue
			}
			seen[t.Title] = true
			out = append(out, t.Title)
		}
	}
	return out
}

// Match returns suggestions starting with prefix, case-insensitively.
func (s *Store) Match(prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}
	out := make([]string, 0)
	for _, title := range s.Suggestions(limit) {
		if strings.HasPrefix(strings.ToLower(title), prefix) && !strings.EqualFold(title, prefix) {
			out = append(out, title)
		}
	}
	return out
}

func indexOf(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func removeAt(tasks []model.Task, idx int) []model.Task {
	out := make([]model.Task, 0, len(tasks)-1)
	out = append(out, tasks[:idx]...)
	return append(out, tasks[idx+1:]...)
}

func insertAt(tasks []model.Task, idx int, t model.Task) []model.Task {
	out := make([]model.Task, 0, len(tasks)+1)
	out = append(out, tasks[:idx]...)
	out = append(out, t)
	return append(out, tasks[idx:]...)
}
