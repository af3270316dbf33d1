package model

import "fmt"

// State is the whole application state. One instance is created by the
// application root and handed to every component that reads or mutates it.
type State struct {
	InProgress    []Task
	Completed     []Task
	Someday       []Task
	ExpandedWeeks map[string]bool
	Habits        HabitState
}

func NewState() *State {
	return &State{
		InProgress:    []Task{},
		Completed:     []Task{},
		Someday:       []Task{},
		ExpandedWeeks: make(map[string]bool),
		Habits:        NewHabitState(),
	}
}

// Tasks returns a pointer to the slice backing the named list.
func (s *State) Tasks(l List) (*[]Task, error) {
	switch l {
	case ListInProgress:
		return &s.InProgress, nil
	case ListCompleted:
		return &s.Completed, nil
	case ListSomeday:
		return &s.Someday, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidList, l)
	}
}

// Validate checks every task against its list and that no id appears twice.
func (s *State) Validate() error {
	seen := make(map[string]List)
	for _, l := range []List{ListInProgress, ListCompleted, ListSomeday} {
		tasks, _ := s.Tasks(l)
		for _, t := range *tasks {
			if err := t.Validate(l); err != nil {
				return fmt.Errorf("%s task %q: %w", l, t.ID, err)
			}
			if prev, dup := seen[t.ID]; dup {
				return fmt.Errorf("model: task %q appears in %s and %s", t.ID, prev, l)
			}
			seen[t.ID] = l
		}
	}
	for _, it := range s.Habits.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}
