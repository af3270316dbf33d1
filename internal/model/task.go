package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidList       = errors.New("model: invalid task list")
	ErrInvalidTransition = errors.New("model: unsupported list transition")
)

// List names the collection a task lives in. List membership is the task's
// lifecycle stage.
type List string

const (
	ListInProgress List = "inProgress"
	ListCompleted  List = "completed"
	ListSomeday    List = "someday"
)

func (l List) IsValid() bool {
	switch l {
	case ListInProgress, ListCompleted, ListSomeday:
		return true
	default:
		return false
	}
}

// CanTransition reports whether a task may move from one list to another.
// Reordering inside in-progress or someday is a transition to the same list.
func CanTransition(from, to List) bool {
	switch from {
	case ListInProgress:
		return to == ListInProgress || to == ListSomeday || to == ListCompleted
	case ListSomeday:
		return to == ListSomeday || to == ListInProgress || to == ListCompleted
	default:
		return false
	}
}

func CheckTransition(from, to List) error {
	if !from.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidList, from)
	}
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidList, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

type Task struct {
	ID          string
	Title       string
	Memo        string
	AddedAt     time.Time
	CompletedAt *time.Time
}

// Validate checks a task against the list it is stored in.
func (t Task) Validate(in List) error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !in.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidList, in)
	}
	if t.AddedAt.IsZero() {
		return errors.New("model: task added_at is required")
	}
	if in == ListCompleted && t.CompletedAt == nil {
		return errors.New("model: completed_at is required for completed tasks")
	}
	if in != ListCompleted && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil outside the completed list")
	}
	return nil
}
