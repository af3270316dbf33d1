package tasks

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type fixture struct {
	state   *model.State
	store   *Store
	now     time.Time
	commits int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		state: model.NewState(),
		now:   time.Date(2024, 6, 3, 9, 0, 0, 0, time.Local),
	}
	n := 0
	f.store = NewStore(f.state,
		WithClock(func() time.Time { return f.now }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("t%d", n) }),
		WithCommit(func() { f.commits++ }),
	)
	return f
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func equalIDs(got []model.Task, want ...string) bool {
	g := ids(got)
	if len(g) != len(want) {
		return false
	}
	for i := range want {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func TestAddPrependsTrimmedTask(t *testing.T) {
	f := newFixture(t)
	first, err := f.store.Add("  Write report ", "  by friday ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.Title != "Write report" || first.Memo != "by friday" || !first.AddedAt.Equal(f.now) {
		t.Fatalf("unexpected task: %+v", first)
	}
	if _, err := f.store.Add("Second", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !equalIDs(f.state.InProgress, "t2", "t1") {
		t.Fatalf("expected newest first, got %v", ids(f.state.InProgress))
	}
	if f.commits != 2 {
		t.Fatalf("expected 2 commits, got %d", f.commits)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	f := newFixture(t)
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := f.store.Add(title, "memo"); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
	if len(f.state.InProgress) != 0 || f.commits != 0 {
		t.Fatal("expected no state change")
	}
}

func TestCompleteFromInProgressAndSomeday(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Add("a", "")
	b, _ := f.store.Add("b", "")
	if err := f.store.Move(model.ListInProgress, 0, model.ListSomeday, 0); err != nil {
		t.Fatalf("move: %v", err)
	}

	f.now = f.now.Add(time.Hour)
	done, err := f.store.Complete(model.ListInProgress, a.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(f.now) {
		t.Fatalf("expected completedAt=now, got %+v", done)
	}

	f.now = f.now.Add(time.Hour)
	if _, err := f.store.Complete(model.ListSomeday, b.ID); err != nil {
		t.Fatalf("complete from someday: %v", err)
	}
	if !equalIDs(f.state.Completed, b.ID, a.ID) {
		t.Fatalf("expected most recent first, got %v", ids(f.state.Completed))
	}
	if len(f.state.InProgress) != 0 || len(f.state.Someday) != 0 {
		t.Fatal("expected source lists to be empty")
	}
	if err := f.state.Validate(); err != nil {
		t.Fatalf("state invalid: %v", err)
	}
}

func TestCompleteGuards(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Add("a", "")
	before := f.commits
	if _, err := f.store.Complete(model.ListInProgress, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := f.store.Complete(model.ListSomeday, a.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound from wrong list, got %v", err)
	}
	if _, err := f.store.Complete(model.ListInProgress, a.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := f.store.Complete(model.ListCompleted, a.ID); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if f.commits != before+1 {
		t.Fatalf("expected one commit, got %d", f.commits-before)
	}
}

func TestDeleteFromAnyList(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Add("a", "")
	b, _ := f.store.Add("b", "")
	c, _ := f.store.Add("c", "")
	_ = f.store.Move(model.ListInProgress, 0, model.ListSomeday, 0)
	_, _ = f.store.Complete(model.ListInProgress, b.ID)

	for _, tc := range []struct {
		list model.List
		id   string
	}{
		{model.ListSomeday, c.ID},
		{model.ListCompleted, b.ID},
		{model.ListInProgress, a.ID},
	} {
		if err := f.store.Delete(tc.list, tc.id); err != nil {
			t.Fatalf("delete %s from %s: %v", tc.id, tc.list, err)
		}
	}
	if c := f.store.Counts(); c != (Counts{}) {
		t.Fatalf("expected empty lists, got %+v", c)
	}
	before := f.commits
	if err := f.store.Delete(model.ListInProgress, a.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if f.commits != before {
		t.Fatal("expected no commit for missing task")
	}
}

func TestEditInPlace(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Add("a", "")
	_, _ = f.store.Complete(model.ListInProgress, a.ID)
	if err := f.store.Edit(model.ListCompleted, a.ID, "renamed", " memo "); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, ok := f.store.Find(model.ListCompleted, a.ID)
	if !ok || got.Title != "renamed" || got.Memo != " memo " || got.CompletedAt == nil {
		t.Fatalf("unexpected edited task: %+v", got)
	}
	if err := f.store.Edit(model.ListInProgress, a.ID, "x", ""); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestMoveReorderAndClamp(t *testing.T) {
	f := newFixture(t)
	for _, title := range []string{"a", "b", "c", "d"} {
		_, _ = f.store.Add(title, "")
	}
	// in-progress is t4 t3 t2 t1
	if err := f.store.Move(model.ListInProgress, 0, model.ListInProgress, 2); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if !equalIDs(f.state.InProgress, "t3", "t2", "t4", "t1") {
		t.Fatalf("unexpected order: %v", ids(f.state.InProgress))
	}
	if err := f.store.Move(model.ListInProgress, 3, model.ListSomeday, 99); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := f.store.Move(model.ListInProgress, 0, model.ListSomeday, -5); err != nil {
		t.Fatalf("move: %v", err)
	}
	if !equalIDs(f.state.Someday, "t3", "t1") {
		t.Fatalf("unexpected someday: %v", ids(f.state.Someday))
	}
	if err := f.store.Move(model.ListSomeday, 1, model.ListInProgress, 1); err != nil {
		t.Fatalf("move back: %v", err)
	}
	if !equalIDs(f.state.InProgress, "t2", "t1", "t4") {
		t.Fatalf("unexpected in-progress: %v", ids(f.state.InProgress))
	}
}

func TestMoveGuards(t *testing.T) {
	f := newFixture(t)
	a, _ := f.store.Add("a", "")
	_, _ = f.store.Add("b", "")
	_, _ = f.store.Complete(model.ListInProgress, a.ID)
	before := f.commits

	cases := []struct {
		name    string
		from    model.List
		fromIdx int
		to      model.List
		wantErr error
	}{
		{"out of range", model.ListInProgress, 5, model.ListSomeday, ErrIndexOutOfRange},
		{"negative index", model.ListInProgress, -1, model.ListInProgress, ErrIndexOutOfRange},
		{"empty source", model.ListSomeday, 0, model.ListInProgress, ErrIndexOutOfRange},
		{"into completed", model.ListInProgress, 0, model.ListCompleted, model.ErrInvalidTransition},
		{"out of completed", model.ListCompleted, 0, model.ListInProgress, model.ErrInvalidTransition},
		{"within completed", model.ListCompleted, 0, model.ListCompleted, model.ErrInvalidTransition},
		{"bad list", model.List("archive"), 0, model.ListInProgress, model.ErrInvalidList},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.store.Move(tc.from, tc.fromIdx, tc.to, 0)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
	if f.commits != before || len(f.state.InProgress) != 1 || len(f.state.Completed) != 1 {
		t.Fatal("expected guards to leave state untouched")
	}
}

func TestSuggestionsUniqueOrderedAndLimited(t *testing.T) {
	f := newFixture(t)
	f.state.InProgress = []model.Task{{ID: "1", Title: "Gym"}, {ID: "2", Title: "Read"}, {ID: "3", Title: "Gym"}}
	f.state.Someday = []model.Task{{ID: "4", Title: "Paint"}, {ID: "5", Title: " "}}
	f.state.Completed = []model.Task{{ID: "6", Title: "Read"}, {ID: "7", Title: "Run"}}

	got := f.store.Suggestions(0)
	want := []string{"Gym", "Read", "Paint", "Run"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := f.store.Suggestions(2); len(got) != 2 || got[1] != "Read" {
		t.Fatalf("unexpected limited suggestions: %v", got)
	}
	if got := f.store.Match("r", 0); fmt.Sprint(got) != fmt.Sprint([]string{"Read", "Run"}) {
		t.Fatalf("unexpected matches: %v", got)
	}
	if got := f.store.Match("gym", 0); len(got) != 0 {
		t.Fatalf("expected exact match to be excluded, got %v", got)
	}
}

func TestSuggestionsCapAtDefault(t *testing.T) {
	f := newFixture(t)
	for i := range 150 {
		f.state.Completed = append(f.state.Completed, model.Task{ID: fmt.Sprint(i), Title: fmt.Sprintf("task %d", i)})
	}
	if got := f.store.Suggestions(0); len(got) != DefaultSuggestionLimit {
		t.Fatalf("expected %d suggestions, got %d", DefaultSuggestionLimit, len(got))
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := NewStore(model.NewState())
	a, _ := s.Add("a", "")
	b, _ := s.Add("b", "")
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected unique generated ids, got %q and %q", a.ID, b.ID)
	}
}
