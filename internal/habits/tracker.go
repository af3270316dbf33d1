// Package habits tracks the daily habit checklist: the day's checks, the
// per-day completion percent history, streaks and display overrides.
package habits

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/dayboard/internal/calendar"
	"github.com/sandeepkv93/dayboard/internal/model"
)

var (
	ErrEmptyLabel      = errors.New("habits: label is required")
	ErrItemNotFound    = errors.New("habits: item not found")
	ErrInvalidOverride = errors.New("habits: override must be a non-negative integer")
)

const itemIDPrefix = "h_"

type Tracker struct {
	state  *model.HabitState
	now    func() time.Time
	newID  func() string
	commit func()
}

type Option func(*Tracker)

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(t *Tracker) {
		if newID != nil {
			t.newID = newID
		}
	}
}

func WithCommit(commit func()) Option {
	return func(t *Tracker) {
		if commit != nil {
			t.commit = commit
		}
	}
}

func NewTracker(state *model.HabitState, opts ...Option) *Tracker {
	t := &Tracker{
		state:  state,
		now:    time.Now,
		newID:  uuid.NewString,
		commit: func() {},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.state.Checks == nil {
		t.state.Checks = make(map[string]bool)
	}
	if t.state.DailyPercents == nil {
		t.state.DailyPercents = make(map[string]int)
	}
	return t
}

func (t *Tracker) today() string {
	return calendar.Today(t.now())
}

// EnsureItems seeds the default items when the list is empty.
func (t *Tracker) EnsureItems() bool {
	if !t.state.SeedDefaultItems() {
		return false
	}
	t.commit()
	return true
}

// EnsureToday starts a fresh checklist when the stored day is not today.
// History is kept. It reports whether a rollover happened.
func (t *Tracker) EnsureToday() bool {
	t.EnsureItems()
	today := t.today()
	if t.state.DateKey == today {
		return false
	}
	fresh := make(map[string]bool, len(t.state.Items))
	for _, it := range t.state.Items {
		fresh[it.ID] = false
	}
	t.state.Checks = fresh
	t.state.DateKey = today
	t.commit()
	return true
}

func (t *Tracker) Toggle(itemID string, checked bool) error {
	t.EnsureToday()
	if _, ok := t.state.FindItem(itemID); !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	t.state.Checks[itemID] = checked
	t.RecomputeAchievement()
	t.commit()
	return nil
}

func (t *Tracker) Checked(itemID string) bool {
	return t.state.Checks[itemID]
}

// Percent is the rounded share of checked items, 0 when there are none.
func (t *Tracker) Percent() int {
	items := t.state.Items
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, it := range items {
		if t.state.Checks[it.ID] {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

// RecomputeAchievement records the current percent for DateKey and keeps
// AchievedDates in step with it.
func (t *Tracker) RecomputeAchievement() {
	key := t.state.DateKey
	if key == "" {
		return
	}
	p := t.Percent()
	t.state.DailyPercents[key] = p
	idx := slices.Index(t.state.AchievedDates, key)
	switch {
	case p == 100 && idx < 0:
		t.state.AchievedDates = append(t.state.AchievedDates, key)
	case p < 100 && idx >= 0:
		t.state.AchievedDates = slices.Delete(t.state.AchievedDates, idx, idx+1)
	}
}

// Streak counts consecutive 100% days ending today, or ending yesterday when
// today is not complete yet.
func (t *Tracker) Streak() int {
	return streakFrom(t.state.DailyPercents, t.today())
}

func streakFrom(percents map[string]int, today string) int {
	key := today
	if percents[today] != 100 {
		prev, ok := calendar.AddDays(today, -1)
		if !ok {
			return 0
		}
		key = prev
	}
	streak := 0
	for percents[key] == 100 {
		streak++
		prev, ok := calendar.AddDays(key, -1)
		if !ok {
			break
		}
		key = prev
	}
	return streak
}

func (t *Tracker) TotalAchievedDays() int {
	total := 0
	for _, p := range t.state.DailyPercents {
		if p == 100 {
			total++
		}
	}
	return total
}

func (t *Tracker) DisplayedTotalDays() int {
	if v := t.state.Overrides.TotalDays; v != nil {
		return *v
	}
	return t.TotalAchievedDays()
}

func (t *Tracker) DisplayedStreak() int {
	if v := t.state.Overrides.Streak; v != nil {
		return *v
	}
	return t.Streak()
}

func (t *Tracker) AddItem(label string) (model.HabitItem, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.HabitItem{}, ErrEmptyLabel
	}
	t.EnsureToday()
	it := model.HabitItem{ID: itemIDPrefix + t.newID(), Label: label}
	t.state.Items = append(t.state.Items, it)
	t.state.Checks[it.ID] = false
	t.RecomputeAchievement()
	t.commit()
	return it, nil
}

// EditItem renames an item. Checks and history are untouched.
func (t *Tracker) EditItem(id, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	idx, ok := t.state.FindItem(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	t.state.Items[idx].Label = label
	t.commit()
	return nil
}

func (t *Tracker) RemoveItem(id string) error {
	t.EnsureToday()
	idx, ok := t.state.FindItem(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	t.state.Items = slices.Delete(t.state.Items, idx, idx+1)
	delete(t.state.Checks, id)
	t.RecomputeAchievement()
	t.commit()
	return nil
}

// SetTotalDaysOverride replaces the displayed total. Nil clears it.
func (t *Tracker) SetTotalDaysOverride(n *int) error {
	v, err := checkOverride(n)
	if err != nil {
		return err
	}
	t.state.Overrides.TotalDays = v
	t.commit()
	return nil
}

// SetStreakOverride replaces the displayed streak. Nil clears it.
func (t *Tracker) SetStreakOverride(n *int) error {
	v, err := checkOverride(n)
	if err != nil {
		return err
	}
	t.state.Overrides.Streak = v
	t.commit()
	return nil
}

func checkOverride(n *int) (*int, error) {
	if n == nil {
		return nil, nil
	}
	if *n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOverride, *n)
	}
	v := *n
	return &v, nil
}

// ParseOverride reads an override typed by the user. Blank text or "clear"
// means no override; "12", " 12 " and "12.0" mean 12.
func ParseOverride(text string) (*int, error) {
	s := strings.TrimSpace(text)
	if s == "" || strings.EqualFold(s, "clear") {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOverride, text)
	}
	n := int(f)
	return &n, nil
}

// SeedYesterdayIfEmpty marks yesterday as a 100% day when there is no history
// at all and today is not complete. It reports whether it wrote anything.
func (t *Tracker) SeedYesterdayIfEmpty() bool {
	today := t.today()
	if t.TotalAchievedDays() != 0 || t.Streak() != 0 || t.state.DailyPercents[today] == 100 {
		return false
	}
	yesterday, ok := calendar.AddDays(today, -1)
	if !ok {
		return false
	}
	t.state.DailyPercents[yesterday] = 100
	t.commit()
	return true
}
