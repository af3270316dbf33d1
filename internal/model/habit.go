package model

import (
	"errors"
	"strings"
)

type HabitItem struct {
	ID    string
	Label string
	// LegacyKey maps check data saved before items had ids.
	LegacyKey string
}

func (h HabitItem) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("model: habit id is required")
	}
	if strings.TrimSpace(h.Label) == "" {
		return errors.New("model: habit label is required")
	}
	return nil
}

// Overrides replace a displayed statistic without touching history. Nil means
// the computed value is shown.
type Overrides struct {
	TotalDays *int
	Streak    *int
}

type HabitState struct {
	// DateKey is the day the current checks apply to; empty until first use.
	DateKey       string
	Items         []HabitItem
	Checks        map[string]bool
	AchievedDates []string
	DailyPercents map[string]int
	Overrides     Overrides
}

func NewHabitState() HabitState {
	return HabitState{
		Items:         []HabitItem{},
		Checks:        make(map[string]bool),
		AchievedDates: []string{},
		DailyPercents: make(map[string]int),
	}
}

func DefaultHabitItems() []HabitItem {
	return []HabitItem{
		{ID: "overseas", Label: "Read an overseas article", LegacyKey: "overseas"},
		{ID: "audio", Label: "Record the audio show", LegacyKey: "audio"},
		{ID: "gym", Label: "Go to the gym", LegacyKey: "gym"},
		{ID: "nc1", Label: "Native Camp lesson 1", LegacyKey: "nc1"},
		{ID: "nc2", Label: "Native Camp lesson 2", LegacyKey: "nc2"},
	}
}

// SeedDefaultItems installs the default items when there are none and maps any
// legacy checks, keyed by LegacyKey (or id), onto the new id-keyed map. It
// reports whether anything changed.
func (h *HabitState) SeedDefaultItems() bool {
	if len(h.Items) > 0 {
		return false
	}
	legacy := h.Checks
	h.Items = DefaultHabitItems()
	h.Checks = make(map[string]bool, len(h.Items))
	for _, it := range h.Items {
		key := it.LegacyKey
		if key == "" {
			key = it.ID
		}
		h.Checks[it.ID] = legacy[key]
	}
	return true
}

func (h HabitState) FindItem(id string) (int, bool) {
	for i, it := range h.Items {
		if it.ID == id {
			return i, true
		}
	}
	return -1, false
}
