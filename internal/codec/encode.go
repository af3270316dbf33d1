package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// timeLayout matches the millisecond ISO-8601 shape browsers produce.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func toRecords(tasks []model.Task) []TaskRecord {
	out := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		rec := TaskRecord{
			ID:      t.ID,
			Title:   t.Title,
			Memo:    t.Memo,
			AddedAt: formatTime(t.AddedAt),
		}
		if t.CompletedAt != nil {
			rec.CompletedAt = formatTime(*t.CompletedAt)
		}
		out = append(out, rec)
	}
	return out
}

func intPtr(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

// ToDocument snapshots the state into its persisted shape.
func ToDocument(s *model.State) Document {
	h := s.Habits
	doc := Document{
		Version:       SchemaVersion,
		InProgress:    toRecords(s.InProgress),
		Completed:     toRecords(s.Completed),
		Someday:       toRecords(s.Someday),
		ExpandedWeeks: make(map[string]bool, len(s.ExpandedWeeks)),
		Habits: HabitsRecord{
			Items:         make([]ItemRecord, 0, len(h.Items)),
			Checks:        make(map[string]bool, len(h.Checks)),
			AchievedDates: append([]string{}, h.AchievedDates...),
			DailyPercents: make(map[string]int, len(h.DailyPercents)),
			Overrides: OverridesRecord{
				TotalDays: intPtr(h.Overrides.TotalDays),
				Streak:    intPtr(h.Overrides.Streak),
			},
		},
	}
	for k, v := range s.ExpandedWeeks {
		doc.ExpandedWeeks[k] = v
	}
	if h.DateKey != "" {
		key := h.DateKey
		doc.Habits.DateKey = &key
	}
	for _, it := range h.Items {
		doc.Habits.Items = append(doc.Habits.Items, ItemRecord{ID: it.ID, Label: it.Label, LegacyKey: it.LegacyKey})
	}
	for k, v := range h.Checks {
		doc.Habits.Checks[k] = v
	}
	for k, v := range h.DailyPercents {
		doc.Habits.DailyPercents[k] = v
	}
	return doc
}

func Encode(s *model.State) ([]byte, error) {
	raw, err := json.Marshal(ToDocument(s))
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return raw, nil
}

// EncodeIndent is Encode with two-space indentation, for export.
func EncodeIndent(s *model.State) ([]byte, error) {
	raw, err := json.MarshalIndent(ToDocument(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return raw, nil
}
