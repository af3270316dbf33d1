package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

var ErrMalformedDocument = errors.New("codec: malformed state document")

const untitled = "Untitled"

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Options carries what decoding needs from its caller: the time used when a
// timestamp is unusable and the id generator for records that lost their id.
type Options struct {
	Now   time.Time
	NewID func() string
}

// Decode rebuilds state from a stored document. Only a document that is not a
// JSON object fails as a whole; then the empty state is returned with the
// error. Every field falls back to its own default when it is missing or has
// the wrong shape, and schema migrations run before returning.
func Decode(raw []byte, opts Options) (*model.State, error) {
	state := model.NewState()
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(raw), &top); err != nil || top == nil {
		if err == nil {
			err = errors.New("document is null")
		}
		return state, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	version := 0
	if v, ok := asInt(decodeAny(top["version"])); ok && v > 0 {
		version = v
	}

	seen := make(map[string]bool)
	state.InProgress = decodeTasks(top["inProgress"], model.ListInProgress, opts, seen)
	state.Completed = decodeTasks(top["completed"], model.ListCompleted, opts, seen)
	state.Someday = decodeTasks(top["someday"], model.ListSomeday, opts, seen)

	if weeks, ok := decodeAny(top["expandedWeeks"]).(map[string]any); ok {
		for k, v := range weeks {
			state.ExpandedWeeks[k] = truthy(v)
		}
	}

	if habits, ok := decodeAny(top["habits"]).(map[string]any); ok && len(habits) > 0 {
		state.Habits = decodeHabits(habits)
	}

	Migrate(state, version)
	return state, nil
}

func decodeAny(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func decodeTasks(raw json.RawMessage, list model.List, opts Options, seen map[string]bool) []model.Task {
	out := []model.Task{}
	items, ok := decodeAny(raw).([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		t := model.Task{
			ID:    stringOf(rec["id"]),
			Title: stringOf(rec["title"]),
			Memo:  stringOf(rec["memo"]),
		}
		if t.ID == "" || seen[t.ID] {
			t.ID = newID(opts)
		}
		seen[t.ID] = true
		if strings.TrimSpace(t.Title) == "" {
			t.Title = untitled
		}
		added, ok := parseTime(rec["addedAt"])
		if !ok {
			added = opts.Now
		}
		t.AddedAt = added
		if list == model.ListCompleted {
			done, ok := parseTime(rec["completedAt"])
			if !ok {
				done = added
			}
			t.CompletedAt = &done
		}
		out = append(out, t)
	}
	return out
}

func newID(opts Options) string {
	if opts.NewID != nil {
		return opts.NewID()
	}
	return strconv.FormatInt(time.Now().UnixNano(), 36)
}

func decodeHabits(rec map[string]any) model.HabitState {
	h := model.NewHabitState()
	if key, ok := rec["dateKey"].(string); ok {
		h.DateKey = key
	}

	if items, ok := rec["items"].([]any); ok {
		ids := make(map[string]bool)
		for _, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			it := model.HabitItem{ID: stringOf(obj["id"]), Label: stringOf(obj["label"])}
			if lk, ok := obj["legacyKey"]; ok && lk != nil {
				it.LegacyKey = stringOf(lk)
			}
			if it.ID == "" || it.Label == "" || ids[it.ID] {
				continue
			}
			ids[it.ID] = true
			h.Items = append(h.Items, it)
		}
	}

	if checks, ok := rec["checks"].(map[string]any); ok {
		for k, v := range checks {
			h.Checks[k] = truthy(v)
		}
	}

	if dates, ok := rec["achievedDates"].([]any); ok {
		for _, d := range dates {
			if s, ok := d.(string); ok {
				h.AchievedDates = append(h.AchievedDates, s)
			}
		}
	}

	if percents, ok := rec["dailyPercents"].(map[string]any); ok {
		for k, v := range percents {
			n, ok := asInt(v)
			if !ok || n < 0 || n > 100 {
				continue
			}
			h.DailyPercents[k] = n
		}
	}

	if ov, ok := rec["overrides"].(map[string]any); ok {
		h.Overrides.TotalDays = overrideOf(ov["totalDays"])
		h.Overrides.Streak = overrideOf(ov["streak"])
	}
	return h
}

func overrideOf(v any) *int {
	n, ok := asInt(v)
	if !ok || n < 0 {
		return nil
	}
	return &n
}

// asInt accepts only JSON numbers with no fractional part.
func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func stringOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}

// parseTime reads ISO-8601 strings (zoned or local) and epoch milliseconds.
// The result is in local time so calendar bucketing sees the user's day.
func parseTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range parseLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t.Local(), true
			}
		}
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(x)).Local(), true
	}
	return time.Time{}, false
}
