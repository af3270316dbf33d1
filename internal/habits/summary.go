package habits

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/dayboard/internal/calendar"
)

// DayStamp is one day of the Monday-start weekly view.
type DayStamp struct {
	Key     string
	Label   string
	Percent int
	Today   bool
}

func (d DayStamp) Full() bool {
	return d.Percent == 100
}

// Week returns Monday through Sunday of the current week. Days without a
// recorded percent show 0.
func (t *Tracker) Week() []DayStamp {
	now := t.now()
	today := calendar.Key(now)
	monday := calendar.StartOfMondayWeek(now)
	out := make([]DayStamp, 0, 7)
	for i := range 7 {
		d := monday.AddDate(0, 0, i)
		key := calendar.Key(d)
		out = append(out, DayStamp{
			Key:     key,
			Label:   fmt.Sprintf("%d/%d", int(d.Month()), d.Day()),
			Percent: t.state.DailyPercents[key],
			Today:   key == today,
		})
	}
	return out
}

// Message picks the encouragement line for a percent.
func Message(percent int) string {
	switch {
	case percent >= 100:
		return "Perfect! Give yourself credit"
	case percent >= 75:
		return "Almost there, keep going"
	case percent >= 50:
		return "Halfway done, build momentum"
	case percent >= 25:
		return "One step at a time"
	default:
		return "Let's stack up today"
	}
}

func (t *Tracker) Message() string {
	return Message(t.Percent())
}

type ItemStatus struct {
	ID      string
	Label   string
	Checked bool
}

type Summary struct {
	DateKey        string
	Percent        int
	Message        string
	Streak         int
	TotalDays      int
	StreakOverride bool
	TotalOverride  bool
	Items          []ItemStatus
	Week           []DayStamp
	GeneratedAt    time.Time
}

// Summary collects everything the habit panel shows. It does not roll the
// day over; callers run EnsureToday first.
func (t *Tracker) Summary() Summary {
	p := t.Percent()
	items := make([]ItemStatus, 0, len(t.state.Items))
	for _, it := range t.state.Items {
		items = append(items, ItemStatus{ID: it.ID, Label: it.Label, Checked: t.state.Checks[it.ID]})
	}
	return Summary{
		DateKey:        t.state.DateKey,
		Percent:        p,
		Message:        Message(p),
		Streak:         t.DisplayedStreak(),
		TotalDays:      t.DisplayedTotalDays(),
		StreakOverride: t.state.Overrides.Streak != nil,
		TotalOverride:  t.state.Overrides.TotalDays != nil,
		Items:          items,
		Week:           t.Week(),
		GeneratedAt:    t.now(),
	}
}
