// Package completed groups finished tasks into Sunday-start weeks for display.
package completed

import (
	"sort"
	"time"

	"github.com/sandeepkv93/dayboard/internal/calendar"
	"github.com/sandeepkv93/dayboard/internal/model"
)

type Bucket struct {
	Key      string
	Start    time.Time
	Tasks    []model.Task
	Expanded bool
}

func completedAt(t model.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.AddedAt
}

// GroupByWeek buckets tasks by week key in the order each key is first seen.
// Task order inside a bucket follows the input.
func GroupByWeek(tasks []model.Task, expanded map[string]bool) []Bucket {
	out := make([]Bucket, 0)
	index := make(map[string]int)
	for _, t := range tasks {
		at := completedAt(t)
		key := calendar.WeekKey(at)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, Bucket{
				Key:      key,
				Start:    calendar.StartOfSundayWeek(at),
				Expanded: expanded[key],
			})
		}
		out[i].Tasks = append(out[i].Tasks, t)
	}
	return out
}

// Toggle flips the expansion flag for key and returns the new value.
func Toggle(expanded map[string]bool, key string) bool {
	expanded[key] = !expanded[key]
	return expanded[key]
}

// SortNewestFirst orders buckets by week key, latest week first.
func SortNewestFirst(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Key > buckets[j].Key
	})
}
