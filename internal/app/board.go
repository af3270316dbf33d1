package app

import (
	"slices"

	"github.com/sandeepkv93/dayboard/internal/completed"
	"github.com/sandeepkv93/dayboard/internal/habits"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/tasks"
)

// Board is everything the UI draws after a mutation.
type Board struct {
	InProgress  []model.Task
	Someday     []model.Task
	Completed   []completed.Bucket
	Counts      tasks.Counts
	Habits      habits.Summary
	Suggestions []string
}

// Board rolls the habit day over if needed and snapshots the state.
func (a *App) Board() Board {
	a.Habits.EnsureToday()
	buckets := completed.GroupByWeek(a.state.Completed, a.state.ExpandedWeeks)
	if a.opts.SortWeeks {
		completed.SortNewestFirst(buckets)
	}
	return Board{
		InProgress:  slices.Clone(a.state.InProgress),
		Someday:     slices.Clone(a.state.Someday),
		Completed:   buckets,
		Counts:      a.Tasks.Counts(),
		Habits:      a.Habits.Summary(),
		Suggestions: a.Tasks.Suggestions(a.opts.SuggestionLimit),
	}
}
