package codec

import "github.com/sandeepkv93/dayboard/internal/model"

type migration struct {
	to    int
	name  string
	apply func(*model.State)
}

// migrations run in order for every document older than their target
// version. Append new entries when SchemaVersion is bumped.
var migrations = []migration{
	{to: 1, name: "legacy-habit-checks", apply: migrateLegacyChecks},
}

// Migrate upgrades state decoded from a document of the given version and
// returns the resulting version.
func Migrate(s *model.State, from int) int {
	for _, m := range migrations {
		if from < m.to {
			m.apply(s)
			from = m.to
		}
	}
	return from
}

// Unversioned documents kept habit checks keyed by fixed names and had no
// item list; the default items carry those names as LegacyKey.
func migrateLegacyChecks(s *model.State) {
	s.Habits.SeedDefaultItems()
}
