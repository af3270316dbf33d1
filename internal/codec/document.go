package codec

// SchemaVersion is written into every encoded document. Documents without a
// version field predate versioning and are treated as version 0.
const SchemaVersion = 1

type Document struct {
	Version       int             `json:"version"`
	InProgress    []TaskRecord    `json:"inProgress"`
	Completed     []TaskRecord    `json:"completed"`
	Someday       []TaskRecord    `json:"someday"`
	ExpandedWeeks map[string]bool `json:"expandedWeeks"`
	Habits        HabitsRecord    `json:"habits"`
}

type TaskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Memo        string `json:"memo"`
	AddedAt     string `json:"addedAt"`
	CompletedAt string `json:"completedAt,omitempty"`
}

type HabitsRecord struct {
	DateKey       *string         `json:"dateKey"`
	Items         []ItemRecord    `json:"items"`
	Checks        map[string]bool `json:"checks"`
	AchievedDates []string        `json:"achievedDates"`
	DailyPercents map[string]int  `json:"dailyPercents"`
	Overrides     OverridesRecord `json:"overrides"`
}

type ItemRecord struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	LegacyKey string `json:"legacyKey,omitempty"`
}

type OverridesRecord struct {
	TotalDays *int `json:"totalDays"`
	Streak    *int `json:"streak"`
}
