package update

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/habits"
	"github.com/sandeepkv93/dayboard/internal/tasks"
)

const (
	timeLayout = "2006/01/02 15:04"
	// memoSeparator splits "title | memo" in the add input.
	memoSeparator = "|"
	hintLimit     = 5
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

// weekRange shows a Sunday-start week as "6/2-6/8".
func weekRange(start time.Time) string {
	if start.IsZero() {
		return ""
	}
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%d/%d-%d/%d", int(start.Month()), start.Day(), int(end.Month()), end.Day())
}

func splitMemo(raw string) (title, memo string) {
	title, memo, _ = strings.Cut(raw, memoSeparator)
	return strings.TrimSpace(title), strings.TrimSpace(memo)
}

// isStale reports errors caused by acting on a row that no longer exists.
// The UI drops them silently.
func isStale(err error) bool {
	return errors.Is(err, tasks.ErrTaskNotFound) ||
		errors.Is(err, tasks.ErrIndexOutOfRange) ||
		errors.Is(err, habits.ErrItemNotFound)
}
