package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Habit  func(HabitArgs) (Result, error)
	Total  func(OverrideArgs) (Result, error)
	Streak func(OverrideArgs) (Result, error)
	Week   func(WeekArgs) (Result, error)
	Show   func(ShowArgs) (Result, error)
}

func missing(name string) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: name + " handler not configured"}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing("add")
		}
		return handlers.Add(*cmd.Add)
	case TypeHabit:
		if handlers.Habit == nil {
			return Result{}, missing("habit")
		}
		return handlers.Habit(*cmd.Habit)
	case TypeTotal:
		if handlers.Total == nil {
			return Result{}, missing("total")
		}
		return handlers.Total(*cmd.Override)
	case TypeStreak:
		if handlers.Streak == nil {
			return Result{}, missing("streak")
		}
		return handlers.Streak(*cmd.Override)
	case TypeWeek:
		if handlers.Week == nil {
			return Result{}, missing("week")
		}
		return handlers.Week(*cmd.Week)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, missing("show")
		}
		return handlers.Show(*cmd.Show)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
