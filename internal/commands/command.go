package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sandeepkv93/dayboard/internal/habits"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeHabit  Type = "habit"
	TypeTotal  Type = "total"
	TypeStreak Type = "streak"
	TypeWeek   Type = "week"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// memoSeparator splits "add <title> | <memo>".
const memoSeparator = "|"

type AddArgs struct {
	Title string
	Memo  string
}

type HabitAction string

const (
	HabitAdd    HabitAction = "add"
	HabitRename HabitAction = "rename"
	HabitRemove HabitAction = "rm"
	HabitCheck  HabitAction = "check"
)

type HabitArgs struct {
	Action HabitAction
	ID     string
	Label  string
}

// OverrideArgs sets or, with a nil Value, clears a displayed statistic.
type OverrideArgs struct {
	Value *int
}

type WeekArgs struct {
	Key string
}

type ShowArgs struct {
	Subject string
}

var showSubjects = map[string]bool{
	"tasks":     true,
	"someday":   true,
	"completed": true,
	"habits":    true,
	"summary":   true,
}

var weekKeyPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Habit    *HabitArgs
	Override *OverrideArgs
	Week     *WeekArgs
	Show     *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	rest := strings.TrimSpace(raw[len(parts[0]):])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeHabit:
		return parseHabit(input, args)
	case TypeTotal, TypeStreak:
		return parseOverride(input, Type(head), rest)
	case TypeWeek:
		return parseWeek(input, args)
	case TypeShow:
		return parseShow(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, rest string) (Command, error) {
	title, memo, _ := strings.Cut(rest, memoSeparator)
	title = strings.TrimSpace(title)
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title, Memo: strings.TrimSpace(memo)}}, nil
}

func parseHabit(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit requires add, rename, rm or check"}
	}
	action := HabitAction(strings.ToLower(args[0]))
	args = args[1:]
	out := HabitArgs{Action: action}
	switch action {
	case HabitAdd:
		out.Label = strings.Join(args, " ")
		if out.Label == "" {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit add requires a label"}
		}
	case HabitRename:
		if len(args) < 2 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "habit rename requires an id and a label"}
		}
		out.ID = args[0]
		out.Label = strings.Join(args[1:], " ")
	case HabitRemove, HabitCheck:
		if len(args) != 1 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("habit %s requires an id", action)}
		}
		out.ID = args[0]
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown habit action: %s", action)}
	}
	return Command{Type: TypeHabit, Raw: raw, Habit: &out}, nil
}

func parseOverride(raw string, typ Type, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a number or clear", typ)}
	}
	v, err := habits.ParseOverride(rest)
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	return Command{Type: typ, Raw: raw, Override: &OverrideArgs{Value: v}}, nil
}

func parseWeek(raw string, args []string) (Command, error) {
	if len(args) != 1 || !weekKeyPattern.MatchString(args[0]) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "week requires a key like 2024-05"}
	}
	return Command{Type: TypeWeek, Raw: raw, Week: &WeekArgs{Key: args[0]}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	subject := strings.ToLower(args[0])
	if !showSubjects[subject] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown subject: %s", subject)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: subject}}, nil
}
