// Package app is the application root. It owns the single State, loads it
// from storage, writes it back after every mutation and serves the read
// model the UI renders.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sandeepkv93/dayboard/internal/codec"
	"github.com/sandeepkv93/dayboard/internal/completed"
	"github.com/sandeepkv93/dayboard/internal/habits"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/storage"
	"github.com/sandeepkv93/dayboard/internal/tasks"
	pkgLog "github.com/sandeepkv93/dayboard/pkg/log"
)

const DefaultStateKey = "dayboard.state"

// ErrReadOnly is reported for every write in a session whose stored state
// could not be read. The unread document is never overwritten.
var ErrReadOnly = errors.New("app: stored state could not be read, changes are not saved")

type Options struct {
	Key             string
	SeedYesterday   bool
	SortWeeks       bool
	SuggestionLimit int
	Now             func() time.Time
	NewID           func() string
}

type App struct {
	ctx   context.Context
	kv    storage.KV
	l     pkgLog.Logger
	opts  Options
	state *model.State

	Tasks  *tasks.Store
	Habits *habits.Tracker

	mu       sync.Mutex
	flushErr error
	loadErr  error
	readOnly bool
}

// New loads state from kv and wires the task store and habit tracker to it.
// Unreadable or malformed stored data is logged and replaced by an empty
// state; it never fails startup.
func New(ctx context.Context, kv storage.KV, l pkgLog.Logger, opts Options) (*App, error) {
	if kv == nil {
		return nil, errors.New("app: nil store")
	}
	if l == nil {
		l = pkgLog.NewNop()
	}
	if opts.Key == "" {
		opts.Key = DefaultStateKey
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = tasks.DefaultSuggestionLimit
	}

	a := &App{ctx: ctx, kv: kv, l: l, opts: opts}
	a.state = a.load()
	a.Tasks = tasks.NewStore(a.state,
		tasks.WithClock(opts.Now),
		tasks.WithIDGenerator(opts.NewID),
		tasks.WithCommit(a.flush),
	)
	a.Habits = habits.NewTracker(&a.state.Habits,
		habits.WithClock(opts.Now),
		habits.WithIDGenerator(opts.NewID),
		habits.WithCommit(a.flush),
	)

	a.Habits.EnsureToday()
	if opts.SeedYesterday && a.Habits.SeedYesterdayIfEmpty() {
		a.l.Infof(ctx, "seeded yesterday as a full habit day")
	}
	return a, nil
}

func (a *App) load() *model.State {
	raw, err := a.kv.Get(a.ctx, a.opts.Key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.loadErr = err
			a.readOnly = true
			a.l.Warnf(a.ctx, "load state %q: %v", a.opts.Key, err)
		}
		return model.NewState()
	}
	state, err := codec.Decode([]byte(raw), codec.Options{Now: a.opts.Now(), NewID: a.opts.NewID})
	if err != nil {
		a.loadErr = err
		a.l.Warnf(a.ctx, "decode state %q: %v", a.opts.Key, err)
	}
	a.l.Debugf(a.ctx, "loaded state: %d in progress, %d completed, %d someday",
		len(state.InProgress), len(state.Completed), len(state.Someday))
	return state
}

// flush writes the whole state under the configured key. Failures are
// logged and kept for the UI; the in-memory state stays authoritative.
func (a *App) flush() {
	if a.readOnly {
		a.mu.Lock()
		a.flushErr = fmt.Errorf("%w: %v", ErrReadOnly, a.loadErr)
		a.mu.Unlock()
		a.l.Debugf(a.ctx, "skip flush of %q: state was not read", a.opts.Key)
		return
	}
	raw, err := codec.Encode(a.state)
	if err == nil {
		err = a.kv.Set(a.ctx, a.opts.Key, string(raw))
	}
	a.mu.Lock()
	a.flushErr = err
	a.mu.Unlock()
	if err != nil {
		a.l.Warnf(a.ctx, "flush state %q: %v", a.opts.Key, err)
	}
}

// FlushError is the error from the most recent write, nil after a success.
func (a *App) FlushError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.flushErr
}

// LoadError is the error met while reading stored state at startup.
func (a *App) LoadError() error {
	return a.loadErr
}

// ReadOnly reports whether writes are blocked because the stored state could
// not be read.
func (a *App) ReadOnly() bool {
	return a.readOnly
}

func (a *App) State() *model.State {
	return a.state
}

// ToggleWeek flips a completed-week bucket open or closed.
func (a *App) ToggleWeek(key string) bool {
	open := completed.Toggle(a.state.ExpandedWeeks, key)
	a.flush()
	return open
}

// Export returns the persisted document, indented.
func (a *App) Export() ([]byte, error) {
	raw, err := codec.EncodeIndent(a.state)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return raw, nil
}

func (a *App) Close() error {
	if err := a.kv.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
