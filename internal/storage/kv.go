package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrNotFound = errors.New("storage: not found")

// KV is a flat string-keyed store. Values are opaque strings.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// Entry is a stored value with the time it was last written.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open returns the backend named by kind. Path is ignored for memory.
func Open(kind, path string) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", BackendSQLite:
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		kv, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		if err := MigrateUp(kv.db); err != nil {
			_ = kv.Close()
			return nil, err
		}
		return kv, nil
	case BackendFile:
		if err := ensureDir(path); err != nil {
			return nil, err
		}
		return OpenFile(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

func ensureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("storage: path is required")
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("storage: key is required")
	}
	return nil
}
