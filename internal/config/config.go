package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "DAYBOARD"

type Config struct {
	Storage   StorageConfig
	Habits    HabitsConfig
	Completed CompletedConfig
	Tasks     TasksConfig
	Logger    LoggerConfig
}

type StorageConfig struct {
	// Backend is sqlite, file or memory.
	Backend string
	Path    string
	Key     string
}

type HabitsConfig struct {
	SeedYesterday bool
}

type CompletedConfig struct {
	SortWeeks bool
}

type TasksConfig struct {
	SuggestionLimit int
}

type LoggerConfig struct {
	Level    string
	Encoding string
	File     string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.backend", "sqlite")
	v.SetDefault("storage.path", filepath.Join(".dayboard", "state.db"))
	v.SetDefault("storage.key", "dayboard.state")
	v.SetDefault("habits.seed_yesterday", false)
	v.SetDefault("completed.sort_weeks", false)
	v.SetDefault("tasks.suggestion_limit", 100)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.file", filepath.Join(".dayboard", "dayboard.log"))
}

// Load reads defaults, then the YAML file, then DAYBOARD_* environment
// variables. An explicit path must exist; otherwise dayboard.yaml is looked
// up in the working directory and $HOME/.config/dayboard.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("dayboard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "dayboard"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(v.GetString("storage.backend")))
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.Key = v.GetString("storage.key")
	cfg.Habits.SeedYesterday = v.GetBool("habits.seed_yesterday")
	cfg.Completed.SortWeeks = v.GetBool("completed.sort_weeks")
	cfg.Tasks.SuggestionLimit = v.GetInt("tasks.suggestion_limit")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.File = v.GetString("logger.file")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case "sqlite", "file":
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("config: storage.path is required for the %s backend", c.Storage.Backend)
		}
	case "memory":
	default:
		return fmt.Errorf("config: unknown storage.backend %q", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return errors.New("config: storage.key is required")
	}
	if c.Tasks.SuggestionLimit <= 0 {
		return fmt.Errorf("config: tasks.suggestion_limit must be positive, got %d", c.Tasks.SuggestionLimit)
	}
	return nil
}
