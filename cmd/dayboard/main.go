package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/dayboard/internal/app"
	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/storage"
	"github.com/sandeepkv93/dayboard/internal/update"
	"github.com/sandeepkv93/dayboard/internal/views"
	pkgLog "github.com/sandeepkv93/dayboard/pkg/log"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dayboard failed:", err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "dayboard",
		Short: "Terminal task board with a daily habit checklist",
		Long: `dayboard keeps in-progress, someday and completed tasks next to a daily
habit checklist. Running it without a subcommand opens the board.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBoard(cmd.Context(), opts)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(summaryCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))
	return rootCmd
}

func summaryCmd(opts *rootOptions) *cobra.Command {
	var (
		plain bool
		width int
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print today's board as markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, closeFn, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeFn()

			md := views.SummaryMarkdown(update.SummaryData(a.Board()))
			if !plain {
				md = views.RenderMarkdown(md, width)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), md)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown instead of rendering it")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width for rendered output")
	return cmd
}

func exportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the stored state document as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, closeFn, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer closeFn()

			raw, err := a.Export()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		},
	}
}

func runBoard(ctx context.Context, opts *rootOptions) error {
	a, closeFn, err := openApp(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	program := tea.NewProgram(update.NewModel(a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

// openApp loads config, starts logging and opens the configured store. The
// returned func closes the store and flushes the log.
func openApp(ctx context.Context, opts *rootOptions) (*app.App, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		File:     cfg.Logger.File,
	})
	ctx = pkgLog.WithRequestID(ctx, fmt.Sprintf("dayboard-%d", os.Getpid()))

	kv, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		_ = l.Sync()
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}
	l.Infof(ctx, "opened %s store at %s", cfg.Storage.Backend, cfg.Storage.Path)

	a, err := app.New(ctx, kv, l, app.Options{
		Key:             cfg.Storage.Key,
		SeedYesterday:   cfg.Habits.SeedYesterday,
		SortWeeks:       cfg.Completed.SortWeeks,
		SuggestionLimit: cfg.Tasks.SuggestionLimit,
	})
	if err != nil {
		_ = kv.Close()
		_ = l.Sync()
		return nil, nil, err
	}
	closeFn := func() {
		if err := a.Close(); err != nil {
			l.Warnf(ctx, "close store: %v", err)
		}
		_ = l.Sync()
	}
	return a, closeFn, nil
}
