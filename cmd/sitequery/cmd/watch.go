package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/sitequery/internal/loader"
	"github.com/Aman-CERP/sitequery/internal/output"
	"github.com/Aman-CERP/sitequery/internal/watcher"
	"github.com/Aman-CERP/sitequery/pkg/searchindex"
)

func newWatchCmd() *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "watch [shard-dir]",
		Short: "Load a shard directory and reload it on change",
		Long: `Load a shard directory, then watch it for file changes and reload
affected shards as an external indexer rewrites them. Runs until
interrupted (Ctrl+C).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := shardDirArg(args)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cmd, dir, cacheSize)
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", 1000, "Query result cache size (0 disables caching)")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, dir string, cacheSize int) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := output.New(cmd.OutOrStdout())

	idx := searchindex.NewIndex(searchindex.WithCacheSize(cacheSize))
	if _, err := loadAndReport(out, idx, dir); err != nil {
		return err
	}

	w, err := watcher.NewShardWatcher(watcher.DefaultOptions())
	if err != nil {
		return fmt.Errorf("create shard watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	out.Statusf("", "watching %s for changes (Ctrl+C to stop)", dir)

	for {
		select {
		case <-ctx.Done():
			out.Status("", "stopped")
			return nil
		case batch, ok := <-w.Events():
			if !ok {
				return nil
			}
			handleWatchBatch(out, idx, dir, batch)
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			slog.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}

func handleWatchBatch(out *output.Writer, idx *searchindex.Index, dir string, batch []watcher.FileEvent) {
	reloadID := watcher.ReloadID()
	out.Statusf("", "%d shard file change(s) detected, reloading (reload %s)", len(batch), reloadID)
	if _, err := loadAndReport(out, idx, dir); err != nil {
		slog.Error("shard reload failed", slog.String("reload_id", reloadID), slog.String("error", err.Error()))
		out.Errorf("reload failed: %v", err)
	}
}

func loadAndReport(out *output.Writer, idx *searchindex.Index, dir string) (loader.Result, error) {
	result, err := loader.LoadDir(idx, dir)
	if err != nil {
		return result, err
	}
	out.Successf("loaded %d chunk(s), %d filter document(s), %d page(s) known",
		result.ChunksLoaded, result.FiltersLoaded, idx.PageCount())
	for name, ferr := range result.FilesErrored {
		out.Errorf("%s: %v", name, ferr)
	}
	return result, nil
}
