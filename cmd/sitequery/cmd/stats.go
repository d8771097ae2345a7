package cmd

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Aman-CERP/sitequery/internal/loader"
	"github.com/Aman-CERP/sitequery/internal/output"
	"github.com/Aman-CERP/sitequery/pkg/searchindex"
)

func newStatsCmd() *cobra.Command {
	var (
		shardDir   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "stats [shard-dir]",
		Short: "Show index statistics after loading a shard directory",
		Long: `Load a shard directory and report its shape: how many pages are
known and, per filter, how many distinct values it carries.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := shardDir
			if dir == "" {
				d, err := shardDirArg(args)
				if err != nil {
					return err
				}
				dir = d
			}
			return runStats(cmd, dir, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&shardDir, "shard-dir", "", "Shard directory (defaults to config's shard_dir)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// indexStats summarizes a loaded index's shape for display.
type indexStats struct {
	PageCount  int                 `json:"page_count"`
	Filters    map[string][]string `json:"filters"`
	ShardBytes int64               `json:"shard_bytes"`
}

func runStats(cmd *cobra.Command, dir string, jsonOutput bool) error {
	idx := searchindex.NewIndex()
	if _, err := loader.LoadDir(idx, dir); err != nil {
		return err
	}

	stats := indexStats{
		PageCount:  idx.PageCount(),
		Filters:    idx.FilterValues(),
		ShardBytes: shardDirSize(dir),
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	out := output.New(cmd.OutOrStdout())
	out.Statusf("", "pages: %s", humanize.Comma(int64(stats.PageCount)))
	out.Statusf("", "shard data on disk: %s", humanize.Bytes(uint64(stats.ShardBytes)))

	names := make([]string, 0, len(stats.Filters))
	for name := range stats.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out.Statusf("", "filter %q: %s value(s)", name, humanize.Comma(int64(len(stats.Filters[name]))))
	}
	return nil
}

// shardDirSize sums the size of every regular file directly in dir. Shard
// directories hold no subdirectories worth descending into. Errors are
// swallowed: this is a display nicety, not something worth failing the
// stats command over.
func shardDirSize(dir string) int64 {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	var total int64
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total
}
