package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/sitequery/internal/config"
	"github.com/Aman-CERP/sitequery/internal/loader"
	"github.com/Aman-CERP/sitequery/internal/search"
	"github.com/Aman-CERP/sitequery/internal/store"
	"github.com/Aman-CERP/sitequery/internal/telemetry"
	"github.com/Aman-CERP/sitequery/internal/ui"
	"github.com/Aman-CERP/sitequery/pkg/searchindex"
)

func newSearchCmd() *cobra.Command {
	var (
		shardDir string
		fuzzy    bool
		limit    int
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single query against a shard directory",
		Long: `Load a shard directory and run one query against it: exact-phrase
matching by default, or fuzzy/ranked extension matching with --fuzzy.`,
		Example: `  sitequery search "open source"
  sitequery search --fuzzy "licens" --limit 5
  sitequery search --shard-dir ./shards "getting started"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if !cmd.Flags().Changed("limit") {
				cfg, err := config.Load(".")
				if err != nil {
					return err
				}
				limit = cfg.DefaultLimit
			}
			return runSearch(cmd, shardDir, query, !fuzzy, limit, noColor)
		},
	}

	cmd.Flags().StringVar(&shardDir, "shard-dir", "", "Shard directory (defaults to config's shard_dir)")
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "Use fuzzy/ranked extension matching instead of exact phrase")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results to print, 0 for all (defaults to config's default_limit)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runSearch(cmd *cobra.Command, shardDir, query string, exact bool, limit int, noColor bool) error {
	dir, err := resolveShardDir(shardDir)
	if err != nil {
		return err
	}

	idx := searchindex.NewIndex()
	if _, err := loader.LoadDir(idx, dir); err != nil {
		return err
	}

	metrics := telemetry.NewQueryMetrics(nil)
	defer func() { _ = metrics.Close() }()

	outcome := runOneQuery(idx, metrics, query, exact, nil)

	renderer := ui.NewPlainRenderer(ui.Config{
		Output:  cmd.OutOrStdout(),
		NoColor: noColor || ui.DetectNoColor(),
		Limit:   limit,
	})
	return renderer.Render(outcome)
}

// resolveShardDir returns explicit if non-empty, else the configured default.
func resolveShardDir(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return shardDirArg(nil)
}

// runOneQuery runs a single query against idx, records telemetry, and
// shapes the result as a ui.QueryOutcome.
func runOneQuery(idx *searchindex.Index, metrics *telemetry.QueryMetrics, query string, exact bool, filter *store.Bitset) ui.QueryOutcome {
	start := time.Now()

	var (
		unfiltered []uint32
		results    []search.PageSearchResult
	)
	if exact {
		unfiltered, results = idx.ExactTerm(query, filter)
	} else {
		unfiltered, results = idx.SearchTerm(query, filter)
	}

	queryType := telemetry.QueryTypeFuzzy
	if exact {
		queryType = telemetry.QueryTypeExact
	}
	metrics.Record(telemetry.QueryEvent{
		Query:       query,
		QueryType:   queryType,
		ResultCount: len(results),
		Latency:     time.Since(start),
		Timestamp:   time.Now(),
	})

	uiResults := make([]ui.Result, len(results))
	for i, r := range results {
		positions := make([]uint32, len(r.WordLocations))
		for j, loc := range r.WordLocations {
			positions[j] = loc.Position
		}
		uiResults[i] = ui.Result{
			Hash:      r.Hash,
			Score:     r.Score,
			Positions: positions,
		}
	}

	return ui.QueryOutcome{
		Query:      query,
		Exact:      exact,
		Unfiltered: len(unfiltered),
		Results:    uiResults,
	}
}
