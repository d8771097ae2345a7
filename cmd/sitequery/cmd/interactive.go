package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/sitequery/internal/loader"
	"github.com/Aman-CERP/sitequery/internal/telemetry"
	"github.com/Aman-CERP/sitequery/internal/ui"
	"github.com/Aman-CERP/sitequery/pkg/searchindex"
)

func newInteractiveCmd() *cobra.Command {
	var shardDir string

	cmd := &cobra.Command{
		Use:     "interactive [shard-dir]",
		Aliases: []string{"repl"},
		Short:   "Open an interactive query REPL over a shard directory",
		Long: `Load a shard directory and open a terminal REPL: type a query and press
Enter, Tab toggles between fuzzy and exact-phrase mode, Esc quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := shardDir
			if dir == "" && len(args) > 0 {
				dir = args[0]
			}
			resolved, err := resolveShardDir(dir)
			if err != nil {
				return err
			}
			return runInteractive(resolved)
		},
	}

	cmd.Flags().StringVar(&shardDir, "shard-dir", "", "Shard directory (defaults to config's shard_dir)")

	return cmd
}

func runInteractive(dir string) error {
	idx := searchindex.NewIndex(searchindex.WithCacheSize(1000))
	if _, err := loader.LoadDir(idx, dir); err != nil {
		return err
	}

	metrics := telemetry.NewQueryMetrics(nil)
	defer func() { _ = metrics.Close() }()

	queryFn := func(query string, exact bool) (ui.QueryOutcome, error) {
		return runOneQuery(idx, metrics, query, exact, nil), nil
	}

	program := ui.NewInteractiveProgram(ui.Config{Output: os.Stdout}, queryFn)
	_, err := program.Run()
	return err
}
