package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/sitequery/internal/config"
	"github.com/Aman-CERP/sitequery/internal/loader"
	"github.com/Aman-CERP/sitequery/internal/output"
	"github.com/Aman-CERP/sitequery/pkg/searchindex"
)

func newIndexCmd() *cobra.Command {
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "index [shard-dir]",
		Short: "Load and validate a shard directory",
		Long: `Decode every recognized shard file in a directory and report what was
loaded: how many binary filter-index chunks, how many synthetic filter
documents, and any file that failed to decode.

This tool never builds a shard directory itself — that is the job of a
separate build-time indexer. It only reads what one has already produced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := shardDirArg(args)
			if err != nil {
				return err
			}
			return runIndex(cmd, dir, cacheSize)
		},
	}

	cmd.Flags().IntVar(&cacheSize, "cache-size", 0, "Query result cache size (0 disables caching)")

	return cmd
}

func shardDirArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cfg, err := config.Load(".")
	if err != nil {
		return "", err
	}
	return cfg.ShardDir, nil
}

func runIndex(cmd *cobra.Command, dir string, cacheSize int) error {
	out := output.New(cmd.OutOrStdout())

	idx := searchindex.NewIndex(searchindex.WithCacheSize(cacheSize))
	result, err := loader.LoadDir(idx, dir)
	if err != nil {
		return err
	}

	out.Successf("loaded %d filter-index chunk(s), %d synthetic filter document(s) from %s", result.ChunksLoaded, result.FiltersLoaded, dir)
	out.Status("", fmt.Sprintf("pages known: %d", idx.PageCount()))

	for _, name := range result.FilesSkipped {
		out.Warningf("skipped %s (unrecognized extension)", name)
	}
	for name, ferr := range result.FilesErrored {
		out.Errorf("%s: %v", name, ferr)
	}

	if len(result.FilesErrored) > 0 {
		return fmt.Errorf("%d shard file(s) failed to decode", len(result.FilesErrored))
	}
	return nil
}
