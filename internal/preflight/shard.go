package preflight

import (
	"fmt"
	"os"
)

// CheckShardDirReadable checks that the configured shard directory exists,
// is a directory, and is listable — the minimum a host needs before it can
// start decoding filter shards out of it.
func (c *Checker) CheckShardDirReadable(shardDir string) CheckResult {
	result := CheckResult{
		Name:     "shard_dir",
		Required: true,
	}

	info, err := os.Stat(shardDir)
	if err != nil {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("cannot stat shard directory: %v", err)
		return result
	}
	if !info.IsDir() {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("%s is not a directory", shardDir)
		return result
	}

	entries, err := os.ReadDir(shardDir)
	if err != nil {
		result.Status = StatusFail
		result.Message = fmt.Sprintf("cannot list shard directory: %v", err)
		return result
	}

	if len(entries) == 0 {
		result.Status = StatusWarn
		result.Message = "shard directory is empty"
		return result
	}

	result.Status = StatusPass
	result.Message = fmt.Sprintf("%d entries", len(entries))
	return result
}
