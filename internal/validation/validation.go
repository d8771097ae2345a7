// Package validation validates the two shapes a host must hand the engine
// before it can be trusted: a synthetic-filter document's top-level shape
// (§4.2/§6.2) and a shard file's name/extension, before ever attempting to
// decode it. Neither check belongs inside the decoder itself — both run at
// the host boundary, where a config or CLI flag points at files that may
// not exist or may not be what the host thinks they are.
package validation

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Issue describes one problem found while validating input before it
// reaches the decoder or ingestor.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// ValidSyntheticFilterShape reports whether doc parses as a JSON object at
// the top level and, for every key, flags values DecodeSyntheticFilter
// would otherwise silently ignore (§4.2). A non-object top level is the
// one failure mode ingestion can't recover from; anything else is just
// reported so a host can warn the author rather than find out an entire
// filter went missing after the fact.
func ValidSyntheticFilterShape(doc string) []Issue {
	var probe any
	if err := json.Unmarshal([]byte(doc), &probe); err != nil {
		return []Issue{{Message: fmt.Sprintf("not valid JSON: %v", err)}}
	}

	top, ok := probe.(map[string]any)
	if !ok {
		return []Issue{{Message: "top-level value must be a JSON object mapping filter names to values"}}
	}

	var issues []Issue
	for name, raw := range top {
		switch raw.(type) {
		case string, []any:
			// Will be ingested.
		default:
			issues = append(issues, Issue{
				Field:   name,
				Message: "value is neither a string nor an array — will be ignored by ingestion",
			})
		}
	}
	return issues
}

// shardExtensions lists file extensions a shard directory is expected to
// contain: compact binary filter shards and, optionally, a synthetic
// filter document sitting alongside them.
var shardExtensions = map[string]bool{
	".bin":  true,
	".cbor": true,
	".json": true,
}

// ValidShardFilename reports whether name has a recognized shard file
// extension. It does not open or decode the file — a cheap, fast check a
// host can run over a directory listing before attempting the expensive
// decode of every entry.
func ValidShardFilename(name string) bool {
	return shardExtensions[filepath.Ext(name)]
}
