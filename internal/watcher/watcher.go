package watcher

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Operation represents a file system operation type.
type Operation int

const (
	// OpCreate indicates a new shard file was created.
	OpCreate Operation = iota
	// OpModify indicates an existing shard file was modified.
	OpModify
	// OpDelete indicates a shard file was deleted.
	OpDelete
	// OpRename indicates a shard file was renamed.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpDelete:
		return "DELETE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// FileEvent represents a shard-directory file system event.
type FileEvent struct {
	// Path is the path to the shard file.
	Path string

	// OldPath is the previous path for rename events.
	// Empty for non-rename events.
	OldPath string

	// Operation is the type of file system operation.
	Operation Operation

	// IsDir is always false for a shard directory watcher — shard
	// directories have no subdirectories worth tracking.
	IsDir bool

	// Timestamp is when the event was detected.
	Timestamp time.Time
}

// Watcher defines the interface for shard-directory watching.
type Watcher interface {
	// Start begins watching the given shard directory.
	// Returns an error if watching fails to initialize.
	// The watcher runs until Stop is called or context is cancelled.
	Start(ctx context.Context, path string) error

	// Stop stops the watcher and releases resources.
	// Safe to call multiple times.
	Stop() error

	// Events returns a channel of debounced event batches.
	// The channel is closed when the watcher stops.
	Events() <-chan []FileEvent

	// Errors returns a channel of watcher errors.
	// Non-fatal errors are sent here; the watcher continues running.
	// The channel is closed when the watcher stops.
	Errors() <-chan error
}

// Options configures the watcher behavior.
type Options struct {
	// DebounceWindow is the time to wait before emitting coalesced events.
	// Default: 200ms
	DebounceWindow time.Duration

	// EventBufferSize is the size of the event channel buffer.
	// Default: 1000
	EventBufferSize int

	// IgnorePatterns are glob patterns (matched against base names) for
	// files in the shard directory to ignore — editor swap files and
	// partial writes left by an indexer still in the middle of a build.
	IgnorePatterns []string
}

// DefaultOptions returns the default watcher options.
func DefaultOptions() Options {
	return Options{
		DebounceWindow:  200 * time.Millisecond,
		EventBufferSize: 1000,
		IgnorePatterns:  []string{"*.tmp", "*.swp"},
	}
}

// Validate validates the options and returns an error if invalid.
func (o Options) Validate() error {
	// All options have sensible defaults, no validation needed currently
	return nil
}

// ReloadID generates a fresh identifier for one reload cycle: a batch of
// debounced events handled by a single LoadDir call. Callers log it
// alongside the reload's outcome so a run's shard-change notifications and
// its resulting load errors can be tied back to the same event batch.
func ReloadID() string {
	return uuid.NewString()
}

// WithDefaults returns options with defaults applied for zero values.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions()
	if o.DebounceWindow == 0 {
		o.DebounceWindow = defaults.DebounceWindow
	}
	if o.EventBufferSize == 0 {
		o.EventBufferSize = defaults.EventBufferSize
	}
	if o.IgnorePatterns == nil {
		o.IgnorePatterns = defaults.IgnorePatterns
	}
	return o
}
