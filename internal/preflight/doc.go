// Package preflight provides system validation and pre-flight checks to
// ensure a sitequery host can run successfully before loading a shard
// directory.
//
// The package validates:
//   - Disk space availability (minimum 100MB)
//   - Memory availability (minimum 1GB)
//   - Write permissions in the working directory (query cache/telemetry)
//   - File descriptor limits (minimum 1024)
//   - Shard directory existence and readability
//
// Use the Checker type to run all validations:
//
//	checker := preflight.New()
//	results := checker.RunAll(ctx, "/path/to/shards")
//	if checker.HasCriticalFailures(results) {
//	    // Handle failures
//	}
//
// A marker file records the last passing run so a caller like
// `sitequery doctor` can skip a re-check within MarkerTTL of a pass:
//
//	if preflight.NeedsCheck(dataDir) || preflight.MarkerAge(dataDir) >= preflight.MarkerTTL {
//	    // run checks, then preflight.MarkPassed(dataDir) on success
//	}
package preflight
