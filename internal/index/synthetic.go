package index

import (
	"encoding/json"
	"log/slog"

	"github.com/Aman-CERP/sitequery/internal/store"
)

// DecodeSyntheticFilter ingests a synthetic-filter document: a JSON object
// mapping filter names to a text scalar or an array of text scalars. Every
// value assigned this way is installed as if it tagged every known page —
// the "all pages" set is computed once from the index's current page count.
//
// Unlike DecodeFilterIndexChunk, ingestion never returns an error: the
// synthetic path is an ergonomic interface invoked by user code at runtime,
// not a trust boundary. Malformed input is logged at debug level and
// produces a no-op.
func DecodeSyntheticFilter(ix *store.SearchIndex, doc string) {
	var top map[string]any
	if err := json.Unmarshal([]byte(doc), &top); err != nil {
		slog.Debug("synthetic filter document is not a JSON object", "error", err)
		return
	}

	allPages := ix.AllPageIDs()

	for name, raw := range top {
		values := syntheticValues(raw)
		if len(values) == 0 {
			continue
		}

		sub, ok := ix.Filters[name]
		if !ok {
			sub = make(map[string][]uint32)
			if ix.Filters == nil {
				ix.Filters = make(map[string]map[string][]uint32)
			}
			ix.Filters[name] = sub
		}
		for _, v := range values {
			pages := make([]uint32, len(allPages))
			copy(pages, allPages)
			sub[v] = pages
		}
	}
}

// syntheticValues extracts the text scalars out of a raw JSON value: either
// the scalar itself, or every string element of an array (non-string
// elements are skipped individually rather than discarding the whole key).
// Any other JSON kind (number, bool, object, null) yields no values.
func syntheticValues(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
