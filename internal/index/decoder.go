// Package index implements the two ways a SearchIndex is populated:
// decoding a compact binary filter-shard chunk, and ingesting a synthetic
// filter document authored as JSON.
package index

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"

	coreerrors "github.com/Aman-CERP/sitequery/internal/errors"
	"github.com/Aman-CERP/sitequery/internal/store"
)

// filterValueEntry is one (value, page ids) pair inside a shard's inner
// array. The `toarray` tag makes cbor/v2 decode/encode it positionally,
// matching the length-2 fixed array the wire format specifies.
type filterValueEntry struct {
	_     struct{} `cbor:",toarray"`
	Value string
	Pages []uint32
}

// filterShard is the top-level shape of one filter-index chunk: a filter
// name paired with its value-to-pages array.
type filterShard struct {
	_      struct{} `cbor:",toarray"`
	Name   string
	Values []filterValueEntry
}

// DecodeFilterIndexChunk decodes one filter-shard chunk and installs it into
// ix.Filters, replacing any existing sub-map for the same filter name. The
// index is left unmodified if decoding fails at any point — a partially
// consumed shard never contributes partial state.
func DecodeFilterIndexChunk(ix *store.SearchIndex, chunk []byte) error {
	dec := cbor.NewDecoder(bytes.NewReader(chunk))

	var shard filterShard
	if err := dec.Decode(&shard); err != nil {
		return coreerrors.DecodeError("malformed filter-index shard", dec.NumBytesRead(), err).
			WithSuggestion("verify the shard was produced by a compatible encoder")
	}

	values := make(map[string][]uint32, len(shard.Values))
	for _, entry := range shard.Values {
		pages := make([]uint32, len(entry.Pages))
		copy(pages, entry.Pages)
		values[entry.Value] = pages
	}

	if ix.Filters == nil {
		ix.Filters = make(map[string]map[string][]uint32)
	}
	ix.Filters[shard.Name] = values
	return nil
}
