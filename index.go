package lingodex

import (
	"context"
	"encoding/json"
)

// Index is a handle on one document index: its name, its field mapping
// and the client owning the shared registry.
type Index struct {
	name    string
	mapping Mapping
	client  *Client
}

// Name returns the index name.
func (idx *Index) Name() string { return idx.name }

// Mapping returns the index field schema.
func (idx *Index) Mapping() Mapping { return idx.mapping }

// TranslatedFields returns the set of translated field names, cached in
// the client's registry after the first call.
func (idx *Index) TranslatedFields() FieldSet {
	return idx.client.reg.TranslatedFields(idx)
}

// Search opens an empty query context for this index.
func (idx *Index) Search() *Search {
	return &Search{idx: idx}
}

// Executor runs a composed search body against the document store.
// lingodex only builds query bodies; executing them, including all
// transport concerns, belongs to the store client.
type Executor interface {
	Search(ctx context.Context, index string, body map[string]any) (json.RawMessage, error)
}
