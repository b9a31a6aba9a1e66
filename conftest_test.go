package lingodex

import (
	"context"
	"encoding/json"
	"testing"
)

const productMappingYAML = `
properties:
  code:
    type: keyword
  supplier_id:
    type: integer
  active_locales:
    type: keyword
  translations:
    type: nested
    properties:
      locale:
        type: keyword
      name:
        type: text
      description:
        type: text
`

// testIndex builds a "products" index with translated name/description
// fields, backed by a fresh client and registry.
func testIndex(t *testing.T) *Index {
	t.Helper()
	mapping, err := ParseMappingYAML([]byte(productMappingYAML))
	if err != nil {
		t.Fatalf("parse mapping: %v", err)
	}
	return New().Index("products", mapping)
}

// mustSource renders a fragment, failing the test on error.
func mustSource(t *testing.T, f Fragment) any {
	t.Helper()
	src, err := f.Source()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	return src
}

// mockExecutor records the body it receives.
type mockExecutor struct {
	index string
	body  map[string]any
	resp  json.RawMessage
	err   error
}

func (m *mockExecutor) Search(_ context.Context, index string, body map[string]any) (json.RawMessage, error) {
	m.index = index
	m.body = body
	return m.resp, m.err
}
