package lingodex

// Mode is the boolean combinator applied when merging sibling query
// fragments.
type Mode string

// Combinator constants.
const (
	// Should matches when any child matches (inclusive or).
	Should Mode = "should"
	// Must matches only when every child matches.
	Must Mode = "must"
)

// Filter combinator aliases. Activation filters speak in or/and terms.
const (
	Or  = Should
	And = Must
)

// Fragment is one node of the store's boolean query algebra. Fragments
// are immutable values composed bottom-up; Source renders the
// store-native query map.
type Fragment interface {
	Source() (any, error)
}

// MultiMatchQuery matches a single text against several fields at once.
type MultiMatchQuery struct {
	fields []string
	query  string
}

// MultiMatch creates a multi_match fragment over the given fields.
func MultiMatch(fields []string, query string) MultiMatchQuery {
	return MultiMatchQuery{fields: append([]string(nil), fields...), query: query}
}

// Fields returns the queried field names.
func (q MultiMatchQuery) Fields() []string { return append([]string(nil), q.fields...) }

// Query returns the searched text.
func (q MultiMatchQuery) Query() string { return q.query }

// Source renders {"multi_match":{"fields":[...],"query":...}}.
func (q MultiMatchQuery) Source() (any, error) {
	return map[string]any{
		"multi_match": map[string]any{
			"fields": append([]string(nil), q.fields...),
			"query":  q.query,
		},
	}, nil
}

// NestedQuery scopes an inner query to a single element of a nested
// collection, so sibling sub-fields must match within the same element.
type NestedQuery struct {
	path  string
	inner Fragment
}

// Nested creates a nested fragment rooted at path. The inner fragment
// must not be nil.
func Nested(path string, inner Fragment) NestedQuery {
	return NestedQuery{path: path, inner: inner}
}

// Path returns the nested collection path.
func (q NestedQuery) Path() string { return q.path }

// Inner returns the scoped inner fragment.
func (q NestedQuery) Inner() Fragment { return q.inner }

// Source renders {"nested":{"path":...,"query":...}}.
func (q NestedQuery) Source() (any, error) {
	inner, err := q.inner.Source()
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"nested": map[string]any{
			"path":  q.path,
			"query": inner,
		},
	}, nil
}

// MatchQuery matches one field against one value. The value is either a
// string or an int64.
type MatchQuery struct {
	field string
	value any
}

// Match creates a match fragment.
func Match(field string, value any) MatchQuery {
	return MatchQuery{field: field, value: value}
}

// Field returns the matched field name.
func (q MatchQuery) Field() string { return q.field }

// Value returns the matched value.
func (q MatchQuery) Value() any { return q.value }

// Source renders {"match":{field:value}}.
func (q MatchQuery) Source() (any, error) {
	return map[string]any{
		"match": map[string]any{q.field: q.value},
	}, nil
}

// TermQuery matches one field against one exact value, optionally
// negated.
type TermQuery struct {
	field   string
	value   string
	negated bool
}

// Term creates an exact term fragment.
func Term(field, value string) TermQuery {
	return TermQuery{field: field, value: value}
}

// Negate returns the negated form of the term.
func (q TermQuery) Negate() TermQuery {
	q.negated = true
	return q
}

// Field returns the field name.
func (q TermQuery) Field() string { return q.field }

// Value returns the exact value.
func (q TermQuery) Value() string { return q.value }

// Negated reports whether the term is negated.
func (q TermQuery) Negated() bool { return q.negated }

// Source renders {"term":{field:value}}, or the must_not bool wrapper
// when negated.
func (q TermQuery) Source() (any, error) {
	term := map[string]any{
		"term": map[string]any{q.field: q.value},
	}
	if !q.negated {
		return term, nil
	}
	return map[string]any{
		"bool": map[string]any{"must_not": term},
	}, nil
}

// BoolQuery combines child fragments under one combinator mode.
type BoolQuery struct {
	mode     Mode
	children []Fragment
}

// Bool creates a bool fragment joining children under mode.
func Bool(mode Mode, children ...Fragment) BoolQuery {
	return BoolQuery{mode: mode, children: append([]Fragment(nil), children...)}
}

// Mode returns the combinator mode.
func (q BoolQuery) Mode() Mode { return q.mode }

// Children returns the child fragments.
func (q BoolQuery) Children() []Fragment { return append([]Fragment(nil), q.children...) }

// IsEmpty reports whether the bool has no children. An empty bool is the
// no-op fragment: the store matches every document against it.
func (q BoolQuery) IsEmpty() bool { return len(q.children) == 0 }

// Source renders {"bool":{mode:[...]}}, or {"bool":{}} when empty.
func (q BoolQuery) Source() (any, error) {
	clause := make(map[string]any)
	if len(q.children) > 0 {
		sources := make([]any, len(q.children))
		for i, c := range q.children {
			src, err := c.Source()
			if err != nil {
				return nil, err
			}
			sources[i] = src
		}
		clause[string(q.mode)] = sources
	}
	return map[string]any{"bool": clause}, nil
}

// MatchAllQuery is the identity query: it restricts nothing.
type MatchAllQuery struct{}

// MatchAll creates a match_all fragment.
func MatchAll() MatchAllQuery { return MatchAllQuery{} }

// Source renders {"match_all":{}}.
func (q MatchAllQuery) Source() (any, error) {
	return map[string]any{"match_all": map[string]any{}}, nil
}
