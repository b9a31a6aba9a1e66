package lingodex

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/lingodex/lingodex/internal/metrics"
)

// filterClause is a filter fragment plus the combinator it joins sibling
// filters under.
type filterClause struct {
	frag Fragment
	mode Mode
}

// Search is an immutable query context for one index. Every operation
// returns a new Search and never modifies the receiver, so contexts can
// be branched and reused freely.
type Search struct {
	idx     *Index
	query   Fragment
	filters []filterClause
}

// Index returns the index this context queries.
func (s *Search) Index() *Index { return s.idx }

// Query returns the current query fragment, or nil if none was applied.
func (s *Search) Query() Fragment { return s.query }

func (s *Search) clone() *Search {
	dup := *s
	dup.filters = append([]filterClause(nil), s.filters...)
	return &dup
}

// ApplyQuery returns a context with the fragment applied as its query.
// An already present query is conjoined with the new one under must.
func (s *Search) ApplyQuery(frag Fragment) *Search {
	dup := s.clone()
	if dup.query == nil {
		dup.query = frag
	} else {
		dup.query = Bool(Must, dup.query, frag)
	}
	return dup
}

// ApplyFilter returns a context with the fragment appended as a post
// filter, joined to sibling filters under the given combinator mode.
func (s *Search) ApplyFilter(frag Fragment, mode Mode) *Search {
	dup := s.clone()
	dup.filters = append(dup.filters, filterClause{frag: frag, mode: mode})
	return dup
}

// SearchByFields builds a disjunctive text search across the given
// fields, routing translated fields into a nested translations query and
// plain fields into a direct multi_match.
func (s *Search) SearchByFields(fields []string, query string) *Search {
	return s.SearchByFieldsMode(fields, query, Should)
}

// SearchByFieldsMode is SearchByFields with a caller-chosen combinator.
func (s *Search) SearchByFieldsMode(fields []string, query string, mode Mode) *Search {
	frag := s.fieldsFragment(fields, query, mode)
	s.built("search_by_fields", frag)
	return s.ApplyQuery(frag)
}

// fieldsFragment partitions fields into plain and translated and merges
// the resulting clauses under mode. With no fields at all the result is
// an empty bool, which restricts nothing.
func (s *Search) fieldsFragment(fields []string, query string, mode Mode) Fragment {
	translated := s.idx.TranslatedFields()

	var plain, nested []string
	for _, f := range fields {
		if translated.Contains(f) {
			nested = append(nested, f)
		} else {
			plain = append(plain, f)
		}
	}

	var children []Fragment
	if len(plain) > 0 {
		children = append(children, MultiMatch(plain, query))
	}
	if len(nested) > 0 {
		prefixed := make([]string, len(nested))
		for i, f := range nested {
			prefixed[i] = TranslationsField + "." + f
		}
		children = append(children, Nested(TranslationsField, MultiMatch(prefixed, query)))
	}
	return Bool(mode, children...)
}

// SearchBy constrains the context by every non-blank criterion,
// conjunctively: distinct fields are independent constraints. Blank
// values are dropped first; if nothing remains the context is returned
// unchanged.
func (s *Search) SearchBy(criteria Criteria) (*Search, error) {
	pruned := criteria.prune()
	if len(pruned) == 0 {
		return s, nil
	}

	children := make([]Fragment, 0, len(pruned))
	for _, cr := range pruned {
		frag, ok, err := s.unitFragment(cr.Field, cr.Value)
		if err != nil {
			return nil, err
		}
		if ok {
			children = append(children, frag)
		}
	}
	if len(children) == 0 {
		return s, nil
	}

	frag := Bool(Must, children...)
	s.built("search_by", frag)
	return s.ApplyQuery(frag), nil
}

// unitFragment translates one criterion into a query clause. The second
// return is false when the criterion deliberately contributes nothing.
func (s *Search) unitFragment(field string, v Value) (Fragment, bool, error) {
	switch v.kind {
	case KindText:
		// A text value on a translated field searches every locale.
		return s.fieldsFragment([]string{field}, v.text, Must), true, nil
	case KindInt:
		return Match(field, v.n), true, nil
	case KindIntList:
		children := make([]Fragment, 0, len(v.list))
		for _, n := range v.list {
			if n == nil {
				continue
			}
			children = append(children, Match(field, *n))
		}
		if len(children) == 0 {
			return nil, false, nil
		}
		return Bool(Should, children...), true, nil
	case KindTime:
		// Time criteria are accepted but not yet translatable into a
		// clause; they contribute nothing.
		return nil, false, nil
	default:
		return nil, false, &UnsupportedValueError{Field: field, Kind: v.kind}
	}
}

// Autocomplete builds a completion query over the given fields. With an
// empty locale it searches every locale, exactly as SearchByFields does.
// With a locale set every field must be translated: the query is scoped
// to the translations element carrying that locale, and a plain field
// fails fast with LocaleFieldError.
func (s *Search) Autocomplete(fields []string, query, locale string) (*Search, error) {
	if locale == "" {
		return s.SearchByFields(fields, query), nil
	}

	translated := s.idx.TranslatedFields()
	var plain []string
	for _, f := range fields {
		if !translated.Contains(f) {
			plain = append(plain, f)
		}
	}
	if len(plain) > 0 {
		return nil, &LocaleFieldError{Locale: locale, Fields: plain}
	}

	prefixed := make([]string, len(fields))
	for i, f := range fields {
		prefixed[i] = TranslationsField + "." + f
	}
	frag := Nested(TranslationsField, Bool(Must,
		MultiMatch(prefixed, query),
		Match(TranslationsField+".locale", locale),
	))
	s.built("autocomplete", frag)
	return s.ApplyQuery(frag), nil
}

// ActiveIn keeps only documents active in at least one of the locales.
func (s *Search) ActiveIn(locales ...string) *Search {
	frag := ActiveFilter(locales)
	s.built("active_filter", frag)
	return s.ApplyFilter(frag, And)
}

// InactiveIn keeps only documents active in none of the locales.
func (s *Search) InactiveIn(locales ...string) *Search {
	frag := InactiveFilter(locales)
	s.built("inactive_filter", frag)
	return s.ApplyFilter(frag, And)
}

// Source renders the full request body for the store: the query plus,
// when filters were applied, a post_filter clause.
func (s *Search) Source() (map[string]any, error) {
	var q Fragment = MatchAll()
	if s.query != nil {
		q = s.query
	}
	src, err := q.Source()
	if err != nil {
		return nil, err
	}

	body := map[string]any{"query": src}
	if len(s.filters) > 0 {
		post, err := s.filterSource()
		if err != nil {
			return nil, err
		}
		body["post_filter"] = post
	}
	return body, nil
}

func (s *Search) filterSource() (any, error) {
	if len(s.filters) == 1 {
		return s.filters[0].frag.Source()
	}

	var musts, shoulds []any
	for _, fc := range s.filters {
		src, err := fc.frag.Source()
		if err != nil {
			return nil, err
		}
		if fc.mode == Should {
			shoulds = append(shoulds, src)
		} else {
			musts = append(musts, src)
		}
	}

	clause := make(map[string]any)
	if len(musts) > 0 {
		clause["must"] = musts
	}
	if len(shoulds) > 0 {
		clause["should"] = shoulds
	}
	return map[string]any{"bool": clause}, nil
}

// Do renders the body and hands it to the executor.
func (s *Search) Do(ctx context.Context, ex Executor) (json.RawMessage, error) {
	body, err := s.Source()
	if err != nil {
		return nil, fmt.Errorf("render search body: %w", err)
	}
	return ex.Search(ctx, s.idx.name, body)
}

func (s *Search) built(op string, frag Fragment) {
	metrics.QueriesBuiltTotal.WithLabelValues(op).Inc()

	log := s.idx.client.log
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	src, err := frag.Source()
	if err != nil {
		return
	}
	log.Debug("query fragment built",
		zap.String("index", s.idx.name),
		zap.String("operation", op),
		zap.Any("fragment", src),
	)
}
