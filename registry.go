package lingodex

import (
	"sync"

	"github.com/lingodex/lingodex/internal/metrics"
)

// Registry caches each index's translated-field set for the process
// lifetime. Mappings are assumed static after index creation, so entries
// are computed at most once per index and never invalidated.
type Registry struct {
	mu         sync.RWMutex
	translated map[string]FieldSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{translated: make(map[string]FieldSet)}
}

// TranslatedFields returns the translated-field set for the index,
// computing it from the index mapping on first access.
func (r *Registry) TranslatedFields(idx *Index) FieldSet {
	r.mu.RLock()
	set, ok := r.translated[idx.name]
	r.mu.RUnlock()
	if ok {
		metrics.SchemaCacheTotal.WithLabelValues("hit").Inc()
		return set
	}

	metrics.SchemaCacheTotal.WithLabelValues("miss").Inc()
	set = idx.mapping.TranslatedFields()

	r.mu.Lock()
	// Результат детерминирован, но первый записавший выигрывает: записанный
	// набор остаётся неизменным.
	if cached, ok := r.translated[idx.name]; ok {
		set = cached
	} else {
		r.translated[idx.name] = set
	}
	r.mu.Unlock()
	return set
}
