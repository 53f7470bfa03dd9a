package validation

import (
	"errors"
	"strings"
)

// ErrEntityNotRegistered is returned by Resolve for an unknown entity key.
// It signals a binding/deployment defect, not a client mistake.
var ErrEntityNotRegistered = errors.New("entity key not registered")

// Registry maps entity keys to their field rule lists. It is fully populated
// before the first request and never mutated afterward, so concurrent reads
// need no synchronization.
type Registry struct {
	rules map[string][]Rule
}

// NewRegistry builds the registry from the hand-authored rule tables.
func NewRegistry() *Registry {
	return &Registry{rules: map[string][]Rule{
		"usuario":    userRules(),
		"estado":     stateRules(),
		"inventario": inventoryRules(),
		"ubicacion":  locationRules(),
		"elemento":   elementRules(),
		"reporte":    reportRules(),
	}}
}

// Resolve returns the ordered rule list for an entity key. Keys are compared
// case-insensitively.
func (r *Registry) Resolve(entityKey string) ([]Rule, error) {
	rules, ok := r.rules[strings.ToLower(entityKey)]
	if !ok {
		return nil, ErrEntityNotRegistered
	}
	return rules, nil
}
