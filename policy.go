package lingodex

// Action names a caller-defined operation subject to policy restriction.
type Action string

// Restriction narrows a query context on behalf of a policy. It may
// return the context unchanged.
type Restriction func(*Search) (*Search, error)

// Policy supplies per-action query restrictions. Implementations return
// false when no restriction exists for the action.
type Policy interface {
	Restriction(action Action) (Restriction, bool)
}

// PolicyMap is a Policy backed by a plain action table.
type PolicyMap map[Action]Restriction

// Restriction implements Policy.
func (p PolicyMap) Restriction(action Action) (Restriction, bool) {
	r, ok := p[action]
	return r, ok
}

// Permitted applies the policy's restriction for the action to the
// context, returning whatever the restriction returns. A policy without
// the named capability is a CapabilityError.
func (s *Search) Permitted(p Policy, action Action) (*Search, error) {
	r, ok := p.Restriction(action)
	if !ok {
		return nil, &CapabilityError{Action: action}
	}
	return r(s)
}
