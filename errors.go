package lingodex

import "fmt"

// UnsupportedValueError reports a criterion value shape the builder
// cannot translate into a query clause.
type UnsupportedValueError struct {
	Field string
	Kind  ValueKind
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value shape %s for field %q", e.Kind, e.Field)
}

// CapabilityError reports a policy that has no restriction for the
// requested action.
type CapabilityError struct {
	Action Action
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("policy has no restriction for action %q", e.Action)
}

// LocaleFieldError reports locale-scoped autocomplete over fields that
// are not translated in the index mapping. Such a query can never match:
// the nested path does not exist for plain fields.
type LocaleFieldError struct {
	Locale string
	Fields []string
}

func (e *LocaleFieldError) Error() string {
	return fmt.Sprintf("autocomplete with locale %q on non-translated fields %v", e.Locale, e.Fields)
}
