package lingodex

import (
	"errors"
	"testing"
)

func TestPermittedAppliesRestriction(t *testing.T) {
	policy := PolicyMap{
		"export": func(s *Search) (*Search, error) {
			return s.ActiveIn("fr"), nil
		},
	}

	s, err := testIndex(t).Search().Permitted(policy, "export")
	if err != nil {
		t.Fatalf("Permitted: %v", err)
	}
	if len(s.filters) != 1 {
		t.Errorf("filters = %d, want 1", len(s.filters))
	}
}

func TestPermittedIdentityRestriction(t *testing.T) {
	policy := PolicyMap{
		"read": func(s *Search) (*Search, error) { return s, nil },
	}

	base := testIndex(t).Search()
	s, err := base.Permitted(policy, "read")
	if err != nil {
		t.Fatalf("Permitted: %v", err)
	}
	if s != base {
		t.Error("identity restriction returned a different context")
	}
}

func TestPermittedUnknownAction(t *testing.T) {
	_, err := testIndex(t).Search().Permitted(PolicyMap{}, "export")

	var cerr *CapabilityError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v, want CapabilityError", err)
	}
	if cerr.Action != "export" {
		t.Errorf("Action = %q, want export", cerr.Action)
	}
}

func TestPermittedPropagatesRestrictionError(t *testing.T) {
	boom := errors.New("boom")
	policy := PolicyMap{
		"export": func(*Search) (*Search, error) { return nil, boom },
	}

	_, err := testIndex(t).Search().Permitted(policy, "export")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}
