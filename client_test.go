package lingodex

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.reg == nil {
		t.Error("client has no registry")
	}
	if c.log == nil {
		t.Error("client has no logger")
	}
}

func TestNewWithOptions(t *testing.T) {
	reg := NewRegistry()
	log := zap.NewNop()

	c := New(WithRegistry(reg), WithLogger(log))
	if c.reg != reg {
		t.Error("WithRegistry ignored")
	}
	if c.log != log {
		t.Error("WithLogger ignored")
	}
}

func TestIndexAccessors(t *testing.T) {
	mapping, err := ParseMappingYAML([]byte(productMappingYAML))
	if err != nil {
		t.Fatal(err)
	}
	idx := New().Index("products", mapping)

	if idx.Name() != "products" {
		t.Errorf("Name() = %q", idx.Name())
	}
	if _, ok := idx.Mapping().Properties["code"]; !ok {
		t.Error("Mapping() lost properties")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unsupported value", &UnsupportedValueError{Field: "f", Kind: KindTime}},
		{"capability", &CapabilityError{Action: "export"}},
		{"locale field", &LocaleFieldError{Locale: "fr", Fields: []string{"code"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
