package govuk

import (
	"errors"
	"testing"
)

func TestOK(t *testing.T) {
	r := OK(42)
	if !r.IsOK() {
		t.Fatal("OK result should report IsOK")
	}
	if r.Value() != 42 {
		t.Errorf("Value() = %d, want 42", r.Value())
	}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
}

func TestErr(t *testing.T) {
	boom := errors.New("boom")
	r := Err[string](boom)
	if r.IsOK() {
		t.Fatal("failed result should not report IsOK")
	}
	if r.Value() != "" {
		t.Errorf("Value() = %q, want zero value", r.Value())
	}
	v, err := r.Unwrap()
	if v != "" || !errors.Is(err, boom) {
		t.Errorf("Unwrap() = (%q, %v), want (\"\", boom)", v, err)
	}
}
