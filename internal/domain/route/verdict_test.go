package route

import "testing"

func TestVerdictTypeRoundTrip(t *testing.T) {
	pairs := []struct {
		v Verdict
		t Type
	}{
		{SQLOnly, Statistical},
		{VectorOnly, Contextual},
		{Both, Hybrid},
	}

	for _, p := range pairs {
		if got := p.v.Type(); got != p.t {
			t.Errorf("%q.Type() = %q, want %q", p.v, got, p.t)
		}
		if got := VerdictFromType(p.t); got != p.v {
			t.Errorf("VerdictFromType(%q) = %q, want %q", p.t, got, p.v)
		}
	}
}

func TestVerdictIsValid(t *testing.T) {
	for _, v := range []Verdict{SQLOnly, VectorOnly, Both} {
		if !v.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", v)
		}
	}
	for _, v := range []Verdict{"", "both", "SQL_ONLY", "vector"} {
		if v.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", v)
		}
	}
}
