package route

import "testing"

func TestTypeIsValid(t *testing.T) {
	valid := []Type{Statistical, Contextual, Hybrid}
	for _, v := range valid {
		if !v.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", v)
		}
	}

	invalid := []Type{"", "sql", "vector", "HYBRID"}
	for _, v := range invalid {
		if v.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", v)
		}
	}
}

func TestStyleIsValid(t *testing.T) {
	valid := []Style{Noisy, Complex, Conversational, Simple}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", s)
		}
	}

	invalid := []Style{"", "plain", "SIMPLE"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", s)
		}
	}
}

func TestConstants(t *testing.T) {
	if Statistical != "statistical" {
		t.Errorf("Statistical = %q", Statistical)
	}
	if Contextual != "contextual" {
		t.Errorf("Contextual = %q", Contextual)
	}
	if Hybrid != "hybrid" {
		t.Errorf("Hybrid = %q", Hybrid)
	}
}
