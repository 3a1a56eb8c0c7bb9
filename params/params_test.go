package params

import "testing"

func TestRepetitionsMatchesPublishedValues(t *testing.T) {
	if got := Repetitions(Sigma40); got != 69 {
		t.Errorf("Repetitions(Sigma40) = %d, want 69", got)
	}
	if got := Repetitions(Sigma80); got != 137 {
		t.Errorf("Repetitions(Sigma80) = %d, want 137", got)
	}
}
