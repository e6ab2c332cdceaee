package systems

import "testing"

func TestFootstepPickerNeverRepeats(t *testing.T) {
	p := NewFootstepPicker([]string{"a", "b", "c", "d"}, testRand())

	prev := ""
	for i := range 200 {
		cue, ok := p.Next()
		if !ok {
			t.Fatalf("step %d: Next returned false", i)
		}
		if cue == prev {
			t.Fatalf("step %d: %q played twice in a row", i, cue)
		}
		prev = cue
	}
}

func TestFootstepPickerTwoCuesAlternate(t *testing.T) {
	p := NewFootstepPicker([]string{"a", "b"}, testRand())

	first, _ := p.Next()
	second, _ := p.Next()
	third, _ := p.Next()
	if first != "b" || second != "a" || third != "b" {
		t.Errorf("sequence: got %s %s %s, want b a b", first, second, third)
	}
}

func TestFootstepPickerSingleAndEmpty(t *testing.T) {
	single := NewFootstepPicker([]string{"only"}, testRand())
	for range 3 {
		if cue, ok := single.Next(); !ok || cue != "only" {
			t.Errorf("single pool: got %q (%v), want only", cue, ok)
		}
	}

	empty := NewFootstepPicker(nil, testRand())
	if _, ok := empty.Next(); ok {
		t.Error("empty pool should return false")
	}
}

func TestFootstepPickerCopiesInput(t *testing.T) {
	cues := []string{"a", "b", "c"}
	p := NewFootstepPicker(cues, testRand())
	p.Next()
	if cues[0] != "a" || cues[1] != "b" || cues[2] != "c" {
		t.Errorf("input slice modified: %v", cues)
	}
	if p.Len() != 3 {
		t.Errorf("Len: got %d, want 3", p.Len())
	}
}
