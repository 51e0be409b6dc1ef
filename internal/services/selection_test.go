package services

import "testing"

func TestSelection(t *testing.T) {
	var s Selection
	if s.Complete() {
		t.Fatalf("empty selection reported complete")
	}

	s.SetStart("A")
	if s.Complete() {
		t.Fatalf("start-only selection reported complete")
	}

	s.SetEnd("A")
	if !s.Complete() {
		t.Fatalf("same-node selection must be complete")
	}
	if s.Start != "A" || s.End != "A" {
		t.Fatalf("selection = %+v, want A/A", s)
	}

	s.Clear()
	if s != (Selection{}) {
		t.Fatalf("Clear left %+v", s)
	}
}
