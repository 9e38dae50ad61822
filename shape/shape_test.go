package shape

import "testing"

func TestContainsPoint(t *testing.T) {
	r := NewRect(10, 10, 4, 4)
	table := []struct {
		p        Point
		expected bool
	}{
		{NewPoint(10, 10), true},
		{NewPoint(13, 13), true},
		{NewPoint(14, 10), false},
		{NewPoint(10, 14), false},
		{NewPoint(9, 12), false},
	}

	for _, entry := range table {
		if got := r.ContainsPoint(entry.p); got != entry.expected {
			t.Fatalf("ContainsPoint(%v): got %v, expected %v", entry.p, got, entry.expected)
		}
	}
}

func TestHasIntersection(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	table := []struct {
		o        Rect
		expected bool
	}{
		{NewRect(5, 5, 10, 10), true},
		{NewRect(10, 0, 5, 5), false},
		{NewRect(-5, -5, 6, 6), true},
		{NewRect(2, 2, 0, 3), false},
	}

	for _, entry := range table {
		if got := r.HasIntersection(entry.o); got != entry.expected {
			t.Fatalf("HasIntersection(%v): got %v, expected %v", entry.o, got, entry.expected)
		}
	}
}

func TestFromCenter(t *testing.T) {
	r := FromCenter(NewPoint(50, 40), 32, 32)
	if r != NewRect(34, 24, 32, 32) {
		t.Fatalf("FromCenter: got %v", r)
	}
	if c := r.Center(); c != NewPoint(50, 40) {
		t.Fatalf("Center: got %v, expected {50 40}", c)
	}
}
