package pagination

import (
	"errors"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	p, err := New(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Number != 1 {
		t.Errorf("expected page 1, got %d", p.Number)
	}
	if p.Size != DefaultPageSize {
		t.Errorf("expected size %d, got %d", DefaultPageSize, p.Size)
	}
}

func TestNew_Invalid(t *testing.T) {
	if _, err := New(-1, 6); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("expected ErrInvalidPage, got %v", err)
	}
	if _, err := New(1, -6); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("expected ErrInvalidPageSize, got %v", err)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{14, 6, 3},
		{12, 6, 2},
		{1, 6, 1},
		{0, 6, 0},
		{6, 6, 1},
		{7, 6, 2},
	}
	for _, tt := range tests {
		p, _ := New(1, tt.size)
		if got := p.TotalPages(tt.total); got != tt.want {
			t.Errorf("TotalPages(%d) with size %d = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 14)
	for i := range items {
		items[i] = i + 1
	}

	p, _ := New(1, 6)
	if got := Slice(items, p); len(got) != 6 || got[0] != 1 {
		t.Errorf("page 1: got %v", got)
	}

	p, _ = New(3, 6)
	if got := Slice(items, p); len(got) != 2 || got[0] != 13 {
		t.Errorf("page 3: got %v", got)
	}

	// Pages past the last one yield an empty slice, not an error.
	p, _ = New(4, 6)
	if got := Slice(items, p); len(got) != 0 {
		t.Errorf("page 4: expected empty, got %v", got)
	}
}

func TestSlice_Idempotent(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	p, _ := New(2, 2)
	first := Slice(items, p)
	second := Slice(items, p)
	if len(first) != len(second) {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("expected identical results, got %v and %v", first, second)
		}
	}
}
