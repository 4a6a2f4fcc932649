package heap

import (
	"errors"
	"testing"

	"github.com/aanand-mishra/student-structs/internal/types"
)

func TestArenaAllocFree(t *testing.T) {
	a := NewArena(0)

	s := a.Alloc()
	if s == nil {
		t.Fatal("Alloc returned nil on an unlimited arena")
	}
	if *s != (types.Student{}) {
		t.Fatalf("Alloc returned non-zero record: %+v", *s)
	}
	if got := a.Live(); got != 1 {
		t.Fatalf("Live() = %d, want 1", got)
	}

	s.FirstName = "Jan"
	if err := a.Free(s); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if got := a.Live(); got != 0 {
		t.Fatalf("Live() after Free = %d, want 0", got)
	}
	if *s != (types.Student{}) {
		t.Fatalf("Free did not zero the record: %+v", *s)
	}
}

func TestArenaFreeErrors(t *testing.T) {
	a := NewArena(0)
	s := a.Alloc()
	if err := a.Free(s); err != nil {
		t.Fatalf("first Free: %v", err)
	}

	tests := []struct {
		name string
		ptr  *types.Student
		want error
	}{
		{"double free", s, ErrDoubleFree},
		{"foreign pointer", &types.Student{}, ErrForeignPointer},
		{"nil pointer", nil, ErrForeignPointer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := a.Free(tt.ptr); !errors.Is(err, tt.want) {
				t.Fatalf("Free() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestArenaLimit(t *testing.T) {
	a := NewArena(1)

	first := a.Alloc()
	if first == nil {
		t.Fatal("first Alloc returned nil")
	}
	if second := a.Alloc(); second != nil {
		t.Fatal("Alloc past the limit returned a record")
	}

	if err := a.Free(first); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if again := a.Alloc(); again == nil {
		t.Fatal("Alloc after Free returned nil")
	}
	if got := a.Total(); got != 2 {
		t.Fatalf("Total() = %d, want 2", got)
	}
}

func TestArenaNegativeLimitNeverAllocates(t *testing.T) {
	a := NewArena(-1)
	if s := a.Alloc(); s != nil {
		t.Fatalf("Alloc on a negative-limit arena returned %+v", s)
	}
	if a.Total() != 0 {
		t.Fatalf("Total() = %d, want 0", a.Total())
	}
}
