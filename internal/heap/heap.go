// Package heap hands out heap-allocated Student records with explicit
// ownership: whoever receives a record from Alloc must give it back to
// Free exactly once.
//
// Go is garbage collected, so "freeing" here does not return memory to the
// OS. What it does is make ownership observable: the Arena knows which
// records are still outstanding, refuses a second Free, and can be capped
// so that Alloc fails the way malloc does when memory runs out.
package heap

import (
	"errors"
	"sync"

	"github.com/aanand-mishra/student-structs/internal/types"
)

var (
	// ErrDoubleFree is returned when a record is released a second time.
	ErrDoubleFree = errors.New("heap: record already freed")

	// ErrForeignPointer is returned for a pointer this allocator never
	// handed out (including nil).
	ErrForeignPointer = errors.New("heap: pointer not allocated by this arena")
)

// Allocator is the contract the heap-copy demonstration depends on.
// Alloc returns nil when no storage is available.
type Allocator interface {
	Alloc() *types.Student
	Free(s *types.Student) error
}

// Arena is a counting Allocator. The zero value is not usable; call
// NewArena.
type Arena struct {
	mu    sync.Mutex
	limit int // 0 = unlimited, negative = nothing available
	live  map[*types.Student]struct{}
	freed map[*types.Student]struct{}
	total int
}

// NewArena returns an Arena that allows at most limit records to be live
// at the same time. A limit of 0 means no cap; a negative limit makes
// every Alloc fail.
func NewArena(limit int) *Arena {
	return &Arena{
		limit: limit,
		live:  make(map[*types.Student]struct{}),
		freed: make(map[*types.Student]struct{}),
	}
}

// Alloc returns a zeroed record, or nil once the limit is reached.
func (a *Arena) Alloc() *types.Student {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.limit < 0 || (a.limit > 0 && len(a.live) >= a.limit) {
		return nil
	}

	s := new(types.Student)
	a.live[s] = struct{}{}
	a.total++
	return s
}

// Free releases s. The record is zeroed so a stale pointer held by the
// caller reads as empty rather than as the old data.
func (a *Arena) Free(s *types.Student) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.live[s]; !ok {
		if _, gone := a.freed[s]; gone {
			return ErrDoubleFree
		}
		return ErrForeignPointer
	}

	delete(a.live, s)
	a.freed[s] = struct{}{}
	*s = types.Student{}
	return nil
}

// Live reports how many records are allocated and not yet freed.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Total reports how many records were ever allocated.
func (a *Arena) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}
