// Package passing contains one small function per way of handing a
// Student to a function.
//
// HOW GO PASSES ARGUMENTS:
// ────────────────────────
// Go always passes by value. What differs is WHAT the value is:
//
//	func f(s types.Student)   // the whole record is copied
//	func g(p *types.Student)  // the ADDRESS is copied; *p is the caller's record
//
// So f can never change the caller's record (unless it returns the copy and
// the caller reassigns it), while g mutates the caller's record in place.
//
// Every function prints its local view of the record to w so the effect of
// each convention can be compared with what the caller sees afterwards.
package passing

import (
	"io"
	"os"
	"unsafe"

	"github.com/aanand-mishra/student-structs/internal/heap"
	"github.com/aanand-mishra/student-structs/internal/types"
	"github.com/aanand-mishra/student-structs/internal/utils/report"
)

// AllocFailureMessage is printed right before the process terminates when
// HeapCopy gets no storage.
const AllocFailureMessage = "Memory Allocation Error!"

// exit terminates the process. Tests replace it to observe the
// allocation-failure path without killing the test binary.
var exit = os.Exit

// ByValue receives a COPY of the caller's record. The mutations below are
// lost when the function returns.
func ByValue(w io.Writer, s types.Student) {
	report.Trace(w, "ByValue before modification", s)

	s.Age += 5
	s.Average = s.Average / 3

	report.Trace(w, "ByValue after modification", s)
}

// ByValueOut mutates its copy and hands it back. The caller only observes
// the change if it assigns the result:
//
//	s1 = passing.ByValueOut(w, s1)
func ByValueOut(w io.Writer, s types.Student) types.Student {
	s.Age += 10
	s.Average = s.Average / 5

	report.Trace(w, "ByValueOut after modification", s)
	return s
}

// ByPointer mutates the caller's record directly through p.
func ByPointer(w io.Writer, p *types.Student) {
	// (*p).Age and p.Age are the same thing; Go dereferences struct
	// pointers automatically on field access.
	(*p).Age += 10
	p.Average = 3.0

	report.Trace(w, "ByPointer after modification", *p)
}

// ByPointerCopy reads the caller's record through p but works on a local
// copy. *p is left untouched; only the returned copy carries the change.
func ByPointerCopy(w io.Writer, p *types.Student) types.Student {
	s := *p // whole-record copy
	s.Age += 3
	s.Average = 4.5

	report.Trace(w, "ByPointerCopy after modification", s)
	return s
}

// ByPointerInOut copies the caller's record, computes on the copy, then
// writes every field back through p. The end result matches ByPointer; the
// difference is the explicit copy → compute → write-back shape.
func ByPointerInOut(w io.Writer, p *types.Student) {
	s := *p
	s.Age -= 10
	s.Average = 2.5

	report.Trace(w, "ByPointerInOut after modification", s)

	p.FirstName = s.FirstName
	p.LastName = s.LastName
	p.Age = s.Age
	p.Average = s.Average
}

// ─────────────────────────────────────────────────────────────────────────────
// HeapCopy copies s into storage obtained from a and returns its address.
//
// OWNERSHIP:
// ──────────
// The caller owns the returned record and must release it with a.Free
// exactly once.
//
// FAILURE:
// ────────
// If a has no storage left (Alloc returns nil) the function prints
// AllocFailureMessage and terminates the process at once with status 0.
// Nothing is cleaned up and the nil pointer is never dereferenced.
// ─────────────────────────────────────────────────────────────────────────────
func HeapCopy(w io.Writer, a heap.Allocator, s types.Student) *types.Student {
	p := a.Alloc()
	report.Size(w, "Student", unsafe.Sizeof(types.Student{}))

	if p == nil {
		report.Line(w, AllocFailureMessage)
		exit(0)
		return nil // only reached when exit has been replaced
	}

	*p = s
	return p
}
