package passing

import (
	"bytes"
	"strings"
	"testing"
	"unsafe"

	"github.com/aanand-mishra/student-structs/internal/heap"
	"github.com/aanand-mishra/student-structs/internal/types"
)

func adam() types.Student {
	return types.Student{FirstName: "Adam", LastName: "Ziemniak", Age: 20, Average: 4.0}
}

func TestByValueLeavesCallerUnchanged(t *testing.T) {
	var out bytes.Buffer
	s1 := adam()

	ByValue(&out, s1)

	if s1 != adam() {
		t.Fatalf("caller record changed: %+v", s1)
	}
	trace := out.String()
	for _, want := range []string{
		"ByValue before modification: Age: 20 years, Average: 4.000000",
		"ByValue after modification: Age: 25 years, Average: 1.333333",
	} {
		if !strings.Contains(trace, want) {
			t.Errorf("trace missing %q\n%s", want, trace)
		}
	}
}

func TestByValueOut(t *testing.T) {
	var out bytes.Buffer
	s1 := adam()

	got := ByValueOut(&out, s1)

	if s1 != adam() {
		t.Fatalf("caller record changed without reassignment: %+v", s1)
	}

	s1 = got
	if s1.Age != 30 || s1.Average != 0.8 {
		t.Fatalf("after reassignment got age %d average %v, want 30 0.8", s1.Age, s1.Average)
	}
	if !strings.Contains(out.String(), "Age: 30 years, Average: 0.800000") {
		t.Errorf("unexpected trace: %s", out.String())
	}
}

func TestByPointerMutatesInPlace(t *testing.T) {
	var out bytes.Buffer
	s2 := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 23, Average: 5.0}

	ByPointer(&out, &s2)

	want := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 33, Average: 3.0}
	if s2 != want {
		t.Fatalf("got %+v, want %+v", s2, want)
	}
}

func TestByPointerCopyLeavesOriginal(t *testing.T) {
	var out bytes.Buffer
	s3 := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 33, Average: 3.0}
	before := s3

	s4 := ByPointerCopy(&out, &s3)

	if s3 != before {
		t.Fatalf("original changed: %+v", s3)
	}
	if s4.Age != before.Age+3 || s4.Average != 4.5 {
		t.Fatalf("copy = %+v, want age %d average 4.5", s4, before.Age+3)
	}
	if s4.FirstName != before.FirstName || s4.LastName != before.LastName {
		t.Fatalf("copy lost names: %+v", s4)
	}
}

func TestByPointerInOutWritesBack(t *testing.T) {
	var out bytes.Buffer
	s4 := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 36, Average: 4.5}

	ByPointerInOut(&out, &s4)

	want := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 26, Average: 2.5}
	if s4 != want {
		t.Fatalf("got %+v, want %+v", s4, want)
	}
}

func TestWholeRecordCopyIsIndependent(t *testing.T) {
	src := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 33, Average: 3.0}
	dst := src

	if dst != src {
		t.Fatalf("copy differs from source: %+v vs %+v", dst, src)
	}

	// The names are shared text, not duplicated.
	if unsafe.StringData(dst.FirstName) != unsafe.StringData(src.FirstName) {
		t.Error("copy does not alias the first name text")
	}

	dst.Age++
	src.Average = 1.0
	if src.Age != 33 {
		t.Errorf("mutating the copy changed the source age to %d", src.Age)
	}
	if dst.Average != 3.0 {
		t.Errorf("mutating the source changed the copy average to %v", dst.Average)
	}
}

func TestHeapCopy(t *testing.T) {
	var out bytes.Buffer
	a := heap.NewArena(0)
	s := types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 26, Average: 2.5}

	p := HeapCopy(&out, a, s)
	if p == nil {
		t.Fatal("HeapCopy returned nil")
	}
	if *p != s {
		t.Fatalf("heap copy = %+v, want %+v", *p, s)
	}

	// The heap record is independent of the argument.
	p.Age = 99
	if s.Age != 26 {
		t.Fatalf("argument changed through heap copy: %+v", s)
	}

	if !strings.Contains(out.String(), "Size of Student:") {
		t.Errorf("missing size line: %s", out.String())
	}
	if err := a.Free(p); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if a.Live() != 0 {
		t.Fatalf("Live() = %d after Free", a.Live())
	}
}

type exitCalled struct{ code int }

func TestHeapCopyAllocationFailureExits(t *testing.T) {
	orig := exit
	t.Cleanup(func() { exit = orig })
	exit = func(code int) { panic(exitCalled{code}) }

	var out bytes.Buffer
	a := heap.NewArena(1)
	held := a.Alloc() // exhaust the arena
	if held == nil {
		t.Fatal("setup Alloc returned nil")
	}

	defer func() {
		r := recover()
		ec, ok := r.(exitCalled)
		if !ok {
			t.Fatalf("expected exit, got %v", r)
		}
		if ec.code != 0 {
			t.Errorf("exit code = %d, want 0", ec.code)
		}
		if !strings.Contains(out.String(), AllocFailureMessage) {
			t.Errorf("missing failure message: %s", out.String())
		}
	}()

	HeapCopy(&out, a, adam())
	t.Fatal("HeapCopy returned after allocation failure")
}
