// Package demo runs the full demonstration: it builds the scenario
// records, pushes them through every passing convention in order, prints
// what the caller sees after each call, and ends with the size report.
//
// SEQUENCE:
//  1. s1 = {Adam, Ziemniak, 20, 4.0}
//  2. ByValue(s1)            → s1 unchanged
//  3. s1 = ByValueOut(s1)    → s1 = 30, 0.8
//  4. s2 = {Jan, Kowalski, 23, 5.0}, p = &s2
//  5. ByPointer(p)           → s2 = 33, 3.0
//  6. s3 = s2                (whole-record copy)
//  7. s4 = ByPointerCopy(&s3) → s4 = 36, 4.5, s3 unchanged
//  8. ByPointerInOut(&s4)    → s4 = 26, 2.5
//  9. h = HeapCopy(s4), then release h exactly once
//  10. size report for Student and PadN1..PadN5
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aanand-mishra/student-structs/internal/heap"
	"github.com/aanand-mishra/student-structs/internal/layout"
	"github.com/aanand-mishra/student-structs/internal/passing"
	"github.com/aanand-mishra/student-structs/internal/storage"
	"github.com/aanand-mishra/student-structs/internal/types"
	"github.com/aanand-mishra/student-structs/internal/utils/report"
	"github.com/aanand-mishra/student-structs/internal/validate"
)

// Step names, used as journal keys.
const (
	StepInit           = "init"
	StepByValue        = "by-value"
	StepByValueOut     = "by-value-out"
	StepByPointer      = "by-pointer"
	StepCopy           = "copy"
	StepByPointerCopy  = "by-pointer-copy"
	StepByPointerInOut = "by-pointer-inout"
	StepHeapCopy       = "heap-copy"
)

// EndMessage is the last line of a successful run.
const EndMessage = "End of program."

// Adam is the first seed record.
func Adam() types.Student {
	return types.Student{FirstName: "Adam", LastName: "Ziemniak", Age: 20, Average: 4.0}
}

// Jan is the second seed record.
func Jan() types.Student {
	return types.Student{FirstName: "Jan", LastName: "Kowalski", Age: 23, Average: 5.0}
}

// Runner holds everything a run needs. Out and Alloc are required; a nil
// Log discards logs and a nil Journal records nothing.
type Runner struct {
	Out        io.Writer
	Log        *slog.Logger
	Alloc      heap.Allocator
	Journal    storage.Journal
	ShowLayout bool
}

// Result is the caller-side state at the end of a run.
type Result struct {
	RunID   string
	S1      types.Student
	S2      types.Student
	S3      types.Student
	S4      types.Student
	Heap    types.Student // contents of the heap copy before it was released
	Layouts []layout.Layout
}

// Run executes the demonstration once.
func (r *Runner) Run() (Result, error) {
	out := report.NewPrinter(r.Out)
	log := r.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	journal := r.Journal
	printJournal := journal != nil
	if journal == nil {
		journal = storage.Discard{}
	}

	res := Result{RunID: uuid.New().String()}
	log = log.With(slog.String("run_id", res.RunID))

	record := func(step, label string, s types.Student) error {
		if _, err := journal.Record(res.RunID, step, label, s); err != nil {
			return fmt.Errorf("demo.Run: journal %s/%s: %w", step, label, err)
		}
		log.Debug("step completed",
			slog.String("step", step),
			slog.String("label", label),
			slog.Int("age", s.Age),
			slog.Float64("average", s.Average))
		return nil
	}

	// ── Seeds ─────────────────────────────────────────────────────────────
	for _, seed := range []types.Student{Adam(), Jan()} {
		if err := validate.Struct(seed); err != nil {
			return res, fmt.Errorf("demo.Run: invalid seed %s %s: %w", seed.FirstName, seed.LastName, err)
		}
	}

	// ── s1: by value ──────────────────────────────────────────────────────
	s1 := Adam()

	report.Record(out, "", s1)
	if err := record(StepInit, "s1", s1); err != nil {
		return res, err
	}

	passing.ByValue(out, s1)
	report.Record(out, "After ByValue", s1)
	if err := record(StepByValue, "s1", s1); err != nil {
		return res, err
	}

	s1 = passing.ByValueOut(out, s1)
	report.Record(out, "After ByValueOut and reassignment to s1", s1)
	if err := record(StepByValueOut, "s1", s1); err != nil {
		return res, err
	}

	// ── s2: by pointer ────────────────────────────────────────────────────
	s2 := Jan()
	p := &s2

	report.Record(out, "Pointer", *p)
	if err := record(StepInit, "s2", *p); err != nil {
		return res, err
	}

	passing.ByPointer(out, p)
	report.Record(out, "Pointer after ByPointer", *p)
	if err := record(StepByPointer, "s2", s2); err != nil {
		return res, err
	}

	// ── s3: whole-record copy ─────────────────────────────────────────────
	s3 := s2
	report.Record(out, "Copy", s3)
	if err := record(StepCopy, "s3", s3); err != nil {
		return res, err
	}

	// ── s4: copy out of a pointer, then in/out ────────────────────────────
	s4 := passing.ByPointerCopy(out, &s3)
	report.Record(out, "s4 after assignment from ByPointerCopy", s4)
	if err := record(StepByPointerCopy, "s3", s3); err != nil {
		return res, err
	}
	if err := record(StepByPointerCopy, "s4", s4); err != nil {
		return res, err
	}

	passing.ByPointerInOut(out, &s4)
	report.Record(out, "s4 after ByPointerInOut", s4)
	if err := record(StepByPointerInOut, "s4", s4); err != nil {
		return res, err
	}

	// ── heap copy ─────────────────────────────────────────────────────────
	h := passing.HeapCopy(out, r.Alloc, s4)
	if h == nil {
		// Only reachable when the process exit has been intercepted.
		return res, fmt.Errorf("demo.Run: heap copy: %s", passing.AllocFailureMessage)
	}
	res.Heap = *h
	if err := record(StepHeapCopy, "heap", *h); err != nil {
		_ = r.Alloc.Free(h)
		return res, err
	}
	if err := r.Alloc.Free(h); err != nil {
		return res, fmt.Errorf("demo.Run: free heap copy: %w", err)
	}

	// ── size report ───────────────────────────────────────────────────────
	res.Layouts = layout.Records()
	layout.Write(out, res.Layouts, r.ShowLayout)

	if printJournal {
		if err := writeJournal(out, journal, res.RunID); err != nil {
			return res, err
		}
	}

	report.Line(out, EndMessage)

	res.S1, res.S2, res.S3, res.S4 = s1, s2, s3, s4

	if err := out.Err(); err != nil {
		return res, fmt.Errorf("demo.Run: write output: %w", err)
	}

	log.Info("demonstration finished")
	return res, nil
}

func writeJournal(w io.Writer, j storage.Journal, runID string) error {
	snaps, err := j.Snapshots(runID)
	if err != nil {
		return fmt.Errorf("demo.Run: read journal: %w", err)
	}

	fmt.Fprintf(w, "\nJournal (%d snapshots):\n", len(snaps))
	for _, s := range snaps {
		fmt.Fprintf(w, "  %-16s %-5s %s %s, age %d, average %f\n",
			s.Step, s.Label, s.FirstName, s.LastName, s.Age, s.Average)
	}
	return nil
}
