// Package report provides helpers for writing the demonstration's console
// lines in one consistent format.
//
// Every step of the demonstration prints a record before or after it
// touches it. Rather than repeating the same format string in every
// function, we centralise the shapes here.
package report

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/student-structs/internal/types"
)

// ─────────────────────────────────────────────────────────────────────────────
// Printer wraps an io.Writer and remembers the FIRST write error.
//
// Console output is written from many small helpers; checking an error
// after each Fprintf would bury the demonstration in boilerplate. Instead
// every write goes through the Printer, later writes become no-ops once one
// has failed, and the caller checks Err() once at the end.
// ─────────────────────────────────────────────────────────────────────────────
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Write implements io.Writer so a Printer can be handed to anything that
// prints (the passing functions, the layout report).
func (p *Printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	if err != nil {
		p.err = err
	}
	return n, err
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

// ─────────────────────────────────────────────────────────────────────────────
// Record prints every field of s, optionally preceded by a label:
//
//	After ByValue: Name: Adam, Surname: Ziemniak, Age: 20 years, Average: 4.000000
//
// ─────────────────────────────────────────────────────────────────────────────
func Record(w io.Writer, label string, s types.Student) {
	if label != "" {
		label += ": "
	}
	fmt.Fprintf(w, "\n%sName: %s, Surname: %s, Age: %d years, Average: %f\n",
		label, s.FirstName, s.LastName, s.Age, s.Average)
}

// Trace prints only the two mutable numeric fields. The passing functions
// use it to show their local view of a record.
func Trace(w io.Writer, label string, s types.Student) {
	fmt.Fprintf(w, "\n%s: Age: %d years, Average: %f\n", label, s.Age, s.Average)
}

// Size prints one line of the size report.
func Size(w io.Writer, name string, size uintptr) {
	fmt.Fprintf(w, "\nSize of %s: %d\n", name, size)
}

// Line prints a plain message on its own line.
func Line(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}
