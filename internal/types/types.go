// Package types holds the record types demonstrated by the program.
// Keeping them in one place lets passing, layout, storage and demo all
// import them without depending on each other.
package types

// Student is the only record the demonstration actually exercises.
//
// A Student is a VALUE type: assigning it or passing it to a function
// copies all four fields. The two strings are copied as string headers
// (pointer + length), so both copies share the same immutable text.
// Nothing here deep-copies names.
//
// Struct tags:
//
//  1. json:"..."     — key names used when a record is logged or journaled.
//  2. validate:"..." — rules checked by go-playground/validator before a
//     record is fed into the demonstration.
type Student struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	Age       int     `json:"age"        validate:"gte=0,lte=150"`
	Average   float64 `json:"average"    validate:"gte=0,lte=6"`
}

// Course is declared but never instantiated. It only appears in the
// layout report.
type Course struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// The PadN records share one shape: an 8-byte float, an n-byte buffer
// and a 4-byte integer. They hold no data; they exist so the size report
// can show how alignment padding changes with the buffer length.
type (
	PadN1 struct {
		D   float64
		Tab [1]byte
		M   int32
	}
	PadN2 struct {
		D   float64
		Tab [2]byte
		M   int32
	}
	PadN3 struct {
		D   float64
		Tab [3]byte
		M   int32
	}
	PadN4 struct {
		D   float64
		Tab [4]byte
		M   int32
	}
	PadN5 struct {
		D   float64
		Tab [5]byte
		M   int32
	}
)

// Snapshot is one journal row: the caller-side view of a record right
// after a demonstration step.
type Snapshot struct {
	ID    int64  `json:"id"`
	RunID string `json:"run_id"`
	Step  string `json:"step"`
	Label string `json:"label"` // variable name in the scenario, e.g. "s1"

	Student
}
