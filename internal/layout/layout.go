// Package layout reports how the compiler lays out a struct in memory:
// where each field starts, how big it is, and how much padding sits
// between fields and at the end.
//
// THE ALIGNMENT RULE:
// ───────────────────
// Every field starts at an offset that is a multiple of its own alignment,
// and the whole struct is rounded up to a multiple of its largest field
// alignment (so that elements of an array of structs stay aligned).
//
// For {float64; [n]byte; int32} on a 64-bit platform:
//
//	n = 1..4 → D@0, Tab@8, M@12        size 16
//	n = 5    → D@0, Tab@8, M@16 (3 pad) size 24 (4 trailing pad)
package layout

import (
	"fmt"
	"io"
	"reflect"

	"github.com/aanand-mishra/student-structs/internal/types"
	"github.com/aanand-mishra/student-structs/internal/utils/report"
)

// Field describes one struct field.
type Field struct {
	Name    string
	Offset  uintptr
	Size    uintptr
	Align   uintptr
	Padding uintptr // bytes between the end of this field and the next one (or the end of the struct)
}

// Layout describes a struct type.
type Layout struct {
	Name   string
	Size   uintptr
	Align  uintptr
	Fields []Field
}

// Describe returns the layout of v's type. v must be a struct or a pointer
// to one; anything else panics, as with reflect.
func Describe(v any) Layout {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("layout.Describe: %s is not a struct", t))
	}

	l := Layout{
		Name:   t.Name(),
		Size:   t.Size(),
		Align:  uintptr(t.Align()),
		Fields: make([]Field, t.NumField()),
	}

	for i := range l.Fields {
		f := t.Field(i)
		l.Fields[i] = Field{
			Name:   f.Name,
			Offset: f.Offset,
			Size:   f.Type.Size(),
			Align:  uintptr(f.Type.Align()),
		}
	}

	for i := range l.Fields {
		end := l.Fields[i].Offset + l.Fields[i].Size
		next := l.Size
		if i+1 < len(l.Fields) {
			next = l.Fields[i+1].Offset
		}
		l.Fields[i].Padding = next - end
	}

	return l
}

// Padding returns the total number of padding bytes in the struct.
func (l Layout) Padding() uintptr {
	var n uintptr
	for _, f := range l.Fields {
		n += f.Padding
	}
	return n
}

// Expected recomputes the struct size from its fields using the alignment
// rule alone.
func (l Layout) Expected() uintptr {
	var cursor, maxAlign uintptr = 0, 1
	for _, f := range l.Fields {
		cursor = roundUp(cursor, f.Align) + f.Size
		if f.Align > maxAlign {
			maxAlign = f.Align
		}
	}
	return roundUp(cursor, maxAlign)
}

// Consistent reports whether every field offset and the total size agree
// with the alignment rule.
func (l Layout) Consistent() bool {
	var cursor uintptr
	for _, f := range l.Fields {
		if f.Offset != roundUp(cursor, f.Align) {
			return false
		}
		cursor = f.Offset + f.Size
	}
	return l.Size == l.Expected()
}

func roundUp(n, align uintptr) uintptr {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

// Records returns the six shapes in the size report: Student followed by
// the five padding records in buffer-length order.
func Records() []Layout {
	return []Layout{
		Describe(types.Student{}),
		Describe(types.PadN1{}),
		Describe(types.PadN2{}),
		Describe(types.PadN3{}),
		Describe(types.PadN4{}),
		Describe(types.PadN5{}),
	}
}

// Write prints one "Size of <Name>" line per layout. With detail set, each
// line is followed by the field offsets and padding.
func Write(w io.Writer, layouts []Layout, detail bool) {
	for _, l := range layouts {
		report.Size(w, l.Name, l.Size)
		if !detail {
			continue
		}
		for _, f := range l.Fields {
			fmt.Fprintf(w, "  %-10s offset %3d  size %3d  align %d  padding %d\n",
				f.Name, f.Offset, f.Size, f.Align, f.Padding)
		}
		fmt.Fprintf(w, "  total padding %d, alignment %d\n", l.Padding(), l.Align)
	}
}
