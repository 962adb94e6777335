/*
Package emit writes numeric arrays as assembly or C source.

Values are written exactly as supplied; the emitter owns the declaration
syntax only, never the packing.
*/
package emit

import (
	"fmt"
	"io"
)

// Format selects the output syntax
type Format int

const (
	// Asm emits Motorola 68000 assembly dc.w/dc.b directives
	Asm Format = iota
	// C emits const unsigned arrays
	C
)

const perLine = 8

// ParseFormat maps a format name from the command line to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "asm":
		return Asm, nil
	case "c":
		return C, nil
	}
	return 0, fmt.Errorf("emit: unknown format %q", s)
}

// An Emitter writes named constants and arrays to w in a single syntax.
type Emitter struct {
	w      io.Writer
	format Format
}

// New returns an Emitter writing f syntax to w.
func New(w io.Writer, f Format) *Emitter {
	return &Emitter{
		w:      w,
		format: f,
	}
}

// Constant writes a named integer constant.
func (e *Emitter) Constant(name string, v int) error {
	switch e.format {
	case Asm:
		_, err := fmt.Fprintf(e.w, "%s\tequ\t%d\n", name, v)
		return err
	default:
		_, err := fmt.Fprintf(e.w, "#define %s %d\n", name, v)
		return err
	}
}

// Words writes a named array of 16-bit values.
func (e *Emitter) Words(name string, v []uint16) error {
	if e.format == C {
		return e.array(name, "unsigned short", len(v), func(i int) string {
			return fmt.Sprintf("0x%04x", v[i])
		})
	}
	return e.directive(name, "dc.w", len(v), func(i int) string {
		return fmt.Sprintf("$%04x", v[i])
	})
}

// Bytes writes a named array of 8-bit values.
func (e *Emitter) Bytes(name string, v []byte) error {
	if e.format == C {
		return e.array(name, "unsigned char", len(v), func(i int) string {
			return fmt.Sprintf("0x%02x", v[i])
		})
	}
	return e.directive(name, "dc.b", len(v), func(i int) string {
		return fmt.Sprintf("$%02x", v[i])
	})
}

func (e *Emitter) directive(name, d string, n int, value func(int) string) error {
	if _, err := fmt.Fprintf(e.w, "\n%s:\n", name); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		sep := ","
		if i%perLine == 0 {
			sep = "\t" + d + "\t"
		}
		if _, err := fmt.Fprintf(e.w, "%s%s", sep, value(i)); err != nil {
			return err
		}
		if i%perLine == perLine-1 || i == n-1 {
			if _, err := fmt.Fprintln(e.w); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Emitter) array(name, typ string, n int, value func(int) string) error {
	if _, err := fmt.Fprintf(e.w, "\nconst %s %s[] = {\n", typ, name); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		sep := ", "
		if i%perLine == 0 {
			sep = "\t"
		}
		if _, err := fmt.Fprintf(e.w, "%s%s", sep, value(i)); err != nil {
			return err
		}
		if i%perLine == perLine-1 || i == n-1 {
			if _, err := fmt.Fprintln(e.w, ","); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(e.w, "};")
	return err
}
