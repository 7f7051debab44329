package trail

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum number of fraction digits with which to format coordinates.
	// Trailing zeros are dropped. A value of 0 chooses the highest precision
	// necessary to unambiguously represent any given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Commands use absolute coordinates. Each command letter is followed by a
// space and its coordinate pairs, written as "x,y" and separated by spaces,
// for example "M 0,0 C 2,0 8,-2 10,0". Commands are separated by a single
// space. An empty sequence writes nothing.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return formatCoord(n, opts.MaxPrecision)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M %s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L %s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C %s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

func formatCoord(n float64, maxPrec int) string {
	var s string
	if maxPrec <= 0 {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		// Rounding a tiny negative value shouldn't leave a sign behind.
		return "0"
	}
	return s
}
