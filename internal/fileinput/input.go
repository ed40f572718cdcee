// Package fileinput tracks line locations while reading runes from a single
// input stream.
package fileinput

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jcorbin/pop/internal/runeio"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il *Line) String() string     { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements rune reading from one stream, tracking both the current
// and last scanned lines to facilitate user feedback.
type Input struct {
	rr   io.RuneReader
	Last Line
	Scan Line
}

// New returns an Input reading from r, named after r if it has a name.
func New(r io.Reader) *Input {
	in := &Input{rr: runeio.NewReader(r)}
	in.Scan.Name = runeio.Name(r)
	in.Scan.Line = 1
	return in
}

// ReadRune reads one rune, appending it into the current Scan line, and
// rolling Scan over to Last after line feed.
func (in *Input) ReadRune() (rune, int, error) {
	r, n, err := in.rr.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	if r == '\n' {
		in.nextLine()
	} else {
		in.Scan.WriteRune(r)
	}
	return r, n, nil
}

// Location returns the location of the most recently read content: the
// current line if it has any, otherwise the last completed one.
func (in *Input) Location() Location {
	if in.Scan.Len() == 0 && in.Last.Line != 0 {
		return in.Last.Location
	}
	return in.Scan.Location
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Location = in.Scan.Location
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}
