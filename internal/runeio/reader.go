// Package runeio provides rune reading around plain byte streams.
package runeio

import (
	"bufio"
	"fmt"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// If r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

// NamedReader attaches a name to r, as reported by Name.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

// Name returns the name of obj if it implements Name() string, or a
// placeholder naming its type.
func Name(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }
