package flushio

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hides the buffer methods, so that it gets wrapped in a bufio.Writer
type opaqueWriter struct{ w io.Writer }

func (ow opaqueWriter) Write(p []byte) (int, error) { return ow.w.Write(p) }

type failWriter struct{ err error }

func (fw failWriter) Write(p []byte) (int, error) { return 0, fw.err }

func TestNewWriteFlusher(t *testing.T) {
	assert.Equal(t, discard, NewWriteFlusher(io.Discard))
	assert.Equal(t, discard, NewWriteFlusher(nil))

	var sb strings.Builder
	wf := NewWriteFlusher(&sb)
	io.WriteString(wf, "hello")
	assert.Equal(t, "hello", sb.String(), "expected buffers to be written through")
	assert.NoError(t, wf.Flush())

	var buf bytes.Buffer
	wf = NewWriteFlusher(opaqueWriter{&buf})
	io.WriteString(wf, "hello")
	assert.Equal(t, "", buf.String(), "expected output to be buffered")
	require.NoError(t, wf.Flush())
	assert.Equal(t, "hello", buf.String(), "expected output after flush")

	assert.Equal(t, wf, NewWriteFlusher(wf), "expected flushers to pass through")
}

func TestWriteFlushers(t *testing.T) {
	assert.Equal(t, discard, WriteFlushers())
	assert.Equal(t, discard, WriteFlushers(nil, discard))

	var a, b bytes.Buffer
	one := NewWriteFlusher(&a)
	assert.Equal(t, one, WriteFlushers(one, nil))

	wf := WriteFlushers(one, NewWriteFlusher(opaqueWriter{&b}))
	wf = WriteFlushers(wf, discard)
	io.WriteString(wf, "1 2 3")
	assert.Equal(t, "1 2 3", a.String())
	assert.Equal(t, "", b.String())
	require.NoError(t, wf.Flush())
	assert.Equal(t, "1 2 3", b.String())

	boom := errors.New("boom")
	wf = WriteFlushers(one, NewWriteFlusher(failWriter{boom}))
	io.WriteString(wf, "!")
	assert.Equal(t, boom, wf.Flush(), "expected flush error")
}
