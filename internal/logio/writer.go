package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function.
type Writer struct {
	Logf   func(string, ...interface{})
	Prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then logs any completed lines through Logf.
// Safe to use from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync logs any remaining partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		i := bytes.IndexByte(lw.buf.Bytes(), '\n')
		if i >= 0 {
			lw.Logf("%s%s", lw.Prefix, lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s%s", lw.Prefix, lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
