// Package logio provides a small leveled logger and a line-oriented writer
// around printf-style logging functions.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Logger implements a leveled logging facility around an output stream.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf("ERROR", mess, args...); err != nil {
		log.exitCode = 2
	} else if log.exitCode == 0 {
		log.exitCode = 1
	}
}

// Printf prints a line to the output stream like "level: message...\n".
// An output error is retained as exit code 2, since it cannot be reported.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	defer log.buf.Reset()
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	if log.output == nil {
		return nil
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}
