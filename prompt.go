package main

import (
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// promptReader reads input lines from an interactive terminal, presenting a
// prompt and keeping a line history.
type promptReader struct {
	line   lineReader
	prompt string
	buf    strings.Reader
}

type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func newPromptReader(prompt string) (*promptReader, io.Closer) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &promptReader{line: state, prompt: prompt}, state
}

func (pr *promptReader) Name() string { return "stdin" }

// Read returns the rest of the last line entered, prompting for another once
// it is consumed; an aborted prompt reads as the end of input.
func (pr *promptReader) Read(p []byte) (int, error) {
	for pr.buf.Len() == 0 {
		line, err := pr.line.Prompt(pr.prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return 0, io.EOF
		} else if err != nil {
			return 0, err
		}
		if strings.TrimSpace(line) != "" {
			pr.line.AppendHistory(line)
		}
		pr.buf.Reset(line + "\n")
	}
	return pr.buf.Read(p)
}
