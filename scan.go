package main

import (
	"io"
	"strings"
	"unicode"
)

// maxWordLen bounds how many runes of a single word are kept; anything past
// it is discarded up to the next space.
const maxWordLen = 63

// readWord reads the next space-delimited word from input, returning io.EOF
// once input runs out before any word starts. Any buffered output is flushed
// first, since reading may block on an interactive user.
func (vm *VM) readWord() (string, error) {
	if err := vm.flush(); err != nil {
		return "", err
	}

	var sb strings.Builder
	n := 0
	for {
		r, _, err := vm.in.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
			n++
			break
		}
	}
	for {
		r, _, err := vm.in.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return "", err
		} else if unicode.IsSpace(r) {
			break
		} else if n < maxWordLen {
			sb.WriteRune(r)
			n++
		}
	}
	return sb.String(), nil
}

// scan reads the next word, halting the machine at the end of input.
func (vm *VM) scan() (word string) {
	vm.word = ""
	word, err := vm.readWord()
	vm.haltif(err)
	vm.logf("scan %q from %v", word, vm.in.Location())
	return word
}
