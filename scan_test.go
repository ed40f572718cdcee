package main

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readWords(t *testing.T, input string) []string {
	vm := New(WithInput(strings.NewReader(input)))
	var words []string
	for {
		word, err := vm.readWord()
		if err == io.EOF {
			return words
		}
		require.NoError(t, err)
		words = append(words, word)
	}
}

func TestVM_readWord(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		words []string
	}{
		{"empty", "", nil},
		{"blank", " \t\n\r\v\f ", nil},
		{"one", "hello", []string{"hello"}},
		{"padded", "  hello\n", []string{"hello"}},
		{"many", "1 2 + .", []string{"1", "2", "+", "."}},
		{"lines", "1\n2\r\n\n.s", []string{"1", "2", ".s"}},
		{"unicode", "héllo wörld λ", []string{"héllo", "wörld", "λ"}},
		{"punctuation", ".s.s +-+ ()", []string{".s.s", "+-+", "()"}},
		{"control runes", "a\x00b \x01", []string{"a\x00b", "\x01"}},
		{"bounded", strings.Repeat("ab", 40) + " c", []string{strings.Repeat("ab", 31) + "a", "c"}},
		{"bounded runes", strings.Repeat("λ", 64) + "\nc", []string{strings.Repeat("λ", maxWordLen), "c"}},
		{"at bound", strings.Repeat("z", maxWordLen) + " c", []string{strings.Repeat("z", maxWordLen), "c"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.words, readWords(t, tc.input))
		})
	}
}

func TestVM_readWord_flushes(t *testing.T) {
	var out strings.Builder
	vm := New(WithInput(strings.NewReader("x")), WithOutput(opaqueWriter{&out}))
	io.WriteString(vm.out, "3\n")
	assert.Equal(t, "", out.String(), "expected output to be buffered")

	word, err := vm.readWord()
	require.NoError(t, err)
	assert.Equal(t, "x", word)
	assert.Equal(t, "3\n", out.String(), "expected output flushed before reading")
}

// hides any buffer methods, so that output gets buffered
type opaqueWriter struct{ w io.Writer }

func (ow opaqueWriter) Write(p []byte) (int, error) { return ow.w.Write(p) }
