package main

import "strconv"

// Terms are the values and operations of the machine: they sit on the stack,
// and are what words in the environment are bound to.
type Term struct {
	code termCode
	val  int
}

type termCode uint8

const (
	termInvalid termCode = iota

	// Data
	termInteger // <DATA>  a signed integer

	// Code
	termDot        // .   pop top of stack and print it
	termPrintStack // .s  print the whole stack, bottom to top
	termPlus       // +   pop top 2 elements of stack, add, push

	termCodeMax
)

var termCodeNames = [termCodeMax]string{
	"invalid",
	"integer",
	".",
	".s",
	"+",
}

// Integer returns an integer data term.
func Integer(i int) Term { return Term{code: termInteger, val: i} }

// The built-in operation terms.
var (
	Dot        = Term{code: termDot}
	PrintStack = Term{code: termPrintStack}
	Plus       = Term{code: termPlus}
)

// builtins are bound into every new environment, in order, so that the last
// one ends up at the head of the chain.
var builtins = [...]struct {
	word string
	term Term
}{
	{".", Dot},
	{".s", PrintStack},
	{"+", Plus},
}

// Integer returns the term's value, and whether it is an integer at all.
func (t Term) Integer() (int, bool) {
	return t.val, t.code == termInteger
}

func (t Term) String() string {
	switch {
	case t.code == termInteger:
		return strconv.Itoa(t.val)
	case t.code > termInteger && t.code < termCodeMax:
		return "builtin<" + termCodeNames[t.code] + ">"
	default:
		return termCodeNames[termInvalid]
	}
}

// parseInteger parses a whole word as a base 10 integer literal, with an
// optional leading sign; any trailing non-digit or out of range value fails.
func parseInteger(word string) (int, error) {
	n, err := strconv.ParseInt(word, 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
