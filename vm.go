package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/pop/internal/fileinput"
)

// defaultStackSize is how many terms the stack holds unless configured
// otherwise.
const defaultStackSize = 8

// VM is a stack machine: it reads words from its input, pushing integer
// literals onto a bounded stack, and running the built-in operations that any
// other words are bound to in its environment.
type VM struct {
	ioCore

	// The stack is a bounded LIFO of terms: pushing onto a full stack, or
	// popping from an empty one, halts the machine.
	stack     []Term
	stackSize int

	// The environment binds words to terms; it is built once, from the
	// builtins, when the machine starts.
	env *env

	// word currently being evaluated, for error context
	word string
}

func (vm *VM) init() {
	if vm.stackSize <= 0 {
		vm.stackSize = defaultStackSize
	}
	if vm.stack == nil {
		vm.stack = make([]Term, 0, vm.stackSize)
	}
	if vm.env == nil {
		vm.env = builtinEnv()
	}
}

func (vm *VM) run(ctx context.Context) {
	vm.init()
	if vm.logfn != nil {
		defer vm.withLogPrefix("	")()
	}
	for {
		vm.haltif(ctx.Err())
		vm.eval(vm.scan())
	}
}

// eval runs one word: integer literals are pushed, anything else is looked up
// and executed; undefined words are reported and skipped.
func (vm *VM) eval(word string) {
	vm.word = word
	if val, err := parseInteger(word); err == nil {
		vm.logf("push %v", val)
		vm.push(Integer(val))
		return
	}
	term, defined := vm.env.find(word)
	if !defined {
		vm.warnf("undefined word: %v", word)
		return
	}
	vm.exec(term)
}

func (vm *VM) exec(term Term) {
	if term.code >= termCodeMax || termCodeTable[term.code] == nil {
		vm.halt(codeError(term.code))
	}
	if vm.logfn != nil {
		vm.logf("exec %v -- s:%v", term, vm.stack)
	}
	termCodeTable[term.code](vm, term)
}

var termCodeTable [termCodeMax]func(vm *VM, term Term)

func init() {
	termCodeTable = [...]func(vm *VM, term Term){
		nil,

		(*VM).literal,

		(*VM).dot,
		(*VM).printStack,
		(*VM).plus,
	}
}

//// Operations

// A data term bound to a word evaluates to itself.
func (vm *VM) literal(term Term) { vm.push(term) }

// Symbol   Name    Function
//    .     dot     pop top of stack and print it on its own line
func (vm *VM) dot(Term) { vm.writeString(vm.pop().String() + "\n") }

// Symbol   Name    Function
//    .s    stack   print the stack size and every element, bottom to top,
//                  leaving the stack as is
func (vm *VM) printStack(Term) {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(strconv.Itoa(len(vm.stack)))
	sb.WriteByte('>')
	for _, term := range vm.stack {
		sb.WriteByte(' ')
		sb.WriteString(term.String())
	}
	sb.WriteByte('\n')
	vm.writeString(sb.String())
}

// Symbol   Name    Function
//    +     plus    pop top 2 elements of stack, add, push
//
// The top of stack is popped first as a, then b; keeping that order matters
// for any operation that does not commute.
func (vm *VM) plus(Term) {
	a := vm.popInteger()
	b := vm.popInteger()
	vm.push(Integer(a + b))
}

//// Stack

func (vm *VM) push(term Term) {
	if len(vm.stack) >= vm.stackSize {
		vm.halt(errStackOverflow)
	}
	vm.stack = append(vm.stack, term)
}

func (vm *VM) pop() (term Term) {
	i := len(vm.stack) - 1
	if i < 0 {
		vm.halt(errStackUnderflow)
	}
	term, vm.stack = vm.stack[i], vm.stack[:i]
	return term
}

func (vm *VM) popInteger() int {
	term := vm.pop()
	val, ok := term.Integer()
	if !ok {
		vm.halt(typeError{want: termInteger, got: term})
	}
	return val
}

//// Halting

// halt stops the machine by panicking with a haltError, after flushing any
// output; Run recovers it. A nil or io.EOF error is a normal halt.
func (vm *VM) halt(err error) {
	if ferr := vm.flush(); ferr != nil && (err == nil || err == io.EOF) {
		err = ferr
	}
	if err == nil || err == io.EOF {
		vm.logf("halt")
		panic(haltError{})
	}
	vm.logf("halt error: %v", err)
	panic(haltError{locatedError{
		At:   vm.location(),
		Word: vm.word,
		err:  err,
	}})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) location() fileinput.Location {
	if vm.in == nil {
		return fileinput.Location{}
	}
	return vm.in.Location()
}

var (
	errStackOverflow  = errors.New("stack overflow")
	errStackUnderflow = errors.New("stack underflow")
)

type typeError struct {
	want termCode
	got  Term
}

func (te typeError) Error() string {
	return fmt.Sprintf("expected %v, got %v", termCodeNames[te.want], te.got)
}

type codeError termCode

func (code codeError) Error() string { return fmt.Sprintf("invalid term code %v", uint8(code)) }

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}

func (err haltError) Unwrap() error { return err.error }

// locatedError annotates a fatal error with where in the input it happened,
// and what word was being evaluated at the time.
type locatedError struct {
	At   fileinput.Location
	Word string
	err  error
}

func (le locatedError) Error() string {
	if le.Word == "" {
		return fmt.Sprintf("%v: %v", le.At, le.err)
	}
	return fmt.Sprintf("%v: %q: %v", le.At, le.Word, le.err)
}

func (le locatedError) Unwrap() error { return le.err }
