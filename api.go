package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/pop/internal/panicerr"
)

// New creates a VM with the given options applied over the defaults: empty
// input, discarded output, and a stack of 8 terms.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run evaluates the VM's input until it is exhausted, returning nil, or until
// a fatal error halts the machine, returning that error annotated with its
// input location.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return nil
	})
	var halt haltError
	if errors.As(err, &halt) {
		return halt.error
	}
	return err
}

func WithInput(r io.Reader) VMOption  { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }
func WithStackSize(size int) VMOption { return withStackSize(size) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption   { return withLogfn(logfn) }
func WithWarnf(warnfn func(mess string, args ...interface{})) VMOption { return withWarnfn(warnfn) }
