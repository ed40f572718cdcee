package main

import (
	"io"
	"strings"

	"github.com/jcorbin/pop/internal/fileinput"
	"github.com/jcorbin/pop/internal/flushio"
)

// VMOption configures a VM, see New.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(strings.NewReader("")),
	withOutput(io.Discard),
	withStackSize(defaultStackSize),
)

// VMOptions combines any number of options into one, skipping any nils.
func VMOptions(opts ...VMOption) VMOption {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, impl)
		}
	}
	return all
}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})
type withWarnfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM)   { vm.logfn = logfn }
func (warnfn withWarnfn) apply(vm *VM) { vm.warnfn = warnfn }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackSizeOption int

func withInput(r io.Reader) inputOption      { return inputOption{r} }
func withOutput(w io.Writer) outputOption    { return outputOption{w} }
func withTee(w io.Writer) teeOption          { return teeOption{w} }
func withStackSize(size int) stackSizeOption { return stackSizeOption(size) }

func (i inputOption) apply(vm *VM) {
	vm.in = fileinput.New(i.Reader)
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (size stackSizeOption) apply(vm *VM) {
	vm.stackSize = int(size)
	vm.stack = nil
}
