package main

import (
	"io"

	"github.com/jcorbin/pop/internal/fileinput"
	"github.com/jcorbin/pop/internal/flushio"
)

type ioCore struct {
	in  *fileinput.Input
	out flushio.WriteFlusher

	logfn  func(mess string, args ...interface{})
	warnfn func(mess string, args ...interface{})
}

func (ioc *ioCore) withLogPrefix(prefix string) func() {
	logfn := ioc.logfn
	ioc.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		ioc.logfn = logfn
	}
}

func (ioc ioCore) logf(mess string, args ...interface{}) {
	if ioc.logfn != nil {
		ioc.logfn(mess, args...)
	}
}

func (ioc ioCore) warnf(mess string, args ...interface{}) {
	if ioc.warnfn != nil {
		ioc.warnfn(mess, args...)
	}
	ioc.logf("warn: "+mess, args...)
}

func (ioc ioCore) flush() error {
	if ioc.out == nil {
		return nil
	}
	return ioc.out.Flush()
}

func (vm *VM) writeString(s string) {
	if _, err := io.WriteString(vm.out, s); err != nil {
		vm.halt(err)
	}
}
