package main

import (
	"fmt"
	"io"
	"strings"
)

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	if dump.vm.word != "" {
		fmt.Fprintf(dump.out, "  word: %q @%v\n", dump.vm.word, dump.vm.location())
	}
	dump.dumpStack()
	dump.dumpEnv()
}

func (dump vmDumper) dumpStack() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  stack: <%v/%v>", len(dump.vm.stack), dump.vm.stackSize)
	for _, term := range dump.vm.stack {
		sb.WriteByte(' ')
		sb.WriteString(term.String())
	}
	sb.WriteByte('\n')
	io.WriteString(dump.out, sb.String())
}

func (dump vmDumper) dumpEnv() {
	fmt.Fprintf(dump.out, "# Environment\n")
	for e := dump.vm.env; e != nil; e = e.tail {
		fmt.Fprintf(dump.out, "  %v => %v\n", e.word, e.term)
	}
}
