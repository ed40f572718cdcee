package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/jcorbin/pop/internal/logio"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	var timeout time.Duration
	var trace bool
	var stackSize int
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.IntVar(&stackSize, "stack-size", defaultStackSize, "specify the stack capacity")
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	var in io.Reader = os.Stdin
	if term.IsTerminal(int(os.Stdin.Fd())) {
		pr, closer := newPromptReader(">> ")
		defer closer.Close()
		in = pr
	}

	var opts = []VMOption{
		WithInput(in),
		WithOutput(os.Stdout),
		WithStackSize(stackSize),
		WithWarnf(log.Leveledf("pop")),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	vm := New(opts...)

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	log.ErrorIf(vm.Run(ctx))
	return log.ExitCode()
}
