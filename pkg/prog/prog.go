// Package prog provides the entry point to vsub. Programs registered with Run
// correspond to subprograms of vsub.
package prog

// This package parses flags, sets up logging and calls the appropriate
// "subprogram", one of the version printer or the scenario checker.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"src.vsub.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

var helpOptions = kong.HelpOptions{Compact: true, FlagsLast: true}

func newParser(f *Flags, stdout, stderr io.Writer, help *bool) (*kong.Kong, error) {
	return kong.New(f,
		kong.Name("vsub"),
		kong.Description("Run vector subsetting and subassignment scenarios."),
		kong.Writers(stdout, stderr),
		helpOptions,
		// Exit statuses are decided by Run.
		kong.Exit(func(int) {}),
		kong.Help(func(options kong.HelpOptions, ctx *kong.Context) error {
			*help = true
			return kong.DefaultHelpPrinter(options, ctx)
		}),
	)
}

func usage(out io.Writer, p *kong.Kong) {
	p.Stdout = out
	ctx, err := kong.Trace(p, nil)
	if err != nil {
		return
	}
	kong.DefaultHelpPrinter(helpOptions, ctx)
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	var help bool
	parser, err := newParser(f, fds[1], fds[2], &help)
	if err != nil {
		fmt.Fprintln(fds[2], "internal error:", err)
		return 2
	}
	_, err = parser.Parse(args[1:])
	if help {
		return 0
	}
	if err == nil {
		err = f.validate()
	}
	if err != nil {
		fmt.Fprintln(fds[2], err)
		usage(fds[2], parser)
		return 2
	}

	// Handle flags common to all subprograms.
	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	logutil.SetLevel(f.Level())
	logger.Debug("parsed flags", "files", len(f.Files), "corpus", f.Corpus)

	err = p.Run(fds, f, f.Files)
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var bad badUsageError
	var exit exitError
	switch {
	case errors.As(err, &bad):
		usage(fds[2], parser)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return NotSuitable().
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram. The args are the positional arguments.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
