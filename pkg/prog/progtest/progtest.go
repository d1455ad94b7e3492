// Package progtest contains utilities for testing [prog.Program] instances by
// running them through [prog.Run] with captured output.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"src.vsub.dev/pkg/prog"
)

// Case is a test case for Test.
type Case struct {
	args []string

	exit           int
	stdout, stderr outputMatcher
}

type outputMatcher struct {
	text     string
	contains bool
	set      bool
}

func (m outputMatcher) match(s string) bool {
	switch {
	case !m.set:
		return true
	case m.contains:
		return strings.Contains(s, m.text)
	default:
		return s == m.text
	}
}

func (m outputMatcher) String() string {
	if m.contains {
		return "containing " + quote(m.text)
	}
	return quote(m.text)
}

func quote(s string) string { return "`" + s + "`" }

// ThatVsub returns a Case that runs vsub with the given arguments. Unless
// changed, the case expects an exit status of 0 and places no constraint on
// the output.
func ThatVsub(args ...string) Case {
	return Case{args: append([]string{"vsub"}, args...)}
}

// ExitsWith returns an altered Case that expects the given exit status.
func (c Case) ExitsWith(exit int) Case {
	c.exit = exit
	return c
}

// DoesNothing returns an altered Case that expects an exit status of 0 and no
// output.
func (c Case) DoesNothing() Case {
	return c.ExitsWith(0).WritesStdout("").WritesStderr("")
}

// WritesStdout returns an altered Case that expects exactly the given stdout.
func (c Case) WritesStdout(s string) Case {
	c.stdout = outputMatcher{text: s, set: true}
	return c
}

// WritesStdoutContaining returns an altered Case that expects stdout to
// contain the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.stdout = outputMatcher{text: s, contains: true, set: true}
	return c
}

// WritesStderr returns an altered Case that expects exactly the given stderr.
func (c Case) WritesStderr(s string) Case {
	c.stderr = outputMatcher{text: s, set: true}
	return c
}

// WritesStderrContaining returns an altered Case that expects stderr to
// contain the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.stderr = outputMatcher{text: s, contains: true, set: true}
	return c
}

// Test runs each case against the program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(t, p, c.args...)
			if exit != c.exit {
				t.Errorf("got exit %d, want %d", exit, c.exit)
			}
			if !c.stdout.match(stdout) {
				t.Errorf("got stdout %s, want %s", quote(stdout), c.stdout)
			}
			if !c.stderr.match(stderr) {
				t.Errorf("got stderr %s, want %s", quote(stderr), c.stderr)
			}
		})
	}
}

// Run runs the program with the given arguments, which include the program
// name, and returns the exit status and the output. Stdin is empty.
func Run(t *testing.T, p prog.Program, args ...string) (int, string, string) {
	t.Helper()
	r0, w0 := pipe(t)
	w0.Close()
	defer r0.Close()
	r1, w1 := pipe(t)
	r2, w2 := pipe(t)

	// Drain the pipes concurrently so that noisy programs can't fill them up.
	stdout, stderr := drain(r1), drain(r2)
	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	return exit, <-stdout, <-stderr
}

func pipe(t *testing.T) (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	return r, w
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
