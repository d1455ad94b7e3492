package check

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"src.vsub.dev/pkg/conformance"
	"src.vsub.dev/pkg/display"
)

// ReportOptions controls Report.
type ReportOptions struct {
	Display display.Options
	// Color enables ANSI colors on the outcome tags.
	Color bool
	// Verbose also lists passing scenarios.
	Verbose bool
}

var (
	passTag = tag{"PASS", text.Colors{text.FgGreen}}
	failTag = tag{"FAIL", text.Colors{text.FgRed, text.Bold}}
	skipTag = tag{"SKIP", text.Colors{text.FgYellow}}
)

type tag struct {
	name   string
	colors text.Colors
}

func (t tag) render(color bool) string {
	if color {
		return t.colors.Sprint(t.name)
	}
	return t.name
}

// Report writes one entry per failed or skipped result, plus passing results
// when verbose, followed by a summary line. Failures show the value the
// engine returned, when there is one.
func Report(w io.Writer, results []conformance.Result, opts ReportOptions) conformance.Stats {
	for _, r := range results {
		switch {
		case r.Skipped:
			fmt.Fprintf(w, "%s %s (%s)\n", skipTag.render(opts.Color), r.Name(), r.SkipReason)
		case r.Passed:
			if opts.Verbose {
				fmt.Fprintf(w, "%s %s\n", passTag.render(opts.Color), r.Name())
			}
		default:
			fmt.Fprintf(w, "%s %s\n", failTag.render(opts.Color), r.Name())
			fmt.Fprintf(w, "    %s\n", r.Failure)
			if r.Got != nil {
				fmt.Fprint(w, indent(display.Format(r.Got, opts.Display), "    | "))
			}
		}
	}
	stats := conformance.ComputeStats(results)
	fmt.Fprintln(w, stats)
	return stats
}

func indent(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		sb.WriteString(prefix)
		sb.WriteString(line)
	}
	if !strings.HasSuffix(s, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
