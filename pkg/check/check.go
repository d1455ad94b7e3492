// Package check is the subprogram that runs conformance scenarios and reports
// the results.
package check

import (
	"os"

	"github.com/mattn/go-colorable"

	"src.vsub.dev/pkg/conformance"
	"src.vsub.dev/pkg/display"
	"src.vsub.dev/pkg/logutil"
	"src.vsub.dev/pkg/prog"
	"src.vsub.dev/pkg/sys"
)

var logger = logutil.GetLogger("[check] ")

// Program is the check subprogram. It is always suitable, so it goes last in
// a composite.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) == 0 && !f.Corpus {
		return prog.BadUsage("no scenario files; pass files or --corpus")
	}
	loaded, err := load(f.Corpus, args)
	if err != nil {
		return err
	}
	logger.Info("running scenarios", "count", len(loaded), "fail-fast", f.FailFast)

	opts := ReportOptions{
		Display: display.AutoOptions(fds[1]),
		Color:   sys.IsATTY(fds[1]),
		Verbose: f.Verbose,
	}
	if f.Style != "" {
		opts.Display.Style = f.Style
	}
	results := conformance.RunAll(loaded, f.FailFast)
	stats := Report(colorable.NewColorable(fds[1]), results, opts)
	logger.Info("done", "stats", stats.String())
	if stats.Failed > 0 {
		return prog.Exit(1)
	}
	return nil
}

func load(corpus bool, files []string) ([]conformance.Loaded, error) {
	var loaded []conformance.Loaded
	if corpus {
		l, err := conformance.LoadCorpus()
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, l...)
	}
	for _, file := range files {
		l, err := conformance.LoadFile(file)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, l...)
	}
	return loaded, nil
}
