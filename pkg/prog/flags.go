package prog

import (
	"fmt"
	"log/slog"
	"strings"

	"src.vsub.dev/pkg/display"
)

// Flags keeps command-line flags. It doubles as the kong grammar.
type Flags struct {
	Log      string `name:"log" placeholder:"FILE" help:"Write debug log to FILE."`
	LogLevel string `name:"log-level" placeholder:"LEVEL" default:"info" enum:"debug,info,warn,error" help:"Minimum level of logged records (debug, info, warn or error)."`

	Style    string `name:"style" placeholder:"NAME" help:"Table style for printed arrays."`
	FailFast bool   `name:"fail-fast" help:"Stop at the first failing scenario."`
	Corpus   bool   `name:"corpus" help:"Run the built-in scenario corpus."`
	Verbose  bool   `name:"verbose" short:"v" help:"Print passing scenarios too."`

	Version   bool `name:"version" help:"Show version and quit."`
	BuildInfo bool `name:"buildinfo" help:"Show build info and quit."`
	JSON      bool `name:"json" help:"Show the output of --buildinfo in JSON."`

	Files []string `arg:"" optional:"" name:"file" help:"Scenario files to run."`
}

func (f *Flags) validate() error {
	if f.Style != "" && !display.ValidStyle(f.Style) {
		return fmt.Errorf("unknown style %q, want one of %s",
			f.Style, strings.Join(display.StyleNames(), ", "))
	}
	return nil
}

// Level returns the slog level named by --log-level.
func (f *Flags) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
