package check_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"

	. "src.vsub.dev/pkg/check"
	"src.vsub.dev/pkg/conformance"
	"src.vsub.dev/pkg/display"
	"src.vsub.dev/pkg/prog"
	"src.vsub.dev/pkg/prog/progtest"
	"src.vsub.dev/pkg/vec"
)

var (
	Test     = progtest.Test
	ThatVsub = progtest.ThatVsub
)

const scenarios = `name: sample
scenarios:
  - name: passes
    container: {type: integer, data: [1, 2, 3]}
    index: [{type: integer, data: [2]}]
    mode: "["
    op: read
    expect: {value: {type: integer, data: [2]}}
  - name: fails
    container: {type: integer, data: [1, 2, 3]}
    index: [{type: integer, data: [1]}]
    mode: "["
    op: read
    expect: {value: {type: integer, data: [2]}}
  - name: later
    mode: "["
    op: read
    skip: not yet
    expect: {}
`

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProgram(t *testing.T) {
	file := writeScenarios(t, scenarios)
	passing := writeScenarios(t, "name: ok\nscenarios:\n"+
		"  - {name: null read, mode: \"[\", op: read, expect: {}}\n")
	p := prog.Composite(prog.VersionProgram{}, Program{})

	Test(t, p,
		ThatVsub().
			ExitsWith(2).
			WritesStderrContaining("no scenario files; pass files or --corpus"),
		ThatVsub(file).
			ExitsWith(1).
			WritesStdoutContaining("FAIL "+file+": fails\n    got integer[1], want integer[2]\n    | [1] 1\n"),
		ThatVsub(file).
			ExitsWith(1).
			WritesStdoutContaining("SKIP "+file+": later (not yet)\n"),
		ThatVsub(file).
			ExitsWith(1).
			WritesStdoutContaining("3 scenarios: 1 passed, 1 failed, 1 skipped\n"),
		ThatVsub("--fail-fast", file).
			ExitsWith(1).
			WritesStdoutContaining("2 scenarios: 1 passed, 1 failed, 0 skipped\n"),
		ThatVsub("-v", passing).
			WritesStdout("PASS " + passing + ": null read\n1 scenarios: 1 passed, 0 failed, 0 skipped\n"),
		ThatVsub("--corpus").
			WritesStdoutContaining(" 0 failed"),
		ThatVsub("--version").
			WritesStdoutContaining(prog.Version),
		ThatVsub(filepath.Join(t.TempDir(), "missing.yaml")).
			ExitsWith(2).
			WritesStderrContaining("missing.yaml"),
	)
}

func TestReport(t *testing.T) {
	loaded, err := conformance.Load(strings.NewReader(scenarios), "s.yaml")
	if err != nil {
		t.Fatal(err)
	}
	results := conformance.RunAll(loaded, false)

	var sb strings.Builder
	stats := Report(&sb, results, ReportOptions{Display: display.Options{Width: 80}})
	want := "FAIL s.yaml: fails\n" +
		"    got integer[1], want integer[2]\n" +
		"    | [1] 1\n" +
		"SKIP s.yaml: later (not yet)\n" +
		"3 scenarios: 1 passed, 1 failed, 1 skipped\n"
	if sb.String() != want {
		t.Errorf("got report:\n%s\nwant:\n%s", sb.String(), want)
	}
	if stats != (conformance.Stats{Total: 3, Passed: 1, Failed: 1, Skipped: 1}) {
		t.Errorf("got stats %v", stats)
	}

	sb.Reset()
	text.EnableColors()
	Report(&sb, results[:1], ReportOptions{Verbose: true, Color: true})
	if !strings.Contains(sb.String(), "\x1b[") || !strings.Contains(sb.String(), "PASS") {
		t.Errorf("colored report lacks an ANSI PASS tag: %q", sb.String())
	}
}

func TestReport_FailureWithoutValue(t *testing.T) {
	r := conformance.Result{
		Loaded:  conformance.Loaded{File: "f.yaml", Scenario: conformance.Scenario{Name: "s"}},
		Failure: "unexpected error",
		Got:     nil,
	}
	var sb strings.Builder
	Report(&sb, []conformance.Result{r}, ReportOptions{})
	want := "FAIL f.yaml: s\n    unexpected error\n1 scenarios: 0 passed, 1 failed, 0 skipped\n"
	if sb.String() != want {
		t.Errorf("got %q, want %q", sb.String(), want)
	}

	r.Got = vec.Strs("a")
	sb.Reset()
	Report(&sb, []conformance.Result{r}, ReportOptions{})
	if !strings.Contains(sb.String(), "    | [1] \"a\"\n") {
		t.Errorf("got %q", sb.String())
	}
}
