package conformance

import (
	"fmt"
	"strings"

	"src.vsub.dev/pkg/access"
	"src.vsub.dev/pkg/errs"
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

// Result is the outcome of one scenario.
type Result struct {
	Loaded     Loaded
	Passed     bool
	Skipped    bool
	SkipReason string
	// Got and Err are what the engine returned.
	Got vec.Value
	Err error
	// Failure explains why a scenario did not pass.
	Failure string
}

// Name identifies the scenario of r.
func (r Result) Name() string {
	return r.Loaded.File + ": " + r.Loaded.Scenario.Name
}

// ParseMode parses the mode of a scenario.
func ParseMode(s string) (subscript.Mode, error) {
	switch strings.ToLower(s) {
	case "[", "subset":
		return subscript.Subset, nil
	case "[[", "subscript":
		return subscript.Subscript, nil
	}
	return 0, specErrorf("unknown mode %q", s)
}

func (s *Scenario) raws() ([]vec.Value, error) {
	raws := make([]vec.Value, len(s.Index))
	for i, spec := range s.Index {
		if spec == nil {
			continue
		}
		raw, err := spec.Value()
		if err != nil {
			return nil, err
		}
		raws[i] = raw
	}
	return raws, nil
}

// Run executes one scenario.
func Run(l Loaded) Result {
	s := l.Scenario
	res := Result{Loaded: l}
	if skipped, reason := s.IsSkipped(); skipped {
		res.Skipped, res.SkipReason = true, reason
		return res
	}
	fail := func(format string, args ...any) Result {
		res.Failure = fmt.Sprintf(format, args...)
		logger.Debug("scenario failed", "name", res.Name(), "reason", res.Failure)
		return res
	}

	c, err := s.Container.Value()
	if err != nil {
		return fail("container: %v", err)
	}
	raws, err := s.raws()
	if err != nil {
		return fail("index: %v", err)
	}
	mode, err := ParseMode(s.Mode)
	if err != nil {
		return fail("%v", err)
	}
	var before vec.Value
	if v, ok := c.(*vec.Vector); ok && s.Shared {
		before = v.Copy()
		v.MarkShared()
	}

	switch strings.ToLower(s.Op) {
	case "read":
		opts := access.ReadOptions{KeepDims: s.KeepDims, Partial: s.Partial}
		res.Got, res.Err = access.Extract(c, raws, mode, opts)
	case "write":
		value, err := s.Value.Value()
		if err != nil {
			return fail("value: %v", err)
		}
		res.Got, res.Err = access.Replace(c, raws, mode, value)
	default:
		return fail("unknown op %q", s.Op)
	}

	if failure := check(s.Expect, res.Got, res.Err); failure != "" {
		return fail("%s", failure)
	}
	if before != nil && !vec.Identical(before, c) {
		return fail("shared container changed from %v to %v", before, c)
	}
	res.Passed = true
	return res
}

// check compares an outcome with an expectation and describes any mismatch.
func check(want Expectation, got vec.Value, err error) string {
	if want.Error != "" {
		switch {
		case err == nil:
			return fmt.Sprintf("got %v, want error %q", got, want.Error)
		case errs.IsWarning(err):
			return fmt.Sprintf("got warning %q, want error %q", err, want.Error)
		case !strings.Contains(err.Error(), want.Error):
			return fmt.Sprintf("got error %q, want error %q", err, want.Error)
		}
		return ""
	}
	switch {
	case err != nil && !errs.IsWarning(err):
		return fmt.Sprintf("unexpected error %q", err)
	case want.Warning == "" && err != nil:
		return fmt.Sprintf("unexpected %q", err)
	case want.Warning != "" && err == nil:
		return fmt.Sprintf("no warning, want %q", want.Warning)
	case want.Warning != "" && !strings.Contains(err.Error(), want.Warning):
		return fmt.Sprintf("got %q, want warning %q", err, want.Warning)
	}
	wantValue, verr := want.Value.Value()
	if verr != nil {
		return fmt.Sprintf("expected value: %v", verr)
	}
	if !vec.Identical(got, wantValue) {
		return fmt.Sprintf("got %v, want %v", got, wantValue)
	}
	return ""
}

// RunAll executes scenarios in order. With failFast it stops after the
// first failure.
func RunAll(loaded []Loaded, failFast bool) []Result {
	results := make([]Result, 0, len(loaded))
	for _, l := range loaded {
		r := Run(l)
		results = append(results, r)
		if failFast && !r.Passed && !r.Skipped {
			break
		}
	}
	return results
}

// Stats summarizes results.
type Stats struct {
	Total, Passed, Failed, Skipped int
}

// ComputeStats counts results by outcome.
func ComputeStats(results []Result) Stats {
	st := Stats{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Skipped:
			st.Skipped++
		case r.Passed:
			st.Passed++
		default:
			st.Failed++
		}
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("%d scenarios: %d passed, %d failed, %d skipped",
		st.Total, st.Passed, st.Failed, st.Skipped)
}
