// Package conformance runs scenario files against the subscript engine.
//
// A scenario file is a YAML Suite: a container, one raw index per axis, a
// mode and an operation, and the expected container or error. The corpus
// under testdata is embedded as Corpus and covers the documented
// properties of reads and writes.
package conformance

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
	"src.vsub.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[conformance] ")

// Corpus holds the built-in scenario files.
//
//go:embed testdata/*.yaml
var Corpus embed.FS

// Loaded is a scenario together with where it came from.
type Loaded struct {
	File     string
	Suite    string
	Scenario Scenario
}

// Load parses one scenario file read from r. The file name is only used to
// label the scenarios.
func Load(r io.Reader, file string) ([]Loaded, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var suite Suite
	if err := dec.Decode(&suite); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	loaded := make([]Loaded, len(suite.Scenarios))
	for i, s := range suite.Scenarios {
		loaded[i] = Loaded{File: file, Suite: suite.Name, Scenario: s}
	}
	logger.Debug("loaded scenarios", "file", file, "count", len(loaded))
	return loaded, nil
}

// LoadFile loads the scenario file at path.
func LoadFile(path string) ([]Loaded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, path)
}

// LoadFS loads every .yaml file of fsys matching pattern, in lexical order.
func LoadFS(fsys fs.FS, pattern string) ([]Loaded, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	var all []Loaded
	for _, file := range files {
		if path.Ext(file) != ".yaml" {
			continue
		}
		f, err := fsys.Open(file)
		if err != nil {
			return nil, err
		}
		loaded, err := Load(f, file)
		f.Close()
		if err != nil {
			return nil, err
		}
		all = append(all, loaded...)
	}
	return all, nil
}

// LoadCorpus loads the built-in scenarios.
func LoadCorpus() ([]Loaded, error) {
	return LoadFS(Corpus, "testdata/*.yaml")
}
