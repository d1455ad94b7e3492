package conformance

// Suite is one scenario file.
type Suite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario is one read or write of a container.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Skip        any    `yaml:"skip,omitempty"` // bool or reason

	// Container is the value being indexed. Absent means the null singleton.
	Container *ValueSpec `yaml:"container,omitempty"`
	// Index holds one raw index per axis. A null entry is a missing index,
	// as in x[, 1]; an absent list is x[].
	Index []*ValueSpec `yaml:"index,omitempty"`
	// Mode is "[" or "subset", "[[" or "subscript".
	Mode string `yaml:"mode"`
	// Op is "read" or "write".
	Op string `yaml:"op"`
	// Value is the replacement of a write. Absent, or of type null, deletes.
	Value *ValueSpec `yaml:"value,omitempty"`
	// Shared marks the container as aliased before a write; the scenario
	// then also checks that it was left unchanged.
	Shared   bool `yaml:"shared,omitempty"`
	KeepDims bool `yaml:"keep_dims,omitempty"`
	Partial  bool `yaml:"partial,omitempty"`

	Expect Expectation `yaml:"expect"`
}

// Expectation describes the outcome of a scenario. Exactly one of Value and
// Error should be set; Warning may accompany Value.
type Expectation struct {
	Value *ValueSpec `yaml:"value,omitempty"`
	// Error is a substring of the expected error message.
	Error string `yaml:"error,omitempty"`
	// Warning is a substring of the expected warning message.
	Warning string `yaml:"warning,omitempty"`
}

// ValueSpec is the YAML form of a vec.Value.
//
// Type is one of logical, integer, double, complex, character, raw, list,
// null or function. Data holds atomic elements, with YAML null for NA;
// complex elements are strings such as "1+2i". Elems holds list elements.
type ValueSpec struct {
	Type     string       `yaml:"type"`
	Data     []any        `yaml:"data,omitempty"`
	Elems    []*ValueSpec `yaml:"elems,omitempty"`
	Name     string       `yaml:"name,omitempty"` // of a function
	Names    []any        `yaml:"names,omitempty"`
	Dim      []int        `yaml:"dim,omitempty"`
	DimNames [][]any      `yaml:"dimnames,omitempty"`
	// Labels name the axes of DimNames.
	Labels []any `yaml:"labels,omitempty"`
}

// IsSkipped reports whether the scenario should be skipped, and why.
func (s *Scenario) IsSkipped() (bool, string) {
	switch v := s.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
	case string:
		return true, v
	}
	return false, ""
}
