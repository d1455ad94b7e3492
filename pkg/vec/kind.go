package vec

// Kind is the element kind of a Value.
type Kind uint8

// The element kinds, in promotion order for the atomic kinds Logical through
// String. Raw and List sit outside the total order; NullKind and Closure are
// the kinds of the null singleton and of function values.
const (
	Logical Kind = iota
	Integer
	Double
	Complex
	String
	Raw
	List
	NullKind
	Closure
)

// NumKinds is the number of container kinds, Logical through List.
const NumKinds = int(List) + 1

var kindNames = [...]string{
	Logical:  "logical",
	Integer:  "integer",
	Double:   "double",
	Complex:  "complex",
	String:   "character",
	Raw:      "raw",
	List:     "list",
	NullKind: "NULL",
	Closure:  "closure",
}

// String returns the name the host language uses for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsAtomic reports whether k is one of the atomic vector kinds.
func (k Kind) IsAtomic() bool { return k <= Raw }

// IsContainer reports whether k can hold elements.
func (k Kind) IsContainer() bool { return k <= List }
