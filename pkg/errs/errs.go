// Package errs contains the error values returned by the subscript engine.
//
// Every error is a plain comparable value, so callers and tests can match
// them with == or reflect.DeepEqual.
package errs

import (
	"errors"
	"fmt"
)

// IndexError is returned when an index value cannot be turned into a
// selection, or a selection cannot be applied to a container.
type IndexError struct {
	Reason string
}

func (e IndexError) Error() string { return e.Reason }

// TypeError is returned when the element kinds of a container and a
// replacement value cannot be reconciled.
type TypeError struct {
	From, To string
	// Reason is a format with two %s verbs, filled with From and To.
	Reason string
}

func (e TypeError) Error() string {
	return fmt.Sprintf(e.Reason, e.From, e.To)
}

// ReplacementLengthError is returned when the replacement value of an
// assignment has an unusable length.
type ReplacementLengthError struct {
	Reason string
}

func (e ReplacementLengthError) Error() string { return e.Reason }

// DimensionMismatchError is returned when the number of supplied axes
// differs from the rank of the container.
type DimensionMismatchError struct {
	Want, Got int
	Reason    string
}

func (e DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: container has %d, got %d", e.Reason, e.Want, e.Got)
}

// Warning is a non-fatal condition. A function returning a Warning also
// returns a complete, valid result.
type Warning struct {
	Reason string
}

func (e Warning) Error() string { return "warning: " + e.Reason }

// IsWarning reports whether err is, or wraps, a Warning.
func IsWarning(err error) bool {
	var w Warning
	return errors.As(err, &w)
}

// Reasons shared by the normalizer, the reader and the writer.
var (
	ErrMixedSigns = IndexError{
		"can only specify positive or negative indices, not both"}
	ErrNAWithNegative = IndexError{"can't mix NAs with negative subscripts"}

	ErrInvalidNegSubscript = IndexError{
		"invalid negative subscript in get1index <real>"}

	ErrSubscriptOOB      = IndexError{"subscript out of bounds"}
	ErrSelectLessThanOne = IndexError{"attempt to select less than one element"}
	ErrSelectMoreThanOne = IndexError{"attempt to select more than one element"}
	ErrLogicalTooLong    = IndexError{"(subscript) logical subscript too long"}
	ErrNAAssignment      = IndexError{"NAs are not allowed in subscripted assignments"}
	ErrMissingSubscript  = IndexError{"invalid subscript type 'symbol'"}
	ErrNegativeInMatrix  = IndexError{"negative values are not allowed in a matrix subscript"}
	ErrVectorTooLarge    = IndexError{"vector size specified is too large"}

	ErrReplacementZero  = ReplacementLengthError{"replacement has length zero"}
	ErrMoreSupplied     = ReplacementLengthError{"more elements supplied than there are to replace"}
	ErrNotMultipleFatal = ReplacementLengthError{"number of items to replace is not a multiple of replacement length"}

	WarnNotMultiple = Warning{"number of items to replace is not a multiple of replacement length"}
)

// InvalidSubscriptType returns the IndexError for an index of an unusable
// kind.
func InvalidSubscriptType(kind string) IndexError {
	return IndexError{fmt.Sprintf("invalid subscript type '%s'", kind)}
}

// RecursiveIndexFailed returns the IndexError for a failed level of a
// recursive subscript.
func RecursiveIndexFailed(level int) IndexError {
	return IndexError{fmt.Sprintf("recursive indexing failed at level %d", level)}
}

// SubassignTypeFix returns the TypeError for an incompatible element kind
// pairing in an assignment.
func SubassignTypeFix(from, to string) TypeError {
	return TypeError{from, to, "incompatible types (from %s to %s) in subassignment type fix"}
}

// Subscript2Types returns the TypeError for an incompatible [[ assignment.
func Subscript2Types(from, to string) TypeError {
	return TypeError{from, to, "incompatible types (from %s to %s) in [[ assignment"}
}

// IncorrectDimensions returns the DimensionMismatchError for a read with the
// wrong number of axes.
func IncorrectDimensions(want, got int) DimensionMismatchError {
	return DimensionMismatchError{want, got, "incorrect number of dimensions"}
}

// IncorrectSubscripts returns the DimensionMismatchError for a write with
// the wrong number of axes.
func IncorrectSubscripts(want, got int) DimensionMismatchError {
	return DimensionMismatchError{want, got, "incorrect number of subscripts"}
}

// NotSubsettable returns the IndexError for indexing a value that holds no
// elements, such as a function.
func NotSubsettable(kind string) IndexError {
	return IndexError{fmt.Sprintf("object of type '%s' is not subsettable", kind)}
}
