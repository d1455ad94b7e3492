package errs

import (
	"fmt"
	"testing"

	"src.vsub.dev/pkg/tt"
)

func TestMessages(t *testing.T) {
	msg := func(err error) string { return err.Error() }
	tt.Test(t, tt.Fn("Error", msg), tt.Table{
		tt.Args(ErrSubscriptOOB).Rets("subscript out of bounds"),
		tt.Args(ErrNAWithNegative).Rets("can't mix NAs with negative subscripts"),
		tt.Args(ErrVectorTooLarge).Rets("vector size specified is too large"),
		tt.Args(InvalidSubscriptType("complex")).Rets("invalid subscript type 'complex'"),
		tt.Args(RecursiveIndexFailed(2)).Rets("recursive indexing failed at level 2"),
		tt.Args(SubassignTypeFix("raw", "integer")).
			Rets("incompatible types (from raw to integer) in subassignment type fix"),
		tt.Args(Subscript2Types("list", "double")).
			Rets("incompatible types (from list to double) in [[ assignment"),
		tt.Args(IncorrectDimensions(2, 3)).
			Rets("incorrect number of dimensions: container has 2, got 3"),
		tt.Args(IncorrectSubscripts(3, 1)).
			Rets("incorrect number of subscripts: container has 3, got 1"),
		tt.Args(NotSubsettable("closure")).Rets("object of type 'closure' is not subsettable"),
		tt.Args(WarnNotMultiple).
			Rets("warning: number of items to replace is not a multiple of replacement length"),
	})
}

func TestIsWarning(t *testing.T) {
	tt.Test(t, tt.Fn("IsWarning", IsWarning), tt.Table{
		tt.Args(WarnNotMultiple).Rets(true),
		tt.Args(fmt.Errorf("writing: %w", WarnNotMultiple)).Rets(true),
		tt.Args(ErrNotMultipleFatal).Rets(false),
		tt.Args(nil).Rets(false),
	})
}

func TestValuesAreComparable(t *testing.T) {
	if SubassignTypeFix("a", "b") != SubassignTypeFix("a", "b") {
		t.Errorf("equal TypeErrors compare unequal")
	}
	if ErrMixedSigns == ErrSubscriptOOB {
		t.Errorf("distinct reasons compare equal")
	}
}
