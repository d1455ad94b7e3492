// Package access reads and writes the parts of containers addressed by
// normalized selections.
//
// Read and Write take selections produced by package subscript, one per
// axis. Extract and Replace take raw index values and normalize them first;
// they are what an evaluator calls for x[i, j], x[[i]] and their assignment
// forms.
package access

import (
	"src.vsub.dev/pkg/logutil"
	"src.vsub.dev/pkg/subscript"
	"src.vsub.dev/pkg/vec"
)

var logger = logutil.GetLogger("[access] ")

// Extract evaluates c[raws...] under Subset or c[[raws...]] under Subscript.
// A nil raw index is a missing one. A Subscript index of more than one
// element reads recursively through nested lists.
func Extract(c vec.Value, raws []vec.Value, mode subscript.Mode, opts ReadOptions) (vec.Value, error) {
	if mode == subscript.Subscript && len(raws) == 1 {
		if idx, ok := raws[0].(*vec.Vector); ok && idx.Len() > 1 {
			return ReadRecursive(c, idx, opts)
		}
	}
	sels, err := subscript.NormalizeAll(c, raws, subscript.Options{
		Mode: mode, Op: subscript.Read, Partial: opts.Partial})
	if err != nil {
		return nil, err
	}
	return ReadOpts(c, sels, mode, opts)
}

// Replace evaluates the assignment c[raws...] <- value under Subset or
// c[[raws...]] <- value under Subscript, and returns the new container. Like
// Write, it may return a valid result together with an errs.Warning.
func Replace(c vec.Value, raws []vec.Value, mode subscript.Mode, value vec.Value) (vec.Value, error) {
	sels, err := subscript.NormalizeAll(c, raws, subscript.Options{Mode: mode, Op: subscript.Write})
	if err != nil {
		return nil, err
	}
	return Write(c, sels, mode, value)
}
