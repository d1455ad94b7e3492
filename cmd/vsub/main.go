// Vsub runs scenarios against the vector subsetting and subassignment engine
// and reports which ones pass. Scenarios are YAML files; --corpus runs the
// built-in ones.
package main

import (
	"os"

	"src.vsub.dev/pkg/check"
	"src.vsub.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(prog.VersionProgram{}, check.Program{})))
}
