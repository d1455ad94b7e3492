// Package sys provides terminal queries with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// Width returns the column count of the terminal referenced by file, or def
// if file is not a terminal.
func Width(file *os.File, def int) int {
	if !IsATTY(file) {
		return def
	}
	if _, col := WinSize(file); col > 0 {
		return col
	}
	return def
}
