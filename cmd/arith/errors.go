package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sci-42ver/pratt-parsing-demo/arith/parser"
)

// wrapWithSource augments a parse error with the offending source line
// and a caret under the failing column. Other errors pass through
// unchanged.
func wrapWithSource(err error, src string) error {
	var perr *parser.ParseError
	if !errors.As(err, &perr) {
		return err
	}

	lines := strings.Split(src, "\n")
	if perr.Pos.Line < 1 || perr.Pos.Line > len(lines) {
		return err
	}
	line := lines[perr.Pos.Line-1]

	// Columns are 1-based; clamp so the caret lands inside the line
	// even when the error position is at end of input.
	col := perr.Pos.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	return fmt.Errorf("%w\n  %s\n  %s^", err, line, strings.Repeat(" ", col-1))
}
