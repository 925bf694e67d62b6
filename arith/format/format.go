// Package format renders parsed expression trees for output: the
// canonical S-expression form, JSON, and an indented tree dump.
package format

import (
	"github.com/sci-42ver/pratt-parsing-demo/arith/parser"
)

type Encoder interface {
	Encode(node *parser.Node) error
	MarshalText(node *parser.Node) ([]byte, error)
}
