package format

import (
	"io"

	"github.com/sci-42ver/pratt-parsing-demo/arith/parser"
)

// SExprEncoder writes the canonical parenthesized prefix rendering,
// followed by a newline.
type SExprEncoder struct {
	w io.Writer
}

func NewSExprEncoder(w io.Writer) *SExprEncoder {
	return &SExprEncoder{w: w}
}

func (e *SExprEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *SExprEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	return []byte(node.String() + "\n"), nil
}
