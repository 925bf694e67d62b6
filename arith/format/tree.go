package format

import (
	"io"
	"strings"

	"github.com/sci-42ver/pratt-parsing-demo/arith/parser"
)

// TreeEncoder writes one node per line, children indented under their
// parent.
type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	var sb strings.Builder
	writeTree(&sb, node, 0)
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, node *parser.Node, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(node.Kind.String())
	if node.IsLeaf() {
		sb.WriteByte(' ')
		sb.WriteString(node.Token.Literal)
	}
	sb.WriteByte('\n')
	for _, child := range node.Children {
		writeTree(sb, child, indent+1)
	}
}
