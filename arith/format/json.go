package format

import (
	"encoding/json"
	"io"

	"github.com/sci-42ver/pratt-parsing-demo/arith/parser"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *parser.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText(node *parser.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Literal  string      `json:"literal,omitempty"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(node *parser.Node) *jsonNode {
	out := &jsonNode{
		Kind: node.Kind.String(),
	}
	if node.IsLeaf() {
		out.Literal = node.Token.Literal
	}
	if span := node.Token.Span; span.End.Offset > span.Start.Offset {
		out.Span = &jsonSpan{
			Start: jsonPosition{Line: span.Start.Line, Column: span.Start.Column},
			End:   jsonPosition{Line: span.End.Line, Column: span.End.Column},
		}
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, nodeToJSON(child))
	}
	return out
}
