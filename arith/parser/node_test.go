package parser

import "testing"

func TestNodeKindNames(t *testing.T) {
	tests := []struct {
		kind NodeKind
		name string
	}{
		{KindNumber, "number"},
		{KindName, "name"},
		{KindPower, "**"},
		{KindPostIncrement, "post++"},
		{KindPreIncrement, "++"},
		{KindElementAccess, "element-access"},
		{KindCall, "call"},
		{KindTernary, "?"},
		{KindComma, ","},
		{KindShlAssign, "<<="},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("kind %d: got %q, want %q", tt.kind, got, tt.name)
		}
	}
}

func TestNodeIsLValue(t *testing.T) {
	name := NewLeaf(KindName, Token{Kind: TokenName, Literal: "x"})
	number := NewLeaf(KindNumber, Token{Kind: TokenNumber, Literal: "5"})
	access := NewComposite(KindElementAccess, Token{Kind: TokenLBracket, Literal: "["}, name, number)
	call := NewComposite(KindCall, Token{Kind: TokenLParen, Literal: "("}, name)

	tests := []struct {
		node *Node
		want bool
	}{
		{name, true},
		{access, true},
		{number, false},
		{call, false},
	}

	for _, tt := range tests {
		if got := tt.node.IsLValue(); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestNodeRendering(t *testing.T) {
	x := NewLeaf(KindName, Token{Kind: TokenName, Literal: "x"})
	one := NewLeaf(KindNumber, Token{Kind: TokenNumber, Literal: "1"})

	tests := []struct {
		node     *Node
		expected string
	}{
		{x, "x"},
		{one, "1"},
		{NewComposite(KindNot, Token{}, x), "(! x)"},
		{NewComposite(KindPlus, Token{}, x, one), "(+ x 1)"},
		{NewComposite(KindCall, Token{}, x, one, one), "(call x 1 1)"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.expected {
			t.Errorf("got %s, want %s", got, tt.expected)
		}
	}
}
