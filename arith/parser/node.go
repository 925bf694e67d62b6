package parser

import "strings"

type NodeKind int

const (
	// Leaves
	KindNumber NodeKind = iota
	KindName
	KindParam

	// Prefix operators
	KindPlus
	KindMinus
	KindNot
	KindBitNot
	KindPreIncrement
	KindPreDecrement

	// Postfix operators
	KindPostIncrement
	KindPostDecrement

	// Binary operators (KindPlus and KindMinus double as binary kinds;
	// arity tells the two apart, as in C)
	KindStar
	KindSlash
	KindPercent
	KindPower
	KindShl
	KindShr
	KindLT
	KindLE
	KindGT
	KindGE
	KindEQ
	KindNE
	KindBitAnd
	KindBitXor
	KindBitOr
	KindAnd
	KindOr

	// Assignment
	KindAssign
	KindPlusAssign
	KindMinusAssign
	KindStarAssign
	KindSlashAssign
	KindPercentAssign
	KindShlAssign
	KindShrAssign
	KindAndAssign
	KindXorAssign
	KindOrAssign

	// Structured
	KindTernary
	KindCall
	KindElementAccess
	KindComma
)

var nodeKindNames = map[NodeKind]string{
	KindNumber:        "number",
	KindName:          "name",
	KindParam:         "param",
	KindPlus:          "+",
	KindMinus:         "-",
	KindNot:           "!",
	KindBitNot:        "~",
	KindPreIncrement:  "++",
	KindPreDecrement:  "--",
	KindPostIncrement: "post++",
	KindPostDecrement: "post--",
	KindStar:          "*",
	KindSlash:         "/",
	KindPercent:       "%",
	KindPower:         "**",
	KindShl:           "<<",
	KindShr:           ">>",
	KindLT:            "<",
	KindLE:            "<=",
	KindGT:            ">",
	KindGE:            ">=",
	KindEQ:            "==",
	KindNE:            "!=",
	KindBitAnd:        "&",
	KindBitXor:        "^",
	KindBitOr:         "|",
	KindAnd:           "&&",
	KindOr:            "||",
	KindAssign:        "=",
	KindPlusAssign:    "+=",
	KindMinusAssign:   "-=",
	KindStarAssign:    "*=",
	KindSlashAssign:   "/=",
	KindPercentAssign: "%=",
	KindShlAssign:     "<<=",
	KindShrAssign:     ">>=",
	KindAndAssign:     "&=",
	KindXorAssign:     "^=",
	KindOrAssign:      "|=",
	KindTernary:       "?",
	KindCall:          "call",
	KindElementAccess: "element-access",
	KindComma:         ",",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is a syntax-tree node. Leaves carry the literal of the token they
// came from; composites carry an ordered child list. Neither the node
// nor its token is modified after construction.
type Node struct {
	Kind     NodeKind
	Token    Token
	Children []*Node
}

func NewLeaf(kind NodeKind, tok Token) *Node {
	return &Node{Kind: kind, Token: tok}
}

func NewComposite(kind NodeKind, tok Token, children ...*Node) *Node {
	return &Node{Kind: kind, Token: tok, Children: children}
}

func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsLValue reports whether the node can be assigned to: a plain name or
// the result of element access.
func (n *Node) IsLValue() bool {
	return n.Kind == KindName || n.Kind == KindElementAccess
}

// String renders the canonical parenthesized prefix form: leaves render
// as their literal, composites as "(kind child1 child2 ...)".
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Token.Literal)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Kind.String())
	for _, child := range n.Children {
		b.WriteByte(' ')
		child.render(b)
	}
	b.WriteByte(')')
}
