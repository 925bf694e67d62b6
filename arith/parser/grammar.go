package parser

// NewGrammar builds the parser spec for C-like/shell arithmetic
// expressions. Binding powers follow the C operator-precedence table
// (and bash's, which matches): postfix and call/index bind tightest,
// the comma sequence operator loosest.
func NewGrammar() *ParserSpec {
	s := NewParserSpec()

	s.Infix(31, ledIncDec, TokenIncrement, TokenDecrement)
	s.Infix(31, ledCall, TokenLParen)
	s.Infix(31, ledIndex, TokenLBracket)

	// Prefix operators bind everything except call, index and postfix.
	s.Prefix(29, nudIncDec, TokenIncrement, TokenDecrement)
	s.Prefix(29, nudPrefixOp, TokenPlus, TokenMinus, TokenNot, TokenBitNot)

	// Right associative: 2 ** 3 ** 2 is 2 ** (3 ** 2). Binds less
	// strongly than negation, as in bash.
	s.InfixRight(27, ledBinary, TokenStarStar)

	s.Infix(25, ledBinary, TokenStar, TokenSlash, TokenPercent)
	s.Infix(23, ledBinary, TokenPlus, TokenMinus)
	s.Infix(21, ledBinary, TokenShl, TokenShr)
	s.Infix(19, ledBinary, TokenLT, TokenLE, TokenGT, TokenGE)
	s.Infix(17, ledBinary, TokenNE, TokenEQ)

	s.Infix(15, ledBinary, TokenBitAnd)
	s.Infix(13, ledBinary, TokenBitXor)
	s.Infix(11, ledBinary, TokenBitOr)
	s.Infix(9, ledBinary, TokenAnd)
	s.Infix(7, ledBinary, TokenOr)

	// The false branch parses at the right binding power, so nested
	// ternaries chain to the right.
	s.InfixRight(5, ledTernary, TokenQuestion)

	// Right associative: a = b = 2 is a = (b = 2).
	s.InfixRight(3, ledAssign,
		TokenAssign,
		TokenPlusAssign, TokenMinusAssign, TokenStarAssign,
		TokenSlashAssign, TokenPercentAssign,
		TokenShlAssign, TokenShrAssign,
		TokenAndAssign, TokenXorAssign, TokenOrAssign)

	s.Infix(commaBindingPower, ledComma, TokenComma)

	// Grouping binds nothing on its own; the parenthesized expression
	// is parsed back at the floor.
	s.Prefix(MinBindingPower, nudGroup, TokenLParen)

	s.Prefix(MinBindingPower, nudConstant, TokenNumber, TokenName, TokenParam)

	// Tokens that close constructs never start an expression.
	s.Prefix(MinBindingPower, nudError, TokenRParen, TokenRBracket, TokenColon, TokenEOF)

	return s
}

// commaBindingPower is shared with ledCall: call arguments parse at the
// comma's power so the argument separator is never absorbed as a
// sequence operator.
const commaBindingPower = 1

// ParseString parses src as a single expression using the given spec.
func ParseString(spec *ParserSpec, src string) (*Node, error) {
	return NewParser(spec, []byte(src)).Parse()
}

var leafNodeKinds = map[TokenKind]NodeKind{
	TokenNumber: KindNumber,
	TokenName:   KindName,
	TokenParam:  KindParam,
}

var prefixNodeKinds = map[TokenKind]NodeKind{
	TokenPlus:      KindPlus,
	TokenMinus:     KindMinus,
	TokenNot:       KindNot,
	TokenBitNot:    KindBitNot,
	TokenIncrement: KindPreIncrement,
	TokenDecrement: KindPreDecrement,
}

var postfixNodeKinds = map[TokenKind]NodeKind{
	TokenIncrement: KindPostIncrement,
	TokenDecrement: KindPostDecrement,
}

var binaryNodeKinds = map[TokenKind]NodeKind{
	TokenPlus:     KindPlus,
	TokenMinus:    KindMinus,
	TokenStar:     KindStar,
	TokenSlash:    KindSlash,
	TokenPercent:  KindPercent,
	TokenStarStar: KindPower,
	TokenShl:      KindShl,
	TokenShr:      KindShr,
	TokenLT:       KindLT,
	TokenLE:       KindLE,
	TokenGT:       KindGT,
	TokenGE:       KindGE,
	TokenEQ:       KindEQ,
	TokenNE:       KindNE,
	TokenBitAnd:   KindBitAnd,
	TokenBitXor:   KindBitXor,
	TokenBitOr:    KindBitOr,
	TokenAnd:      KindAnd,
	TokenOr:       KindOr,
}

var assignNodeKinds = map[TokenKind]NodeKind{
	TokenAssign:        KindAssign,
	TokenPlusAssign:    KindPlusAssign,
	TokenMinusAssign:   KindMinusAssign,
	TokenStarAssign:    KindStarAssign,
	TokenSlashAssign:   KindSlashAssign,
	TokenPercentAssign: KindPercentAssign,
	TokenShlAssign:     KindShlAssign,
	TokenShrAssign:     KindShrAssign,
	TokenAndAssign:     KindAndAssign,
	TokenXorAssign:     KindXorAssign,
	TokenOrAssign:      KindOrAssign,
}

func nudConstant(p *Parser, tok Token, bp int) (*Node, error) {
	return NewLeaf(leafNodeKinds[tok.Kind], tok), nil
}

// nudGroup parses "( expr )". The parentheses leave no node behind; the
// inner expression is returned unchanged.
func nudGroup(p *Parser, tok Token, bp int) (*Node, error) {
	inner, err := p.ParseExpression(MinBindingPower)
	if err != nil {
		return nil, err
	}
	if err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	return inner, nil
}

func nudPrefixOp(p *Parser, tok Token, bp int) (*Node, error) {
	operand, err := p.ParseExpression(bp)
	if err != nil {
		return nil, err
	}
	return NewComposite(prefixNodeKinds[tok.Kind], tok, operand), nil
}

// nudIncDec parses ++x or ++x[i]; the operand must be assignable.
func nudIncDec(p *Parser, tok Token, bp int) (*Node, error) {
	operand, err := p.ParseExpression(bp)
	if err != nil {
		return nil, err
	}
	if !operand.IsLValue() {
		return nil, &ParseError{
			Kind: ErrInvalidAssignTarget,
			Msg:  "cannot apply " + tok.String() + " to " + operand.String(),
			Pos:  tok.Span.Start,
		}
	}
	return NewComposite(prefixNodeKinds[tok.Kind], tok, operand), nil
}

// ledIncDec parses x++ and x--. The same token kinds serve prefix
// position; here they produce the distinct post++/post-- node kinds.
func ledIncDec(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	if !left.IsLValue() {
		return nil, &ParseError{
			Kind: ErrInvalidAssignTarget,
			Msg:  "cannot apply " + tok.String() + " to " + left.String(),
			Pos:  tok.Span.Start,
		}
	}
	return NewComposite(postfixNodeKinds[tok.Kind], tok, left), nil
}

// ledIndex parses a[i]; chains as a[i][j] because the result is itself
// a valid index target, and accepts a call result as in f(x)[0]. The
// index parses at the floor, as if parenthesized.
func ledIndex(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	if !left.IsLValue() && left.Kind != KindCall {
		return nil, &ParseError{
			Kind: ErrInvalidIndexTarget,
			Msg:  left.String() + " cannot be indexed",
			Pos:  tok.Span.Start,
		}
	}
	index, err := p.ParseExpression(MinBindingPower)
	if err != nil {
		return nil, err
	}
	if err := p.eat(TokenRBracket); err != nil {
		return nil, err
	}
	return NewComposite(KindElementAccess, tok, left, index), nil
}

// ledCall parses f(a, b). Arguments parse at the comma's binding power,
// so commas separate arguments instead of forming sequence nodes. A
// trailing comma is not allowed.
func ledCall(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	if !left.IsLValue() {
		return nil, &ParseError{
			Kind: ErrInvalidCallTarget,
			Msg:  left.String() + " cannot be called",
			Pos:  tok.Span.Start,
		}
	}
	children := []*Node{left}
	if !p.at(TokenRParen) {
		for {
			arg, err := p.ParseExpression(commaBindingPower)
			if err != nil {
				return nil, err
			}
			children = append(children, arg)
			if !p.at(TokenComma) {
				break
			}
			p.next()
		}
	}
	if err := p.eat(TokenRParen); err != nil {
		return nil, err
	}
	return NewComposite(KindCall, tok, children...), nil
}

// ledTernary parses a ? b : c. The true branch parses at the floor: its
// precedence relative to ?: is ignored, as if parenthesized. The false
// branch parses at the right binding power so ternaries chain right.
func ledTernary(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	trueExpr, err := p.ParseExpression(MinBindingPower)
	if err != nil {
		return nil, err
	}
	if err := p.eat(TokenColon); err != nil {
		return nil, err
	}
	falseExpr, err := p.ParseExpression(rbp)
	if err != nil {
		return nil, err
	}
	return NewComposite(KindTernary, tok, left, trueExpr, falseExpr), nil
}

func ledBinary(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	right, err := p.ParseExpression(rbp)
	if err != nil {
		return nil, err
	}
	return NewComposite(binaryNodeKinds[tok.Kind], tok, left, right), nil
}

func ledAssign(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	if !left.IsLValue() {
		return nil, &ParseError{
			Kind: ErrInvalidAssignTarget,
			Msg:  "cannot assign to " + left.String(),
			Pos:  tok.Span.Start,
		}
	}
	right, err := p.ParseExpression(rbp)
	if err != nil {
		return nil, err
	}
	return NewComposite(assignNodeKinds[tok.Kind], tok, left, right), nil
}

// ledComma builds one n-ary sequence node: "a, b, c" has three
// children. Flattening constructs a fresh node over a copied child
// slice; the left node is never modified.
func ledComma(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	right, err := p.ParseExpression(rbp)
	if err != nil {
		return nil, err
	}
	if left.Kind == KindComma {
		children := make([]*Node, 0, len(left.Children)+1)
		children = append(children, left.Children...)
		children = append(children, right)
		return NewComposite(KindComma, left.Token, children...), nil
	}
	return NewComposite(KindComma, tok, left, right), nil
}
