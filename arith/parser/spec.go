package parser

// MinBindingPower is the floor of the binding-power scale. Atoms and
// grouping register with it; every operator registers a higher power.
// ParseExpression called with it absorbs any operator.
const MinBindingPower = 0

// nudFunc parses a token in prefix position. bp is the binding power
// registered for the token, bounding how much of the input the token's
// own operand may absorb.
type nudFunc func(p *Parser, tok Token, bp int) (*Node, error)

// ledFunc parses a token in infix position, with the already-parsed
// left operand. rbp is the binding power to parse the right operand at.
type ledFunc func(p *Parser, tok Token, left *Node, rbp int) (*Node, error)

type prefixRule struct {
	nud nudFunc
	bp  int
}

type infixRule struct {
	led ledFunc
	lbp int
	rbp int
}

// ParserSpec maps token kinds to their prefix- and infix-position
// rules. It is built once by a grammar constructor and read-only
// afterwards, so one spec can serve any number of concurrent parses.
type ParserSpec struct {
	prefix map[TokenKind]prefixRule
	infix  map[TokenKind]infixRule
}

func NewParserSpec() *ParserSpec {
	return &ParserSpec{
		prefix: make(map[TokenKind]prefixRule),
		infix:  make(map[TokenKind]infixRule),
	}
}

// Prefix registers a rule for token kinds that take no left operand:
// atoms, prefix operators, grouping. Kinds without an infix rule get
// the error rule, so an infix lookup always resolves.
func (s *ParserSpec) Prefix(bp int, nud nudFunc, kinds ...TokenKind) {
	for _, kind := range kinds {
		s.prefix[kind] = prefixRule{nud: nud, bp: bp}
		if _, ok := s.infix[kind]; !ok {
			s.infix[kind] = infixRule{led: ledError, lbp: MinBindingPower, rbp: MinBindingPower}
		}
	}
}

func (s *ParserSpec) registerLed(lbp, rbp int, led ledFunc, kinds []TokenKind) {
	for _, kind := range kinds {
		if _, ok := s.prefix[kind]; !ok {
			s.prefix[kind] = prefixRule{nud: nudError, bp: MinBindingPower}
		}
		s.infix[kind] = infixRule{led: led, lbp: lbp, rbp: rbp}
	}
}

// Infix registers a left-associative rule: recursing into the right
// operand at the same power refuses another operator of equal power,
// so "1-2-3" nests left.
func (s *ParserSpec) Infix(bp int, led ledFunc, kinds ...TokenKind) {
	s.registerLed(bp, bp, led, kinds)
}

// InfixRight registers a right-associative rule: the right operand is
// parsed one power lower, so an equal-power operator is absorbed by the
// recursion and "a=b=2" nests right.
func (s *ParserSpec) InfixRight(bp int, led ledFunc, kinds ...TokenKind) {
	s.registerLed(bp, bp-1, led, kinds)
}

func (s *ParserSpec) lookupPrefix(tok Token) (prefixRule, error) {
	if rule, ok := s.prefix[tok.Kind]; ok {
		return rule, nil
	}
	return prefixRule{}, &ParseError{
		Kind: ErrUnexpectedToken,
		Msg:  "token " + tok.String() + " cannot start an expression",
		Pos:  tok.Span.Start,
	}
}

func (s *ParserSpec) lookupInfix(tok Token) (infixRule, error) {
	if rule, ok := s.infix[tok.Kind]; ok {
		return rule, nil
	}
	return infixRule{}, &ParseError{
		Kind: ErrUnexpectedToken,
		Msg:  "token " + tok.String() + " cannot continue an expression",
		Pos:  tok.Span.Start,
	}
}

// nudError is the prefix rule for tokens that may only continue an
// expression, never begin one.
func nudError(p *Parser, tok Token, bp int) (*Node, error) {
	return nil, &ParseError{
		Kind: ErrUnexpectedToken,
		Msg:  "token " + tok.String() + " cannot start an expression",
		Pos:  tok.Span.Start,
	}
}

// ledError is the infix rule for tokens that may only begin an
// expression. Its left binding power is the floor, so the climbing loop
// never invokes it; it exists so every registered kind has both rules.
func ledError(p *Parser, tok Token, left *Node, rbp int) (*Node, error) {
	return nil, &ParseError{
		Kind: ErrUnexpectedToken,
		Msg:  "token " + tok.String() + " cannot continue an expression",
		Pos:  tok.Span.Start,
	}
}
