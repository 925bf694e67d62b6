package parser

import "fmt"

type ErrorKind int

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnexpectedEOF
	ErrInvalidAssignTarget
	ErrInvalidIndexTarget
	ErrInvalidCallTarget
	ErrMismatchedDelimiter
	ErrLexical
)

var errorKindNames = map[ErrorKind]string{
	ErrUnexpectedToken:     "unexpected token",
	ErrUnexpectedEOF:       "unexpected end of input",
	ErrInvalidAssignTarget: "invalid assignment target",
	ErrInvalidIndexTarget:  "invalid index target",
	ErrInvalidCallTarget:   "invalid call target",
	ErrMismatchedDelimiter: "mismatched delimiter",
	ErrLexical:             "lexical error",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "parse error"
}

// ParseError aborts the parse that produced it; no partial tree is ever
// returned alongside one.
type ParseError struct {
	Kind ErrorKind
	Msg  string
	Pos  Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
}

// Parser drives one parse: a lexer cursor, one token of lookahead, and
// a shared read-only spec. A Parser is single-use; build a new one per
// input.
type Parser struct {
	spec  *ParserSpec
	lexer *Lexer
	tok   Token
}

func NewParser(spec *ParserSpec, input []byte) *Parser {
	return &Parser{
		spec:  spec,
		lexer: NewLexer(input),
	}
}

// Parse parses the entire input as one expression. Trailing tokens
// after a complete expression are an error.
func (p *Parser) Parse() (*Node, error) {
	p.next()
	node, err := p.ParseExpression(MinBindingPower)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenEOF {
		return nil, &ParseError{
			Kind: ErrUnexpectedToken,
			Msg:  "token " + p.tok.String() + " after complete expression",
			Pos:  p.tok.Span.Start,
		}
	}
	return node, nil
}

func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

// at reports whether the lookahead token has the given kind.
func (p *Parser) at(kind TokenKind) bool {
	return p.tok.Kind == kind
}

// eat asserts the kind of the lookahead token and consumes it.
func (p *Parser) eat(kind TokenKind) error {
	switch {
	case p.at(kind):
		p.next()
		return nil
	case p.at(TokenEOF):
		return &ParseError{
			Kind: ErrUnexpectedEOF,
			Msg:  fmt.Sprintf("expected %q, got end of input", kind.String()),
			Pos:  p.tok.Span.Start,
		}
	case p.at(TokenError):
		return p.lexicalError()
	default:
		return &ParseError{
			Kind: ErrMismatchedDelimiter,
			Msg:  fmt.Sprintf("expected %q, got %s", kind.String(), p.tok),
			Pos:  p.tok.Span.Start,
		}
	}
}

func (p *Parser) lexicalError() error {
	return &ParseError{
		Kind: ErrLexical,
		Msg:  fmt.Sprintf("unrecognized input %q", p.tok.Literal),
		Pos:  p.tok.Span.Start,
	}
}

// ParseExpression is the precedence-climbing loop. It parses one
// expression, absorbing infix operators for as long as their left
// binding power exceeds minBP. Each token is visited a bounded number
// of times, so parsing any finite input terminates.
func (p *Parser) ParseExpression(minBP int) (*Node, error) {
	if p.at(TokenEOF) {
		return nil, &ParseError{
			Kind: ErrUnexpectedEOF,
			Msg:  "expected an operand",
			Pos:  p.tok.Span.Start,
		}
	}
	if p.at(TokenError) {
		return nil, p.lexicalError()
	}

	tok := p.tok
	p.next()

	rule, err := p.spec.lookupPrefix(tok)
	if err != nil {
		return nil, err
	}
	left, err := rule.nud(p, tok, rule.bp)
	if err != nil {
		return nil, err
	}

	for {
		if p.at(TokenError) {
			return nil, p.lexicalError()
		}
		tok = p.tok
		rule, err := p.spec.lookupInfix(tok)
		if err != nil {
			return nil, err
		}
		if minBP >= rule.lbp {
			return left, nil
		}
		p.next()

		left, err = rule.led(p, tok, left, rule.rbp)
		if err != nil {
			return nil, err
		}
	}
}
