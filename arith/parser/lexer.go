package parser

// Lexer turns an expression string into a left-to-right token stream.
// It is not restartable; each call to NextToken consumes input. After
// the input is exhausted it keeps returning TokenEOF.
type Lexer struct {
	input   []byte
	pos     int
	line    int
	column  int
	prev    TokenKind
	hasPrev bool
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
		} else {
			break
		}
	}
}

func (l *Lexer) NextToken() Token {
	tok := l.scan()
	l.prev = tok.Kind
	l.hasPrev = true
	return tok
}

func (l *Lexer) scan() Token {
	l.skipWhitespace()

	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	}

	ch := l.peek()

	if isDigit(ch) {
		return l.scanNumber(start)
	}

	if isWordChar(ch) {
		return l.scanName(start)
	}

	if l.atParamMarker() {
		return l.scanParam(start)
	}

	switch ch {
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '[':
		l.advance()
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(TokenRBracket, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case '?':
		l.advance()
		return l.token(TokenQuestion, start)
	case ':':
		l.advance()
		return l.token(TokenColon, start)
	}

	if isOperatorChar(ch) {
		return l.scanOperator(start)
	}

	l.advance()
	return l.token(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) scanNumber(start Position) Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.token(TokenNumber, start)
}

func (l *Lexer) scanName(start Position) Token {
	for isWordChar(l.peek()) {
		l.advance()
	}
	return l.token(TokenName, start)
}

// atParamMarker reports whether the lexer sits on a variadic-parameter
// word: "*" or "**" immediately followed by a word character, in a
// position where no left operand exists. "f(**kwargs)" lexes
// "**kwargs" as one TokenParam; the "*j" in "x(1,2)*j" stays
// multiplication because ")" leaves a left operand behind.
func (l *Lexer) atParamMarker() bool {
	if l.peek() != '*' || !l.atOperandPosition() {
		return false
	}
	if l.peekN(1) == '*' {
		return isWordChar(l.peekN(2))
	}
	return isWordChar(l.peekN(1))
}

// atOperandPosition reports whether the next token would begin an
// operand: at the start of input, or after an opening delimiter,
// separator, or operator — never after a token that can end an
// expression.
func (l *Lexer) atOperandPosition() bool {
	if !l.hasPrev {
		return true
	}
	switch l.prev {
	case TokenLParen, TokenLBracket, TokenComma, TokenQuestion, TokenColon:
		return true
	}
	// Operator kinds are contiguous in the TokenKind enum.
	return l.prev >= TokenPlus && l.prev <= TokenOrAssign
}

func (l *Lexer) scanParam(start Position) Token {
	l.advance()
	if l.peek() == '*' {
		l.advance()
	}
	for isWordChar(l.peek()) {
		l.advance()
	}
	return l.token(TokenParam, start)
}

// scanOperator consumes a maximal run of operator characters. The run
// must spell a known operator exactly; "<<=" is one token, while a run
// like "=-" is a lexical error rather than two tokens.
func (l *Lexer) scanOperator(start Position) Token {
	for isOperatorChar(l.peek()) {
		l.advance()
	}
	tok := l.token(TokenError, start)
	if kind, ok := operators[tok.Literal]; ok {
		tok.Kind = kind
	}
	return tok
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWordChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		isDigit(ch)
}

func isOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '!', '~', '<', '>', '=', '&', '^', '|':
		return true
	}
	return false
}
