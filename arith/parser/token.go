package parser

import "fmt"

type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenNumber
	TokenName
	TokenParam // *args or **kwargs marker words

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenQuestion
	TokenColon

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenStarStar
	TokenIncrement
	TokenDecrement
	TokenNot
	TokenBitNot
	TokenShl
	TokenShr
	TokenLT
	TokenLE
	TokenGT
	TokenGE
	TokenEQ
	TokenNE
	TokenBitAnd
	TokenBitXor
	TokenBitOr
	TokenAnd
	TokenOr
	TokenAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenShlAssign
	TokenShrAssign
	TokenAndAssign
	TokenXorAssign
	TokenOrAssign
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "end of input",
	TokenError:         "error",
	TokenNumber:        "number",
	TokenName:          "name",
	TokenParam:         "param",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenComma:         ",",
	TokenQuestion:      "?",
	TokenColon:         ":",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenStarStar:      "**",
	TokenIncrement:     "++",
	TokenDecrement:     "--",
	TokenNot:           "!",
	TokenBitNot:        "~",
	TokenShl:           "<<",
	TokenShr:           ">>",
	TokenLT:            "<",
	TokenLE:            "<=",
	TokenGT:            ">",
	TokenGE:            ">=",
	TokenEQ:            "==",
	TokenNE:            "!=",
	TokenBitAnd:        "&",
	TokenBitXor:        "^",
	TokenBitOr:         "|",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenAssign:        "=",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenShlAssign:     "<<=",
	TokenShrAssign:     ">>=",
	TokenAndAssign:     "&=",
	TokenXorAssign:     "^=",
	TokenOrAssign:      "|=",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// operators maps each operator spelling to its token kind. The lexer
// consumes a maximal run of operator characters and keys it here, so
// multi-character operators like "<<=" arrive as single tokens.
var operators = map[string]TokenKind{
	"+":   TokenPlus,
	"-":   TokenMinus,
	"*":   TokenStar,
	"/":   TokenSlash,
	"%":   TokenPercent,
	"**":  TokenStarStar,
	"++":  TokenIncrement,
	"--":  TokenDecrement,
	"!":   TokenNot,
	"~":   TokenBitNot,
	"<<":  TokenShl,
	">>":  TokenShr,
	"<":   TokenLT,
	"<=":  TokenLE,
	">":   TokenGT,
	">=":  TokenGE,
	"==":  TokenEQ,
	"!=":  TokenNE,
	"&":   TokenBitAnd,
	"^":   TokenBitXor,
	"|":   TokenBitOr,
	"&&":  TokenAnd,
	"||":  TokenOr,
	"=":   TokenAssign,
	"+=":  TokenPlusAssign,
	"-=":  TokenMinusAssign,
	"*=":  TokenStarAssign,
	"/=":  TokenSlashAssign,
	"%=":  TokenPercentAssign,
	"<<=": TokenShlAssign,
	">>=": TokenShrAssign,
	"&=":  TokenAndAssign,
	"^=":  TokenXorAssign,
	"|=":  TokenOrAssign,
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenNumber, TokenName, TokenParam, TokenError:
		return fmt.Sprintf("%s %q", t.Kind, t.Literal)
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}
