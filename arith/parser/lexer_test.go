package parser

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenKind
	}{
		{"", []TokenKind{TokenEOF}},
		{"   \t\n ", []TokenKind{TokenEOF}},
		{"42", []TokenKind{TokenNumber, TokenEOF}},
		{"x", []TokenKind{TokenName, TokenEOF}},
		{"foo_bar2", []TokenKind{TokenName, TokenEOF}},
		{"1 + 2", []TokenKind{TokenNumber, TokenPlus, TokenNumber, TokenEOF}},
		{"+ - * / %", []TokenKind{TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent, TokenEOF}},
		{"== != < <= > >=", []TokenKind{TokenEQ, TokenNE, TokenLT, TokenLE, TokenGT, TokenGE, TokenEOF}},
		{"&& || !", []TokenKind{TokenAnd, TokenOr, TokenNot, TokenEOF}},
		{"& ^ | ~", []TokenKind{TokenBitAnd, TokenBitXor, TokenBitOr, TokenBitNot, TokenEOF}},
		{"<< >>", []TokenKind{TokenShl, TokenShr, TokenEOF}},
		{"++ --", []TokenKind{TokenIncrement, TokenDecrement, TokenEOF}},
		{"( ) [ ] , ? :", []TokenKind{TokenLParen, TokenRParen, TokenLBracket, TokenRBracket, TokenComma, TokenQuestion, TokenColon, TokenEOF}},
		{"= += -= *= /= %=", []TokenKind{TokenAssign, TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign, TokenPercentAssign, TokenEOF}},
		{"<<= >>= &= ^= |=", []TokenKind{TokenShlAssign, TokenShrAssign, TokenAndAssign, TokenXorAssign, TokenOrAssign, TokenEOF}},

		// Maximal munch: multi-character operators are single tokens.
		{"a<<=b", []TokenKind{TokenName, TokenShlAssign, TokenName, TokenEOF}},
		{"2**3", []TokenKind{TokenNumber, TokenStarStar, TokenNumber, TokenEOF}},

		// Variadic-parameter markers attach to the following word when
		// not preceded by a word character.
		{"*args", []TokenKind{TokenParam, TokenEOF}},
		{"**kwargs", []TokenKind{TokenParam, TokenEOF}},
		{"f(**kwargs)", []TokenKind{TokenName, TokenLParen, TokenParam, TokenRParen, TokenEOF}},
		{"a, *rest", []TokenKind{TokenName, TokenComma, TokenParam, TokenEOF}},
		{"x**y", []TokenKind{TokenName, TokenStarStar, TokenName, TokenEOF}},

		// A star after a token that ends an expression is
		// multiplication, even with a word character right behind it.
		{"a *b", []TokenKind{TokenName, TokenStar, TokenName, TokenEOF}},
		{"x[0]*y", []TokenKind{TokenName, TokenLBracket, TokenNumber, TokenRBracket, TokenStar, TokenName, TokenEOF}},
		{"x(1,2)*j", []TokenKind{TokenName, TokenLParen, TokenNumber, TokenComma, TokenNumber, TokenRParen, TokenStar, TokenName, TokenEOF}},
		{"f(a)**b", []TokenKind{TokenName, TokenLParen, TokenName, TokenRParen, TokenStarStar, TokenName, TokenEOF}},
		// After an operator an operand may follow, so the marker binds.
		{"a + *rest", []TokenKind{TokenName, TokenPlus, TokenParam, TokenEOF}},

		// Unrecognized input is a TokenError, not silently dropped.
		{"@", []TokenKind{TokenError, TokenEOF}},
		{"{", []TokenKind{TokenError, TokenEOF}},
		{"1 $ 2", []TokenKind{TokenNumber, TokenError, TokenNumber, TokenEOF}},
		// An operator run that spells no known operator is one error
		// token, mirroring the maximal-munch rule.
		{"a=-b", []TokenKind{TokenName, TokenError, TokenName, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer([]byte(tt.input))
			var got []TokenKind
			for {
				tok := lexer.NextToken()
				got = append(got, tok.Kind)
				if tok.Kind == TokenEOF {
					break
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLexerLiterals(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"1234", "1234"},
		{"counter", "counter"},
		{"<<=", "<<="},
		{"**kwargs", "**kwargs"},
		{"*rest", "*rest"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer([]byte(tt.input)).NextToken()
			if tok.Literal != tt.literal {
				t.Errorf("got literal %q, want %q", tok.Literal, tt.literal)
			}
		})
	}
}

func TestLexerPositions(t *testing.T) {
	lexer := NewLexer([]byte("ab +\n 12"))

	tok := lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 1 {
		t.Errorf("name starts at %s, want 1:1", tok.Span.Start)
	}
	if tok.Span.End.Offset != 2 {
		t.Errorf("name ends at offset %d, want 2", tok.Span.End.Offset)
	}

	tok = lexer.NextToken()
	if tok.Span.Start.Line != 1 || tok.Span.Start.Column != 4 {
		t.Errorf("operator starts at %s, want 1:4", tok.Span.Start)
	}

	tok = lexer.NextToken()
	if tok.Span.Start.Line != 2 || tok.Span.Start.Column != 2 {
		t.Errorf("number starts at %s, want 2:2", tok.Span.Start)
	}
}

func TestLexerEOFOnce(t *testing.T) {
	lexer := NewLexer([]byte("1"))
	lexer.NextToken()
	for i := 0; i < 3; i++ {
		if tok := lexer.NextToken(); tok.Kind != TokenEOF {
			t.Fatalf("call %d after exhaustion: got %v, want EOF", i, tok.Kind)
		}
	}
}
