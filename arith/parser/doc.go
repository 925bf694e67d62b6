// Package parser provides a top-down operator-precedence (Pratt)
// expression parser for C-like/shell arithmetic.
//
// # Overview
//
// Parsing is split between a generic precedence-climbing engine and a
// grammar that configures it. The engine knows nothing about arithmetic;
// it consumes tokens, consults a ParserSpec for the prefix and infix
// rules of each token kind, and lets the rules build the tree.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│  (bytes)    │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                        ┌──────┴──────┐
//	                                        │ ParserSpec  │
//	                                        │ (bp tables) │
//	                                        └─────────────┘
//
// # Usage
//
// Build the grammar once and share it; each parse gets its own Parser:
//
//	grammar := parser.NewGrammar()
//	node, err := parser.ParseString(grammar, "1 + 2 * 3")
//	if err != nil {
//	    // *parser.ParseError with kind and position
//	}
//	fmt.Println(node) // (+ 1 (* 2 3))
//
// A ParserSpec is immutable after NewGrammar returns and is safe for
// concurrent use by independent parses.
//
// # Binding powers
//
// Each infix token kind carries a left binding power (does the climbing
// loop absorb this operator?) and a right binding power (how much may
// its right operand absorb?). Equal powers make an operator
// left-associative; a right power one below the left makes it
// right-associative. The canonical tree rendering, "(kind child ...)"
// with leaves rendered as their literals, is the package's observable
// contract.
package parser
