package nyx

import (
	"fmt"
	"strings"
)

// LexError is raised for unexpected characters or unterminated string
// literals; the message is human-readable, per spec.md §7.
type LexError struct {
	Message string
	Pos     Position
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at line %d: %s", e.Pos.Line, e.Message)
}

// Lex tokenizes source text into a fully materialized token vector
// terminated by exactly one TokEOF, reconstructing block structure from
// leading whitespace per spec.md §4.1.
func Lex(source string) ([]Token, error) {
	lx := &lexer{lines: strings.Split(source, "\n")}
	return lx.run()
}

type lexer struct {
	lines []string
	tokens []Token
	prevIndent int
}

const spacesPerIndentLevel = 2

func (lx *lexer) run() ([]Token, error) {
	for lineNo, raw := range lx.lines {
		if lx.isEmptyLine(raw) {
			continue
		}
		stripped, indentSpaces := stripIndent(raw)
		if indentSpaces%spacesPerIndentLevel != 0 {
			return nil, &LexError{
				Message: fmt.Sprintf("indentation must be a multiple of %d spaces, got %d", spacesPerIndentLevel, indentSpaces),
				Pos:     Position{Line: lineNo + 1, Column: indentSpaces + 1},
			}
		}
		level := indentSpaces / spacesPerIndentLevel
		lx.emitIndentChange(level)

		if err := lx.tokenizeLine(stripped, lineNo+1, indentSpaces); err != nil {
			return nil, err
		}
		lx.tokens = append(lx.tokens, NewSimpleToken(TokNewline, Position{Line: lineNo + 1}))
	}

	lx.emitIndentChange(0)
	lx.tokens = append(lx.tokens, NewSimpleToken(TokEOF, Position{Line: len(lx.lines) + 1}))
	return lx.tokens, nil
}

// isEmptyLine reports whether a raw line carries no tokens: blank,
// all-spaces, or a comment line whose first non-space byte is '#'.
func (lx *lexer) isEmptyLine(raw string) bool {
	trimmed := strings.TrimLeft(raw, " ")
	if trimmed == "" {
		return true
	}
	return trimmed[0] == '#'
}

func stripIndent(raw string) (rest string, spaces int) {
	i := 0
	for i < len(raw) && raw[i] == ' ' {
		i++
	}
	return raw[i:], i
}

func (lx *lexer) emitIndentChange(level int) {
	if level > lx.prevIndent {
		for i := 0; i < level-lx.prevIndent; i++ {
			lx.tokens = append(lx.tokens, NewSimpleToken(TokIndent, Position{}))
		}
	} else if level < lx.prevIndent {
		for i := 0; i < lx.prevIndent-level; i++ {
			lx.tokens = append(lx.tokens, NewSimpleToken(TokDedent, Position{}))
		}
	}
	lx.prevIndent = level
}

// tokenizeLine walks the indent-stripped remainder of a single logical
// line, appending tokens for everything but the trailing Newline.
func (lx *lexer) tokenizeLine(s string, lineNo, colOffset int) error {
	i := 0
	col := func() int { return colOffset + i + 1 }

	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ':
			i++
		case c == '#':
			return nil
		case c >= '0' && c <= '9':
			start := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			var v int64
			for _, d := range s[start:i] {
				v = v*10 + int64(d-'0')
			}
			lx.tokens = append(lx.tokens, NewNumberToken(v, Position{Line: lineNo, Column: col()}))
		case c == '\'' || c == '"':
			val, consumed, err := readStringLiteral(s[i:], c)
			if err != nil {
				return &LexError{Message: err.Error(), Pos: Position{Line: lineNo, Column: col()}}
			}
			lx.tokens = append(lx.tokens, NewStringToken(val, Position{Line: lineNo, Column: col()}))
			i += consumed
		case c == '=' || c == '!' || c == '<' || c == '>':
			pos := Position{Line: lineNo, Column: col()}
			if i+1 < len(s) && s[i+1] == '=' {
				switch c {
				case '=':
					lx.tokens = append(lx.tokens, NewSimpleToken(TokEq, pos))
				case '!':
					lx.tokens = append(lx.tokens, NewSimpleToken(TokNotEq, pos))
				case '<':
					lx.tokens = append(lx.tokens, NewSimpleToken(TokLessOrEq, pos))
				case '>':
					lx.tokens = append(lx.tokens, NewSimpleToken(TokGreaterOrEq, pos))
				}
				i += 2
			} else {
				lx.tokens = append(lx.tokens, NewCharToken(c, pos))
				i++
			}
		case isCharLiteral(c):
			lx.tokens = append(lx.tokens, NewCharToken(c, Position{Line: lineNo, Column: col()}))
			i++
		case isIdentStart(c):
			start := i
			for i < len(s) && isIdentByte(s[i]) {
				i++
			}
			name := s[start:i]
			pos := Position{Line: lineNo, Column: colOffset + start + 1}
			if kind, ok := keywords[name]; ok {
				lx.tokens = append(lx.tokens, NewSimpleToken(kind, pos))
			} else {
				lx.tokens = append(lx.tokens, NewIDToken(name, pos))
			}
		default:
			return &LexError{
				Message: fmt.Sprintf("unexpected character %q", c),
				Pos:     Position{Line: lineNo, Column: col()},
			}
		}
	}
	return nil
}

func isCharLiteral(c byte) bool {
	switch c {
	case '*', '/', '+', '-', '(', ')', '?', ',', '.', ':', ';', '\t', '\n':
		return true
	default:
		return false
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentByte(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// readStringLiteral reads a quoted literal starting at s[0] (the opening
// quote) and returns its decoded value plus the number of source bytes
// consumed, including both quotes.
func readStringLiteral(s string, quote byte) (string, int, error) {
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		if c == quote {
			return b.String(), i + 1, nil
		}
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s[i+1])
			}
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return "", 0, fmt.Errorf("unterminated string literal")
}

// Cursor walks a materialized token vector. Advance saturates at the
// terminal Eof, so the cursor never moves past the last token.
type Cursor struct {
	tokens []Token
	pos    int
}

func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

func (c *Cursor) Current() Token {
	return c.tokens[c.pos]
}

func (c *Cursor) Advance() Token {
	if c.pos < len(c.tokens)-1 {
		c.pos++
	}
	return c.tokens[c.pos]
}

func (c *Cursor) AtEOF() bool {
	return c.Current().Kind == TokEOF
}
