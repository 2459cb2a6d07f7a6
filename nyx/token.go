package nyx

import "fmt"

// TokenKind identifies the lexical category of a Token.
type TokenKind int

const (
	TokNumber TokenKind = iota
	TokID
	TokString
	TokChar
	TokClass
	TokReturn
	TokIf
	TokElse
	TokDef
	TokNewline
	TokPrint
	TokIndent
	TokDedent
	TokAnd
	TokOr
	TokNot
	TokEq
	TokNotEq
	TokLessOrEq
	TokGreaterOrEq
	TokNone
	TokTrue
	TokFalse
	TokEOF
)

var tokenNames = map[TokenKind]string{
	TokNumber:      "Number",
	TokID:          "Id",
	TokString:      "String",
	TokChar:        "Char",
	TokClass:       "Class",
	TokReturn:      "Return",
	TokIf:          "If",
	TokElse:        "Else",
	TokDef:         "Def",
	TokNewline:     "Newline",
	TokPrint:       "Print",
	TokIndent:      "Indent",
	TokDedent:      "Dedent",
	TokAnd:         "And",
	TokOr:          "Or",
	TokNot:         "Not",
	TokEq:          "Eq",
	TokNotEq:       "NotEq",
	TokLessOrEq:    "LessOrEq",
	TokGreaterOrEq: "GreaterOrEq",
	TokNone:        "None",
	TokTrue:        "True",
	TokFalse:       "False",
	TokEOF:         "Eof",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "Unknown"
}

// keywords maps identifier spellings to their nullary token kind.
var keywords = map[string]TokenKind{
	"class":  TokClass,
	"return": TokReturn,
	"if":     TokIf,
	"else":   TokElse,
	"def":    TokDef,
	"print":  TokPrint,
	"or":     TokOr,
	"and":    TokAnd,
	"not":    TokNot,
	"None":   TokNone,
	"True":   TokTrue,
	"False":  TokFalse,
}

// Token is a tagged union: Number/Id/String/Char carry a payload, every
// other variant is nullary. Two tokens are equal iff their Kind matches
// and, when a payload is present, the payload matches too.
type Token struct {
	Kind    TokenKind
	Num     int64
	Str     string
	ByteVal byte
	Pos     Position
}

func NewNumberToken(v int64, pos Position) Token { return Token{Kind: TokNumber, Num: v, Pos: pos} }
func NewIDToken(name string, pos Position) Token { return Token{Kind: TokID, Str: name, Pos: pos} }
func NewStringToken(v string, pos Position) Token {
	return Token{Kind: TokString, Str: v, Pos: pos}
}
func NewCharToken(b byte, pos Position) Token { return Token{Kind: TokChar, ByteVal: b, Pos: pos} }
func NewSimpleToken(k TokenKind, pos Position) Token { return Token{Kind: k, Pos: pos} }

// Equal compares tag and, where applicable, payload — position is not part
// of token identity.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case TokNumber:
		return t.Num == o.Num
	case TokID, TokString:
		return t.Str == o.Str
	case TokChar:
		return t.ByteVal == o.ByteVal
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case TokNumber:
		return fmt.Sprintf("Number{%d}", t.Num)
	case TokID:
		return fmt.Sprintf("Id{%s}", t.Str)
	case TokString:
		return fmt.Sprintf("String{%q}", t.Str)
	case TokChar:
		return fmt.Sprintf("Char{%c}", t.ByteVal)
	default:
		return t.Kind.String()
	}
}

// Position identifies a 1-based line and 1-based column within the raw
// source line (leading indentation included), used for lexical and runtime
// error reporting.
type Position struct {
	Line   int
	Column int
}
