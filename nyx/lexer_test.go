package nyx

import "testing"

func tokenKinds(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		kinds[i] = t.Kind
	}
	return kinds
}

func TestLexIndentation(t *testing.T) {
	source := "if x:\n  print 1\n  print 2\nprint 3\n"
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}

	want := []TokenKind{
		TokIf, TokID, TokChar, TokNewline,
		TokIndent,
		TokPrint, TokNumber, TokNewline,
		TokPrint, TokNumber, TokNewline,
		TokDedent,
		TokPrint, TokNumber, TokNewline,
		TokEOF,
	}
	got := tokenKinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexStringEscapes(t *testing.T) {
	tokens, err := Lex(`"a\n b"` + "\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if tokens[0].Kind != TokString {
		t.Fatalf("expected String token, got %s", tokens[0].Kind)
	}
	if tokens[0].Str != "a\n b" {
		t.Fatalf("got %q, want %q", tokens[0].Str, "a\n b")
	}
}

func TestLexCommentsAndBlankLinesSkipped(t *testing.T) {
	source := "x = 1\n\n  \n# a comment\nprint x\n"
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	got := tokenKinds(tokens)
	want := []TokenKind{
		TokID, TokChar, TokNumber, TokNewline,
		TokPrint, TokID, TokNewline,
		TokEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot:  %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexIndentDedentBalance(t *testing.T) {
	source := "class A:\n  def m(self):\n    if True:\n      print 1\n    print 2\n"
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	depth := 0
	for _, tk := range tokens {
		switch tk.Kind {
		case TokIndent:
			depth++
		case TokDedent:
			depth--
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced indent/dedent, final depth %d", depth)
	}
	if tokens[len(tokens)-1].Kind != TokEOF {
		t.Fatalf("last token must be Eof, got %s", tokens[len(tokens)-1].Kind)
	}
}

func TestCursorAdvanceSaturatesAtEOF(t *testing.T) {
	tokens, err := Lex("print 1\n")
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	c := NewCursor(tokens)
	for !c.AtEOF() {
		c.Advance()
	}
	before := c.Current()
	after := c.Advance()
	if !before.Equal(after) || after.Kind != TokEOF {
		t.Fatalf("advancing past Eof should saturate, got %s", after)
	}
}
