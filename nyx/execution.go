package nyx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// StackFrame identifies one call-stack entry for error reporting.
type StackFrame struct {
	Method string
	Pos    Position
}

const (
	stackFrameHead = 8
	stackFrameTail = 8
)

// RuntimeError is the error raised while executing a program: a
// human-readable message, here enriched (ambient stack, §2 of SPEC_FULL.md)
// with a source position, an optional code frame, and the call stack active
// when the error was raised. Lexing and parsing failures are reported
// through their own types, *LexError and *ParseError.
type RuntimeError struct {
	Message   string
	Pos       Position
	CodeFrame string
	Frames    []StackFrame
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.CodeFrame != "" {
		b.WriteByte('\n')
		b.WriteString(e.CodeFrame)
	}
	render := func(f StackFrame) {
		if f.Pos.Line > 0 {
			fmt.Fprintf(&b, "\n  at %s (line %d)", f.Method, f.Pos.Line)
		} else {
			fmt.Fprintf(&b, "\n  at %s", f.Method)
		}
	}
	if len(e.Frames) <= stackFrameHead+stackFrameTail {
		for _, f := range e.Frames {
			render(f)
		}
		return b.String()
	}
	for _, f := range e.Frames[:stackFrameHead] {
		render(f)
	}
	omitted := len(e.Frames) - (stackFrameHead + stackFrameTail)
	fmt.Fprintf(&b, "\n  ... %d frame(s) omitted ...", omitted)
	for _, f := range e.Frames[len(e.Frames)-stackFrameTail:] {
		render(f)
	}
	return b.String()
}

// Execution is the engine-side execution context: it embeds the
// driver-provided Context (spec.md §4.2, Output()/Input() only) and adds
// the plumbing every Execute/Print call needs — the top-level scope
// (so method bodies can still see globally bound classes), the source text
// (for code-frame rendering) and an active call stack (for stack traces).
// It is never captured by an Object; it is borrowed mutably for one Run.
type Execution struct {
	*Context
	globalScope *Scope
	source      string
	callStack   []StackFrame
}

// NewExecution builds an Execution over a freshly created global scope.
func NewExecution(ctx *Context, source string) *Execution {
	exec := &Execution{Context: ctx, source: source}
	exec.globalScope = NewScope(nil)
	return exec
}

// GlobalScope returns the top-level scope bindings (classes, top-level
// assignments) are made into.
func (exec *Execution) GlobalScope() *Scope { return exec.globalScope }

func (exec *Execution) pushFrame(f StackFrame) { exec.callStack = append(exec.callStack, f) }
func (exec *Execution) popFrame()              { exec.callStack = exec.callStack[:len(exec.callStack)-1] }

// runtimeErrorfAt builds a RuntimeError at the given position, including a
// code frame and the current call stack.
func (exec *Execution) runtimeErrorfAt(pos Position, format string, args ...any) error {
	frames := make([]StackFrame, len(exec.callStack))
	copy(frames, exec.callStack)
	return &RuntimeError{
		Message:   fmt.Sprintf(format, args...),
		Pos:       pos,
		CodeFrame: formatCodeFrame(exec.source, pos),
		Frames:    frames,
	}
}

// runtimeErrorf builds a RuntimeError with no specific source position —
// used where the caller has no Position at hand (e.g. arity errors raised
// deep inside ClassInstance.Call).
func (exec *Execution) runtimeErrorf(format string, args ...any) error {
	return exec.runtimeErrorfAt(Position{}, format, args...)
}

// formatCodeFrame renders the offending source line with a caret under the
// reported column, the way vibes/error_format.go renders its code frames.
func formatCodeFrame(source string, pos Position) string {
	if source == "" || pos.Line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if pos.Line > len(lines) {
		return ""
	}
	lineText := lines[pos.Line-1]
	column := pos.Column
	if column <= 0 {
		column = 1
	}
	runes := []rune(lineText)
	if column > len(runes)+1 {
		column = len(runes) + 1
	}
	lineLabel := strconv.Itoa(pos.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)
	return fmt.Sprintf("  --> line %d, column %d\n %s | %s\n %s | %s^",
		pos.Line, column, lineLabel, lineText, gutterPad, caretPad)
}

// Engine compiles Nyx source into a runnable Script.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Script is a compiled program: its top-level statement tree plus the
// source text it was compiled from (for error rendering).
type Script struct {
	program Statement
	source  string
}

// Compile lexes and parses source into a Script.
func (e *Engine) Compile(source string) (*Script, error) {
	tokens, err := Lex(source)
	if err != nil {
		return nil, err
	}
	p := newParser(NewCursor(tokens))
	program, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	return &Script{program: program, source: source}, nil
}

// Run executes the compiled program's top-level statements against a
// fresh global scope, writing print output to ctx.
func (s *Script) Run(ctx *Context) error {
	exec := NewExecution(ctx, s.source)
	_, _, err := s.program.Execute(exec.globalScope, exec)
	return err
}

// Session is a REPL-oriented compile/execute pipeline: unlike Engine.Compile
// plus Script.Run, a Session keeps its global scope and class table alive
// across repeated calls to Eval, so a variable or class bound by one
// submitted line is visible to the next. Grounded on cmd/vibes/repl.go's
// replModel, which keeps its own vibes.Value env map alive between
// evaluations for the same reason.
type Session struct {
	exec    *Execution
	classes map[string]*Class
}

// NewSession starts a REPL session writing output to ctx.
func (e *Engine) NewSession(ctx *Context) *Session {
	return &Session{
		exec:    NewExecution(ctx, ""),
		classes: make(map[string]*Class),
	}
}

// SetOutput redirects the session's print output, without otherwise
// disturbing its scope or class table.
func (s *Session) SetOutput(w io.Writer) { s.exec.SetOutput(w) }

// Eval compiles and immediately runs one line (or block) of source against
// the session's persistent scope. Nyx has no auto-echo of bare expression
// results (spec.md has no REPL-value concept); output is whatever the
// evaluated line itself prints.
func (s *Session) Eval(source string) error {
	tokens, err := Lex(source)
	if err != nil {
		return err
	}
	p := newParserWithClasses(NewCursor(tokens), s.classes)
	program, err := p.parseProgram()
	if err != nil {
		return err
	}
	s.exec.source = source
	_, _, err = program.Execute(s.exec.globalScope, s.exec)
	return err
}

// Vars renders every name currently bound at the session's top level to its
// Print-contract string form, for the REPL's variables panel.
func (s *Session) Vars() map[string]string {
	out := make(map[string]string)
	for _, name := range s.exec.globalScope.Names() {
		h, _ := s.exec.globalScope.Get(name)
		str, err := stringifyHolder(h, s.exec)
		if err != nil {
			str = "<error>"
		}
		out[name] = str
	}
	return out
}
