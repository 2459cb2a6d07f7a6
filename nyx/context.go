package nyx

import "io"

// Context is the execution context threaded through every Execute and
// Object.Print call (spec.md §4.2). It is supplied by the driver and
// borrowed mutably for the lifetime of an execution — never captured by
// objects.
type Context struct {
	out io.Writer
	in  io.Reader
}

// NewContext builds a Context over the given output/input streams. A nil
// input is fine; no operation specified here reads from it.
func NewContext(out io.Writer, in io.Reader) *Context {
	return &Context{out: out, in: in}
}

func (c *Context) Output() io.Writer { return c.out }
func (c *Context) Input() io.Reader  { return c.in }

// SetOutput redirects where Print output goes. The REPL session
// (cmd/nyx/repl.go) uses this to capture each submitted line's output into
// its own buffer without tearing down and rebuilding the session's scope.
func (c *Context) SetOutput(w io.Writer) { c.out = w }
