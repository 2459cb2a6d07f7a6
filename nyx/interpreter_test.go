package nyx

import (
	"strings"
	"testing"
)

func runScript(t *testing.T, source string) (string, error) {
	t.Helper()
	engine := NewEngine()
	script, err := engine.Compile(source)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	var out strings.Builder
	err = script.Run(NewContext(&out, nil))
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := runScript(t, "x = 2 + 3 * 4\nprint x\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "14\n" {
		t.Fatalf("got %q, want %q", out, "14\n")
	}
}

func TestInheritanceOverridesStr(t *testing.T) {
	source := `class A:
  def __str__(self):
    return "a"

class B(A):
  def __str__(self):
    return "b"

print B()
`
	out, err := runScript(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "b\n" {
		t.Fatalf("got %q, want %q", out, "b\n")
	}
}

func TestInheritedMethodNotOverridden(t *testing.T) {
	source := `class A:
  def greet(self):
    return "hi"

class B(A):
  def other(self):
    return 1

b = B()
print b.greet()
`
	out, err := runScript(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "hi\n" {
		t.Fatalf("got %q, want %q", out, "hi\n")
	}
}

func TestReturnFromNestedIf(t *testing.T) {
	source := `class Checker:
  def check(self, x):
    if x > 0:
      return 1
    return 2

c = Checker()
print c.check(5)
print c.check(0)
`
	out, err := runScript(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "1\n2\n" {
		t.Fatalf("got %q, want %q", out, "1\n2\n")
	}
}

func TestDivisionByZeroProducesNoOutput(t *testing.T) {
	out, err := runScript(t, "print 1 / 0\n")
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
	if out != "" {
		t.Fatalf("expected no output before the error, got %q", out)
	}
}

func TestPrintSingleArgumentNoTrailingSeparator(t *testing.T) {
	out, err := runScript(t, `print "only"` + "\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "only\n" {
		t.Fatalf("got %q, want %q", out, "only\n")
	}
}

func TestPrintMultipleArgumentsSpaceSeparated(t *testing.T) {
	out, err := runScript(t, "print 1, 2, 3\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "1 2 3\n" {
		t.Fatalf("got %q, want %q", out, "1 2 3\n")
	}
}

func TestNoneStringifiesAsNone(t *testing.T) {
	out, err := runScript(t, "print None\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "None\n" {
		t.Fatalf("got %q, want %q", out, "None\n")
	}
}

func TestFieldAssignmentAndAccess(t *testing.T) {
	source := `class Point:
  def __init__(self, x, y):
    self.x = x
    self.y = y
  def sum(self):
    return self.x + self.y

p = Point(3, 4)
print p.sum()
`
	out, err := runScript(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "7\n" {
		t.Fatalf("got %q, want %q", out, "7\n")
	}
}

func TestEqDispatchToUserMethod(t *testing.T) {
	source := `class Box:
  def __init__(self, v):
    self.v = v
  def __eq__(self, other):
    return self.v == other.v

a = Box(1)
b = Box(1)
print a == b
`
	out, err := runScript(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "True\n" {
		t.Fatalf("got %q, want %q", out, "True\n")
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	// The right-hand 1 / 0 would raise if it were evaluated.
	out, err := runScript(t, "print True or False\nprint False and True\nprint True or 1 / 0\nprint False and 1 / 0\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "True\nFalse\nTrue\nFalse\n" {
		t.Fatalf("got %q, want %q", out, "True\nFalse\nTrue\nFalse\n")
	}
}

func TestSemicolonSeparatesStatements(t *testing.T) {
	out, err := runScript(t, "x = 2 + 3 * 4; print x\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "14\n" {
		t.Fatalf("got %q, want %q", out, "14\n")
	}
}
