package nyx

import "testing"

func TestRecursiveMethodCall(t *testing.T) {
	source := `class Math:
  def fact(self, n):
    if n <= 1:
      return 1
    return n * self.fact(n - 1)

m = Math()
print m.fact(5)
`
	out, err := runScript(t, source)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if out != "120\n" {
		t.Fatalf("got %q, want %q", out, "120\n")
	}
}

func TestArityErrorOnWrongArgumentCount(t *testing.T) {
	source := `class Greeter:
  def hello(self, name):
    return "hi " + name

g = Greeter()
print g.hello()
`
	_, err := runScript(t, source)
	if err == nil {
		t.Fatalf("expected an arity error, got none")
	}
}

func TestUnknownNameIsRuntimeError(t *testing.T) {
	_, err := runScript(t, "print undefined_name\n")
	if err == nil {
		t.Fatalf("expected an error, got none")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
}
