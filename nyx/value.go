package nyx

import "fmt"

// ValueKind tags the concrete variant an Object carries.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindString
	KindBool
	KindClass
	KindInstance
)

// Object is any value the interpreter can hold, bind and print. The set is
// closed: Number, String, Bool, Class, ClassInstance (spec.md §3).
type Object interface {
	Kind() ValueKind
	// Print writes the object's textual representation to ctx.Output(),
	// following the per-variant rules in spec.md §4.3.
	Print(ctx *Execution) error
}

// Number is a 64-bit signed integer value — the language has no floats
// (spec.md §1 Non-goals).
type Number struct{ Value int64 }

func (Number) Kind() ValueKind { return KindNumber }
func (n Number) Print(ctx *Execution) error {
	_, err := fmt.Fprintf(ctx.Output(), "%d", n.Value)
	return err
}

// String is a raw byte sequence; printing never quotes it.
type String struct{ Value string }

func (String) Kind() ValueKind { return KindString }
func (s String) Print(ctx *Execution) error {
	_, err := fmt.Fprint(ctx.Output(), s.Value)
	return err
}

// Bool is a two-valued boolean.
type Bool struct{ Value bool }

func (Bool) Kind() ValueKind { return KindBool }
func (b Bool) Print(ctx *Execution) error {
	label := "False"
	if b.Value {
		label = "True"
	}
	_, err := fmt.Fprint(ctx.Output(), label)
	return err
}

func (c *Class) Kind() ValueKind { return KindClass }
func (c *Class) Print(ctx *Execution) error {
	_, err := fmt.Fprintf(ctx.Output(), "Class %s", c.Name)
	return err
}

func (inst *ClassInstance) Kind() ValueKind { return KindInstance }

// Print calls the instance's __str__(0) if defined; otherwise prints an
// opaque identity tag (spec.md §4.3).
func (inst *ClassInstance) Print(ctx *Execution) error {
	if inst.HasMethod("__str__", 0) {
		result, err := inst.Call("__str__", nil, ctx)
		if err != nil {
			return err
		}
		return PrintHolder(result, ctx)
	}
	_, err := fmt.Fprintf(ctx.Output(), "<%s instance at %p>", inst.Class.Name, inst)
	return err
}

// IsTrue implements the totally-defined truthiness predicate of spec.md
// §4.3: Number != 0, non-empty String, Bool itself, and false for every
// other variant including a null holder.
func IsTrue(h Holder) bool {
	if h.IsNull() {
		return false
	}
	switch v := h.Object().(type) {
	case Number:
		return v.Value != 0
	case String:
		return v.Value != ""
	case Bool:
		return v.Value
	default:
		return false
	}
}
