package nyx

import "fmt"

// ClassInstance is a runtime object carrying a reference to its class and a
// mutable name -> Holder field table (spec.md §3).
type ClassInstance struct {
	Class  *Class
	Fields map[string]Holder
}

// NewClassInstance allocates a fresh instance with an empty field table;
// callers wrap it in an owning Holder themselves (see NewInstance).
func NewClassInstance(class *Class) *ClassInstance {
	return &ClassInstance{Class: class, Fields: make(map[string]Holder)}
}

// HasMethod reports whether the instance's class has a method with this
// name whose formal parameter count equals argc (spec.md §4.4).
func (inst *ClassInstance) HasMethod(name string, argc int) bool {
	m := inst.Class.GetMethod(name)
	return m != nil && len(m.Params) == argc
}

// Call dispatches name(args...) against the instance (spec.md §4.4):
//  1. HasMethod gates arity, or this is an arity error.
//  2. a fresh Scope is built, chained to the top-level global scope so the
//     method body can still see globally bound classes; `self` is bound as
//     a non-owning holder, then each formal parameter by position.
//  3. the method body executes; its returned value (MethodBody's
//     intercepted result) is the call's result.
func (inst *ClassInstance) Call(name string, args []Holder, ctx *Execution) (Holder, error) {
	m := inst.Class.GetMethod(name)
	if m == nil || len(m.Params) != len(args) {
		return Holder{}, ctx.runtimeErrorf("no method '%s' with %d argument(s) on %s", name, len(args), inst.Class.Name)
	}

	scope := NewScope(ctx.globalScope)
	scope.Set("self", Borrow(inst))
	for i, param := range m.Params {
		scope.Set(param, args[i])
	}

	result, _, err := m.Body.Execute(scope, ctx)
	if err != nil {
		return Holder{}, err
	}
	// m.Body is always a *MethodBody, which always converts a propagating
	// return back into a normal (non-returning) result — result is already
	// None if the body fell off the end without an explicit `return`.
	return result, nil
}

func (inst *ClassInstance) String() string {
	return fmt.Sprintf("<%s instance>", inst.Class.Name)
}
