package nyx

// CompareFunc is any of the comparison predicates below, used by the
// Comparison node (spec.md §4.3/§4.5).
type CompareFunc func(a, b Holder, ctx *Execution) (bool, error)

// Equal implements spec.md §4.3: same-kind Number/String/Bool compare by
// value; two null holders are equal; otherwise a ClassInstance with
// __eq__(1) is dispatched to. Anything else is a type error.
func Equal(a, b Holder, ctx *Execution) (bool, error) {
	if a.IsNull() && b.IsNull() {
		return true, nil
	}
	if a.IsNull() || b.IsNull() {
		if inst, ok := a.AsInstance(); ok && inst.HasMethod("__eq__", 1) {
			return dispatchEq(inst, b, ctx)
		}
		return false, ctx.runtimeErrorf("unsupported operand types for ==")
	}
	switch av := a.Object().(type) {
	case Number:
		if bv, ok := b.Object().(Number); ok {
			return av.Value == bv.Value, nil
		}
	case String:
		if bv, ok := b.Object().(String); ok {
			return av.Value == bv.Value, nil
		}
	case Bool:
		if bv, ok := b.Object().(Bool); ok {
			return av.Value == bv.Value, nil
		}
	case *ClassInstance:
		if av.HasMethod("__eq__", 1) {
			return dispatchEq(av, b, ctx)
		}
	}
	return false, ctx.runtimeErrorf("unsupported operand types for ==")
}

func dispatchEq(inst *ClassInstance, other Holder, ctx *Execution) (bool, error) {
	result, err := inst.Call("__eq__", []Holder{other}, ctx)
	if err != nil {
		return false, err
	}
	b, ok := result.Object().(Bool)
	if !ok {
		return false, ctx.runtimeErrorf("__eq__ must return a boolean")
	}
	return b.Value, nil
}

// Less implements spec.md §4.3: same-kind comparison for Number/String/Bool
// ("False" < "True"), or dispatch to __lt__(1).
func Less(a, b Holder, ctx *Execution) (bool, error) {
	if !a.IsNull() {
		if inst, ok := a.Object().(*ClassInstance); ok && inst.HasMethod("__lt__", 1) {
			return dispatchLt(inst, b, ctx)
		}
	}
	if a.IsNull() || b.IsNull() {
		return false, ctx.runtimeErrorf("unsupported operand types for <")
	}
	switch av := a.Object().(type) {
	case Number:
		if bv, ok := b.Object().(Number); ok {
			return av.Value < bv.Value, nil
		}
	case String:
		if bv, ok := b.Object().(String); ok {
			return av.Value < bv.Value, nil
		}
	case Bool:
		if bv, ok := b.Object().(Bool); ok {
			return boolToInt(av.Value) < boolToInt(bv.Value), nil
		}
	}
	return false, ctx.runtimeErrorf("unsupported operand types for <")
}

func dispatchLt(inst *ClassInstance, other Holder, ctx *Execution) (bool, error) {
	result, err := inst.Call("__lt__", []Holder{other}, ctx)
	if err != nil {
		return false, err
	}
	b, ok := result.Object().(Bool)
	if !ok {
		return false, ctx.runtimeErrorf("__lt__ must return a boolean")
	}
	return b.Value, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// The remaining four comparisons are derived purely from Equal and Less,
// exactly as original_source/mython/statement.cpp derives them (spec.md
// §4.3 "Derived:").

func NotEqual(a, b Holder, ctx *Execution) (bool, error) {
	eq, err := Equal(a, b, ctx)
	return !eq, err
}

func Greater(a, b Holder, ctx *Execution) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(a, b Holder, ctx *Execution) (bool, error) {
	gt, err := Greater(a, b, ctx)
	return !gt, err
}

func GreaterOrEqual(a, b Holder, ctx *Execution) (bool, error) {
	lt, err := Less(a, b, ctx)
	return !lt, err
}
