package nyx

// isBoolOrNumber reports whether h holds a Bool or Number — the only
// operand kinds And/Or/Not accept (spec.md §4.5).
func isBoolOrNumber(h Holder) bool {
	if h.IsNull() {
		return false
	}
	switch h.Object().(type) {
	case Bool, Number:
		return true
	default:
		return false
	}
}

// Execute short-circuits: if Lhs is true, the result is Bool(true) without
// evaluating Rhs; otherwise it's Bool(IsTrue(Rhs)). This corrects the
// reference implementation's quirk of always evaluating Rhs through a
// helper even when the left operand already settled the outcome
// (spec.md §9, REDESIGN).
func (o *Or) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	lhs, returning, err := o.Lhs.Execute(scope, exec)
	if err != nil || returning {
		return lhs, returning, err
	}
	if !isBoolOrNumber(lhs) {
		return Holder{}, false, exec.runtimeErrorfAt(o.Pos, "unsupported operand type for 'or'")
	}
	if IsTrue(lhs) {
		return Own(Bool{Value: true}), false, nil
	}
	rhs, returning, err := o.Rhs.Execute(scope, exec)
	if err != nil || returning {
		return rhs, returning, err
	}
	if !isBoolOrNumber(rhs) {
		return Holder{}, false, exec.runtimeErrorfAt(o.Pos, "unsupported operand type for 'or'")
	}
	return Own(Bool{Value: IsTrue(rhs)}), false, nil
}

// Execute is the symmetric short-circuit: false Lhs skips Rhs entirely.
func (a *And) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	lhs, returning, err := a.Lhs.Execute(scope, exec)
	if err != nil || returning {
		return lhs, returning, err
	}
	if !isBoolOrNumber(lhs) {
		return Holder{}, false, exec.runtimeErrorfAt(a.Pos, "unsupported operand type for 'and'")
	}
	if !IsTrue(lhs) {
		return Own(Bool{Value: false}), false, nil
	}
	rhs, returning, err := a.Rhs.Execute(scope, exec)
	if err != nil || returning {
		return rhs, returning, err
	}
	if !isBoolOrNumber(rhs) {
		return Holder{}, false, exec.runtimeErrorfAt(a.Pos, "unsupported operand type for 'and'")
	}
	return Own(Bool{Value: IsTrue(rhs)}), false, nil
}

// Execute negates a Bool/Number operand's truthiness.
func (n *Not) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	arg, returning, err := n.Arg.Execute(scope, exec)
	if err != nil || returning {
		return arg, returning, err
	}
	if !isBoolOrNumber(arg) {
		return Holder{}, false, exec.runtimeErrorfAt(n.Pos, "unsupported operand type for 'not'")
	}
	return Own(Bool{Value: !IsTrue(arg)}), false, nil
}

// Execute evaluates both operands and applies Cmp.
func (c *Comparison) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	l, r, returning, err := evalBinaryOperands(c.Lhs, c.Rhs, scope, exec)
	if err != nil || returning {
		return l, returning, err
	}
	result, err := c.Cmp(l, r, exec)
	if err != nil {
		return Holder{}, false, err
	}
	return Own(Bool{Value: result}), false, nil
}
