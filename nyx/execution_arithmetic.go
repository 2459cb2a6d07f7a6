package nyx

// evalBinaryOperands evaluates lhs/rhs left to right, propagating a return
// signal from either side unchanged.
func evalBinaryOperands(lhs, rhs Expression, scope *Scope, exec *Execution) (l, r Holder, returning bool, err error) {
	l, returning, err = lhs.Execute(scope, exec)
	if err != nil || returning {
		return l, Holder{}, returning, err
	}
	r, returning, err = rhs.Execute(scope, exec)
	if err != nil || returning {
		return l, r, returning, err
	}
	return l, r, false, nil
}

// Execute implements Number+Number, String+String, or dispatch to
// __add__(1) when lhs is a ClassInstance defining it.
func (a *Add) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	l, r, returning, err := evalBinaryOperands(a.Lhs, a.Rhs, scope, exec)
	if err != nil || returning {
		return l, returning, err
	}
	if !l.IsNull() {
		switch lv := l.Object().(type) {
		case Number:
			if rv, ok := r.Object().(Number); ok {
				return Own(Number{Value: lv.Value + rv.Value}), false, nil
			}
		case String:
			if rv, ok := r.Object().(String); ok {
				return Own(String{Value: lv.Value + rv.Value}), false, nil
			}
		case *ClassInstance:
			if lv.HasMethod("__add__", 1) {
				result, err := lv.Call("__add__", []Holder{r}, exec)
				if err != nil {
					return Holder{}, false, err
				}
				return result, false, nil
			}
		}
	}
	return Holder{}, false, exec.runtimeErrorfAt(a.Pos, "unsupported operand types for +")
}

// Execute implements numeric subtraction.
func (s *Sub) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	l, r, returning, err := evalBinaryOperands(s.Lhs, s.Rhs, scope, exec)
	if err != nil || returning {
		return l, returning, err
	}
	ln, lok := numberOf(l)
	rn, rok := numberOf(r)
	if !lok || !rok {
		return Holder{}, false, exec.runtimeErrorfAt(s.Pos, "unsupported operand types for -")
	}
	return Own(Number{Value: ln - rn}), false, nil
}

// Execute implements numeric multiplication.
func (m *Mult) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	l, r, returning, err := evalBinaryOperands(m.Lhs, m.Rhs, scope, exec)
	if err != nil || returning {
		return l, returning, err
	}
	ln, lok := numberOf(l)
	rn, rok := numberOf(r)
	if !lok || !rok {
		return Holder{}, false, exec.runtimeErrorfAt(m.Pos, "unsupported operand types for *")
	}
	return Own(Number{Value: ln * rn}), false, nil
}

// Execute implements numeric division; dividing by zero is a runtime error.
func (d *Div) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	l, r, returning, err := evalBinaryOperands(d.Lhs, d.Rhs, scope, exec)
	if err != nil || returning {
		return l, returning, err
	}
	ln, lok := numberOf(l)
	rn, rok := numberOf(r)
	if !lok || !rok {
		return Holder{}, false, exec.runtimeErrorfAt(d.Pos, "unsupported operand types for /")
	}
	if rn == 0 {
		return Holder{}, false, exec.runtimeErrorfAt(d.Pos, "division by zero")
	}
	return Own(Number{Value: ln / rn}), false, nil
}

func numberOf(h Holder) (int64, bool) {
	if h.IsNull() {
		return 0, false
	}
	n, ok := h.Object().(Number)
	return n.Value, ok
}
