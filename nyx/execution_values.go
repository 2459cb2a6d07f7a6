package nyx

// Execute evaluates Rhs, binds it into scope under Var, and returns it.
func (a *Assignment) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	val, returning, err := a.Rhs.Execute(scope, exec)
	if err != nil {
		return Holder{}, false, err
	}
	if returning {
		return val, true, nil
	}
	scope.Set(a.Var, val)
	return val, false, nil
}

// Execute resolves the dotted Path (spec.md §4.5): a single-segment path is
// a plain lookup; longer paths walk instance fields.
func (v *VariableValue) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	val, ok := scope.Get(v.Path[0])
	if !ok {
		return Holder{}, false, exec.runtimeErrorfAt(v.Pos, "name '%s' is not defined", v.Path[0])
	}
	if len(v.Path) == 1 {
		return val, false, nil
	}
	current := val
	for _, segment := range v.Path[1:] {
		inst, ok := current.AsInstance()
		if !ok {
			return Holder{}, false, exec.runtimeErrorfAt(v.Pos, "'%s' is not a class instance", v.Path[0])
		}
		field, ok := inst.Fields[segment]
		if !ok {
			return Holder{}, false, exec.runtimeErrorfAt(v.Pos, "instance of '%s' has no field '%s'", inst.Class.Name, segment)
		}
		current = field
	}
	return current, false, nil
}

// Execute resolves ObjPath to a ClassInstance, evaluates Rhs, assigns it
// into the instance's field table, and returns the new value.
func (fa *FieldAssignment) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	objVal, returning, err := fa.ObjPath.Execute(scope, exec)
	if err != nil {
		return Holder{}, false, err
	}
	if returning {
		return objVal, true, nil
	}
	inst, ok := objVal.AsInstance()
	if !ok {
		return Holder{}, false, exec.runtimeErrorfAt(fa.Pos, "cannot assign a field on a non-instance value")
	}
	val, returning, err := fa.Rhs.Execute(scope, exec)
	if err != nil {
		return Holder{}, false, err
	}
	if returning {
		return val, true, nil
	}
	inst.Fields[fa.Field] = val
	return val, false, nil
}

// Execute prints each arg separated by a single space with a trailing
// newline. When exactly one arg is supplied, the loop is short-circuited
// after printing it — preserved for output-equivalence with the reference
// implementation (spec.md §4.5, §9).
func (p *Print) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	for i, arg := range p.Args {
		val, returning, err := arg.Execute(scope, exec)
		if err != nil {
			return Holder{}, false, err
		}
		if returning {
			return val, true, nil
		}
		if i > 0 {
			if _, err := exec.Output().Write([]byte(" ")); err != nil {
				return Holder{}, false, err
			}
		}
		if err := PrintHolder(val, exec); err != nil {
			return Holder{}, false, err
		}
		if len(p.Args) == 1 {
			break
		}
	}
	if _, err := exec.Output().Write([]byte("\n")); err != nil {
		return Holder{}, false, err
	}
	return Holder{}, false, nil
}

// Execute renders Arg through its Print contract into an owned String.
func (s *Stringify) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	val, returning, err := s.Arg.Execute(scope, exec)
	if err != nil {
		return Holder{}, false, err
	}
	if returning {
		return val, true, nil
	}
	text, err := stringifyHolder(val, exec)
	if err != nil {
		return Holder{}, false, err
	}
	return Own(String{Value: text}), false, nil
}

// Execute binds the class object under its own name in the enclosing scope
// and returns it.
func (cd *ClassDefinition) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	val := Own(cd.Class)
	scope.Set(cd.Class.Name, val)
	return val, false, nil
}
