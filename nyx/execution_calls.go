package nyx

// Execute evaluates Obj (must resolve to a ClassInstance), evaluates Args
// left to right, then dispatches through ClassInstance.Call — pushing a
// stack frame for the duration of the call so a failure inside the method
// renders with a readable call stack.
func (mc *MethodCall) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	objVal, returning, err := mc.Obj.Execute(scope, exec)
	if err != nil || returning {
		return objVal, returning, err
	}
	inst, ok := objVal.AsInstance()
	if !ok {
		return Holder{}, false, exec.runtimeErrorfAt(mc.Pos, "method call on a non-instance value")
	}

	args := make([]Holder, len(mc.Args))
	for i, argExpr := range mc.Args {
		val, returning, err := argExpr.Execute(scope, exec)
		if err != nil || returning {
			return val, returning, err
		}
		args[i] = val
	}

	if !inst.HasMethod(mc.Name, len(args)) {
		return Holder{}, false, exec.runtimeErrorfAt(mc.Pos, "'%s' has no method '%s' taking %d argument(s)", inst.Class.Name, mc.Name, len(args))
	}

	exec.pushFrame(StackFrame{Method: mc.Name, Pos: mc.Pos})
	result, err := inst.Call(mc.Name, args, exec)
	exec.popFrame()
	if err != nil {
		return Holder{}, false, err
	}
	return result, false, nil
}

// Execute allocates a fresh instance, then calls __init__ with the
// evaluated Args if the class defines one of matching arity (spec.md
// §4.5).
func (ni *NewInstance) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	inst := NewClassInstance(ni.Class)
	handle := Own(inst)

	if inst.HasMethod("__init__", len(ni.Args)) {
		args := make([]Holder, len(ni.Args))
		for i, argExpr := range ni.Args {
			val, returning, err := argExpr.Execute(scope, exec)
			if err != nil || returning {
				return val, returning, err
			}
			args[i] = val
		}
		exec.pushFrame(StackFrame{Method: ni.Class.Name + ".__init__", Pos: ni.Pos})
		_, err := inst.Call("__init__", args, exec)
		exec.popFrame()
		if err != nil {
			return Holder{}, false, err
		}
	}
	return handle, false, nil
}
