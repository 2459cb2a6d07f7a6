package nyx

// Assignment evaluates Rhs and binds scope[Var] to the result, returning it.
type Assignment struct {
	Pos Position
	Var string
	Rhs Expression
}

// VariableValue resolves a dotted identifier path (spec.md §4.5):
// a single id is a plain scope lookup; a longer path looks up the first id
// (must be a ClassInstance), then follows each intermediate id through
// Fields() (each must itself be a ClassInstance), terminating at the last
// segment's field value.
type VariableValue struct {
	Pos  Position
	Path []string
}

// Print evaluates each arg, prints them separated by single spaces plus a
// trailing newline — except when exactly one arg is given, in which case
// only it is printed (spec.md §4.5, §9).
type Print struct {
	Pos  Position
	Args []Expression
}

// MethodCall evaluates Obj (must resolve to a ClassInstance), evaluates
// Args left to right, then invokes ClassInstance.Call(Name, args).
type MethodCall struct {
	Pos  Position
	Obj  Expression
	Name string
	Args []Expression
}

// Stringify evaluates Arg and returns a new owned String built from its
// Print contract (None prints as "None").
type Stringify struct {
	Pos Position
	Arg Expression
}

// Add is Number+Number, String+String, or dispatch to __add__(1) on a
// ClassInstance lhs. Sub/Mult/Div are numeric-only.
type Add struct {
	Pos      Position
	Lhs, Rhs Expression
}
type Sub struct {
	Pos      Position
	Lhs, Rhs Expression
}
type Mult struct {
	Pos      Position
	Lhs, Rhs Expression
}
type Div struct {
	Pos      Position
	Lhs, Rhs Expression
}

// Compound executes Stmts in order; the result is null unless a `return`
// propagates through unchanged.
type Compound struct {
	Stmts []Statement
}

// Return evaluates Expr and propagates it as a non-local exit, unwinding to
// the nearest enclosing MethodBody.
type Return struct {
	Pos  Position
	Expr Expression
}

// ClassDefinition binds Class's name in the enclosing scope and returns the
// class object itself.
type ClassDefinition struct {
	Class *Class
}

// FieldAssignment resolves ObjPath to a ClassInstance, evaluates Rhs, and
// assigns it into instance.Fields[Field].
type FieldAssignment struct {
	Pos     Position
	ObjPath *VariableValue
	Field   string
	Rhs     Expression
}

// IfElse executes Then if IsTrue(Cond), otherwise Else (which may be nil).
type IfElse struct {
	Cond Expression
	Then Statement
	Else Statement
}

// Or/And short-circuit: only Bool/Number operands are accepted.
type Or struct {
	Pos      Position
	Lhs, Rhs Expression
}
type And struct {
	Pos      Position
	Lhs, Rhs Expression
}

// Not negates a Bool/Number operand's truthiness.
type Not struct {
	Pos Position
	Arg Expression
}

// Comparison applies Cmp to the evaluated Lhs/Rhs.
type Comparison struct {
	Pos      Position
	Cmp      CompareFunc
	Lhs, Rhs Expression
}

// NewInstance allocates a fresh instance of Class, then calls __init__ with
// the evaluated Args if the class defines one of matching arity.
type NewInstance struct {
	Pos   Position
	Class *Class
	Args  []Expression
}

// MethodBody is the sole node that converts a propagating Return back into
// a normal result; it is the body every ClassInstance.Call executes.
type MethodBody struct {
	Body Statement
}

// Literal is a constant Number/String/Bool/None value produced directly by
// the parser from a token — not named as its own node in spec.md §3 (which
// describes the evaluator's node set, not the parser's grammar), but
// required for any parser to hand the evaluator something to Add/Sub/print.
type Literal struct {
	Value Holder
}

func (l *Literal) Execute(scope *Scope, exec *Execution) (Holder, bool, error) {
	return l.Value, false, nil
}

