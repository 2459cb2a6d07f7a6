package nyx

// parseStatement dispatches on the current token to one of the statement
// forms the grammar supports.
func (p *parser) parseStatement() (Statement, error) {
	switch p.tok().Kind {
	case TokClass:
		return p.parseClassDef()
	case TokIf:
		return p.parseIfElse()
	case TokReturn:
		return p.parseReturn()
	case TokPrint:
		return p.parsePrint()
	default:
		return p.parseSimpleStatement()
	}
}

// parseClassDef parses `class Name[(Parent)]:` followed by an indented
// block of method definitions, resolving Parent (if any) against classes
// already declared earlier in the token stream.
func (p *parser) parseClassDef() (Statement, error) {
	pos := p.tok().Pos
	p.advance() // 'class'
	name, err := p.expectID()
	if err != nil {
		return nil, err
	}

	var parent *Class
	if p.isChar('(') {
		p.advance()
		parentName, err := p.expectID()
		if err != nil {
			return nil, err
		}
		parent, err = p.resolveClass(parentName)
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}

	p.skipNewlines()
	if _, err := p.expectKind(TokIndent); err != nil {
		return nil, err
	}
	var methods []*Method
	for p.tok().Kind != TokDedent {
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
		p.skipNewlines()
	}
	if _, err := p.expectKind(TokDedent); err != nil {
		return nil, err
	}

	class := NewClass(name, methods, parent)
	p.classes[name] = class
	_ = pos
	return &ClassDefinition{Class: class}, nil
}

func (p *parser) resolveClass(name string) (*Class, error) {
	class, ok := p.classes[name]
	if !ok {
		return nil, p.errorf("unknown class '%s'", name)
	}
	return class, nil
}

// parseMethodDef parses `def name(params):` followed by an indented body,
// wrapped in a MethodBody so a `return` anywhere in the body converts back
// into a normal call result. A leading `self` parameter is dropped from the
// formal parameter list: Call binds `self` itself, so arity counts only the
// remaining parameters.
func (p *parser) parseMethodDef() (*Method, error) {
	if _, err := p.expectKind(TokDef); err != nil {
		return nil, err
	}
	name, err := p.expectID()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var params []string
	for !p.isChar(')') {
		if len(params) > 0 {
			if err := p.expectChar(','); err != nil {
				return nil, err
			}
		}
		param, err := p.expectID()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	p.advance() // ')'
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &Method{Name: name, Params: params, Body: &MethodBody{Body: body}}, nil
}

func (p *parser) parseIfElse() (Statement, error) {
	p.advance() // 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(':'); err != nil {
		return nil, err
	}
	thenBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	var elseBody Statement
	p.skipNewlines()
	if p.tok().Kind == TokElse {
		p.advance()
		if err := p.expectChar(':'); err != nil {
			return nil, err
		}
		elseBody, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &IfElse{Cond: cond, Then: thenBody, Else: elseBody}, nil
}

func (p *parser) parseReturn() (Statement, error) {
	pos := p.tok().Pos
	p.advance() // 'return'
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &Return{Pos: pos, Expr: expr}, nil
}

func (p *parser) parsePrint() (Statement, error) {
	pos := p.tok().Pos
	p.advance() // 'print'
	var args []Expression
	if p.tok().Kind != TokNewline && p.tok().Kind != TokEOF && p.tok().Kind != TokDedent {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.isChar(',') {
			p.advance()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return &Print{Pos: pos, Args: args}, nil
}

// parseSimpleStatement handles assignment, field assignment, and bare
// expression statements — all of which start with an expression.
func (p *parser) parseSimpleStatement() (Statement, error) {
	pos := p.tok().Pos
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.isChar('=') {
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.endOfStatement(); err != nil {
			return nil, err
		}
		switch lhs := expr.(type) {
		case *VariableValue:
			if len(lhs.Path) == 1 {
				return &Assignment{Pos: pos, Var: lhs.Path[0], Rhs: rhs}, nil
			}
			return &FieldAssignment{
				Pos:     pos,
				ObjPath: &VariableValue{Pos: lhs.Pos, Path: lhs.Path[:len(lhs.Path)-1]},
				Field:   lhs.Path[len(lhs.Path)-1],
				Rhs:     rhs,
			}, nil
		default:
			return nil, p.errorf("invalid assignment target")
		}
	}

	if err := p.endOfStatement(); err != nil {
		return nil, err
	}
	return expr, nil
}

// endOfStatement consumes the Newline (or accepts Eof/Dedent, for the final
// statement of a block/program) that terminates a logical line.
func (p *parser) endOfStatement() error {
	if p.isChar(';') {
		p.advance()
		return nil
	}
	switch p.tok().Kind {
	case TokNewline:
		p.advance()
		return nil
	case TokEOF, TokDedent:
		return nil
	default:
		return p.errorf("expected end of statement, got %s", p.tok())
	}
}
