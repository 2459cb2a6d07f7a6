package nyx

// parseExpr is the entry point for expression parsing; 'or' binds loosest.
func (p *parser) parseExpr() (Expression, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expression, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok().Kind == TokOr {
		pos := p.tok().Pos
		p.advance()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &Or{Pos: pos, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (Expression, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.tok().Kind == TokAnd {
		pos := p.tok().Pos
		p.advance()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &And{Pos: pos, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseNot() (Expression, error) {
	if p.tok().Kind == TokNot {
		pos := p.tok().Pos
		p.advance()
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Pos: pos, Arg: arg}, nil
	}
	return p.parseComparison()
}

var comparisonTokens = map[TokenKind]CompareFunc{
	TokEq:          Equal,
	TokNotEq:       NotEqual,
	TokLessOrEq:    LessOrEqual,
	TokGreaterOrEq: GreaterOrEqual,
}

func (p *parser) parseComparison() (Expression, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	pos := p.tok().Pos
	if cmp, ok := comparisonTokens[p.tok().Kind]; ok {
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &Comparison{Pos: pos, Cmp: cmp, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.isChar('<') {
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &Comparison{Pos: pos, Cmp: Less, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.isChar('>') {
		p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &Comparison{Pos: pos, Cmp: Greater, Lhs: lhs, Rhs: rhs}, nil
	}
	return lhs, nil
}

func (p *parser) parseAdditive() (Expression, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.isChar('+') || p.isChar('-') {
		pos := p.tok().Pos
		op := p.tok().ByteVal
		p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			lhs = &Add{Pos: pos, Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &Sub{Pos: pos, Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *parser) parseMultiplicative() (Expression, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.isChar('*') || p.isChar('/') {
		pos := p.tok().Pos
		op := p.tok().ByteVal
		p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			lhs = &Mult{Pos: pos, Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &Div{Pos: pos, Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *parser) parseUnary() (Expression, error) {
	if p.isChar('-') {
		pos := p.tok().Pos
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Sub{Pos: pos, Lhs: &Literal{Value: Own(Number{Value: 0})}, Rhs: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix handles identifier chains (VariableValue), method calls
// (`obj.method(args)`), and constructor calls (`ClassName(args)`) — the
// only call forms the data model supports (spec.md §3: only classes and
// class instances are callable, and instance calls are always dotted).
func (p *parser) parsePostfix() (Expression, error) {
	if p.tok().Kind != TokID {
		return p.parsePrimary()
	}

	pos := p.tok().Pos
	first := p.tok().Str
	p.advance()

	if first == "str" && p.isChar('(') {
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
		return &Stringify{Pos: pos, Arg: arg}, nil
	}

	if p.isChar('(') {
		class, err := p.resolveClass(first)
		if err != nil {
			return nil, err
		}
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &NewInstance{Pos: pos, Class: class, Args: args}, nil
	}

	path := []string{first}
	for p.isChar('.') {
		p.advance()
		seg, err := p.expectID()
		if err != nil {
			return nil, err
		}
		path = append(path, seg)
		if p.isChar('(') {
			objPath := path[:len(path)-1]
			name := path[len(path)-1]
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			var obj Expression = &VariableValue{Pos: pos, Path: objPath}
			return &MethodCall{Pos: pos, Obj: obj, Name: name, Args: args}, nil
		}
	}
	return &VariableValue{Pos: pos, Path: path}, nil
}

func (p *parser) parseArgs() ([]Expression, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []Expression
	for !p.isChar(')') {
		if len(args) > 0 {
			if err := p.expectChar(','); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // ')'
	return args, nil
}

func (p *parser) parsePrimary() (Expression, error) {
	t := p.tok()
	switch t.Kind {
	case TokNumber:
		p.advance()
		return &Literal{Value: Own(Number{Value: t.Num})}, nil
	case TokString:
		p.advance()
		return &Literal{Value: Own(String{Value: t.Str})}, nil
	case TokTrue:
		p.advance()
		return &Literal{Value: Own(Bool{Value: true})}, nil
	case TokFalse:
		p.advance()
		return &Literal{Value: Own(Bool{Value: false})}, nil
	case TokNone:
		p.advance()
		return &Literal{Value: Holder{}}, nil
	default:
		if t.Kind == TokChar && t.ByteVal == '(' {
			p.advance()
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
		return nil, p.errorf("unexpected token %s in expression", t)
	}
}
