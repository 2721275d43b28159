// SPDX-License-Identifier: MIT

package expr

// Grammar (recursive descent, one token of lookahead):
//
//	expr    := term { ("+" | "-") term }
//	term    := unary { ("*" | "/") unary | power }      (juxtaposition = implicit "*")
//	unary   := ("+" | "-") unary | power
//	power   := primary [ "^" unary ]                    (right-associative)
//	primary := number | "x" | constant | func group | "frac" brace brace | group
//	group   := "(" expr ")" | brace
//	brace   := "{" expr "}"

type parser struct {
	src  string
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(t token, msg string) error {
	return &ParseError{Input: p.src, Pos: t.pos, Msg: msg}
}

func (p *parser) isOp(op string) bool {
	t := p.peek()

	return t.kind == tokOp && t.text == op
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.next().text[0]
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}

	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var (
			op    byte
			right node
		)
		switch t := p.peek(); {
		case p.isOp("*") || p.isOp("/"):
			op = p.next().text[0]
			right, err = p.parseUnary()
		case t.kind == tokIdent || t.kind == tokLParen || t.kind == tokLBrace:
			op = '*'
			right, err = p.parsePower()
		default:
			return left, nil
		}
		if err != nil {
			return nil, err
		}
		left = binary{op: op, l: left, r: right}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch {
	case p.isOp("-"):
		p.next()
		a, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return neg{a}, nil
	case p.isOp("+"):
		p.next()

		return p.parseUnary()
	}

	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return binary{op: '^', l: base, r: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return num{t.num}, nil

	case tokLParen, tokLBrace:
		return p.parseGroupRest(t)

	case tokIdent:
		if t.text == "x" {
			return variable{}, nil
		}
		if v, ok := constants[t.text]; ok {
			return constant{name: t.text, v: v}, nil
		}
		if t.text == "frac" {
			return p.parseFrac(t)
		}
		fn, ok := functions[t.text]
		if !ok {
			return nil, p.errorf(t, "unknown identifier "+quote(t.text))
		}
		open := p.next()
		if open.kind != tokLParen && open.kind != tokLBrace {
			return nil, p.errorf(open, "expected ( after "+t.text)
		}
		arg, err := p.parseGroupRest(open)
		if err != nil {
			return nil, err
		}

		return call{fn: fn, arg: arg}, nil

	case tokEOF:
		return nil, p.errorf(t, "unexpected end of input")
	}

	return nil, p.errorf(t, "unexpected "+quote(t.text))
}

// parseGroupRest parses `expr` and the closer matching the already-consumed opener.
func (p *parser) parseGroupRest(open token) (node, error) {
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	want, text := tokRParen, ")"
	if open.kind == tokLBrace {
		want, text = tokRBrace, "}"
	}
	if closer := p.next(); closer.kind != want {
		return nil, p.errorf(closer, "expected "+text+" to close "+open.text+" at position "+itoa(open.pos))
	}

	return inner, nil
}

// parseFrac handles \frac{numerator}{denominator}.
func (p *parser) parseFrac(t token) (node, error) {
	var parts [2]node
	for i := range parts {
		open := p.next()
		if open.kind != tokLBrace {
			return nil, p.errorf(open, "expected { after "+t.text)
		}
		n, err := p.parseGroupRest(open)
		if err != nil {
			return nil, err
		}
		parts[i] = n
	}

	return binary{op: '/', l: parts[0], r: parts[1]}, nil
}
