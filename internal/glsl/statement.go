package glsl

// block parses a compound statement including its braces.
func (p *parser) block() error {
	if _, err := p.expect("{"); err != nil {
		return err
	}
	for !p.peek().is("}") {
		if p.peek().kind == tokEOF {
			return p.unexpected(p.peek(), "'}'")
		}
		if err := p.statement(); err != nil {
			return err
		}
	}
	p.next()
	return nil
}

func (p *parser) statement() error {
	t := p.peek()
	switch {
	case t.is("{"):
		return p.block()
	case t.is(";"):
		p.next()
		return nil
	case t.is("if"):
		p.next()
		if err := p.condition(); err != nil {
			return err
		}
		if err := p.statement(); err != nil {
			return err
		}
		if p.peek().is("else") {
			p.next()
			return p.statement()
		}
		return nil
	case t.is("while"):
		p.next()
		if err := p.condition(); err != nil {
			return err
		}
		return p.statement()
	case t.is("do"):
		p.next()
		if err := p.statement(); err != nil {
			return err
		}
		if _, err := p.expect("while"); err != nil {
			return err
		}
		if err := p.condition(); err != nil {
			return err
		}
		_, err := p.expect(";")
		return err
	case t.is("for"):
		p.next()
		if _, err := p.expect("("); err != nil {
			return err
		}
		if _, err := p.expression(";"); err != nil {
			return err
		}
		if _, err := p.expression(";"); err != nil {
			return err
		}
		if _, err := p.expression(")"); err != nil {
			return err
		}
		return p.statement()
	case t.is("switch"):
		p.next()
		if err := p.condition(); err != nil {
			return err
		}
		return p.block()
	case t.is("case"):
		p.next()
		_, err := p.expression(":")
		return err
	case t.is("default"):
		p.next()
		_, err := p.expect(":")
		return err
	case t.is("return"):
		p.next()
		_, err := p.expression(";")
		return err
	case t.is("break") || t.is("continue") || t.is("discard"):
		p.next()
		_, err := p.expect(";")
		return err
	}
	_, err := p.expression(";")
	return err
}

// condition parses a parenthesised expression after if, while or switch.
func (p *parser) condition() error {
	if _, err := p.expect("("); err != nil {
		return err
	}
	_, err := p.expression(")")
	return err
}

// expression scans tokens up to one of the terminators at nesting depth
// zero and consumes the terminator. It rejects unbalanced delimiters and
// two operands with nothing between them, which is how a missing ';'
// shows up.
func (p *parser) expression(terminators ...string) (token, error) {
	expecting := "';'"
	if len(terminators) == 2 {
		expecting = "',' or ';'"
	} else if len(terminators) == 1 {
		expecting = "'" + terminators[0] + "'"
	}

	var stack []string
	var prev token
	havePrev := false
	for {
		t := p.peek()
		if len(stack) == 0 {
			for _, term := range terminators {
				if t.is(term) {
					p.next()
					return t, nil
				}
			}
		}
		switch {
		case t.kind == tokEOF:
			return t, p.unexpected(t, expecting)
		case t.is("("):
			stack = append(stack, ")")
		case t.is("["):
			stack = append(stack, "]")
		case t.is("{"):
			if len(stack) == 0 {
				return t, p.unexpected(t, expecting)
			}
			stack = append(stack, "}")
		case t.is(")") || t.is("]") || t.is("}"):
			if len(stack) == 0 {
				return t, p.unexpected(t, expecting)
			}
			if t.text != stack[len(stack)-1] {
				return t, p.unexpected(t, "'"+stack[len(stack)-1]+"'")
			}
			stack = stack[:len(stack)-1]
		case t.is(";"):
			return t, p.unexpected(t, "'"+stack[len(stack)-1]+"'")
		}

		if havePrev && endsOperand(prev) && startsOperand(t) && !p.declares(prev) {
			return t, p.unexpected(t, expecting)
		}
		prev, havePrev = t, true
		p.next()
	}
}

// declares reports whether t may be followed directly by an identifier, as
// in "vec4 color" or "const float x".
func (p *parser) declares(t token) bool {
	return t.kind == tokIdent && (p.isType(t.text) || qualifiers[t.text])
}

func endsOperand(t token) bool {
	return t.kind == tokIdent || t.kind == tokInt || t.kind == tokFloat || t.is(")") || t.is("]")
}

func startsOperand(t token) bool {
	return t.kind == tokIdent || t.kind == tokInt || t.kind == tokFloat
}
