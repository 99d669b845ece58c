package glsl

import "strconv"

type parser struct {
	toks    []token
	pos     int
	structs map[string]bool
	unit    *Unit
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) unexpected(t token, expecting string) *Error {
	if expecting == "" {
		return errorf(t.line, t.col, "syntax error, unexpected %s", t.describe())
	}
	return errorf(t.line, t.col, "syntax error, unexpected %s, expecting %s", t.describe(), expecting)
}

func (p *parser) expect(text string) (token, error) {
	t := p.next()
	if !t.is(text) {
		return t, p.unexpected(t, "'"+text+"'")
	}
	return t, nil
}

func (p *parser) isType(name string) bool {
	return builtinTypes[name] || p.structs[name]
}

func (p *parser) parse() error {
	for p.peek().kind != tokEOF {
		if p.peek().is(";") {
			p.next()
			continue
		}
		if err := p.external(); err != nil {
			return err
		}
	}
	return nil
}

// external parses one global declaration or function definition.
func (p *parser) external() error {
	if p.peek().is("precision") {
		p.next()
		if q := p.next(); !precisions[q.text] {
			return p.unexpected(q, "precision qualifier")
		}
		if t := p.next(); !builtinTypes[t.text] {
			return p.unexpected(t, "type")
		}
		_, err := p.expect(";")
		return err
	}

	var storage Storage
	location := -1
	hasQualifier := false
	for {
		t := p.peek()
		if t.is("layout") {
			p.next()
			loc, err := p.layout()
			if err != nil {
				return err
			}
			if loc >= 0 {
				location = loc
			}
			hasQualifier = true
			continue
		}
		if t.kind == tokIdent && removedQualifiers[t.text] && p.unit.Version >= 140 {
			return errorf(t.line, t.col, "'%s' is not a valid storage qualifier in GLSL %d", t.text, p.unit.Version)
		}
		if t.kind != tokIdent || !qualifiers[t.text] {
			break
		}
		p.next()
		hasQualifier = true
		switch t.text {
		case "in", "attribute":
			storage = In
		case "out", "varying":
			storage = Out
		case "uniform":
			storage = Uniform
		}
	}

	t := p.peek()
	if t.is("struct") {
		p.next()
		name, err := p.structDef()
		if err != nil {
			return err
		}
		if p.peek().is(";") {
			p.next()
			return nil
		}
		return p.declarators(storage, name, location)
	}

	if t.kind == tokIdent && !p.isType(t.text) && storage != 0 && p.peekAt(1).is("{") {
		p.next()
		return p.interfaceBlock()
	}

	if t.kind != tokIdent || !p.isType(t.text) {
		return p.unexpected(t, "")
	}
	typeTok := p.next()
	if p.peek().is("[") {
		if err := p.skipBalanced("[", "]"); err != nil {
			return err
		}
	}

	nameTok := p.peek()
	if nameTok.kind != tokIdent {
		if nameTok.is(";") && hasQualifier {
			p.next()
			return nil
		}
		return p.unexpected(nameTok, "IDENTIFIER")
	}
	if p.peekAt(1).is("(") {
		p.next()
		return p.function(typeTok, nameTok)
	}
	return p.declarators(storage, typeTok.text, location)
}

// layout parses a layout qualifier list and returns the location, or -1.
func (p *parser) layout() (int, error) {
	if _, err := p.expect("("); err != nil {
		return -1, err
	}
	location := -1
	for {
		id := p.next()
		if id.kind != tokIdent {
			return -1, p.unexpected(id, "layout qualifier")
		}
		if p.peek().is("=") {
			p.next()
			val := p.next()
			if val.kind != tokInt {
				return -1, p.unexpected(val, "INTCONSTANT")
			}
			if id.text == "location" {
				n, err := strconv.ParseInt(trimIntSuffix(val.text), 0, 32)
				if err != nil {
					return -1, errorf(val.line, val.col, "invalid location '%s'", val.text)
				}
				location = int(n)
			}
		}
		sep := p.next()
		if sep.is(")") {
			return location, nil
		}
		if !sep.is(",") {
			return -1, p.unexpected(sep, "',' or ')'")
		}
	}
}

func (p *parser) structDef() (string, error) {
	nameTok := p.next()
	if nameTok.kind != tokIdent {
		return "", p.unexpected(nameTok, "IDENTIFIER")
	}
	if _, err := p.expect("{"); err != nil {
		return "", err
	}
	for !p.peek().is("}") {
		for p.peek().kind == tokIdent && qualifiers[p.peek().text] {
			p.next()
		}
		typeTok := p.next()
		if typeTok.kind != tokIdent || !p.isType(typeTok.text) {
			return "", p.unexpected(typeTok, "")
		}
		for {
			member := p.next()
			if member.kind != tokIdent {
				return "", p.unexpected(member, "IDENTIFIER")
			}
			if p.peek().is("[") {
				if err := p.skipBalanced("[", "]"); err != nil {
					return "", err
				}
			}
			sep := p.next()
			if sep.is(";") {
				break
			}
			if !sep.is(",") {
				return "", p.unexpected(sep, "',' or ';'")
			}
		}
	}
	p.next()
	p.structs[nameTok.text] = true
	return nameTok.text, nil
}

// interfaceBlock skips a named block such as "uniform Globals { ... } g;".
func (p *parser) interfaceBlock() error {
	if err := p.skipBalanced("{", "}"); err != nil {
		return err
	}
	if p.peek().kind == tokIdent {
		p.next()
		if p.peek().is("[") {
			if err := p.skipBalanced("[", "]"); err != nil {
				return err
			}
		}
	}
	_, err := p.expect(";")
	return err
}

func (p *parser) declarators(storage Storage, typeName string, location int) error {
	for {
		nameTok := p.next()
		if nameTok.kind != tokIdent {
			return p.unexpected(nameTok, "IDENTIFIER")
		}
		v := Var{Storage: storage, Type: typeName, Name: nameTok.text, Location: location, Line: nameTok.line}
		if p.peek().is("[") {
			p.next()
			size := p.next()
			if size.kind != tokInt {
				return p.unexpected(size, "INTCONSTANT")
			}
			n, err := strconv.ParseInt(trimIntSuffix(size.text), 0, 32)
			if err != nil || n <= 0 {
				return errorf(size.line, size.col, "array size must be a positive integer")
			}
			v.ArrayLen = int(n)
			if _, err := p.expect("]"); err != nil {
				return err
			}
		}
		var sep token
		if p.peek().is("=") {
			eq := p.next()
			if storage == In || storage == Out {
				return errorf(eq.line, eq.col, "cannot initialize %s variable '%s'", storage, v.Name)
			}
			var err error
			if sep, err = p.expression(",", ";"); err != nil {
				return err
			}
		} else {
			sep = p.next()
		}
		if storage != 0 {
			p.unit.add(v)
		}
		if sep.is(";") {
			return nil
		}
		if !sep.is(",") {
			return p.unexpected(sep, "',' or ';'")
		}
		if location >= 0 {
			location++
		}
	}
}

func (p *parser) function(retType, name token) error {
	if err := p.skipBalanced("(", ")"); err != nil {
		return err
	}
	if p.peek().is(";") {
		p.next()
		return nil
	}
	if !p.peek().is("{") {
		return p.unexpected(p.peek(), "'{' or ';'")
	}
	if name.text == "main" {
		if p.unit.HasMain {
			return errorf(name.line, name.col, "function 'main' redefined")
		}
		if retType.text != "void" {
			return errorf(name.line, name.col, "main() must return void")
		}
		p.unit.HasMain = true
	}
	p.unit.Functions = append(p.unit.Functions, name.text)
	return p.block()
}

// skipBalanced consumes from the opening delimiter to its match.
func (p *parser) skipBalanced(open, close string) error {
	if _, err := p.expect(open); err != nil {
		return err
	}
	stack := []string{close}
	for len(stack) > 0 {
		t := p.next()
		switch {
		case t.kind == tokEOF:
			return p.unexpected(t, "'"+stack[len(stack)-1]+"'")
		case t.is("("):
			stack = append(stack, ")")
		case t.is("["):
			stack = append(stack, "]")
		case t.is("{"):
			stack = append(stack, "}")
		case t.is(")") || t.is("]") || t.is("}"):
			if t.text != stack[len(stack)-1] {
				return p.unexpected(t, "'"+stack[len(stack)-1]+"'")
			}
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

func trimIntSuffix(s string) string {
	if n := len(s); n > 0 && (s[n-1] == 'u' || s[n-1] == 'U') {
		return s[:n-1]
	}
	return s
}
