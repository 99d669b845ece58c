package glsl

import "strings"

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

func (t token) is(text string) bool {
	return (t.kind == tokPunct || t.kind == tokIdent) && t.text == text
}

// describe names the token the way parser errors refer to it.
func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of file"
	case tokIdent:
		return "IDENTIFIER"
	case tokInt:
		return "INTCONSTANT"
	case tokFloat:
		return "FLOATCONSTANT"
	default:
		return "'" + t.text + "'"
	}
}

var puncts3 = []string{"<<=", ">>="}

var puncts2 = []string{
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"==", "!=", "<=", ">=", "&&", "||", "^^", "<<", ">>",
}

const puncts1 = "+-*/%=<>!&|^~?:;,.(){}[]"

func lex(src string) ([]token, error) {
	var toks []token
	line, col := 1, 1
	i := 0
	advance := func(n int) {
		for k := 0; k < n && i < len(src); k++ {
			if src[i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i++
		}
	}

	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v':
			advance(1)
		case strings.HasPrefix(src[i:], "//"):
			for i < len(src) && src[i] != '\n' {
				advance(1)
			}
		case strings.HasPrefix(src[i:], "/*"):
			startLine, startCol := line, col
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return nil, errorf(startLine, startCol, "unterminated comment")
			}
			advance(end + 4)
		case isIdentStart(c):
			start, l, cl := i, line, col
			for i < len(src) && isIdentPart(src[i]) {
				advance(1)
			}
			toks = append(toks, token{kind: tokIdent, text: src[start:i], line: l, col: cl})
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			start, l, cl := i, line, col
			kind := lexNumber(src, &i)
			col += i - start
			toks = append(toks, token{kind: kind, text: src[start:i], line: l, col: cl})
		default:
			tok := token{kind: tokPunct, line: line, col: col}
			matched := false
			for _, set := range [][]string{puncts3, puncts2} {
				for _, p := range set {
					if strings.HasPrefix(src[i:], p) {
						tok.text = p
						matched = true
						break
					}
				}
				if matched {
					break
				}
			}
			if !matched {
				if strings.IndexByte(puncts1, c) < 0 {
					return nil, errorf(line, col, "syntax error, unexpected character '%c'", c)
				}
				tok.text = string(c)
			}
			advance(len(tok.text))
			toks = append(toks, tok)
		}
	}
	toks = append(toks, token{kind: tokEOF, line: line, col: col})
	return toks, nil
}

// lexNumber consumes an integer or floating point literal starting at *i.
func lexNumber(src string, i *int) tokenKind {
	j := *i
	kind := tokInt
	if strings.HasPrefix(src[j:], "0x") || strings.HasPrefix(src[j:], "0X") {
		j += 2
		for j < len(src) && isHexDigit(src[j]) {
			j++
		}
	} else {
		for j < len(src) && isDigit(src[j]) {
			j++
		}
		if j < len(src) && src[j] == '.' {
			kind = tokFloat
			j++
			for j < len(src) && isDigit(src[j]) {
				j++
			}
		}
		if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
			kind = tokFloat
			j++
			if j < len(src) && (src[j] == '+' || src[j] == '-') {
				j++
			}
			for j < len(src) && isDigit(src[j]) {
				j++
			}
		}
	}
	if j < len(src) {
		switch src[j] {
		case 'u', 'U':
			j++
		case 'f', 'F':
			kind = tokFloat
			j++
		case 'l':
			if j+1 < len(src) && src[j+1] == 'f' {
				kind = tokFloat
				j += 2
			}
		}
	}
	*i = j
	return kind
}

// expand substitutes object-like macros. Substitution is not recursive.
func expand(toks []token, defines map[string]string) ([]token, error) {
	if len(defines) == 0 {
		return toks, nil
	}
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		body, ok := defines[t.text]
		if t.kind != tokIdent || !ok {
			out = append(out, t)
			continue
		}
		repl, err := lex(body)
		if err != nil {
			return nil, errorf(t.line, t.col, "invalid expansion of macro '%s'", t.text)
		}
		for _, r := range repl[:len(repl)-1] {
			r.line, r.col = t.line, t.col
			out = append(out, r)
		}
	}
	return out, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
