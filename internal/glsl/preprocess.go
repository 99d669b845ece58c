package glsl

import (
	"strconv"
	"strings"
)

type directives struct {
	version int
	profile string
	defines map[string]string
}

type condFrame struct {
	active   bool // lines in the current branch are kept
	parent   bool // the enclosing branch is active
	taken    bool // some branch of this #if was taken
	sawElse  bool
	openLine int
}

// preprocess evaluates directives. Directive lines and lines in inactive
// branches are blanked so that line numbers stay stable for the lexer.
func preprocess(src string) (string, directives, error) {
	dirs := directives{version: 110, defines: make(map[string]string)}
	lines := strings.Split(src, "\n")
	var stack []condFrame
	active := true
	sawCode := false
	inComment := false

	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)
		if inComment {
			if idx := strings.Index(trimmed, "*/"); idx >= 0 {
				inComment = false
				trimmed = strings.TrimSpace(trimmed[idx+2:])
			} else {
				continue
			}
		}
		if !strings.HasPrefix(trimmed, "#") {
			if active && isCode(trimmed) {
				sawCode = true
			}
			if strings.Contains(trimmed, "/*") && !strings.Contains(trimmed[strings.LastIndex(trimmed, "/*"):], "*/") {
				inComment = true
			}
			if !active {
				lines[i] = ""
			}
			continue
		}

		lines[i] = ""
		name, rest := splitDirective(trimmed)
		col := strings.Index(line, "#") + 1

		switch name {
		case "if", "ifdef", "ifndef":
			cond := false
			if active {
				var err *Error
				cond, err = evalCondition(name, rest, dirs.defines, lineNo, col)
				if err != nil {
					return "", dirs, err
				}
			}
			stack = append(stack, condFrame{active: active && cond, parent: active, taken: cond, openLine: lineNo})
			active = active && cond
			sawCode = true
			continue
		case "else":
			if len(stack) == 0 {
				return "", dirs, errorf(lineNo, col, "#else without #if")
			}
			top := &stack[len(stack)-1]
			if top.sawElse {
				return "", dirs, errorf(lineNo, col, "#else after #else")
			}
			top.sawElse = true
			top.active = top.parent && !top.taken
			top.taken = true
			active = top.active
			continue
		case "endif":
			if len(stack) == 0 {
				return "", dirs, errorf(lineNo, col, "#endif without #if")
			}
			active = stack[len(stack)-1].parent
			stack = stack[:len(stack)-1]
			continue
		}
		if !active {
			continue
		}

		switch name {
		case "version":
			if sawCode {
				return "", dirs, errorf(lineNo, col, "#version must appear on the first line")
			}
			fields := strings.Fields(rest)
			if len(fields) == 0 {
				return "", dirs, errorf(lineNo, col, "#version directive requires a version number")
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil || !supportedVersions[v] {
				return "", dirs, errorf(lineNo, col, "version '%s' is not supported", fields[0])
			}
			dirs.version = v
			if len(fields) > 1 {
				dirs.profile = fields[1]
				switch dirs.profile {
				case "core", "compatibility", "es":
				default:
					return "", dirs, errorf(lineNo, col, "invalid profile '%s'", dirs.profile)
				}
			}
		case "define":
			fields := strings.Fields(rest)
			if len(fields) == 0 {
				return "", dirs, errorf(lineNo, col, "#define requires a macro name")
			}
			if strings.Contains(fields[0], "(") {
				return "", dirs, errorf(lineNo, col, "function-like macros are not supported")
			}
			dirs.defines[fields[0]] = strings.Join(fields[1:], " ")
		case "undef":
			delete(dirs.defines, strings.TrimSpace(rest))
		case "extension", "pragma", "line", "":
		case "error":
			return "", dirs, errorf(lineNo, col, "#error %s", rest)
		default:
			return "", dirs, errorf(lineNo, col, "unknown preprocessor directive '#%s'", name)
		}
		sawCode = true
	}
	if len(stack) > 0 {
		return "", dirs, errorf(stack[len(stack)-1].openLine, 1, "unterminated #if")
	}
	return strings.Join(lines, "\n"), dirs, nil
}

func isCode(trimmed string) bool {
	return trimmed != "" && !strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "/*")
}

func splitDirective(trimmed string) (name, rest string) {
	body := strings.TrimSpace(trimmed[1:])
	if idx := strings.Index(body, "//"); idx >= 0 {
		body = strings.TrimSpace(body[:idx])
	}
	end := strings.IndexAny(body, " \t(")
	if end < 0 {
		return body, ""
	}
	return body[:end], strings.TrimSpace(body[end:])
}

func evalCondition(kind, expr string, defines map[string]string, line, col int) (bool, *Error) {
	switch kind {
	case "ifdef":
		_, ok := defines[strings.TrimSpace(expr)]
		return ok, nil
	case "ifndef":
		_, ok := defines[strings.TrimSpace(expr)]
		return !ok, nil
	}

	expr = strings.TrimSpace(expr)
	negate := false
	if strings.HasPrefix(expr, "!") {
		negate = true
		expr = strings.TrimSpace(expr[1:])
	}
	var result bool
	switch {
	case strings.HasPrefix(expr, "defined"):
		name, ok := definedOperand(strings.TrimPrefix(expr, "defined"))
		if !ok {
			return false, errorf(line, col, "unsupported #if expression '%s'", expr)
		}
		_, result = defines[name]
	default:
		if v, ok := defines[expr]; ok {
			expr = v
		}
		n, err := strconv.Atoi(expr)
		if err != nil {
			return false, errorf(line, col, "unsupported #if expression '%s'", expr)
		}
		result = n != 0
	}
	if negate {
		result = !result
	}
	return result, nil
}

// definedOperand accepts "(NAME)" or " NAME" with nothing after it.
func definedOperand(rest string) (string, bool) {
	rest = strings.TrimSpace(rest)
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 || strings.TrimSpace(rest[end+1:]) != "" {
			return "", false
		}
		rest = strings.TrimSpace(rest[1:end])
	}
	if rest == "" || !isIdentStart(rest[0]) {
		return "", false
	}
	for i := 1; i < len(rest); i++ {
		if !isIdentPart(rest[i]) {
			return "", false
		}
	}
	return rest, true
}
