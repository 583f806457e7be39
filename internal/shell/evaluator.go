// Package shell provides console Processor implementations: a small
// calculator REPL and a PTY-backed shell runner.
package shell

import (
	"fmt"
	"strconv"
	"strings"
)

// Evaluator is a Processor for a tiny calculator REPL. It supports float
// arithmetic with + - * /, parentheses, named variables via `name = expr`,
// and `vars` to list assignments. It keeps state across commands.
type Evaluator struct {
	vars map[string]float64
}

func NewEvaluator() *Evaluator {
	return &Evaluator{vars: make(map[string]float64)}
}

// Process implements widget.Processor.
func (e *Evaluator) Process(command string, _ int) (string, error) {
	line := strings.TrimSpace(command)
	if line == "" {
		return "", nil
	}
	if line == "vars" {
		if len(e.vars) == 0 {
			return "no variables", nil
		}
		var b strings.Builder
		for name, v := range e.vars {
			fmt.Fprintf(&b, "%s = %g\n", name, v)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}

	if name, expr, ok := splitAssign(line); ok {
		v, err := e.eval(expr)
		if err != nil {
			return "", err
		}
		e.vars[name] = v
		return fmt.Sprintf("%s = %g", name, v), nil
	}

	v, err := e.eval(line)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(v, 'g', -1, 64), nil
}

// splitAssign detects `name = expr`, rejecting comparison operators.
func splitAssign(line string) (name, expr string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i <= 0 || i+1 >= len(line) {
		return "", "", false
	}
	if line[i+1] == '=' || line[i-1] == '!' || line[i-1] == '<' || line[i-1] == '>' {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	if !isIdent(name) {
		return "", "", false
	}
	return name, strings.TrimSpace(line[i+1:]), true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// eval parses and evaluates an expression with a recursive descent parser.
func (e *Evaluator) eval(expr string) (float64, error) {
	p := &parser{input: expr, vars: e.vars}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

type parser struct {
	input string
	pos   int
	vars  map[string]float64
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseFactor()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	case c == '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		return p.parseVar()
	case c == 0:
		return 0, fmt.Errorf("unexpected end of expression")
	default:
		return 0, fmt.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", p.input[start:p.pos])
	}
	return v, nil
}

func (p *parser) parseVar() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		break
	}
	name := p.input[start:p.pos]
	v, ok := p.vars[name]
	if !ok {
		return 0, fmt.Errorf("undefined variable %q", name)
	}
	return v, nil
}
