// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math/big"
	"strconv"
)

// Grammar:
//
//	line      = [ statement { ";" statement } ] [ ";" ]
//	statement = "cone" ident [ "=" expr ] | ident "=" expr | expr
//	expr      = hull { "==" hull }
//	hull      = inter { "|" inter }
//	inter     = primary { "&" primary }
//	primary   = int | "-" int | string | ident [ "(" [ args ] ")" ]
//	          | "(" expr ")" | "[" ints "]" | "[" rows "]" | "{" [ args ] "}"

type node interface {
	eval(in *Interpreter) (Value, error)
}

type (
	intLit struct{ x *big.Int }
	strLit string
	vecLit []*big.Int
	matLit struct {
		cols int
		rows [][]*big.Int
	}
	listLit []node
	ident   string
	call    struct {
		name string
		args []node
	}
	binop struct {
		op   string
		l, r node
	}
	assign struct {
		name string
		expr node
	}
	// decl is "cone name [= expr]": the value goes through the cone command.
	decl struct {
		name string
		expr node
	}
)

type parser struct {
	toks []token
	pos  int
}

func parse(toks []token) ([]node, error) {
	p := &parser{toks: toks}
	var stmts []node
	for p.peek().class != tokEOF {
		if p.accept(";") {
			continue
		}
		s, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if p.peek().class != tokEOF && !p.accept(";") {
			return nil, p.unexpected()
		}
	}

	return stmts, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) peekAt(k int) token {
	if p.pos+k >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.pos+k]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.class != tokEOF {
		p.pos++
	}

	return t
}

// accept consumes the punctuation text if it is next.
func (p *parser) accept(text string) bool {
	if t := p.peek(); t.class == tokPunct && t.text == text {
		p.pos++

		return true
	}

	return false
}

func (p *parser) expect(text string) error {
	if !p.accept(text) {
		return p.unexpected()
	}

	return nil
}

func (p *parser) unexpected() error {
	t := p.peek()

	return fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, t, t.pos)
}

func (p *parser) statement() (node, error) {
	first, second := p.peek(), p.peekAt(1)
	if first.class == tokIdent && first.text == "cone" && second.class == tokIdent {
		p.pos += 2
		d := decl{name: second.text}
		if p.accept("=") {
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			d.expr = e
		}

		return d, nil
	}
	if first.class == tokIdent && second.class == tokPunct && second.text == "=" {
		p.pos += 2
		e, err := p.expr()
		if err != nil {
			return nil, err
		}

		return assign{name: first.text, expr: e}, nil
	}

	return p.expr()
}

// binary parses operand { op operand } left-associatively.
func (p *parser) binary(op string, operand func() (node, error)) (node, error) {
	l, err := operand()
	if err != nil {
		return nil, err
	}
	for p.accept(op) {
		r, err := operand()
		if err != nil {
			return nil, err
		}
		l = binop{op: op, l: l, r: r}
	}

	return l, nil
}

func (p *parser) expr() (node, error) { return p.binary(opEqual, p.hull) }
func (p *parser) hull() (node, error) { return p.binary(opHull, p.inter) }
func (p *parser) inter() (node, error) {
	return p.binary(opIntersect, p.primary)
}

func (p *parser) primary() (node, error) {
	t := p.peek()
	switch t.class {
	case tokInt:
		x, err := p.integer()
		if err != nil {
			return nil, err
		}

		return intLit{x: x}, nil
	case tokString:
		p.next()
		s, err := strconv.Unquote(t.text)
		if err != nil {
			return nil, fmt.Errorf("%w: bad string at offset %d", ErrSyntax, t.pos)
		}

		return strLit(s), nil
	case tokIdent:
		p.next()
		if !p.accept("(") {
			return ident(t.text), nil
		}
		args, err := p.args(")")
		if err != nil {
			return nil, err
		}

		return call{name: t.text, args: args}, nil
	case tokPunct:
		switch t.text {
		case "-":
			x, err := p.integer()
			if err != nil {
				return nil, err
			}

			return intLit{x: x}, nil
		case "(":
			p.next()
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err = p.expect(")"); err != nil {
				return nil, err
			}

			return e, nil
		case "[":
			return p.bracket()
		case "{":
			p.next()
			args, err := p.args("}")
			if err != nil {
				return nil, err
			}

			return listLit(args), nil
		}
	}

	return nil, p.unexpected()
}

// args parses a comma separated expression list up to and including end.
func (p *parser) args(end string) ([]node, error) {
	var out []node
	if p.accept(end) {
		return out, nil
	}
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		if p.accept(end) {
			return out, nil
		}
		if err = p.expect(","); err != nil {
			return nil, err
		}
	}
}

// integer parses an optionally negated integer literal.
func (p *parser) integer() (*big.Int, error) {
	neg := p.accept("-")
	t := p.peek()
	if t.class != tokInt {
		return nil, p.unexpected()
	}
	p.next()
	x, ok := new(big.Int).SetString(t.text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: bad integer %q", ErrSyntax, t.text)
	}
	if neg {
		x.Neg(x)
	}

	return x, nil
}

// bracket parses a vector [1,2] or a matrix [[1,0],[0,1]].
func (p *parser) bracket() (node, error) {
	start := p.next()
	if p.peek().class == tokPunct && p.peek().text == "[" {
		var rows [][]*big.Int
		for {
			if err := p.expect("["); err != nil {
				return nil, err
			}
			row, err := p.ints()
			if err != nil {
				return nil, err
			}
			if len(rows) > 0 && len(row) != len(rows[0]) {
				return nil, fmt.Errorf("%w: ragged matrix at offset %d", ErrSyntax, start.pos)
			}
			rows = append(rows, row)
			if p.accept("]") {
				return matLit{cols: len(rows[0]), rows: rows}, nil
			}
			if err = p.expect(","); err != nil {
				return nil, err
			}
		}
	}
	row, err := p.ints()
	if err != nil {
		return nil, err
	}

	return vecLit(row), nil
}

// ints parses "i, j, ... ]" with the opening bracket already consumed.
func (p *parser) ints() ([]*big.Int, error) {
	var out []*big.Int
	if p.accept("]") {
		return out, nil
	}
	for {
		x, err := p.integer()
		if err != nil {
			return nil, err
		}
		out = append(out, x)
		if p.accept("]") {
			return out, nil
		}
		if err = p.expect(","); err != nil {
			return nil, err
		}
	}
}
