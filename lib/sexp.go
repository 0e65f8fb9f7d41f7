package lib

import (
	"fmt"
	"strconv"
	"strings"
)

/*
	A minimal s-expression model: bare atoms, quoted strings, and lists.

	KiCad reads its symbol libraries as nested-parenthesis text, so every
	value interpolated into the output goes through here. Quoted strings
	are escaped; atoms are validated. Nothing in a component record can
	unbalance the output.
*/
type Sexp interface {
	write(b *strings.Builder, depth int) error
}

type Atom string

type Quoted string

type List []Sexp

func (a Atom) write(b *strings.Builder, depth int) error {
	if a == "" || strings.ContainsAny(string(a), "()\" \t\r\n") {
		return fmt.Errorf("invalid atom %q", string(a))
	}

	b.WriteString(string(a))
	return nil
}

func (q Quoted) write(b *strings.Builder, depth int) error {
	b.WriteByte('"')
	for _, r := range string(q) {
		switch {
		case r == '"':
			b.WriteString("\\\"")
		case r == '\\':
			b.WriteString("\\\\")
		case r == '\t' || r == '\n':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			return fmt.Errorf("control character %q in string %q", r, string(q))
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return nil
}

/*
	A list renders on one line when every member is an atom or a quoted
	string. Once a sub-list appears, the leading flat members stay on the
	opening line and every remaining member gets its own indented line,
	which is the shape KiCad's own editor writes.
*/
func (l List) write(b *strings.Builder, depth int) error {
	flat := true
	for _, member := range l {
		if _, ok := member.(List); ok {
			flat = false
			break
		}
	}

	b.WriteByte('(')
	if flat {
		for i, member := range l {
			if i > 0 {
				b.WriteByte(' ')
			}
			if err := member.write(b, depth); err != nil {
				return err
			}
		}
		b.WriteByte(')')

		return nil
	}

	i := 0
	for ; i < len(l); i++ {
		if _, ok := l[i].(List); ok {
			break
		}

		if i > 0 {
			b.WriteByte(' ')
		}
		if err := l[i].write(b, depth); err != nil {
			return err
		}
	}

	for ; i < len(l); i++ {
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("\t", depth+1))
		if err := l[i].write(b, depth+1); err != nil {
			return err
		}
	}

	b.WriteByte('\n')
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteByte(')')

	return nil
}

/*
	Render an expression as text, with a trailing newline
*/
func Render(expr Sexp) (string, error) {
	b := &strings.Builder{}
	if err := expr.write(b, 0); err != nil {
		return "", err
	}
	b.WriteByte('\n')

	return b.String(), nil
}

/*
	Format a coordinate or dimension the way KiCad writes one: no
	exponent, no trailing zeros
*/
func Num(v float64) Atom {
	return Atom(strconv.FormatFloat(v, 'f', -1, 64))
}

func Int(v int) Atom {
	return Atom(strconv.Itoa(v))
}
