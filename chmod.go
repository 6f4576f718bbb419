package fmode

import (
	"fmt"
	"strings"

	"github.com/jackfish212/fmode/types"
)

// Apply changes p according to a symbolic chmod expression such as
// "u-r", "go+w" or "a=rx,u+w". An empty "who" part means all owners.
// p is left untouched if expr is malformed.
func (p *Permission) Apply(expr string) error {
	clauses, err := parseChmod(expr)
	if err != nil {
		return err
	}
	for _, c := range clauses {
		for _, kind := range c.who {
			c.apply(p.Owner(kind))
		}
	}
	return nil
}

type chmodClause struct {
	who   []types.OwnerKind
	op    byte
	perms string
}

func (c chmodClause) apply(o *types.Owner) {
	has := func(b byte) bool { return strings.IndexByte(c.perms, b) >= 0 }
	set := func(letter byte, setter func(byte)) {
		switch {
		case c.op == '=' && has(letter), c.op == '+' && has(letter):
			setter(letter)
		case c.op == '=', c.op == '-' && has(letter):
			setter('-')
		}
	}
	set('r', o.SetRead)
	set('w', o.SetWrite)
	set('x', o.SetExecute)
}

func parseChmod(expr string) ([]chmodClause, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty chmod expression", types.ErrInvalidSymbolic)
	}
	var clauses []chmodClause
	for _, part := range strings.Split(expr, ",") {
		i := strings.IndexAny(part, "+-=")
		if i < 0 {
			return nil, fmt.Errorf("%w: %q has no operator", types.ErrInvalidSymbolic, part)
		}
		c := chmodClause{op: part[i], perms: part[i+1:]}
		for _, w := range part[:i] {
			switch w {
			case 'u':
				c.who = append(c.who, types.User)
			case 'g':
				c.who = append(c.who, types.Group)
			case 'o':
				c.who = append(c.who, types.Other)
			case 'a':
				c.who = append(c.who, types.OwnerKinds[:]...)
			default:
				return nil, fmt.Errorf("%w: unknown owner %q in %q", types.ErrInvalidSymbolic, w, part)
			}
		}
		if len(c.who) == 0 {
			c.who = types.OwnerKinds[:]
		}
		if strings.Trim(c.perms, "rwx") != "" {
			return nil, fmt.Errorf("%w: %q may only use r, w and x", types.ErrInvalidSymbolic, part)
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}
