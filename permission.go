package fmode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackfish212/fmode/types"
)

// Permission is a file kind plus the user, group and other triads of a Unix
// file mode. The numeric mode is derived from those parts on every call to
// Mode, so changes made through Owner are always reflected.
//
// A Permission is not safe for concurrent mutation.
type Permission struct {
	kind   byte
	owners [3]types.Owner
}

// Parse decomposes a numeric file mode such as 33188 (octal 100644).
//
// The zero-padded octal form of mode must be exactly six digits long:
// the first three select the file kind, the last three are the user, group
// and other digits. Unknown kind codes are treated as a regular file.
func Parse(mode uint32) (*Permission, error) {
	octal := fmt.Sprintf("%06o", mode)
	if len(octal) != 6 {
		return nil, &types.InvalidModeError{Octal: octal}
	}
	p := &Permission{kind: types.FileKindSymbol(octal[0:3])}
	for i, kind := range types.OwnerKinds {
		triad := types.NewTriad(types.DigitToTriad(octal[3+i : 4+i]))
		p.owners[i] = types.NewOwner(kind, triad)
	}
	return p, nil
}

// MustParse is like Parse but panics if mode is invalid.
func MustParse(mode uint32) *Permission {
	p, err := Parse(mode)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseOctal parses an octal string such as "100644" and decomposes it.
func ParseOctal(s string) (*Permission, error) {
	mode, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an octal number", types.ErrInvalidMode, s)
	}
	return Parse(uint32(mode))
}

// FileKind returns the file kind symbol, e.g. '-' for a regular file.
func (p *Permission) FileKind() byte { return p.kind }

// SetFileKind replaces the file kind. Only "-dlcbps" are accepted.
func (p *Permission) SetFileKind(kind byte) error {
	if err := ValidateFileKind(kind); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

// Owner returns the owner slot for kind. Mutating the returned Owner changes p.
// It panics if kind is not User, Group or Other.
func (p *Permission) Owner(kind types.OwnerKind) *types.Owner {
	return &p.owners[kind]
}

func (p *Permission) User() *types.Owner  { return p.Owner(types.User) }
func (p *Permission) Group() *types.Owner { return p.Owner(types.Group) }
func (p *Permission) Other() *types.Owner { return p.Owner(types.Other) }

// Mode recomposes the numeric mode from the file kind and the three triads.
// The result can be passed back to Parse.
func (p *Permission) Mode() uint32 {
	var b strings.Builder
	b.WriteString(types.FileKindCode(p.kind))
	for i := range p.owners {
		b.WriteString(strconv.FormatUint(uint64(p.owners[i].Digit()), 8))
	}
	mode, err := strconv.ParseUint(b.String(), 8, 32)
	if err != nil {
		return 0
	}
	return uint32(mode)
}

// Octal returns Mode as six zero-padded octal digits, e.g. "100644".
func (p *Permission) Octal() string {
	return fmt.Sprintf("%06o", p.Mode())
}

// Symbolic returns the ls-style rendering, e.g. "-rw-r--r--".
func (p *Permission) Symbolic() string {
	var b strings.Builder
	b.Grow(10)
	b.WriteByte(p.kind)
	for i := range p.owners {
		b.WriteString(p.owners[i].String())
	}
	return b.String()
}

func (p *Permission) String() string { return p.Symbolic() }
