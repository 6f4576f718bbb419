package fmode

import (
	"fmt"
	"strconv"

	"github.com/jackfish212/fmode/types"
)

// Builder assembles a Permission from its symbolic parts.
//
// Each call appends the octal code of its argument to the mode being built,
// in call order. Invalid input is a programming error and panics with an
// error wrapping types.ErrInvalidFileKind or types.ErrInvalidTriad; use
// ParseSymbolic for a recoverable variant. Parts that are never supplied
// default to zero, so NewBuilder().Build() describes a regular file with no
// permissions.
//
//	p, err := fmode.NewBuilder().
//		FileKind('-').
//		User("rw-").
//		Group("r--").
//		Other("r--").
//		Build()
type Builder struct {
	mode string
}

func NewBuilder() *Builder {
	return &Builder{}
}

// FileKind appends the 3-digit code of one of "-dlcbps".
func (b *Builder) FileKind(kind byte) *Builder {
	if err := ValidateFileKind(kind); err != nil {
		panic(err)
	}
	b.mode += types.FileKindCode(kind)
	return b
}

// User appends the digit of a triad matching [r-][w-][x-].
func (b *Builder) User(triad string) *Builder { return b.owner(types.User, triad) }

// Group appends the digit of a triad matching [r-][w-][x-].
func (b *Builder) Group(triad string) *Builder { return b.owner(types.Group, triad) }

// Other appends the digit of a triad matching [r-][w-][x-].
func (b *Builder) Other(triad string) *Builder { return b.owner(types.Other, triad) }

func (b *Builder) owner(kind types.OwnerKind, triad string) *Builder {
	if err := ValidateTriad(kind, triad); err != nil {
		panic(err)
	}
	b.mode += types.TriadToDigit(triad)
	return b
}

// Mode returns the accumulated digits parsed as octal. An empty builder, or
// one whose digits overflow, reports 0.
func (b *Builder) Mode() uint32 {
	mode, err := b.parse()
	if err != nil {
		return 0
	}
	return mode
}

func (b *Builder) parse() (uint32, error) {
	digits := b.mode
	if digits == "" {
		digits = "0"
	}
	mode, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, &types.InvalidModeError{Octal: b.mode}
	}
	return uint32(mode), nil
}

// Build parses the accumulated digits and decomposes them with Parse.
func (b *Builder) Build() (*Permission, error) {
	mode, err := b.parse()
	if err != nil {
		return nil, err
	}
	return Parse(mode)
}

// String returns Mode in decimal.
func (b *Builder) String() string {
	return strconv.FormatUint(uint64(b.Mode()), 10)
}

// ParseSymbolic parses a 10 character ls-style string such as "drwxr-xr-x".
// Unlike Builder it reports malformed input as an error.
func ParseSymbolic(s string) (*Permission, error) {
	if len(s) != 10 {
		return nil, fmt.Errorf("%w: %q must be 10 characters long", types.ErrInvalidSymbolic, s)
	}
	if err := ValidateFileKind(s[0]); err != nil {
		return nil, err
	}
	b := NewBuilder().FileKind(s[0])
	for i, kind := range types.OwnerKinds {
		triad := s[1+3*i : 4+3*i]
		if err := ValidateTriad(kind, triad); err != nil {
			return nil, err
		}
		b.owner(kind, triad)
	}
	return b.Build()
}

// ValidateTriad reports whether triad matches [r-][w-][x-]. The error names
// the owner category and wraps types.ErrInvalidTriad.
func ValidateTriad(kind types.OwnerKind, triad string) error {
	if len(triad) != 3 ||
		(triad[0] != 'r' && triad[0] != '-') ||
		(triad[1] != 'w' && triad[1] != '-') ||
		(triad[2] != 'x' && triad[2] != '-') {
		return fmt.Errorf("%w: %s permission %q must match [r-][w-][x-]", types.ErrInvalidTriad, kind, triad)
	}
	return nil
}

// ValidateFileKind reports whether kind is one of "-dlcbps".
func ValidateFileKind(kind byte) error {
	if !types.IsFileKind(kind) {
		return fmt.Errorf("%w: %q must be one of -dlcbps", types.ErrInvalidFileKind, string(kind))
	}
	return nil
}
