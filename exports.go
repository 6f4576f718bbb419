// Package fmode converts Unix file modes between their numeric, octal and
// ls-style symbolic renderings.
//
// A mode such as 33188 is octal 100644: the first three digits select the
// file kind and the last three hold the user, group and other permissions.
//
//	| digits | symbol | file kind        |
//	|--------|--------|------------------|
//	| 100    | -      | regular file     |
//	| 120    | l      | symlink          |
//	| 020    | c      | character device |
//	| 060    | b      | block device     |
//	| 010    | p      | fifo             |
//	| 140    | s      | socket           |
//	| 040    | d      | directory        |
//
// Permission is the mutable decoded form; Builder assembles one from
// symbolic parts.
package fmode

import "github.com/jackfish212/fmode/types"

type (
	Triad            = types.Triad
	Owner            = types.Owner
	OwnerKind        = types.OwnerKind
	InvalidModeError = types.InvalidModeError
)

const (
	User  = types.User
	Group = types.Group
	Other = types.Other
)

const (
	KindRegular  = types.KindRegular
	KindDir      = types.KindDir
	KindSymlink  = types.KindSymlink
	KindCharDev  = types.KindCharDev
	KindBlockDev = types.KindBlockDev
	KindFIFO     = types.KindFIFO
	KindSocket   = types.KindSocket
)

var (
	NewTriad       = types.NewTriad
	TriadFromDigit = types.TriadFromDigit
)

var (
	ErrInvalidMode     = types.ErrInvalidMode
	ErrInvalidFileKind = types.ErrInvalidFileKind
	ErrInvalidTriad    = types.ErrInvalidTriad
	ErrInvalidSymbolic = types.ErrInvalidSymbolic
)
