package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonicalTriads = []struct {
	triad string
	digit string
}{
	{"---", "0"},
	{"--x", "1"},
	{"-w-", "2"},
	{"-wx", "3"},
	{"r--", "4"},
	{"r-x", "5"},
	{"rw-", "6"},
	{"rwx", "7"},
}

// ─── Tables ───

func TestTriadTable(t *testing.T) {
	for _, tt := range canonicalTriads {
		assert.Equal(t, tt.digit, TriadToDigit(tt.triad), "TriadToDigit(%q)", tt.triad)
		assert.Equal(t, tt.triad, DigitToTriad(tt.digit), "DigitToTriad(%q)", tt.digit)
		assert.Equal(t, tt.triad, DigitToTriad(TriadToDigit(tt.triad)))
	}
}

func TestTriadTableFallback(t *testing.T) {
	for _, triad := range []string{"rrr", "xwr", "", "rw", "rwxx", "RWX", "r-w"} {
		assert.Equal(t, "0", TriadToDigit(triad), "TriadToDigit(%q)", triad)
	}
	for _, digit := range []string{"8", "9", "", "07", "a"} {
		assert.Equal(t, "---", DigitToTriad(digit), "DigitToTriad(%q)", digit)
	}
}

func TestFileKindTable(t *testing.T) {
	tests := []struct {
		code   string
		symbol byte
	}{
		{"100", KindRegular},
		{"120", KindSymlink},
		{"020", KindCharDev},
		{"060", KindBlockDev},
		{"010", KindFIFO},
		{"140", KindSocket},
		{"040", KindDir},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.symbol, FileKindSymbol(tt.code), "FileKindSymbol(%q)", tt.code)
		assert.Equal(t, tt.code, FileKindCode(tt.symbol), "FileKindCode(%q)", tt.symbol)
		assert.True(t, IsFileKind(tt.symbol))
	}
}

func TestFileKindTableFallback(t *testing.T) {
	for _, code := range []string{"000", "104", "777", "", "40"} {
		assert.Equal(t, KindRegular, FileKindSymbol(code), "FileKindSymbol(%q)", code)
	}
	for _, symbol := range []byte{'x', 'D', ' ', 0} {
		assert.Equal(t, "100", FileKindCode(symbol), "FileKindCode(%q)", symbol)
		assert.False(t, IsFileKind(symbol))
	}
}

// ─── Triad ───

func TestNewTriad(t *testing.T) {
	tests := []struct {
		in    string
		str   string
		digit uint32
	}{
		{"rw-", "rw-", 6},
		{"rwx", "rwx", 7},
		{"", "---", 0},
		{"r", "r--", 4},
		{"rw", "rw-", 6},
		{"rrr", "rrr", 0},
		{"rwxrwx", "rwx", 7},
	}
	for _, tt := range tests {
		tr := NewTriad(tt.in)
		assert.Equal(t, tt.str, tr.String(), "NewTriad(%q).String()", tt.in)
		assert.Equal(t, tt.digit, tr.Digit(), "NewTriad(%q).Digit()", tt.in)
	}
}

func TestTriadFromDigit(t *testing.T) {
	for d := uint32(0); d < 8; d++ {
		tr := TriadFromDigit(d)
		assert.Equal(t, d, tr.Digit())
		assert.Equal(t, canonicalTriads[d].triad, tr.String())
	}
}

func TestTriadSetters(t *testing.T) {
	tr := NewTriad("rw-")

	tr.SetRead('-')
	assert.Equal(t, "-w-", tr.String())
	assert.Equal(t, uint32(2), tr.Digit())

	tr.SetExecute('x')
	assert.Equal(t, "-wx", tr.String())
	assert.Equal(t, uint32(3), tr.Digit())

	tr.SetWrite('-')
	assert.Equal(t, byte('-'), tr.Write())
	assert.Equal(t, uint32(1), tr.Digit())
	assert.True(t, tr.CanExec())
	assert.False(t, tr.CanRead())
}

func TestTriadSetterAcceptsAnyCharacter(t *testing.T) {
	tr := NewTriad("rwx")
	tr.SetRead('z')
	assert.Equal(t, byte('z'), tr.Read())
	assert.Equal(t, "zwx", tr.String())
	assert.Equal(t, uint32(0), tr.Digit())

	tr.SetRead('r')
	assert.Equal(t, uint32(7), tr.Digit())
}

// ─── Owner ───

func TestOwnerDelegates(t *testing.T) {
	o := NewOwner(Group, NewTriad("r-x"))
	assert.Equal(t, Group, o.Kind())
	assert.Equal(t, byte('r'), o.Read())
	assert.Equal(t, byte('-'), o.Write())
	assert.Equal(t, byte('x'), o.Execute())
	assert.Equal(t, uint32(5), o.Digit())

	o.SetWrite('w')
	assert.Equal(t, "rwx", o.String())
	assert.Equal(t, uint32(7), o.Digit())

	o.SetTriad(NewTriad("--x"))
	assert.Equal(t, Group, o.Kind())
	assert.Equal(t, uint32(1), o.Digit())
	assert.Equal(t, "--x", o.Triad().String())
}

func TestOwnerKindString(t *testing.T) {
	assert.Equal(t, "user", User.String())
	assert.Equal(t, "group", Group.String())
	assert.Equal(t, "other", Other.String())
	assert.Equal(t, "unknown", OwnerKind(9).String())
	assert.Equal(t, [...]OwnerKind{User, Group, Other}, OwnerKinds)
}

// ─── Errors ───

func TestInvalidModeError(t *testing.T) {
	var err error = &InvalidModeError{Octal: "14522125"}
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, "fmode: invalid mode: 14522125 does not decompose to a 6-digit octal representation", err.Error())

	var modeErr *InvalidModeError
	require.True(t, errors.As(err, &modeErr))
	assert.Equal(t, "14522125", modeErr.Octal)
}

func TestErrorsSentinel(t *testing.T) {
	for _, err := range []error{ErrInvalidMode, ErrInvalidFileKind, ErrInvalidTriad, ErrInvalidSymbolic} {
		assert.Contains(t, err.Error(), "fmode: ")
	}
}
