package types

// Triad holds the read, write and execute characters of one owner category.
//
// Setters store whatever character they are given. A triad that no longer
// spells one of the eight canonical strings reports digit 0.
type Triad struct {
	read    byte
	write   byte
	execute byte
	digit   uint32
}

// NewTriad builds a Triad from a three character string such as "rw-".
// Characters missing past the end of s default to '-'.
func NewTriad(s string) Triad {
	t := Triad{read: '-', write: '-', execute: '-'}
	if len(s) > 0 {
		t.read = s[0]
	}
	if len(s) > 1 {
		t.write = s[1]
	}
	if len(s) > 2 {
		t.execute = s[2]
	}
	t.resetDigit()
	return t
}

// TriadFromDigit returns the triad for an octal digit in 0..7.
func TriadFromDigit(d uint32) Triad {
	return NewTriad(DigitToTriad(string(rune('0' + d%8))))
}

func (t *Triad) resetDigit() {
	t.digit = uint32(TriadToDigit(t.String())[0] - '0')
}

func (t Triad) Read() byte    { return t.read }
func (t Triad) Write() byte   { return t.write }
func (t Triad) Execute() byte { return t.execute }

func (t *Triad) SetRead(c byte) {
	t.read = c
	t.resetDigit()
}

func (t *Triad) SetWrite(c byte) {
	t.write = c
	t.resetDigit()
}

func (t *Triad) SetExecute(c byte) {
	t.execute = c
	t.resetDigit()
}

// Digit returns the octal digit (0..7) of the triad.
func (t Triad) Digit() uint32 { return t.digit }

func (t Triad) CanRead() bool  { return t.read == 'r' }
func (t Triad) CanWrite() bool { return t.write == 'w' }
func (t Triad) CanExec() bool  { return t.execute == 'x' }

func (t Triad) String() string {
	return string([]byte{t.read, t.write, t.execute})
}
