package types

// File kind symbols as they appear in the first column of ls -l output.
const (
	KindRegular  byte = '-'
	KindDir      byte = 'd'
	KindSymlink  byte = 'l'
	KindCharDev  byte = 'c'
	KindBlockDev byte = 'b'
	KindFIFO     byte = 'p'
	KindSocket   byte = 's'
)

const (
	defaultKindCode = "100"
	defaultTriad    = "---"
	defaultDigit    = "0"
)

// Lookups are exact-match on the whole string. A triad such as "rrr" must fall
// back to "---" rather than to a bitwise OR of the letters that happen to match.
var (
	kindCodeToSymbol = map[string]byte{
		"100": KindRegular,
		"120": KindSymlink,
		"020": KindCharDev,
		"060": KindBlockDev,
		"010": KindFIFO,
		"140": KindSocket,
		"040": KindDir,
	}
	kindSymbolToCode = map[byte]string{
		KindRegular:  "100",
		KindSymlink:  "120",
		KindCharDev:  "020",
		KindBlockDev: "060",
		KindFIFO:     "010",
		KindSocket:   "140",
		KindDir:      "040",
	}
	digitToTriad = map[string]string{
		"0": "---",
		"1": "--x",
		"2": "-w-",
		"3": "-wx",
		"4": "r--",
		"5": "r-x",
		"6": "rw-",
		"7": "rwx",
	}
	triadToDigit = map[string]string{
		"---": "0",
		"--x": "1",
		"-w-": "2",
		"-wx": "3",
		"r--": "4",
		"r-x": "5",
		"rw-": "6",
		"rwx": "7",
	}
)

// FileKindSymbol maps a 3-digit octal file kind code to its symbol.
// Unknown codes are reported as a regular file.
func FileKindSymbol(code string) byte {
	if s, ok := kindCodeToSymbol[code]; ok {
		return s
	}
	return KindRegular
}

// FileKindCode maps a file kind symbol to its 3-digit octal code.
// Unknown symbols map to "100".
func FileKindCode(symbol byte) string {
	if c, ok := kindSymbolToCode[symbol]; ok {
		return c
	}
	return defaultKindCode
}

// IsFileKind reports whether symbol is one of "-dlcbps".
func IsFileKind(symbol byte) bool {
	_, ok := kindSymbolToCode[symbol]
	return ok
}

// DigitToTriad maps a single octal digit ("0".."7") to its rwx triad.
func DigitToTriad(digit string) string {
	if t, ok := digitToTriad[digit]; ok {
		return t
	}
	return defaultTriad
}

// TriadToDigit maps an rwx triad to its single octal digit.
func TriadToDigit(triad string) string {
	if d, ok := triadToDigit[triad]; ok {
		return d
	}
	return defaultDigit
}
