// Package keypad maps a QWERTY keyboard onto the CHIP-8 hex keypad.
//
//	+--------+--------+--------+--------+
//	| 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
//	+--------+--------+--------+--------+
//	| Q -> 4 | W -> 5 | E -> 6 | R -> D |
//	+--------+--------+--------+--------+
//	| A -> 7 | S -> 8 | D -> 9 | F -> E |
//	+--------+--------+--------+--------+
//	| Z -> A | X -> 0 | C -> B | V -> F |
//	+--------+--------+--------+--------+
package keypad

// layout lists the keyboard characters in keypad order, 0x0 through 0xF
var layout = [16]rune{
	'x', '1', '2', '3',
	'q', 'w', 'e', 'a',
	's', 'd', 'z', 'c',
	'4', 'r', 'f', 'v',
}

// FromRune returns the keypad code for a keyboard character. Upper case
// letters map like their lower case forms.
func FromRune(r rune) (uint8, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	for code, k := range layout {
		if k == r {
			return uint8(code), true
		}
	}
	return 0, false
}

// Rune returns the keyboard character of a keypad code
func Rune(code uint8) rune {
	return layout[code&0xF]
}
