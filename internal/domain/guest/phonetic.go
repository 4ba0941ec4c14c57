package guest

import "strings"

// Metaphone returns a coarse sound-alike code for a single name token.
// Only ASCII letters contribute; everything else is skipped.
func Metaphone(word string) string {
	letters := make([]byte, 0, len(word))
	for _, r := range strings.ToUpper(word) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, byte(r))
		}
	}

	n := len(letters)
	if n == 0 {
		return ""
	}

	at := func(i int) byte {
		if i < 0 || i >= n {
			return 0
		}
		return letters[i]
	}

	var code strings.Builder
	i := 0

	switch first, next := at(0), at(1); first {
	case 'A':
		if next == 'E' {
			code.WriteByte('E')
			i = 2
		} else {
			code.WriteByte('A')
			i = 1
		}
	case 'G', 'K', 'P':
		if next == 'N' {
			code.WriteByte('N')
			i = 2
		}
	case 'W':
		if next == 'R' {
			code.WriteByte('R')
			i = 2
		} else if next == 'H' || isVowel(next) {
			code.WriteByte('W')
			i = 2
		}
	case 'X':
		code.WriteByte('S')
		i = 1
	case 'E', 'I', 'O', 'U':
		code.WriteByte(first)
		i = 1
	}

	for ; i < n; i++ {
		c, prev, next, after := at(i), at(i-1), at(i+1), at(i+2)

		if c == prev && c != 'C' {
			continue
		}

		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			if i == 0 {
				code.WriteByte(c)
			}
		case 'B':
			if !(prev == 'M' && next == 0) {
				code.WriteByte('B')
			}
		case 'C':
			switch {
			case isSoftener(next):
				if next == 'I' && after == 'A' {
					code.WriteByte('X')
				} else if prev != 'S' {
					code.WriteByte('S')
				}
			case next == 'H':
				if after == 'R' || prev == 'S' {
					code.WriteByte('K')
				} else {
					code.WriteByte('X')
				}
				i++
			default:
				code.WriteByte('K')
			}
		case 'D':
			if next == 'G' && isSoftener(after) {
				code.WriteByte('J')
				i++
			} else {
				code.WriteByte('T')
			}
		case 'G':
			switch {
			case next == 'H':
				// "GH" codes as F ("hugh", "knight") unless a B, D or H sits three
				// letters back ("dwight", "haugh") or an H four back.
				if !silencesGH(at(i-3)) && at(i-4) != 'H' {
					code.WriteByte('F')
					i++
				}
			case next == 'N':
				if !(after == 0 || (after == 'E' && at(i+3) == 'D')) {
					code.WriteByte('K')
				}
			case isSoftener(next) && prev != 'G':
				code.WriteByte('J')
			default:
				code.WriteByte('K')
			}
		case 'H':
			if isVowel(next) && !silencesH(prev) {
				code.WriteByte('H')
			}
		case 'K':
			if prev != 'C' {
				code.WriteByte('K')
			}
		case 'P':
			if next == 'H' {
				code.WriteByte('F')
			} else {
				code.WriteByte('P')
			}
		case 'Q':
			code.WriteByte('K')
		case 'S':
			switch {
			case next == 'I' && (after == 'O' || after == 'A'):
				code.WriteByte('X')
			case next == 'H':
				code.WriteByte('X')
				i++
			case next == 'C' && after == 'H' && at(i+3) == 'W':
				code.WriteByte('X')
				i += 2
			default:
				code.WriteByte('S')
			}
		case 'T':
			switch {
			case next == 'I' && (after == 'O' || after == 'A'):
				code.WriteByte('X')
			case next == 'H':
				code.WriteByte('0')
				i++
			case !(next == 'C' && after == 'H'):
				code.WriteByte('T')
			}
		case 'V':
			code.WriteByte('F')
		case 'W', 'Y':
			if isVowel(next) {
				code.WriteByte(c)
			}
		case 'X':
			code.WriteString("KS")
		case 'Z':
			code.WriteByte('S')
		default: // F J L M N R
			code.WriteByte(c)
		}
	}

	return code.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isSoftener(c byte) bool {
	return c == 'E' || c == 'I' || c == 'Y'
}

func silencesGH(c byte) bool {
	return c == 'B' || c == 'D' || c == 'H'
}

func silencesH(c byte) bool {
	switch c {
	case 'C', 'G', 'P', 'S', 'T':
		return true
	}
	return false
}
