package lit

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSep(r rune) bool {
	return r == '_'
}

// digitVal reports the numeric value of r in the given base (2, 8, 10 or 16)
// and whether r is a valid digit in that base. Unrecognized runes simply
// classify as not-a-digit.
func digitVal(r rune, base int) (int, bool) {
	var v int

	switch {
	case '0' <= r && r <= '9':
		v = int(r - '0')
	case 'a' <= r && r <= 'f':
		v = int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		v = int(r-'A') + 10
	default:
		return 0, false
	}

	if v >= base {
		return 0, false
	}
	return v, true
}

// isSuffixStart reports whether r can begin a type suffix. Suffixes follow
// identifier rules, so a digit can continue one but never start one, and a
// leading underscore is always a separator, never a suffix.
func isSuffixStart(r rune) bool {
	return isLetter(r)
}
