package lit

// escapeContext selects the range checks applied to a resolved escape. A
// character context must produce a Unicode scalar value, a byte context must
// produce a value in 0-255.
type escapeContext uint

const (
	charContext escapeContext = iota
	byteContext
)

const maxScalar = 0x10FFFF

func isSurrogate(r rune) bool {
	return 0xD800 <= r && r <= 0xDFFF
}

// resolveEscape consumes one escape sequence from src, which must be
// positioned immediately after the backslash, and returns the resolved
// character or byte value. Failures carry the offset of the backslash.
func resolveEscape(src *source, ctx escapeContext) (rune, *DecodeError) {
	off := src.pos()

	r := src.get()

	switch r {
	case -1:
		return 0, errAt(TruncatedEscape, off)
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '0':
		return 0, nil
	case '\\', '\'', '"':
		return r, nil
	case 'x':
		return resolveHexEscape(src, ctx, off)
	case 'u':
		return resolveUnicodeEscape(src, ctx, off)
	}
	return 0, errAt(InvalidEscape, off)
}

// resolveHexEscape consumes the two hex digits of a \xNN escape. In a
// character context the value is capped at 0x7F; anything higher is not a
// single character but a byte, which only byte contexts accept.
func resolveHexEscape(src *source, ctx escapeContext, off int) (rune, *DecodeError) {
	var v rune

	for i := 0; i < 2; i++ {
		r := src.get()

		if r == -1 {
			return 0, errAt(TruncatedEscape, off)
		}

		d, ok := digitVal(r, 16)

		if !ok {
			return 0, errAt(InvalidEscape, off)
		}
		v = v<<4 | rune(d)
	}

	if ctx == charContext && v > 0x7F {
		return 0, errAt(EscapeOutOfRange, off)
	}
	return v, nil
}

// resolveUnicodeEscape consumes the brace-delimited 1-6 hex digits of a
// \u{NNNNNN} escape.
func resolveUnicodeEscape(src *source, ctx escapeContext, off int) (rune, *DecodeError) {
	if r := src.get(); r != '{' {
		if r == -1 {
			return 0, errAt(TruncatedEscape, off)
		}
		return 0, errAt(InvalidEscape, off)
	}

	var (
		v      rune
		digits int
	)

	for {
		r := src.get()

		if r == -1 {
			return 0, errAt(TruncatedEscape, off)
		}
		if r == '}' {
			break
		}

		d, ok := digitVal(r, 16)

		if !ok {
			return 0, errAt(InvalidEscape, off)
		}

		digits++

		if digits > 6 {
			return 0, errAt(EscapeOutOfRange, off)
		}
		v = v<<4 | rune(d)
	}

	if digits == 0 {
		return 0, errAt(InvalidEscape, off)
	}

	if ctx == byteContext {
		if v > 0xFF {
			return 0, errAt(EscapeOutOfRange, off)
		}
		return v, nil
	}

	if v > maxScalar || isSurrogate(v) {
		return 0, errAt(EscapeOutOfRange, off)
	}
	return v, nil
}
