package lit

import "math"

// intParts is the raw outcome of the integer grammar before any width or
// signedness check is applied: sign, magnitude, and the consumed suffix.
type intParts struct {
	neg      bool
	val      uint64
	overflow bool
	suffix   string
	sufOff   int
}

// scanInt runs the integer grammar over src: optional sign, optional radix
// prefix, one or more digits with separators elided, optional type suffix.
// The magnitude is accumulated into a uint64; anything larger is recorded as
// an overflow and reported once the caller's target width is known.
func scanInt(src *source) (intParts, *DecodeError) {
	var parts intParts

	r := src.get()

	if r == '+' || r == '-' {
		parts.neg = r == '-'
		r = src.get()
	}

	base := 10

	if r == '0' {
		switch src.get() {
		case 'x':
			base = 16
			r = src.get()
		case 'o':
			base = 8
			r = src.get()
		case 'b':
			base = 2
			r = src.get()
		default:
			src.unget()
		}
	}

	var (
		sawDigit bool
		lastSep  bool
		sepOff   int
	)

	for r != -1 {
		if isSep(r) {
			if !sawDigit {
				return parts, errAt(MisplacedSeparator, src.pos())
			}

			lastSep = true
			sepOff = src.pos()

			r = src.get()
			continue
		}

		d, ok := digitVal(r, base)

		if !ok {
			if isDigit(r) {
				return parts, errAt(InvalidDigitForRadix, src.pos())
			}
			src.unget()
			break
		}

		lastSep = false
		sawDigit = true

		if parts.val > (math.MaxUint64-uint64(d))/uint64(base) {
			parts.overflow = true
		}
		parts.val = parts.val*uint64(base) + uint64(d)

		r = src.get()
	}

	if lastSep {
		return parts, errAt(MisplacedSeparator, sepOff)
	}

	if !sawDigit {
		return parts, errAt(EmptyDigits, src.off)
	}

	if r = src.get(); r != -1 {
		if !isSuffixStart(r) {
			return parts, errAt(TrailingText, src.pos())
		}

		parts.sufOff = src.pos()

		for isLetter(r) || isDigit(r) {
			r = src.get()
		}
		src.unget()

		parts.suffix = src.text[parts.sufOff:src.off]
	}

	if !src.eof() {
		return parts, errAt(TrailingText, src.off)
	}
	return parts, nil
}

// decodeInt decodes text as an integer of the given width and signedness.
// suffix is the one type suffix the target accepts, for example "u8"; a
// literal carrying any other suffix is rejected.
func decodeInt(text string, bits int, signed bool, suffix string) (uint64, bool, *DecodeError) {
	parts, err := scanInt(newSource(text))

	if err != nil {
		return 0, false, err
	}

	if parts.suffix != "" && parts.suffix != suffix {
		return 0, false, errAt(UnknownSuffix, parts.sufOff)
	}

	if parts.overflow {
		return 0, false, errAt(Overflow, 0)
	}

	max := uint64(math.MaxUint64) >> (64 - bits)

	if signed {
		max >>= 1

		if parts.neg {
			max++
		}
	} else if parts.neg && parts.val > 0 {
		return 0, false, errAt(Overflow, 0)
	}

	if parts.val > max {
		return 0, false, errAt(Overflow, 0)
	}
	return parts.val, parts.neg, nil
}
