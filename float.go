package lit

import (
	"errors"
	"strconv"
)

// floatParts holds the validated float literal with separators elided, ready
// for conversion, plus the consumed suffix.
type floatParts struct {
	clean  string
	suffix string
	sufOff int
}

// scanFloat validates the float grammar over src: optional sign, integer
// part, optional fraction, optional exponent, optional suffix. At least one
// of integer part or fraction must carry a digit.
func scanFloat(src *source) (floatParts, *DecodeError) {
	var (
		parts floatParts
		clean []byte
	)

	r := src.get()

	if r == '+' || r == '-' {
		clean = append(clean, byte(r))
		r = src.get()
	}

	var err *DecodeError

	sawInt := false
	r, clean, sawInt, err = scanDigitRun(src, r, clean)

	if err != nil {
		return parts, err
	}

	sawFrac := false

	if r == '.' {
		clean = append(clean, '.')

		r, clean, sawFrac, err = scanDigitRun(src, src.get(), clean)

		if err != nil {
			return parts, err
		}
	}

	if !sawInt && !sawFrac {
		return parts, errAt(MalformedFloat, src.pos())
	}

	if r == 'e' || r == 'E' {
		clean = append(clean, byte(r))

		r = src.get()

		if r == '+' || r == '-' {
			clean = append(clean, byte(r))
			r = src.get()
		}

		sawExp := false
		r, clean, sawExp, err = scanDigitRun(src, r, clean)

		if err != nil {
			return parts, err
		}

		if !sawExp {
			return parts, errAt(MalformedFloat, src.pos())
		}
	}

	if r != -1 {
		if !isSuffixStart(r) {
			if r == '.' {
				return parts, errAt(MalformedFloat, src.pos())
			}
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

	parts.clean = string(clean)
	return parts, nil
}

// scanDigitRun consumes one run of decimal digits with separators elided,
// starting at r. It returns the first rune past the run.
func scanDigitRun(src *source, r rune, clean []byte) (rune, []byte, bool, *DecodeError) {
	var (
		sawDigit bool
		lastSep  bool
		sepOff   int
	)

	for r != -1 {
		if isSep(r) {
			if !sawDigit {
				return r, clean, false, errAt(MisplacedSeparator, src.pos())
			}

			lastSep = true
			sepOff = src.pos()

			r = src.get()
			continue
		}

		if !isDigit(r) {
			break
		}

		lastSep = false
		sawDigit = true
		clean = append(clean, byte(r))

		r = src.get()
	}

	if lastSep {
		return r, clean, false, errAt(MisplacedSeparator, sepOff)
	}
	return r, clean, sawDigit, nil
}

// decodeFloat decodes text as a float of the given width. suffix is the one
// type suffix the target accepts, for example "f64". Conversion follows IEEE
// round-to-nearest for the width; a value beyond the width's range saturates
// to an infinity rather than failing, matching ParseFloat.
func decodeFloat(text string, bits int, suffix string) (float64, *DecodeError) {
	parts, err := scanFloat(newSource(text))

	if err != nil {
		return 0, err
	}

	if parts.suffix != "" && parts.suffix != suffix {
		return 0, errAt(UnknownSuffix, parts.sufOff)
	}

	f, perr := strconv.ParseFloat(parts.clean, bits)

	if perr != nil && !errors.Is(perr, strconv.ErrRange) {
		return 0, errAt(MalformedFloat, 0)
	}
	return f, nil
}
