package lit

// decodeChar decodes a character literal: an opening quote, exactly one
// character, direct or escaped, and a closing quote.
func decodeChar(text string) (rune, *DecodeError) {
	src := newSource(text)

	if r := src.get(); r != '\'' {
		return 0, errAt(UnterminatedChar, 0)
	}

	r := src.get()

	switch r {
	case -1:
		return 0, errAt(UnterminatedChar, src.off)
	case '\'':
		return 0, errAt(EmptyChar, src.pos())
	case '\n':
		return 0, errAt(UnterminatedChar, src.pos())
	case '\\':
		var err *DecodeError

		if r, err = resolveEscape(src, charContext); err != nil {
			return 0, err
		}
	}

	switch src.get() {
	case -1:
		return 0, errAt(UnterminatedChar, src.off)
	case '\'':
	default:
		return 0, errAt(MultipleChars, src.pos())
	}

	if !src.eof() {
		return 0, errAt(TrailingText, src.off)
	}
	return r, nil
}
