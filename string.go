package lit

// decodeString decodes a string literal. Both the cooked form "..." and the
// raw forms r"..." and r#"..."# are accepted; raw strings resolve no escapes
// and end only at a quote followed by the matching number of hashes.
func decodeString(text string) (string, *DecodeError) {
	src := newSource(text)

	rr, err := decodeQuoted(src, charContext, false)

	if err != nil {
		return "", err
	}
	return string(rr), nil
}

// decodeByteString decodes a byte string literal, b"..." or br"...". Every
// element must resolve to a value in 0-255; a direct character above 0xFF is
// a ByteOutOfRange failure, distinct from the Unicode escape case.
func decodeByteString(text string) ([]byte, *DecodeError) {
	src := newSource(text)

	// The b prefix is the front end's spelling of the kind; when the caller
	// asks for a byte string directly the bare quoted form is accepted too.
	if src.get() != 'b' {
		src.unget()
	}
	return decodeQuotedBytes(src, false)
}

// decodeCString decodes a C string literal, c"..." or cr"...". A resolved
// zero byte anywhere in the value is an EmbeddedNul failure; the terminating
// zero byte is the consumer's concern and is never stored.
func decodeCString(text string) ([]byte, *DecodeError) {
	src := newSource(text)

	if src.get() != 'c' {
		src.unget()
	}
	return decodeQuotedBytes(src, true)
}

func decodeQuotedBytes(src *source, nonul bool) ([]byte, *DecodeError) {
	rr, err := decodeQuoted(src, byteContext, nonul)

	if err != nil {
		return nil, err
	}

	b := make([]byte, len(rr))

	for i, r := range rr {
		b[i] = byte(r)
	}
	return b, nil
}

// decodeQuoted runs the shared quoted grammar once any kind prefix has been
// consumed: optional r and hash delimiters, opening quote, elements, closing
// quote, end of text.
func decodeQuoted(src *source, ctx escapeContext, nonul bool) ([]rune, *DecodeError) {
	r := src.get()

	raw := r == 'r'

	if raw {
		r = src.get()
	}

	hashes := 0

	for raw && r == '#' {
		hashes++
		r = src.get()
	}

	if r != '"' {
		return nil, errAt(UnterminatedString, 0)
	}

	var rr []rune

	for {
		off := src.off

		r = src.get()

		if r == -1 {
			return nil, errAt(UnterminatedString, src.off)
		}

		if r == '"' {
			if !raw || matchHashes(src, hashes) {
				break
			}

			rr = append(rr, r)
			continue
		}

		if !raw && r == '\\' {
			var err *DecodeError

			if r, err = resolveEscape(src, ctx); err != nil {
				return nil, err
			}
		}

		if ctx == byteContext && r > 0xFF {
			return nil, errAt(ByteOutOfRange, off)
		}

		if nonul && r == 0 {
			return nil, errAt(EmbeddedNul, off)
		}
		rr = append(rr, r)
	}

	if !src.eof() {
		return nil, errAt(TrailingText, src.off)
	}
	return rr, nil
}

// matchHashes consumes n hashes after a quote if they are all present,
// reporting whether the quote closes the raw literal.
func matchHashes(src *source, n int) bool {
	if len(src.text)-src.off < n {
		return false
	}

	for i := 0; i < n; i++ {
		if src.text[src.off+i] != '#' {
			return false
		}
	}

	src.off += n
	src.w = 0
	return true
}
