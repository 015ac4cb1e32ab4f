package lit

import (
	"strconv"
	"strings"
)

// Value is a decoded canonical value: the literal kind plus its payload.
// Escape syntax never survives into a Value. Integer payloads are carried as
// a sign and magnitude so the full unsigned and signed 64-bit ranges are
// representable.
type Value struct {
	Kind Kind

	Neg    bool    // IntLit sign
	Uint   uint64  // IntLit magnitude
	Float  float64 // FloatLit
	Rune   rune    // CharLit
	Str    string  // StringLit
	Bytes  []byte  // ByteStringLit, CStringLit
	Suffix string  // IntLit, FloatLit type suffix, if any
}

var intSuffixes = map[string]struct {
	bits   int
	signed bool
}{
	"u8":    {8, false},
	"u16":   {16, false},
	"u32":   {32, false},
	"u64":   {64, false},
	"usize": {strconv.IntSize, false},
	"i8":    {8, true},
	"i16":   {16, true},
	"i32":   {32, true},
	"i64":   {64, true},
	"isize": {strconv.IntSize, true},
}

// Parse decodes text into a canonical value, selecting the grammar from the
// literal's leading characters the way a tokenizer front end would: quote
// kind, b/c/r prefixes, otherwise numeric.
func Parse(text string) (Value, error) {
	var v Value

	switch {
	case text == "":
		return v, errAt(EmptyDigits, 0)
	case text[0] == '\'':
		r, err := decodeChar(text)

		if err != nil {
			return v, err
		}
		v.Kind = CharLit
		v.Rune = r
	case text[0] == '"', strings.HasPrefix(text, "r\""), strings.HasPrefix(text, "r#"):
		s, err := decodeString(text)

		if err != nil {
			return v, err
		}
		v.Kind = StringLit
		v.Str = s
	case text[0] == 'b':
		b, err := decodeByteString(text)

		if err != nil {
			return v, err
		}
		v.Kind = ByteStringLit
		v.Bytes = b
	case text[0] == 'c':
		b, err := decodeCString(text)

		if err != nil {
			return v, err
		}
		v.Kind = CStringLit
		v.Bytes = b
	case isFloatText(text):
		return parseFloatValue(text)
	default:
		return parseIntValue(text)
	}
	return v, nil
}

func parseIntValue(text string) (Value, error) {
	var v Value

	parts, err := scanInt(newSource(text))

	if err != nil {
		return v, err
	}

	bits, signed := 64, parts.neg

	if parts.suffix != "" {
		s, ok := intSuffixes[parts.suffix]

		if !ok {
			return v, errAt(UnknownSuffix, parts.sufOff)
		}
		bits, signed = s.bits, s.signed
	}

	if _, _, err := decodeInt(text, bits, signed, parts.suffix); err != nil {
		return v, err
	}

	v.Kind = IntLit
	v.Neg = parts.neg
	v.Uint = parts.val
	v.Suffix = parts.suffix
	return v, nil
}

func parseFloatValue(text string) (Value, error) {
	var v Value

	parts, err := scanFloat(newSource(text))

	if err != nil {
		return v, err
	}

	bits := 64

	switch parts.suffix {
	case "", "f64":
	case "f32":
		bits = 32
	default:
		return v, errAt(UnknownSuffix, parts.sufOff)
	}

	f, derr := decodeFloat(text, bits, parts.suffix)

	if derr != nil {
		return v, derr
	}

	v.Kind = FloatLit
	v.Float = f
	v.Suffix = parts.suffix
	return v, nil
}

// isFloatText reports whether a numeric literal should take the float
// grammar: a decimal point, an exponent, or a float suffix. Radix-prefixed
// literals are always integers.
func isFloatText(text string) bool {
	i := 0

	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}

	if strings.HasPrefix(text[i:], "0x") || strings.HasPrefix(text[i:], "0o") || strings.HasPrefix(text[i:], "0b") {
		return false
	}

	for i < len(text) {
		b := text[i]

		if b >= '0' && b <= '9' || b == '_' {
			i++
			continue
		}

		switch {
		case b == '.':
			return true
		case b == 'e' || b == 'E':
			j := i + 1

			if j < len(text) && (text[j] == '+' || text[j] == '-') {
				j++
			}
			return j < len(text) && text[j] >= '0' && text[j] <= '9'
		default:
			return text[i:] == "f32" || text[i:] == "f64"
		}
	}
	return false
}

// Seq lifts the value's underlying sequence into an interned Seq: the digits
// of an integer, the single character of a char, the characters of a string,
// or the bytes of a byte or C string. Floats have no sequence form.
func (v Value) Seq() (*Seq, bool) {
	switch v.Kind {
	case IntLit:
		return SeqOfDigits(v.Uint, 10), true
	case CharLit:
		return SeqOfString(string(v.Rune)), true
	case StringLit:
		return SeqOfString(v.Str), true
	case ByteStringLit, CStringLit:
		return SeqOfBytes(v.Bytes), true
	}
	return nil, false
}

// Interface returns the payload as the natural Go value for the kind.
func (v Value) Interface() any {
	switch v.Kind {
	case IntLit:
		if v.Neg {
			return -int64(v.Uint)
		}
		return v.Uint
	case FloatLit:
		return v.Float
	case CharLit:
		return v.Rune
	case StringLit:
		return v.Str
	case ByteStringLit, CStringLit:
		return v.Bytes
	}
	return nil
}

// String renders the payload in a display form with all escapes resolved.
func (v Value) String() string {
	switch v.Kind {
	case IntLit:
		if v.Neg {
			return "-" + strconv.FormatUint(v.Uint, 10)
		}
		return strconv.FormatUint(v.Uint, 10)
	case FloatLit:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case CharLit:
		return strconv.QuoteRune(v.Rune)
	case StringLit:
		return strconv.Quote(v.Str)
	case ByteStringLit, CStringLit:
		return strconv.Quote(string(v.Bytes))
	}
	return "<invalid>"
}
