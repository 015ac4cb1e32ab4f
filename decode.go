package lit

import (
	"errors"
	"math"
	"reflect"
	"strconv"
)

// Char is a decoded character literal. It is a distinct type from rune so
// that a character target selects the character grammar while rune and int32
// take the integer grammar.
type Char rune

// Bytes is a decoded byte string.
type Bytes []byte

// CString is a decoded C string. The terminating zero byte is the consumer's
// concern and is never stored; no stored byte is zero.
type CString []byte

// Target constrains the canonical value kinds Decode can produce.
type Target interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint |
		float32 | float64 |
		Char | string | Bytes | CString
}

// Decode decodes the text of one literal token as the requested target kind.
// The grammar is selected by the instantiated type, so dispatch is fixed at
// compile time. Decoding is all or nothing: on failure the zero value is
// returned along with a *DecodeError.
func Decode[T Target](text string) (T, error) {
	v, err := decode[T](text)

	if err != nil {
		return v, err
	}
	return v, nil
}

func decode[T Target](text string) (T, *DecodeError) {
	var v T
	var err *DecodeError

	switch p := any(&v).(type) {
	case *int8:
		var n int64
		n, err = decodeSigned(text, 8, "i8")
		*p = int8(n)
	case *int16:
		var n int64
		n, err = decodeSigned(text, 16, "i16")
		*p = int16(n)
	case *int32:
		var n int64
		n, err = decodeSigned(text, 32, "i32")
		*p = int32(n)
	case *int64:
		*p, err = decodeSigned(text, 64, "i64")
	case *int:
		var n int64
		n, err = decodeSigned(text, strconv.IntSize, "isize")
		*p = int(n)
	case *uint8:
		var n uint64
		n, err = decodeUnsigned(text, 8, "u8")
		*p = uint8(n)
	case *uint16:
		var n uint64
		n, err = decodeUnsigned(text, 16, "u16")
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = decodeUnsigned(text, 32, "u32")
		*p = uint32(n)
	case *uint64:
		*p, err = decodeUnsigned(text, 64, "u64")
	case *uint:
		var n uint64
		n, err = decodeUnsigned(text, strconv.IntSize, "usize")
		*p = uint(n)
	case *float32:
		var f float64
		f, err = decodeFloat(text, 32, "f32")
		*p = float32(f)
	case *float64:
		*p, err = decodeFloat(text, 64, "f64")
	case *Char:
		var r rune
		r, err = decodeChar(text)
		*p = Char(r)
	case *string:
		*p, err = decodeString(text)
	case *Bytes:
		var b []byte
		b, err = decodeByteString(text)
		*p = b
	case *CString:
		var b []byte
		b, err = decodeCString(text)
		*p = b
	}

	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func decodeSigned(text string, bits int, suffix string) (int64, *DecodeError) {
	mag, neg, err := decodeInt(text, bits, true, suffix)

	if err != nil {
		return 0, err
	}

	if neg {
		return -int64(mag), nil
	}
	return int64(mag), nil
}

func decodeUnsigned(text string, bits int, suffix string) (uint64, *DecodeError) {
	mag, _, err := decodeInt(text, bits, false, suffix)

	if err != nil {
		return 0, err
	}
	return mag, nil
}

// Unmarshaler is implemented by types that build themselves from a decoded
// literal, typically to validate the value before it is used anywhere.
type Unmarshaler interface {
	UnmarshalLit(v Value) error
}

var kindSuffixes = map[reflect.Kind]string{
	reflect.Int8:    "i8",
	reflect.Int16:   "i16",
	reflect.Int32:   "i32",
	reflect.Int64:   "i64",
	reflect.Int:     "isize",
	reflect.Uint8:   "u8",
	reflect.Uint16:  "u16",
	reflect.Uint32:  "u32",
	reflect.Uint64:  "u64",
	reflect.Uint:    "usize",
	reflect.Float32: "f32",
	reflect.Float64: "f64",
}

// Unmarshal decodes text into the value pointed to by v. The literal kind is
// sniffed from the text, then assigned onto v's element if the kinds agree,
// so named types with a supported underlying kind work directly. If v
// implements Unmarshaler it is handed the canonical value instead.
func Unmarshal(text string, v any) error {
	rv := reflect.ValueOf(v)

	if kind := rv.Kind(); kind != reflect.Pointer || rv.IsNil() {
		return errors.New("lit: cannot unmarshal into " + kind.String())
	}

	val, err := Parse(text)

	if err != nil {
		return err
	}

	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalLit(val)
	}
	return assign(rv.Elem(), val)
}

func assign(el reflect.Value, val Value) error {
	kind := el.Kind()

	switch val.Kind {
	case IntLit:
		suffix, ok := kindSuffixes[kind]

		if !ok {
			break
		}

		if val.Suffix != "" && val.Suffix != suffix {
			return errAt(UnknownSuffix, 0)
		}

		switch kind {
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
			if !val.Neg && val.Uint > math.MaxInt64 {
				return errAt(Overflow, 0)
			}

			n := int64(val.Uint)

			if val.Neg {
				n = -n
			}

			if el.OverflowInt(n) {
				return errAt(Overflow, 0)
			}
			el.SetInt(n)
			return nil
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
			if val.Neg && val.Uint > 0 {
				return errAt(Overflow, 0)
			}

			if el.OverflowUint(val.Uint) {
				return errAt(Overflow, 0)
			}
			el.SetUint(val.Uint)
			return nil
		}
	case FloatLit:
		if kind == reflect.Float32 || kind == reflect.Float64 {
			if val.Suffix != "" && val.Suffix != kindSuffixes[kind] {
				return errAt(UnknownSuffix, 0)
			}
			el.SetFloat(val.Float)
			return nil
		}
	case CharLit:
		if kind == reflect.Int32 {
			el.SetInt(int64(val.Rune))
			return nil
		}
	case StringLit:
		if kind == reflect.String {
			el.SetString(val.Str)
			return nil
		}
	case ByteStringLit, CStringLit:
		if kind == reflect.Slice && el.Type().Elem().Kind() == reflect.Uint8 {
			el.SetBytes(val.Bytes)
			return nil
		}
	}
	return errors.New("lit: cannot use " + val.Kind.String() + " as " + el.Type().String())
}

// Integer constrains NonZero to the integer kinds.
type Integer interface {
	int8 | int16 | int32 | int64 | int |
		uint8 | uint16 | uint32 | uint64 | uint
}

// NonZero is an integer whose literal form must not be zero. It decodes via
// Unmarshal and rejects a zero literal before the value is built.
type NonZero[T Integer] struct {
	val T
}

// Get returns the decoded integer.
func (n NonZero[T]) Get() T {
	return n.val
}

func (n *NonZero[T]) UnmarshalLit(v Value) error {
	if v.Kind != IntLit {
		return errors.New("lit: cannot use " + v.Kind.String() + " as nonzero integer")
	}

	if v.Uint == 0 {
		return errors.New("lit: nonzero integer literal is zero")
	}
	return assign(reflect.ValueOf(&n.val).Elem(), v)
}
