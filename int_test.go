package lit

import (
	"errors"
	"testing"
)

func checkFail(t *testing.T, text string, err error, kind ErrorKind) {
	t.Helper()

	if err == nil {
		t.Errorf("%q - expected %q failure, got none\n", text, kind)
		return
	}

	var derr *DecodeError

	if !errors.As(err, &derr) {
		t.Errorf("%q - unexpected error type, expected=%T, got=%T\n", text, derr, err)
		return
	}

	if derr.Kind != kind {
		t.Errorf("%q - unexpected failure kind, expected=%q, got=%q\n", text, kind, derr.Kind)
	}
}

func Test_DecodeUint8(t *testing.T) {
	tests := []struct {
		text string
		val  uint8
	}{
		{"0", 0},
		{"255", 255},
		{"0xFF", 255},
		{"0xff", 255},
		{"0o17", 15},
		{"0b1_0_1", 5},
		{"1_2_3", 123},
		{"+7", 7},
		{"-0", 0},
		{"255u8", 255},
	}

	for _, test := range tests {
		v, err := Decode[uint8](test.text)

		if err != nil {
			t.Errorf("%q - unexpected error, %s\n", test.text, err)
			continue
		}

		if v != test.val {
			t.Errorf("%q - unexpected value, expected=%d, got=%d\n", test.text, test.val, v)
		}
	}
}

func Test_DecodeInt64(t *testing.T) {
	tests := []struct {
		text string
		val  int64
	}{
		{"-9223372036854775808", -9223372036854775808},
		{"9223372036854775807", 9223372036854775807},
		{"-0x80", -128},
		{"1_000_000", 1000000},
		{"-42i64", -42},
	}

	for _, test := range tests {
		v, err := Decode[int64](test.text)

		if err != nil {
			t.Errorf("%q - unexpected error, %s\n", test.text, err)
			continue
		}

		if v != test.val {
			t.Errorf("%q - unexpected value, expected=%d, got=%d\n", test.text, test.val, v)
		}
	}
}

func Test_DecodeUint8Failures(t *testing.T) {
	tests := []struct {
		text string
		kind ErrorKind
	}{
		{"", EmptyDigits},
		{"0x", EmptyDigits},
		{"-", EmptyDigits},
		{"0b102", InvalidDigitForRadix},
		{"0o8", InvalidDigitForRadix},
		{"0b11ycm", UnknownSuffix},
		{"256", Overflow},
		{"-1", Overflow},
		{"18446744073709551616", Overflow},
		{"1_", MisplacedSeparator},
		{"_1", MisplacedSeparator},
		{"0x_1", MisplacedSeparator},
		{"1_u8", MisplacedSeparator},
		{"255u16", UnknownSuffix},
		{"255i8", UnknownSuffix},
		{"1q", UnknownSuffix},
		{"12 ", TrailingText},
	}

	for _, test := range tests {
		_, err := Decode[uint8](test.text)
		checkFail(t, test.text, err, test.kind)
	}
}

func Test_DecodeInt8Failures(t *testing.T) {
	tests := []struct {
		text string
		kind ErrorKind
	}{
		{"128", Overflow},
		{"-129", Overflow},
		{"0x80", Overflow},
		{"127u8", UnknownSuffix},
	}

	for _, test := range tests {
		_, err := Decode[int8](test.text)
		checkFail(t, test.text, err, test.kind)
	}
}

func Test_DecodeIntBoundaries(t *testing.T) {
	if v, err := Decode[int8]("-128"); err != nil || v != -128 {
		t.Errorf("unexpected result, expected=-128, got=%d (%v)\n", v, err)
	}

	if v, err := Decode[uint64]("18446744073709551615"); err != nil || v != 18446744073709551615 {
		t.Errorf("unexpected result, expected=18446744073709551615, got=%d (%v)\n", v, err)
	}

	if v, err := Decode[int]("-42isize"); err != nil || v != -42 {
		t.Errorf("unexpected result, expected=-42, got=%d (%v)\n", v, err)
	}

	if v, err := Decode[uint]("42usize"); err != nil || v != 42 {
		t.Errorf("unexpected result, expected=42, got=%d (%v)\n", v, err)
	}
}
