package lit

import (
	"errors"
	"testing"
)

// Greeting mirrors the kind of datatype a caller builds from a validated
// string literal.
type Greeting string

func (g *Greeting) UnmarshalLit(v Value) error {
	if v.Kind != StringLit {
		return errors.New("greeting: want a string literal")
	}

	switch v.Str {
	case "hello", "goodbye":
		*g = Greeting(v.Str)
		return nil
	}
	return errors.New("greeting: invalid greeting " + v.Str)
}

func Test_Unmarshal(t *testing.T) {
	var u8 uint8

	if err := Unmarshal("0xFF", &u8); err != nil {
		t.Fatal(err)
	}

	if u8 != 255 {
		t.Errorf("unexpected value, expected=255, got=%d\n", u8)
	}

	var f float64

	if err := Unmarshal("1.5e10", &f); err != nil {
		t.Fatal(err)
	}

	if f != 1.5e10 {
		t.Errorf("unexpected value, expected=%g, got=%g\n", 1.5e10, f)
	}

	var r rune

	if err := Unmarshal(`'\n'`, &r); err != nil {
		t.Fatal(err)
	}

	if r != '\n' {
		t.Errorf("unexpected value, expected=%q, got=%q\n", '\n', r)
	}

	type name string

	var n name

	if err := Unmarshal(`"vesta"`, &n); err != nil {
		t.Fatal(err)
	}

	if n != "vesta" {
		t.Errorf("unexpected value, expected=%q, got=%q\n", "vesta", n)
	}

	var b []byte

	if err := Unmarshal(`b"\xFF"`, &b); err != nil {
		t.Fatal(err)
	}

	if len(b) != 1 || b[0] != 0xFF {
		t.Errorf("unexpected value, expected=[255], got=%v\n", b)
	}
}

func Test_UnmarshalSuffix(t *testing.T) {
	var u8 uint8

	if err := Unmarshal("200u8", &u8); err != nil {
		t.Fatal(err)
	}

	var u16 uint16

	checkFail(t, "200u8", Unmarshal("200u8", &u16), UnknownSuffix)

	var f32 float32

	if err := Unmarshal("2.5f32", &f32); err != nil {
		t.Fatal(err)
	}
	checkFail(t, "2.5f64", Unmarshal("2.5f64", &f32), UnknownSuffix)
}

func Test_UnmarshalFailures(t *testing.T) {
	var u8 uint8

	checkFail(t, "256", Unmarshal("256", &u8), Overflow)
	checkFail(t, "-1", Unmarshal("-1", &u8), Overflow)

	var i8 int8

	checkFail(t, "128", Unmarshal("128", &i8), Overflow)

	if err := Unmarshal("1", 0); err == nil {
		t.Errorf("expected error unmarshalling into non-pointer\n")
	}

	var s string

	if err := Unmarshal("42", &s); err == nil {
		t.Errorf("expected error unmarshalling int literal into string\n")
	}
}

func Test_UnmarshalGreeting(t *testing.T) {
	var g Greeting

	if err := Unmarshal(`"hello"`, &g); err != nil {
		t.Fatal(err)
	}

	if g != "hello" {
		t.Errorf("unexpected value, expected=%q, got=%q\n", "hello", g)
	}

	if err := Unmarshal(`"howdy"`, &g); err == nil {
		t.Errorf("expected error for invalid greeting\n")
	}
}

func Test_NonZero(t *testing.T) {
	var n NonZero[uint8]

	if err := Unmarshal("10", &n); err != nil {
		t.Fatal(err)
	}

	if n.Get() != 10 {
		t.Errorf("unexpected value, expected=10, got=%d\n", n.Get())
	}

	if err := Unmarshal("0", &n); err == nil {
		t.Errorf("expected error for zero literal\n")
	}

	var i NonZero[int8]

	if err := Unmarshal("-42", &i); err != nil {
		t.Fatal(err)
	}

	if i.Get() != -42 {
		t.Errorf("unexpected value, expected=-42, got=%d\n", i.Get())
	}
	checkFail(t, "-129", Unmarshal("-129", &i), Overflow)
}

func Test_ErrorsIs(t *testing.T) {
	_, err := Decode[uint8]("256")

	if !errors.Is(err, &DecodeError{Kind: Overflow}) {
		t.Errorf("expected error to match on kind\n")
	}

	var derr *DecodeError

	if !errors.As(err, &derr) {
		t.Fatalf("unexpected error type, expected=%T, got=%T\n", derr, err)
	}

	if derr.Error() != "lit: overflow at offset 0" {
		t.Errorf("unexpected error string, got=%q\n", derr.Error())
	}
}

func Test_Parse(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
	}{
		{"42", IntLit},
		{"-42", IntLit},
		{"0xFF", IntLit},
		{"42u8", IntLit},
		{"3.14", FloatLit},
		{"1e6", FloatLit},
		{"1f32", FloatLit},
		{"'a'", CharLit},
		{`"hi"`, StringLit},
		{`r"hi"`, StringLit},
		{`b"hi"`, ByteStringLit},
		{`br"hi"`, ByteStringLit},
		{`c"hi"`, CStringLit},
	}

	for _, test := range tests {
		v, err := Parse(test.text)

		if err != nil {
			t.Errorf("%q - unexpected error, %s\n", test.text, err)
			continue
		}

		if v.Kind != test.kind {
			t.Errorf("%q - unexpected kind, expected=%q, got=%q\n", test.text, test.kind, v.Kind)
		}
	}
}

func Test_ParseValues(t *testing.T) {
	v, err := Parse("-300")

	if err != nil {
		t.Fatal(err)
	}

	if !v.Neg || v.Uint != 300 {
		t.Errorf("unexpected value, expected=-300, got=%s\n", v)
	}

	_, err = Parse("300u8")
	checkFail(t, "300u8", err, Overflow)

	_, err = Parse("1z32")
	checkFail(t, "1z32", err, UnknownSuffix)

	if v, err = Parse(`c"lib"`); err != nil {
		t.Fatal(err)
	}

	if string(v.Bytes) != "lib" {
		t.Errorf("unexpected value, expected=%q, got=%q\n", "lib", v.Bytes)
	}
}
