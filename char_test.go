package lit

import "testing"

func Test_DecodeChar(t *testing.T) {
	tests := []struct {
		text string
		val  Char
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\t'`, '\t'},
		{`'\0'`, 0},
		{`'\''`, '\''},
		{`'\\'`, '\\'},
		{`'"'`, '"'},
		{`'\x7F'`, 0x7F},
		{`'\u{1F600}'`, '\U0001F600'},
		{`'é'`, 'é'},
	}

	for _, test := range tests {
		v, err := Decode[Char](test.text)

		if err != nil {
			t.Errorf("%q - unexpected error, %s\n", test.text, err)
			continue
		}

		if v != test.val {
			t.Errorf("%q - unexpected value, expected=%q, got=%q\n", test.text, rune(test.val), rune(v))
		}
	}
}

func Test_DecodeCharFailures(t *testing.T) {
	tests := []struct {
		text string
		kind ErrorKind
	}{
		{``, UnterminatedChar},
		{`'`, UnterminatedChar},
		{`'a`, UnterminatedChar},
		{`a'`, UnterminatedChar},
		{`''`, EmptyChar},
		{`'ab'`, MultipleChars},
		{`'a'b`, TrailingText},
		{`'\q'`, InvalidEscape},
		{`'\x80'`, EscapeOutOfRange},
		{`'\u{D800}'`, EscapeOutOfRange},
		{`'\`, TruncatedEscape},
	}

	for _, test := range tests {
		_, err := Decode[Char](test.text)
		checkFail(t, test.text, err, test.kind)
	}
}
