package lit

import "unicode/utf8"

// source is a rune cursor over the text of one literal token. Each grammar
// walks it with get/unget the way a scanner would; pos reports the byte
// offset of the rune most recently returned by get, which is what decode
// failures carry.
type source struct {
	text string
	off  int
	w    int
}

func newSource(text string) *source {
	return &source{
		text: text,
	}
}

// get returns the next rune, or -1 once the text is exhausted.
func (s *source) get() rune {
	if s.off >= len(s.text) {
		s.w = 0
		return -1
	}

	r, w := utf8.DecodeRuneInString(s.text[s.off:])

	s.off += w
	s.w = w
	return r
}

// unget steps back over the rune most recently returned by get. Only one
// step of lookahead is ever needed by the grammars.
func (s *source) unget() {
	s.off -= s.w
	s.w = 0
}

func (s *source) pos() int {
	return s.off - s.w
}

// eof reports whether every rune has been consumed.
func (s *source) eof() bool {
	return s.off >= len(s.text)
}
