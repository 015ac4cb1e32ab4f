package lit

import "strconv"

// ErrorKind identifies the class of a decode failure.
type ErrorKind uint

//go:generate stringer -type ErrorKind -linecomment
const (
	EmptyDigits          ErrorKind = iota + 1 // empty digits
	InvalidDigitForRadix                      // invalid digit for radix
	Overflow                                  // overflow
	UnknownSuffix                             // unknown suffix
	MalformedFloat                            // malformed float
	EmptyChar                                 // empty char
	MultipleChars                             // multiple chars
	UnterminatedChar                          // unterminated char
	UnterminatedString                        // unterminated string
	InvalidEscape                             // invalid escape
	EscapeOutOfRange                          // escape out of range
	TruncatedEscape                           // truncated escape
	MisplacedSeparator                        // misplaced separator
	EmbeddedNul                               // embedded nul
	ByteOutOfRange                            // byte out of range
	TrailingText                              // trailing text
)

// DecodeError reports why a literal could not be decoded. Offset is the byte
// offset into the literal text at which the failure was detected.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
}

func (e *DecodeError) Error() string {
	return "lit: " + e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
}

// Is reports whether target is a *DecodeError of the same kind, so that
// errors.Is can match on kind without regard to offset.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	return ok && t.Kind == e.Kind
}

func errAt(kind ErrorKind, off int) *DecodeError {
	return &DecodeError{
		Kind:   kind,
		Offset: off,
	}
}
