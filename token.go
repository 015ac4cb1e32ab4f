package lit

// Kind enumerates the literal kinds the decoder understands. The kind of a
// canonical value is fixed at decode time and never changes afterwards.
type Kind uint

//go:generate stringer -type Kind -linecomment
const (
	IntLit        Kind = iota + 1 // int
	FloatLit                      // float
	CharLit                       // char
	StringLit                     // string
	ByteStringLit                 // byte string
	CStringLit                    // c string
)
