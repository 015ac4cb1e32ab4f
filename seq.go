package lit

import (
	"encoding/binary"
	"sync"
)

// ElemKind marks what one sequence element represents.
type ElemKind uint8

const (
	CharElem ElemKind = iota + 1
	ByteElem
	DigitElem
)

// Elem is one marker element of a Seq: its kind and the element's value (a
// Unicode scalar, a byte, or a single digit).
type Elem struct {
	Kind ElemKind
	Val  uint32
}

// Seq is an immutable ordered sequence of marker elements mirroring a
// canonical value's underlying sequence. Element order matches source order
// and the length equals the value's element count.
//
// Sequences are interned: building a Seq from equal contents always returns
// the pointer-identical *Seq, so structural matching can use identity. This
// stands in for the compile-time type identity of a type-level list, which
// Go cannot express; the ordered-structure behavior is preserved, the
// compile-time visibility necessarily is not.
type Seq struct {
	elems []Elem
}

var seqtab = struct {
	mu  sync.RWMutex
	tab map[string]*Seq
}{
	tab: make(map[string]*Seq),
}

func seqKey(elems []Elem) string {
	key := make([]byte, 0, len(elems)*5)

	for _, e := range elems {
		key = append(key, byte(e.Kind))
		key = binary.LittleEndian.AppendUint32(key, e.Val)
	}
	return string(key)
}

// intern returns the canonical *Seq for elems, which must not be mutated
// after the call.
func intern(elems []Elem) *Seq {
	key := seqKey(elems)

	seqtab.mu.RLock()
	s, ok := seqtab.tab[key]
	seqtab.mu.RUnlock()

	if ok {
		return s
	}

	seqtab.mu.Lock()
	defer seqtab.mu.Unlock()

	if s, ok = seqtab.tab[key]; ok {
		return s
	}

	s = &Seq{
		elems: elems,
	}
	seqtab.tab[key] = s
	return s
}

// SeqOfString builds the sequence of character elements of s, in order.
func SeqOfString(s string) *Seq {
	elems := make([]Elem, 0, len(s))

	for _, r := range s {
		elems = append(elems, Elem{
			Kind: CharElem,
			Val:  uint32(r),
		})
	}
	return intern(elems)
}

// SeqOfBytes builds the sequence of byte elements of b, in order.
func SeqOfBytes(b []byte) *Seq {
	elems := make([]Elem, len(b))

	for i, c := range b {
		elems[i] = Elem{
			Kind: ByteElem,
			Val:  uint32(c),
		}
	}
	return intern(elems)
}

// SeqOfDigits builds the digit sequence of v in the given base, most
// significant digit first. Zero is the single digit 0.
func SeqOfDigits(v uint64, base int) *Seq {
	var buf [64]Elem

	i := len(buf)

	for {
		i--
		buf[i] = Elem{
			Kind: DigitElem,
			Val:  uint32(v % uint64(base)),
		}
		v /= uint64(base)

		if v == 0 {
			break
		}
	}

	elems := make([]Elem, len(buf)-i)
	copy(elems, buf[i:])
	return intern(elems)
}

// Len returns the number of elements.
func (s *Seq) Len() int {
	return len(s.elems)
}

// At returns the element at position i, in source order.
func (s *Seq) At(i int) Elem {
	return s.elems[i]
}

// Elems returns a copy of the elements in order.
func (s *Seq) Elems() []Elem {
	elems := make([]Elem, len(s.elems))
	copy(elems, s.elems)
	return elems
}

// Head decomposes the sequence into its first element, reporting false on
// the empty sequence.
func (s *Seq) Head() (Elem, bool) {
	if len(s.elems) == 0 {
		return Elem{}, false
	}
	return s.elems[0], true
}

// Tail returns the interned sequence of everything after the head. The tail
// of the empty sequence is the empty sequence itself. Tails are interned
// too, so equal suffixes of different sequences share identity.
func (s *Seq) Tail() *Seq {
	if len(s.elems) == 0 {
		return s
	}
	return intern(s.elems[1:])
}
