// Package lit decodes the textual form of source-level literals - integers,
// floats, characters, strings, byte strings, and C strings - into canonical
// typed values, with all radix prefixes, digit separators, escape sequences,
// and type suffixes resolved.
//
// Decode is the generic entry point: the requested target type selects the
// grammar. Unmarshal is the reflective counterpart for named types and types
// that validate their own literals via the Unmarshaler interface. A decoded
// value's underlying sequence can be lifted into an interned Seq so other
// code can match on its structure element by element.
//
// The decoder is pure: it performs no I/O, holds no state between calls, and
// a given text always decodes to the same value or the same failure.
package lit
