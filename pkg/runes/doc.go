// Package runes provides a peekable rune stream over an io.Reader or an
// in-memory string.
//
// Stream exposes exactly one rune of lookahead through HasNext, Peek, and
// Next. Reaching end of input is not an error; read failures are sticky and
// reported by Err. A stream constructed with NewOwnedStream releases its
// source on Close, which is how file-opening entry points guarantee the file
// is closed on every path out.
package runes
