// Package csv parses, models, and encodes CSV text with a configurable
// separator and escape character.
//
// The package is built around three pieces that mirror the data's life
// cycle: a tokenizer that turns character input into rows of decoded values,
// a Document/Row model that holds those rows with header-based lookup and
// freezable mutability, and an encoder that serializes the model back to
// text. A fourth piece, the Scanner, streams rows one at a time for inputs
// that should never be materialized whole.
//
// Parsing accepts RFC4180-flavored input and is deliberately tolerant:
//   - '\n', '\r\n', and '\r' are equivalent line terminators
//   - a trailing terminator adds no empty row; empty input has zero rows
//   - escaped values may contain separators, line breaks, and doubled
//     escape characters
//   - whitespace between a closing quote and the next separator is
//     discarded as decoration
//   - an unterminated quote at end of input yields the text scanned so far
//
// Documents returned by the parse functions are always frozen: safe for
// unsynchronized concurrent reads, closed to any mutation. Documents built
// programmatically start mutable, enforce append-only/tail-remove row
// discipline so indices never have gaps, and freeze exactly once.
//
// Example usage:
//
//	doc, err := csv.ParseString("name,age\nada,36\ngrace,47")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	row, _ := doc.Row(1)
//	name, _ := row.Get("name") // "ada"
//	age, _ := row.Int("age")   // 36
//
//	out, _ := csv.Encode(doc.Values(), csv.WithSeparator(';'))
//
// Dialect characters are validated when a parser, scanner, or encoder is
// constructed, never per row: the escaper must differ from the separator and
// neither may be a line-break character.
package csv
