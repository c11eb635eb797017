// Package chars provides ASCII character predicates and case folding.
//
// The predicates back the CSV tokenizer, which classifies input one rune at
// a time and needs exact, locale-free answers. Whitespace follows the
// tokenizer's broad definition: every code point at or below 0x20 counts,
// including control characters and line breaks. Non-ASCII runes are never
// classified as anything and pass through case folding unchanged.
package chars
