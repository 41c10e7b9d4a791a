// Package token defines the lexical token kinds of the markup language.
// Invariants:
//   - Token.Text is a slice of the original input (no copies).
//   - Token.Span matches Text exactly; consecutive tokens share boundaries,
//     so the stream covers the input with no gaps and no overlaps.
//   - EOF is an empty token at the input length and repeats forever.
//   - Block names are lower-cased in Token.Name; Text keeps the source casing.
//   - Line-start kinds (Heading, BulletItem, NumberedItem, HorizontalRule)
//     are only produced at offset 0 or right after a newline.
package token
