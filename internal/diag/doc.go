// Package diag defines the diagnostic model shared by the lexer, parser and
// resolver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error. Markup problems are always warnings;
//     a render never fails because of its input text.
//   - Code: compact numeric identifier (codes.go). The range encodes the stage
//     (LEX 1xxx, SYN 2xxx, SEM 3xxx), and each code maps to a warning kind
//     (unclosed-block, unknown-module, ...) and a rule identifier.
//   - Message: short human oriented text.
//   - Primary: half-open source.Span into the rendered input.
//   - Token: text of the offending token, when there is one.
//   - Notes: optional secondary spans, e.g. where an unclosed block was opened.
//
// # Emitting diagnostics
//
// Phases receive a Reporter and emit through ReportWarning(...).Emit().
// The driver passes a Collector, which keeps one Bag per stage. Flush sorts
// every bag stably by position and concatenates them in stage order, so the
// final list is lex, then parse, then resolve diagnostics, each in source
// order. Repeated problems are never deduplicated.
//
// # Scope
//
// Package diag performs no formatting beyond the one-line golden form; pretty
// and JSON output live in internal/diagfmt.
package diag
