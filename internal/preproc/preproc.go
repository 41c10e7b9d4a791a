// Package preproc normalizes wiki text before it is lexed.
package preproc

import (
	"regexp"
	"strings"
)

var (
	blankLine     = regexp.MustCompile(`(?m)^[ \t]+$`)
	manyNewlines  = regexp.MustCompile(`(?:\n[ \t]*){3,}`)
	newlineFixups = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Substitute applies, in order: CRLF and CR to LF, whitespace-only lines
// emptied, backslash-newline joins, tabs to four spaces, runs of three or
// more newlines compressed to two.
func Substitute(text string) string {
	text = newlineFixups.Replace(text)
	text = blankLine.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\\\n", "")
	text = strings.ReplaceAll(text, "\t", "    ")
	return manyNewlines.ReplaceAllString(text, "\n\n")
}
