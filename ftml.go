// Package ftml compiles Wikidot-style wiki markup to HTML and plain text.
//
// Rendering never fails on text: malformed markup produces warnings next to a
// best-effort result. The only error is an invalid PageInfo.
package ftml

import (
	"context"

	"github.com/MrShwhale/ftml/internal/driver"
	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/preproc"
	"github.com/MrShwhale/ftml/internal/settings"
)

type (
	PageInfo   = page.PageInfo
	Settings   = settings.Settings
	Mode       = settings.Mode
	HtmlOutput = output.HtmlOutput
	TextOutput = output.TextOutput
	MetaEntry  = output.MetaEntry
	MetaKind   = output.MetaKind
	Warning    = output.Warning
)

const (
	ModePage          = settings.ModePage
	ModeDraft         = settings.ModeDraft
	ModeForumPost     = settings.ModeForumPost
	ModeDirectMessage = settings.ModeDirectMessage
	ModeList          = settings.ModeList
)

// ErrInvalidPageInfo is wrapped by the error of RenderHTML and RenderText.
var ErrInvalidPageInfo = page.ErrInvalidPageInfo

// DemoPage returns the page context used by the command line tools.
func DemoPage() PageInfo { return page.Demo() }

// DefaultSettings returns the settings of a regular wiki page.
func DefaultSettings() Settings { return settings.Default() }

// SettingsFor returns the preset of mode.
func SettingsFor(mode Mode) Settings { return settings.FromMode(mode) }

// RenderHTML compiles input to an HTML body, page styles, meta entries and warnings.
func RenderHTML(input string, info PageInfo, s Settings) (HtmlOutput, error) {
	res, err := driver.RenderHTML(context.Background(), input, info, driver.Options{Settings: s})
	if err != nil {
		return HtmlOutput{}, err
	}
	return res.Output, nil
}

// RenderText compiles input to plain text.
func RenderText(input string, info PageInfo, s Settings) (TextOutput, error) {
	res, err := driver.RenderText(context.Background(), input, info, driver.Options{Settings: s})
	if err != nil {
		return TextOutput{}, err
	}
	return res.Output, nil
}

// Preprocess normalizes whitespace and newlines the way wiki pages are stored:
// CRLF and CR become LF, whitespace-only lines are emptied, a backslash before
// a newline joins the lines, tabs become four spaces and blank runs shrink to
// one empty line. Render the returned text; warning spans then refer to it.
func Preprocess(input string) string { return preproc.Substitute(input) }
