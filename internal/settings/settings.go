// Package settings holds the switches that change how a document is rendered.
package settings

import (
	"fmt"
	"strings"
)

// Mode is the kind of wiki surface the text is written for.
type Mode uint8

const (
	ModePage Mode = iota
	ModeDraft
	ModeForumPost
	ModeDirectMessage
	ModeList
)

var modeNames = [...]string{
	ModePage:          "page",
	ModeDraft:         "draft",
	ModeForumPost:     "forum-post",
	ModeDirectMessage: "direct-message",
	ModeList:          "list",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode maps a mode name (as printed by String) back to the Mode.
func ParseMode(s string) (Mode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == want {
			return Mode(i), nil // #nosec G115 -- index of a small array
		}
	}
	return ModePage, fmt.Errorf("unknown mode %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

// Settings controls one render call.
type Settings struct {
	Mode Mode
	// EnablePageSyntax allows css, module, meta and footnoteblock.
	EnablePageSyntax bool
	// UseTrueIDs keeps generated element ids as is; otherwise they get a "u-" prefix.
	UseTrueIDs bool
	// AllowLocalPaths permits links to /local/paths.
	AllowLocalPaths bool

	MinifyStyles bool
	MaxWarnings  uint // 0 = без ограничения
}

// FromMode returns the preset for mode.
func FromMode(mode Mode) Settings {
	s := Settings{Mode: mode}
	switch mode {
	case ModePage:
		s.EnablePageSyntax, s.UseTrueIDs, s.AllowLocalPaths = true, true, true
	case ModeDraft, ModeList:
		s.EnablePageSyntax, s.UseTrueIDs, s.AllowLocalPaths = true, false, true
	case ModeForumPost, ModeDirectMessage:
		// всё выключено
	}
	return s
}

// Default is the page preset.
func Default() Settings {
	return FromMode(ModePage)
}

// IDPrefix returns the prefix applied to generated element ids.
func (s Settings) IDPrefix() string {
	if s.UseTrueIDs {
		return ""
	}
	return "u-"
}
