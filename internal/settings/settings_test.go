package settings_test

import (
	"testing"

	"github.com/MrShwhale/ftml/internal/settings"
)

func TestFromMode(t *testing.T) {
	tests := []struct {
		mode                   settings.Mode
		pageSyntax, ids, local bool
	}{
		{settings.ModePage, true, true, true},
		{settings.ModeDraft, true, false, true},
		{settings.ModeForumPost, false, false, false},
		{settings.ModeDirectMessage, false, false, false},
		{settings.ModeList, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			s := settings.FromMode(tt.mode)
			if s.Mode != tt.mode || s.EnablePageSyntax != tt.pageSyntax || s.UseTrueIDs != tt.ids || s.AllowLocalPaths != tt.local {
				t.Fatalf("FromMode(%s) = %+v", tt.mode, s)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"page", "draft", "forum-post", "direct-message", "list"} {
		m, err := settings.ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", name, err)
		}
		if m.String() != name {
			t.Errorf("round trip %q -> %q", name, m.String())
		}
	}
	if _, err := settings.ParseMode(" Forum-Post "); err != nil {
		t.Errorf("mode names are case-insensitive: %v", err)
	}
	if _, err := settings.ParseMode("wiki"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestIDPrefix(t *testing.T) {
	if p := settings.FromMode(settings.ModePage).IDPrefix(); p != "" {
		t.Errorf("page prefix = %q", p)
	}
	if p := settings.FromMode(settings.ModeDraft).IDPrefix(); p != "u-" {
		t.Errorf("draft prefix = %q", p)
	}
}
