package page_test

import (
	"errors"
	"testing"

	"github.com/MrShwhale/ftml/internal/page"
)

func TestValidate(t *testing.T) {
	info := page.Demo()
	if err := info.Validate(); err != nil {
		t.Fatalf("demo page must be valid: %v", err)
	}

	tests := []struct {
		name  string
		patch func(*page.PageInfo)
	}{
		{"empty slug", func(p *page.PageInfo) { p.Page = " " }},
		{"no site", func(p *page.PageInfo) { p.Site = "" }},
		{"no title", func(p *page.PageInfo) { p.Title = "" }},
		{"no language", func(p *page.PageInfo) { p.Language = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := page.Demo()
			tt.patch(&p)
			err := p.Validate()
			if !errors.Is(err, page.ErrInvalidPageInfo) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	p := page.Demo()
	if got := p.FullName(); got != "some-page" {
		t.Errorf("FullName = %q", got)
	}
	p.Category = page.Str("fragment")
	if got := p.FullName(); got != "fragment:some-page" {
		t.Errorf("FullName = %q", got)
	}
	if p.TagCount() != 2 {
		t.Errorf("TagCount = %d", p.TagCount())
	}
}
