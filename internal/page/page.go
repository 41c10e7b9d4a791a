// Package page describes the page a document is rendered for.
package page

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPageInfo is returned when a required field of PageInfo is missing.
var ErrInvalidPageInfo = errors.New("invalid page info")

// PageInfo is the read-only context of one render call.
type PageInfo struct {
	Page     string  // slug, обязательный
	Category *string // nil: категория по умолчанию
	Site     string
	Title    string
	AltTitle *string
	Rating   float64
	Tags     []string
	Language string
}

// TagCount returns the number of tags.
func (p *PageInfo) TagCount() int {
	return len(p.Tags)
}

// FullName returns "category:slug", or just the slug when there is no category.
func (p *PageInfo) FullName() string {
	if p.Category == nil || *p.Category == "" {
		return p.Page
	}
	return *p.Category + ":" + p.Page
}

// Validate checks the required fields.
func (p *PageInfo) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Page) == "" {
		missing = append(missing, "page")
	}
	if p.Site == "" {
		missing = append(missing, "site")
	}
	if p.Title == "" {
		missing = append(missing, "title")
	}
	if p.Language == "" {
		missing = append(missing, "language")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidPageInfo, strings.Join(missing, ", "))
	}
	return nil
}

// Str is a helper for the optional string fields.
func Str(s string) *string {
	return &s
}

// Demo returns the page used by the demonstration program and the CLI defaults.
func Demo() PageInfo {
	return PageInfo{
		Page:     "some-page",
		Site:     "sandbox",
		Title:    "Test page!",
		Rating:   69,
		Tags:     []string{"tale", "_cc"},
		Language: "C",
	}
}
