package html

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/MrShwhale/ftml/internal/output"
	"github.com/MrShwhale/ftml/internal/page"
	"github.com/MrShwhale/ftml/internal/resolve"
)

// BuildMeta returns the fixed page entries followed by the in-document
// directives. Absent optional fields produce no entry.
//
//	name       generator         "ftml <version>"
//	name       page              category:slug or slug
//	property   og:title          title
//	property   og:site_name      site
//	name       alt-title         alt title, if set and non-empty
//	name       keywords          tags joined by ", ", if any
//	name       rating            rating, if finite
//	http-equiv Content-Language  locale, if non-empty
func BuildMeta(info *page.PageInfo, directives []resolve.MetaCandidate, version string) []output.MetaEntry {
	out := make([]output.MetaEntry, 0, 8+len(directives))
	gen := "ftml"
	if version != "" {
		gen += " " + version
	}
	out = append(out, output.NewMeta(output.MetaName, "generator", gen))

	if info != nil {
		out = append(out,
			output.NewMeta(output.MetaName, "page", info.FullName()),
			output.NewMeta(output.MetaProperty, "og:title", info.Title),
			output.NewMeta(output.MetaProperty, "og:site_name", info.Site),
		)
		if info.AltTitle != nil && *info.AltTitle != "" {
			out = append(out, output.NewMeta(output.MetaName, "alt-title", *info.AltTitle))
		}
		if len(info.Tags) > 0 {
			out = append(out, output.NewMeta(output.MetaName, "keywords", strings.Join(info.Tags, ", ")))
		}
		if !math.IsNaN(info.Rating) && !math.IsInf(info.Rating, 0) {
			out = append(out, output.NewMeta(output.MetaName, "rating", strconv.FormatFloat(info.Rating, 'f', -1, 64)))
		}
		if info.Language != "" {
			out = append(out, output.NewMeta(output.MetaHTTPEquiv, "Content-Language", CanonicalLocale(info.Language)))
		}
	}

	for _, d := range directives {
		out = append(out, output.NewMeta(d.Kind, strings.Clone(d.Name), strings.Clone(d.Value)))
	}
	return out
}

// CanonicalLocale returns the BCP 47 form of s, or s itself when it does not parse.
func CanonicalLocale(s string) string {
	tag, err := language.Parse(s)
	if err != nil {
		return s
	}
	return tag.String()
}
