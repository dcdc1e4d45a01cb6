// Package render turns the declarative site description into HTML
// fragments. Everything in this package is pure string work; filesystem
// writes belong to internal/writer. The only filesystem reads are
// existence checks for referenced assets, disabled when Context.Root is
// empty.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fschutt/erp-site/internal/blog"
	"github.com/fschutt/erp-site/internal/config"
	"github.com/fschutt/erp-site/internal/i18n"
)

// Context carries everything a renderer may consult for one
// (language, page) pass. Renderers treat it as read-only except for Lead,
// which the page composer toggles per section.
type Context struct {
	Site  *config.Site
	Table i18n.Table
	Lang  string
	Posts []blog.Post

	// Root is the site source directory for on-disk asset existence
	// checks. Empty disables the checks (referenced assets are trusted).
	Root string

	// Lead marks the first non-hero section of the page, which receives
	// emphasis styling.
	Lead bool
}

type renderFunc func(*Context, *config.Section) (string, error)

// renderers dispatches on the section type tag. New section kinds register
// here; nothing else branches on the tag.
var renderers = map[config.SectionType]renderFunc{
	config.SectionHero:              renderHero,
	config.SectionText:              renderText,
	config.SectionFeaturesGrid:      renderFeaturesGrid,
	config.SectionFeatureCategories: renderFeatureCategories,
	config.SectionTestimonials:      renderTestimonials,
	config.SectionGoogleReviews:     renderGoogleReviews,
	config.SectionFAQ:               renderFAQ,
	config.SectionContact:           renderContact,
	config.SectionCTA:               renderCTA,
	config.SectionBlogIndex:         renderBlogIndex,
}

// Section renders one section to an HTML fragment. Disabled sections and
// unknown type tags render to the empty string; a missing required field
// is an error and fails the whole page.
func Section(ctx *Context, sec *config.Section) (string, error) {
	if !sec.Enabled {
		return "", nil
	}
	fn, ok := renderers[sec.Type]
	if !ok {
		return "", nil
	}
	return fn(ctx, sec)
}

func (ctx *Context) translate(key string) string {
	return ctx.Table.Translate(key)
}

// mediaURL prefixes non-absolute sources with the configured base URL.
func (ctx *Context) mediaURL(src string) string {
	if src == "" || strings.HasPrefix(src, "http") {
		return src
	}
	return ctx.Site.BaseURL + src
}

// assetExists reports whether a site-absolute source path ("/assets/x.png")
// is present under the site root. Absolute URLs and disabled checks pass.
func (ctx *Context) assetExists(src string) bool {
	if ctx.Root == "" || src == "" || strings.HasPrefix(src, "http") {
		return true
	}
	path := filepath.Join(ctx.Root, filepath.FromSlash(strings.TrimPrefix(src, "/")))
	_, err := os.Stat(path)
	return err == nil
}

// sectionClasses joins the base class with the shared modifiers: the
// background theming class and the first-content-section emphasis class.
func sectionClasses(base string, hasBackground, lead bool) string {
	classes := []string{base}
	if hasBackground {
		classes = append(classes, "section-has-background")
	}
	if lead {
		classes = append(classes, "section-lead")
	}
	return strings.Join(classes, " ")
}

// backgroundStyle renders the optional inline background override.
func backgroundStyle(background string) string {
	if background == "" {
		return ""
	}
	return fmt.Sprintf(` style="background: %s;"`, background)
}

// sizeAttrs emits explicit media dimensions both as element attributes and
// as matching inline pixel styles; the two must stay in sync.
func sizeAttrs(m config.Media) string {
	var attrs string
	var styles []string
	if m.Width != "" {
		attrs += fmt.Sprintf(` width="%s"`, m.Width)
		styles = append(styles, fmt.Sprintf("width: %spx", m.Width))
	}
	if m.Height != "" {
		attrs += fmt.Sprintf(` height="%s"`, m.Height)
		styles = append(styles, fmt.Sprintf("height: %spx", m.Height))
	}
	if len(styles) > 0 {
		attrs += fmt.Sprintf(` style="%s;"`, strings.Join(styles, "; "))
	}
	return attrs
}

// stars renders the floor-only rating glyphs: one ★ per whole point,
// padded with ☆ to five.
func stars(rating float64) string {
	full := int(rating)
	if full < 0 {
		full = 0
	}
	if full > 5 {
		full = 5
	}
	return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
}

// formatRating renders a rating without trailing zeros ("4.5", "5").
func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func requireTitle(sec *config.Section) error {
	if sec.Title == "" {
		return fmt.Errorf("%s section: missing required field title", sec.Type)
	}
	return nil
}
