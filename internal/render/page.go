package render

import (
	"fmt"
	"strings"

	"github.com/fschutt/erp-site/internal/config"
)

// Page renders one page for the context's language: every enabled section
// in order, navigation, language switcher and logo, spliced into the
// template's {{PLACEHOLDER}} tokens. Placeholders the template carries but
// this function does not know stay untouched.
func Page(ctx *Context, page *config.Page, template string) (string, error) {
	var fragments []string
	leadTagged := false
	for i := range page.Sections {
		sec := &page.Sections[i]
		ctx.Lead = false
		if !leadTagged && sec.Enabled && sec.Type != config.SectionHero {
			ctx.Lead = true
			leadTagged = true
		}
		fragment, err := Section(ctx, sec)
		if err != nil {
			return "", fmt.Errorf("page %q: %w", page.Slug, err)
		}
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	ctx.Lead = false

	return Compose(ctx, page, template, strings.Join(fragments, "\n")), nil
}

// Compose splices an already-rendered content fragment plus the page
// chrome into the template. Blog post pages reuse it with their own
// content.
func Compose(ctx *Context, page *config.Page, template, content string) string {
	return replacePlaceholders(template, map[string]string{
		"TITLE":         ctx.translate("site_title"),
		"LANG":          ctx.Lang,
		"BASE_URL":      ctx.Site.BaseURL,
		"NAV_TITLE":     ctx.translate("site_brand"),
		"NAV_LINKS":     Nav(ctx, page.Slug),
		"LANG_SWITCHER": LangSwitcher(ctx, page.Slug),
		"LOGO":          Logo(ctx, page),
		"CONTENT":       content,
		"FOOTER_TEXT":   ctx.translate("footer_text"),
	})
}

// Nav builds the navigation links. The home entry disappears when already
// on home; any other current page keeps its link, marked active. A fixed
// external documentation link is appended when configured.
func Nav(ctx *Context, currentSlug string) string {
	var links []string
	for _, page := range ctx.Site.Pages {
		if page.Slug == "home" && currentSlug == "home" {
			continue
		}
		active := ""
		if page.Slug == currentSlug {
			active = "active"
		}
		links = append(links, fmt.Sprintf(`<a href="%s" class="%s">%s</a>`,
			pageURL(ctx.Site.BaseURL, ctx.Lang, page.Slug), active, ctx.translate(page.NavTitle)))
	}
	if docs := ctx.Site.DocsURL.Resolve(ctx.Lang); docs != "" {
		links = append(links, fmt.Sprintf(`<a href="%s" class="nav-docs" target="_blank" rel="noopener">%s</a>`,
			docs, ctx.translate("nav_docs")))
	}
	return strings.Join(links, " ")
}

// LangSwitcher links every configured language except the current one to
// the same page slug.
func LangSwitcher(ctx *Context, currentSlug string) string {
	var links []string
	for _, code := range ctx.Site.LanguageCodes() {
		if code == ctx.Lang {
			continue
		}
		links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`,
			pageURL(ctx.Site.BaseURL, code, currentSlug), ctx.Site.Languages[code].Name))
	}
	return strings.Join(links, " | ")
}

// Logo picks the navigation logo: the image asset variant matching the
// page's leading background (dark variant over a gradient hero) when the
// file exists on disk, else the text brand name.
func Logo(ctx *Context, page *config.Page) string {
	brand := ctx.translate("site_brand")

	variant := ctx.Site.Logo.Light
	if len(page.Sections) > 0 && page.Sections[0].Gradient != "" {
		variant = ctx.Site.Logo.Dark
	}
	if variant != "" && ctx.assetExists(variant) {
		return fmt.Sprintf(`<img src="%s" class="nav-logo" alt="%s">`, ctx.mediaURL(variant), brand)
	}
	return fmt.Sprintf(`<span class="nav-brand">%s</span>`, brand)
}

// RedirectPage is the root index.html: a language-detection page listing
// every language link, preferring the visitor's browser language and
// falling back to the configured default.
func RedirectPage(site *config.Site) string {
	fallback := site.FallbackLanguage()

	var links []string
	var codes []string
	for _, code := range site.LanguageCodes() {
		links = append(links, fmt.Sprintf(`<li><a href="%s/%s/">%s</a></li>`,
			site.BaseURL, code, site.Languages[code].Name))
		codes = append(codes, fmt.Sprintf("%q", code))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Redirecting&hellip;</title>
<script>
var supported = [%s];
var lang = (navigator.language || "%s").split("-")[0];
if (supported.indexOf(lang) === -1) { lang = "%s"; }
window.location.replace("%s/" + lang + "/");
</script>
</head>
<body>
<ul class="language-list">
%s
</ul>
</body>
</html>
`, strings.Join(codes, ", "), fallback, fallback, site.BaseURL, strings.Join(links, "\n"))
}

// pageURL maps a slug to its public URL; "home" is the language root.
func pageURL(baseURL, lang, slug string) string {
	if slug == "home" {
		return fmt.Sprintf("%s/%s/", baseURL, lang)
	}
	return fmt.Sprintf("%s/%s/%s.html", baseURL, lang, slug)
}

func replacePlaceholders(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
