// Package markdown converts the constrained markdown subset used by blog
// content into HTML. Only headers (levels 1-3), bold/italic emphasis,
// inline links, flat bullet lists and paragraphs are supported; input is
// trusted and emitted without escaping.
package markdown

import (
	"regexp"
	"strings"
)

var (
	reHeader3 = regexp.MustCompile(`(?m)^### (.+)$`)
	reHeader2 = regexp.MustCompile(`(?m)^## (.+)$`)
	reHeader1 = regexp.MustCompile(`(?m)^# (.+)$`)

	reBoldItalic = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	reBold       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)

	reLink = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	reParaBreak = regexp.MustCompile(`\n\s*\n`)
)

// Convert renders src to an HTML fragment. The passes run in a fixed
// order, each over the previous pass's output: headers, then emphasis
// (longest delimiter first so *** is not consumed as ** plus a stray *),
// then links, then bullet lists, then paragraph wrapping.
func Convert(src string) string {
	s := strings.ReplaceAll(src, "\r\n", "\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = reHeader3.ReplaceAllString(s, "<h3>$1</h3>")
	s = reHeader2.ReplaceAllString(s, "<h2>$1</h2>")
	s = reHeader1.ReplaceAllString(s, "<h1>$1</h1>")

	s = reBoldItalic.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = reBold.ReplaceAllString(s, "<strong>$1</strong>")
	s = reItalic.ReplaceAllString(s, "<em>$1</em>")

	s = reLink.ReplaceAllString(s, `<a href="$2">$1</a>`)

	s = convertLists(s)
	return paragraphs(s)
}

// convertLists folds each run of contiguous "- " lines into a single <ul>.
// Detection is line-local: any line not starting with "- " closes the open
// list.
func convertLists(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	var items []string

	flush := func() {
		if len(items) == 0 {
			return
		}
		out = append(out, "<ul>"+strings.Join(items, "")+"</ul>")
		items = nil
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "- ") {
			items = append(items, "<li>"+strings.TrimPrefix(line, "- ")+"</li>")
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()
	return strings.Join(out, "\n")
}

// paragraphs splits the document on blank lines and wraps each block in
// <p></p> unless it already is a block element (header or list), which is
// not inline content and must stay bare. Blocks join with no separator.
func paragraphs(s string) string {
	var b strings.Builder
	for _, block := range reParaBreak.Split(s, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if isBlockElement(block) {
			b.WriteString(block)
		} else {
			b.WriteString("<p>" + block + "</p>")
		}
	}
	return b.String()
}

func isBlockElement(block string) bool {
	for _, prefix := range []string{"<h1>", "<h2>", "<h3>", "<ul>"} {
		if strings.HasPrefix(block, prefix) {
			return true
		}
	}
	return false
}
