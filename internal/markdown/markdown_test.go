package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty input", "", ""},
		{"whitespace only", "  \n\n  ", ""},
		{"plain paragraph", "hello", "<p>hello</p>"},
		{"two paragraphs", "one\n\ntwo", "<p>one</p><p>two</p>"},
		{"extra blank lines collapse", "one\n\n\n\ntwo", "<p>one</p><p>two</p>"},
		{"bold", "**bold**", "<p><strong>bold</strong></p>"},
		{"italic", "*it*", "<p><em>it</em></p>"},
		{"bold italic", "***both***", "<p><strong><em>both</em></strong></p>"},
		{"mixed emphasis", "**b** and *i*", "<p><strong>b</strong> and <em>i</em></p>"},
		{"link", "[site](https://example.com)", `<p><a href="https://example.com">site</a></p>`},
		{"h1", "# Title", "<h1>Title</h1>"},
		{"h2", "## Sub", "<h2>Sub</h2>"},
		{"h3", "### Third", "<h3>Third</h3>"},
		{"header then body has no enclosing paragraph around the header",
			"# Title\n\nBody", "<h1>Title</h1><p>Body</p>"},
		{"single list", "- a\n- b", "<ul><li>a</li><li>b</li></ul>"},
		{"blank line splits lists", "- a\n\n- b", "<ul><li>a</li></ul><ul><li>b</li></ul>"},
		{"emphasis inside list item", "- **x**", "<ul><li><strong>x</strong></li></ul>"},
		{"full document",
			"# Post\n\nIntro with **bold** text.\n\n- first\n- second\n\nOutro.",
			"<h1>Post</h1><p>Intro with <strong>bold</strong> text.</p><ul><li>first</li><li>second</li></ul><p>Outro.</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.in))
		})
	}
}

func TestConvertListClosesOnNonListLine(t *testing.T) {
	out := Convert("- a\n- b\n\nafter")
	assert.Equal(t, "<ul><li>a</li><li>b</li></ul><p>after</p>", out)
}

func TestConvertHeadersDoNotCrossLevels(t *testing.T) {
	out := Convert("## Sub")
	assert.NotContains(t, out, "<h1>")
	assert.Contains(t, out, "<h2>Sub</h2>")
}
