package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fschutt/erp-site/internal/config"
)

const e2eTemplate = `<!DOCTYPE html>
<html lang="{{LANG}}">
<head><title>{{TITLE}}</title></head>
<body>
<nav>{{LOGO}} {{NAV_LINKS}} {{LANG_SWITCHER}}</nav>
<main>{{CONTENT}}</main>
<footer>{{FOOTER_TEXT}}</footer>
</body>
</html>`

const e2eSiteConfig = `{
	"base_url": "https://example.com",
	"demo_url": "https://demo.example.com",
	"contact_email": "sales@example.com",
	"default_language": "en",
	"languages": {
		"en": {"name": "English", "phone": "+1 555 0100"},
		"de": {"name": "Deutsch", "phone": "+49 30 1234"}
	},
	"pages": [
		{"slug": "home", "nav_title": "nav_home", "sections": [
			{"type": "hero", "title": "welcome"},
			{"type": "features_grid", "title": "features_title", "items": [
				{"title": "f0", "bullets": ["b1", "b2", "b3"]},
				{"title": "f1", "bullets": ["b1"]},
				{"title": "f2", "bullets": ["b1", "b2", "b3"]},
				{"title": "f3"}
			]}
		]}
	]
}`

func e2eTool(t *testing.T) config.Tool {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(e2eSiteConfig), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.html"), []byte(e2eTemplate), 0o644))

	translations := filepath.Join(dir, "translations")
	require.NoError(t, os.MkdirAll(translations, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(translations, "en.json"),
		[]byte(`{"welcome": "Welcome to Example ERP", "site_title": "Example ERP"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(translations, "de.json"),
		[]byte(`{"welcome": "Willkommen bei Example ERP", "site_title": "Example ERP"}`), 0o644))

	assets := filepath.Join(dir, "assets")
	require.NoError(t, os.MkdirAll(assets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "styles.css"), []byte("body{}"), 0o644))

	return config.Tool{
		SitePath:        filepath.Join(dir, "config.json"),
		TemplatePath:    filepath.Join(dir, "template.html"),
		TranslationsDir: translations,
		ContentDir:      filepath.Join(dir, "content"),
		AssetsDir:       assets,
		OutputDir:       filepath.Join(dir, "dist"),
	}
}

func TestBuildTwoLanguages(t *testing.T) {
	tool := e2eTool(t)
	require.NoError(t, runBuildProcess(tool))

	enHTML, err := os.ReadFile(filepath.Join(tool.OutputDir, "en", "index.html"))
	require.NoError(t, err)
	deHTML, err := os.ReadFile(filepath.Join(tool.OutputDir, "de", "index.html"))
	require.NoError(t, err)

	assert.Contains(t, string(enHTML), "Welcome to Example ERP")
	assert.Contains(t, string(deHTML), "Willkommen bei Example ERP")

	// Four feature cards, in source order, in each tree.
	for _, html := range []string{string(enHTML), string(deHTML)} {
		assert.Equal(t, 4, strings.Count(html, `<article class="feature-card`))
		order := []int{
			strings.Index(html, ">f0<"),
			strings.Index(html, ">f1<"),
			strings.Index(html, ">f2<"),
			strings.Index(html, ">f3<"),
		}
		for i := 1; i < len(order); i++ {
			assert.Greater(t, order[i], order[i-1], "feature cards must keep source order")
		}
	}

	// Copied stylesheet and root redirect page.
	_, err = os.Stat(filepath.Join(tool.OutputDir, "assets", "styles.css"))
	assert.NoError(t, err)
	rootHTML, err := os.ReadFile(filepath.Join(tool.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(rootHTML), `href="https://example.com/en/"`)
	assert.Contains(t, string(rootHTML), `href="https://example.com/de/"`)
}

func TestBuildWritesBlogPosts(t *testing.T) {
	tool := e2eTool(t)
	blogDir := filepath.Join(tool.ContentDir, "blog", "en")
	require.NoError(t, os.MkdirAll(blogDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(blogDir, "2024-01-01-hello.md"),
		[]byte("---\ntitle: Hello World\ndate: 2024-01-01\n---\n# Hi\n\nBody text.\n"), 0o644))

	require.NoError(t, runBuildProcess(tool))

	postHTML, err := os.ReadFile(filepath.Join(tool.OutputDir, "en", "blog", "2024-01-01-hello.html"))
	require.NoError(t, err)
	assert.Contains(t, string(postHTML), "<h1>Hello World</h1>")
	assert.Contains(t, string(postHTML), "<p>Body text.</p>")
}

func TestBuildFailsOnMissingRequiredField(t *testing.T) {
	tool := e2eTool(t)
	broken := `{
		"base_url": "https://example.com",
		"demo_url": "https://demo.example.com",
		"languages": {"en": {"name": "English"}},
		"pages": [{"slug": "home", "nav_title": "nav_home", "sections": [{"type": "hero"}]}]
	}`
	require.NoError(t, os.WriteFile(tool.SitePath, []byte(broken), 0o644))

	err := runBuildProcess(tool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestBuildFailsOnMissingTemplate(t *testing.T) {
	tool := e2eTool(t)
	tool.TemplatePath = filepath.Join(t.TempDir(), "absent.html")
	assert.Error(t, runBuildProcess(tool))
}
