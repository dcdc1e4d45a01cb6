package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	table := Table{"welcome": "Willkommen", "empty": ""}

	assert.Equal(t, "Willkommen", table.Translate("welcome"))
	assert.Equal(t, "", table.Translate("empty"))
	// Missing keys fall back to the key itself, silently.
	assert.Equal(t, "nav_pricing", table.Translate("nav_pricing"))
}

func TestTranslateDoesNotMutateTable(t *testing.T) {
	table := Table{"welcome": "Welcome"}
	table.Translate("missing_key")
	assert.Len(t, table, 1)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"),
		[]byte(`{"welcome": "Willkommen", "footer_text": "Impressum"}`), 0o644))

	table, err := Load(dir, "de")
	require.NoError(t, err)
	assert.Equal(t, "Willkommen", table.Translate("welcome"))
	assert.Equal(t, "Impressum", table.Translate("footer_text"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "fr")
	assert.Error(t, err)
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.json"), []byte(`{"welcome": `), 0o644))

	_, err := Load(dir, "en")
	assert.Error(t, err)
}
