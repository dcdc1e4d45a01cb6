// Package i18n loads per-language string tables and resolves translation
// keys. Tables are flat JSON key→string maps, one file per language.
package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// Table maps translation keys to display strings for one language.
type Table map[string]string

// Translate resolves key against the table, falling back to the key itself
// when absent. It never fails and never logs; untranslated keys surfacing
// verbatim in the output is the intended signal.
func (t Table) Translate(key string) string {
	if value, ok := t[key]; ok {
		return value
	}
	return key
}

// Load reads the string table for lang from dir (dir/<lang>.json). A
// missing or invalid table is a configuration error and fatal to the run.
func Load(dir, lang string) (Table, error) {
	path := filepath.Join(dir, lang+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation table %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("translation table %s is not valid JSON", path)
	}
	table := make(Table)
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		table[key.String()] = value.String()
		return true
	})
	return table, nil
}
