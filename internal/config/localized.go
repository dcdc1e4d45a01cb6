package config

import (
	"encoding/json"
	"strconv"
)

// LocalizedValue is a string that may vary per language. In JSON it is
// either a plain string or an object mapping language codes to strings with
// an optional "default" entry.
type LocalizedValue struct {
	scalar string
	byLang map[string]string
}

func (v *LocalizedValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.scalar = s
		v.byLang = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.scalar = ""
	v.byLang = make(map[string]string, len(raw))
	for key, val := range raw {
		// Non-string entries (e.g. width/height living alongside the
		// language keys in a media object) are not language variants.
		var entry string
		if err := json.Unmarshal(val, &entry); err == nil {
			v.byLang[key] = entry
		}
	}
	return nil
}

// Resolve returns the value for lang: exact language match first, then the
// "default" entry, then the empty string. A scalar value resolves to itself
// for every language.
func (v LocalizedValue) Resolve(lang string) string {
	if v.byLang == nil {
		return v.scalar
	}
	if s, ok := v.byLang[lang]; ok {
		return s
	}
	return v.byLang["default"]
}

// IsZero reports whether no value was configured at all.
func (v LocalizedValue) IsZero() bool {
	return v.scalar == "" && len(v.byLang) == 0
}

// Media is a localized image or video source with optional explicit pixel
// dimensions. In JSON the scalar form is a bare URL string; the object form
// carries language keys plus optional "width"/"height" entries (numbers or
// numeric strings).
type Media struct {
	Source LocalizedValue
	Width  string
	Height string
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.Source = LocalizedValue{scalar: s}
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if w, ok := raw["width"]; ok {
		m.Width = sizeString(w)
		delete(raw, "width")
	}
	if h, ok := raw["height"]; ok {
		m.Height = sizeString(h)
		delete(raw, "height")
	}
	m.Source = LocalizedValue{byLang: make(map[string]string, len(raw))}
	for key, val := range raw {
		var entry string
		if err := json.Unmarshal(val, &entry); err == nil {
			m.Source.byLang[key] = entry
		}
	}
	return nil
}

func (m Media) IsZero() bool {
	return m.Source.IsZero()
}

// sizeString normalizes a JSON number or numeric string to its attribute
// form ("640"), dropping anything unparseable.
func sizeString(raw json.RawMessage) string {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.Itoa(int(n))
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
