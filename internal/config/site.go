package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Site is the declarative description of the whole site: global URLs, the
// configured languages, and every page with its ordered section list. It is
// loaded once per generation run and never mutated.
type Site struct {
	BaseURL         string              `json:"base_url"`
	DemoURL         string              `json:"demo_url"`
	CalendlyURL     string              `json:"calendly_url"`
	ContactEmail    string              `json:"contact_email"`
	DefaultGradient string              `json:"default_gradient"`
	DefaultLanguage string              `json:"default_language"`
	DocsURL         LocalizedValue      `json:"docs_url"`
	Logo            Logo                `json:"logo"`
	Languages       map[string]Language `json:"languages"`
	Pages           []Page              `json:"pages"`
}

// Language is one configured site language. Phone, when set, is used
// site-wide wherever a contact number is rendered for that language.
type Language struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Logo points at the navigation logo assets, one variant per background
// theme. Paths are relative to the assets directory; a missing file falls
// back to the text brand name.
type Logo struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Page is one page slug with its ordered sections. The slug "home" maps to
// the language root (index.html) instead of home.html.
type Page struct {
	Slug     string    `json:"slug"`
	NavTitle string    `json:"nav_title"`
	Sections []Section `json:"sections"`
}

// LanguageCodes returns the configured language codes in sorted order, so
// navigation, switcher and output ordering are deterministic across runs.
func (s *Site) LanguageCodes() []string {
	codes := make([]string, 0, len(s.Languages))
	for code := range s.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// FallbackLanguage is the language the root redirect page falls back to:
// the configured default, or the first code in sorted order.
func (s *Site) FallbackLanguage() string {
	if s.DefaultLanguage != "" {
		return s.DefaultLanguage
	}
	codes := s.LanguageCodes()
	if len(codes) == 0 {
		return ""
	}
	return codes[0]
}

// LoadSite reads and decodes the site description document.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}
	var site Site
	if err := json.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to decode site config %s: %w", path, err)
	}
	if len(site.Languages) == 0 {
		return nil, fmt.Errorf("site config %s declares no languages", path)
	}
	if len(site.Pages) == 0 {
		return nil, fmt.Errorf("site config %s declares no pages", path)
	}
	return &site, nil
}
