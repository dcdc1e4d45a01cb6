package config

import (
	"encoding/json"
	"fmt"
)

// SectionType tags the section union. Adding a section kind means adding a
// constant here and registering a renderer for it; nothing else branches on
// the tag.
type SectionType string

const (
	SectionHero              SectionType = "hero"
	SectionText              SectionType = "text"
	SectionFeaturesGrid      SectionType = "features_grid"
	SectionFeatureCategories SectionType = "feature_categories"
	SectionTestimonials      SectionType = "testimonials"
	SectionGoogleReviews     SectionType = "google_reviews"
	SectionFAQ               SectionType = "faq"
	SectionContact           SectionType = "contact"
	SectionCTA               SectionType = "cta"
	SectionBlogIndex         SectionType = "blog_index"
)

// GridBrick selects the legacy weight-paired grid layout for a
// features_grid section; the default is the checkerboard layout.
const GridBrick = "brick"

// Section is one content block on a page. Title/Subtitle/Content and every
// label inside the item lists are translation keys, resolved per language
// at render time.
type Section struct {
	Type    SectionType
	Enabled bool

	Title    string
	Subtitle string
	Content  string

	Layout     string
	Gradient   string
	Background string
	Grid       string

	Media     Media
	MediaType string

	Rating      float64
	HasRating   bool
	ReviewCount int
	ReviewURL   string

	ButtonText string
	ButtonURL  string

	Features     []FeatureItem
	Categories   []CategoryItem
	Testimonials []TestimonialItem
	FAQItems     []FAQItem
}

// FeatureItem is one card in a features_grid section.
type FeatureItem struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
	Media       Media    `json:"media"`
	Image       Media    `json:"image"`
	MediaType   string   `json:"media_type"`
	Icon        string   `json:"icon"`
}

// EffectiveMedia prefers the media key, falling back to the legacy image
// key, mirroring how older site documents were written.
func (f FeatureItem) EffectiveMedia() Media {
	if !f.Media.IsZero() {
		return f.Media
	}
	return f.Image
}

// CategoryItem is one card in a feature_categories section: a title over a
// flat list of feature-label keys.
type CategoryItem struct {
	Title    string   `json:"title"`
	Features []string `json:"features"`
}

type TestimonialItem struct {
	Quote   string `json:"quote"`
	Author  string `json:"author"`
	Company string `json:"company"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type sectionJSON struct {
	Type        SectionType     `json:"type"`
	Enabled     *bool           `json:"enabled"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Content     string          `json:"content"`
	Layout      string          `json:"layout"`
	Gradient    string          `json:"gradient"`
	Background  string          `json:"background"`
	Grid        string          `json:"grid"`
	Media       json.RawMessage `json:"media"`
	Image       json.RawMessage `json:"image"`
	MediaType   string          `json:"media_type"`
	Rating      *float64        `json:"rating"`
	ReviewCount int             `json:"review_count"`
	ReviewURL   string          `json:"review_url"`
	ButtonText  string          `json:"button_text"`
	ButtonURL   string          `json:"button_url"`
	Items       json.RawMessage `json:"items"`
	Categories  json.RawMessage `json:"categories"`
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var aux sectionJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.Type = aux.Type
	s.Enabled = aux.Enabled == nil || *aux.Enabled
	s.Title = aux.Title
	s.Subtitle = aux.Subtitle
	s.Content = aux.Content
	s.Layout = aux.Layout
	s.Gradient = aux.Gradient
	s.Background = aux.Background
	s.Grid = aux.Grid
	s.MediaType = aux.MediaType
	s.ReviewCount = aux.ReviewCount
	s.ReviewURL = aux.ReviewURL
	s.ButtonText = aux.ButtonText
	s.ButtonURL = aux.ButtonURL

	if aux.Rating != nil {
		s.Rating = *aux.Rating
		s.HasRating = true
	} else if aux.Type == SectionGoogleReviews {
		s.Rating = 5.0
		s.HasRating = true
	}

	// media falls back to the legacy image key.
	mediaRaw := aux.Media
	if len(mediaRaw) == 0 {
		mediaRaw = aux.Image
	}
	if len(mediaRaw) > 0 {
		if err := json.Unmarshal(mediaRaw, &s.Media); err != nil {
			return fmt.Errorf("section %q: bad media value: %w", aux.Type, err)
		}
	}

	// The shape of "items" depends on the section type.
	switch aux.Type {
	case SectionFeaturesGrid:
		if err := unmarshalItems(aux.Items, &s.Features); err != nil {
			return fmt.Errorf("features_grid items: %w", err)
		}
	case SectionTestimonials:
		if err := unmarshalItems(aux.Items, &s.Testimonials); err != nil {
			return fmt.Errorf("testimonials items: %w", err)
		}
	case SectionFAQ:
		if err := unmarshalItems(aux.Items, &s.FAQItems); err != nil {
			return fmt.Errorf("faq items: %w", err)
		}
	case SectionFeatureCategories:
		if err := unmarshalItems(aux.Categories, &s.Categories); err != nil {
			return fmt.Errorf("feature_categories categories: %w", err)
		}
	}
	return nil
}

func unmarshalItems(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
