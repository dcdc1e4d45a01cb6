// Package blog loads the per-language blog content: plain-text files with
// a "---"-delimited frontmatter block followed by a markdown body.
package blog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fschutt/erp-site/internal/markdown"
)

// Post is one parsed blog post. Body is already converted to HTML; Date is
// the frontmatter string verbatim (ordering comes from filenames, not
// parsed dates).
type Post struct {
	Slug    string
	Title   string
	Date    string
	Author  string
	Excerpt string
	Body    string
}

type postMeta struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Author  string `yaml:"author"`
	Excerpt string `yaml:"excerpt"`
}

// LoadPosts reads every .md file in dir and returns the posts in reverse
// filename order (filenames are assumed to start with the date, so this is
// reverse chronological). A post with missing or unterminated frontmatter
// is skipped with a warning; the run continues. A missing directory simply
// means the language has no blog.
func LoadPosts(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read blog directory %s: %w", dir, err)
	}

	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Printf("Warning: skipping blog post %s: %v\n", path, err)
			continue
		}

		var meta postMeta
		body, err := frontmatter.MustParse(bytes.NewReader(data), &meta)
		if err != nil {
			fmt.Printf("Warning: skipping blog post %s: malformed frontmatter: %v\n", path, err)
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		title := meta.Title
		if title == "" {
			title = titleFromSlug(slug)
		}

		posts = append(posts, Post{
			Slug:    slug,
			Title:   title,
			Date:    meta.Date,
			Author:  meta.Author,
			Excerpt: meta.Excerpt,
			Body:    markdown.Convert(string(body)),
		})
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Slug > posts[j].Slug
	})
	return posts, nil
}

func titleFromSlug(slug string) string {
	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(spaced)
}
