package render

import (
	"fmt"
	"strings"

	"github.com/fschutt/erp-site/internal/blog"
	"github.com/fschutt/erp-site/internal/config"
)

func renderBlogIndex(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	classes := sectionClasses("blog-index-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	listHTML := ""
	if len(ctx.Posts) == 0 {
		listHTML = fmt.Sprintf(`<p class="no-posts">%s</p>`, ctx.translate("no_posts"))
	} else {
		cards := make([]string, len(ctx.Posts))
		for i, post := range ctx.Posts {
			cards[i] = blogCard(ctx, &post)
		}
		listHTML = fmt.Sprintf(`<div class="blog-list">
                %s
            </div>`, strings.Join(cards, "\n"))
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>
            %s
        </div>
    </section>`, classes, bgStyle, ctx.translate(sec.Title), listHTML), nil
}

func blogCard(ctx *Context, post *blog.Post) string {
	url := fmt.Sprintf("%s/%s/blog/%s.html", ctx.Site.BaseURL, ctx.Lang, post.Slug)

	metaHTML := ""
	if meta := postMetaLine(post); meta != "" {
		metaHTML = fmt.Sprintf(`
                <p class="blog-meta">%s</p>`, meta)
	}
	excerptHTML := ""
	if post.Excerpt != "" {
		excerptHTML = fmt.Sprintf(`
                <p>%s</p>`, post.Excerpt)
	}

	return fmt.Sprintf(`<article class="blog-card">
                <h3><a href="%s">%s</a></h3>%s%s
            </article>`, url, post.Title, metaHTML, excerptHTML)
}

// BlogPost renders the standalone blog post page fragment, spliced into
// the page template's content placeholder like any section fragment.
func BlogPost(ctx *Context, post *blog.Post) string {
	metaHTML := ""
	if meta := postMetaLine(post); meta != "" {
		metaHTML = fmt.Sprintf(`
            <p class="blog-meta">%s</p>`, meta)
	}

	backHTML := ""
	if slug := BlogIndexSlug(ctx.Site); slug != "" {
		backHTML = fmt.Sprintf(`
            <p class="blog-back"><a href="%s">← %s</a></p>`,
			pageURL(ctx.Site.BaseURL, ctx.Lang, slug), ctx.translate("back_to_blog"))
	}

	return fmt.Sprintf(`
    <section class="blog-post-section">
        <div class="container">
            <article class="blog-post">
                <h1>%s</h1>%s
                <div class="prose">%s</div>
            </article>%s
        </div>
    </section>`, post.Title, metaHTML, post.Body, backHTML)
}

func postMetaLine(post *blog.Post) string {
	var parts []string
	if post.Date != "" {
		parts = append(parts, post.Date)
	}
	if post.Author != "" {
		parts = append(parts, post.Author)
	}
	return strings.Join(parts, " · ")
}

// BlogIndexSlug finds the page carrying the blog index, used for
// back-links from individual posts and for the nav state of post pages.
func BlogIndexSlug(site *config.Site) string {
	for _, page := range site.Pages {
		for _, sec := range page.Sections {
			if sec.Type == config.SectionBlogIndex {
				return page.Slug
			}
		}
	}
	return ""
}
