package render

import (
	"fmt"

	"github.com/fschutt/erp-site/internal/config"
)

func renderText(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	title := ctx.translate(sec.Title)
	content := ctx.translate(sec.Content)
	classes := sectionClasses("text-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	imageHTML := ""
	if src := ctx.mediaURL(sec.Media.Source.Resolve(ctx.Lang)); src != "" {
		imageHTML = fmt.Sprintf(`<img src="%s" alt="%s"%s>`, src, title, sizeAttrs(sec.Media))
	}

	// An image layout without a resolvable image degrades to text-only.
	switch {
	case sec.Layout == "image-left" && imageHTML != "":
		return fmt.Sprintf(`
    <section class="%s layout-image-left"%s>
        <div class="container">
            <div class="content-grid">
                <div class="content-image">%s</div>
                <div class="content-text">
                    <h2>%s</h2>
                    <div class="prose">%s</div>
                </div>
            </div>
        </div>
    </section>`, classes, bgStyle, imageHTML, title, content), nil
	case sec.Layout == "image-right" && imageHTML != "":
		return fmt.Sprintf(`
    <section class="%s layout-image-right"%s>
        <div class="container">
            <div class="content-grid">
                <div class="content-text">
                    <h2>%s</h2>
                    <div class="prose">%s</div>
                </div>
                <div class="content-image">%s</div>
            </div>
        </div>
    </section>`, classes, bgStyle, title, content, imageHTML), nil
	default:
		inlineImage := ""
		if imageHTML != "" {
			inlineImage = fmt.Sprintf(`
            <div class="section-image">%s</div>`, imageHTML)
		}
		return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>
            <div class="prose">%s</div>%s
        </div>
    </section>`, classes, bgStyle, title, content, inlineImage), nil
	}
}
