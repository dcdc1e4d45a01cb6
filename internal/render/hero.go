package render

import (
	"fmt"
	"strings"

	"github.com/fschutt/erp-site/internal/config"
)

func renderHero(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	title := ctx.translate(sec.Title)
	subtitle := ctx.translate(sec.Subtitle)
	phone := ctx.Site.Languages[ctx.Lang].Phone

	gradientStyle := ""
	if sec.Gradient != "" {
		gradientStyle = fmt.Sprintf(` style="background: %s;"`, sec.Gradient)
	}

	mediaHTML := ""
	if src := ctx.mediaURL(sec.Media.Source.Resolve(ctx.Lang)); src != "" {
		size := sizeAttrs(sec.Media)
		if sec.MediaType == "video" {
			mediaHTML = fmt.Sprintf(`<div class="hero-image-wrapper">
                <video src="%s" class="hero-video" autoplay loop muted playsinline%s></video>
            </div>`, src, size)
		} else {
			mediaHTML = fmt.Sprintf(`<div class="hero-image-wrapper">
                <img src="%s" alt="%s" class="hero-image"%s>
            </div>`, src, title, size)
		}
	}

	var buttons strings.Builder
	fmt.Fprintf(&buttons, `<a href="%s" class="btn btn-primary">%s</a>`,
		ctx.Site.DemoURL, ctx.translate("view_demo"))
	fmt.Fprintf(&buttons, `<a href="tel:%s" class="btn btn-secondary">%s</a>`,
		phone, ctx.translate("contact_sales"))
	if ctx.Site.CalendlyURL != "" {
		fmt.Fprintf(&buttons, `<a href="%s" class="btn btn-primary">%s</a>`,
			ctx.Site.CalendlyURL, ctx.translate("book_demo"))
	}

	ratingHTML := ""
	if sec.HasRating {
		ratingText := fmt.Sprintf("%s %s", formatRating(sec.Rating), ctx.translate("rating_text"))
		ratingHTML = fmt.Sprintf(`
                <div class="hero-rating" role="img" aria-label="%s">
                    <span class="stars" aria-hidden="true">%s</span>
                    <span class="rating-text">%s</span>
                </div>`, ratingText, stars(sec.Rating), ratingText)
	}

	return fmt.Sprintf(`
    <section class="hero"%s>
        <div class="container">
            <div class="hero-content">
                <h1>%s</h1>
                <p class="hero-subtitle">%s</p>%s
                <div class="cta-buttons">
                    %s
                </div>
            </div>
            %s
        </div>
    </section>`, gradientStyle, title, subtitle, ratingHTML, buttons.String(), mediaHTML), nil
}
