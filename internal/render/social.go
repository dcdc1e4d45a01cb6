package render

import (
	"fmt"
	"strings"

	"github.com/fschutt/erp-site/internal/config"
)

func renderTestimonials(ctx *Context, sec *config.Section) (string, error) {
	classes := sectionClasses("testimonials-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	var cards []string
	for _, item := range sec.Testimonials {
		authorLine := ctx.translate(item.Author)
		if item.Company != "" {
			authorLine += ", " + ctx.translate(item.Company)
		}
		cards = append(cards, fmt.Sprintf(`<div class="testimonial-card">
                <blockquote>
                    <p>"%s"</p>
                    <footer>— %s</footer>
                </blockquote>
            </div>`, ctx.translate(item.Quote), authorLine))
	}

	// The section title is optional here, unlike most section kinds.
	titleHTML := ""
	if sec.Title != "" {
		titleHTML = fmt.Sprintf(`<h2>%s</h2>
            `, ctx.translate(sec.Title))
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            %s<div class="testimonials-grid">
                %s
            </div>
        </div>
    </section>`, classes, bgStyle, titleHTML, strings.Join(cards, "\n")), nil
}

func renderGoogleReviews(ctx *Context, sec *config.Section) (string, error) {
	classes := sectionClasses("google-reviews-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	ratingText := fmt.Sprintf("%s %s", formatRating(sec.Rating), ctx.translate("google_reviews_text"))
	if sec.ReviewCount > 0 {
		ratingText += fmt.Sprintf(" (%d %s)", sec.ReviewCount, ctx.translate("reviews"))
	}

	linkHTML := ""
	if sec.ReviewURL != "" {
		linkHTML = fmt.Sprintf(`
                <div class="google-reviews-link">
                    <a href="%s" target="_blank" rel="noopener">%s</a>
                </div>`, sec.ReviewURL, ctx.translate("see_all_reviews"))
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <div class="google-reviews-content">
                <div class="google-reviews-stars">
                    <span class="stars">%s</span>
                    <span class="rating-text">%s</span>
                </div>%s
            </div>
        </div>
    </section>`, classes, bgStyle, stars(sec.Rating), ratingText, linkHTML), nil
}

func renderContact(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	classes := sectionClasses("contact-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)
	phone := ctx.Site.Languages[ctx.Lang].Phone

	subtitleHTML := ""
	if sec.Subtitle != "" {
		subtitleHTML = fmt.Sprintf(`
            <p class="section-subtitle">%s</p>`, ctx.translate(sec.Subtitle))
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>%s
            <div class="contact-info">
                <div class="contact-item">
                    <strong>%s:</strong>
                    <a href="tel:%s">%s</a>
                </div>
                <div class="contact-item">
                    <strong>%s:</strong>
                    <a href="mailto:%s">%s</a>
                </div>
            </div>
        </div>
    </section>`, classes, bgStyle, ctx.translate(sec.Title), subtitleHTML,
		ctx.translate("contact_phone"), phone, phone,
		ctx.translate("contact_email"), ctx.Site.ContactEmail, ctx.Site.ContactEmail), nil
}

func renderCTA(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	classes := sectionClasses("cta-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	subtitleHTML := ""
	if sec.Subtitle != "" {
		subtitleHTML = fmt.Sprintf(`
            <p class="section-subtitle">%s</p>`, ctx.translate(sec.Subtitle))
	}

	buttonLabel := sec.ButtonText
	if buttonLabel == "" {
		buttonLabel = "view_demo"
	}
	buttonURL := sec.ButtonURL
	if buttonURL == "" {
		buttonURL = ctx.Site.DemoURL
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>%s
            <div class="cta-buttons">
                <a href="%s" class="btn btn-primary">%s</a>
            </div>
        </div>
    </section>`, classes, bgStyle, ctx.translate(sec.Title), subtitleHTML,
		buttonURL, ctx.translate(buttonLabel)), nil
}

func renderFAQ(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	classes := sectionClasses("faq-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	var items []string
	for i, item := range sec.FAQItems {
		// Stable index-derived ids wire each toggle to its answer region
		// for assistive technology; the toggle behavior itself belongs to
		// the page shell.
		answerID := fmt.Sprintf("faq-answer-%d", i)
		items = append(items, fmt.Sprintf(`<div class="faq-item">
                <button class="faq-question" aria-expanded="false" aria-controls="%s">%s</button>
                <div class="faq-answer" id="%s">
                    <p>%s</p>
                </div>
            </div>`, answerID, ctx.translate(item.Question), answerID, ctx.translate(item.Answer)))
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>
            <div class="faq-list">
                %s
            </div>
        </div>
    </section>`, classes, bgStyle, ctx.translate(sec.Title), strings.Join(items, "\n")), nil
}
