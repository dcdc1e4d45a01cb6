package render

import (
	"fmt"
	"strings"

	"github.com/fschutt/erp-site/internal/config"
)

// featureWeightThreshold is the fixed bullet-count threshold separating
// "large" from "small" cards in the legacy brick layout.
const featureWeightThreshold = 2

func renderFeaturesGrid(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	title := ctx.translate(sec.Title)
	classes := sectionClasses("features-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	weights := make([]int, len(sec.Features))
	for i := range sec.Features {
		weights[i] = len(sec.Features[i].Bullets)
	}

	var cards string
	if sec.Grid == config.GridBrick {
		cards = brickFeatureCards(ctx, sec.Features, weights)
	} else {
		cards = checkerboardFeatureCards(ctx, sec.Features)
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>
            <div class="features-grid %s">
                %s
            </div>
        </div>
    </section>`, classes, bgStyle, title, gridClass(weights), cards), nil
}

// checkerboardFeatureCards keeps the source order and highlights positions
// 0 and 3 of every group of four, a fixed checkerboard over a 2x2 grid.
func checkerboardFeatureCards(ctx *Context, items []config.FeatureItem) string {
	cards := make([]string, len(items))
	for i := range items {
		highlight := i%4 == 0 || i%4 == 3
		cards[i] = featureCard(ctx, &items[i], highlight)
	}
	return strings.Join(cards, "\n")
}

// brickFeatureCards is the legacy weight-paired layout: bullet-heavy cards
// pair with light ones, row parity moving the highlight between the two
// slots.
func brickFeatureCards(ctx *Context, items []config.FeatureItem, weights []int) string {
	var rows []string
	for rowIdx, row := range Pack(weights, featureWeightThreshold) {
		var cards []string
		for slot, idx := range row.Items {
			highlight := row.Paired && slot == HighlightSlot(rowIdx)
			cards = append(cards, featureCard(ctx, &items[idx], highlight))
		}
		rowClass := "feature-row"
		if !row.Paired {
			rowClass += " feature-row-single"
		}
		rows = append(rows, fmt.Sprintf(`<div class="%s">
                %s
                </div>`, rowClass, strings.Join(cards, "\n")))
	}
	return strings.Join(rows, "\n")
}

func featureCard(ctx *Context, item *config.FeatureItem, highlight bool) string {
	title := ctx.translate(item.Title)

	mediaHTML := ""
	media := item.EffectiveMedia()
	if src := media.Source.Resolve(ctx.Lang); src != "" {
		if !ctx.assetExists(src) {
			fmt.Printf("Warning: feature %q references missing media %s, omitting it\n", item.Title, src)
		} else if item.MediaType == "video" {
			mediaHTML = fmt.Sprintf(`<video src="%s" class="feature-video" autoplay loop muted playsinline%s></video>`,
				ctx.mediaURL(src), sizeAttrs(media))
		} else {
			mediaHTML = fmt.Sprintf(`<img src="%s" alt="%s" class="feature-image"%s>`,
				ctx.mediaURL(src), title, sizeAttrs(media))
		}
	} else {
		icon := item.Icon
		if icon == "" {
			icon = "●"
		}
		mediaHTML = fmt.Sprintf(`<div class="feature-icon">%s</div>`, icon)
	}

	descHTML := ""
	if item.Description != "" {
		descHTML = fmt.Sprintf(`
            <p>%s</p>`, ctx.translate(item.Description))
	}

	bulletsHTML := ""
	if len(item.Bullets) > 0 {
		bullets := make([]string, len(item.Bullets))
		for i, bullet := range item.Bullets {
			bullets[i] = "<li>" + ctx.translate(bullet) + "</li>"
		}
		bulletsHTML = fmt.Sprintf(`
            <ul>%s</ul>`, strings.Join(bullets, ""))
	}

	class := "feature-card"
	style := ""
	if highlight {
		class += " feature-card-highlight"
		if ctx.Site.DefaultGradient != "" {
			style = fmt.Sprintf(` style="background: %s;"`, ctx.Site.DefaultGradient)
		}
	}

	return fmt.Sprintf(`<article class="%s"%s>
            %s
            <h3>%s</h3>%s%s
        </article>`, class, style, mediaHTML, title, descHTML, bulletsHTML)
}
