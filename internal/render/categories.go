package render

import (
	"fmt"
	"strings"

	"github.com/fschutt/erp-site/internal/config"
)

func renderFeatureCategories(ctx *Context, sec *config.Section) (string, error) {
	if err := requireTitle(sec); err != nil {
		return "", err
	}
	title := ctx.translate(sec.Title)
	classes := sectionClasses("feature-categories-section", sec.Background != "", ctx.Lead)
	bgStyle := backgroundStyle(sec.Background)

	// Category cards pack against the median feature count, computed once
	// per section.
	weights := make([]int, len(sec.Categories))
	for i := range sec.Categories {
		weights[i] = len(sec.Categories[i].Features)
	}
	threshold := Median(weights)

	var rows []string
	for rowIdx, row := range Pack(weights, threshold) {
		var cards []string
		for slot, idx := range row.Items {
			highlight := row.Paired && slot == HighlightSlot(rowIdx)
			cards = append(cards, categoryCard(ctx, &sec.Categories[idx], highlight))
		}
		rowClass := "category-row"
		if !row.Paired {
			rowClass += " category-row-single"
		}
		rows = append(rows, fmt.Sprintf(`<div class="%s">
                %s
                </div>`, rowClass, strings.Join(cards, "\n")))
	}

	return fmt.Sprintf(`
    <section class="%s"%s>
        <div class="container">
            <h2>%s</h2>
            <div class="categories-grid %s">
                %s
            </div>
        </div>
    </section>`, classes, bgStyle, title, gridClass(weights), strings.Join(rows, "\n")), nil
}

func categoryCard(ctx *Context, category *config.CategoryItem, highlight bool) string {
	features := make([]string, len(category.Features))
	for i, feature := range category.Features {
		features[i] = "<li>" + ctx.translate(feature) + "</li>"
	}

	class := "feature-category"
	style := ""
	if highlight {
		class += " feature-category-highlight"
		if ctx.Site.DefaultGradient != "" {
			style = fmt.Sprintf(` style="background: %s;"`, ctx.Site.DefaultGradient)
		}
	}

	return fmt.Sprintf(`<div class="%s"%s>
            <h3>%s</h3>
            <ul>%s</ul>
        </div>`, class, style, ctx.translate(category.Title), strings.Join(features, ""))
}
