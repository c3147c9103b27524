package sections

import (
	"fmt"
	"strings"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
)

// renderAbout renders the company story section: title, description, a long
// body, an optional image and a row of statistics.
func renderAbout(ctx RenderContext, prefix string, section models.Section) string {
	content := section.Content

	sectionClass := fmt.Sprintf("%s__about", prefix)
	titleClass := fmt.Sprintf("%s__about-title", prefix)
	descriptionClass := fmt.Sprintf("%s__about-description", prefix)
	bodyClass := fmt.Sprintf("%s__about-body", prefix)
	imageClass := fmt.Sprintf("%s__about-image", prefix)
	statsClass := fmt.Sprintf("%s__about-stats", prefix)
	statClass := fmt.Sprintf("%s__stat", prefix)
	statValueClass := fmt.Sprintf("%s__stat-value", prefix)
	statLabelClass := fmt.Sprintf("%s__stat-label", prefix)

	var sb strings.Builder
	sb.WriteString(`<section class="` + sectionClass + `"` + keyAttr(ctx, section.ID, "about-container") + styleAttr(content.Style) + `>`)

	if content.Title != "" {
		sb.WriteString(`<h2 class="` + titleClass + `"` + keyAttr(ctx, section.ID, "title") + styleAttr(content.TitleStyle) + `>`)
		sb.WriteString(escape(content.Title))
		sb.WriteString(`</h2>`)
	}
	if content.Description != "" {
		sb.WriteString(`<p class="` + descriptionClass + `"` + keyAttr(ctx, section.ID, "description") + styleAttr(content.DescriptionStyle) + `>`)
		sb.WriteString(escape(content.Description))
		sb.WriteString(`</p>`)
	}

	if content.Image != "" {
		sb.WriteString(`<img class="` + imageClass + `" src="` + escape(content.Image) + `" alt="` + escape(content.Title) + `" />`)
	}

	if content.Body != "" {
		sb.WriteString(`<div class="` + bodyClass + `"` + keyAttr(ctx, section.ID, "content") + styleAttr(content.ContentStyle) + `>`)
		sb.WriteString(escape(content.Body))
		sb.WriteString(`</div>`)
	}

	if len(content.Stats) > 0 {
		sb.WriteString(`<div class="` + statsClass + `">`)
		for i, stat := range content.Stats {
			containerKey := builder.ItemKey(builder.CollectionStats, builder.ContainerField, i)

			sb.WriteString(`<div class="` + statClass + `"` + keyAttr(ctx, section.ID, containerKey) + styleAttr(stat.Style) + `>`)
			sb.WriteString(`<span class="` + statValueClass + `">` + escape(stat.Value) + `</span>`)
			sb.WriteString(`<span class="` + statLabelClass + `">` + escape(stat.Label) + `</span>`)
			sb.WriteString(`</div>`)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</section>`)

	return sb.String()
}
