package sections

import (
	"fmt"
	"strings"

	"bizhub-backend/internal/models"
)

// renderHero renders the hero banner: an optional background image under a
// color scrim, then title, description and call-to-action.
func renderHero(ctx RenderContext, prefix string, section models.Section) string {
	content := section.Content

	heroClass := fmt.Sprintf("%s__hero", prefix)
	backgroundClass := fmt.Sprintf("%s__hero-background", prefix)
	overlayClass := fmt.Sprintf("%s__hero-overlay", prefix)
	contentClass := fmt.Sprintf("%s__hero-content", prefix)
	titleClass := fmt.Sprintf("%s__hero-title", prefix)
	descriptionClass := fmt.Sprintf("%s__hero-description", prefix)
	buttonClass := fmt.Sprintf("%s__hero-button", prefix)

	var sb strings.Builder
	sb.WriteString(`<section class="` + heroClass + `"` + styleAttr(content.Style) + `>`)

	if content.BackgroundImage != "" {
		sb.WriteString(`<div class="` + backgroundClass + `"` + keyAttr(ctx, section.ID, "backgroundImage"))
		sb.WriteString(` style="background-image:url('` + escape(content.BackgroundImage) + `')"></div>`)
	}

	if HasOverlay(content.Style) {
		sb.WriteString(`<div class="` + overlayClass + `" style="` + OverlayStyle(content.Style) + `"></div>`)
	}

	sb.WriteString(`<div class="` + contentClass + `">`)
	sb.WriteString(`<h1 class="` + titleClass + `"` + keyAttr(ctx, section.ID, "title") + styleAttr(content.TitleStyle) + `>`)
	sb.WriteString(escape(content.Title))
	sb.WriteString(`</h1>`)

	if content.Description != "" {
		sb.WriteString(`<p class="` + descriptionClass + `"` + keyAttr(ctx, section.ID, "description") + styleAttr(content.DescriptionStyle) + `>`)
		sb.WriteString(escape(content.Description))
		sb.WriteString(`</p>`)
	}

	if content.ButtonText != "" {
		link := content.ButtonLink
		if link == "" {
			link = "#"
		}
		sb.WriteString(`<a class="` + buttonClass + `"` + keyAttr(ctx, section.ID, "button") + styleAttr(content.ButtonStyle))
		sb.WriteString(` href="` + escape(link) + `">`)
		sb.WriteString(escape(content.ButtonText))
		sb.WriteString(`</a>`)
	}

	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)

	return sb.String()
}
