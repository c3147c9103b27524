package sections

import (
	"fmt"
	"strings"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
)

// renderTestimonials renders client quotes in a grid of cards.
func renderTestimonials(ctx RenderContext, prefix string, section models.Section) string {
	content := section.Content

	sectionClass := fmt.Sprintf("%s__testimonials", prefix)
	titleClass := fmt.Sprintf("%s__testimonials-title", prefix)
	descriptionClass := fmt.Sprintf("%s__testimonials-description", prefix)
	gridClass := fmt.Sprintf("%s__testimonials-grid", prefix)
	itemClass := fmt.Sprintf("%s__testimonial", prefix)
	textClass := fmt.Sprintf("%s__testimonial-text", prefix)
	imageClass := fmt.Sprintf("%s__testimonial-image", prefix)
	nameClass := fmt.Sprintf("%s__testimonial-name", prefix)
	roleClass := fmt.Sprintf("%s__testimonial-role", prefix)

	var sb strings.Builder
	sb.WriteString(`<section class="` + sectionClass + `"` + styleAttr(content.Style) + `>`)

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

	sb.WriteString(`<div class="` + gridClass + `">`)
	for i, testimonial := range content.Testimonials {
		containerKey := builder.ItemKey(builder.CollectionTestimonials, builder.ContainerField, i)
		textKey := builder.ItemKey(builder.CollectionTestimonials, "text", i)
		nameKey := builder.ItemKey(builder.CollectionTestimonials, "name", i)
		roleKey := builder.ItemKey(builder.CollectionTestimonials, "role", i)

		sb.WriteString(`<div class="` + itemClass + `"` + keyAttr(ctx, section.ID, containerKey) + styleAttr(testimonial.Style) + `>`)
		sb.WriteString(`<blockquote class="` + textClass + `"` + keyAttr(ctx, section.ID, textKey) + `>`)
		sb.WriteString(escape(testimonial.Text))
		sb.WriteString(`</blockquote>`)

		if testimonial.Image != "" {
			sb.WriteString(`<img class="` + imageClass + `" src="` + escape(testimonial.Image) + `" alt="` + escape(testimonial.Name) + `" />`)
		}

		sb.WriteString(`<span class="` + nameClass + `"` + keyAttr(ctx, section.ID, nameKey) + `>`)
		sb.WriteString(escape(testimonial.Name))
		sb.WriteString(`</span>`)

		if testimonial.Role != "" {
			sb.WriteString(`<span class="` + roleClass + `"` + keyAttr(ctx, section.ID, roleKey) + `>`)
			sb.WriteString(escape(testimonial.Role))
			sb.WriteString(`</span>`)
		}

		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)

	return sb.String()
}
