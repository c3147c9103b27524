package sections

import (
	"fmt"
	"strings"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
)

// renderFeatures renders the feature items in a responsive grid.
func renderFeatures(ctx RenderContext, prefix string, section models.Section) string {
	content := section.Content

	sectionClass := fmt.Sprintf("%s__features", prefix)
	titleClass := fmt.Sprintf("%s__features-title", prefix)
	gridClass := fmt.Sprintf("%s__features-grid", prefix)
	itemClass := fmt.Sprintf("%s__feature", prefix)
	itemTitleClass := fmt.Sprintf("%s__feature-title", prefix)
	itemDescriptionClass := fmt.Sprintf("%s__feature-description", prefix)

	var sb strings.Builder
	sb.WriteString(`<section class="` + sectionClass + `"` + styleAttr(content.Style) + `>`)

	if content.Title != "" {
		sb.WriteString(`<h2 class="` + titleClass + `"` + keyAttr(ctx, section.ID, "title") + styleAttr(content.TitleStyle) + `>`)
		sb.WriteString(escape(content.Title))
		sb.WriteString(`</h2>`)
	}

	sb.WriteString(`<div class="` + gridClass + `">`)
	for i, feature := range content.Features {
		containerKey := builder.ItemKey(builder.CollectionFeatures, builder.ContainerField, i)
		titleKey := builder.ItemKey(builder.CollectionFeatures, "title", i)
		descriptionKey := builder.ItemKey(builder.CollectionFeatures, "description", i)

		sb.WriteString(`<div class="` + itemClass + `"` + keyAttr(ctx, section.ID, containerKey) + styleAttr(feature.Style) + `>`)
		sb.WriteString(`<h3 class="` + itemTitleClass + `"` + keyAttr(ctx, section.ID, titleKey) + styleAttr(feature.TitleStyle) + `>`)
		sb.WriteString(escape(feature.Title))
		sb.WriteString(`</h3>`)
		sb.WriteString(`<p class="` + itemDescriptionClass + `"` + keyAttr(ctx, section.ID, descriptionKey) + styleAttr(feature.DescriptionStyle) + `>`)
		sb.WriteString(escape(feature.Description))
		sb.WriteString(`</p>`)
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)

	return sb.String()
}
