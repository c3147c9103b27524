package sections

import (
	"fmt"
	"strconv"
	"strings"

	"bizhub-backend/internal/builder"
	"bizhub-backend/internal/models"
)

// renderProducts renders the product showcase grid. Prices always show two
// decimals.
func renderProducts(ctx RenderContext, prefix string, section models.Section) string {
	content := section.Content

	sectionClass := fmt.Sprintf("%s__products", prefix)
	titleClass := fmt.Sprintf("%s__products-title", prefix)
	descriptionClass := fmt.Sprintf("%s__products-description", prefix)
	gridClass := fmt.Sprintf("%s__products-grid", prefix)
	itemClass := fmt.Sprintf("%s__product", prefix)
	imageClass := fmt.Sprintf("%s__product-image", prefix)
	nameClass := fmt.Sprintf("%s__product-name", prefix)
	itemDescriptionClass := fmt.Sprintf("%s__product-description", prefix)
	priceClass := fmt.Sprintf("%s__product-price", prefix)

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
	for i, product := range content.Products {
		containerKey := builder.ItemKey(builder.CollectionProducts, builder.ContainerField, i)
		nameKey := builder.ItemKey(builder.CollectionProducts, "name", i)
		descriptionKey := builder.ItemKey(builder.CollectionProducts, "description", i)
		priceKey := builder.ItemKey(builder.CollectionProducts, "price", i)

		sb.WriteString(`<div class="` + itemClass + `"` + keyAttr(ctx, section.ID, containerKey) + styleAttr(product.Style) + `>`)

		if product.Image != "" {
			sb.WriteString(`<img class="` + imageClass + `" src="` + escape(product.Image) + `" alt="` + escape(product.Name) + `" />`)
		}

		sb.WriteString(`<h3 class="` + nameClass + `"` + keyAttr(ctx, section.ID, nameKey) + styleAttr(product.NameStyle) + `>`)
		sb.WriteString(escape(product.Name))
		sb.WriteString(`</h3>`)
		sb.WriteString(`<p class="` + itemDescriptionClass + `"` + keyAttr(ctx, section.ID, descriptionKey) + styleAttr(product.DescriptionStyle) + `>`)
		sb.WriteString(escape(product.Description))
		sb.WriteString(`</p>`)
		sb.WriteString(`<span class="` + priceClass + `"` + keyAttr(ctx, section.ID, priceKey) + styleAttr(product.PriceStyle) + `>`)
		sb.WriteString("$" + strconv.FormatFloat(product.Price, 'f', 2, 64))
		sb.WriteString(`</span>`)

		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div>`)
	sb.WriteString(`</section>`)

	return sb.String()
}
