package sections

import (
	"fmt"
	"strings"

	"bizhub-backend/internal/models"
)

// renderContact renders the contact block: heading, the company's reachable
// addresses, an optional sanitised map embed and optional social links.
func renderContact(ctx RenderContext, prefix string, section models.Section) string {
	content := section.Content

	sectionClass := fmt.Sprintf("%s__contact", prefix)
	titleClass := fmt.Sprintf("%s__contact-title", prefix)
	descriptionClass := fmt.Sprintf("%s__contact-description", prefix)
	detailsClass := fmt.Sprintf("%s__contact-details", prefix)
	detailClass := fmt.Sprintf("%s__contact-detail", prefix)
	mapClass := fmt.Sprintf("%s__contact-map", prefix)
	socialClass := fmt.Sprintf("%s__contact-social", prefix)
	socialLinkClass := fmt.Sprintf("%s__contact-social-link", prefix)

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

	sb.WriteString(`<ul class="` + detailsClass + `">`)
	if content.Email != "" {
		sb.WriteString(`<li class="` + detailClass + `"><a href="mailto:` + escape(content.Email) + `">` + escape(content.Email) + `</a></li>`)
	}
	if content.Phone != "" {
		sb.WriteString(`<li class="` + detailClass + `"><a href="tel:` + escape(content.Phone) + `">` + escape(content.Phone) + `</a></li>`)
	}
	if content.Address != "" {
		sb.WriteString(`<li class="` + detailClass + `">` + escape(content.Address) + `</li>`)
	}
	sb.WriteString(`</ul>`)

	if content.MapEmbed != "" {
		sb.WriteString(`<div class="` + mapClass + `">`)
		sb.WriteString(ctx.SanitizeHTML(content.MapEmbed))
		sb.WriteString(`</div>`)
	}

	if content.ShowSocialMedia && content.SocialLinks != nil {
		links := content.SocialLinks
		sb.WriteString(`<div class="` + socialClass + `">`)
		writeSocialLink(&sb, socialLinkClass, "Facebook", links.Facebook)
		writeSocialLink(&sb, socialLinkClass, "Instagram", links.Instagram)
		writeSocialLink(&sb, socialLinkClass, "Twitter", links.Twitter)
		writeSocialLink(&sb, socialLinkClass, "LinkedIn", links.LinkedIn)
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</section>`)

	return sb.String()
}

func writeSocialLink(sb *strings.Builder, class, label, url string) {
	if url == "" {
		return
	}
	sb.WriteString(`<a class="` + class + `" href="` + escape(url) + `">` + label + `</a>`)
}
