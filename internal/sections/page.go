package sections

import (
	"sort"
	"strings"

	"bizhub-backend/internal/models"
	"bizhub-backend/pkg/validator"
)

// Mode selects which of the two render trees is produced. Published output is
// a structural subset of editing output: the same layout and styles, without
// interaction hooks or selection markers.
type Mode int

const (
	ModePublished Mode = iota
	ModeEditing
)

// Selection mirrors the editor's focus for editing-mode rendering.
type Selection struct {
	SectionID string
	SubKey    string
}

// RenderOptions configures one render call.
type RenderOptions struct {
	Mode         Mode
	Selection    Selection
	BusinessName string
}

// PageRenderer renders whole page documents through a renderer registry.
// Render is pure: it never mutates the document and identical input yields
// identical output.
type PageRenderer struct {
	registry *Registry
	prefix   string
}

func NewPageRenderer(registry *Registry) *PageRenderer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &PageRenderer{registry: registry, prefix: "page"}
}

// Render produces the HTML for a page document. Sections render in rank
// order; invisible sections are skipped entirely. In editing mode every
// section gets an identifying wrapper and every addressable sub-element a
// data-key hook.
func (r *PageRenderer) Render(content models.PageContent, opts RenderOptions) string {
	ctx := &renderContext{mode: opts.Mode, selection: opts.Selection}

	ordered := make([]models.Section, len(content.Sections))
	copy(ordered, content.Sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var sb strings.Builder
	sb.WriteString(`<div class="` + r.prefix + `" style="` + themeStyle(content.Theme) + `">`)

	r.writeHeader(&sb, content.Theme, opts.BusinessName)

	sb.WriteString(`<main class="` + r.prefix + `__main">`)
	for _, section := range ordered {
		if !section.Visible {
			continue
		}

		renderer, ok := r.registry.Get(section.Type)
		if !ok {
			continue
		}

		if ctx.Editing() {
			sb.WriteString(`<div class="` + r.prefix + `__section" data-section-id="` + escape(section.ID) + `" data-section-type="` + escape(string(section.Type)) + `"`)
			if ctx.selection.SectionID == section.ID && ctx.selection.SubKey == "" {
				sb.WriteString(` data-selected="true"`)
			}
			sb.WriteString(`>`)
		}

		sb.WriteString(renderer(ctx, r.prefix, section))

		if ctx.Editing() {
			sb.WriteString(`</div>`)
		}
	}
	sb.WriteString(`</main>`)

	r.writeFooter(&sb, content.Theme, opts.BusinessName)

	sb.WriteString(`</div>`)
	return sb.String()
}

func (r *PageRenderer) writeHeader(sb *strings.Builder, theme models.Theme, businessName string) {
	class := r.prefix + `__header`
	if theme.HeaderStyle != "" {
		class += ` ` + r.prefix + `__header--` + theme.HeaderStyle
	}

	sb.WriteString(`<header class="` + class + `">`)
	sb.WriteString(`<span class="` + r.prefix + `__header-name">` + escape(displayName(businessName)) + `</span>`)
	sb.WriteString(`</header>`)
}

func (r *PageRenderer) writeFooter(sb *strings.Builder, theme models.Theme, businessName string) {
	class := r.prefix + `__footer`
	if theme.FooterStyle != "" {
		class += ` ` + r.prefix + `__footer--` + theme.FooterStyle
	}

	sb.WriteString(`<footer class="` + class + `">`)
	sb.WriteString(`<p class="` + r.prefix + `__footer-copy">&copy; ` + escape(displayName(businessName)) + `. Todos los derechos reservados.</p>`)
	sb.WriteString(`</footer>`)
}

func displayName(businessName string) string {
	if businessName == "" {
		return "Tu Negocio"
	}
	return businessName
}

// themeStyle builds the page wrapper's inline style from the theme: the two
// palette custom properties plus the chosen font stack.
func themeStyle(theme models.Theme) string {
	var parts []string
	if theme.PrimaryColor != "" {
		parts = append(parts, "--primary-color:"+theme.PrimaryColor)
	}
	if theme.SecondaryColor != "" {
		parts = append(parts, "--secondary-color:"+theme.SecondaryColor)
	}
	parts = append(parts, "font-family:"+fontStack(theme.FontFamily))
	return strings.Join(parts, ";")
}

func fontStack(family string) string {
	switch family {
	case "serif":
		return "ui-serif, Georgia, serif"
	case "mono":
		return "ui-monospace, monospace"
	default:
		return "ui-sans-serif, system-ui, sans-serif"
	}
}

type renderContext struct {
	mode      Mode
	selection Selection
}

func (c *renderContext) SanitizeHTML(input string) string {
	return validator.SanitizeHTML(input)
}

func (c *renderContext) Editing() bool {
	return c.mode == ModeEditing
}

func (c *renderContext) Selected(sectionID, key string) bool {
	return c.selection.SectionID == sectionID && c.selection.SubKey == key
}
