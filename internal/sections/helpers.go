package sections

import (
	"html/template"
)

// keyAttr renders the interaction hook for an addressable sub-element: a
// data-key attribute plus a selection marker when the key is the current
// focus. Published mode renders nothing, which is what keeps the published
// tree a structural subset of the editing tree.
func keyAttr(ctx RenderContext, sectionID, key string) string {
	if !ctx.Editing() {
		return ""
	}

	attr := ` data-key="` + template.HTMLEscapeString(key) + `"`
	if ctx.Selected(sectionID, key) {
		attr += ` data-selected="true"`
	}
	return attr
}

func escape(s string) string {
	return template.HTMLEscapeString(s)
}
