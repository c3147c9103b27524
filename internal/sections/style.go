// Package sections renders page documents to HTML. Each section variant has
// its own renderer registered in a Registry; the whole-page renderer walks
// the ordered section list and dispatches through it. Rendering is pure:
// the same document and mode always produce the same bytes.
package sections

import (
	"fmt"
	"strconv"
	"strings"

	"bizhub-backend/internal/models"
)

// ResolveStyle turns a sparse style override into an inline CSS declaration
// list. Absent fields are simply omitted; consumers rely on their stylesheet
// defaults. Numeric fields carry an implicit px unit. Declarations come out
// in a fixed order so identical input always yields identical output.
//
// Overlay fields are not part of the inline result; they drive the scrim
// element and are read through OverlayStyle. Out-of-range values are emitted
// as stored, the resolver does not validate.
func ResolveStyle(cfg *models.StyleConfig) string {
	if cfg == nil {
		return ""
	}

	var parts []string

	if cfg.TextColor != nil {
		parts = append(parts, "color:"+*cfg.TextColor)
	}
	if cfg.BackgroundColor != nil {
		parts = append(parts, "background-color:"+*cfg.BackgroundColor)
	}
	if cfg.FontSize != nil {
		parts = append(parts, "font-size:"+strconv.Itoa(*cfg.FontSize)+"px")
	}
	if cfg.FontWeight != nil {
		parts = append(parts, "font-weight:"+strconv.Itoa(*cfg.FontWeight))
	}
	if cfg.TextAlign != nil {
		parts = append(parts, "text-align:"+*cfg.TextAlign)
	}
	if cfg.Padding != nil {
		parts = append(parts, "padding:"+strconv.Itoa(*cfg.Padding)+"px")
	}
	if cfg.Margin != nil {
		parts = append(parts, "margin:"+strconv.Itoa(*cfg.Margin)+"px")
	}
	if cfg.BorderWidth != nil {
		parts = append(parts, "border-width:"+strconv.Itoa(*cfg.BorderWidth)+"px")
	}
	if cfg.BorderColor != nil {
		parts = append(parts, "border-color:"+*cfg.BorderColor)
	}
	if cfg.BorderStyle != nil {
		parts = append(parts, "border-style:"+*cfg.BorderStyle)
	}
	if cfg.BorderRadius != nil {
		parts = append(parts, "border-radius:"+strconv.Itoa(*cfg.BorderRadius)+"px")
	}

	return strings.Join(parts, ";")
}

// HasOverlay reports whether the override asks for a color scrim. A zero or
// absent opacity means no scrim at all.
func HasOverlay(cfg *models.StyleConfig) bool {
	return cfg != nil && cfg.OverlayOpacity != nil && *cfg.OverlayOpacity > 0
}

// OverlayStyle builds the scrim element's declarations. The color falls back
// to black when only an opacity was set.
func OverlayStyle(cfg *models.StyleConfig) string {
	if !HasOverlay(cfg) {
		return ""
	}

	color := "#000000"
	if cfg.OverlayColor != nil {
		color = *cfg.OverlayColor
	}

	opacity := strconv.FormatFloat(*cfg.OverlayOpacity, 'f', -1, 64)
	return "background-color:" + color + ";opacity:" + opacity
}

// styleAttr renders a ready-to-splice style attribute, or an empty string
// when the override contributes nothing.
func styleAttr(cfg *models.StyleConfig) string {
	css := ResolveStyle(cfg)
	if css == "" {
		return ""
	}
	return fmt.Sprintf(` style=%q`, css)
}
