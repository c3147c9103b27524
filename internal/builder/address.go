// Package builder implements the editing side of the website builder: the
// sub-element addressing scheme, the drag-and-drop reorder engine, the
// per-variant default payloads and the editor session that ties them to a
// page document.
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"bizhub-backend/internal/models"
)

// Collection identifies a repeated-item list inside a section's content.
type Collection string

const (
	CollectionFeatures     Collection = "feature"
	CollectionProducts     Collection = "product"
	CollectionTestimonials Collection = "testimonial"
	CollectionStats        Collection = "stat"
)

// ContainerField addresses an item's own style rather than one of its
// fields.
const ContainerField = "container"

// Section-level keys. Anything else that is not an item key decodes to no
// match.
const (
	KeyTitle           = "title"
	KeyDescription     = "description"
	KeyBackgroundImage = "backgroundImage"
	KeyButton          = "button"
	KeyContent         = "content"
	KeyAboutContainer  = "about-container"
)

var sectionKeys = map[string]bool{
	KeyTitle:           true,
	KeyDescription:     true,
	KeyBackgroundImage: true,
	KeyButton:          true,
	KeyContent:         true,
	KeyAboutContainer:  true,
}

// itemFields maps each collection to its editable sub-fields. "container" is
// valid for every collection.
var itemFields = map[Collection]map[string]bool{
	CollectionFeatures:     {"title": true, "description": true, ContainerField: true},
	CollectionProducts:     {"name": true, "description": true, "price": true, ContainerField: true},
	CollectionTestimonials: {"name": true, "role": true, "text": true, ContainerField: true},
	CollectionStats:        {ContainerField: true},
}

// collections is ordered so pages render and tests iterate deterministically.
var collections = []Collection{
	CollectionFeatures,
	CollectionProducts,
	CollectionTestimonials,
	CollectionStats,
}

// SubElementRef is the decoded form of a sub-element key. Exactly one of the
// two shapes is populated: a bare section field (Section != ""), or an item
// field (Collection != "", Index >= 0).
type SubElementRef struct {
	Section    string
	Collection Collection
	Field      string
	Index      int
}

// IsItem reports whether the ref addresses a repeated item.
func (r SubElementRef) IsItem() bool {
	return r.Collection != ""
}

// ItemKey encodes an item-level sub-element key, e.g.
// ItemKey(CollectionProducts, "price", 0) -> "product-price-0".
func ItemKey(c Collection, field string, index int) string {
	return fmt.Sprintf("%s-%s-%d", c, field, index)
}

// DecodeKey parses a sub-element key into its typed form. Malformed keys
// (unknown collection, unknown field, non-numeric or negative index) return
// ok=false; the editor falls back to whole-section editing in that case, so
// decoding never fails hard.
func DecodeKey(key string) (SubElementRef, bool) {
	if sectionKeys[key] {
		return SubElementRef{Section: key, Index: -1}, true
	}

	for _, c := range collections {
		prefix := string(c) + "-"
		if !strings.HasPrefix(key, prefix) {
			continue
		}

		rest := key[len(prefix):]
		sep := strings.LastIndex(rest, "-")
		if sep <= 0 || sep == len(rest)-1 {
			return SubElementRef{}, false
		}

		field := rest[:sep]
		if !itemFields[c][field] {
			return SubElementRef{}, false
		}

		index, err := strconv.Atoi(rest[sep+1:])
		if err != nil || index < 0 {
			return SubElementRef{}, false
		}

		return SubElementRef{Collection: c, Field: field, Index: index}, true
	}

	return SubElementRef{}, false
}

// ValidateRef checks that an item ref points inside the bounds of the given
// section content. Section-level refs are always in bounds.
func ValidateRef(ref SubElementRef, content models.SectionContent) bool {
	if !ref.IsItem() {
		return true
	}

	var length int
	switch ref.Collection {
	case CollectionFeatures:
		length = len(content.Features)
	case CollectionProducts:
		length = len(content.Products)
	case CollectionTestimonials:
		length = len(content.Testimonials)
	case CollectionStats:
		length = len(content.Stats)
	}

	return ref.Index < length
}
