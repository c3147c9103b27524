package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// Page is the persisted website document a company edits and publishes. The
// slug doubles as the public address once the page is published and must not
// change afterwards.
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug       string     `gorm:"uniqueIndex;not null" json:"slug"`
	Name       string     `gorm:"not null" json:"name"`
	CompanyID  uint       `gorm:"not null;index" json:"company_id"`
	TemplateID string     `json:"template_id"`
	Status     PageStatus `gorm:"type:varchar(16);default:'draft'" json:"status"`

	Content PageContent `gorm:"type:jsonb" json:"content"`
}

// PageContent holds the ordered section list plus the theme. Stored as a
// single JSONB column.
type PageContent struct {
	Sections []Section `json:"sections"`
	Theme    Theme     `json:"theme"`
}

func (pc *PageContent) Scan(value interface{}) error {
	if value == nil {
		*pc = PageContent{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan PageContent")
	}

	return json.Unmarshal(bytes, pc)
}

func (pc PageContent) Value() (driver.Value, error) {
	return json.Marshal(pc)
}

type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionFeatures     SectionType = "features"
	SectionProducts     SectionType = "products"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
	SectionAbout        SectionType = "about"
)

// SectionTypes lists every supported variant. The renderer and the editor
// both dispatch over this closed set; a section never changes its type after
// creation.
var SectionTypes = []SectionType{
	SectionHero,
	SectionFeatures,
	SectionProducts,
	SectionTestimonials,
	SectionContact,
	SectionAbout,
}

func (t SectionType) Valid() bool {
	for _, known := range SectionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Section is one ordered block of a page. Order is always kept dense
// (0..n-1); ids are generated once and never reused.
type Section struct {
	ID      string         `json:"id"`
	Type    SectionType    `json:"type"`
	Visible bool           `json:"visible"`
	Order   int            `json:"order"`
	Content SectionContent `json:"content"`
}

// SectionContent carries the fields of every variant; which ones are
// meaningful is determined by the section type. Unused fields stay at their
// zero value and are omitted from JSON.
type SectionContent struct {
	Title           string  `json:"title,omitempty"`
	Description     string  `json:"description,omitempty"`
	ButtonText      string  `json:"button_text,omitempty"`
	ButtonLink      string  `json:"button_link,omitempty"`
	BackgroundImage string  `json:"background_image,omitempty"`
	Body            string  `json:"content,omitempty"`
	Image           string  `json:"image,omitempty"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	Address         string  `json:"address,omitempty"`
	MapEmbed        string  `json:"map_embed,omitempty"`
	ShowSocialMedia bool    `json:"show_social_media,omitempty"`
	SocialLinks     *SocialLinks `json:"social_links,omitempty"`

	Features     []Feature     `json:"features,omitempty"`
	Products     []ProductItem `json:"products,omitempty"`
	Testimonials []Testimonial `json:"testimonials,omitempty"`
	Stats        []Stat        `json:"stats,omitempty"`

	Style            *StyleConfig `json:"style,omitempty"`
	TitleStyle       *StyleConfig `json:"title_style,omitempty"`
	DescriptionStyle *StyleConfig `json:"description_style,omitempty"`
	ButtonStyle      *StyleConfig `json:"button_style,omitempty"`
	ContentStyle     *StyleConfig `json:"content_style,omitempty"`
}

// Clone returns a deep copy through the content's JSON form, detaching every
// item slice and style pointer from the receiver. Template instantiation
// relies on this so page edits never reach shared defaults.
func (c SectionContent) Clone() SectionContent {
	data, err := json.Marshal(c)
	if err != nil {
		return c
	}

	var cloned SectionContent
	if err := json.Unmarshal(data, &cloned); err != nil {
		return c
	}
	return cloned
}

// Feature is one repeated item of a features section.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	Style            *StyleConfig `json:"style,omitempty"`
	TitleStyle       *StyleConfig `json:"title_style,omitempty"`
	DescriptionStyle *StyleConfig `json:"description_style,omitempty"`
}

// ProductItem is one repeated item of a products section. It mirrors a
// catalog product but is denormalised into the page document on purpose:
// published pages must not change when the catalog does.
type ProductItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`

	Style            *StyleConfig `json:"style,omitempty"`
	NameStyle        *StyleConfig `json:"name_style,omitempty"`
	DescriptionStyle *StyleConfig `json:"description_style,omitempty"`
	PriceStyle       *StyleConfig `json:"price_style,omitempty"`
}

// Testimonial is one repeated item of a testimonials section.
type Testimonial struct {
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`

	Style *StyleConfig `json:"style,omitempty"`
}

// Stat is one repeated item of an about section's statistics row.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`

	Style *StyleConfig `json:"style,omitempty"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// StyleConfig is a sparse presentation patch: only set fields override the
// variant's built-in defaults. It never stores resolved values.
type StyleConfig struct {
	TextColor       *string  `json:"text_color,omitempty"`
	BackgroundColor *string  `json:"background_color,omitempty"`
	FontSize        *int     `json:"font_size,omitempty"`
	FontWeight      *int     `json:"font_weight,omitempty"`
	TextAlign       *string  `json:"text_align,omitempty"`
	Padding         *int     `json:"padding,omitempty"`
	Margin          *int     `json:"margin,omitempty"`
	BorderWidth     *int     `json:"border_width,omitempty"`
	BorderColor     *string  `json:"border_color,omitempty"`
	BorderStyle     *string  `json:"border_style,omitempty"`
	BorderRadius    *int     `json:"border_radius,omitempty"`
	OverlayColor    *string  `json:"overlay_color,omitempty"`
	OverlayOpacity  *float64 `json:"overlay_opacity,omitempty"`
}

// Merge shallow-merges patch into a copy of s: set fields in patch win,
// everything else is kept. Both inputs are left untouched.
func (s *StyleConfig) Merge(patch *StyleConfig) *StyleConfig {
	if patch == nil {
		if s == nil {
			return nil
		}
		copied := *s
		return &copied
	}

	var merged StyleConfig
	if s != nil {
		merged = *s
	}

	if patch.TextColor != nil {
		merged.TextColor = patch.TextColor
	}
	if patch.BackgroundColor != nil {
		merged.BackgroundColor = patch.BackgroundColor
	}
	if patch.FontSize != nil {
		merged.FontSize = patch.FontSize
	}
	if patch.FontWeight != nil {
		merged.FontWeight = patch.FontWeight
	}
	if patch.TextAlign != nil {
		merged.TextAlign = patch.TextAlign
	}
	if patch.Padding != nil {
		merged.Padding = patch.Padding
	}
	if patch.Margin != nil {
		merged.Margin = patch.Margin
	}
	if patch.BorderWidth != nil {
		merged.BorderWidth = patch.BorderWidth
	}
	if patch.BorderColor != nil {
		merged.BorderColor = patch.BorderColor
	}
	if patch.BorderStyle != nil {
		merged.BorderStyle = patch.BorderStyle
	}
	if patch.BorderRadius != nil {
		merged.BorderRadius = patch.BorderRadius
	}
	if patch.OverlayColor != nil {
		merged.OverlayColor = patch.OverlayColor
	}
	if patch.OverlayOpacity != nil {
		merged.OverlayOpacity = patch.OverlayOpacity
	}

	return &merged
}

// Theme is the page-wide palette and typography choice.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	HeaderStyle    string `json:"header_style,omitempty"`
	FooterStyle    string `json:"footer_style,omitempty"`
}

// PageTemplate seeds a new page's content. Sections are cloned with fresh
// ids at creation time; the catalog entries themselves are never mutated.
type PageTemplate struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Thumbnail       string    `json:"thumbnail,omitempty"`
	Features        []string  `json:"features,omitempty"`
	DefaultTheme    Theme     `json:"default_theme"`
	DefaultSections []Section `json:"default_sections"`
}

type CreatePageRequest struct {
	Name       string `json:"name" binding:"required"`
	Slug       string `json:"slug"`
	TemplateID string `json:"template_id" binding:"required"`
}

// UpdatePageRequest renames a page and, for drafts, can move it to a new
// slug. Empty fields are left unchanged.
type UpdatePageRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type AddSectionRequest struct {
	Type SectionType `json:"type" binding:"required"`
}

type UpdateFieldRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type UpdateStyleRequest struct {
	Target string      `json:"target" binding:"required"`
	Patch  StyleConfig `json:"patch"`
}

// ReorderRequest commits a drag-and-drop: either an existing section id or a
// new section type dragged from the palette, dropped at zone TargetIndex.
type ReorderRequest struct {
	SectionID   string      `json:"section_id"`
	NewType     SectionType `json:"new_type"`
	TargetIndex int         `json:"target_index"`
}
