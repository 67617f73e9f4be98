package studio

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pos/backend/internal/domain/shared"
)

const (
	MaxSlugLength      = 100
	MaxMenuLabelLength = 100
	MaxTitleLength     = 255
)

// Page is a content-managed section of the public studio site.
// Active pages are listed on the welcome endpoint in sort order.
type Page struct {
	shared.BaseEntity
	Slug      string
	MenuLabel string
	Title     string
	Content   string
	SortOrder int
	IsActive  bool
}

// PageInput carries the editable fields of a page
type PageInput struct {
	Slug      string
	MenuLabel string
	Title     string
	Content   string
	SortOrder int
	IsActive  bool
}

// NewPage creates a validated page
func NewPage(in PageInput) (*Page, error) {
	in = in.trimmed()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := &Page{BaseEntity: shared.NewBaseEntity()}
	p.apply(in)
	return p, nil
}

// Update replaces the editable fields after validation
func (p *Page) Update(in PageInput) error {
	in = in.trimmed()
	if err := in.Validate(); err != nil {
		return err
	}
	p.apply(in)
	p.UpdatedAt = time.Now()
	return nil
}

func (p *Page) apply(in PageInput) {
	p.Slug = in.Slug
	p.MenuLabel = in.MenuLabel
	p.Title = in.Title
	p.Content = in.Content
	p.SortOrder = in.SortOrder
	p.IsActive = in.IsActive
}

func (in PageInput) trimmed() PageInput {
	in.Slug = strings.TrimSpace(in.Slug)
	in.MenuLabel = strings.TrimSpace(in.MenuLabel)
	in.Title = strings.TrimSpace(in.Title)
	return in
}

// Validate checks the field rules. Slug uniqueness is checked by the service.
func (in PageInput) Validate() error {
	if err := ValidateSlug(in.Slug); err != nil {
		return err
	}
	if in.MenuLabel == "" {
		return shared.NewDomainError("INVALID_MENU_LABEL", "Menu label cannot be empty")
	}
	if utf8.RuneCountInString(in.MenuLabel) > MaxMenuLabelLength {
		return shared.NewDomainError("INVALID_MENU_LABEL", "Menu label cannot exceed 100 characters")
	}
	if in.Title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if utf8.RuneCountInString(in.Title) > MaxTitleLength {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 255 characters")
	}
	if in.SortOrder < 0 {
		return shared.NewDomainError("INVALID_SORT_ORDER", "Sort order cannot be negative")
	}
	return nil
}

// ValidateSlug checks that slug is non-empty and only uses letters, digits, dashes and underscores
func ValidateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if utf8.RuneCountInString(slug) > MaxSlugLength {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 100 characters")
	}
	for _, r := range slug {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return shared.NewDomainError("INVALID_SLUG", "Slug can only contain letters, numbers, dashes, and underscores")
		}
	}
	return nil
}

// Section is the public view of an active page
type Section struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	MenuLabel string `json:"menu_label"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

// ToSection returns the public view of the page
func (p *Page) ToSection() Section {
	return Section{
		ID:        p.ID.String(),
		Slug:      p.Slug,
		MenuLabel: p.MenuLabel,
		Title:     p.Title,
		Content:   p.Content,
	}
}
