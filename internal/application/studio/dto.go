package studio

import (
	"time"

	"github.com/pos/backend/internal/domain/studio"
)

// PageRequest carries every editable field of a page. Create and update both replace all fields.
type PageRequest struct {
	Slug      string `json:"slug" binding:"required,max=100,slug"`
	MenuLabel string `json:"menu_label" binding:"required,max=100"`
	Title     string `json:"title" binding:"required,max=255"`
	Content   string `json:"content"`
	SortOrder *int   `json:"sort_order" binding:"omitempty,min=0"`
	IsActive  *bool  `json:"is_active" binding:"required"`
}

func (r PageRequest) toInput() studio.PageInput {
	in := studio.PageInput{
		Slug:      r.Slug,
		MenuLabel: r.MenuLabel,
		Title:     r.Title,
		Content:   r.Content,
	}
	if r.SortOrder != nil {
		in.SortOrder = *r.SortOrder
	}
	if r.IsActive != nil {
		in.IsActive = *r.IsActive
	}
	return in
}

// ListPagesRequest represents a request to list pages
type ListPagesRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
}

// PageResponse represents a studio page in API responses
type PageResponse struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	MenuLabel string    `json:"menu_label"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPageResponse(p *studio.Page) PageResponse {
	return PageResponse{
		ID:        p.ID.String(),
		Slug:      p.Slug,
		MenuLabel: p.MenuLabel,
		Title:     p.Title,
		Content:   p.Content,
		SortOrder: p.SortOrder,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
