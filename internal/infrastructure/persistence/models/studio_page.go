package models

import (
	"github.com/pos/backend/internal/domain/studio"
)

// StudioPageModel is the persistence model for studio pages
type StudioPageModel struct {
	BaseModel
	Slug      string `gorm:"type:varchar(100);not null;uniqueIndex"`
	MenuLabel string `gorm:"type:varchar(100);not null"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text"`
	SortOrder int    `gorm:"not null;default:0;index"`
	IsActive  bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StudioPageModel) TableName() string {
	return "studio_pages"
}

// ToDomain converts the model to a domain page
func (m *StudioPageModel) ToDomain() *studio.Page {
	return &studio.Page{
		BaseEntity: m.BaseModel.ToDomain(),
		Slug:       m.Slug,
		MenuLabel:  m.MenuLabel,
		Title:      m.Title,
		Content:    m.Content,
		SortOrder:  m.SortOrder,
		IsActive:   m.IsActive,
	}
}

// FromDomain populates the model from a domain page
func (m *StudioPageModel) FromDomain(p *studio.Page) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Slug = p.Slug
	m.MenuLabel = p.MenuLabel
	m.Title = p.Title
	m.Content = p.Content
	m.SortOrder = p.SortOrder
	m.IsActive = p.IsActive
}

// StudioPageModelFromDomain creates a model from a domain page
func StudioPageModelFromDomain(p *studio.Page) *StudioPageModel {
	m := &StudioPageModel{}
	m.FromDomain(p)
	return m
}
