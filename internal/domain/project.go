package domain

import (
	"context"
	"time"
)

type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectName string    `gorm:"size:191;not null" json:"projectName"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	ProjectURL  string    `gorm:"size:255;not null" json:"projectUrl"`
	Stack       []string  `gorm:"serializer:json;type:text" json:"stack"`
	Image       string    `gorm:"size:255" json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, p *Project) error
	// Update overwrites the stored record. An empty Image keeps the stored one.
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
}
