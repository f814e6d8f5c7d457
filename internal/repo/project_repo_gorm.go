package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"portfolio-api/internal/domain"
	"portfolio-api/pkg/utils"
)

type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	var ps []domain.Project
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *ProjectRepo) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	stored, err := r.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if p.Image == "" {
		p.Image = stored.Image
	}
	p.CreatedAt = stored.CreatedAt
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
