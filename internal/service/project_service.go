package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/core/cache"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/upload"
)

const projectListKey = "project:list"

type ProjectService struct {
	projects domain.ProjectRepository
	intake   upload.Intake
	cache    *cache.Cache // optional read-through cache of the list
	listTTL  time.Duration
}

func NewProjectService(projects domain.ProjectRepository, intake upload.Intake) *ProjectService {
	return &ProjectService{projects: projects, intake: intake}
}

// WithCache serves List through a redis read-through cache, invalidated by
// every mutation.
func (s *ProjectService) WithCache(c *cache.Cache, ttl time.Duration) *ProjectService {
	s.cache = c
	s.listTTL = ttl
	return s
}

type ProjectInput struct {
	ProjectName string
	Category    string
	ProjectURL  string
	Stack       []string
	Tags        []string
}

func (in *ProjectInput) validate() error {
	if strings.TrimSpace(in.ProjectName) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.ProjectURL) == "" ||
		len(in.Stack) == 0 {
		return apperr.BadRequest("Incomplete project data")
	}
	return nil
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	var (
		ps  []domain.Project
		err error
	)
	if s.cache == nil {
		ps, err = s.projects.List(ctx)
	} else {
		ps, err = cache.GetOrLoadJSON(s.cache, ctx, projectListKey, s.listTTL,
			func(ctx context.Context) ([]domain.Project, error) {
				return s.projects.List(ctx)
			})
	}
	if err != nil {
		return nil, err
	}
	if ps == nil {
		// a nil slice would render as JSON null
		ps = []domain.Project{}
	}
	return ps, nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput, file *multipart.FileHeader) (*domain.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	image, err := s.storeImage(ctx, file, in.Tags)
	if err != nil {
		return nil, err
	}
	p := &domain.Project{
		ProjectName: in.ProjectName,
		Category:    in.Category,
		ProjectURL:  in.ProjectURL,
		Stack:       in.Stack,
		Image:       image,
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, apperr.Internal("could not create project", err)
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput, file *multipart.FileHeader) (*domain.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	image, err := s.storeImage(ctx, file, in.Tags)
	if err != nil {
		return nil, err
	}
	p := &domain.Project{
		ID:          id,
		ProjectName: in.ProjectName,
		Category:    in.Category,
		ProjectURL:  in.ProjectURL,
		Stack:       in.Stack,
		Image:       image, // empty keeps the stored image
	}
	if err := s.projects.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound("Project not found")
		}
		return nil, apperr.Internal("could not update project", err)
	}
	s.invalidate(ctx)
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Internal("could not delete project", err)
	}
	s.invalidate(ctx)
	return nil
}

// StoreFile exposes the intake for the standalone upload endpoint.
func (s *ProjectService) StoreFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return s.intake.Store(ctx, file, nil)
}

// storeImage runs the intake before anything is persisted; a failed upload
// fails the whole mutation.
func (s *ProjectService) storeImage(ctx context.Context, file *multipart.FileHeader, tags []string) (string, error) {
	if file == nil {
		return "", nil
	}
	return s.intake.Store(ctx, file, tags)
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, projectListKey)
	}
}
