// Package filestore keeps the whole dataset in one pretty-printed JSON
// document, compatible with the original data.json layout. Every access goes
// through a single mutex, which closes the read-modify-write race a naive
// whole-file store would have under concurrent mutations.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"portfolio-api/internal/domain"
)

type document struct {
	Project []fileProject `json:"project"`
	User    []fileUser    `json:"user"`
}

type fileProject struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"projectName"`
	Category    string    `json:"category"`
	Stack       []string  `json:"stack"`
	Image       string    `json:"image,omitempty"`
	ProjectURL  string    `json:"projectUrl"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// fileUser persists the password hash, which the domain model never
// serializes.
type fileUser struct {
	ID       string      `json:"id,omitempty"`
	Username string      `json:"username"`
	Email    string      `json:"email,omitempty"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	Image    string      `json:"image,omitempty"`
}

type Store struct {
	path string
	mu   sync.Mutex
}

// New opens the store at path, creating an empty document when the file does
// not exist yet.
func New(path string) (*Store, error) {
	s := &Store{path: path}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := s.save(&document{Project: []fileProject{}, User: []fileUser{}}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() (*document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// save writes to a sibling temp file and renames it over the target so a
// crash mid-write never leaves a truncated document behind.
func (s *Store) save(doc *document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".data-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *Store) Projects() domain.ProjectRepository { return &projectStore{s} }
func (s *Store) Users() domain.UserRepository       { return &userStore{s} }

type projectStore struct{ s *Store }

func toDomain(p fileProject) domain.Project {
	return domain.Project{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		Category:    p.Category,
		ProjectURL:  p.ProjectURL,
		Stack:       p.Stack,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toFile(p *domain.Project) fileProject {
	return fileProject{
		ID:          p.ID,
		ProjectName: p.ProjectName,
		Category:    p.Category,
		ProjectURL:  p.ProjectURL,
		Stack:       p.Stack,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// List returns projects in insertion order.
func (r *projectStore) List(_ context.Context) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(doc.Project))
	for _, p := range doc.Project {
		out = append(out, toDomain(p))
	}
	return out, nil
}

func (r *projectStore) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return nil, err
	}
	for _, p := range doc.Project {
		if p.ID == id {
			d := toDomain(p)
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create assigns the next id: the last stored numeric id plus one, as a
// string.
func (r *projectStore) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return err
	}
	last := "0"
	if n := len(doc.Project); n > 0 {
		last = doc.Project[n-1].ID
	}
	prev, _ := strconv.Atoi(last)
	p.ID = strconv.Itoa(prev + 1)
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	doc.Project = append(doc.Project, toFile(p))
	return r.s.save(doc)
}

func (r *projectStore) Update(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return err
	}
	for i, stored := range doc.Project {
		if stored.ID != p.ID {
			continue
		}
		if p.Image == "" {
			p.Image = stored.Image
		}
		p.CreatedAt = stored.CreatedAt
		p.UpdatedAt = time.Now()
		doc.Project[i] = toFile(p)
		return r.s.save(doc)
	}
	return domain.ErrNotFound
}

func (r *projectStore) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return err
	}
	for i, stored := range doc.Project {
		if stored.ID == id {
			doc.Project = append(doc.Project[:i], doc.Project[i+1:]...)
			return r.s.save(doc)
		}
	}
	return domain.ErrNotFound
}

type userStore struct{ s *Store }

func (r *userStore) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return err
	}
	uname := strings.ToLower(u.Username)
	email := strings.ToLower(u.Email)
	for _, stored := range doc.User {
		if strings.ToLower(stored.Username) == uname ||
			(email != "" && strings.EqualFold(stored.Email, email)) {
			return domain.ErrDuplicate
		}
	}
	doc.User = append(doc.User, fileUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.PasswordHash,
		Role:     u.Role,
		Image:    u.Image,
	})
	return r.s.save(doc)
}

func (r *userStore) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, err := r.s.load()
	if err != nil {
		return nil, err
	}
	id := strings.ToLower(strings.TrimSpace(identifier))
	if id == "" {
		return nil, domain.ErrNotFound
	}
	for _, stored := range doc.User {
		if strings.ToLower(stored.Username) == id || strings.EqualFold(stored.Email, id) {
			return &domain.User{
				ID:           stored.ID,
				Username:     stored.Username,
				Email:        stored.Email,
				PasswordHash: stored.Password,
				Role:         stored.Role,
				Image:        stored.Image,
			}, nil
		}
	}
	return nil, domain.ErrNotFound
}
