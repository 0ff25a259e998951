// Package memory keeps every record in process memory. It backs the default
// STORE_DRIVER and the service tests.
package memory

import (
	"context"
	"sync"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

// NewStore returns an empty store.
func NewStore() repositories.Store {
	return repositories.Store{
		Students:    NewStudentRepo(),
		Internships: NewInternshipRepo(),
		Projects:    NewProjectRepo(),
	}
}

type studentRepo struct {
	mu      sync.RWMutex
	byID    map[string]models.Student
	byEmail map[string]string
}

func NewStudentRepo() repositories.StudentRepository {
	return &studentRepo{byID: map[string]models.Student{}, byEmail: map[string]string{}}
}

func (r *studentRepo) Create(_ context.Context, s *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[s.Email]; ok {
		return utils.ErrConflict
	}
	if _, ok := r.byID[s.ID]; ok {
		return utils.ErrConflict
	}
	r.byID[s.ID] = cloneStudent(*s)
	r.byEmail[s.Email] = s.ID
	return nil
}

func (r *studentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	out := cloneStudent(s)
	return &out, nil
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	r.mu.RLock()
	id, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok {
		return nil, utils.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *studentRepo) UpdateProfile(_ context.Context, s *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[s.ID]
	if !ok {
		return utils.ErrNotFound
	}
	cur.Skills = append([]string(nil), s.Skills...)
	cur.Interests = append([]string(nil), s.Interests...)
	cur.UpdatedAt = s.UpdatedAt
	r.byID[s.ID] = cur
	return nil
}

func cloneStudent(s models.Student) models.Student {
	s.Skills = append([]string(nil), s.Skills...)
	s.Interests = append([]string(nil), s.Interests...)
	return s
}

type internshipRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Internship
	byKey map[string]string
}

func NewInternshipRepo() repositories.InternshipRepository {
	return &internshipRepo{byID: map[string]models.Internship{}, byKey: map[string]string{}}
}

func sourceKey(in *models.Internship) string { return in.Source + "\x00" + in.ExternalID }

func (r *internshipRepo) List(_ context.Context) ([]models.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Internship, 0, len(r.order))
	for _, id := range r.order {
		in := r.byID[id]
		in.RequiredSkills = append([]string(nil), in.RequiredSkills...)
		out = append(out, in)
	}
	return out, nil
}

func (r *internshipRepo) GetByID(_ context.Context, id string) (*models.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	in, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	in.RequiredSkills = append([]string(nil), in.RequiredSkills...)
	return &in, nil
}

func (r *internshipRepo) Upsert(_ context.Context, in *models.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := sourceKey(in)
	if id, ok := r.byKey[key]; ok {
		in.ID = id
	} else {
		if _, taken := r.byID[in.ID]; taken {
			return utils.ErrConflict
		}
		r.byKey[key] = in.ID
		r.order = append(r.order, in.ID)
	}
	stored := *in
	stored.RequiredSkills = append([]string(nil), in.RequiredSkills...)
	r.byID[in.ID] = stored
	return nil
}

func (r *internshipRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}

type projectRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Project
}

func NewProjectRepo() repositories.ProjectRepository {
	return &projectRepo{byID: map[string]models.Project{}}
}

func (r *projectRepo) List(_ context.Context) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Project, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneProject(r.byID[id]))
	}
	return out, nil
}

func (r *projectRepo) GetByID(_ context.Context, id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	p = cloneProject(p)
	return &p, nil
}

func (r *projectRepo) Create(_ context.Context, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return utils.ErrConflict
	}
	r.byID[p.ID] = cloneProject(*p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *projectRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}

func cloneProject(p models.Project) models.Project {
	p.Technologies = append([]string(nil), p.Technologies...)
	p.Features = append([]string(nil), p.Features...)
	return p
}
