// Package repositories declares the storage contracts the services depend on.
// Implementations live in the memory, postgres and mongo subpackages and
// report absence with utils.ErrNotFound and duplicates with utils.ErrConflict.
package repositories

import (
	"context"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

type StudentRepository interface {
	// Create fails with utils.ErrConflict when the email is taken.
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	// UpdateProfile overwrites skills, interests and updated_at.
	UpdateProfile(ctx context.Context, s *models.Student) error
}

type InternshipRepository interface {
	List(ctx context.Context) ([]models.Internship, error)
	GetByID(ctx context.Context, id string) (*models.Internship, error)
	// Upsert inserts in, or updates the row with the same (source, external_id)
	// and copies its id back into in.
	Upsert(ctx context.Context, in *models.Internship) error
	Count(ctx context.Context) (int64, error)
}

type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Count(ctx context.Context) (int64, error)
}

// Store bundles one implementation of each repository.
type Store struct {
	Students    StudentRepository
	Internships InternshipRepository
	Projects    ProjectRepository
}
