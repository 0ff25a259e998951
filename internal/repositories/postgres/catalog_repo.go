package postgres

import (
	"context"
	"errors"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type internshipRepo struct {
	db *gorm.DB
}

func NewInternshipRepo(db *gorm.DB) repositories.InternshipRepository {
	return &internshipRepo{db: db}
}

func (r *internshipRepo) List(ctx context.Context) ([]models.Internship, error) {
	var rows []models.Internship
	err := r.db.WithContext(ctx).
		Order("posted_at ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *internshipRepo) GetByID(ctx context.Context, id string) (*models.Internship, error) {
	if !validID(id) {
		return nil, utils.ErrNotFound
	}
	var row models.Internship
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert keeps the original id and posted_at of a re-ingested posting.
func (r *internshipRepo) Upsert(ctx context.Context, in *models.Internship) error {
	return r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "source"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "company", "location", "stipend", "duration", "required_skills", "description"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "posted_at"}}},
		).
		Create(in).Error
}

func (r *internshipRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Internship{}).Count(&n).Error
	return n, err
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) repositories.ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	var rows []models.Project
	err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error
	return rows, err
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if !validID(id) {
		return nil, utils.ErrNotFound
	}
	var row models.Project
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *projectRepo) Create(ctx context.Context, p *models.Project) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error
	return n, err
}

// NewStore wires the gorm-backed repositories onto db.
func NewStore(db *gorm.DB) repositories.Store {
	return repositories.Store{
		Students:    NewStudentRepo(db),
		Internships: NewInternshipRepo(db),
		Projects:    NewProjectRepo(db),
	}
}
