package postgres

import (
	"context"
	"errors"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
	"gorm.io/gorm"
)

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) repositories.StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, s *models.Student) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrConflict
	}
	return err
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	if !validID(id) {
		return nil, utils.ErrNotFound
	}
	return r.take(ctx, "id = ?", id)
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.take(ctx, "email = ?", email)
}

func (r *studentRepo) take(ctx context.Context, where string, arg string) (*models.Student, error) {
	var s models.Student
	err := r.db.WithContext(ctx).Where(where, arg).Take(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) UpdateProfile(ctx context.Context, s *models.Student) error {
	if !validID(s.ID) {
		return utils.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"skills":     s.Skills,
			"interests":  s.Interests,
			"updated_at": s.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
