package mongo

import (
	"context"
	"errors"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type studentRepo struct {
	col *mongo.Collection
}

func NewStudentRepo(db *mongo.Database) repositories.StudentRepository {
	return &studentRepo{col: db.Collection("students")}
}

func (r *studentRepo) Create(ctx context.Context, s *models.Student) error {
	_, err := r.col.InsertOne(ctx, s)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrConflict
	}
	return err
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *studentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *studentRepo) findOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	var s models.Student
	err := r.col.FindOne(ctx, filter).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) UpdateProfile(ctx context.Context, s *models.Student) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": s.ID},
		bson.M{"$set": bson.M{
			"skills":     []string(s.Skills),
			"interests":  []string(s.Interests),
			"updated_at": s.UpdatedAt.UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
