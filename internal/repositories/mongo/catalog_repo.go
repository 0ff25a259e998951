package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type internshipRepo struct {
	col *mongo.Collection
}

func NewInternshipRepo(db *mongo.Database) repositories.InternshipRepository {
	return &internshipRepo{col: db.Collection("internships")}
}

func (r *internshipRepo) List(ctx context.Context) ([]models.Internship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Internship
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *internshipRepo) GetByID(ctx context.Context, id string) (*models.Internship, error) {
	var in models.Internship
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&in)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *internshipRepo) Upsert(ctx context.Context, in *models.Internship) error {
	if in.PostedAt.IsZero() {
		in.PostedAt = time.Now().UTC()
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Internship
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"source": in.Source, "external_id": in.ExternalID},
		bson.M{
			"$set": bson.M{
				"title":           in.Title,
				"company":         in.Company,
				"location":        in.Location,
				"stipend":         in.Stipend,
				"duration":        in.Duration,
				"required_skills": []string(in.RequiredSkills),
				"description":     in.Description,
			},
			"$setOnInsert": bson.M{
				"_id":       in.ID,
				"posted_at": in.PostedAt.UTC(),
			},
		},
		opts,
	).Decode(&stored)
	if err != nil {
		return err
	}
	in.ID = stored.ID
	in.PostedAt = stored.PostedAt
	return nil
}

func (r *internshipRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

type projectRepo struct {
	col *mongo.Collection
}

func NewProjectRepo(db *mongo.Database) repositories.ProjectRepository {
	return &projectRepo{col: db.Collection("projects")}
}

func (r *projectRepo) List(ctx context.Context) ([]models.Project, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create stores p with a position one past the current count so listing
// keeps insertion order.
func (r *projectRepo) Create(ctx context.Context, p *models.Project) error {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	doc := bson.M{
		"_id":          p.ID,
		"position":     n + 1,
		"title":        p.Title,
		"description":  p.Description,
		"difficulty":   string(p.Difficulty),
		"duration":     p.Duration,
		"technologies": []string(p.Technologies),
		"features":     []string(p.Features),
	}
	_, err = r.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrConflict
	}
	return err
}

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// NewStore wires the mongo-backed repositories onto db.
func NewStore(db *mongo.Database) repositories.Store {
	return repositories.Store{
		Students:    NewStudentRepo(db),
		Internships: NewInternshipRepo(db),
		Projects:    NewProjectRepo(db),
	}
}
