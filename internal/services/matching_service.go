package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/matching"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

// MatchingService resolves a student's stored skills and runs the matching
// engine over the current catalog.
type MatchingService interface {
	// MatchInternships returns an empty list for unknown students.
	MatchInternships(ctx context.Context, studentID string) []models.InternshipMatch
	// RecommendProjects returns the catalog shuffled when the student is
	// unknown or has no skills.
	RecommendProjects(ctx context.Context, studentID string) []models.ProjectMatch
	AnalyzeSkillGap(ctx context.Context, studentID, role string) (models.SkillGapReport, error)
	Roles() []string
}

type matchingService struct {
	students StudentService
	catalog  CatalogService
	engine   *matching.Engine
	log      *logrus.Logger
}

func NewMatchingService(students StudentService, catalog CatalogService, engine *matching.Engine, log *logrus.Logger) MatchingService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &matchingService{students: students, catalog: catalog, engine: engine, log: log}
}

func (s *matchingService) MatchInternships(ctx context.Context, studentID string) []models.InternshipMatch {
	const op = "MatchingService.MatchInternships"

	skills, ok := s.skillsOf(ctx, op, studentID)
	if !ok {
		return []models.InternshipMatch{}
	}
	return s.engine.MatchInternships(skills, s.catalog.ListInternships(ctx))
}

func (s *matchingService) RecommendProjects(ctx context.Context, studentID string) []models.ProjectMatch {
	const op = "MatchingService.RecommendProjects"

	skills, _ := s.skillsOf(ctx, op, studentID)
	return s.engine.RecommendProjects(skills, s.catalog.ListProjects(ctx))
}

func (s *matchingService) AnalyzeSkillGap(ctx context.Context, studentID, role string) (models.SkillGapReport, error) {
	// NotFound and Unavailable from the student lookup pass through as is.
	st, err := s.students.Get(ctx, studentID)
	if err != nil {
		return models.SkillGapReport{}, err
	}
	return s.engine.AnalyzeSkillGap(st.Skills, role), nil
}

func (s *matchingService) Roles() []string { return s.engine.Roles().Names() }

// skillsOf reports false when the student cannot be loaded. Store failures
// are logged; an unknown id is not.
func (s *matchingService) skillsOf(ctx context.Context, op, studentID string) ([]string, bool) {
	st, err := s.students.Get(ctx, studentID)
	if err != nil {
		if !utils.IsCode(err, utils.CodeNotFound) && !utils.IsCode(err, utils.CodeInvalidArgument) {
			s.log.WithFields(logrus.Fields{"op": op, "student_id": studentID}).WithError(err).Error("student lookup failed, treating as unknown")
		}
		return nil, false
	}
	return st.Skills, true
}
