package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/cache"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/events"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/matching"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

const (
	SourceSeed   = "seed"
	SourceManual = "manual"
)

// CatalogService serves the internship and project catalogs. Listing and
// search never fail: a store error is logged and yields an empty result.
type CatalogService interface {
	ListInternships(ctx context.Context) []models.Internship
	SearchInternships(ctx context.Context, q matching.SearchQuery) []models.Internship
	GetInternship(ctx context.Context, id string) (*models.Internship, error)
	IngestInternship(ctx context.Context, in models.Internship) (*models.Internship, error)

	ListProjects(ctx context.Context) []models.Project
	GetProject(ctx context.Context, id string) (*models.Project, error)

	// Seed fills empty catalogs with the built-in entries and reports how
	// many internships and projects were added.
	Seed(ctx context.Context) (internships, projects int, err error)
}

type catalogService struct {
	internships repositories.InternshipRepository
	projects    repositories.ProjectRepository
	cache       cache.Cache
	ttl         time.Duration
	events      events.Publisher
	log         *logrus.Logger
}

type CatalogDeps struct {
	Internships repositories.InternshipRepository
	Projects    repositories.ProjectRepository
	Cache       cache.Cache
	CacheTTL    time.Duration
	Events      events.Publisher
	Logger      *logrus.Logger
}

func NewCatalogService(d CatalogDeps) CatalogService {
	s := &catalogService{
		internships: d.Internships,
		projects:    d.Projects,
		cache:       d.Cache,
		ttl:         d.CacheTTL,
		events:      d.Events,
		log:         d.Logger,
	}
	if s.events == nil {
		s.events = events.Noop()
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	return s
}

func (s *catalogService) ListInternships(ctx context.Context) []models.Internship {
	const op = "CatalogService.ListInternships"

	var out []models.Internship
	if s.cacheGet(ctx, op, cache.KeyInternships, &out) {
		return out
	}
	out, err := s.internships.List(ctx)
	if err != nil {
		s.log.WithField("op", op).WithError(err).Error("store unavailable, serving empty catalog")
		return []models.Internship{}
	}
	if out == nil {
		out = []models.Internship{}
	}
	s.cacheSet(ctx, op, cache.KeyInternships, out)
	return out
}

func (s *catalogService) SearchInternships(ctx context.Context, q matching.SearchQuery) []models.Internship {
	return matching.SearchInternships(s.ListInternships(ctx), q)
}

func (s *catalogService) GetInternship(ctx context.Context, id string) (*models.Internship, error) {
	const op = "CatalogService.GetInternship"

	in, err := s.internships.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "internship not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load internship", err)
	}
	return in, nil
}

// IngestInternship upserts in by (source, externalId). Entries without a
// source are treated as manual posts keyed by their own id.
func (s *catalogService) IngestInternship(ctx context.Context, in models.Internship) (*models.Internship, error) {
	const op = "CatalogService.IngestInternship"

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, utils.Invalid(op, "invalid internship", map[string]string{"title": "is required"})
	}
	if in.ID == "" {
		in.ID = uuid.NewString()
	}
	if in.Source == "" {
		in.Source = SourceManual
	}
	if in.ExternalID == "" {
		in.ExternalID = in.ID
	}
	if in.PostedAt.IsZero() {
		in.PostedAt = time.Now().UTC()
	}
	if in.RequiredSkills == nil {
		in.RequiredSkills = []string{}
	}

	if err := s.internships.Upsert(ctx, &in); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to save internship", err)
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, cache.KeyInternships); err != nil {
			s.log.WithField("op", op).WithError(err).Warn("cache invalidation failed")
		}
	}
	if err := s.events.Publish(ctx, events.TopicInternshipPublished, in); err != nil {
		s.log.WithFields(logrus.Fields{"op": op, "internship_id": in.ID}).WithError(err).Warn("event publish failed")
	}
	return &in, nil
}

func (s *catalogService) ListProjects(ctx context.Context) []models.Project {
	const op = "CatalogService.ListProjects"

	var out []models.Project
	if s.cacheGet(ctx, op, cache.KeyProjects, &out) {
		return out
	}
	out, err := s.projects.List(ctx)
	if err != nil {
		s.log.WithField("op", op).WithError(err).Error("store unavailable, serving empty catalog")
		return []models.Project{}
	}
	if out == nil {
		out = []models.Project{}
	}
	s.cacheSet(ctx, op, cache.KeyProjects, out)
	return out
}

func (s *catalogService) GetProject(ctx context.Context, id string) (*models.Project, error) {
	const op = "CatalogService.GetProject"

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load project", err)
	}
	return p, nil
}

func (s *catalogService) Seed(ctx context.Context) (int, int, error) {
	const op = "CatalogService.Seed"

	var added, addedProjects int

	n, err := s.internships.Count(ctx)
	if err != nil {
		return 0, 0, utils.E(utils.CodeUnavailable, op, "failed to count internships", err)
	}
	if n == 0 {
		base := time.Now().UTC()
		for i, in := range seedInternships() {
			in.ID = uuid.NewString()
			in.Source = SourceSeed
			// keep seed order stable under posted_at ordering
			in.PostedAt = base.Add(time.Duration(i) * time.Millisecond)
			if err := s.internships.Upsert(ctx, &in); err != nil {
				return added, 0, utils.E(utils.CodeUnavailable, op, "failed to seed internships", err)
			}
			added++
		}
	}

	n, err = s.projects.Count(ctx)
	if err != nil {
		return added, 0, utils.E(utils.CodeUnavailable, op, "failed to count projects", err)
	}
	if n == 0 {
		for _, p := range seedProjects() {
			if !p.Difficulty.Valid() {
				return added, addedProjects, utils.E(utils.CodeInternal, op, "seed project has unknown difficulty "+string(p.Difficulty), nil)
			}
			p.ID = uuid.NewString()
			if err := s.projects.Create(ctx, &p); err != nil {
				return added, addedProjects, utils.E(utils.CodeUnavailable, op, "failed to seed projects", err)
			}
			addedProjects++
		}
	}

	if s.cache != nil && added+addedProjects > 0 {
		if err := s.cache.Del(ctx, cache.KeyInternships, cache.KeyProjects); err != nil {
			s.log.WithField("op", op).WithError(err).Warn("cache invalidation failed")
		}
	}
	return added, addedProjects, nil
}

func (s *catalogService) cacheGet(ctx context.Context, op, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, dst)
	if err != nil {
		s.log.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Warn("cache read failed")
		return false
	}
	return hit
}

func (s *catalogService) cacheSet(ctx context.Context, op, key string, val any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, val, s.ttl); err != nil {
		s.log.WithFields(logrus.Fields{"op": op, "key": key}).WithError(err).Warn("cache write failed")
	}
}
