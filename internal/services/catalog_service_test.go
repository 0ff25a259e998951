package services

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/cache"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/events"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/matching"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/repositories/memory"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

func TestSeed_OnlyFillsEmptyCatalogs(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()

	nIn, nPr, err := f.catalog.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedInternships()), nIn)
	assert.Equal(t, len(seedProjects()), nPr)

	nIn, nPr, err = f.catalog.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, nIn)
	assert.Zero(t, nPr)

	list := f.catalog.ListInternships(ctx)
	require.Len(t, list, len(seedInternships()))
	assert.Equal(t, "Frontend Developer Intern", list[0].Title)
	assert.Equal(t, SourceSeed, list[0].Source)
	assert.Len(t, f.catalog.ListProjects(ctx), len(seedProjects()))
}

func TestListings_StoreDownServesEmpty(t *testing.T) {
	f := newFixture(t, repositories.Store{
		Students:    memory.NewStudentRepo(),
		Internships: failingInternships{},
		Projects:    failingProjects{},
	})
	ctx := context.Background()

	assert.NotNil(t, f.catalog.ListInternships(ctx))
	assert.Empty(t, f.catalog.ListInternships(ctx))
	assert.Empty(t, f.catalog.ListProjects(ctx))
	assert.Empty(t, f.catalog.SearchInternships(ctx, matching.SearchQuery{Text: "intern"}))

	_, err := f.catalog.GetInternship(ctx, "x")
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable), err)
	_, _, err = f.catalog.Seed(ctx)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable), err)
}

func TestIngest_UpsertsInvalidatesAndPublishes(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()

	// warm the cache with an empty listing
	assert.Empty(t, f.catalog.ListInternships(ctx))

	first, err := f.catalog.IngestInternship(ctx, models.Internship{
		Title: "Go Intern", Source: "feed", ExternalID: "77", RequiredSkills: []string{"Go"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.PostedAt.IsZero())

	list := f.catalog.ListInternships(ctx)
	require.Len(t, list, 1)

	again, err := f.catalog.IngestInternship(ctx, models.Internship{
		Title: "Go Intern (updated)", Source: "feed", ExternalID: "77",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	list = f.catalog.ListInternships(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Go Intern (updated)", list[0].Title)
	assert.Equal(t, []string{events.TopicInternshipPublished, events.TopicInternshipPublished}, f.events.topics)
}

func TestIngest_RequiresTitle(t *testing.T) {
	f := newFixture(t, memory.NewStore())

	_, err := f.catalog.IngestInternship(context.Background(), models.Internship{Title: " "})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument), err)
	assert.Equal(t, "is required", utils.FieldsOf(err)["title"])
}

func TestGetters_NotFound(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()

	_, err := f.catalog.GetInternship(ctx, "nope")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound), err)
	_, err = f.catalog.GetProject(ctx, "nope")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound), err)
}

func TestSearch_UsesCatalog(t *testing.T) {
	f := newFixture(t, memory.NewStore())
	ctx := context.Background()
	_, _, err := f.catalog.Seed(ctx)
	require.NoError(t, err)

	got := f.catalog.SearchInternships(ctx, matching.SearchQuery{Text: "intern", Location: "remote"})
	require.Len(t, got, 2)
	assert.Equal(t, "Backend Developer Intern", got[0].Title)
	assert.Equal(t, "DevOps Intern", got[1].Title)
}

func TestSeedProjects_HaveKnownDifficulty(t *testing.T) {
	for _, p := range seedProjects() {
		assert.True(t, p.Difficulty.Valid(), p.Title)
	}
}

type brokenDelCache struct {
	cache.Cache
}

func (brokenDelCache) Del(context.Context, ...string) error { return errStoreDown }

func TestSeed_CacheInvalidationFailureIsLogged(t *testing.T) {
	log, hook := test.NewNullLogger()
	catalog := NewCatalogService(CatalogDeps{
		Internships: memory.NewInternshipRepo(),
		Projects:    memory.NewProjectRepo(),
		Cache:       brokenDelCache{Cache: cache.NewMemoryCache()},
		Events:      &recordingPublisher{},
		Logger:      log,
	})

	nIn, nPr, err := catalog.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(seedInternships()), nIn)
	assert.Equal(t, len(seedProjects()), nPr)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "cache invalidation failed", entry.Message)
	assert.Equal(t, "CatalogService.Seed", entry.Data["op"])
}
