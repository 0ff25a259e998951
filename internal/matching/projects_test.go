package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

func projectCatalog() []models.Project {
	return []models.Project{
		{ID: "todo", Technologies: []string{"React", "Node.js"}},
		{ID: "blog", Technologies: []string{"HTML", "CSS"}},
		{ID: "chat", Technologies: []string{"React", "Node.js", "Socket.io"}},
		{ID: "ml", Technologies: []string{"Python"}},
	}
}

func projectIDs(ms []models.ProjectMatch) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestRecommendProjects_OrdersByOverlapAndKeepsZeroes(t *testing.T) {
	e := New(nil, NewRandom(1))

	got := e.RecommendProjects([]string{"React", "Node.js", "Python"}, projectCatalog())

	assert.Equal(t, []string{"todo", "chat", "ml", "blog"}, projectIDs(got))
	assert.Equal(t, []int{2, 2, 1, 0}, []int{got[0].Score, got[1].Score, got[2].Score, got[3].Score})
}

func TestRecommendProjects_NoSkillsIsPermutation(t *testing.T) {
	catalog := projectCatalog()
	want := []string{"todo", "blog", "chat", "ml"}

	for seed := uint64(0); seed < 10; seed++ {
		got := New(nil, NewRandom(seed)).RecommendProjects(nil, catalog)
		require.Len(t, got, len(catalog))
		assert.ElementsMatch(t, want, projectIDs(got))
		for _, m := range got {
			assert.Zero(t, m.Score)
		}
	}
}

func TestRecommendProjects_NoSkillsShufflesDeterministicallyPerSeed(t *testing.T) {
	a := New(nil, NewRandom(42)).RecommendProjects(nil, projectCatalog())
	b := New(nil, NewRandom(42)).RecommendProjects(nil, projectCatalog())
	assert.Equal(t, projectIDs(a), projectIDs(b))
}

func TestRecommendProjects_DoesNotMutateCatalog(t *testing.T) {
	catalog := projectCatalog()
	New(nil, NewRandom(5)).RecommendProjects(nil, catalog)
	assert.Equal(t, []string{"todo", "blog", "chat", "ml"}, []string{catalog[0].ID, catalog[1].ID, catalog[2].ID, catalog[3].ID})
}

func TestRecommendProjects_EmptyCatalog(t *testing.T) {
	got := New(nil, NewRandom(1)).RecommendProjects([]string{"Go"}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
