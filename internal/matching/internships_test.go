package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

func internship(id string, skills ...string) models.Internship {
	return models.Internship{ID: id, Title: "Intern " + id, RequiredSkills: skills}
}

func TestMatchInternships_ExactScenario(t *testing.T) {
	e := New(nil, NewRandom(1))
	catalog := []models.Internship{
		internship("fe", "React", "JavaScript", "CSS", "HTML"),
		internship("be", "Node.js", "MongoDB"),
	}

	got := e.MatchInternships([]string{"React", "JavaScript"}, catalog)

	require.Len(t, got, 1)
	assert.Equal(t, "fe", got[0].ID)
	assert.Equal(t, 2, got[0].MatchScore)
}

func TestMatchInternships_SortedAndStable(t *testing.T) {
	e := New(nil, NewRandom(1))
	catalog := []models.Internship{
		internship("a", "Go"),
		internship("b", "Go", "SQL", "Docker"),
		internship("c", "SQL"),
		internship("d", "Go", "SQL"),
		internship("e", "Rust"),
		internship("f"),
	}

	got := e.MatchInternships([]string{"Go", "SQL", "Docker"}, catalog)

	ids := make([]string, len(got))
	for i, m := range got {
		ids[i] = m.ID
		assert.Positive(t, m.MatchScore)
		if i > 0 {
			assert.LessOrEqual(t, m.MatchScore, got[i-1].MatchScore)
		}
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

func TestMatchInternships_ExactIsCaseSensitive(t *testing.T) {
	e := New(nil, NewRandom(1))
	got := e.MatchInternships([]string{"react"}, []models.Internship{internship("fe", "React")})
	assert.Empty(t, got)
}

func TestMatchInternships_DuplicateRequirementsCountEachTime(t *testing.T) {
	e := New(nil, NewRandom(1))
	got := e.MatchInternships([]string{"Go"}, []models.Internship{internship("x", "Go", "Go")})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].MatchScore)
}

func TestMatchInternships_NoSkills(t *testing.T) {
	e := New(nil, NewRandom(1))
	got := e.MatchInternships(nil, []models.Internship{internship("fe", "React"), internship("be", "Go")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchInternships_ExactIsIdempotent(t *testing.T) {
	e := New(nil, NewRandom(7))
	catalog := []models.Internship{internship("a", "Go", "SQL"), internship("b", "SQL")}
	skills := []string{"SQL", "Go"}

	assert.Equal(t, e.MatchInternships(skills, catalog), e.MatchInternships(skills, catalog))
}

func TestMatchInternships_Fuzzy(t *testing.T) {
	e := New(nil, NewRandom(3), WithMode(ModeFuzzy), WithMaxBonus(10))
	catalog := []models.Internship{
		internship("fe", "React", "JavaScript", "CSS", "HTML"),
		internship("be", "Node.js", "MongoDB"),
		internship("none"),
	}

	got := e.MatchInternships([]string{"react native", "javascript", ""}, catalog)

	require.Len(t, got, 1)
	assert.Equal(t, "fe", got[0].ID)
	// two of four requirements overlap: base 50, bonus 0..10
	assert.GreaterOrEqual(t, got[0].MatchScore, 50)
	assert.LessOrEqual(t, got[0].MatchScore, 60)
}

func TestMatchInternships_FuzzyCapsAtHundred(t *testing.T) {
	e := New(nil, NewRandom(3), WithMode(ModeFuzzy), WithMaxBonus(50))
	catalog := []models.Internship{internship("go", "Go")}

	for i := 0; i < 20; i++ {
		got := e.MatchInternships([]string{"golang"}, catalog)
		require.Len(t, got, 1)
		assert.Equal(t, 100, got[0].MatchScore)
	}
}

func TestMatchInternships_FuzzySameSetAcrossCalls(t *testing.T) {
	e := New(nil, NewRandom(11), WithMode(ModeFuzzy))
	catalog := []models.Internship{
		internship("a", "Python", "SQL"),
		internship("b", "Docker"),
		internship("c", "Rust"),
	}
	ids := func(ms []models.InternshipMatch) []string {
		out := []string{}
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	first := ids(e.MatchInternships([]string{"python", "docker"}, catalog))
	second := ids(e.MatchInternships([]string{"python", "docker"}, catalog))
	assert.ElementsMatch(t, first, second)
	assert.ElementsMatch(t, []string{"a", "b"}, first)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeExact, m)

	m, err = ParseMode(" Fuzzy ")
	require.NoError(t, err)
	assert.Equal(t, ModeFuzzy, m)

	_, err = ParseMode("semantic")
	assert.Error(t, err)
}
