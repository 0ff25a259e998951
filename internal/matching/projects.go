package matching

import (
	"slices"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

// RecommendProjects orders the whole catalog by how many of each project's
// technologies the student already knows. Nothing is filtered out. With no
// skills the catalog comes back shuffled, every score zero.
func (e *Engine) RecommendProjects(skills []string, catalog []models.Project) []models.ProjectMatch {
	out := make([]models.ProjectMatch, len(catalog))

	if len(skills) == 0 {
		for i, p := range catalog {
			out[i] = models.ProjectMatch{Project: p}
		}
		e.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	set := skillSet(skills)
	for i, p := range catalog {
		out[i] = models.ProjectMatch{Project: p, Score: countMembers(set, p.Technologies)}
	}
	slices.SortStableFunc(out, func(a, b models.ProjectMatch) int {
		return b.Score - a.Score
	})
	return out
}
