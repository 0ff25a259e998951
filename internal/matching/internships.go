package matching

import (
	"math"
	"slices"
	"strings"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

// MatchInternships scores every internship against skills, drops those
// scoring zero and orders the rest by score, highest first. Equal scores keep
// catalog order.
func (e *Engine) MatchInternships(skills []string, catalog []models.Internship) []models.InternshipMatch {
	out := make([]models.InternshipMatch, 0, len(catalog))

	switch e.mode {
	case ModeFuzzy:
		lowered := lowerNonEmpty(skills)
		for _, in := range catalog {
			base := fuzzyPercent(lowered, in.RequiredSkills)
			if base == 0 {
				continue
			}
			score := base + e.rnd.IntN(e.maxBonus+1)
			if score > 100 {
				score = 100
			}
			out = append(out, models.InternshipMatch{Internship: in, MatchScore: score})
		}
	default:
		set := skillSet(skills)
		for _, in := range catalog {
			score := countMembers(set, in.RequiredSkills)
			if score == 0 {
				continue
			}
			out = append(out, models.InternshipMatch{Internship: in, MatchScore: score})
		}
	}

	slices.SortStableFunc(out, func(a, b models.InternshipMatch) int {
		return b.MatchScore - a.MatchScore
	})
	return out
}

func lowerNonEmpty(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// fuzzyPercent is the share of required skills, 0..100, that overlap some
// student skill by substring containment in either direction.
func fuzzyPercent(lowered []string, required []string) int {
	if len(required) == 0 || len(lowered) == 0 {
		return 0
	}
	matched := 0
	for _, r := range required {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" {
			continue
		}
		for _, s := range lowered {
			if strings.Contains(s, r) || strings.Contains(r, s) {
				matched++
				break
			}
		}
	}
	return int(math.Round(100 * float64(matched) / float64(len(required))))
}
