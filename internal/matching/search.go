package matching

import (
	"strings"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

type SearchQuery struct {
	Text     string
	Location string
	Stipend  string
}

// SearchInternships keeps internships whose title, company or description
// contains q.Text, ignoring case. Location and Stipend narrow the result by
// containment when set. Catalog order is preserved.
func SearchInternships(catalog []models.Internship, q SearchQuery) []models.Internship {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	loc := strings.ToLower(strings.TrimSpace(q.Location))
	stipend := strings.ToLower(strings.TrimSpace(q.Stipend))

	out := make([]models.Internship, 0, len(catalog))
	for _, in := range catalog {
		if text != "" &&
			!strings.Contains(strings.ToLower(in.Title), text) &&
			!strings.Contains(strings.ToLower(in.Company), text) &&
			!strings.Contains(strings.ToLower(in.Description), text) {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(in.Location), loc) {
			continue
		}
		if stipend != "" && !strings.Contains(strings.ToLower(in.Stipend), stipend) {
			continue
		}
		out = append(out, in)
	}
	return out
}
