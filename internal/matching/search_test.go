package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

func searchCatalog() []models.Internship {
	return []models.Internship{
		{ID: "1", Title: "Frontend Intern", Company: "Acme", Location: "Bengaluru", Stipend: "15000/month", Description: "Build UIs"},
		{ID: "2", Title: "Data Intern", Company: "DataCorp", Location: "Remote", Stipend: "Unpaid", Description: "Dashboards with Python"},
		{ID: "3", Title: "Backend Intern", Company: "acme labs", Location: "Pune", Stipend: "10000/month", Description: "APIs"},
	}
}

func searchIDs(in []models.Internship) []string {
	out := []string{}
	for _, i := range in {
		out = append(out, i.ID)
	}
	return out
}

func TestSearchInternships(t *testing.T) {
	tests := []struct {
		name string
		q    SearchQuery
		want []string
	}{
		{"empty query matches all", SearchQuery{}, []string{"1", "2", "3"}},
		{"title", SearchQuery{Text: "frontend"}, []string{"1"}},
		{"company any case", SearchQuery{Text: "ACME"}, []string{"1", "3"}},
		{"description", SearchQuery{Text: "python"}, []string{"2"}},
		{"location filter", SearchQuery{Text: "intern", Location: "remote"}, []string{"2"}},
		{"stipend filter", SearchQuery{Stipend: "/month"}, []string{"1", "3"}},
		{"combined", SearchQuery{Text: "acme", Location: "pune", Stipend: "10000"}, []string{"3"}},
		{"no match", SearchQuery{Text: "blockchain"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchIDs(SearchInternships(searchCatalog(), tt.q)))
		})
	}
}
