// Package scraper pulls internship postings from a feed on a schedule and
// hands them to an Ingestor. Feeds are JSON documents of the form
//
//	{"postings": [{"id": "...", "title": "...", "company": "...",
//	  "location": "...", "stipend": "...", "duration": "...",
//	  "skills": ["..."], "description": "...", "postedAt": "RFC3339"}]}
package scraper

import (
	"context"
	_ "embed"
	"errors"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

type Feed interface {
	// Source names the feed; it becomes Internship.Source.
	Source() string
	Fetch(ctx context.Context) ([]models.Internship, error)
}

var ErrMalformedFeed = errors.New("malformed feed document")

// ParsePostings decodes a feed document. Postings without an id or title are
// skipped.
func ParsePostings(source string, body []byte) ([]models.Internship, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedFeed
	}
	postings := gjson.GetBytes(body, "postings")
	if !postings.IsArray() {
		return nil, ErrMalformedFeed
	}

	out := []models.Internship{}
	postings.ForEach(func(_, p gjson.Result) bool {
		id := strings.TrimSpace(p.Get("id").String())
		title := strings.TrimSpace(p.Get("title").String())
		if id == "" || title == "" {
			return true
		}
		skills := []string{}
		for _, s := range p.Get("skills").Array() {
			if v := strings.TrimSpace(s.String()); v != "" {
				skills = append(skills, v)
			}
		}
		in := models.Internship{
			Title:          title,
			Company:        p.Get("company").String(),
			Location:       p.Get("location").String(),
			Stipend:        p.Get("stipend").String(),
			Duration:       p.Get("duration").String(),
			RequiredSkills: skills,
			Description:    p.Get("description").String(),
			Source:         source,
			ExternalID:     id,
		}
		if ts, err := time.Parse(time.RFC3339, p.Get("postedAt").String()); err == nil {
			in.PostedAt = ts.UTC()
		}
		out = append(out, in)
		return true
	})
	return out, nil
}

//go:embed mock_postings.json
var mockPostings []byte

// MockFeed serves a fixed set of postings bundled with the binary.
type MockFeed struct{}

func (MockFeed) Source() string { return "mock" }

func (f MockFeed) Fetch(ctx context.Context) ([]models.Internship, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParsePostings(f.Source(), mockPostings)
}
