package scraper

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/services"
)

// CatalogIngestor writes postings straight into the catalog. A posting that
// fails is logged and skipped.
type CatalogIngestor struct {
	Catalog services.CatalogService
	Logger  *logrus.Logger
}

func (c CatalogIngestor) Ingest(ctx context.Context, postings []models.Internship) (int, error) {
	n := 0
	for _, p := range postings {
		if _, err := c.Catalog.IngestInternship(ctx, p); err != nil {
			if c.Logger != nil {
				c.Logger.WithFields(logrus.Fields{"source": p.Source, "external_id": p.ExternalID}).WithError(err).Warn("posting rejected")
			}
			continue
		}
		n++
	}
	return n, ctx.Err()
}
