package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
)

// Ingestor accepts scraped postings. It returns how many were accepted.
type Ingestor interface {
	Ingest(ctx context.Context, postings []models.Internship) (int, error)
}

type Scheduler struct {
	cron   *cron.Cron
	feed   Feed
	ingest Ingestor
	log    *logrus.Logger
}

// NewScheduler registers a scrape run on the standard five-field cron spec.
func NewScheduler(spec string, feed Feed, ingest Ingestor, log *logrus.Logger) (*Scheduler, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Scheduler{cron: cron.New(), feed: feed, ingest: ingest, log: log}
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		_, _ = s.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("invalid scraper schedule %q: %w", spec, err)
	}
	return s, nil
}

// RunOnce fetches the feed and ingests what it returned.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	log := s.log.WithField("source", s.feed.Source())
	start := time.Now()

	postings, err := s.feed.Fetch(ctx)
	if err != nil {
		log.WithError(err).Error("feed fetch failed")
		return 0, err
	}
	n, err := s.ingest.Ingest(ctx, postings)
	if err != nil {
		log.WithError(err).Error("ingest failed")
		return n, err
	}
	log.WithFields(logrus.Fields{
		"fetched":     len(postings),
		"ingested":    n,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("scrape completed")
	return n, nil
}

// Start runs the schedule until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.cron.Start()
	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
	}()
}
