package workers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/models"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/services"
	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

const (
	DefaultIngestStream = "internships:ingest"
	DefaultIngestGroup  = "ingest-workers"
)

// IngestWorkerPool drains the ingest stream into the catalog. Each message
// carries one posting as JSON under the "posting" field.
type IngestWorkerPool struct {
	Redis      *redis.Client
	Catalog    services.CatalogService
	NumWorkers int

	Logger *logrus.Logger

	Stream         string
	Group          string
	ConsumerPrefix string

	// RetryInterval is how often a consumer re-reads postings it left
	// pending because the store was unavailable.
	RetryInterval time.Duration
}

func (p *IngestWorkerPool) Start(ctx context.Context) error {
	if p.Redis == nil || p.Catalog == nil {
		return errors.New("IngestWorkerPool missing dependency: Redis/Catalog must be set")
	}
	if p.Stream == "" {
		p.Stream = DefaultIngestStream
	}
	if p.Group == "" {
		p.Group = DefaultIngestGroup
	}
	if p.ConsumerPrefix == "" {
		p.ConsumerPrefix = "c"
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.Logger == nil {
		p.Logger = logrus.New()
	}
	if p.RetryInterval <= 0 {
		p.RetryInterval = 30 * time.Second
	}

	_ = p.Redis.XGroupCreateMkStream(ctx, p.Stream, p.Group, "0").Err() // ignore BUSYGROUP

	for i := 0; i < p.NumWorkers; i++ {
		consumer := p.ConsumerPrefix + "-" + strconv.Itoa(i+1)
		go p.runConsumer(ctx, consumer)
	}
	return nil
}

func (p *IngestWorkerPool) runConsumer(ctx context.Context, consumer string) {
	lastRetry := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if time.Since(lastRetry) >= p.RetryInterval {
			p.retryPending(ctx, consumer)
			lastRetry = time.Now()
		}

		res, err := p.Redis.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    p.Group,
			Consumer: consumer,
			Streams:  []string{p.Stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}
		p.process(ctx, res)
	}
}

// retryPending replays the consumer's own unacknowledged entries.
func (p *IngestWorkerPool) retryPending(ctx context.Context, consumer string) {
	res, err := p.Redis.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    p.Group,
		Consumer: consumer,
		Streams:  []string{p.Stream, "0"},
		Count:    100,
		Block:    -1,
	}).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.Logger.WithError(err).Warn("pending read failed")
		}
		return
	}
	p.process(ctx, res)
}

func (p *IngestWorkerPool) process(ctx context.Context, res []redis.XStream) {
	for _, stream := range res {
		for _, msg := range stream.Messages {
			if !p.handleMsg(ctx, msg) {
				continue
			}
			if err := p.Redis.XAck(ctx, p.Stream, p.Group, msg.ID).Err(); err != nil {
				p.Logger.WithField("redis_id", msg.ID).WithError(err).Warn("ack failed")
			}
		}
	}
}

// handleMsg reports whether msg is done with. Postings that failed because
// the store was unavailable stay pending for a later retry.
func (p *IngestWorkerPool) handleMsg(ctx context.Context, msg redis.XMessage) bool {
	log := p.Logger.WithField("redis_id", msg.ID)

	in, err := decodePosting(msg.Values)
	if err != nil {
		log.WithError(err).Warn("dropping undecodable posting")
		return true
	}
	log = log.WithFields(logrus.Fields{"source": in.Source, "external_id": in.ExternalID})

	saved, err := p.Catalog.IngestInternship(ctx, in)
	if err != nil {
		if utils.IsCode(err, utils.CodeUnavailable) {
			log.WithError(err).Warn("store unavailable, leaving posting pending")
			return false
		}
		log.WithError(err).Error("ingest failed")
		return true
	}
	log.WithField("internship_id", saved.ID).Debug("posting ingested")
	return true
}

func decodePosting(values map[string]any) (models.Internship, error) {
	var in models.Internship
	raw, _ := values["posting"].(string)
	if raw == "" {
		return in, errors.New("missing posting field")
	}
	err := json.Unmarshal([]byte(raw), &in)
	return in, err
}

// StreamIngestor queues postings on the ingest stream instead of writing them
// directly, so scraping and persistence can scale apart.
type StreamIngestor struct {
	Redis  *redis.Client
	Stream string
}

func (s StreamIngestor) Ingest(ctx context.Context, postings []models.Internship) (int, error) {
	stream := s.Stream
	if stream == "" {
		stream = DefaultIngestStream
	}
	n := 0
	for _, in := range postings {
		b, err := json.Marshal(in)
		if err != nil {
			return n, err
		}
		if err := s.Redis.XAdd(ctx, &redis.XAddArgs{
			Stream: stream,
			Values: map[string]any{"posting": string(b)},
		}).Err(); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
