package health

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"
)

// Checker is one dependency probe.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type Service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// Ready returns the first failing dependency.
func (s *Service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

// Report probes every dependency and maps each name to "ok" or the error.
func (s *Service) Report(ctx context.Context) (map[string]string, bool) {
	out := make(map[string]string, len(s.checkers))
	healthy := true
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			out[ch.Name()] = err.Error()
			healthy = false
			continue
		}
		out[ch.Name()] = "ok"
	}
	return out, healthy
}

const pingTimeout = time.Second

type gormChecker struct{ db *gorm.DB }

func Postgres(db *gorm.DB) Checker { return gormChecker{db: db} }

func (gormChecker) Name() string { return "postgres" }

func (c gormChecker) Check(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

type redisChecker struct{ rdb *redis.Client }

func Redis(rdb *redis.Client) Checker { return redisChecker{rdb: rdb} }

func (redisChecker) Name() string { return "redis" }

func (c redisChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

type mongoChecker struct{ client *mongo.Client }

func Mongo(client *mongo.Client) Checker { return mongoChecker{client: client} }

func (mongoChecker) Name() string { return "mongo" }

func (c mongoChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.client.Ping(ctx, readpref.Primary())
}

// Func adapts a plain function into a Checker.
type Func struct {
	Label string
	Fn    func(ctx context.Context) error
}

func (f Func) Name() string                    { return f.Label }
func (f Func) Check(ctx context.Context) error { return f.Fn(ctx) }
