package events

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher sends events over Redis pub/sub. internship.published goes
// to the internships:published channel the live feed listens on; every other
// topic goes to "events:<topic>".
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func RedisChannel(topic string) string {
	if topic == TopicInternshipPublished {
		return InternshipsPublishedRedis
	}
	return "events:" + topic
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := encode(topic, payload)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, RedisChannel(topic), body).Err()
}
