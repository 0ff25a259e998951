// Package events publishes domain events to whatever sinks are configured.
// Callers log publication failures and carry on.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

const (
	TopicStudentOnboarded     = "student.onboarded"
	TopicStudentUpdated       = "student.updated"
	TopicInternshipPublished  = "internship.published"
	InternshipsPublishedRedis = "internships:published"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

// Envelope is the wire format shared by every sink.
type Envelope struct {
	Topic      string          `json:"topic"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

func encode(topic string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Topic: topic, OccurredAt: time.Now().UTC(), Payload: raw})
}

// Decode parses a message produced by any Publisher in this package.
func Decode(b []byte) (Envelope, error) {
	var e Envelope
	err := json.Unmarshal(b, &e)
	return e, err
}

type noop struct{}

// Noop discards every event.
func Noop() Publisher { return noop{} }

func (noop) Publish(context.Context, string, any) error { return nil }

type fanout []Publisher

// Fanout publishes to each of pubs in turn. Every sink is attempted; the
// errors are joined.
func Fanout(pubs ...Publisher) Publisher {
	out := make(fanout, 0, len(pubs))
	for _, p := range pubs {
		if p != nil {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return Noop()
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (f fanout) Publish(ctx context.Context, topic string, payload any) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, topic, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
