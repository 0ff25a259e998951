package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService(t *testing.T) {
	ok := Func{Label: "memory", Fn: func(context.Context) error { return nil }}
	down := Func{Label: "redis", Fn: func(context.Context) error { return errors.New("connection refused") }}

	assert.NoError(t, NewService(ok).Ready(context.Background()))

	s := NewService(ok, down)
	err := s.Ready(context.Background())
	assert.EqualError(t, err, "redis: connection refused")

	report, healthy := s.Report(context.Background())
	assert.False(t, healthy)
	assert.Equal(t, map[string]string{"memory": "ok", "redis": "connection refused"}, report)
}
