package service

import (
	"context"
	"log/slog"
	"sync"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/observability"
)

// StatusSource fetches the current status record of a device.
type StatusSource[S any] interface {
	GetStatus(ctx context.Context) (S, error)
}

// StatusCache owns the status record of one accessory. Reads never touch
// the network. A refresh replaces the record wholesale and a failed
// refresh leaves it untouched.
//
// Refreshes and optimistic updates are not ordered against each other: a
// poll that started before a command committed can overwrite the
// committed value with the older remote state. The next poll converges.
type StatusCache[S any] struct {
	source  StatusSource[S]
	kind    model.AccessoryKind
	logger  *slog.Logger
	metrics *observability.Metrics

	mu     sync.RWMutex
	record S
}

func NewStatusCache[S any](seed S, source StatusSource[S], kind model.AccessoryKind, logger *slog.Logger, metrics *observability.Metrics) *StatusCache[S] {
	return &StatusCache[S]{
		source:  source,
		kind:    kind,
		logger:  logger,
		metrics: metrics,
		record:  seed,
	}
}

// Get returns a copy of the cached record.
func (c *StatusCache[S]) Get() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.record
}

// Refresh fetches the remote status and replaces the record on success.
func (c *StatusCache[S]) Refresh(ctx context.Context) error {
	status, err := c.source.GetStatus(ctx)
	c.metrics.StatusRefreshes.WithLabelValues(string(c.kind), observability.Result(err)).Inc()
	if err != nil {
		c.logger.Error("error while fetching device status", "error", err)
		return err
	}
	c.mu.Lock()
	c.record = status
	c.mu.Unlock()
	return nil
}

// Update mutates the record in place.
func (c *StatusCache[S]) Update(apply func(*S)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	apply(&c.record)
}
