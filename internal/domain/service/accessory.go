package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"smartthings-bridge/internal/domain/model"
)

// Characteristic is a readable, optionally writable accessory property.
// Set is nil for read-only characteristics.
// Enum characteristics accept out-of-range writes and leave them to the
// setter to resolve.
type Characteristic struct {
	Name  string
	Props model.Props
	Enum  bool
	Get   func() any
	Set   func(ctx context.Context, value any) error
}

// Accessory is a live bridged device.
type Accessory interface {
	Binding() model.AccessoryBinding
	Rebind(binding model.AccessoryBinding)
	Info() model.AccessoryInfo
	Characteristics() []Characteristic
	Start(ctx context.Context)
	Stop()
}

// accessoryBase holds what every accessory kind shares: identity, the
// poller that keeps its cache fresh, and its characteristic table.
type accessoryBase struct {
	mu      sync.RWMutex
	binding model.AccessoryBinding

	logger *slog.Logger
	poller *Poller
	chars  []Characteristic
}

func newAccessoryBase(binding model.AccessoryBinding, interval time.Duration, refresh func(context.Context) error, logger *slog.Logger) *accessoryBase {
	logger.Info("update status periodically", "interval", interval)
	return &accessoryBase{
		binding: binding,
		logger:  logger,
		poller: NewPoller(interval, func(ctx context.Context) {
			_ = refresh(ctx)
		}),
	}
}

func (a *accessoryBase) Binding() model.AccessoryBinding {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.binding
}

// Rebind swaps in a fresher device snapshot. The cached status and the
// running poller are kept.
func (a *accessoryBase) Rebind(binding model.AccessoryBinding) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.binding = binding
}

func (a *accessoryBase) Info() model.AccessoryInfo {
	b := a.Binding()
	return b.Device.Info()
}

func (a *accessoryBase) Characteristics() []Characteristic { return a.chars }
func (a *accessoryBase) Start(ctx context.Context)         { a.poller.Start(ctx) }
func (a *accessoryBase) Stop()                             { a.poller.Stop() }

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidValue, v)
	}
}

func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %v is not an integer", model.ErrInvalidValue, v)
	}
	return int(f), nil
}

func activeValue(active bool) int {
	if active {
		return model.ActiveActive
	}
	return model.ActiveInactive
}
