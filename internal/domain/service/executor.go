package service

import (
	"context"
	"log/slog"
	"sync"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/observability"
)

// Axis is an independent write dimension of an accessory.
type Axis string

const (
	AxisPower   Axis = "power"
	AxisSetting Axis = "setting"
)

// WriteState is the position of an axis in the write cycle
// Idle -> Writing -> Committed | Reverting -> Idle.
type WriteState int

const (
	StateIdle WriteState = iota
	StateWriting
	StateCommitted
	StateReverting
)

func (s WriteState) String() string {
	switch s {
	case StateWriting:
		return "writing"
	case StateCommitted:
		return "committed"
	case StateReverting:
		return "reverting"
	default:
		return "idle"
	}
}

// Commander issues main-component commands.
type Commander interface {
	ExecuteMainCommand(ctx context.Context, command, capability string, args ...any) error
}

// Write is one user-initiated change: the remote command to issue and the
// optimistic mutation to apply once it succeeds.
type Write[S any] struct {
	Axis       Axis
	Command    string
	Capability string
	Arguments  []any
	Apply      func(*S)
}

// CommandExecutor performs optimistic writes against a StatusCache. A
// failed command is followed by exactly one corrective refresh; the
// refresh supersedes any pending optimistic value.
type CommandExecutor[S any] struct {
	commander Commander
	cache     *StatusCache[S]
	kind      model.AccessoryKind
	logger    *slog.Logger
	metrics   *observability.Metrics

	mu     sync.Mutex
	states map[Axis]WriteState
}

func NewCommandExecutor[S any](commander Commander, cache *StatusCache[S], kind model.AccessoryKind, logger *slog.Logger, metrics *observability.Metrics) *CommandExecutor[S] {
	return &CommandExecutor[S]{
		commander: commander,
		cache:     cache,
		kind:      kind,
		logger:    logger,
		metrics:   metrics,
		states:    make(map[Axis]WriteState),
	}
}

// Execute runs a write to completion. In-flight commands are not
// cancelled with ctx.
func (e *CommandExecutor[S]) Execute(ctx context.Context, w Write[S]) error {
	ctx = context.WithoutCancel(ctx)

	e.transition(w.Axis, StateWriting)
	err := e.commander.ExecuteMainCommand(ctx, w.Command, w.Capability, w.Arguments...)
	e.metrics.Commands.WithLabelValues(string(e.kind), w.Capability, observability.Result(err)).Inc()
	if err != nil {
		e.logger.Error("command failed, resyncing", "capability", w.Capability, "command", w.Command, "error", err)
		e.transition(w.Axis, StateReverting)
		_ = e.cache.Refresh(ctx)
		e.transition(w.Axis, StateIdle)
		return err
	}

	if w.Apply != nil {
		e.cache.Update(w.Apply)
	}
	e.transition(w.Axis, StateCommitted)
	return nil
}

// State returns the current write state of an axis.
func (e *CommandExecutor[S]) State(axis Axis) WriteState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.states[axis]
}

func (e *CommandExecutor[S]) transition(axis Axis, to WriteState) {
	e.mu.Lock()
	from := e.states[axis]
	e.states[axis] = to
	e.mu.Unlock()
	e.logger.Debug("write state", "axis", axis, "from", from, "to", to)
}
