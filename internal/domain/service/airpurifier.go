package service

import (
	"context"
	"log/slog"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/domain/translator"
	"smartthings-bridge/internal/observability"
)

// AirPurifier exposes AirPurifier and AirQualitySensor services backed by
// a cached purifier status.
type AirPurifier struct {
	*accessoryBase
	cache    *StatusCache[model.AirPurifierStatus]
	executor *CommandExecutor[model.AirPurifierStatus]
}

func NewAirPurifier(binding model.AccessoryBinding, adapter translator.Adapter[model.AirPurifierStatus], cfg *model.Config, logger *slog.Logger, metrics *observability.Metrics) *AirPurifier {
	logger = logger.With("accessory", binding.DisplayName, "kind", model.KindAirPurifier)
	seed := model.AirPurifierStatus{
		Active:     false,
		AirQuality: 0,
		Mode:       model.FanModeSmart,
	}
	cache := NewStatusCache[model.AirPurifierStatus](seed, adapter, model.KindAirPurifier, logger, metrics)

	a := &AirPurifier{
		accessoryBase: newAccessoryBase(binding, cfg.PollInterval(), cache.Refresh, logger),
		cache:         cache,
		executor:      NewCommandExecutor[model.AirPurifierStatus](adapter, cache, model.KindAirPurifier, logger, metrics),
	}

	a.chars = []Characteristic{
		{
			Name:  model.CharActive,
			Props: model.RangeProps(0, 1, 1),
			Get:   func() any { return a.Active() },
			Set: func(ctx context.Context, v any) error {
				n, err := toInt(v)
				if err != nil {
					return err
				}
				_ = a.SetActive(ctx, n)
				return nil
			},
		},
		{
			Name: model.CharCurrentAirPurifierState,
			Get:  func() any { return a.CurrentAirPurifierState() },
		},
		{
			Name:  model.CharTargetAirPurifierState,
			Props: model.RangeProps(0, 1, 1),
			Get:   func() any { return a.TargetAirPurifierState() },
			Set: func(_ context.Context, v any) error {
				n, err := toInt(v)
				if err != nil {
					return err
				}
				a.SetTargetAirPurifierState(n)
				return nil
			},
		},
		{
			Name:  model.CharAirQuality,
			Props: model.RangeProps(0, 5, 1),
			Get:   func() any { return a.AirQuality() },
		},
	}
	return a
}

func (a *AirPurifier) Status() model.AirPurifierStatus {
	return a.cache.Get()
}

func (a *AirPurifier) Refresh(ctx context.Context) error {
	return a.cache.Refresh(ctx)
}

func (a *AirPurifier) WriteState(axis Axis) WriteState {
	return a.executor.State(axis)
}

func (a *AirPurifier) Active() int {
	return activeValue(a.cache.Get().Active)
}

func (a *AirPurifier) SetActive(ctx context.Context, value int) error {
	active := value == model.ActiveActive
	command := translator.CommandOff
	if active {
		command = translator.CommandOn
	}
	return a.executor.Execute(ctx, Write[model.AirPurifierStatus]{
		Axis:       AxisPower,
		Command:    command,
		Capability: translator.CapabilitySwitch,
		Apply:      func(s *model.AirPurifierStatus) { s.Active = active },
	})
}

func (a *AirPurifier) CurrentAirPurifierState() int {
	if a.cache.Get().Active {
		return model.CurrentAirPurifierPurifying
	}
	return model.CurrentAirPurifierInactive
}

func (a *AirPurifier) TargetAirPurifierState() int {
	if a.cache.Get().Mode == model.FanModeSmart {
		return model.TargetAirPurifierAuto
	}
	return model.TargetAirPurifierManual
}

// SetTargetAirPurifierState accepts the value without commanding the
// device; the purifier's fan mode is not remotely switched.
func (a *AirPurifier) SetTargetAirPurifierState(state int) {
	a.logger.Debug("ignoring target air purifier state", "state", state)
}

func (a *AirPurifier) AirQuality() int {
	return translator.AirQualityLevel(a.cache.Get().AirQuality)
}
