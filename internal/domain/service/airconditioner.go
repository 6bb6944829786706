package service

import (
	"context"
	"log/slog"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/domain/translator"
	"smartthings-bridge/internal/observability"
)

// AirConditioner exposes a HeaterCooler accessory backed by a cached
// air conditioner status.
type AirConditioner struct {
	*accessoryBase
	cache    *StatusCache[model.AirConditionerStatus]
	executor *CommandExecutor[model.AirConditionerStatus]
}

func NewAirConditioner(binding model.AccessoryBinding, adapter translator.Adapter[model.AirConditionerStatus], cfg *model.Config, logger *slog.Logger, metrics *observability.Metrics) *AirConditioner {
	logger = logger.With("accessory", binding.DisplayName, "kind", model.KindAirConditioner)
	seed := model.AirConditionerStatus{
		Mode:               model.ModeAuto,
		Active:             false,
		CurrentTemperature: cfg.MinTemp(),
		TargetTemperature:  cfg.MaxTemp(),
	}
	cache := NewStatusCache[model.AirConditionerStatus](seed, adapter, model.KindAirConditioner, logger, metrics)

	a := &AirConditioner{
		accessoryBase: newAccessoryBase(binding, cfg.PollInterval(), cache.Refresh, logger),
		cache:         cache,
		executor:      NewCommandExecutor[model.AirConditionerStatus](adapter, cache, model.KindAirConditioner, logger, metrics),
	}

	temperature := model.RangeProps(cfg.MinTemp(), cfg.MaxTemp(), 1)
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
			Name: model.CharCurrentTemperature,
			Get:  func() any { return a.CurrentTemperature() },
		},
		{
			Name:  model.CharCoolingThresholdTemperature,
			Props: temperature,
			Get:   func() any { return a.TargetTemperature() },
			Set:   a.setTemperature,
		},
		{
			Name:  model.CharHeatingThresholdTemperature,
			Props: temperature,
			Get:   func() any { return a.TargetTemperature() },
			Set:   a.setTemperature,
		},
		{
			Name:  model.CharTargetHeaterCoolerState,
			Props: model.RangeProps(0, 2, 1),
			Enum:  true,
			Get:   func() any { return a.TargetHeaterCoolerState() },
			Set: func(ctx context.Context, v any) error {
				n, err := toInt(v)
				if err != nil {
					return err
				}
				_ = a.SetTargetHeaterCoolerState(ctx, n)
				return nil
			},
		},
		{
			Name: model.CharCurrentHeaterCoolerState,
			Get:  func() any { return a.CurrentHeaterCoolerState() },
		},
	}
	return a
}

func (a *AirConditioner) setTemperature(ctx context.Context, v any) error {
	f, err := toFloat(v)
	if err != nil {
		return err
	}
	_ = a.SetTargetTemperature(ctx, f)
	return nil
}

// Status returns the cached status record.
func (a *AirConditioner) Status() model.AirConditionerStatus {
	return a.cache.Get()
}

// Refresh forces an out-of-schedule status refresh.
func (a *AirConditioner) Refresh(ctx context.Context) error {
	return a.cache.Refresh(ctx)
}

// WriteState exposes the executor state of an axis.
func (a *AirConditioner) WriteState(axis Axis) WriteState {
	return a.executor.State(axis)
}

func (a *AirConditioner) Active() int {
	return activeValue(a.cache.Get().Active)
}

func (a *AirConditioner) SetActive(ctx context.Context, value int) error {
	active := value == model.ActiveActive
	command := translator.CommandOff
	if active {
		command = translator.CommandOn
	}
	return a.executor.Execute(ctx, Write[model.AirConditionerStatus]{
		Axis:       AxisPower,
		Command:    command,
		Capability: translator.CapabilitySwitch,
		Apply:      func(s *model.AirConditionerStatus) { s.Active = active },
	})
}

func (a *AirConditioner) CurrentTemperature() float64 {
	return a.cache.Get().CurrentTemperature
}

func (a *AirConditioner) TargetTemperature() float64 {
	return a.cache.Get().TargetTemperature
}

func (a *AirConditioner) SetTargetTemperature(ctx context.Context, target float64) error {
	return a.executor.Execute(ctx, Write[model.AirConditionerStatus]{
		Axis:       AxisSetting,
		Command:    translator.CommandSetCoolingSetpoint,
		Capability: translator.CapabilityThermostatCoolingSetpoint,
		Arguments:  []any{target},
		Apply:      func(s *model.AirConditionerStatus) { s.TargetTemperature = target },
	})
}

func (a *AirConditioner) TargetHeaterCoolerState() int {
	mode := a.cache.Get().Mode
	state, ok := translator.FromRemoteMode(mode)
	if !ok {
		a.logger.Warn("received unknown heater-cooler state", "mode", mode)
	}
	return state
}

func (a *AirConditioner) SetTargetHeaterCoolerState(ctx context.Context, state int) error {
	mode, ok := translator.ToRemoteMode(state)
	if !ok {
		a.logger.Warn("illegal heater-cooler state", "state", state)
	}
	return a.executor.Execute(ctx, Write[model.AirConditionerStatus]{
		Axis:       AxisSetting,
		Command:    translator.CommandSetAirConditionerMode,
		Capability: translator.CapabilityAirConditionerMode,
		Arguments:  []any{mode},
		Apply:      func(s *model.AirConditionerStatus) { s.Mode = mode },
	})
}

func (a *AirConditioner) CurrentHeaterCoolerState() int {
	if a.cache.Get().Active {
		return model.CurrentHeaterCoolerCooling
	}
	return model.CurrentHeaterCoolerInactive
}
