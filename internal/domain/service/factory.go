package service

import (
	"fmt"
	"log/slog"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/domain/translator"
	"smartthings-bridge/internal/observability"
	"smartthings-bridge/internal/ports"
)

type accessoryConstructor func(binding model.AccessoryBinding) Accessory

// Factory builds live accessories for each supported kind, binding a
// status adapter to the device behind the accessory.
type Factory struct {
	constructors map[model.AccessoryKind]accessoryConstructor
}

func NewFactory(client ports.SmartThingsPort, cfg *model.Config, logger *slog.Logger, metrics *observability.Metrics) *Factory {
	return &Factory{
		constructors: map[model.AccessoryKind]accessoryConstructor{
			model.KindAirConditioner: func(b model.AccessoryBinding) Accessory {
				adapter := translator.NewAirConditionerAdapter(&b.Device, client, logger)
				return NewAirConditioner(b, adapter, cfg, logger, metrics)
			},
			model.KindAirPurifier: func(b model.AccessoryBinding) Accessory {
				adapter := translator.NewAirPurifierAdapter(&b.Device, client, logger)
				return NewAirPurifier(b, adapter, cfg, logger, metrics)
			},
		},
	}
}

// Build constructs an unstarted accessory for the binding's kind.
func (f *Factory) Build(binding model.AccessoryBinding) (Accessory, error) {
	build, ok := f.constructors[binding.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported accessory kind %q", binding.Kind)
	}
	return build(binding), nil
}
