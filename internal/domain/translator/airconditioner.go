package translator

import (
	"context"
	"log/slog"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

// Air conditioner capabilities and commands.
const (
	CapabilitySwitch                    = "switch"
	CapabilityAirConditionerMode        = "airConditionerMode"
	CapabilityThermostatCoolingSetpoint = "thermostatCoolingSetpoint"
	CapabilityTemperatureMeasurement    = "temperatureMeasurement"

	CommandOn                    = "on"
	CommandOff                   = "off"
	CommandSetCoolingSetpoint    = "setCoolingSetpoint"
	CommandSetAirConditionerMode = "setAirConditionerMode"
)

type AirConditionerAdapter struct {
	deviceAdapter
}

func NewAirConditionerAdapter(device *model.RemoteDevice, client ports.SmartThingsPort, logger *slog.Logger) *AirConditionerAdapter {
	return &AirConditionerAdapter{deviceAdapter: newDeviceAdapter(device, client, logger)}
}

func (a *AirConditionerAdapter) GetStatus(ctx context.Context) (model.AirConditionerStatus, error) {
	main, err := a.mainComponent(ctx)
	if err != nil {
		return model.AirConditionerStatus{}, err
	}
	return model.AirConditionerStatus{
		Active:             stringValue(main.Value(CapabilitySwitch, "switch")) == "on",
		Mode:               stringValue(main.Value(CapabilityAirConditionerMode, "airConditionerMode")),
		TargetTemperature:  floatValue(main.Value(CapabilityThermostatCoolingSetpoint, "coolingSetpoint")),
		CurrentTemperature: floatValue(main.Value(CapabilityTemperatureMeasurement, "temperature")),
	}, nil
}
