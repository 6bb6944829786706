package translator

import (
	"context"
	"log/slog"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

const (
	CapabilityAirQualitySensor = "airQualitySensor"
	CapabilityFanMode          = "fanMode"
)

type AirPurifierAdapter struct {
	deviceAdapter
}

func NewAirPurifierAdapter(device *model.RemoteDevice, client ports.SmartThingsPort, logger *slog.Logger) *AirPurifierAdapter {
	return &AirPurifierAdapter{deviceAdapter: newDeviceAdapter(device, client, logger)}
}

func (a *AirPurifierAdapter) GetStatus(ctx context.Context) (model.AirPurifierStatus, error) {
	main, err := a.mainComponent(ctx)
	if err != nil {
		return model.AirPurifierStatus{}, err
	}
	return model.AirPurifierStatus{
		Active:     stringValue(main.Value(CapabilitySwitch, "switch")) == "on",
		AirQuality: floatValue(main.Value(CapabilityAirQualitySensor, "airQuality")),
		Mode:       stringValue(main.Value(CapabilityFanMode, "fanMode")),
	}, nil
}
