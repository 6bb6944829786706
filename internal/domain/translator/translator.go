package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

// Adapter translates between a device's remote status document and the
// typed status record S of its accessory kind.
type Adapter[S any] interface {
	GetStatus(ctx context.Context) (S, error)
	ExecuteMainCommand(ctx context.Context, command, capability string, args ...any) error
}

// deviceAdapter carries what every kind shares: fetching the main
// component and issuing main-component commands.
type deviceAdapter struct {
	deviceID string
	client   ports.SmartThingsPort
	logger   *slog.Logger
}

func newDeviceAdapter(device *model.RemoteDevice, client ports.SmartThingsPort, logger *slog.Logger) deviceAdapter {
	return deviceAdapter{
		deviceID: device.DeviceID,
		client:   client,
		logger:   logger.With("device_id", device.DeviceID),
	}
}

func (a *deviceAdapter) mainComponent(ctx context.Context) (model.ComponentStatus, error) {
	if a.deviceID == "" {
		return nil, model.ErrMissingDeviceID
	}
	a.logger.Debug("get status for device")
	status, err := a.client.GetStatus(ctx, a.deviceID)
	if err != nil {
		return nil, fmt.Errorf("fetching status of %s: %w", a.deviceID, err)
	}
	if status == nil || status.Components == nil {
		return nil, model.ErrNoComponents
	}
	return status.Components[model.MainComponent], nil
}

// ExecuteMainCommand sends one command to the main component. Any failed
// result fails the whole call.
func (a *deviceAdapter) ExecuteMainCommand(ctx context.Context, command, capability string, args ...any) error {
	if a.deviceID == "" {
		return model.ErrMissingDeviceID
	}
	a.logger.Debug("executing command", "capability", capability, "command", command)
	results, err := a.client.ExecuteCommand(ctx, a.deviceID, model.Command{
		Component:  model.MainComponent,
		Capability: capability,
		Command:    command,
		Arguments:  args,
	})
	if err != nil {
		return fmt.Errorf("executing %s/%s: %w", capability, command, err)
	}
	for _, r := range results {
		if r.Status == model.CommandStatusFailed {
			return &model.CommandFailedError{
				DeviceID:   a.deviceID,
				Capability: capability,
				Command:    command,
				Status:     r.Status,
			}
		}
		a.logger.Debug("command result", "capability", capability, "command", command, "status", r.Status)
	}
	return nil
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func floatValue(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, _ := n.Float64()
		return f
	default:
		return 0
	}
}
