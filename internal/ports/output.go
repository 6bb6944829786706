package ports

import (
	"context"
	"smartthings-bridge/internal/domain/model"
)

// SmartThingsPort is the authenticated device API.
type SmartThingsPort interface {
	ListDevices(ctx context.Context) ([]model.RemoteDevice, error)
	GetStatus(ctx context.Context, deviceID string) (*model.DeviceStatus, error)
	ExecuteCommand(ctx context.Context, deviceID string, cmd model.Command) ([]model.CommandResult, error)
}

// AccessoryRuntime owns accessory lifecycle and persists accessory identity
// across restarts.
type AccessoryRuntime interface {
	RegisterAccessories(ctx context.Context, bindings ...model.AccessoryBinding) error
	Load(ctx context.Context) ([]model.AccessoryBinding, error)
}
