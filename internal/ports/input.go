package ports

import (
	"context"
	"smartthings-bridge/internal/domain/model"
)

// BridgePort is what the local accessory surface needs from the bridge.
// Reads are served from cache and never block on the device API.
type BridgePort interface {
	Accessories() []model.AccessorySnapshot
	Accessory(id string) (model.AccessorySnapshot, error)
	ReadCharacteristic(id, name string) (any, error)
	WriteCharacteristic(ctx context.Context, id, name string, value any) error
}
