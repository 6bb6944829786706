package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"smartthings-bridge/internal/domain/classifier"
	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/observability"
	"smartthings-bridge/internal/ports"
)

// accessoryNamespace seeds name-based accessory ids so an accessory keeps
// its identity for a given device id.
var accessoryNamespace = uuid.MustParse("6f3c2a1e-8d4b-5c7f-9e2a-1b3d5f7a9c0e")

var _ ports.BridgePort = (*Platform)(nil)

// Discovery outcomes.
const (
	outcomeRegistered = "registered"
	outcomeRestored   = "restored"
	outcomeSkipped    = "skipped"
	outcomeFailed     = "failed"
)

// Platform discovers SmartThings devices, classifies them, and keeps one
// live accessory per supported device.
type Platform struct {
	client  ports.SmartThingsPort
	runtime ports.AccessoryRuntime
	factory *Factory
	cfg     *model.Config
	logger  *slog.Logger
	metrics *observability.Metrics

	mu          sync.RWMutex
	restored    []model.AccessoryBinding
	accessories map[string]Accessory
}

func NewPlatform(client ports.SmartThingsPort, runtime ports.AccessoryRuntime, cfg *model.Config, logger *slog.Logger, metrics *observability.Metrics) *Platform {
	return &Platform{
		client:      client,
		runtime:     runtime,
		factory:     NewFactory(client, cfg, logger, metrics),
		cfg:         cfg,
		logger:      logger.With("component", "platform"),
		metrics:     metrics,
		accessories: make(map[string]Accessory),
	}
}

// ConfigureAccessory records an accessory restored by the runtime so that
// discovery reuses its identity.
func (p *Platform) ConfigureAccessory(binding model.AccessoryBinding) {
	p.logger.Info("loading accessory from cache", "name", binding.DisplayName)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restored = append(p.restored, binding)
}

// DidFinishLaunching runs the first discovery pass and, when configured,
// periodic rediscovery until ctx ends. It reports false when no token is
// configured, in which case discovery never starts.
func (p *Platform) DidFinishLaunching(ctx context.Context) bool {
	if strings.TrimSpace(p.cfg.Token) == "" {
		p.logger.Warn("please configure your API token and restart the bridge")
		return false
	}

	_ = p.Discover(ctx)

	if interval := p.cfg.RediscoveryInterval(); interval > 0 {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					_ = p.Discover(ctx)
				}
			}
		}()
	}
	return true
}

// Discover lists devices and bridges every supported one. Per-device
// failures are logged and do not stop the pass; only a failed device list
// is returned.
func (p *Platform) Discover(ctx context.Context) error {
	devices, err := p.client.ListDevices(ctx)
	if err != nil {
		p.logger.Error("cannot load devices", "error", err)
		return fmt.Errorf("listing devices: %w", err)
	}

	for i := range devices {
		device := &devices[i]
		outcome, err := p.handleDevice(ctx, device)
		p.metrics.Discovered.WithLabelValues(outcome).Inc()
		if err != nil {
			p.logger.Error("cannot bridge device", "device_id", device.DeviceID, "label", device.Label, "error", err)
		}
	}
	return nil
}

func (p *Platform) handleDevice(ctx context.Context, device *model.RemoteDevice) (string, error) {
	if len(device.Components) == 0 {
		p.logger.Info("skipping device without components", "device_id", device.DeviceID, "label", device.Label)
		return outcomeSkipped, nil
	}

	res := classifier.Classify(device)
	if !res.Supported() {
		p.logger.Info("skipping device",
			"device_id", device.DeviceID,
			"label", device.Label,
			"category", res.Category,
			"reason", res.Reason(),
			"missing_capabilities", res.Missing,
		)
		return outcomeSkipped, nil
	}

	p.logger.Info("registering device", "device_id", device.DeviceID, "kind", res.Kind)
	if binding, ok := p.findRestored(device.DeviceID); ok {
		return p.handleExisting(ctx, binding, device, res.Kind)
	}
	return p.handleNew(ctx, device, res.Kind)
}

func (p *Platform) findRestored(deviceID string) (model.AccessoryBinding, bool) {
	if deviceID == "" {
		return model.AccessoryBinding{}, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, b := range p.restored {
		if b.DeviceID == deviceID {
			return b, true
		}
	}
	return model.AccessoryBinding{}, false
}

func (p *Platform) handleExisting(ctx context.Context, binding model.AccessoryBinding, device *model.RemoteDevice, kind model.AccessoryKind) (string, error) {
	p.logger.Info("restoring existing accessory from cache", "name", device.Label)
	updated := binding
	updated.Device = *device
	updated.Kind = kind
	if device.Label != "" {
		updated.DisplayName = device.Label
	}

	if !reflect.DeepEqual(updated, binding) {
		if err := p.runtime.RegisterAccessories(ctx, updated); err != nil {
			p.logger.Error("cannot update stored accessory", "accessory_id", updated.AccessoryID, "error", err)
		} else {
			p.replaceRestored(updated)
		}
	}

	if err := p.install(ctx, updated); err != nil {
		return outcomeFailed, err
	}
	return outcomeRestored, nil
}

func (p *Platform) replaceRestored(binding model.AccessoryBinding) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.restored {
		if p.restored[i].AccessoryID == binding.AccessoryID {
			p.restored[i] = binding
			return
		}
	}
}

func (p *Platform) handleNew(ctx context.Context, device *model.RemoteDevice, kind model.AccessoryKind) (string, error) {
	p.logger.Info("adding new accessory", "name", device.Label)
	binding, err := NewBinding(device, kind)
	if err != nil {
		return outcomeFailed, err
	}
	if err := p.runtime.RegisterAccessories(ctx, binding); err != nil {
		return outcomeFailed, fmt.Errorf("registering accessory %s: %w", binding.AccessoryID, err)
	}
	if err := p.install(ctx, binding); err != nil {
		return outcomeFailed, err
	}

	p.mu.Lock()
	p.restored = append(p.restored, binding)
	p.mu.Unlock()
	return outcomeRegistered, nil
}

// install starts the accessory for binding. An accessory already live
// under the same id and kind is kept with its cached status and only
// rebound to the fresh device snapshot; any other previous accessory is
// stopped and replaced.
func (p *Platform) install(ctx context.Context, binding model.AccessoryBinding) error {
	p.mu.RLock()
	previous := p.accessories[binding.AccessoryID]
	p.mu.RUnlock()

	if previous != nil && previous.Binding().Kind == binding.Kind {
		previous.Rebind(binding)
		return nil
	}

	acc, err := p.factory.Build(binding)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.accessories[binding.AccessoryID] = acc
	p.mu.Unlock()

	if previous != nil {
		previous.Stop()
	}
	acc.Start(ctx)
	return nil
}

// NewBinding synthesizes the accessory identity of a newly discovered
// device. Both label and id are required.
func NewBinding(device *model.RemoteDevice, kind model.AccessoryKind) (model.AccessoryBinding, error) {
	if device.Label == "" || device.DeviceID == "" {
		return model.AccessoryBinding{}, model.ErrMissingIdentity
	}
	return model.AccessoryBinding{
		AccessoryID: uuid.NewSHA1(accessoryNamespace, []byte(device.DeviceID)).String(),
		DeviceID:    device.DeviceID,
		DisplayName: device.Label,
		Kind:        kind,
		Device:      *device,
	}, nil
}

// Shutdown stops every live accessory's poller.
func (p *Platform) Shutdown() {
	p.mu.Lock()
	accessories := p.accessories
	p.accessories = make(map[string]Accessory)
	p.mu.Unlock()

	for _, acc := range accessories {
		acc.Stop()
	}
}

func (p *Platform) Accessories() []model.AccessorySnapshot {
	p.mu.RLock()
	snapshots := make([]model.AccessorySnapshot, 0, len(p.accessories))
	for _, acc := range p.accessories {
		snapshots = append(snapshots, snapshotOf(acc, false))
	}
	p.mu.RUnlock()

	slices.SortFunc(snapshots, func(a, b model.AccessorySnapshot) int {
		return cmp.Or(cmp.Compare(a.Info.Name, b.Info.Name), cmp.Compare(a.ID, b.ID))
	})
	return snapshots
}

func (p *Platform) Accessory(id string) (model.AccessorySnapshot, error) {
	acc, err := p.lookup(id)
	if err != nil {
		return model.AccessorySnapshot{}, err
	}
	return snapshotOf(acc, true), nil
}

func (p *Platform) ReadCharacteristic(id, name string) (any, error) {
	c, err := p.characteristic(id, name)
	if err != nil {
		return nil, err
	}
	return c.Get(), nil
}

// WriteCharacteristic validates value against the characteristic's props
// and hands it to the accessory. Command failures are handled by the
// accessory and are not returned.
func (p *Platform) WriteCharacteristic(ctx context.Context, id, name string, value any) error {
	c, err := p.characteristic(id, name)
	if err != nil {
		return err
	}
	if c.Set == nil {
		return fmt.Errorf("%s: %w", name, model.ErrReadOnly)
	}
	if !c.Enum {
		if err := checkProps(c.Props, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return c.Set(ctx, value)
}

func (p *Platform) lookup(id string) (Accessory, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	acc, ok := p.accessories[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, model.ErrUnknownAccessory)
	}
	return acc, nil
}

func (p *Platform) characteristic(id, name string) (Characteristic, error) {
	acc, err := p.lookup(id)
	if err != nil {
		return Characteristic{}, err
	}
	for _, c := range acc.Characteristics() {
		if c.Name == name {
			return c, nil
		}
	}
	return Characteristic{}, fmt.Errorf("%s on %s: %w", name, id, model.ErrUnknownCharacteristic)
}

func checkProps(props model.Props, value any) error {
	if props.MinValue == nil && props.MaxValue == nil {
		return nil
	}
	v, err := toFloat(value)
	if err != nil {
		return err
	}
	if props.MinValue != nil && v < *props.MinValue {
		return fmt.Errorf("%w: %v below minimum %v", model.ErrInvalidValue, v, *props.MinValue)
	}
	if props.MaxValue != nil && v > *props.MaxValue {
		return fmt.Errorf("%w: %v above maximum %v", model.ErrInvalidValue, v, *props.MaxValue)
	}
	return nil
}

func snapshotOf(acc Accessory, withValues bool) model.AccessorySnapshot {
	b := acc.Binding()
	s := model.AccessorySnapshot{
		ID:       b.AccessoryID,
		DeviceID: b.DeviceID,
		Kind:     b.Kind,
		Info:     acc.Info(),
	}
	if !withValues {
		return s
	}
	for _, c := range acc.Characteristics() {
		s.Characteristics = append(s.Characteristics, model.CharacteristicValue{
			Name:     c.Name,
			Value:    c.Get(),
			Props:    c.Props,
			Writable: c.Set != nil,
		})
	}
	return s
}

// IsNotFound reports whether err names a missing accessory or characteristic.
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrUnknownAccessory) || errors.Is(err, model.ErrUnknownCharacteristic)
}
