package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
	"smartthings-bridge/internal/domain/model"
)

type MockSmartThings struct {
	mock.Mock
}

func (m *MockSmartThings) ListDevices(ctx context.Context) ([]model.RemoteDevice, error) {
	args := m.Called(ctx)
	devices, _ := args.Get(0).([]model.RemoteDevice)
	return devices, args.Error(1)
}

func (m *MockSmartThings) GetStatus(ctx context.Context, deviceID string) (*model.DeviceStatus, error) {
	args := m.Called(ctx, deviceID)
	status, _ := args.Get(0).(*model.DeviceStatus)
	return status, args.Error(1)
}

func (m *MockSmartThings) ExecuteCommand(ctx context.Context, deviceID string, cmd model.Command) ([]model.CommandResult, error) {
	args := m.Called(ctx, deviceID, cmd)
	results, _ := args.Get(0).([]model.CommandResult)
	return results, args.Error(1)
}

type MockRuntime struct {
	mock.Mock
}

func (m *MockRuntime) RegisterAccessories(ctx context.Context, bindings ...model.AccessoryBinding) error {
	args := m.Called(ctx, bindings)
	return args.Error(0)
}

func (m *MockRuntime) Load(ctx context.Context) ([]model.AccessoryBinding, error) {
	args := m.Called(ctx)
	bindings, _ := args.Get(0).([]model.AccessoryBinding)
	return bindings, args.Error(1)
}

type fakeSource[S any] struct {
	status S
	err    error
	calls  int
}

func (f *fakeSource[S]) GetStatus(context.Context) (S, error) {
	f.calls++
	return f.status, f.err
}

type fakeCommander struct {
	err   error
	calls []string
}

func (f *fakeCommander) ExecuteMainCommand(_ context.Context, command, capability string, _ ...any) error {
	f.calls = append(f.calls, capability+"."+command)
	return f.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *model.Config {
	return &model.Config{Token: "token", UpdateInterval: 3600}
}

func mainStatus(main model.ComponentStatus) *model.DeviceStatus {
	return &model.DeviceStatus{Components: map[string]model.ComponentStatus{model.MainComponent: main}}
}

func airConditionerDevice(id, label string) model.RemoteDevice {
	return model.RemoteDevice{
		DeviceID:         id,
		Label:            label,
		ManufacturerName: "Samsung",
		Components: []model.Component{{
			ID:           model.MainComponent,
			Capabilities: []string{"switch", "temperatureMeasurement", "thermostatCoolingSetpoint", "airConditionerMode"},
			Categories:   []string{"AirConditioner"},
		}},
	}
}

func airPurifierDevice(id, label string) model.RemoteDevice {
	return model.RemoteDevice{
		DeviceID: id,
		Label:    label,
		Components: []model.Component{{
			ID:           model.MainComponent,
			Capabilities: []string{"switch", "airQualitySensor", "fanMode"},
			Categories:   []string{"AirPurifier"},
		}},
	}
}
