package translator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"smartthings-bridge/internal/domain/model"
)

type MockSmartThings struct {
	mock.Mock
}

func (m *MockSmartThings) ListDevices(ctx context.Context) ([]model.RemoteDevice, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.RemoteDevice), args.Error(1)
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

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mainStatus(main model.ComponentStatus) *model.DeviceStatus {
	return &model.DeviceStatus{Components: map[string]model.ComponentStatus{model.MainComponent: main}}
}

func TestAirConditionerAdapter_GetStatus(t *testing.T) {
	st := new(MockSmartThings)
	st.On("GetStatus", mock.Anything, "ac-1").Return(mainStatus(model.ComponentStatus{
		"switch":                    {"switch": {Value: "on"}},
		"airConditionerMode":        {"airConditionerMode": {Value: "cool"}},
		"thermostatCoolingSetpoint": {"coolingSetpoint": {Value: 24.0, Unit: "C"}},
		"temperatureMeasurement":    {"temperature": {Value: 27.5, Unit: "C"}},
	}), nil)

	a := NewAirConditionerAdapter(&model.RemoteDevice{DeviceID: "ac-1"}, st, discard())
	status, err := a.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.AirConditionerStatus{
		Mode:               "cool",
		Active:             true,
		CurrentTemperature: 27.5,
		TargetTemperature:  24,
	}, status)
}

func TestAirConditionerAdapter_GetStatusMissingFields(t *testing.T) {
	st := new(MockSmartThings)
	st.On("GetStatus", mock.Anything, "ac-1").Return(mainStatus(model.ComponentStatus{
		"switch": {"switch": {Value: "off"}},
	}), nil)

	a := NewAirConditionerAdapter(&model.RemoteDevice{DeviceID: "ac-1"}, st, discard())
	status, err := a.GetStatus(context.Background())

	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Empty(t, status.Mode)
	assert.Zero(t, status.TargetTemperature)
	assert.Zero(t, status.CurrentTemperature)
}

func TestAirConditionerAdapter_GetStatusNoMainComponent(t *testing.T) {
	st := new(MockSmartThings)
	st.On("GetStatus", mock.Anything, "ac-1").Return(&model.DeviceStatus{Components: map[string]model.ComponentStatus{}}, nil)

	a := NewAirConditionerAdapter(&model.RemoteDevice{DeviceID: "ac-1"}, st, discard())
	status, err := a.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.AirConditionerStatus{}, status)
}

func TestAdapter_GetStatusWithoutComponents(t *testing.T) {
	st := new(MockSmartThings)
	st.On("GetStatus", mock.Anything, "ap-1").Return(&model.DeviceStatus{}, nil)

	a := NewAirPurifierAdapter(&model.RemoteDevice{DeviceID: "ap-1"}, st, discard())
	_, err := a.GetStatus(context.Background())

	assert.ErrorIs(t, err, model.ErrNoComponents)
}

func TestAdapter_GetStatusTransportError(t *testing.T) {
	st := new(MockSmartThings)
	st.On("GetStatus", mock.Anything, "ap-1").Return(nil, errors.New("connection refused"))

	a := NewAirPurifierAdapter(&model.RemoteDevice{DeviceID: "ap-1"}, st, discard())
	_, err := a.GetStatus(context.Background())

	assert.ErrorContains(t, err, "connection refused")
}

func TestAdapter_MissingDeviceID(t *testing.T) {
	st := new(MockSmartThings)
	a := NewAirPurifierAdapter(&model.RemoteDevice{}, st, discard())

	_, err := a.GetStatus(context.Background())
	assert.ErrorIs(t, err, model.ErrMissingDeviceID)

	err = a.ExecuteMainCommand(context.Background(), CommandOn, CapabilitySwitch)
	assert.ErrorIs(t, err, model.ErrMissingDeviceID)

	st.AssertNotCalled(t, "GetStatus", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "ExecuteCommand", mock.Anything, mock.Anything, mock.Anything)
}

func TestAirPurifierAdapter_GetStatus(t *testing.T) {
	st := new(MockSmartThings)
	st.On("GetStatus", mock.Anything, "ap-1").Return(mainStatus(model.ComponentStatus{
		"switch":           {"switch": {Value: "on"}},
		"airQualitySensor": {"airQuality": {Value: 3.0}},
		"fanMode":          {"fanMode": {Value: "smart"}},
	}), nil)

	a := NewAirPurifierAdapter(&model.RemoteDevice{DeviceID: "ap-1"}, st, discard())
	status, err := a.GetStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.AirPurifierStatus{Active: true, AirQuality: 3, Mode: "smart"}, status)
}

func TestExecuteMainCommand(t *testing.T) {
	st := new(MockSmartThings)
	cmd := model.Command{
		Component:  "main",
		Capability: CapabilityThermostatCoolingSetpoint,
		Command:    CommandSetCoolingSetpoint,
		Arguments:  []any{22.0},
	}
	st.On("ExecuteCommand", mock.Anything, "ac-1", cmd).Return([]model.CommandResult{
		{ID: "r1", Status: "ACCEPTED"},
		{ID: "r2", Status: "COMPLETED"},
	}, nil)

	a := NewAirConditionerAdapter(&model.RemoteDevice{DeviceID: "ac-1"}, st, discard())
	err := a.ExecuteMainCommand(context.Background(), CommandSetCoolingSetpoint, CapabilityThermostatCoolingSetpoint, 22.0)

	assert.NoError(t, err)
	st.AssertExpectations(t)
}

func TestExecuteMainCommand_PartialFailure(t *testing.T) {
	st := new(MockSmartThings)
	st.On("ExecuteCommand", mock.Anything, "ac-1", mock.Anything).Return([]model.CommandResult{
		{ID: "r1", Status: "ACCEPTED"},
		{ID: "r2", Status: "FAILED"},
	}, nil)

	a := NewAirConditionerAdapter(&model.RemoteDevice{DeviceID: "ac-1"}, st, discard())
	err := a.ExecuteMainCommand(context.Background(), CommandOn, CapabilitySwitch)

	var failed *model.CommandFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "FAILED", failed.Status)
	assert.Contains(t, err.Error(), "FAILED")
}

func TestExecuteMainCommand_TransportError(t *testing.T) {
	st := new(MockSmartThings)
	st.On("ExecuteCommand", mock.Anything, "ac-1", mock.Anything).Return(nil, errors.New("status 500"))

	a := NewAirConditionerAdapter(&model.RemoteDevice{DeviceID: "ac-1"}, st, discard())
	err := a.ExecuteMainCommand(context.Background(), CommandOff, CapabilitySwitch)

	assert.ErrorContains(t, err, "status 500")
}

func TestModeMappingRoundTrip(t *testing.T) {
	for _, mode := range []string{model.ModeAuto, model.ModeCool, model.ModeHeat} {
		state, ok := FromRemoteMode(mode)
		require.True(t, ok, mode)
		back, ok := ToRemoteMode(state)
		require.True(t, ok, mode)
		assert.Equal(t, mode, back)
	}

	assert.Equal(t, model.TargetHeaterCoolerCool, must(FromRemoteMode("cool")))
	assert.Equal(t, model.TargetHeaterCoolerHeat, must(FromRemoteMode("heat")))
	assert.Equal(t, model.TargetHeaterCoolerAuto, must(FromRemoteMode("auto")))
}

func TestModeMappingUnknown(t *testing.T) {
	state, ok := FromRemoteMode("dry")
	assert.False(t, ok)
	assert.Equal(t, model.TargetHeaterCoolerAuto, state)

	mode, ok := ToRemoteMode(7)
	assert.False(t, ok)
	assert.Equal(t, model.ModeAuto, mode)
}

func TestAirQualityLevel(t *testing.T) {
	cases := map[float64]int{
		-1:  model.AirQualityUnknown,
		0:   model.AirQualityUnknown,
		0.5: model.AirQualityExcellent,
		1:   model.AirQualityExcellent,
		1.5: model.AirQualityGood,
		2:   model.AirQualityGood,
		3:   model.AirQualityFair,
		4:   model.AirQualityInferior,
		4.1: model.AirQualityPoor,
		5:   model.AirQualityPoor,
	}
	for in, want := range cases {
		assert.Equal(t, want, AirQualityLevel(in), "input %v", in)
	}
}

func must(v int, _ bool) int {
	return v
}
