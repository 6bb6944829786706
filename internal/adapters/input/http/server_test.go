package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"smartthings-bridge/internal/domain/model"
)

type MockBridge struct {
	mock.Mock
}

func (m *MockBridge) Accessories() []model.AccessorySnapshot {
	args := m.Called()
	return args.Get(0).([]model.AccessorySnapshot)
}

func (m *MockBridge) Accessory(id string) (model.AccessorySnapshot, error) {
	args := m.Called(id)
	return args.Get(0).(model.AccessorySnapshot), args.Error(1)
}

func (m *MockBridge) ReadCharacteristic(id, name string) (any, error) {
	args := m.Called(id, name)
	return args.Get(0), args.Error(1)
}

func (m *MockBridge) WriteCharacteristic(ctx context.Context, id, name string, value any) error {
	args := m.Called(ctx, id, name, value)
	return args.Error(0)
}

func newTestServer(bridge *MockBridge) *httptest.Server {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})
	srv := NewServer(bridge, metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return httptest.NewServer(srv.Handler())
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListAccessories(t *testing.T) {
	bridge := new(MockBridge)
	bridge.On("Accessories").Return([]model.AccessorySnapshot{
		{ID: "acc-1", DeviceID: "ac-1", Kind: model.KindAirConditioner, Info: model.AccessoryInfo{Name: "Living Room"}},
	})
	ts := newTestServer(bridge)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/accessories", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []model.AccessorySnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "acc-1", got[0].ID)
	assert.Equal(t, model.KindAirConditioner, got[0].Kind)
}

func TestGetAccessory_NotFound(t *testing.T) {
	bridge := new(MockBridge)
	bridge.On("Accessory", "nope").Return(model.AccessorySnapshot{}, fmt.Errorf("nope: %w", model.ErrUnknownAccessory))
	ts := newTestServer(bridge)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/accessories/nope", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReadCharacteristic(t *testing.T) {
	bridge := new(MockBridge)
	bridge.On("ReadCharacteristic", "acc-1", "CurrentTemperature").Return(23.5, nil)
	ts := newTestServer(bridge)
	defer ts.Close()

	resp := do(t, http.MethodGet, ts.URL+"/accessories/acc-1/characteristics/CurrentTemperature", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got characteristicBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 23.5, got.Value)
}

func TestWriteCharacteristic(t *testing.T) {
	bridge := new(MockBridge)
	bridge.On("WriteCharacteristic", mock.Anything, "acc-1", "Active", 1.0).Return(nil)
	ts := newTestServer(bridge)
	defer ts.Close()

	resp := do(t, http.MethodPut, ts.URL+"/accessories/acc-1/characteristics/Active", `{"value": 1}`)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	bridge.AssertExpectations(t)
}

func TestWriteCharacteristic_Errors(t *testing.T) {
	bridge := new(MockBridge)
	bridge.On("WriteCharacteristic", mock.Anything, "acc-1", "CurrentTemperature", mock.Anything).
		Return(fmt.Errorf("CurrentTemperature: %w", model.ErrReadOnly))
	bridge.On("WriteCharacteristic", mock.Anything, "acc-1", "CoolingThresholdTemperature", mock.Anything).
		Return(fmt.Errorf("CoolingThresholdTemperature: %w", model.ErrInvalidValue))
	bridge.On("WriteCharacteristic", mock.Anything, "acc-1", "Brightness", mock.Anything).
		Return(fmt.Errorf("Brightness: %w", model.ErrUnknownCharacteristic))
	ts := newTestServer(bridge)
	defer ts.Close()

	base := ts.URL + "/accessories/acc-1/characteristics/"
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, http.MethodPut, base+"CurrentTemperature", `{"value": 20}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPut, base+"CoolingThresholdTemperature", `{"value": 99}`).StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodPut, base+"Brightness", `{"value": 1}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPut, base+"Active", `not json`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPut, base+"Active", `{}`).StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(new(MockBridge))
	defer ts.Close()

	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/healthz", "").StatusCode)

	resp := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "# metrics")
}
