package model

// Remote air conditioner modes.
const (
	ModeAuto = "auto"
	ModeCool = "cool"
	ModeHeat = "heat"
)

// FanModeSmart is the purifier fan mode reported as automatic.
const FanModeSmart = "smart"

// AirConditionerStatus is the cached view of an air conditioner.
type AirConditionerStatus struct {
	Mode               string  `json:"mode"`
	Active             bool    `json:"active"`
	CurrentTemperature float64 `json:"current_temperature"`
	TargetTemperature  float64 `json:"target_temperature"`
}

// AirPurifierStatus is the cached view of an air purifier. AirQuality 0
// means unknown.
type AirPurifierStatus struct {
	Active     bool    `json:"active"`
	AirQuality float64 `json:"air_quality"`
	Mode       string  `json:"mode"`
}
