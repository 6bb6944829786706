package model

// Characteristic names exposed to the accessory protocol.
const (
	CharActive                      = "Active"
	CharCurrentTemperature          = "CurrentTemperature"
	CharCoolingThresholdTemperature = "CoolingThresholdTemperature"
	CharHeatingThresholdTemperature = "HeatingThresholdTemperature"
	CharTargetHeaterCoolerState     = "TargetHeaterCoolerState"
	CharCurrentHeaterCoolerState    = "CurrentHeaterCoolerState"
	CharCurrentAirPurifierState     = "CurrentAirPurifierState"
	CharTargetAirPurifierState      = "TargetAirPurifierState"
	CharAirQuality                  = "AirQuality"
)

// Active values.
const (
	ActiveInactive = 0
	ActiveActive   = 1
)

// TargetHeaterCoolerState values.
const (
	TargetHeaterCoolerAuto = 0
	TargetHeaterCoolerHeat = 1
	TargetHeaterCoolerCool = 2
)

// CurrentHeaterCoolerState values.
const (
	CurrentHeaterCoolerInactive = 0
	CurrentHeaterCoolerIdle     = 1
	CurrentHeaterCoolerHeating  = 2
	CurrentHeaterCoolerCooling  = 3
)

// CurrentAirPurifierState values.
const (
	CurrentAirPurifierInactive  = 0
	CurrentAirPurifierIdle      = 1
	CurrentAirPurifierPurifying = 2
)

// TargetAirPurifierState values.
const (
	TargetAirPurifierManual = 0
	TargetAirPurifierAuto   = 1
)

// AirQuality levels, UNKNOWN through POOR.
const (
	AirQualityUnknown   = 0
	AirQualityExcellent = 1
	AirQualityGood      = 2
	AirQualityFair      = 3
	AirQualityInferior  = 4
	AirQualityPoor      = 5
)

// Props declares the value range of a numeric characteristic.
type Props struct {
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`
	MinStep  *float64 `json:"min_step,omitempty"`
}

// RangeProps builds props for a bounded characteristic.
func RangeProps(min, max, step float64) Props {
	return Props{MinValue: &min, MaxValue: &max, MinStep: &step}
}
