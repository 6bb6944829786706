package translator

import (
	"math"

	"smartthings-bridge/internal/domain/model"
)

var heaterCoolerToMode = map[int]string{
	model.TargetHeaterCoolerAuto: model.ModeAuto,
	model.TargetHeaterCoolerHeat: model.ModeHeat,
	model.TargetHeaterCoolerCool: model.ModeCool,
}

var modeToHeaterCooler = map[string]int{
	model.ModeAuto: model.TargetHeaterCoolerAuto,
	model.ModeHeat: model.TargetHeaterCoolerHeat,
	model.ModeCool: model.TargetHeaterCoolerCool,
}

// ToRemoteMode maps a TargetHeaterCoolerState value to an air conditioner
// mode. ok is false for unrecognized states, which map to auto.
func ToRemoteMode(state int) (mode string, ok bool) {
	mode, ok = heaterCoolerToMode[state]
	if !ok {
		return model.ModeAuto, false
	}
	return mode, true
}

// FromRemoteMode maps an air conditioner mode to a TargetHeaterCoolerState
// value. ok is false for unrecognized modes, which map to AUTO.
func FromRemoteMode(mode string) (state int, ok bool) {
	state, ok = modeToHeaterCooler[mode]
	if !ok {
		return model.TargetHeaterCoolerAuto, false
	}
	return state, true
}

// AirQualityLevel buckets a remote air quality reading into the accessory's
// AirQuality scale. Non-positive and NaN readings are unknown.
func AirQualityLevel(s float64) int {
	switch {
	case math.IsNaN(s) || s <= 0:
		return model.AirQualityUnknown
	case s <= 1:
		return model.AirQualityExcellent
	case s <= 2:
		return model.AirQualityGood
	case s <= 3:
		return model.AirQualityFair
	case s <= 4:
		return model.AirQualityInferior
	default:
		return model.AirQualityPoor
	}
}
