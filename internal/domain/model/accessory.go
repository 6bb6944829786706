package model

// AccessoryKind is a supported accessory type. Kind names double as the
// SmartThings category names that select them.
type AccessoryKind string

const (
	KindAirConditioner AccessoryKind = "AirConditioner"
	KindAirPurifier    AccessoryKind = "AirPurifier"
)

// Kinds lists the supported kinds.
var Kinds = []AccessoryKind{KindAirConditioner, KindAirPurifier}

var requiredCapabilities = map[AccessoryKind][]string{
	KindAirConditioner: {"switch", "temperatureMeasurement", "thermostatCoolingSetpoint"},
	KindAirPurifier:    {"switch", "airQualitySensor"},
}

// ParseKind returns the kind named by a category, if supported.
func ParseKind(category string) (AccessoryKind, bool) {
	k := AccessoryKind(category)
	_, ok := requiredCapabilities[k]
	return k, ok
}

// RequiredCapabilities returns the capabilities a device must declare to be
// bridged as this kind.
func (k AccessoryKind) RequiredCapabilities() []string {
	caps := requiredCapabilities[k]
	out := make([]string, len(caps))
	copy(out, caps)
	return out
}

// AccessoryInfo is the information service shown for an accessory.
type AccessoryInfo struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
}

// AccessoryBinding pairs a SmartThings device with its persisted accessory identity.
type AccessoryBinding struct {
	AccessoryID string        `json:"accessory_id"`
	DeviceID    string        `json:"device_id"`
	DisplayName string        `json:"display_name"`
	Kind        AccessoryKind `json:"kind"`
	Device      RemoteDevice  `json:"device"`
}

// CharacteristicValue is a snapshot of one characteristic.
type CharacteristicValue struct {
	Name     string `json:"name"`
	Value    any    `json:"value"`
	Props    Props  `json:"props"`
	Writable bool   `json:"writable"`
}

// AccessorySnapshot is a point-in-time view of a live accessory.
type AccessorySnapshot struct {
	ID              string                `json:"id"`
	DeviceID        string                `json:"device_id"`
	Kind            AccessoryKind         `json:"kind"`
	Info            AccessoryInfo         `json:"info"`
	Characteristics []CharacteristicValue `json:"characteristics,omitempty"`
}
