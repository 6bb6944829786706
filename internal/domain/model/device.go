package model

const (
	// MainComponent is the primary component of a SmartThings device.
	MainComponent = "main"
	// Unknown is reported for accessory information the device does not declare.
	Unknown = "unknown"
)

// RemoteDevice is a device as listed by the SmartThings registry.
type RemoteDevice struct {
	DeviceID         string      `json:"deviceId"`
	Label            string      `json:"label,omitempty"`
	Name             string      `json:"name,omitempty"`
	ManufacturerName string      `json:"manufacturerName,omitempty"`
	PresentationID   string      `json:"presentationId,omitempty"`
	Components       []Component `json:"components,omitempty"`
}

type Component struct {
	ID           string   `json:"id"`
	Capabilities []string `json:"capabilities,omitempty"`
	Categories   []string `json:"categories,omitempty"`
}

// Capabilities returns the capability ids of all components in declaration order.
func (d *RemoteDevice) Capabilities() []string {
	var caps []string
	for _, c := range d.Components {
		caps = append(caps, c.Capabilities...)
	}
	return caps
}

// Categories returns the category names of all components in declaration order.
func (d *RemoteDevice) Categories() []string {
	var cats []string
	for _, c := range d.Components {
		cats = append(cats, c.Categories...)
	}
	return cats
}

// Info returns the accessory information for the device, substituting
// Unknown for anything the registry left blank.
func (d *RemoteDevice) Info() AccessoryInfo {
	return AccessoryInfo{
		Name:         orUnknown(d.Label),
		Manufacturer: orUnknown(d.ManufacturerName),
		Model:        orUnknown(d.Name),
		SerialNumber: orUnknown(d.PresentationID),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// AttributeState is one attribute value of a capability in a status document.
type AttributeState struct {
	Value any    `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// CapabilityStatus maps attribute names to their state.
type CapabilityStatus map[string]AttributeState

// ComponentStatus maps capability ids to their attributes.
type ComponentStatus map[string]CapabilityStatus

// DeviceStatus is the full status document of a device.
type DeviceStatus struct {
	Components map[string]ComponentStatus `json:"components"`
}

// Value returns the raw value of capability/attribute, or nil when absent.
func (c ComponentStatus) Value(capability, attribute string) any {
	if c == nil {
		return nil
	}
	return c[capability][attribute].Value
}

// Command is a single command sent to a device component.
type Command struct {
	Component  string `json:"component"`
	Capability string `json:"capability"`
	Command    string `json:"command"`
	Arguments  []any  `json:"arguments,omitempty"`
}

// CommandResult is the per-command outcome reported by the device API.
type CommandResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CommandStatusFailed marks a rejected command result.
const CommandStatusFailed = "FAILED"
