// Package classifier decides which accessory kind, if any, a SmartThings
// device is bridged as.
package classifier

import (
	"slices"

	"smartthings-bridge/internal/domain/model"
)

// Result is the outcome of classifying one device.
type Result struct {
	// Kind is set whenever the first category names a supported kind,
	// even if capabilities are missing.
	Kind model.AccessoryKind
	// Category is the first category of the device, empty if it has none.
	Category string
	// Missing lists required capabilities the device does not declare.
	Missing []string
}

// Skip reasons.
const (
	ReasonUnsupportedCategory = "out of acceptable categories"
	ReasonMissingCapabilities = "missing required capabilities"
)

// Reason explains why a device is not supported, empty if it is.
func (r Result) Reason() string {
	switch {
	case r.Kind == "":
		return ReasonUnsupportedCategory
	case len(r.Missing) > 0:
		return ReasonMissingCapabilities
	default:
		return ""
	}
}

// Supported reports whether the category is supported and no required
// capability is missing.
func (r Result) Supported() bool {
	return r.Kind != "" && len(r.Missing) == 0
}

// Classify inspects the capability and category sets of a device.
func Classify(device *model.RemoteDevice) Result {
	categories := device.Categories()
	if len(categories) == 0 {
		return Result{}
	}
	res := Result{Category: categories[0]}
	kind, ok := model.ParseKind(categories[0])
	if !ok {
		return res
	}
	res.Kind = kind
	res.Missing = MissingCapabilities(kind, device.Capabilities())
	return res
}

// MissingCapabilities returns the kind's required capabilities absent from
// capabilities, in the kind's declared order. Membership is order-insensitive.
func MissingCapabilities(kind model.AccessoryKind, capabilities []string) []string {
	var missing []string
	for _, required := range kind.RequiredCapabilities() {
		if !slices.Contains(capabilities, required) {
			missing = append(missing, required)
		}
	}
	return missing
}
