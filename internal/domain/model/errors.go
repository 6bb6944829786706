package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDeviceID       = errors.New("device id must be set")
	ErrMissingIdentity       = errors.New("missing label and id")
	ErrNoComponents          = errors.New("cannot get device status")
	ErrUnknownAccessory      = errors.New("accessory not found")
	ErrUnknownCharacteristic = errors.New("characteristic not found")
	ErrReadOnly              = errors.New("characteristic is read-only")
	ErrInvalidValue          = errors.New("invalid characteristic value")
)

// CommandFailedError is returned when any result of a command batch
// reports a failed status.
type CommandFailedError struct {
	DeviceID   string
	Capability string
	Command    string
	Status     string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command %s/%s on device %s failed with status %s", e.Capability, e.Command, e.DeviceID, e.Status)
}
