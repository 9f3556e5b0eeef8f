package hwconfig

import (
	"errors"
	"fmt"
)

// Failure classes of a configuration load. Every error returned by Load,
// Decode, Parse and Check matches exactly one of these with errors.Is.
var (
	// ErrUnreadableFile means the configuration file could not be opened.
	ErrUnreadableFile = errors.New("unreadable configuration file")

	// ErrMalformedDocument means the property list itself failed to parse.
	ErrMalformedDocument = errors.New("malformed property list")

	// ErrUnexpectedDocumentShape means the top-level value is not a dictionary.
	ErrUnexpectedDocumentShape = errors.New("unexpected document shape")

	// ErrMissingRequiredField means HexLoader or Devices is absent or mistyped.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrMalformedDeviceEntry means a device dictionary failed validation.
	ErrMalformedDeviceEntry = errors.New("malformed device entry")
)

// DocumentError carries the parser diagnostic for a document that is not a
// valid property list.
type DocumentError struct {
	// Diagnostic is the parser's message
	Diagnostic string

	// Err is the underlying parser error
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("malformed property list: %s", e.Diagnostic)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// Is reports ErrMalformedDocument as matching.
func (e *DocumentError) Is(target error) bool { return target == ErrMalformedDocument }

// FieldError identifies a single dictionary key that is missing, has the
// wrong type, or holds a value that cannot be used.
type FieldError struct {
	// Key is the dictionary key
	Key string

	// Want is the expected value kind ("string", "integer", "array")
	Want string

	// Got is the kind found; empty when the key is absent
	Got string

	// Reason explains why a value of the right kind was still rejected
	Reason string
}

func (e *FieldError) Error() string {
	switch {
	case e.Got == "":
		return fmt.Sprintf("key %q is missing", e.Key)
	case e.Reason != "":
		return fmt.Sprintf("key %q: %s", e.Key, e.Reason)
	default:
		return fmt.Sprintf("key %q: want %s, got %s", e.Key, e.Want, e.Got)
	}
}

// Missing reports whether the key was absent.
func (e *FieldError) Missing() bool { return e.Got == "" }

// DeviceEntryError reports a device dictionary that could not be converted
// into a Record.
type DeviceEntryError struct {
	// Index is the position of the entry in the Devices array
	Index int

	// DeviceName is the entry's DeviceName when it is readable
	DeviceName string

	// Err holds the field problems found in the entry
	Err error
}

func (e *DeviceEntryError) Error() string {
	if e.DeviceName != "" {
		return fmt.Sprintf("device entry %d (%q): %v", e.Index, e.DeviceName, e.Err)
	}
	return fmt.Sprintf("device entry %d: %v", e.Index, e.Err)
}

func (e *DeviceEntryError) Unwrap() error { return e.Err }

// Is reports ErrMalformedDeviceEntry as matching.
func (e *DeviceEntryError) Is(target error) bool { return target == ErrMalformedDeviceEntry }
