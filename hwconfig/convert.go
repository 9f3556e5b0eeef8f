package hwconfig

import (
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Keys of the configuration document.
const (
	keyHexLoader = "HexLoader"
	keyDevices   = "Devices"

	keyDeviceName            = "DeviceName"
	keyFilePath              = "FilePath"
	keyColdBootProductID     = "ColdBootProductID"
	keyWarmFirmwareProductID = "WarmFirmwareProductID"
)

// recordFromEntry converts one device dictionary into a Record. All four
// fields are checked so the error lists every problem in the entry; the
// Record is only meaningful when the error is nil.
func recordFromEntry(entry dictionary, maxTextLength int) (Record, error) {
	var (
		rec  Record
		errs *multierror.Error
		err  error
	)

	if rec.ModelName, err = requiredString(entry, keyDeviceName, maxTextLength); err != nil {
		errs = multierror.Append(errs, err)
	}
	if rec.FirmwareFileName, err = requiredString(entry, keyFilePath, maxTextLength); err != nil {
		errs = multierror.Append(errs, err)
	}
	if rec.ColdBootProductID, err = requiredProductID(entry, keyColdBootProductID); err != nil {
		errs = multierror.Append(errs, err)
	}
	if rec.WarmFirmwareProductID, err = requiredProductID(entry, keyWarmFirmwareProductID); err != nil {
		errs = multierror.Append(errs, err)
	}

	if errs == nil {
		return rec, nil
	}
	if len(errs.Errors) == 1 {
		return Record{}, errs.Errors[0]
	}
	errs.ErrorFormat = inlineFormat
	return Record{}, errs
}

// newDeviceEntryError wraps the problems of entry index i, naming the device
// when its DeviceName is at least a string.
func newDeviceEntryError(i int, entry dictionary, err error) *DeviceEntryError {
	name, _ := entry[keyDeviceName].(string)
	return &DeviceEntryError{Index: i, DeviceName: name, Err: err}
}

// inlineFormat renders a multierror on a single line.
func inlineFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
