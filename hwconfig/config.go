package hwconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"howett.net/plist"
)

// Config is a validated hardware configuration: the shared hex loader path
// and the firmware records indexed by cold-boot product id.
//
// A Config is immutable once returned and is safe for concurrent use.
type Config struct {
	hexLoaderPath string
	devices       map[ProductID]Record
	format        int
}

// Load reads the property list at path and builds a Config.
// Any problem in the document fails the whole load; no partial Config is
// ever returned.
//
// Example:
//
//	cfg, err := hwconfig.Load("MIDISPORTFirmware.plist")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fw, ok := cfg.FirmwareForBootID(0x1010)
func Load(path string, opts ...Option) (*Config, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	cfg, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// openFile opens path for reading. Every failure, including path naming a
// directory, is an ErrUnreadableFile.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnreadableFile, path)
	}

	return f, nil
}

// Decode builds a Config from a property list read from r. Any format the
// plist decoder understands is accepted (XML, binary, OpenStep, GNUstep).
// OpenStep documents can only hold strings, so their product ids never
// validate.
func Decode(r io.ReadSeeker, opts ...Option) (*Config, error) {
	o := newOptions(opts)

	root, format, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}

	o.logger.WithField("format", plist.FormatNames[format]).Debug("decoded property list")

	cfg, err := scan(root, o, false)
	if err != nil {
		return nil, err
	}
	cfg.format = format

	o.logger.WithFields(logrus.Fields{
		"hex_loader": cfg.hexLoaderPath,
		"devices":    len(cfg.devices),
	}).Info("hardware configuration loaded")

	return cfg, nil
}

// Parse builds a Config from an in-memory property list.
func Parse(data []byte, opts ...Option) (*Config, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// errEmptyDocument is the diagnostic for input holding no property list.
// The plist text parser would otherwise read it as an empty dictionary.
var errEmptyDocument = errors.New("document is empty")

func decodeDocument(r io.ReadSeeker) (interface{}, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, plist.InvalidFormat, &DocumentError{Diagnostic: err.Error(), Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, plist.InvalidFormat, &DocumentError{Diagnostic: errEmptyDocument.Error(), Err: errEmptyDocument}
	}

	dec := plist.NewDecoder(bytes.NewReader(data))

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, plist.InvalidFormat, &DocumentError{Diagnostic: err.Error(), Err: err}
	}

	return root, dec.Format, nil
}

// scan validates a decoded document and stages the resulting table. With
// keepGoing unset the first problem is returned as is; otherwise every
// problem is collected into a multierror. Only a document with no problems
// produces a Config.
func scan(root interface{}, o options, keepGoing bool) (*Config, error) {
	var errs *multierror.Error
	stop := func(err error) bool {
		errs = multierror.Append(errs, err)
		return !keepGoing
	}

	dict, ok := root.(dictionary)
	if !ok {
		err := fmt.Errorf("%w: top-level value is %s, want %s",
			ErrUnexpectedDocumentShape, kindOf(root), kindDictionary)
		if stop(err) {
			return nil, err
		}
		return nil, errs
	}

	staged := &Config{devices: make(map[ProductID]Record)}

	hexLoader, err := requiredString(dict, keyHexLoader, o.maxTextLength)
	if err != nil && stop(fmt.Errorf("%w: %w", ErrMissingRequiredField, err)) {
		return nil, errs.Errors[0]
	}
	staged.hexLoaderPath = hexLoader

	devices, err := requiredArray(dict, keyDevices)
	if err != nil && stop(fmt.Errorf("%w: %w", ErrMissingRequiredField, err)) {
		return nil, errs.Errors[0]
	}

	for i, element := range devices {
		entry, ok := element.(dictionary)
		if !ok {
			o.logger.WithFields(logrus.Fields{
				"index": i,
				"kind":  kindOf(element),
			}).Debug("skipping device entry that is not a dictionary")
			continue
		}

		rec, err := recordFromEntry(entry, o.maxTextLength)
		if err != nil {
			if stop(newDeviceEntryError(i, entry, err)) {
				return nil, errs.Errors[0]
			}
			continue
		}

		if prev, dup := staged.devices[rec.ColdBootProductID]; dup {
			o.logger.WithFields(logrus.Fields{
				"cold_boot_product_id": rec.ColdBootProductID.String(),
				"replaced":             prev.ModelName,
				"by":                   rec.ModelName,
			}).Warn("duplicate cold boot product id, later entry wins")
		}
		staged.devices[rec.ColdBootProductID] = rec

		o.logger.WithFields(logrus.Fields{
			"index":                    i,
			"device":                   rec.ModelName,
			"cold_boot_product_id":     rec.ColdBootProductID.String(),
			"warm_firmware_product_id": rec.WarmFirmwareProductID.String(),
		}).Debug("device entry accepted")
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return staged, nil
}

// HexLoaderPath returns the loader payload shared by all devices.
func (c *Config) HexLoaderPath() string {
	return c.hexLoaderPath
}

// Format returns the property-list format the document was read in, one of
// the plist package's format constants.
func (c *Config) Format() int {
	return c.format
}

// Len returns the number of devices in the table.
func (c *Config) Len() int {
	return len(c.devices)
}

// FirmwareForBootID returns the firmware for a device presenting the given
// cold-boot product id. The second result is false when no device matches.
func (c *Config) FirmwareForBootID(id ProductID) (Record, bool) {
	rec, ok := c.devices[id]
	return rec, ok
}

// FirmwareForWarmID returns the record whose firmware makes a device present
// the given product id, which identifies a device that is already warm.
// When several records share the warm id, the one with the lowest cold-boot
// id wins.
func (c *Config) FirmwareForWarmID(id ProductID) (Record, bool) {
	for _, rec := range c.Devices() {
		if rec.WarmFirmwareProductID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// BootIDs returns the cold-boot product ids in ascending order.
func (c *Config) BootIDs() []ProductID {
	ids := make([]ProductID, 0, len(c.devices))
	for id := range c.devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Devices returns a copy of every record, ordered by cold-boot product id.
func (c *Config) Devices() []Record {
	recs := make([]Record, 0, len(c.devices))
	for _, id := range c.BootIDs() {
		recs = append(recs, c.devices[id])
	}
	return recs
}
