package hwconfig

import (
	"fmt"
	"strconv"
)

// ProductID is a USB idProduct value.
type ProductID uint16

// String renders the id the way lsusb does, e.g. 0x1010.
func (id ProductID) String() string {
	return fmt.Sprintf("0x%04X", uint16(id))
}

// ParseProductID parses a product id written in decimal, or in hex with a
// 0x prefix.
func ParseProductID(s string) (ProductID, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q: %w", s, err)
	}
	return ProductID(n), nil
}

// Record describes the firmware bundle of one device model.
//
// A Record is only ever produced fully populated; see Config.
type Record struct {
	// ModelName is the human-readable model name (DeviceName)
	ModelName string `plist:"DeviceName" yaml:"device_name"`

	// FirmwareFileName is the firmware image to download (FilePath)
	FirmwareFileName string `plist:"FilePath" yaml:"file_path"`

	// ColdBootProductID is the product id presented before firmware is loaded
	ColdBootProductID ProductID `plist:"ColdBootProductID" yaml:"cold_boot_product_id"`

	// WarmFirmwareProductID is the product id presented once firmware runs
	WarmFirmwareProductID ProductID `plist:"WarmFirmwareProductID" yaml:"warm_firmware_product_id"`
}

func (r Record) String() string {
	return fmt.Sprintf("%s (cold %s, warm %s): %s",
		r.ModelName, r.ColdBootProductID, r.WarmFirmwareProductID, r.FirmwareFileName)
}
