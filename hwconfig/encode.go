package hwconfig

import (
	"fmt"
	"io"

	"howett.net/plist"
)

// document mirrors the on-disk layout for encoding.
type document struct {
	HexLoader string   `plist:"HexLoader"`
	Devices   []Record `plist:"Devices"`
}

// Encode writes the configuration as a property list in the given plist
// format (plist.XMLFormat, plist.BinaryFormat, ...). Decoding the output
// yields an equal Config. OpenStep output is rejected because product ids
// would not survive as integers.
func (c *Config) Encode(w io.Writer, format int) error {
	switch format {
	case plist.XMLFormat, plist.BinaryFormat, plist.GNUStepFormat:
	default:
		return fmt.Errorf("cannot encode hardware configuration as %s property list", plist.FormatNames[format])
	}

	enc := plist.NewEncoderForFormat(w, format)
	if format != plist.BinaryFormat {
		enc.Indent("\t")
	}

	doc := document{
		HexLoader: c.hexLoaderPath,
		Devices:   c.Devices(),
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s property list: %w", plist.FormatNames[format], err)
	}
	return nil
}
