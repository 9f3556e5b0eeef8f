// Package ihex parses Intel HEX firmware images, the format of EZ-USB
// firmware files and of the hex loader named by a hardware configuration.
//
// # Record Format
//
// Each line is one record:
//
//	:[ByteCount(2)][Address(4)][Type(2)][Data(2*ByteCount)][Checksum(2)]
//
// Example:
//
//	:0400000001020304F2
//	  04 = Byte count
//	  0000 = Load offset (big-endian)
//	  00 = Record type (data)
//	  01020304 = Data
//	  F2 = Checksum (2's complement of the sum of all preceding bytes)
//
// Record types 00 (data), 01 (end of file), 02 and 04 (extended segment and
// linear address) and 03 and 05 (start address) are recognized.
//
// # Usage
//
//	img, err := ihex.Parse("MidiSport2x2.ihx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, seg := range img.Segments() {
//	    fmt.Printf("0x%04X: %d bytes\n", seg.Address, len(seg.Data))
//	}
//
// Errors include the line number of the offending record.
package ihex
