package ihex

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Constants for Intel HEX parsing.
const (
	// StartCode begins every record line
	StartCode = ':'

	// MinimumRecordLength is the shortest record in hex characters after the start code
	MinimumRecordLength = 10

	// RecordHeaderSize is the size of the byte count, address and type fields
	RecordHeaderSize = 4

	// RecordChecksumSize is the size of the record checksum field
	RecordChecksumSize = 1

	// DefaultRecordCapacity is the default initial capacity for the records slice
	DefaultRecordCapacity = 256
)

// Parse parses an Intel HEX file from the given path.
//
// Example:
//
//	img, err := ihex.Parse("MidiSport2x2.ihx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d bytes in %d segments\n", img.Size(), len(img.Segments()))
func Parse(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses an Intel HEX image from any io.Reader.
// Blank lines are ignored. The image must end with an end-of-file record and
// nothing but blank lines may follow it.
func ParseReader(r io.Reader) (*Image, error) {
	scanner := bufio.NewScanner(r)
	img := &Image{Records: make([]*Record, 0, DefaultRecordCapacity)}

	lineNum := 0
	sawEOF := false
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if sawEOF {
			return nil, fmt.Errorf("line %d: data after end-of-file record", lineNum)
		}

		rec, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		img.Records = append(img.Records, rec)
		if rec.Type == TypeEndOfFile {
			sawEOF = true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if lineNum == 0 || len(img.Records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	if !sawEOF {
		return nil, fmt.Errorf("missing end-of-file record")
	}

	return img, nil
}

// parseRecord parses a single record line.
//
// Record format:
//
//	:[ByteCount(1)][Address(2)][Type(1)][Data(ByteCount)][Checksum(1)]
//
// All fields are hex-encoded and the address is big-endian.
//
// Example: ":0400000001020304F2"
//
//	ByteCount: 0x04
//	Address: 0x0000
//	Type: 0x00 (data)
//	Data: [0x01, 0x02, 0x03, 0x04]
//	Checksum: 0xF2
func parseRecord(line string) (*Record, error) {
	if line[0] != StartCode {
		return nil, fmt.Errorf("record must start with %q", StartCode)
	}
	line = line[1:]

	if len(line) < MinimumRecordLength {
		return nil, fmt.Errorf("record too short: got %d characters, minimum is %d", len(line), MinimumRecordLength)
	}

	data, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("invalid hex data: %w", err)
	}

	byteCount := int(data[0])
	expectedLen := RecordHeaderSize + byteCount + RecordChecksumSize
	if len(data) != expectedLen {
		return nil, fmt.Errorf("data length mismatch: got %d bytes, expected %d (header=%d + data=%d + checksum=%d)",
			len(data), expectedLen, RecordHeaderSize, byteCount, RecordChecksumSize)
	}

	checksum := data[len(data)-1]
	calculatedChecksum := calculateChecksum(data[:len(data)-1])
	if checksum != calculatedChecksum {
		return nil, fmt.Errorf("checksum mismatch: got 0x%02X, expected 0x%02X",
			checksum, calculatedChecksum)
	}

	rec := &Record{
		Type:     RecordType(data[3]),
		Address:  uint16(data[1])<<8 | uint16(data[2]),
		Data:     make([]byte, byteCount),
		Checksum: checksum,
	}
	copy(rec.Data, data[RecordHeaderSize:RecordHeaderSize+byteCount])

	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// validateRecord checks the payload size each record type requires.
func validateRecord(rec *Record) error {
	want := -1
	switch rec.Type {
	case TypeData:
		return nil
	case TypeEndOfFile:
		want = 0
	case TypeExtendedSegmentAddress, TypeExtendedLinearAddress:
		want = 2
	case TypeStartSegmentAddress, TypeStartLinearAddress:
		want = 4
	default:
		return fmt.Errorf("unknown record type: 0x%02X", byte(rec.Type))
	}

	if len(rec.Data) != want {
		return fmt.Errorf("record type 0x%02X carries %d data bytes, expected %d",
			byte(rec.Type), len(rec.Data), want)
	}
	return nil
}

// calculateChecksum computes the 8-bit record checksum.
// Uses basic summation with 2's complement.
func calculateChecksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return ^sum + 1
}
