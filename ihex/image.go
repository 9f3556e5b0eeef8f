package ihex

// RecordType is the Intel HEX record type field.
type RecordType byte

// Record types.
const (
	TypeData                   RecordType = 0x00
	TypeEndOfFile              RecordType = 0x01
	TypeExtendedSegmentAddress RecordType = 0x02
	TypeStartSegmentAddress    RecordType = 0x03
	TypeExtendedLinearAddress  RecordType = 0x04
	TypeStartLinearAddress     RecordType = 0x05
)

// Image is a parsed Intel HEX firmware image.
type Image struct {
	// Records holds every record in file order, end-of-file included
	Records []*Record
}

// Record is a single line of an Intel HEX file.
type Record struct {
	// Type is the record type
	Type RecordType

	// Address is the 16-bit load offset field
	Address uint16

	// Data is the record payload
	Data []byte

	// Checksum is the record checksum as stored in the file
	Checksum byte
}

// Segment is a run of contiguous data at an absolute address.
type Segment struct {
	Address uint32
	Data    []byte
}

// Segments resolves extended address records and merges adjacent data
// records into contiguous segments, in file order.
func (img *Image) Segments() []Segment {
	var (
		segments []Segment
		base     uint32
	)

	for _, rec := range img.Records {
		switch rec.Type {
		case TypeExtendedSegmentAddress:
			base = uint32(be16(rec.Data)) << 4
		case TypeExtendedLinearAddress:
			base = uint32(be16(rec.Data)) << 16
		case TypeData:
			if len(rec.Data) == 0 {
				continue
			}
			addr := base + uint32(rec.Address)
			if n := len(segments); n > 0 {
				last := &segments[n-1]
				if last.Address+uint32(len(last.Data)) == addr {
					last.Data = append(last.Data, rec.Data...)
					continue
				}
			}
			data := make([]byte, len(rec.Data))
			copy(data, rec.Data)
			segments = append(segments, Segment{Address: addr, Data: data})
		}
	}

	return segments
}

// Size returns the total number of data bytes in the image.
func (img *Image) Size() int {
	total := 0
	for _, rec := range img.Records {
		if rec.Type == TypeData {
			total += len(rec.Data)
		}
	}
	return total
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
