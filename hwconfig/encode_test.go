package hwconfig

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestEncodeRoundTrip(t *testing.T) {
	doc := configDoc(
		device("MidiSport 1x1", "MidiSport1x1.ihx", 0x1010, 0x1011),
		device("MidiSport 2x2", "MidiSport2x2.ihx", 0x1001, 0x1002),
		device("MidiSport 8x8", "MidiSport8x8.ihx", 0x1031, 0x1032),
		"ignored",
	)

	original, err := Parse(marshal(t, doc, plist.XMLFormat))
	require.NoError(t, err)

	for _, format := range []int{plist.XMLFormat, plist.BinaryFormat, plist.GNUStepFormat} {
		t.Run(plist.FormatNames[format], func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, original.Encode(&buf, format))

			decoded, err := Parse(buf.Bytes())
			require.NoError(t, err)

			assert.Equal(t, format, decoded.Format())
			assert.Equal(t, original.HexLoaderPath(), decoded.HexLoaderPath())
			assert.Equal(t, original.Devices(), decoded.Devices())
		})
	}
}

func TestEncodeXMLLayout(t *testing.T) {
	cfg, err := Parse([]byte(midisportXML))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf, plist.XMLFormat))

	out := buf.String()
	assert.Contains(t, out, "<key>HexLoader</key>")
	assert.Contains(t, out, "<key>DeviceName</key>")
	assert.Contains(t, out, "<key>FilePath</key>")
	assert.Contains(t, out, "<integer>1617</integer>")
	assert.Contains(t, out, "<integer>1618</integer>")
}

func TestEncodeRejectsOpenStep(t *testing.T) {
	cfg, err := Parse([]byte(midisportXML))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = cfg.Encode(&buf, plist.OpenStepFormat)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
