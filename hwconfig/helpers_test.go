package hwconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

const midisportXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>HexLoader</key>
	<string>loader.hex</string>
	<key>Devices</key>
	<array>
		<dict>
			<key>DeviceName</key>
			<string>MidiSport 2x2</string>
			<key>FilePath</key>
			<string>ms2x2.fw</string>
			<key>ColdBootProductID</key>
			<integer>1617</integer>
			<key>WarmFirmwareProductID</key>
			<integer>1618</integer>
		</dict>
	</array>
</dict>
</plist>
`

// device builds a well-formed device dictionary; tests mutate it to break it.
func device(name, path string, cold, warm interface{}) map[string]interface{} {
	return map[string]interface{}{
		keyDeviceName:            name,
		keyFilePath:              path,
		keyColdBootProductID:     cold,
		keyWarmFirmwareProductID: warm,
	}
}

func without(m map[string]interface{}, key string) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func with(m map[string]interface{}, key string, value interface{}) map[string]interface{} {
	out := without(m, key)
	out[key] = value
	return out
}

func configDoc(devices ...interface{}) map[string]interface{} {
	if devices == nil {
		devices = []interface{}{}
	}
	return map[string]interface{}{
		keyHexLoader: "loader.hex",
		keyDevices:   devices,
	}
}

func marshal(t *testing.T, v interface{}, format int) []byte {
	t.Helper()

	data, err := plist.Marshal(v, format)
	require.NoError(t, err)
	return data
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
