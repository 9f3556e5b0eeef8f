// Package hwconfig loads the hardware configuration used to bring EZ-USB
// based devices from their cold-boot state to their warm, fully enumerated
// state.
//
// # Configuration File Format
//
// The configuration is a property list whose top-level value is a
// dictionary:
//
//	<dict>
//	    <key>HexLoader</key>
//	    <string>MIDISPORTloader.ihx</string>
//	    <key>Devices</key>
//	    <array>
//	        <dict>
//	            <key>DeviceName</key>
//	            <string>MidiSport 2x2</string>
//	            <key>FilePath</key>
//	            <string>MidiSport2x2.ihx</string>
//	            <key>ColdBootProductID</key>
//	            <integer>4097</integer>
//	            <key>WarmFirmwareProductID</key>
//	            <integer>4098</integer>
//	        </dict>
//	    </array>
//	</dict>
//
// HexLoader is the loader payload shared by every device. Each Devices entry
// becomes a Record, indexed by its ColdBootProductID. Array elements that are
// not dictionaries are ignored. When two entries share a ColdBootProductID
// the later one replaces the earlier.
//
// # Usage
//
//	cfg, err := hwconfig.Load("MIDISPORTFirmware.plist")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fw, ok := cfg.FirmwareForBootID(0x1001)
//	if !ok {
//	    log.Fatalf("no firmware for this device")
//	}
//	fmt.Println(cfg.HexLoaderPath(), fw.FirmwareFileName)
//
// # Error Handling
//
// A load is all or nothing: the first problem aborts it and no Config is
// returned. Each error matches one class with errors.Is:
//   - ErrUnreadableFile: the file could not be opened
//   - ErrMalformedDocument: the property list does not parse (see DocumentError)
//   - ErrUnexpectedDocumentShape: the top-level value is not a dictionary
//   - ErrMissingRequiredField: HexLoader or Devices is absent or mistyped
//   - ErrMalformedDeviceEntry: a device dictionary is invalid (see DeviceEntryError)
//
// Field-level details are available through errors.As with *FieldError.
// Absent keys and mistyped keys are treated alike. Check reports every
// problem of a document at once, for use on hand-edited files.
package hwconfig
