package hwconfig

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldError(t *testing.T) {
	tests := []struct {
		name    string
		err     *FieldError
		wantMsg string
	}{
		{
			name:    "missing",
			err:     &FieldError{Key: "FilePath", Want: kindString},
			wantMsg: `key "FilePath" is missing`,
		},
		{
			name:    "wrong kind",
			err:     &FieldError{Key: "Devices", Want: kindArray, Got: kindString},
			wantMsg: `key "Devices": want array, got string`,
		},
		{
			name:    "rejected value",
			err:     &FieldError{Key: "ColdBootProductID", Want: kindInteger, Got: kindInteger, Reason: "value 70000 out of range for a product id"},
			wantMsg: `key "ColdBootProductID": value 70000 out of range for a product id`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestDeviceEntryError(t *testing.T) {
	field := &FieldError{Key: "FilePath", Want: kindString}

	named := &DeviceEntryError{Index: 3, DeviceName: "MidiSport 4x4", Err: field}
	assert.Equal(t, `device entry 3 ("MidiSport 4x4"): key "FilePath" is missing`, named.Error())

	anonymous := &DeviceEntryError{Index: 0, Err: field}
	assert.Equal(t, `device entry 0: key "FilePath" is missing`, anonymous.Error())

	wrapped := fmt.Errorf("load: %w", named)
	assert.ErrorIs(t, wrapped, ErrMalformedDeviceEntry)
	assert.NotErrorIs(t, wrapped, ErrMissingRequiredField)

	var got *FieldError
	assert.ErrorAs(t, wrapped, &got)
	assert.Same(t, field, got)
}

func TestDocumentError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &DocumentError{Diagnostic: cause.Error(), Err: cause}

	assert.Equal(t, "malformed property list: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnexpectedDocumentShape)
}

func TestErrorTypes(t *testing.T) {
	var _ error = &DocumentError{}
	var _ error = &FieldError{}
	var _ error = &DeviceEntryError{}
}
