package hwconfig

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{"s", kindString},
		{uint64(1), kindInteger},
		{int64(-1), kindInteger},
		{1.5, kindReal},
		{float32(1.5), kindReal},
		{true, kindBoolean},
		{[]byte{1}, kindData},
		{time.Unix(0, 0), kindDate},
		{[]interface{}{}, kindArray},
		{map[string]interface{}{}, kindDictionary},
		{plist.UID(3), kindUID},
		{struct{}{}, "struct {}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, kindOf(tt.value))
		})
	}
}

func TestRequiredString(t *testing.T) {
	dict := dictionary{
		"name":  "MidiSport 8x8",
		"long":  strings.Repeat("a", 300),
		"count": uint64(8),
	}

	s, err := requiredString(dict, "name", DefaultMaxTextLength)
	require.NoError(t, err)
	assert.Equal(t, "MidiSport 8x8", s)

	s, err = requiredString(dict, "long", 0)
	require.NoError(t, err)
	assert.Len(t, s, 300)

	tests := []struct {
		key    string
		maxLen int
		want   FieldError
	}{
		{"absent", 0, FieldError{Key: "absent", Want: kindString}},
		{"count", 0, FieldError{Key: "count", Want: kindString, Got: kindInteger}},
		{"long", 255, FieldError{Key: "long", Want: kindString, Got: kindString, Reason: "length 300 exceeds 255 bytes"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := requiredString(dict, tt.key, tt.maxLen)
			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.want, *fieldErr)
		})
	}
}

func TestRequiredProductID(t *testing.T) {
	tests := []struct {
		name    string
		value   interface{}
		want    ProductID
		wantErr string
	}{
		{name: "unsigned", value: uint64(0x1001), want: 0x1001},
		{name: "signed", value: int64(0x1002), want: 0x1002},
		{name: "zero", value: uint64(0), want: 0},
		{name: "max", value: uint64(math.MaxUint16), want: math.MaxUint16},
		{name: "whole real", value: 4097.0, want: 4097},
		{name: "whole float32", value: float32(4098), want: 4098},
		{name: "too large", value: uint64(math.MaxUint16 + 1), wantErr: "out of range"},
		{name: "negative", value: int64(-5), wantErr: "out of range"},
		{name: "negative real", value: -1.0, wantErr: "out of range"},
		{name: "huge real", value: math.Inf(1), wantErr: "out of range"},
		{name: "fraction", value: 1.25, wantErr: "not a whole number"},
		{name: "NaN", value: math.NaN(), wantErr: "not a whole number"},
		{name: "string", value: "4097", wantErr: "want integer, got string"},
		{name: "boolean", value: false, wantErr: "want integer, got boolean"},
		{name: "data", value: []byte{0x10, 0x01}, wantErr: "want integer, got data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requiredProductID(dictionary{"id": tt.value}, "id")
			if tt.wantErr != "" {
				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, "id", fieldErr.Key)
				assert.False(t, fieldErr.Missing())
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("absent", func(t *testing.T) {
		_, err := requiredProductID(dictionary{}, "id")
		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.True(t, fieldErr.Missing())
	})
}

func TestRequiredArray(t *testing.T) {
	dict := dictionary{
		"list": []interface{}{"a", uint64(1)},
		"dict": dictionary{},
	}

	a, err := requiredArray(dict, "list")
	require.NoError(t, err)
	assert.Len(t, a, 2)

	_, err = requiredArray(dict, "dict")
	assert.EqualError(t, err, `key "dict": want array, got dictionary`)

	_, err = requiredArray(dict, "absent")
	assert.EqualError(t, err, `key "absent" is missing`)
}
