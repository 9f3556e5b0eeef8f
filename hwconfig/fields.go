package hwconfig

import (
	"fmt"
	"math"
	"time"

	"howett.net/plist"
)

// Value kinds as reported in FieldError, named after the property-list
// element names.
const (
	kindString     = "string"
	kindInteger    = "integer"
	kindReal       = "real"
	kindBoolean    = "boolean"
	kindData       = "data"
	kindDate       = "date"
	kindArray      = "array"
	kindDictionary = "dictionary"
	kindUID        = "uid"
)

// dictionary is how the plist decoder hands back a <dict> when decoding
// into an interface{}.
type dictionary = map[string]interface{}

// kindOf names the property-list kind of a decoded value.
func kindOf(v interface{}) string {
	switch v.(type) {
	case string:
		return kindString
	case uint64, int64:
		return kindInteger
	case float64, float32:
		return kindReal
	case bool:
		return kindBoolean
	case []byte:
		return kindData
	case time.Time:
		return kindDate
	case []interface{}:
		return kindArray
	case dictionary:
		return kindDictionary
	case plist.UID:
		return kindUID
	default:
		return fmt.Sprintf("%T", v)
	}
}

func lookup(dict dictionary, key, want string) (interface{}, error) {
	v, ok := dict[key]
	if !ok {
		return nil, &FieldError{Key: key, Want: want}
	}
	return v, nil
}

// requiredString returns dict[key] as a string no longer than maxLen bytes.
// A maxLen of zero disables the length bound.
func requiredString(dict dictionary, key string, maxLen int) (string, error) {
	v, err := lookup(dict, key, kindString)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Key: key, Want: kindString, Got: kindOf(v)}
	}

	if maxLen > 0 && len(s) > maxLen {
		return "", &FieldError{
			Key:    key,
			Want:   kindString,
			Got:    kindString,
			Reason: fmt.Sprintf("length %d exceeds %d bytes", len(s), maxLen),
		}
	}

	return s, nil
}

// requiredProductID returns dict[key] as a USB product id. Integers of either
// sign and reals without a fractional part are accepted when they fit in
// 16 bits.
func requiredProductID(dict dictionary, key string) (ProductID, error) {
	v, err := lookup(dict, key, kindInteger)
	if err != nil {
		return 0, err
	}

	outOfRange := func(n interface{}) error {
		return &FieldError{
			Key:    key,
			Want:   kindInteger,
			Got:    kindOf(v),
			Reason: fmt.Sprintf("value %v out of range for a product id", n),
		}
	}

	switch n := v.(type) {
	case uint64:
		if n > math.MaxUint16 {
			return 0, outOfRange(n)
		}
		return ProductID(n), nil

	case int64:
		if n < 0 || n > math.MaxUint16 {
			return 0, outOfRange(n)
		}
		return ProductID(n), nil

	case float32, float64:
		var f float64
		if f32, ok := n.(float32); ok {
			f = float64(f32)
		} else {
			f = n.(float64)
		}
		if f != math.Trunc(f) {
			return 0, &FieldError{
				Key:    key,
				Want:   kindInteger,
				Got:    kindReal,
				Reason: fmt.Sprintf("value %v is not a whole number", f),
			}
		}
		if f < 0 || f > math.MaxUint16 {
			return 0, outOfRange(f)
		}
		return ProductID(f), nil

	default:
		return 0, &FieldError{Key: key, Want: kindInteger, Got: kindOf(v)}
	}
}

// requiredArray returns dict[key] as an array.
func requiredArray(dict dictionary, key string) ([]interface{}, error) {
	v, err := lookup(dict, key, kindArray)
	if err != nil {
		return nil, err
	}

	a, ok := v.([]interface{})
	if !ok {
		return nil, &FieldError{Key: key, Want: kindArray, Got: kindOf(v)}
	}

	return a, nil
}
