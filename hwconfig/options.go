package hwconfig

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxTextLength bounds DeviceName, FilePath and HexLoader. It matches
// the 256-byte C buffers (terminator included) used by the EZ-USB loader
// tools that read the same files.
const DefaultMaxTextLength = 255

type options struct {
	logger        logrus.FieldLogger
	maxTextLength int
}

func defaultOptions() options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return options{
		logger:        discard,
		maxTextLength: DefaultMaxTextLength,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option is a functional option for Load, Decode, Parse and Check.
type Option func(*options)

// WithLogger sets the logger used to report load progress. Nothing is logged
// by default.
//
// Example:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	cfg, err := hwconfig.Load("MIDISPORTFirmware.plist", hwconfig.WithLogger(log))
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxTextLength sets the maximum length in bytes of text fields.
// Values below 1 are ignored.
func WithMaxTextLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTextLength = n
		}
	}
}
