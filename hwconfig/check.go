package hwconfig

import (
	"io"
)

// Check inspects the property list at path and reports every problem that
// would make Load fail, instead of stopping at the first one. The returned
// error is nil exactly when Load would succeed. An unreadable file or a
// malformed document is returned as is, since nothing past it can be checked.
// Otherwise the problems are gathered in a *multierror.Error whose Errors each
// match one of the package's failure classes.
//
// Example:
//
//	if err := hwconfig.Check("MIDISPORTFirmware.plist"); err != nil {
//	    var merr *multierror.Error
//	    if errors.As(err, &merr) {
//	        for _, problem := range merr.Errors {
//	            fmt.Println(problem)
//	        }
//	    }
//	}
func Check(path string, opts ...Option) error {
	f, err := openFile(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return CheckReader(f, opts...)
}

// CheckReader is Check for a document read from r.
func CheckReader(r io.ReadSeeker, opts ...Option) error {
	o := newOptions(opts)

	root, _, err := decodeDocument(r)
	if err != nil {
		return err
	}

	_, err = scan(root, o, true)
	return err
}
