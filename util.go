package gif

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// A FormatError reports that the input is not a valid GIF structure.
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("gif: invalid format: %s", string(e))
}

// An UnsupportedError reports that the input uses a valid but
// unimplemented feature.
type UnsupportedError string

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("gif: unsupported feature: %s", string(e))
}

// A RangeError reports an attempt to store a value that does not fit the
// bit width of a packed field.
type RangeError struct {
	Field string
	Value byte
	Max   byte
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gif: %s value %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// An UnknownSubblockError reports a Netscape application extension sub-block
// whose identifier is not recognized.
type UnknownSubblockError byte

func (e UnknownSubblockError) Error() string {
	return fmt.Sprintf("gif: unknown NETSCAPE2.0 sub-block 0x%.2x", byte(e))
}

// readFull reads exactly len(p) bytes, turning a clean io.EOF into
// io.ErrUnexpectedEOF since a fixed-size structure was expected.
func readFull(r io.Reader, p []byte, what string) error {
	_, err := io.ReadFull(r, p)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.Wrapf(err, "gif: reading %s", what)
}

// checkLen reports a FormatError unless p is exactly n bytes long.
func checkLen(p []byte, n int, what string) error {
	if len(p) < n {
		return errors.Wrapf(io.ErrUnexpectedEOF, "gif: decoding %s", what)
	}
	if len(p) > n {
		return FormatError(fmt.Sprintf("%s must be %d bytes, got %d", what, n, len(p)))
	}
	return nil
}
