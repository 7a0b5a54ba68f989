package gif

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Version is a GIF format revision.
//
// Version89a is a superset of Version87a. Sorted color tables, the pixel
// aspect ratio, disposal methods and extensions require Version89a; setting
// them in a Version87a stream is not rejected here, but decoders of that
// revision are free to ignore them.
type Version int

const (
	Version87a Version = iota
	Version89a
)

// String returns the 3-byte version as it appears in the header.
func (v Version) String() string {
	switch v {
	case Version87a:
		return "87a"
	case Version89a:
		return "89a"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ParseVersion parses "87a"/"89a" or a full "GIF87a"/"GIF89a" header.
func ParseVersion(s string) (Version, error) {
	if len(s) == headerLen && s[:len(signature)] == signature {
		s = s[len(signature):]
	}
	switch s {
	case "87a":
		return Version87a, nil
	case "89a":
		return Version89a, nil
	default:
		return 0, FormatError(fmt.Sprintf("can't recognize version %q", s))
	}
}

// Header is the 6-byte signature and version that opens a GIF stream.
type Header struct {
	Version Version
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	switch h.Version {
	case Version87a, Version89a:
	default:
		return nil, UnsupportedError(h.Version.String())
	}
	return []byte(signature + h.Version.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Header) UnmarshalBinary(p []byte) error {
	if err := checkLen(p, headerLen, "header"); err != nil {
		return err
	}
	if string(p[:len(signature)]) != signature {
		return FormatError("malformed header")
	}
	v, err := ParseVersion(string(p[len(signature):]))
	if err != nil {
		return err
	}
	h.Version = v
	return nil
}

// ReadHeader reads the header that opens a GIF stream.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	p := make([]byte, headerLen)
	if err := readFull(r, p, "header"); err != nil {
		return h, err
	}
	err := h.UnmarshalBinary(p)
	return h, err
}

// WriteTo implements io.WriterTo.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	p, err := h.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(p)
	return int64(n), errors.Wrap(err, "gif: writing header")
}
