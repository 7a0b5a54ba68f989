package gif

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// The Netscape 2.0 Application Extension is recognized by the identifier
// and authentication code of the enclosing Application Extension block.
// Each of its data sub-blocks starts with a one-byte sub-block identifier
// followed by a fixed little-endian payload.
const (
	NetscapeApplicationIdentifier = "NETSCAPE"
	NetscapeAuthenticationCode    = "2.0"
)

const (
	loopingSubblockID   = 1
	bufferingSubblockID = 2

	loopingSubblockLen   = 3
	bufferingSubblockLen = 5
)

// IsNetscapeApplication reports whether the identifier and authentication
// code of an Application Extension are those of the Netscape extension.
func IsNetscapeApplication(identifier [8]byte, authCode [3]byte) bool {
	return string(identifier[:]) == NetscapeApplicationIdentifier &&
		string(authCode[:]) == NetscapeAuthenticationCode
}

// Subblock is a sub-block of the Netscape extension: *LoopingSubblock or
// *BufferingSubblock.
type Subblock interface {
	// ID returns the sub-block identifier written before the payload.
	ID() byte
	// MarshalBinary returns the identifier followed by the payload.
	MarshalBinary() ([]byte, error)

	subblock()
}

// LoopingSubblock describes looping behavior.
type LoopingSubblock struct {
	// LoopCount is the number of times the following sequence of images is
	// displayed. Zero means indefinitely.
	LoopCount uint16
}

func (*LoopingSubblock) ID() byte { return loopingSubblockID }
func (*LoopingSubblock) subblock() {}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *LoopingSubblock) MarshalBinary() ([]byte, error) {
	p := make([]byte, loopingSubblockLen)
	p[0] = loopingSubblockID
	binary.LittleEndian.PutUint16(p[1:3], s.LoopCount)
	return p, nil
}

// BufferingSubblock describes buffering behavior.
type BufferingSubblock struct {
	// BufferLength is the amount of image data to buffer before starting
	// to display the sequence of images.
	BufferLength uint32
}

func (*BufferingSubblock) ID() byte { return bufferingSubblockID }
func (*BufferingSubblock) subblock() {}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *BufferingSubblock) MarshalBinary() ([]byte, error) {
	p := make([]byte, bufferingSubblockLen)
	p[0] = bufferingSubblockID
	binary.LittleEndian.PutUint32(p[1:5], s.BufferLength)
	return p, nil
}

// DecodeSubblock decodes the data of one Netscape extension sub-block.
// Bytes past the fixed payload are ignored. An unknown identifier yields an
// UnknownSubblockError, which callers typically skip.
func DecodeSubblock(p []byte) (Subblock, error) {
	if len(p) == 0 {
		return nil, errors.Wrap(io.ErrUnexpectedEOF, "gif: decoding NETSCAPE2.0 sub-block")
	}
	switch p[0] {
	case loopingSubblockID:
		if len(p) < loopingSubblockLen {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "gif: decoding looping sub-block")
		}
		return &LoopingSubblock{LoopCount: binary.LittleEndian.Uint16(p[1:3])}, nil
	case bufferingSubblockID:
		if len(p) < bufferingSubblockLen {
			return nil, errors.Wrap(io.ErrUnexpectedEOF, "gif: decoding buffering sub-block")
		}
		return &BufferingSubblock{BufferLength: binary.LittleEndian.Uint32(p[1:5])}, nil
	default:
		return nil, UnknownSubblockError(p[0])
	}
}
