package scan

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

type byteReader interface {
	io.Reader
	io.ByteReader
}

// subblockReader reads the data sub-blocks that follow extensions and image
// data: a size byte, then that many bytes, until a zero-size terminator.
type subblockReader struct {
	r   byteReader
	buf [255]byte
}

func newSubblockReader(r io.Reader) *subblockReader {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &subblockReader{r: br}
}

func (s *subblockReader) readByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

func (s *subblockReader) readFull(p []byte) error {
	_, err := io.ReadFull(s.r, p)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// next returns the data of the next sub-block, or nil at the terminator.
// The returned slice is only valid until the following call.
func (s *subblockReader) next() ([]byte, error) {
	n, err := s.readByte()
	if err != nil {
		return nil, errors.Wrap(err, "gif: reading sub-block size")
	}
	if n == 0 {
		return nil, nil
	}
	if err := s.readFull(s.buf[:n]); err != nil {
		return nil, errors.Wrap(err, "gif: reading sub-block")
	}
	return s.buf[:n], nil
}

// skip discards sub-blocks up to and including the terminator and returns
// the number of data bytes discarded.
func (s *subblockReader) skip() (int, error) {
	total := 0
	for {
		p, err := s.next()
		if err != nil {
			return total, err
		}
		if p == nil {
			return total, nil
		}
		total += len(p)
	}
}
