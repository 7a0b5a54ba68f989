// Package scan walks the block structure of a GIF stream and collects its
// metadata without decompressing image data.
package scan

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/carlreinke/gif"
)

// Extension labels, following ExtensionIntroducer.
const (
	eText           = 0x01 // Plain Text
	eGraphicControl = 0xF9 // Graphic Control
	eComment        = 0xFE // Comment
	eApplication    = 0xFF // Application
)

const (
	graphicControlLen  = 4
	gcDisposalMethod   = 7 << 2
	applicationBlockID = 11 // Identifier + authentication code.
)

// Image is one image of the stream.
type Image struct {
	Descriptor      gif.ImageDescriptor
	LocalColorTable gif.ColorTable
	// Disposal comes from the Graphic Control Extension preceding the
	// image, Unspecified if there is none.
	Disposal gif.DisposalMethod
	// DataLen is the size of the LZW-compressed image data in bytes.
	DataLen int
}

// Metadata is everything but the image data of a GIF stream.
type Metadata struct {
	Header           gif.Header
	Screen           gif.LogicalScreenDescriptor
	GlobalColorTable gif.ColorTable

	Looping   *gif.LoopingSubblock   // nil without a NETSCAPE2.0 looping sub-block.
	Buffering *gif.BufferingSubblock // nil without a NETSCAPE2.0 buffering sub-block.

	Images []Image
}

// Option configures Scan.
type Option func(*scanner)

// WithLogger sets the logger receiving debug messages about skipped blocks.
func WithLogger(l *zap.Logger) Option {
	return func(s *scanner) {
		s.log = l
	}
}

type scanner struct {
	sr  *subblockReader
	log *zap.Logger
	md  *Metadata

	disposal gif.DisposalMethod
}

// Scan reads a GIF stream up to its trailer.
func Scan(r io.Reader, opts ...Option) (*Metadata, error) {
	s := &scanner{
		sr:  newSubblockReader(r),
		log: zap.NewNop(),
		md:  &Metadata{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.readHeaderAndScreenDescriptor(); err != nil {
		return nil, err
	}

	for {
		c, err := s.sr.readByte()
		if err != nil {
			return nil, errors.Wrap(err, "gif: reading block label")
		}
		switch gif.BlockLabel(c) {
		case gif.ExtensionIntroducer:
			if err := s.readExtension(); err != nil {
				return nil, err
			}
		case gif.ImageSeparator:
			if err := s.readImage(); err != nil {
				return nil, err
			}
		case gif.Trailer:
			return s.md, nil
		default:
			return nil, gif.FormatError(fmt.Sprintf("unknown block label 0x%.2x", c))
		}
	}
}

func (s *scanner) readHeaderAndScreenDescriptor() (err error) {
	if s.md.Header, err = gif.ReadHeader(s.sr.r); err != nil {
		return err
	}
	if s.md.Screen, err = gif.ReadLogicalScreenDescriptor(s.sr.r); err != nil {
		return err
	}
	if s.md.Screen.HasGlobalColorTable() {
		s.md.GlobalColorTable, err = gif.ReadColorTable(s.sr.r, s.md.Screen.GlobalColorTableSize())
	}
	return err
}

func (s *scanner) readImage() error {
	d, err := gif.ReadImageDescriptor(s.sr.r)
	if err != nil {
		return err
	}
	if d.Reserved() {
		s.log.Debug("image descriptor has reserved bits set", zap.Uint8("packed", d.PackedFields()))
	}
	img := Image{
		Descriptor: d,
		Disposal:   s.disposal,
	}
	s.disposal = gif.Unspecified

	if d.HasLocalColorTable() {
		if img.LocalColorTable, err = gif.ReadColorTable(s.sr.r, d.LocalColorTableSize()); err != nil {
			return err
		}
	}

	// LZW minimum code size, then the compressed data.
	if _, err = s.sr.readByte(); err != nil {
		return errors.Wrap(err, "gif: reading LZW minimum code size")
	}
	if img.DataLen, err = s.sr.skip(); err != nil {
		return err
	}

	s.md.Images = append(s.md.Images, img)
	return nil
}

func (s *scanner) readExtension() error {
	label, err := s.sr.readByte()
	if err != nil {
		return errors.Wrap(err, "gif: reading extension label")
	}
	switch label {
	case eGraphicControl:
		return s.readGraphicControl()
	case eApplication:
		return s.readApplication()
	case eText, eComment:
	default:
		s.log.Debug("skipping unknown extension", zap.Uint8("label", label))
	}
	_, err = s.sr.skip()
	return err
}

func (s *scanner) readGraphicControl() error {
	p, err := s.sr.next()
	if err != nil {
		return err
	}
	if len(p) != graphicControlLen {
		return gif.FormatError(fmt.Sprintf("graphic control extension length %d", len(p)))
	}
	s.disposal = gif.DisposalMethod((p[0] & gcDisposalMethod) >> 2)
	if !s.disposal.Valid() {
		s.log.Debug("undefined disposal method", zap.Stringer("disposal", s.disposal))
	}
	_, err = s.sr.skip()
	return err
}

func (s *scanner) readApplication() error {
	p, err := s.sr.next()
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}

	// GIF89a requires 11 bytes, but Adobe sometimes writes 10.
	var (
		identifier [8]byte
		authCode   [3]byte
	)
	if len(p) != applicationBlockID {
		s.log.Debug("skipping application extension", zap.Int("size", len(p)))
		_, err = s.sr.skip()
		return err
	}
	copy(identifier[:], p[:8])
	copy(authCode[:], p[8:])
	if !gif.IsNetscapeApplication(identifier, authCode) {
		s.log.Debug("skipping application extension", zap.ByteString("identifier", identifier[:]))
		_, err = s.sr.skip()
		return err
	}

	for {
		p, err := s.sr.next()
		if err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		sb, err := gif.DecodeSubblock(p)
		var unknown gif.UnknownSubblockError
		if errors.As(err, &unknown) {
			s.log.Debug("skipping sub-block", zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}
		switch sb := sb.(type) {
		case *gif.LoopingSubblock:
			s.md.Looping = sb
		case *gif.BufferingSubblock:
			s.md.Buffering = sb
		}
	}
}
