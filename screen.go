package gif

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ScreenConfig holds every field of a LogicalScreenDescriptor. Omitted
// fields are zero.
type ScreenConfig struct {
	Width  uint16
	Height uint16

	HasGlobalColorTable bool
	// ColorResolution is the number of bits per primary color of the
	// original image minus 1. It must be at most 7.
	ColorResolution byte
	// Sorted requires Version89a.
	Sorted bool
	// GlobalColorTableSize gives 2^(x+1) table entries. It must be at most
	// 7. Without a global color table it should still describe the number of
	// colors of the logical screen.
	GlobalColorTableSize byte

	// BackgroundColorIndex should be zero without a global color table.
	// Decoders typically ignore it and make the background transparent.
	BackgroundColorIndex byte
	// PixelAspectRatio requires Version89a. Zero means unspecified.
	PixelAspectRatio byte
}

// LogicalScreenDescriptor describes the area within which images are
// rendered. It is an immutable value: the With methods return a modified
// copy.
type LogicalScreenDescriptor struct {
	width      uint16
	height     uint16
	packed     byte
	background byte
	aspect     byte
}

// NewLogicalScreenDescriptor builds a descriptor from c. It fails with a
// *RangeError if a 3-bit field is greater than 7.
func NewLogicalScreenDescriptor(c ScreenConfig) (LogicalScreenDescriptor, error) {
	var (
		packed byte
		err    error
	)
	packed = lsdHasGlobalColorTable.setFlag(packed, c.HasGlobalColorTable)
	if packed, err = lsdColorResolution.set(packed, c.ColorResolution); err != nil {
		return LogicalScreenDescriptor{}, err
	}
	packed = lsdSorted.setFlag(packed, c.Sorted)
	if packed, err = lsdGlobalColorTableSize.set(packed, c.GlobalColorTableSize); err != nil {
		return LogicalScreenDescriptor{}, err
	}
	return LogicalScreenDescriptor{
		width:      c.Width,
		height:     c.Height,
		packed:     packed,
		background: c.BackgroundColorIndex,
		aspect:     c.PixelAspectRatio,
	}, nil
}

// Config returns the fields of d.
func (d LogicalScreenDescriptor) Config() ScreenConfig {
	return ScreenConfig{
		Width:                d.width,
		Height:               d.height,
		HasGlobalColorTable:  d.HasGlobalColorTable(),
		ColorResolution:      d.ColorResolution(),
		Sorted:               d.Sorted(),
		GlobalColorTableSize: d.GlobalColorTableSize(),
		BackgroundColorIndex: d.background,
		PixelAspectRatio:     d.aspect,
	}
}

func (d LogicalScreenDescriptor) Width() uint16  { return d.width }
func (d LogicalScreenDescriptor) Height() uint16 { return d.height }

func (d LogicalScreenDescriptor) HasGlobalColorTable() bool {
	return lsdHasGlobalColorTable.isSet(d.packed)
}

func (d LogicalScreenDescriptor) ColorResolution() byte {
	return lsdColorResolution.get(d.packed)
}

func (d LogicalScreenDescriptor) Sorted() bool {
	return lsdSorted.isSet(d.packed)
}

func (d LogicalScreenDescriptor) GlobalColorTableSize() byte {
	return lsdGlobalColorTableSize.get(d.packed)
}

// GlobalColorTableLen returns the number of entries of the global color
// table, or 0 if there is none.
func (d LogicalScreenDescriptor) GlobalColorTableLen() int {
	if !d.HasGlobalColorTable() {
		return 0
	}
	return ColorTableLen(d.GlobalColorTableSize())
}

func (d LogicalScreenDescriptor) BackgroundColorIndex() byte { return d.background }
func (d LogicalScreenDescriptor) PixelAspectRatio() byte     { return d.aspect }

// PackedFields returns the packed field byte as written on the wire.
func (d LogicalScreenDescriptor) PackedFields() byte { return d.packed }

func (d LogicalScreenDescriptor) WithHasGlobalColorTable(v bool) LogicalScreenDescriptor {
	d.packed = lsdHasGlobalColorTable.setFlag(d.packed, v)
	return d
}

// WithColorResolution fails with a *RangeError if v is greater than 7.
func (d LogicalScreenDescriptor) WithColorResolution(v byte) (LogicalScreenDescriptor, error) {
	packed, err := lsdColorResolution.set(d.packed, v)
	if err != nil {
		return d, err
	}
	d.packed = packed
	return d, nil
}

func (d LogicalScreenDescriptor) WithSorted(v bool) LogicalScreenDescriptor {
	d.packed = lsdSorted.setFlag(d.packed, v)
	return d
}

// WithGlobalColorTableSize fails with a *RangeError if v is greater than 7.
func (d LogicalScreenDescriptor) WithGlobalColorTableSize(v byte) (LogicalScreenDescriptor, error) {
	packed, err := lsdGlobalColorTableSize.set(d.packed, v)
	if err != nil {
		return d, err
	}
	d.packed = packed
	return d, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d LogicalScreenDescriptor) MarshalBinary() ([]byte, error) {
	p := make([]byte, logicalScreenDescriptorLen)
	binary.LittleEndian.PutUint16(p[0:2], d.width)
	binary.LittleEndian.PutUint16(p[2:4], d.height)
	p[4] = d.packed
	p[5] = d.background
	p[6] = d.aspect
	return p, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Every 7-byte input
// is a valid descriptor.
func (d *LogicalScreenDescriptor) UnmarshalBinary(p []byte) error {
	if err := checkLen(p, logicalScreenDescriptorLen, "logical screen descriptor"); err != nil {
		return err
	}
	*d = LogicalScreenDescriptor{
		width:      binary.LittleEndian.Uint16(p[0:2]),
		height:     binary.LittleEndian.Uint16(p[2:4]),
		packed:     p[4],
		background: p[5],
		aspect:     p[6],
	}
	return nil
}

// ReadLogicalScreenDescriptor reads the descriptor that follows the header.
func ReadLogicalScreenDescriptor(r io.Reader) (LogicalScreenDescriptor, error) {
	var d LogicalScreenDescriptor
	p := make([]byte, logicalScreenDescriptorLen)
	if err := readFull(r, p, "logical screen descriptor"); err != nil {
		return d, err
	}
	err := d.UnmarshalBinary(p)
	return d, err
}

// WriteTo implements io.WriterTo.
func (d LogicalScreenDescriptor) WriteTo(w io.Writer) (int64, error) {
	p, _ := d.MarshalBinary()
	n, err := w.Write(p)
	return int64(n), errors.Wrap(err, "gif: writing logical screen descriptor")
}
