package gif

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ImageConfig holds the settable fields of an ImageDescriptor. Omitted
// fields are zero.
type ImageConfig struct {
	Left   uint16 // Pixels from the left edge of the logical screen.
	Top    uint16 // Pixels from the top edge of the logical screen.
	Width  uint16
	Height uint16

	HasLocalColorTable bool
	Interlaced         bool
	// Sorted requires Version89a.
	Sorted bool
	// LocalColorTableSize gives 2^(x+1) table entries. It must be at most 7
	// and should be zero without a local color table.
	LocalColorTableSize byte
}

// ImageDescriptor describes an image to be displayed. It is an immutable
// value: the With methods return a modified copy.
//
// The packed field byte is kept as decoded, so reserved bits survive
// UnmarshalBinary followed by MarshalBinary, and survive the With methods.
// NewImageDescriptor always clears them.
type ImageDescriptor struct {
	left   uint16
	top    uint16
	width  uint16
	height uint16
	packed byte
}

// NewImageDescriptor builds a descriptor from c. It fails with a
// *RangeError if LocalColorTableSize is greater than 7.
func NewImageDescriptor(c ImageConfig) (ImageDescriptor, error) {
	var packed byte
	packed = idHasLocalColorTable.setFlag(packed, c.HasLocalColorTable)
	packed = idInterlaced.setFlag(packed, c.Interlaced)
	packed = idSorted.setFlag(packed, c.Sorted)
	packed, err := idLocalColorTableSize.set(packed, c.LocalColorTableSize)
	if err != nil {
		return ImageDescriptor{}, err
	}
	return ImageDescriptor{
		left:   c.Left,
		top:    c.Top,
		width:  c.Width,
		height: c.Height,
		packed: packed,
	}, nil
}

// Config returns the settable fields of d. Reserved bits are not part of it.
func (d ImageDescriptor) Config() ImageConfig {
	return ImageConfig{
		Left:                d.left,
		Top:                 d.top,
		Width:               d.width,
		Height:              d.height,
		HasLocalColorTable:  d.HasLocalColorTable(),
		Interlaced:          d.Interlaced(),
		Sorted:              d.Sorted(),
		LocalColorTableSize: d.LocalColorTableSize(),
	}
}

func (d ImageDescriptor) Left() uint16   { return d.left }
func (d ImageDescriptor) Top() uint16    { return d.top }
func (d ImageDescriptor) Width() uint16  { return d.width }
func (d ImageDescriptor) Height() uint16 { return d.height }

func (d ImageDescriptor) HasLocalColorTable() bool {
	return idHasLocalColorTable.isSet(d.packed)
}

func (d ImageDescriptor) Interlaced() bool {
	return idInterlaced.isSet(d.packed)
}

func (d ImageDescriptor) Sorted() bool {
	return idSorted.isSet(d.packed)
}

func (d ImageDescriptor) LocalColorTableSize() byte {
	return idLocalColorTableSize.get(d.packed)
}

// LocalColorTableLen returns the number of entries of the local color
// table, or 0 if there is none.
func (d ImageDescriptor) LocalColorTableLen() int {
	if !d.HasLocalColorTable() {
		return 0
	}
	return ColorTableLen(d.LocalColorTableSize())
}

// Reserved reports whether either reserved bit is set.
func (d ImageDescriptor) Reserved() bool {
	return idReserved.isSet(d.packed)
}

// PackedFields returns the packed field byte as written on the wire.
func (d ImageDescriptor) PackedFields() byte { return d.packed }

func (d ImageDescriptor) WithHasLocalColorTable(v bool) ImageDescriptor {
	d.packed = idHasLocalColorTable.setFlag(d.packed, v)
	return d
}

func (d ImageDescriptor) WithInterlaced(v bool) ImageDescriptor {
	d.packed = idInterlaced.setFlag(d.packed, v)
	return d
}

func (d ImageDescriptor) WithSorted(v bool) ImageDescriptor {
	d.packed = idSorted.setFlag(d.packed, v)
	return d
}

// WithLocalColorTableSize fails with a *RangeError if v is greater than 7.
func (d ImageDescriptor) WithLocalColorTableSize(v byte) (ImageDescriptor, error) {
	packed, err := idLocalColorTableSize.set(d.packed, v)
	if err != nil {
		return d, err
	}
	d.packed = packed
	return d, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The leading
// ImageSeparator is not included.
func (d ImageDescriptor) MarshalBinary() ([]byte, error) {
	p := make([]byte, imageDescriptorLen)
	binary.LittleEndian.PutUint16(p[0:2], d.left)
	binary.LittleEndian.PutUint16(p[2:4], d.top)
	binary.LittleEndian.PutUint16(p[4:6], d.width)
	binary.LittleEndian.PutUint16(p[6:8], d.height)
	p[8] = d.packed
	return p, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Every 9-byte input
// is a valid descriptor.
func (d *ImageDescriptor) UnmarshalBinary(p []byte) error {
	if err := checkLen(p, imageDescriptorLen, "image descriptor"); err != nil {
		return err
	}
	*d = ImageDescriptor{
		left:   binary.LittleEndian.Uint16(p[0:2]),
		top:    binary.LittleEndian.Uint16(p[2:4]),
		width:  binary.LittleEndian.Uint16(p[4:6]),
		height: binary.LittleEndian.Uint16(p[6:8]),
		packed: p[8],
	}
	return nil
}

// ReadImageDescriptor reads a descriptor from r, positioned just after the
// ImageSeparator.
func ReadImageDescriptor(r io.Reader) (ImageDescriptor, error) {
	var d ImageDescriptor
	p := make([]byte, imageDescriptorLen)
	if err := readFull(r, p, "image descriptor"); err != nil {
		return d, err
	}
	err := d.UnmarshalBinary(p)
	return d, err
}

// WriteTo implements io.WriterTo. The leading ImageSeparator is not
// written.
func (d ImageDescriptor) WriteTo(w io.Writer) (int64, error) {
	p, _ := d.MarshalBinary()
	n, err := w.Write(p)
	return int64(n), errors.Wrap(err, "gif: writing image descriptor")
}
