package gif

import "fmt"

// BlockLabel is the byte that introduces a top-level block following the
// Logical Screen Descriptor and Global Color Table.
type BlockLabel byte

const (
	ExtensionIntroducer BlockLabel = 0x21
	ImageSeparator      BlockLabel = 0x2C
	Trailer             BlockLabel = 0x3B
)

// Valid reports whether l is one of the defined labels.
func (l BlockLabel) Valid() bool {
	switch l {
	case ExtensionIntroducer, ImageSeparator, Trailer:
		return true
	}
	return false
}

// String implements Stringer.
func (l BlockLabel) String() string {
	switch l {
	case ExtensionIntroducer:
		return "ExtensionIntroducer"
	case ImageSeparator:
		return "ImageSeparator"
	case Trailer:
		return "Trailer"
	default:
		return fmt.Sprintf("BlockLabel(0x%.2x)", byte(l))
	}
}

// DisposalMethod is the operation to perform once a graphic is done being
// displayed. It requires Version89a.
//
// See http://web.archive.org/web/20240121171058/http://www.imagemagick.org/Usage/anim_basics/
type DisposalMethod byte

const (
	// Unspecified leaves the choice to the decoder.
	Unspecified DisposalMethod = iota
	// DoNotDispose leaves the graphic area as is.
	DoNotDispose
	// RestoreToBackground replaces the graphic area by the background
	// color. Decoders typically make the area transparent instead.
	RestoreToBackground
	// RestoreToPrevious replaces the graphic area by its previous contents.
	RestoreToPrevious
)

// Valid reports whether m is one of the defined methods.
func (m DisposalMethod) Valid() bool {
	return m <= RestoreToPrevious
}

// String implements Stringer.
func (m DisposalMethod) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case DoNotDispose:
		return "DoNotDispose"
	case RestoreToBackground:
		return "RestoreToBackground"
	case RestoreToPrevious:
		return "RestoreToPrevious"
	default:
		return fmt.Sprintf("DisposalMethod(%d)", byte(m))
	}
}
