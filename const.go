package gif

// A GIF data stream is a Header, a Logical Screen Descriptor, an optional
// Global Color Table, then any number of blocks each introduced by a
// BlockLabel byte, and finally a Trailer. Multi-byte integers are
// little-endian. This package models the fixed-size records of that stream;
// walking the stream, LZW and sub-block chunking belong to the caller.

const (
	signature = "GIF"

	headerLen                  = 6 // Signature + Version.
	logicalScreenDescriptorLen = 7
	imageDescriptorLen         = 9 // Excluding the leading ImageSeparator.
	colorLen                   = 3 // Bytes per color table entry.

	maxColorTableSize = 7 // Largest 3-bit color table size value.
)

// Logical Screen Descriptor packed fields.
//
//	7:   HasGlobalColorTable
//	6-4: ColorResolution
//	3:   Sorted (89a)
//	2-0: GlobalColorTableSize
var (
	lsdHasGlobalColorTable  = bitField{name: "HasGlobalColorTable", mask: 0x80, shift: 7}
	lsdColorResolution      = bitField{name: "ColorResolution", mask: 0x70, shift: 4}
	lsdSorted               = bitField{name: "Sorted", mask: 0x08, shift: 3}
	lsdGlobalColorTableSize = bitField{name: "GlobalColorTableSize", mask: 0x07, shift: 0}
)

// Image Descriptor packed fields.
//
//	7:   HasLocalColorTable
//	6:   Interlaced
//	5:   Sorted (89a)
//	4-3: Reserved
//	2-0: LocalColorTableSize
var (
	idHasLocalColorTable  = bitField{name: "HasLocalColorTable", mask: 0x80, shift: 7}
	idInterlaced          = bitField{name: "Interlaced", mask: 0x40, shift: 6}
	idSorted              = bitField{name: "Sorted", mask: 0x20, shift: 5}
	idReserved            = bitField{name: "Reserved", mask: 0x18, shift: 3}
	idLocalColorTableSize = bitField{name: "LocalColorTableSize", mask: 0x07, shift: 0}
)
