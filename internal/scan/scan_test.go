package scan_test

import (
	"bytes"
	"image"
	"image/color"
	stdgif "image/gif"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/carlreinke/gif"
	"github.com/carlreinke/gif/internal/scan"
)

func encode(t *testing.T, g *stdgif.GIF) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, stdgif.EncodeAll(&buf, g))
	return buf.Bytes()
}

func frame() *image.Paletted {
	pal := color.Palette{
		color.RGBA{A: 0xFF},
		color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		color.RGBA{R: 0xFF, A: 0xFF},
		color.RGBA{B: 0xFF, A: 0xFF},
	}
	m := image.NewPaletted(image.Rect(0, 0, 4, 3), pal)
	for i := range m.Pix {
		m.Pix[i] = uint8(i % len(pal))
	}
	return m
}

func TestScanAnimated(t *testing.T) {
	data := encode(t, &stdgif.GIF{
		Image:     []*image.Paletted{frame(), frame()},
		Delay:     []int{10, 10},
		Disposal:  []byte{stdgif.DisposalBackground, stdgif.DisposalPrevious},
		LoopCount: 0,
	})

	md, err := scan.Scan(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, gif.Version89a, md.Header.Version)
	assert.Equal(t, uint16(4), md.Screen.Width())
	assert.Equal(t, uint16(3), md.Screen.Height())
	assert.False(t, md.Screen.HasGlobalColorTable())
	assert.Empty(t, md.GlobalColorTable)

	require.NotNil(t, md.Looping)
	assert.Equal(t, uint16(0), md.Looping.LoopCount)
	assert.Nil(t, md.Buffering)

	require.Len(t, md.Images, 2)
	assert.Equal(t, gif.RestoreToBackground, md.Images[0].Disposal)
	assert.Equal(t, gif.RestoreToPrevious, md.Images[1].Disposal)
	for _, img := range md.Images {
		assert.Equal(t, uint16(4), img.Descriptor.Width())
		assert.Equal(t, uint16(3), img.Descriptor.Height())
		assert.True(t, img.Descriptor.HasLocalColorTable())
		assert.Equal(t, 4, img.Descriptor.LocalColorTableLen())
		require.Len(t, img.LocalColorTable, 4)
		assert.Equal(t, gif.Color{}, img.LocalColorTable[0])
		assert.Equal(t, gif.Color{R: 0xFF}, img.LocalColorTable[2])
		assert.Positive(t, img.DataLen)
	}
}

func TestScanStill(t *testing.T) {
	data := encode(t, &stdgif.GIF{Image: []*image.Paletted{frame()}, Delay: []int{0}})

	md, err := scan.Scan(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Nil(t, md.Looping)
	require.Len(t, md.Images, 1)
	assert.Equal(t, gif.Unspecified, md.Images[0].Disposal)
}

// stream builds a GIF with a global color table, skipped extensions, both
// NETSCAPE2.0 sub-blocks, an unknown sub-block and an image descriptor with
// reserved bits set.
func stream(t *testing.T) []byte {
	var buf bytes.Buffer
	_, err := gif.Header{Version: gif.Version89a}.WriteTo(&buf)
	require.NoError(t, err)

	screen, err := gif.NewLogicalScreenDescriptor(gif.ScreenConfig{
		Width:                2,
		Height:               1,
		HasGlobalColorTable:  true,
		ColorResolution:      7,
		BackgroundColorIndex: 1,
	})
	require.NoError(t, err)
	_, err = screen.WriteTo(&buf)
	require.NoError(t, err)
	buf.Write([]byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60})

	// Comment.
	buf.Write([]byte{0x21, 0xFE, 0x02, 'h', 'i', 0x00})
	// Foreign application extension.
	buf.Write([]byte{0x21, 0xFF, 0x0B})
	buf.WriteString("ANIMEXTS1.0")
	buf.Write([]byte{0x03, 0x01, 0x00, 0x00, 0x00})
	// NETSCAPE2.0 with looping, unknown and buffering sub-blocks.
	buf.Write([]byte{0x21, 0xFF, 0x0B})
	buf.WriteString(gif.NetscapeApplicationIdentifier + gif.NetscapeAuthenticationCode)
	for _, sb := range []gif.Subblock{&gif.LoopingSubblock{LoopCount: 7}, &gif.BufferingSubblock{BufferLength: 1000}} {
		p, err := sb.MarshalBinary()
		require.NoError(t, err)
		buf.WriteByte(byte(len(p)))
		buf.Write(p)
	}
	buf.Write([]byte{0x02, 0x03, 0xAA})
	buf.WriteByte(0x00)
	// Graphic control, disposal DoNotDispose.
	buf.Write([]byte{0x21, 0xF9, 0x04, 0x01 << 2, 0x00, 0x00, 0x00, 0x00})

	buf.WriteByte(byte(gif.ImageSeparator))
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x01, 0x00, 0x18})
	buf.Write([]byte{0x02, 0x02, 0x44, 0x01, 0x00})

	buf.WriteByte(byte(gif.Trailer))
	return buf.Bytes()
}

func TestScanStream(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	md, err := scan.Scan(bytes.NewReader(stream(t)), scan.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.True(t, md.Screen.HasGlobalColorTable())
	assert.Equal(t, byte(7), md.Screen.ColorResolution())
	assert.Equal(t, byte(1), md.Screen.BackgroundColorIndex())
	assert.Equal(t, gif.ColorTable{{R: 0x10, G: 0x20, B: 0x30}, {R: 0x40, G: 0x50, B: 0x60}}, md.GlobalColorTable)

	require.NotNil(t, md.Looping)
	assert.Equal(t, uint16(7), md.Looping.LoopCount)
	require.NotNil(t, md.Buffering)
	assert.Equal(t, uint32(1000), md.Buffering.BufferLength)

	require.Len(t, md.Images, 1)
	img := md.Images[0]
	assert.Equal(t, gif.DoNotDispose, img.Disposal)
	assert.True(t, img.Descriptor.Reserved())
	assert.False(t, img.Descriptor.HasLocalColorTable())
	assert.Nil(t, img.LocalColorTable)
	assert.Equal(t, 2, img.DataLen)

	p, err := img.Descriptor.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, byte(0x18), p[8])

	assert.Equal(t, 1, logs.FilterMessage("skipping sub-block").Len())
	assert.Equal(t, 1, logs.FilterMessage("skipping application extension").Len())
	assert.Equal(t, 1, logs.FilterMessage("image descriptor has reserved bits set").Len())
}

func TestScanErrors(t *testing.T) {
	data := stream(t)

	for _, n := range []int{0, 3, 10, 20, 40, len(data) - 1} {
		_, err := scan.Scan(bytes.NewReader(data[:n]))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "truncated at %d", n)
	}

	bad := append([]byte{}, data...)
	bad[len(bad)-1] = 0x00
	_, err := scan.Scan(bytes.NewReader(bad))
	var ferr gif.FormatError
	assert.ErrorAs(t, err, &ferr)

	_, err = scan.Scan(bytes.NewReader([]byte("GIF88a")))
	assert.ErrorAs(t, err, &ferr)
}
