// Command gifinfo prints the structural metadata of GIF files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/carlreinke/gif"
	"github.com/carlreinke/gif/internal/scan"
)

var (
	debug   = flag.Bool("debug", false, "enable debug logging")
	palette = flag.Bool("palette", false, "print color tables")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.gif...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var (
		l   *zap.Logger
		err error
	)
	if *debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer l.Sync()
	zap.ReplaceGlobals(l)

	failed := false
	for _, path := range flag.Args() {
		if err := run(os.Stdout, path, l); err != nil {
			l.Error("scan", zap.String("path", path), zap.Error(err))
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func run(w io.Writer, path string, l *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open file")
	}
	defer f.Close()

	md, err := scan.Scan(f, scan.WithLogger(l.With(zap.String("path", path))))
	if err != nil {
		return err
	}
	l.Debug("scanned", zap.String("path", path), zap.Int("images", len(md.Images)))

	printMetadata(w, path, md)
	return nil
}

func printMetadata(w io.Writer, path string, md *scan.Metadata) {
	s := md.Screen
	fmt.Fprintf(w, "%s: GIF%s %dx%d\n", path, md.Header.Version, s.Width(), s.Height())
	fmt.Fprintf(w, "  color resolution: %d bits\n", s.ColorResolution()+1)
	if s.HasGlobalColorTable() {
		fmt.Fprintf(w, "  global color table: %d colors, sorted=%t, background=%d\n",
			s.GlobalColorTableLen(), s.Sorted(), s.BackgroundColorIndex())
		printTable(w, md.GlobalColorTable)
	}
	if s.PixelAspectRatio() != 0 {
		// Aspect ratio is (value + 15) / 64.
		fmt.Fprintf(w, "  pixel aspect ratio: %.3f\n", (float64(s.PixelAspectRatio())+15)/64)
	}
	if md.Looping != nil {
		if md.Looping.LoopCount == 0 {
			fmt.Fprintln(w, "  loop: forever")
		} else {
			fmt.Fprintf(w, "  loop: %d\n", md.Looping.LoopCount)
		}
	}
	if md.Buffering != nil {
		fmt.Fprintf(w, "  buffer: %d bytes\n", md.Buffering.BufferLength)
	}

	for i, img := range md.Images {
		d := img.Descriptor
		var flags []string
		if d.Interlaced() {
			flags = append(flags, "interlaced")
		}
		if d.HasLocalColorTable() {
			flags = append(flags, fmt.Sprintf("local colors=%d", d.LocalColorTableLen()))
		}
		if d.Sorted() {
			flags = append(flags, "sorted")
		}
		fmt.Fprintf(w, "  image %d: %dx%d+%d+%d dispose=%s data=%d [%s]\n",
			i, d.Width(), d.Height(), d.Left(), d.Top(), img.Disposal, img.DataLen, strings.Join(flags, " "))
		printTable(w, img.LocalColorTable)
	}
}

func printTable(w io.Writer, t gif.ColorTable) {
	if !*palette || len(t) == 0 {
		return
	}
	for i := 0; i < len(t); i += 8 {
		end := i + 8
		if end > len(t) {
			end = len(t)
		}
		hex := make([]string, 0, end-i)
		for _, c := range t[i:end] {
			hex = append(hex, c.Hex())
		}
		fmt.Fprintf(w, "    %3d: %s\n", i, strings.Join(hex, " "))
	}
}
