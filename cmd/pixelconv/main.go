// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pixelconv converts raw pixel buffers between formats and lists
// the formats it knows about.
//
// Usage:
//
//	pixelconv -list
//	pixelconv -src "24bpp BGR" -dst "96bpp BGR Float Linear" -width 640 -height 480 -in a.raw -out b.raw
//	pixelconv -src 6fddc324-4e03-4bfe-b185-3d77768dc90f -dst "64bpp pBGRA UQ15 Linear" -width 64 -height 64 -in a.raw -out b.raw
//
// Formats are named by identifier or by name. Rows are tightly packed in
// both files. Set PIXELCONV_NO_SIMD or PIXELCONV_NO_WIDE to restrict the
// SIMD tier.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-pixelconv"
	"github.com/ajroetker/go-pixelconv/convert"
	"github.com/ajroetker/go-pixelconv/hwy"
	"github.com/ajroetker/go-pixelconv/pixfmt"
)

type config struct {
	list    bool
	src     string
	dst     string
	width   int
	height  int
	in      string
	out     string
	workers int
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("pixelconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &config{}
	fs.BoolVar(&c.list, "list", false, "List known pixel formats and exit")
	fs.StringVar(&c.src, "src", "", "Source format identifier or name")
	fs.StringVar(&c.dst, "dst", "", "Destination format identifier or name")
	fs.IntVar(&c.width, "width", 0, "Image width in pixels")
	fs.IntVar(&c.height, "height", 0, "Image height in pixels")
	fs.StringVar(&c.in, "in", "", "Input raw file")
	fs.StringVar(&c.out, "out", "", "Output raw file")
	fs.IntVar(&c.workers, "workers", 0, "Worker goroutines (default: GOMAXPROCS, 1 converts on the calling goroutine)")
	fs.BoolVar(&c.verbose, "v", false, "Log debug information to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.list {
		return c, nil
	}
	if c.src == "" || c.dst == "" || c.in == "" || c.out == "" {
		fs.Usage()
		return nil, errors.New("-src, -dst, -in and -out are required")
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, errors.Errorf("invalid size %dx%d", c.width, c.height)
	}
	return c, nil
}

// lookup resolves a format by identifier, falling back to an exact name
// match.
func lookup(reg *pixfmt.Registry, s string) (*pixfmt.PixelFormat, error) {
	if id, err := uuid.Parse(s); err == nil {
		return reg.ByIdentifier(id)
	}
	for _, f := range reg.Formats() {
		if f.Name() == s {
			return f, nil
		}
	}
	return nil, errors.Wrapf(pixfmt.ErrUnsupportedFormat, "name %q", s)
}

func listFormats(reg *pixfmt.Registry, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBPP\tCHANNELS\tNUMERIC\tCOLOR\tALPHA\tENCODING")
	for _, f := range reg.Formats() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%v\t%v\t%v\t%v\n",
			f.ID(), f.Name(), f.BitsPerPixel(), f.ChannelCount(),
			f.NumericRepresentation(), f.ColorRepresentation(), f.AlphaRepresentation(), f.Encoding())
	}
	if err := reg.CatalogErr(); err != nil {
		fmt.Fprintf(tw, "\nnative catalog: %v\n", err)
	}
	return tw.Flush()
}

func convertFile(reg *pixfmt.Registry, c *config, stdout io.Writer) error {
	src, err := lookup(reg, c.src)
	if err != nil {
		return errors.Wrap(err, "source format")
	}
	dst, err := lookup(reg, c.dst)
	if err != nil {
		return errors.Wrap(err, "destination format")
	}
	p, err := convert.ForFormats(src, dst)
	if err != nil {
		return err
	}

	in, err := os.ReadFile(c.in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	srcImg, err := convert.WrapImage(src, c.width, c.height, in, c.width*src.BytesPerPixel())
	if err != nil {
		return errors.Wrap(err, "input")
	}
	dstImg := convert.NewImage(dst, c.width, c.height)

	var pool *convert.Pool
	if c.workers != 1 {
		pool = convert.NewPool(c.workers)
		defer pool.Close()
	}
	if err := convert.ConvertImage(p, srcImg, dstImg, pool); err != nil {
		return err
	}
	out := make([]byte, 0, dstImg.RowBytes()*dstImg.Height())
	for y := range dstImg.Height() {
		out = append(out, dstImg.RowSlice(y)...)
	}
	if err := os.WriteFile(c.out, out, 0o644); err != nil {
		return errors.Wrap(err, "writing output")
	}
	fmt.Fprintf(stdout, "Converted %dx%d %s -> %s with %v\n", c.width, c.height, src, dst, p)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if c.verbose {
		pixelconv.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		pixelconv.Logger().Debug("pixelconv: SIMD tier", "level", hwy.CurrentName(), "width", hwy.CurrentWidth())
	}

	reg := pixfmt.NewRegistry()
	if c.list {
		return listFormats(reg, stdout)
	}
	return convertFile(reg, c, stdout)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
