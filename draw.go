package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/sirupsen/logrus"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// iconGlyph is the target/dart emoji drawn on top of every icon.
const iconGlyph = "\U0001F3AF"

var (
	drawFont, drawFontErr = truetype.Parse(goregular.TTF)

	backgroundColor = color.RGBA{0x66, 0x7e, 0xea, 0xff}
	circleColor     = color.RGBA{0x76, 0x4b, 0xa2, 0xff}

	background = image.NewUniform(backgroundColor)
	white      = image.NewUniform(color.White)
)

// createIcon renders a size×size icon, writes it as PNG to filename and
// reports the file on w.
func createIcon(w io.Writer, size int, filename string) error {
	img, err := renderIcon(size, iconGlyph)
	if err != nil {
		return fmt.Errorf("render %s: %w", filename, err)
	}

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}

	fmt.Fprintf(w, "Created %s\n", filename)
	return nil
}

// renderIcon composes the icon canvas: background, rounded rectangle,
// centered circle and, if the default font can draw it, text.
func renderIcon(size int, text string) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), background, image.Pt(0, 0), draw.Src)

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	filler := rasterx.NewFiller(size, size, scanner)

	radius := float64(size / 6)
	rasterx.AddRoundRect(0, 0, float64(size), float64(size), radius, radius, 0, rasterx.RoundGap, filler)
	fillPath(filler, backgroundColor)

	// The circle's bounding box covers pixels size/4 through size/4+size/2
	// inclusive.
	if pos, diameter := size/4, size/2; diameter > 0 {
		r := float64(diameter+1) / 2
		rasterx.AddCircle(float64(pos)+r, float64(pos)+r, r, filler)
		fillPath(filler, circleColor)
	}

	if err := drawGlyph(img, size, text); err != nil {
		logrus.Debugf("icon %dx%d drawn without glyph: %v", size, size, err)
	}
	return img, nil
}

func fillPath(f *rasterx.Filler, c color.Color) {
	f.SetColor(c)
	f.Draw()
	f.Clear()
}

// drawGlyph draws text in white with its measured bounding box centered in
// a size×size canvas. dst is left untouched when an error is returned.
func drawGlyph(dst draw.Image, size int, text string) error {
	if drawFont == nil {
		return fmt.Errorf("default font: %w", drawFontErr)
	}
	text = strings.Map(func(r rune) rune {
		if noDrawRune(r) {
			return -1
		}
		return r
	}, text)
	if text == "" {
		return errors.New("nothing to draw")
	}

	pt := size / 2
	if pt <= 0 {
		return fmt.Errorf("font size %d too small", pt)
	}
	for _, c := range text {
		if drawFont.Index(c) == 0 {
			return fmt.Errorf("default font has no glyph for %U", c)
		}
	}

	face := truetype.NewFace(drawFont, &truetype.Options{
		Size:    float64(pt),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	d := &font.Drawer{Dst: dst, Src: white, Face: face}
	bounds, _ := d.BoundString(text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if tw <= 0 || th <= 0 {
		return fmt.Errorf("glyph %q measures %dx%d", text, tw, th)
	}

	d.Dot.X = fixed.I((size-tw)/2) - bounds.Min.X
	d.Dot.Y = fixed.I((size-th)/2) - bounds.Min.Y
	d.DrawString(text)
	return nil
}

func noDrawRune(r rune) bool {
	return r == '\r' || r == 0x200D || (0xFE00 <= r && r <= 0xFE0F)
}
