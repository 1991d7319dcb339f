package placeholder

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	width    = 1024
	height   = 1024
	margin   = 10
	maxChars = 500
)

var background = color.RGBA{R: 73, G: 109, B: 137, A: 255}

// WriteImage renders a flat-colored PNG with the prompt text wrapped onto it.
// Used when the image-generation service fails so the pipeline keeps moving.
func WriteImage(text, outPath string) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	if len(text) > maxChars {
		text = text[:maxChars]
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	lineHeight := face.Metrics().Height.Ceil() + 2
	cols := (width - 2*margin) / face.Advance // glyphs are fixed-width

	y := margin + face.Metrics().Ascent.Ceil()
	for _, line := range wrap(text, cols) {
		if y > height-margin {
			break
		}
		d.Dot = fixed.P(margin, y)
		d.DrawString(line)
		y += lineHeight
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func wrap(s string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	var cur strings.Builder
	for _, w := range strings.Fields(s) {
		need := len(w)
		if cur.Len() > 0 {
			need += cur.Len() + 1
		}
		if need > cols && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
