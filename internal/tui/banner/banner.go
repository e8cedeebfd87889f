// Package banner renders headwords as large block art using half-block characters.
package banner

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

// Threshold for a pixel to count as "on".
const threshold = 60

var loadedFace font.Face

func init() {
	fnt, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return
	}
	loadedFace = truetype.NewFace(fnt, &truetype.Options{
		Size:    64,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Render draws text rows cells tall. The width follows the text's aspect
// ratio; if it would exceed maxCols, Render returns "" and the caller
// should fall back to plain text.
func Render(text string, rows, maxCols int) string {
	if text == "" || rows <= 0 || loadedFace == nil {
		return ""
	}

	src := rasterize(text)
	b := src.Bounds()

	// Half-blocks give two pixel rows per cell; terminal cells are roughly
	// twice as tall as wide, so one column per vertical pixel row keeps
	// the shape.
	cols := b.Dx() * rows * 2 / b.Dy()
	if cols <= 0 || cols > maxCols {
		return ""
	}

	scaled := scaleDown(src, cols, rows*2)
	return imageToHalfBlocks(scaled, cols, rows)
}

// rasterize draws text white on black at the face's natural size.
func rasterize(text string) *image.Gray {
	metrics := loadedFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()

	padding := 4
	width := font.MeasureString(loadedFace, text).Ceil() + padding*2
	height := ascent + descent + padding*2

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(padding, padding+ascent),
	}
	d.DrawString(text)

	return img
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	var b strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				b.WriteRune('█')
			case topOn:
				b.WriteRune('▀')
			case bottomOn:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if the font loaded.
func IsAvailable() bool {
	return loadedFace != nil
}

// cache for rendered banners; the TUI renders from a single goroutine
var cache = make(map[string]string)

// GetCached returns a cached banner or renders a new one.
func GetCached(text string, rows, maxCols int) string {
	if !IsAvailable() {
		return ""
	}

	key := fmt.Sprintf("%s/%d/%d", text, rows, maxCols)
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := Render(text, rows, maxCols)
	cache[key] = rendered
	return rendered
}

// RowsForFontSize maps the 0-100 font size slider to a banner height.
func RowsForFontSize(size int) int {
	switch {
	case size < 25:
		return 3
	case size < 50:
		return 4
	case size < 75:
		return 5
	default:
		return 6
	}
}
