package scenes

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/kjkrol/lgl/pkg/gfx"
)

const textureSize = 256

// Checkerboard is an 8x8 board of two colors scaled up without filtering.
func Checkerboard(a, b color.Color) *image.RGBA {
	const cells = 8
	small := image.NewRGBA(image.Rect(0, 0, cells, cells))
	for y := 0; y < cells; y++ {
		for x := 0; x < cells; x++ {
			if (x+y)%2 == 0 {
				small.Set(x, y, a)
			} else {
				small.Set(x, y, b)
			}
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, textureSize, textureSize))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return dst
}

// Ring is a translucent background with an opaque ring, drawn small and
// smoothed while scaling up.
func Ring(fg color.RGBA) *image.RGBA {
	const n = 64
	small := image.NewRGBA(image.Rect(0, 0, n, n))
	center := float64(n-1) / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center) / center
			if d > 0.55 && d < 0.85 {
				small.SetRGBA(x, y, fg)
			}
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, textureSize, textureSize))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), small, small.Bounds(), xdraw.Src, nil)
	return dst
}

// flipVertical puts the first row at the bottom, where GL expects it.
func flipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		copy(out.Pix[out.PixOffset(b.Min.X, b.Max.Y-1-(y-b.Min.Y)):], src)
	}
	return out
}

func uploadTexture(dev gfx.Device, unit uint32, img *image.RGBA) uint32 {
	tex := dev.GenTexture()
	dev.ActiveTexture(unit)
	dev.BindTexture(tex)
	dev.TexImage2D(flipVertical(img))
	return tex
}
