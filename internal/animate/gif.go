package animate

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"runtime"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/goshore/internal/atomicfile"
)

// DecodeFrames decodes the frame images in parallel, keeping their order
func DecodeFrames(ctx context.Context, paths []string) ([]image.Image, error) {
	imgs := make([]image.Image, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, name := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			img, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("could not decode %q: %w", name, err)
			}
			imgs[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return imgs, nil
}

// scaleToWidth resizes img to the given width, keeping its aspect ratio
func scaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() == width {
		return img
	}
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// Assemble joins the frames into a looping animated GIF at fps frames per
// second. Frames are scaled to width pixels, or to the first frame's width
// when width is zero.
func Assemble(ctx context.Context, paths []string, out string, fps, width int) error {
	if len(paths) == 0 {
		return fmt.Errorf("no frames to assemble")
	}
	if fps < 1 {
		return fmt.Errorf("fps must be at least 1, got %d", fps)
	}

	imgs, err := DecodeFrames(ctx, paths)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = imgs[0].Bounds().Dx()
	}

	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(imgs)),
		Delay: make([]int, len(imgs)),
	}
	delay := max(1, 100/fps)
	for i, img := range imgs {
		scaled := scaleToWidth(img, width)
		pal := image.NewPaletted(scaled.Bounds(), palette.Plan9)
		xdraw.FloydSteinberg.Draw(pal, pal.Bounds(), scaled, scaled.Bounds().Min)
		anim.Image[i] = pal
		anim.Delay[i] = delay
		anim.Config.Height = max(anim.Config.Height, pal.Bounds().Dy())
	}
	anim.Config.Width = width

	return atomicfile.Write(out, func(w io.Writer) error {
		return gif.EncodeAll(w, anim)
	})
}
