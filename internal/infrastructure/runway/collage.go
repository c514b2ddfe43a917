package runway

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// Collage layout constants. The canvas shows a neutral silhouette with the
// look's items placed over the matching body regions.
const (
	collageWidth  = 800
	collageHeight = 1200
	cornerRadius  = 24
	shadowAlpha   = 110
)

var (
	collageBackground = color.RGBA{246, 242, 239, 255}
	silhouetteColor   = color.RGBA{215, 210, 205, 255}
)

// collagePlacements maps a garment part to its box on the canvas.
var collagePlacements = map[string]image.Rectangle{
	"top":         image.Rect(200, 230, 600, 600),
	"bottom":      image.Rect(220, 560, 580, 1000),
	"full":        image.Rect(200, 230, 600, 1000),
	"outerwear":   image.Rect(170, 210, 630, 1030),
	"shoes":       image.Rect(260, 980, 540, 1140),
	"bag":         image.Rect(560, 520, 760, 760),
	"accessories": image.Rect(60, 280, 240, 520),
}

// BuildCollage renders a quick visual collage of the look on a silhouette
// and returns it as a JPEG data URI. Items whose image cannot be fetched are
// skipped; an entirely empty collage is still a valid canvas.
func (p *ImageProcessor) BuildCollage(ctx context.Context, items []domain.RunwayItem) (string, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, collageWidth, collageHeight))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{collageBackground}, image.Point{}, draw.Src)
	drawSilhouette(canvas, collageWidth/2)

	for _, item := range items {
		part := inferPart(item.Category)
		box, ok := collagePlacements[part]
		if !ok {
			continue
		}

		img, err := p.loadItemImage(ctx, item, 800)
		if err != nil {
			log.Warn().Err(err).Str("item", item.Name).Msg("collage item skipped")
			continue
		}

		pasteRounded(canvas, img, box)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: 88}); err != nil {
		return "", fmt.Errorf("encode collage: %w", err)
	}
	return dataURI(buf.Bytes()), nil
}

// drawSilhouette paints a stylized figure centered at centerX.
func drawSilhouette(canvas *image.RGBA, centerX int) {
	// Head
	fillEllipse(canvas, image.Rect(centerX-60, 60, centerX+60, 180), silhouetteColor)
	// Shoulders / torso
	fillTrapezoid(canvas, 200, 420, centerX, 170, 120, silhouetteColor)
	// Waist / hips
	fillTrapezoid(canvas, 420, 620, centerX, 120, 170, silhouetteColor)
	// Legs
	fillRect(canvas, image.Rect(centerX-130, 620, centerX-30, 1060), silhouetteColor)
	fillRect(canvas, image.Rect(centerX+30, 620, centerX+130, 1060), silhouetteColor)
	// Feet base
	fillRect(canvas, image.Rect(centerX-150, 1060, centerX+150, 1120), silhouetteColor)
}

func fillRect(canvas *image.RGBA, rect image.Rectangle, c color.RGBA) {
	draw.Draw(canvas, rect, &image.Uniform{c}, image.Point{}, draw.Src)
}

// fillEllipse paints the ellipse inscribed in rect.
func fillEllipse(canvas *image.RGBA, rect image.Rectangle, c color.RGBA) {
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				canvas.SetRGBA(x, y, c)
			}
		}
	}
}

// fillTrapezoid paints a vertically symmetric trapezoid between y0 and y1,
// interpolating the half-width from topHalf to bottomHalf.
func fillTrapezoid(canvas *image.RGBA, y0, y1, centerX, topHalf, bottomHalf int, c color.RGBA) {
	if y1 <= y0 {
		return
	}
	for y := y0; y < y1; y++ {
		t := float64(y-y0) / float64(y1-y0)
		half := int(float64(topHalf) + t*float64(bottomHalf-topHalf))
		fillRect(canvas, image.Rect(centerX-half, y, centerX+half, y+1), c)
	}
}

// pasteRounded scales the image to fill box (center-cropping overflow) and
// pastes it through a rounded-corner mask with a soft drop shadow.
func pasteRounded(canvas *image.RGBA, img image.Image, box image.Rectangle) {
	w, h := box.Dx(), box.Dy()
	fitted := fitFill(img, w, h)
	mask := roundedMask(w, h, cornerRadius)

	shadow := image.Rect(box.Min.X-10, box.Min.Y-10, box.Max.X+10, box.Max.Y+10).
		Add(image.Point{X: 10, Y: 10})
	shadowMask := roundedMask(shadow.Dx(), shadow.Dy(), cornerRadius+2)
	draw.DrawMask(canvas, shadow,
		&image.Uniform{color.RGBA{0, 0, 0, shadowAlpha}}, image.Point{},
		shadowMask, image.Point{}, draw.Over)

	draw.DrawMask(canvas, box, fitted, fitted.Bounds().Min, mask, image.Point{}, draw.Over)
}

// fitFill scales img to cover w x h preserving aspect ratio, cropping the
// overflow around the center.
func fitFill(img image.Image, w, h int) image.Image {
	src := img.Bounds()
	srcW, srcH := src.Dx(), src.Dy()
	if srcW == 0 || srcH == 0 {
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}

	scale := float64(w) / float64(srcW)
	if s := float64(h) / float64(srcH); s > scale {
		scale = s
	}
	scaledW := int(float64(srcW)*scale + 0.5)
	scaledH := int(float64(srcH)*scale + 0.5)

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, src, xdraw.Over, nil)

	x0 := (scaledW - w) / 2
	y0 := (scaledH - h) / 2
	return scaled.SubImage(image.Rect(x0, y0, x0+w, y0+h))
}

// roundedMask builds an alpha mask for a w x h rounded rectangle.
func roundedMask(w, h, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r2 := radius * radius

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inside := true
			// Corner tests: outside the quarter-circle means transparent.
			if x < radius && y < radius {
				dx, dy := radius-x-1, radius-y-1
				inside = dx*dx+dy*dy <= r2
			} else if x >= w-radius && y < radius {
				dx, dy := x-(w-radius), radius-y-1
				inside = dx*dx+dy*dy <= r2
			} else if x < radius && y >= h-radius {
				dx, dy := radius-x-1, y-(h-radius)
				inside = dx*dx+dy*dy <= r2
			} else if x >= w-radius && y >= h-radius {
				dx, dy := x-(w-radius), y-(h-radius)
				inside = dx*dx+dy*dy <= r2
			}
			if inside {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask
}
