package runway

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // catalog images are a mix of jpeg and png
	"io"
	"net/http"
	"strings"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// partCropRanges maps a garment part to the vertical slice of a full-body
// product photo that shows it, as (top, bottom) ratios of image height.
var partCropRanges = map[string][2]float64{
	"top":         {0.05, 0.65},
	"bottom":      {0.35, 0.98},
	"full":        {0.02, 0.98},
	"shoes":       {0.65, 0.98},
	"outerwear":   {0.05, 0.8},
	"bag":         {0.2, 0.8},
	"accessories": {0.2, 0.8},
}

// inferPart extracts the garment part from a result key such as
// "top_shirt_0". Returns "" when the prefix is not a known part.
func inferPart(category string) string {
	part, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(category)), "_")
	if _, ok := partCropRanges[part]; ok {
		return part
	}
	return ""
}

// ImageProcessor downloads catalog images and prepares them for the runway:
// part-aware crop, square resize, JPEG encode, data URI.
type ImageProcessor struct {
	httpClient *http.Client
	maxSize    int
}

// NewImageProcessor creates an image processor. maxSize is the square side
// of the processed output, timeout bounds each download.
func NewImageProcessor(timeout time.Duration, maxSize int) *ImageProcessor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxSize <= 0 {
		maxSize = 400
	}
	return &ImageProcessor{
		httpClient: &http.Client{Timeout: timeout},
		maxSize:    maxSize,
	}
}

// ProcessItemImage downloads, crops, and resizes one item image and returns
// it as a JPEG data URI.
func (p *ImageProcessor) ProcessItemImage(ctx context.Context, item domain.RunwayItem) (string, error) {
	data, err := p.download(ctx, item.ImageURL)
	if err != nil {
		return "", err
	}

	processed, err := cropAndResize(data, inferPart(item.Category), p.maxSize)
	if err != nil {
		// Crop failures degrade to the raw download rather than losing
		// the item from the scene.
		processed = data
	}

	return dataURI(processed), nil
}

// loadItemImage returns the cropped square image for collage placement.
func (p *ImageProcessor) loadItemImage(ctx context.Context, item domain.RunwayItem, size int) (image.Image, error) {
	data, err := p.download(ctx, item.ImageURL)
	if err != nil {
		return nil, err
	}

	processed, err := cropAndResize(data, inferPart(item.Category), size)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(processed))
	return img, err
}

// download fetches the image bytes at url.
func (p *ImageProcessor) download(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty url", domain.ErrImageFetch)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrImageFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageFetch, err)
	}
	return data, nil
}

// cropAndResize decodes image bytes, applies the part crop (or a neutral
// center crop when the part is unknown), and scales to a size x size JPEG.
func cropAndResize(data []byte, part string, size int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	y0, y1 := 0.1, 0.9
	if r, ok := partCropRanges[part]; ok {
		y0, y1 = r[0], r[1]
	}

	cropped := centerSquareCrop(img, y0, y1)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), cropped, cropped.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// centerSquareCrop takes the largest square centered horizontally and
// vertically inside the (y0Ratio, y1Ratio) band of the image.
func centerSquareCrop(img image.Image, y0Ratio, y1Ratio float64) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	y0Ratio = clamp(y0Ratio, 0, 1)
	y1Ratio = clamp(y1Ratio, 0, 1)
	if y1Ratio <= y0Ratio {
		y0Ratio, y1Ratio = 0.1, 0.9
	}

	regionHeight := int((y1Ratio - y0Ratio) * float64(height))
	if regionHeight < 1 {
		regionHeight = 1
	}
	side := width
	if regionHeight < side {
		side = regionHeight
	}

	yCenter := int((y0Ratio + y1Ratio) * 0.5 * float64(height))
	y0 := yCenter - side/2
	if y0 < 0 {
		y0 = 0
	}
	if y0 > height-side {
		y0 = height - side
	}
	x0 := (width - side) / 2
	if x0 < 0 {
		x0 = 0
	}

	rect := image.Rect(bounds.Min.X+x0, bounds.Min.Y+y0, bounds.Min.X+x0+side, bounds.Min.Y+y0+side)

	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(rect)
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.Copy(dst, image.Point{}, img, rect, xdraw.Over, nil)
	return dst
}

// dataURI encodes JPEG bytes as a base64 data URI.
func dataURI(data []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
