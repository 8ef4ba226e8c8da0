// Package image turns an image on disk into palette candidates by
// sampling its pixels. Supported formats: JPEG, PNG, GIF, WebP.
package image

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"math"
	"os"

	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/palette"
)

// maxSamples caps how many pixels are visited. Large images are walked
// on a uniform grid, so the same file always yields the same samples.
const maxSamples = 4096

// Input resolves an image file into palette candidates: the distinct
// colours seen while sampling the image on a deterministic grid, in
// first-seen order. It implements palette.Input.
type Input struct {
	Path string
}

// Resolve loads and samples the image.
func (in Input) Resolve() (palette.CandidateSet, error) {
	img, err := Load(in.Path)
	if err != nil {
		return palette.CandidateSet{}, err
	}

	colours := SampleColours(img)
	if len(colours) == 0 {
		return palette.CandidateSet{}, fmt.Errorf("%w: image %s has no pixels", palette.ErrInvalidParameter, in.Path)
	}

	return palette.CandidateSet{Colours: colours, Origin: palette.OriginImage}, nil
}

// Load decodes an image from a file path.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// SampleColours walks the image on a uniform grid and returns the
// distinct colours encountered, in first-seen order.
func SampleColours(img image.Image) []colour.RGB {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()
	if totalPixels <= 0 {
		return nil
	}

	step := 1
	if totalPixels > maxSamples {
		step = int(math.Sqrt(float64(totalPixels) / float64(maxSamples)))
		if step < 1 {
			step = 1
		}
	}

	var colours []colour.RGB
	seen := make(map[colour.RGB]bool)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			c := colour.FromBytes(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			if !seen[c] {
				seen[c] = true
				colours = append(colours, c)
			}
		}
	}

	return colours
}
