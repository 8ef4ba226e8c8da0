package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/distinct/internal/colour"
	"github.com/jmylchreest/distinct/internal/palette"
)

// writeTestImage writes a small PNG with four solid quadrants.
func writeTestImage(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	quadrants := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		{R: 255, G: 255, A: 255},
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			q := 0
			if x >= 4 {
				q++
			}
			if y >= 4 {
				q += 2
			}
			img.Set(x, y, quadrants[q])
		}
	}

	path := filepath.Join(t.TempDir(), "quadrants.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return path
}

func TestInputResolve(t *testing.T) {
	path := writeTestImage(t)

	set, err := Input{Path: path}.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if set.Origin != palette.OriginImage {
		t.Errorf("origin = %q, want %q", set.Origin, palette.OriginImage)
	}

	want := []colour.RGB{
		{R: 1},
		{G: 1},
		{B: 1},
		{R: 1, G: 1},
	}
	if diff := cmp.Diff(want, set.Colours); diff != "" {
		t.Errorf("colours mismatch (-want +got):\n%s", diff)
	}
}

func TestInputResolveDeterministic(t *testing.T) {
	path := writeTestImage(t)

	a, err := Input{Path: path}.Resolve()
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	b, err := Input{Path: path}.Resolve()
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if diff := cmp.Diff(a.Colours, b.Colours); diff != "" {
		t.Errorf("resolution not deterministic:\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("Load(\"\") succeeded, want error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of directory succeeded, want error")
	}
}
