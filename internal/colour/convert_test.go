package colour

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestRGBToHSLRoundTrip(t *testing.T) {
	// A grid over the RGB cube plus the corners.
	var colours []RGB
	for r := 0.0; r <= 1.0; r += 0.25 {
		for g := 0.0; g <= 1.0; g += 0.25 {
			for b := 0.0; b <= 1.0; b += 0.25 {
				colours = append(colours, RGB{R: r, G: g, B: b})
			}
		}
	}
	colours = append(colours,
		RGB{R: 0.123, G: 0.456, B: 0.789},
		RGB{R: 0.999, G: 0.001, B: 0.5},
	)

	for _, c := range colours {
		got := HSLToRGB(RGBToHSL(c))
		if !almostEqual(got.R, c.R, 1e-9) || !almostEqual(got.G, c.G, 1e-9) || !almostEqual(got.B, c.B, 1e-9) {
			t.Errorf("round trip of %v = %v", c, got)
		}
	}
}

func TestHSLToRGBWrapsHue(t *testing.T) {
	base := HSL{H: 30, S: 0.5, L: 0.5}
	wrapped := HSL{H: 390, S: 0.5, L: 0.5}
	negative := HSL{H: -330, S: 0.5, L: 0.5}

	want := HSLToRGB(base)
	for _, in := range []HSL{wrapped, negative} {
		got := HSLToRGB(in)
		if !almostEqual(got.R, want.R, 1e-9) || !almostEqual(got.G, want.G, 1e-9) || !almostEqual(got.B, want.B, 1e-9) {
			t.Errorf("HSLToRGB(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestHueContinuityAcrossWrap(t *testing.T) {
	before := HSLToRGB(HSL{H: 359.999, S: 0.7, L: 0.5})
	after := HSLToRGB(HSL{H: 0.001, S: 0.7, L: 0.5})

	hb := RGBToHSL(before)
	ha := RGBToHSL(after)

	if !almostEqual(hb.S, ha.S, 1e-6) || !almostEqual(hb.L, ha.L, 1e-6) {
		t.Errorf("saturation/lightness jumped across hue wrap: %v vs %v", hb, ha)
	}

	gap := math.Abs(hb.H - ha.H)
	if gap > 180 {
		gap = 360 - gap
	}
	if gap > 0.01 {
		t.Errorf("hue gap across wrap = %g, want ~0.002", gap)
	}
}

func TestAchromaticColours(t *testing.T) {
	for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
		c := RGB{R: v, G: v, B: v}

		hsl := RGBToHSL(c)
		if hsl.S != 0 || hsl.H != 0 {
			t.Errorf("RGBToHSL(%v) = %+v, want S=0 H=0", c, hsl)
		}

		lch := RGBToLCH(c)
		if lch.C > 1e-4 || lch.H != 0 {
			t.Errorf("RGBToLCH(%v) = %+v, want C~0 H=0", c, lch)
		}
	}
}

func TestRGBToLabKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want Lab
	}{
		{name: "white", in: RGB{R: 1, G: 1, B: 1}, want: Lab{L: 100, A: 0, B: 0}},
		{name: "black", in: RGB{R: 0, G: 0, B: 0}, want: Lab{L: 0, A: 0, B: 0}},
		{name: "red", in: RGB{R: 1, G: 0, B: 0}, want: Lab{L: 53.2408, A: 80.0925, B: 67.2032}},
		{name: "green", in: RGB{R: 0, G: 1, B: 0}, want: Lab{L: 87.7347, A: -86.1827, B: 83.1793}},
		{name: "blue", in: RGB{R: 0, G: 0, B: 1}, want: Lab{L: 32.2970, A: 79.1875, B: -107.8602}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToLab(tt.in)
			if !almostEqual(got.L, tt.want.L, 1e-3) ||
				!almostEqual(got.A, tt.want.A, 1e-3) ||
				!almostEqual(got.B, tt.want.B, 1e-3) {
				t.Errorf("RGBToLab(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabLCHRoundTrip(t *testing.T) {
	labs := []Lab{
		{L: 50, A: 20, B: -30},
		{L: 95, A: -5, B: 80},
		{L: 10, A: 0.001, B: 0.001},
		{L: 75, A: -40, B: 0},
		{L: 30, A: 0, B: -60},
	}

	for _, lab := range labs {
		got := LCHToLab(LabToLCH(lab))
		if !almostEqual(got.L, lab.L, 1e-9) ||
			!almostEqual(got.A, lab.A, 1e-9) ||
			!almostEqual(got.B, lab.B, 1e-9) {
			t.Errorf("Lab->LCH->Lab of %+v = %+v", lab, got)
		}
	}
}

func TestRGBXYZRoundTrip(t *testing.T) {
	// The published forward and inverse matrices are quoted to seven
	// decimals, so the round trip is only good to about 1e-5.
	colours := []RGB{
		{R: 1, G: 0, B: 0},
		{R: 0.2, G: 0.4, B: 0.6},
		{R: 0.95, G: 0.95, B: 0.05},
	}

	for _, c := range colours {
		got := XYZToRGB(RGBToXYZ(c))
		if !almostEqual(got.R, c.R, 1e-5) || !almostEqual(got.G, c.G, 1e-5) || !almostEqual(got.B, c.B, 1e-5) {
			t.Errorf("RGB->XYZ->RGB of %v = %v", c, got)
		}
	}
}

func TestRGBLabRoundTrip(t *testing.T) {
	colours := []RGB{
		{R: 0.1, G: 0.9, B: 0.3},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0, G: 0, B: 1},
	}

	for _, c := range colours {
		got := LabToRGB(RGBToLab(c))
		if !almostEqual(got.R, c.R, 1e-5) || !almostEqual(got.G, c.G, 1e-5) || !almostEqual(got.B, c.B, 1e-5) {
			t.Errorf("RGB->Lab->RGB of %v = %v", c, got)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "lowercase", in: "#1a2b3c", want: FromBytes(0x1a, 0x2b, 0x3c)},
		{name: "uppercase", in: "#1A2B3C", want: FromBytes(0x1a, 0x2b, 0x3c)},
		{name: "white", in: "#ffffff", want: RGB{R: 1, G: 1, B: 1}},
		{name: "missing hash", in: "ff0000", wantErr: true},
		{name: "shorthand", in: "#f00", wantErr: true},
		{name: "with alpha", in: "#ff0000ff", wantErr: true},
		{name: "bad digit", in: "#gg0000", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.in, err)
			}
			if !almostEqual(got.R, tt.want.R, 1e-9) || !almostEqual(got.G, tt.want.G, 1e-9) || !almostEqual(got.B, tt.want.B, 1e-9) {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#1a2b3c", "#e41a1c"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q) failed: %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
}
