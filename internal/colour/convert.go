package colour

import "math"

// HSL is a colour in the HSL cylinder: hue in degrees [0, 360),
// saturation and lightness in [0, 1]. Hue is 0 for achromatic colours.
type HSL struct {
	H, S, L float64
}

// XYZ is a colour in CIE XYZ under the D65 illuminant, Y normalised so
// that the reference white has Y = 1.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a colour in CIE L*a*b* (D65).
type Lab struct {
	L, A, B float64
}

// LCH is the cylindrical form of Lab: lightness, chroma, and hue in
// degrees [0, 360). Hue is 0 when chroma is (near-)zero.
type LCH struct {
	L, C, H float64
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// CIE Lab piecewise constants. The exact epsilon/kappa pair matters:
// 216/24389 and 24389/27, not the truncated 0.008856/903.3 values.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// RGBToHSL converts gamma sRGB to HSL. Achromatic colours (max == min)
// report saturation 0 and hue 0.
func RGBToHSL(c RGB) HSL {
	maxV := math.Max(c.R, math.Max(c.G, c.B))
	minV := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxV - minV

	l := (maxV + minV) / 2

	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxV + minV)
	} else {
		s = delta / (2 - maxV - minV)
	}

	var h float64
	switch maxV {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}
	h *= 60

	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts HSL to gamma sRGB. Hue is taken modulo 360 first,
// so out-of-range hues wrap rather than error.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		return RGB{R: c.L, G: c.L, B: c.L}
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	return RGB{
		R: hueToChannel(p, q, c.H+120),
		G: hueToChannel(p, q, c.H),
		B: hueToChannel(p, q, c.H-120),
	}
}

func hueToChannel(p, q, t float64) float64 {
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}

// LinearChannel removes the sRGB gamma encoding from one channel.
// Inputs outside [0, 1] extrapolate along the same curve.
func LinearChannel(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// EncodeChannel applies the sRGB gamma encoding to one linear channel.
func EncodeChannel(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// RGBToXYZ converts gamma sRGB to XYZ (D65) by linearising each channel
// and applying the standard sRGB matrix.
func RGBToXYZ(c RGB) XYZ {
	r := LinearChannel(c.R)
	g := LinearChannel(c.G)
	b := LinearChannel(c.B)

	return XYZ{
		X: 0.4124564*r + 0.3575761*g + 0.1804375*b,
		Y: 0.2126729*r + 0.7151522*g + 0.0721750*b,
		Z: 0.0193339*r + 0.1191920*g + 0.9503041*b,
	}
}

// XYZToRGB is the inverse of RGBToXYZ. Colours outside the sRGB gamut
// produce channels outside [0, 1]; callers needing gamut safety clamp
// explicitly.
func XYZToRGB(c XYZ) RGB {
	r := 3.2404542*c.X - 1.5371385*c.Y - 0.4985314*c.Z
	g := -0.9692660*c.X + 1.8760108*c.Y + 0.0415560*c.Z
	b := 0.0556434*c.X - 0.2040259*c.Y + 1.0572252*c.Z

	return RGB{
		R: EncodeChannel(r),
		G: EncodeChannel(g),
		B: EncodeChannel(b),
	}
}

// labF is the CIE Lab nonlinearity: cube root above epsilon, linear
// segment below.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// labFInv inverts labF.
func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// XYZToLab converts XYZ (D65) to Lab.
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ inverts XYZToLab.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	return XYZ{
		X: labFInv(fx) * whiteX,
		Y: labFInv(fy) * whiteY,
		Z: labFInv(fz) * whiteZ,
	}
}

// RGBToLab converts gamma sRGB to Lab via XYZ.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// LabToRGB converts Lab back to gamma sRGB via XYZ.
func LabToRGB(c Lab) RGB {
	return XYZToRGB(LabToXYZ(c))
}

// LabToLCH converts Lab to its cylindrical form. Hue is reported as 0
// when chroma is below 1e-4: under that the colour is achromatic for
// any practical purpose (greys land near 2e-5 rather than exactly 0
// because the published sRGB matrix rows are quoted to seven decimals)
// and the hue angle is numerically meaningless.
func LabToLCH(c Lab) LCH {
	chroma := math.Hypot(c.A, c.B)
	if chroma < 1e-4 {
		return LCH{L: c.L, C: chroma, H: 0}
	}

	h := math.Atan2(c.B, c.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return LCH{L: c.L, C: chroma, H: h}
}

// LCHToLab inverts LabToLCH.
func LCHToLab(c LCH) Lab {
	rad := c.H * math.Pi / 180
	return Lab{
		L: c.L,
		A: c.C * math.Cos(rad),
		B: c.C * math.Sin(rad),
	}
}

// RGBToLCH converts gamma sRGB to LCH via Lab.
func RGBToLCH(c RGB) LCH {
	return LabToLCH(RGBToLab(c))
}
