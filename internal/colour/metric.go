package colour

import (
	"fmt"
	"math"
)

// ErrUnknownMetric indicates a metric name outside the supported set.
var ErrUnknownMetric = fmt.Errorf("unknown metric")

// Metric selects a perceptual colour difference formula.
type Metric string

const (
	// MetricCIE76 is plain Euclidean distance in Lab. Fast but
	// perceptually non-uniform at high chroma.
	MetricCIE76 Metric = "cie76"

	// MetricDIN99d remaps Lab through the DIN99d transform before
	// taking the Euclidean distance, improving uniformity.
	MetricDIN99d Metric = "din99d"

	// MetricCIEDE2000 is the full CIEDE2000 formula. The most accurate
	// and the most expensive; the default.
	MetricCIEDE2000 Metric = "ciede2000"
)

// ParseMetric resolves a metric name. The empty string resolves to the
// default, CIEDE2000.
func ParseMetric(name string) (Metric, error) {
	switch Metric(name) {
	case "":
		return MetricCIEDE2000, nil
	case MetricCIE76, MetricDIN99d, MetricCIEDE2000:
		return Metric(name), nil
	default:
		return "", fmt.Errorf("%w: %q (want cie76, din99d, or ciede2000)", ErrUnknownMetric, name)
	}
}

// Distance returns the perceptual difference between two colours under
// the metric. It is symmetric and zero for identical colours.
func (m Metric) Distance(a, b RGB) float64 {
	switch m {
	case MetricCIE76:
		return DeltaECIE76(RGBToLab(a), RGBToLab(b))
	case MetricDIN99d:
		return DeltaEDIN99d(XYZToDIN99d(RGBToXYZ(a)), XYZToDIN99d(RGBToXYZ(b)))
	default:
		return DeltaECIEDE2000(RGBToLab(a), RGBToLab(b))
	}
}

// DeltaECIE76 is the 1976 colour difference: Euclidean distance in Lab.
func DeltaECIE76(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DIN99d is a colour in the DIN99d space, in which the plain Euclidean
// distance approximates perceptual difference.
type DIN99d struct {
	L, A, B float64
}

// XYZToDIN99d converts XYZ (D65) to DIN99d coordinates. The X channel
// is first blended with Z (the DIN99d tristimulus correction), a Lab
// value is computed against the correspondingly corrected white point,
// and the result is rotated and compressed.
func XYZToDIN99d(c XYZ) DIN99d {
	const rad = math.Pi / 180

	x := 1.12*c.X - 0.12*c.Z
	wx := 1.12*whiteX - 0.12*whiteZ

	fx := labF(x / wx)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	l := 116*fy - 16
	a := 500 * (fx - fy)
	b := 200 * (fy - fz)

	l99 := 325.22 * math.Log(1+0.0036*l)

	e := a*math.Cos(50*rad) + b*math.Sin(50*rad)
	f := 1.14 * (b*math.Cos(50*rad) - a*math.Sin(50*rad))
	g := math.Hypot(e, f)

	c99 := 22.5 * math.Log(1+0.06*g)
	h99 := math.Atan2(f, e) + 50*rad

	return DIN99d{
		L: l99,
		A: c99 * math.Cos(h99),
		B: c99 * math.Sin(h99),
	}
}

// DeltaEDIN99d is the Euclidean distance between DIN99d coordinates.
func DeltaEDIN99d(a, b DIN99d) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaECIEDE2000 is the CIEDE2000 colour difference with the
// parametric factors kL, kC, kH all 1. Implements the formula of
// Sharma, Wu and Dalal (2005), including the hue-rotation term.
func DeltaECIEDE2000(x, y Lab) float64 {
	const deg = math.Pi / 180
	pow7 := func(v float64) float64 {
		v3 := v * v * v
		return v3 * v3 * v
	}

	c1 := math.Hypot(x.A, x.B)
	c2 := math.Hypot(y.A, y.B)
	cBar := (c1 + c2) / 2

	g := 0.5 * (1 - math.Sqrt(pow7(cBar)/(pow7(cBar)+pow7(25))))

	a1 := (1 + g) * x.A
	a2 := (1 + g) * y.A
	c1p := math.Hypot(a1, x.B)
	c2p := math.Hypot(a2, y.B)

	hue := func(a, b float64) float64 {
		if a == 0 && b == 0 {
			return 0
		}
		h := math.Atan2(b, a) / deg
		if h < 0 {
			h += 360
		}
		return h
	}
	h1 := hue(a1, x.B)
	h2 := hue(a2, y.B)

	dL := y.L - x.L
	dC := c2p - c1p

	var dh float64
	switch {
	case c1p*c2p == 0:
		dh = 0
	case math.Abs(h2-h1) <= 180:
		dh = h2 - h1
	case h2-h1 > 180:
		dh = h2 - h1 - 360
	default:
		dh = h2 - h1 + 360
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(dh/2*deg)

	lBar := (x.L + y.L) / 2
	cBarP := (c1p + c2p) / 2

	var hBar float64
	switch {
	case c1p*c2p == 0:
		hBar = h1 + h2
	case math.Abs(h1-h2) <= 180:
		hBar = (h1 + h2) / 2
	case h1+h2 < 360:
		hBar = (h1 + h2 + 360) / 2
	default:
		hBar = (h1 + h2 - 360) / 2
	}

	t := 1 -
		0.17*math.Cos((hBar-30)*deg) +
		0.24*math.Cos(2*hBar*deg) +
		0.32*math.Cos((3*hBar+6)*deg) -
		0.20*math.Cos((4*hBar-63)*deg)

	dTheta := 30 * math.Exp(-((hBar-275)/25)*((hBar-275)/25))
	rc := 2 * math.Sqrt(pow7(cBarP)/(pow7(cBarP)+pow7(25)))
	rt := -math.Sin(2*dTheta*deg) * rc

	lm := lBar - 50
	sl := 1 + 0.015*lm*lm/math.Sqrt(20+lm*lm)
	sc := 1 + 0.045*cBarP
	sh := 1 + 0.015*cBarP*t

	return math.Sqrt(
		(dL/sl)*(dL/sl) +
			(dC/sc)*(dC/sc) +
			(dH/sh)*(dH/sh) +
			rt*(dC/sc)*(dH/sh))
}
