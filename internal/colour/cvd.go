package colour

import "fmt"

// ErrInvalidSeverity indicates a CVD severity outside [0, 1].
var ErrInvalidSeverity = fmt.Errorf("cvd severity out of range")

// ErrUnknownDeficiency indicates a deficiency name outside the
// supported set.
var ErrUnknownDeficiency = fmt.Errorf("unknown colour vision deficiency")

// Deficiency names a class of colour vision deficiency.
type Deficiency string

const (
	// Protan covers protanomaly and protanopia (reduced or missing
	// long-wavelength cones).
	Protan Deficiency = "protan"

	// Deutan covers deuteranomaly and deuteranopia (medium-wavelength
	// cones).
	Deutan Deficiency = "deutan"

	// Tritan covers tritanomaly and tritanopia (short-wavelength
	// cones).
	Tritan Deficiency = "tritan"
)

// ParseDeficiency resolves a deficiency name.
func ParseDeficiency(name string) (Deficiency, error) {
	switch Deficiency(name) {
	case Protan, Deutan, Tritan:
		return Deficiency(name), nil
	default:
		return "", fmt.Errorf("%w: %q (want protan, deutan, or tritan)", ErrUnknownDeficiency, name)
	}
}

// Full-severity simulation matrices from Machado, Oliveira and
// Fernandes (2009). They operate on linear RGB.
var cvdMatrices = map[Deficiency][3][3]float64{
	Protan: {
		{0.152286, 1.052583, -0.204868},
		{0.114503, 0.786281, 0.099216},
		{-0.003882, -0.048116, 1.051998},
	},
	Deutan: {
		{0.367322, 0.860646, -0.227968},
		{0.280085, 0.672501, 0.047413},
		{-0.011820, 0.042940, 0.968881},
	},
	Tritan: {
		{1.255528, -0.076749, -0.178779},
		{-0.078411, 0.930809, 0.147602},
		{0.004733, 0.691367, 0.303900},
	},
}

// Simulate returns the colour as perceived under the given deficiency
// at the given severity. The full-severity transform is applied in
// linear RGB and blended with the untransformed colour: severity 0 is
// the identity, severity 1 the full transform. Severity outside [0, 1]
// or an unknown deficiency is an error; the input colour is never
// mutated.
func Simulate(c RGB, d Deficiency, severity float64) (RGB, error) {
	if severity < 0 || severity > 1 {
		return RGB{}, fmt.Errorf("%w: %g (want [0, 1])", ErrInvalidSeverity, severity)
	}
	m, ok := cvdMatrices[d]
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q (want protan, deutan, or tritan)", ErrUnknownDeficiency, string(d))
	}

	r := LinearChannel(c.R)
	g := LinearChannel(c.G)
	b := LinearChannel(c.B)

	sr := m[0][0]*r + m[0][1]*g + m[0][2]*b
	sg := m[1][0]*r + m[1][1]*g + m[1][2]*b
	sb := m[2][0]*r + m[2][1]*g + m[2][2]*b

	return RGB{
		R: EncodeChannel(r + severity*(sr-r)),
		G: EncodeChannel(g + severity*(sg-g)),
		B: EncodeChannel(b + severity*(sb-b)),
	}, nil
}
