package colour

import (
	"errors"
	"testing"
)

func TestParseDeficiency(t *testing.T) {
	for _, name := range []string{"protan", "deutan", "tritan"} {
		got, err := ParseDeficiency(name)
		if err != nil {
			t.Fatalf("ParseDeficiency(%q) failed: %v", name, err)
		}
		if string(got) != name {
			t.Errorf("ParseDeficiency(%q) = %q", name, got)
		}
	}

	if _, err := ParseDeficiency("monochromacy"); !errors.Is(err, ErrUnknownDeficiency) {
		t.Errorf("ParseDeficiency(monochromacy) error = %v, want ErrUnknownDeficiency", err)
	}
}

func TestSimulateSeverityZeroIsIdentity(t *testing.T) {
	colours := []RGB{
		{R: 1, G: 0, B: 0},
		{R: 0.2, G: 0.7, B: 0.3},
		{R: 0.5, G: 0.5, B: 0.5},
	}

	for _, d := range []Deficiency{Protan, Deutan, Tritan} {
		for _, c := range colours {
			got, err := Simulate(c, d, 0)
			if err != nil {
				t.Fatalf("Simulate(%v, %s, 0) failed: %v", c, d, err)
			}
			if !almostEqual(got.R, c.R, 1e-9) || !almostEqual(got.G, c.G, 1e-9) || !almostEqual(got.B, c.B, 1e-9) {
				t.Errorf("Simulate(%v, %s, 0) = %v, want identity", c, d, got)
			}
		}
	}
}

func TestSimulateBlendsLinearly(t *testing.T) {
	// Severity blends in linear RGB: the half-severity result sits
	// midway between the identity and the full transform.
	c := RGB{R: 0.8, G: 0.3, B: 0.1}

	for _, d := range []Deficiency{Protan, Deutan, Tritan} {
		full, err := Simulate(c, d, 1)
		if err != nil {
			t.Fatalf("Simulate full: %v", err)
		}
		half, err := Simulate(c, d, 0.5)
		if err != nil {
			t.Fatalf("Simulate half: %v", err)
		}

		wantR := (LinearChannel(c.R) + LinearChannel(full.R)) / 2
		wantG := (LinearChannel(c.G) + LinearChannel(full.G)) / 2
		wantB := (LinearChannel(c.B) + LinearChannel(full.B)) / 2

		if !almostEqual(LinearChannel(half.R), wantR, 1e-9) ||
			!almostEqual(LinearChannel(half.G), wantG, 1e-9) ||
			!almostEqual(LinearChannel(half.B), wantB, 1e-9) {
			t.Errorf("%s: half severity is not the linear midpoint", d)
		}
	}
}

func TestSimulateReducesRedGreenSeparation(t *testing.T) {
	red := RGB{R: 1, G: 0, B: 0}
	green := RGB{R: 0, G: 1, B: 0}
	before := MetricCIEDE2000.Distance(red, green)

	for _, d := range []Deficiency{Protan, Deutan} {
		sr, err := Simulate(red, d, 1)
		if err != nil {
			t.Fatalf("Simulate: %v", err)
		}
		sg, err := Simulate(green, d, 1)
		if err != nil {
			t.Fatalf("Simulate: %v", err)
		}
		after := MetricCIEDE2000.Distance(sr, sg)
		if after >= before {
			t.Errorf("%s: red/green distance %g did not shrink from %g", d, after, before)
		}
	}
}

func TestSimulateRejectsBadInput(t *testing.T) {
	c := RGB{R: 0.5, G: 0.5, B: 0.5}

	for _, severity := range []float64{-0.01, 1.01, 2} {
		if _, err := Simulate(c, Protan, severity); !errors.Is(err, ErrInvalidSeverity) {
			t.Errorf("Simulate severity %g error = %v, want ErrInvalidSeverity", severity, err)
		}
	}

	if _, err := Simulate(c, Deficiency("achromat"), 0.5); !errors.Is(err, ErrUnknownDeficiency) {
		t.Errorf("Simulate unknown deficiency error = %v, want ErrUnknownDeficiency", err)
	}
}
