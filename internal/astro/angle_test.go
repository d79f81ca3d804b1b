package astro

import (
	"math"
	"testing"
)

func TestNormalizeAngleRange(t *testing.T) {
	inputs := []float64{0, 0.1, 359.9, 360, 720, -30, -360, -719.5, 123456.789}
	for _, in := range inputs {
		got, err := NormalizeAngle(in)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", in, err)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("normalize(%v) = %v, out of [0,360)", in, got)
		}
	}
}

func TestNormalizeAnglePeriodic(t *testing.T) {
	for _, d := range []float64{0, 15.25, 280.81, 359.999} {
		base, _ := NormalizeAngle(d)
		for _, k := range []float64{-3, -1, 1, 2, 10} {
			got, _ := NormalizeAngle(d + 360*k)
			if math.Abs(got-base) > 1e-9 {
				t.Fatalf("normalize(%v + 360*%v) = %v, want %v", d, k, got, base)
			}
		}
	}
}

func TestNormalizeAngleNegative(t *testing.T) {
	got, err := NormalizeAngle(-30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 330 {
		t.Fatalf("normalize(-30) = %v, want 330", got)
	}
}

func TestNormalizeAngleFullCircle(t *testing.T) {
	got, _ := NormalizeAngle(360)
	if got != 0 {
		t.Fatalf("normalize(360) = %v, want 0", got)
	}
}

func TestNormalizeAngleNonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NormalizeAngle(in); err == nil {
			t.Fatalf("expected error for %v", in)
		}
	}
}

func TestToZodiacPositionBoundary(t *testing.T) {
	pos, err := ToZodiacPosition(30.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.SignIndex != 1 || pos.SignName != "Taurus" {
		t.Fatalf("30.0 should be 0 Taurus, got index %d (%s)", pos.SignIndex, pos.SignName)
	}
	if pos.DegreeInSign != 0 {
		t.Fatalf("degree in sign = %v, want 0", pos.DegreeInSign)
	}
}

func TestToZodiacPositionReconstruct(t *testing.T) {
	for _, d := range []float64{0, 29.99, 30, 280.81, 359.5, -45, 725.3} {
		pos, err := ToZodiacPosition(d)
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", d, err)
		}
		if pos.SignIndex < 0 || pos.SignIndex > 11 {
			t.Fatalf("sign index %d out of range for %v", pos.SignIndex, d)
		}
		n, _ := NormalizeAngle(d)
		rebuilt := float64(pos.SignIndex)*30 + pos.DegreeInSign
		if math.Abs(rebuilt-n) > 1e-9 {
			t.Fatalf("reconstruct(%v) = %v, want %v", d, rebuilt, n)
		}
	}
}

func TestToZodiacPositionMinutes(t *testing.T) {
	pos, _ := ToZodiacPosition(280.81)
	if pos.SignIndex != 9 || pos.SignName != "Capricorn" {
		t.Fatalf("280.81 should be Capricorn, got %s", pos.SignName)
	}
	if math.Abs(pos.DegreeInSign-10.81) > 1e-9 {
		t.Fatalf("degree in sign = %v, want 10.81", pos.DegreeInSign)
	}
	if pos.Minutes != 48 {
		t.Fatalf("minutes = %d, want 48", pos.Minutes)
	}
	if pos.Label != "10°48′ Capricorn" {
		t.Fatalf("label = %q", pos.Label)
	}
}

func TestAngularDistanceSymmetric(t *testing.T) {
	cases := [][2]float64{{0, 0}, {10, 350}, {359.9, 0.1}, {90, 270}, {123.4, 321.9}}
	for _, c := range cases {
		ab, err := AngularDistance(c[0], c[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, _ := AngularDistance(c[1], c[0])
		if ab != ba {
			t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
		}
		if ab < 0 || ab > 180 {
			t.Fatalf("distance %v out of [0,180]", ab)
		}
	}
}

func TestAngularDistanceWrap(t *testing.T) {
	got, _ := AngularDistance(359.9, 0.1)
	if math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("distance(359.9, 0.1) = %v, want 0.2", got)
	}
}
