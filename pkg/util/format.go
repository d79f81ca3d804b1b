package util

import (
	"fmt"
	"math"
)

// FormatDMS renders a longitude as degrees, minutes and seconds of arc.
func FormatDMS(angle float64) string {
	deg := math.Floor(angle)
	frac := (angle - deg) * 60
	min := math.Floor(frac)
	sec := math.Round((frac - min) * 60)
	if sec >= 60 {
		sec = 0
		min++
	}
	if min >= 60 {
		min = 0
		deg++
	}
	return fmt.Sprintf("%d°%02d′%02d″", int(deg), int(min), int(sec))
}

// FormatZodiac renders a position within a sign, e.g. "10°48′ Capricorn".
func FormatZodiac(signName string, degreeInSign float64, minutes int) string {
	return fmt.Sprintf("%d°%02d′ %s", int(math.Floor(degreeInSign)), minutes, signName)
}

// FormatOrb renders an aspect orb to two decimal places with a degree mark.
func FormatOrb(orb float64) string {
	return fmt.Sprintf("%.2f°", orb)
}
