// Package util holds small, dependency-free formatting helpers shared by
// the example commands' report output.
package util

import (
	"fmt"
	"math"
)

// FormatValueFactor formats value with an SI magnitude prefix, exactly
// the way the teacher's pkg/util.FormatValueFactor scales circuit
// quantities (volts, amps) for display — generalized here to any
// physical unit string (K, cm^-3, erg cm^3 s^-1, ...).
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatTemperature formats an electron temperature in Kelvin.
func FormatTemperature(te float64) string {
	return fmt.Sprintf("%.2f K", te)
}

// FormatDensity formats an electron density in cm^-3.
func FormatDensity(ne float64) string {
	return fmt.Sprintf("%.2f cm^-3", ne)
}

// FormatWavelength formats a wavelength in Angstrom.
func FormatWavelength(lambda float64) string {
	return fmt.Sprintf("%.2f A", lambda)
}

// FormatAbundance formats an ionic-abundance ratio in scientific notation,
// the conventional way nebular-abundance tables are reported.
func FormatAbundance(value float64) string {
	return fmt.Sprintf("%.4e", value)
}
