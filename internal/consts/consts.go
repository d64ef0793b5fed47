// Package consts holds the physical constants shared by the statistical
// equilibrium solver and the recombination-line evaluators.
package consts

const (
	// PlanckH is the Planck constant, erg*s.
	PlanckH = 6.62606957e-27
	// SpeedC is the speed of light, cm/s.
	SpeedC = 2.99792458e10
	// HCoverK is hc/k in cm*K, for the Boltzmann factor exp(-E_cm*HCoverK/T).
	HCoverK = 1.4388

	// ExcitationCoeff is the downward collisional rate-coefficient prefactor:
	// q_ji = ExcitationCoeff * Omega_ij(Te) / (g_j * sqrt(Te)) cm^3/s.
	ExcitationCoeff = 8.629e-6

	// AngstromPerCM converts an energy difference in cm^-1 to a wavelength
	// in Angstrom: lambda = AngstromPerCM / deltaE.
	AngstromPerCM = 1.0e8

	// MinTemperatureK is the floor applied to the temperature diagnostic's
	// search variable, see pkg/diagnostic.
	MinTemperatureK = 5000.0
	// MinDensityCM3 is the floor applied to the density diagnostic's search
	// variable.
	MinDensityCM3 = 1.0

	// WavelengthHbeta is the H I n=4->2 rest wavelength, Angstrom, the
	// anchor of every recombination-line abundance (spec section 4.6/GLOSSARY).
	WavelengthHbeta = 4861.33
	// FluxHbeta is the conventional normalization of dereddened line
	// fluxes, F(Hbeta) = 100.
	FluxHbeta = 100.0
	// WavelengthMatchTolerance is the tolerance (Angstrom) within which a
	// requested wavelength must match a fit table's row (spec section 4.7).
	WavelengthMatchTolerance = 0.01
)
