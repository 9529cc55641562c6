// Package defaults holds the process-wide immutable constants of the
// psychrometrics engine: atmosphere and temperature references, and the
// default tuning of the Brent root-finder. Grounded on gofem's inp default
// pattern (module-level constants, no mutable globals).
package defaults

// StandardAtmosphere is the reference barometric pressure, in pascals.
const StandardAtmosphere = 101325.0

// StandardTemperature is the reference dry-bulb temperature, in Celsius.
const StandardTemperature = 20.0

// ZeroCelsiusKelvin is the offset between the Celsius and Kelvin scales.
const ZeroCelsiusKelvin = 273.15

// LatentHeatOfVaporization0C is the latent heat of vaporization of water at
// 0 degC, in kJ/kg, used in the humid-air specific-enthalpy correlation.
const LatentHeatOfVaporization0C = 2501.0

// BrentAccuracy is the default convergence tolerance on |f(x*)|.
const BrentAccuracy = 1e-7

// BrentMaxIterations is the default cap on Brent-Dekker kernel iterations.
const BrentMaxIterations = 100

// BrentMaxBracketWidenings is the default cap on automatic bracket widening.
const BrentMaxBracketWidenings = 100

// BrentEvaluationDiff is the default step used to widen an unbracketed interval.
const BrentEvaluationDiff = 1.0

// MaxMassFlowKgPerSecond is the validated upper bound on a flow's mass-flow.
const MaxMassFlowKgPerSecond = 5e9

// EqualityPrecision is a default epsilon for IsEqualWithPrecision
// comparisons; those methods take eps as an argument and do not read it.
const EqualityPrecision = 1e-9
