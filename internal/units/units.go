// Package units provides shared constants and validation for angle units
package units

import (
	"math"
	"slices"
)

// Unit constants
const (
	RAD  = "rad"
	MRAD = "mrad"
	DEG  = "deg"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{RAD, MRAD, DEG}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	return slices.Contains(ValidUnits, unit)
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "rad, mrad, deg"
}

// ConvertAngle converts an angle from radians to the target units.
// Track stub phi values are in radians.
func ConvertAngle(rad float64, targetUnits string) float64 {
	switch targetUnits {
	case DEG:
		return rad * 180 / math.Pi
	case MRAD:
		return rad * 1000
	default:
		return rad // default to radians if unknown unit
	}
}
