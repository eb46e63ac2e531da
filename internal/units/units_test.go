package units

import (
	"math"
	"testing"
)

func TestConvertAngle(t *testing.T) {
	tests := []struct {
		name     string
		rad      float64
		units    string
		expected float64
	}{
		{"pi to deg", math.Pi, DEG, 180},
		{"sector width to deg", 62 * math.Pi / 180, DEG, 62},
		{"1 rad to mrad", 1, MRAD, 1000},
		{"1 rad to rad", 1, RAD, 1},
		{"unknown units default to rad", 0.5, "unknown", 0.5},
		{"0 rad to deg", 0, DEG, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertAngle(tt.rad, tt.units)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("ConvertAngle(%f, %s) = %f, want %f", tt.rad, tt.units, result, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid rad", RAD, true},
		{"valid mrad", MRAD, true},
		{"valid deg", DEG, true},
		{"invalid unit", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "DEG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.unit); got != tt.expected {
				t.Errorf("IsValid(%q) = %v, want %v", tt.unit, got, tt.expected)
			}
		})
	}
}

func TestGetValidUnitsString(t *testing.T) {
	if got := GetValidUnitsString(); got != "rad, mrad, deg" {
		t.Errorf("GetValidUnitsString() = %q", got)
	}
}
