// Package binning holds the constants that convert packed eta/phi bins of a
// track stub into physical coordinates.
//
// Constants are built once at startup, either as Default or from the
// binning config file, and passed by value to the conversions. There is no
// way to change them after construction.
package binning

import (
	"fmt"
	"math"
)

// CSC geometry defaults.
const (
	MinEta         = 0.9
	MaxEta         = 2.5
	EtaBins        = 64
	SectorWidthDeg = 62.0
	PhiBits        = 12
)

// Constants converts packed bins to eta and phi:
//
//	eta = etaBin*EtaBinWidth + EtaMin
//	phi = phiBin*PhiBinWidth
type Constants struct {
	etaBinWidth float64
	phiBinWidth float64
	etaMin      float64
}

// New returns Constants with the given widths and eta offset.
func New(etaBinWidth, phiBinWidth, etaMin float64) Constants {
	return Constants{etaBinWidth: etaBinWidth, phiBinWidth: phiBinWidth, etaMin: etaMin}
}

// FromGeometry derives the bin widths from the eta range, the number of eta
// bins, the sector width in degrees and the global phi bit width.
func FromGeometry(etaMin, etaMax float64, etaBins int, sectorWidthDeg float64, phiBits int) Constants {
	sectorRad := sectorWidthDeg * math.Pi / 180
	return New(
		(etaMax-etaMin)/float64(etaBins),
		sectorRad/float64(uint64(1)<<uint(phiBits)),
		etaMin,
	)
}

// Default returns the constants for the standard CSC geometry.
func Default() Constants {
	return FromGeometry(MinEta, MaxEta, EtaBins, SectorWidthDeg, PhiBits)
}

func (c Constants) EtaBinWidth() float64 { return c.etaBinWidth }
func (c Constants) PhiBinWidth() float64 { return c.phiBinWidth }
func (c Constants) EtaMin() float64      { return c.etaMin }

// Eta converts a packed eta bin.
func (c Constants) Eta(bin uint32) float64 {
	return float64(bin)*c.etaBinWidth + c.etaMin
}

// Phi converts a packed phi bin.
func (c Constants) Phi(bin uint32) float64 {
	return float64(bin) * c.phiBinWidth
}

func (c Constants) String() string {
	return fmt.Sprintf("eta=%g+bin*%g phi=bin*%g", c.etaMin, c.etaBinWidth, c.phiBinWidth)
}
