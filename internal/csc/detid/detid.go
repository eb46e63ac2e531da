// Package detid encodes the geographic identifier of a cathode strip
// chamber (or one of its layers) in the 32-bit CMS detector id layout.
package detid

import (
	"errors"
	"fmt"

	"github.com/banshee-data/csctrigger/internal/csc/trignum"
)

// Detector and sub-detector codes in the top bits of every raw id.
const (
	DetMuon   = 2
	SubdetCSC = 2
)

const (
	detStart    = 28
	subdetStart = 25
	subdetMask  = 0x7

	layerMask    = 0x07
	chamberStart = 3
	chamberMask  = 0x3f
	ringStart    = 9
	ringMask     = 0x07
	stationStart = 12
	stationMask  = 0x07
	endcapStart  = 15
	endcapMask   = 0x03
)

// Label ranges accepted by New.
const (
	MinEndcap  = 1
	MaxEndcap  = 2
	MinStation = 1
	MaxStation = 4
	MinRing    = 1
	MaxRing    = 4
	MinChamber = 1
	MaxChamber = 36
	MinLayer   = 0
	MaxLayer   = 6
)

// ErrInvalidLabel is returned by New for labels outside their range.
var ErrInvalidLabel = errors.New("invalid CSC label")

// ID identifies a CSC chamber (layer 0) or a layer within it.
// The zero value is the unset placeholder id.
type ID struct {
	raw uint32
}

// New packs the chamber labels into an ID.
func New(endcap, station, ring, chamber, layer int) (ID, error) {
	switch {
	case endcap < MinEndcap || endcap > MaxEndcap:
		return ID{}, fmt.Errorf("endcap %d: %w", endcap, ErrInvalidLabel)
	case station < MinStation || station > MaxStation:
		return ID{}, fmt.Errorf("station %d: %w", station, ErrInvalidLabel)
	case ring < MinRing || ring > MaxRing:
		return ID{}, fmt.Errorf("ring %d: %w", ring, ErrInvalidLabel)
	case chamber < MinChamber || chamber > MaxChamber:
		return ID{}, fmt.Errorf("chamber %d: %w", chamber, ErrInvalidLabel)
	case layer < MinLayer || layer > MaxLayer:
		return ID{}, fmt.Errorf("layer %d: %w", layer, ErrInvalidLabel)
	}
	raw := uint32(DetMuon)<<detStart |
		uint32(SubdetCSC)<<subdetStart |
		uint32(endcap&endcapMask)<<endcapStart |
		uint32(station&stationMask)<<stationStart |
		uint32(ring&ringMask)<<ringStart |
		uint32(chamber&chamberMask)<<chamberStart |
		uint32(layer&layerMask)
	return ID{raw: raw}, nil
}

// MustNew is New for fixtures and constants; it panics on invalid labels.
func MustNew(endcap, station, ring, chamber, layer int) ID {
	id, err := New(endcap, station, ring, chamber, layer)
	if err != nil {
		panic(err)
	}
	return id
}

// FromRaw wraps a raw id as-is.
func FromRaw(raw uint32) ID { return ID{raw: raw} }

// Raw returns the packed 32-bit id.
func (id ID) Raw() uint32 { return id.raw }

// IsCSC reports whether the id belongs to the muon CSC sub-detector.
func (id ID) IsCSC() bool {
	return id.raw>>detStart == DetMuon && (id.raw>>subdetStart)&subdetMask == SubdetCSC
}

func (id ID) Endcap() uint32  { return (id.raw >> endcapStart) & endcapMask }
func (id ID) Station() uint32 { return (id.raw >> stationStart) & stationMask }
func (id ID) Ring() uint32    { return (id.raw >> ringStart) & ringMask }
func (id ID) Chamber() uint32 { return (id.raw >> chamberStart) & chamberMask }
func (id ID) Layer() uint32   { return id.raw & layerMask }

// ChamberID returns the id of the whole chamber (layer cleared).
func (id ID) ChamberID() ID { return ID{raw: id.raw &^ layerMask} }

// Sector returns the trigger sector (1-6).
func (id ID) Sector() uint32 {
	return uint32(trignum.SectorFromLabels(int(id.Station()), int(id.Ring()), int(id.Chamber())))
}

// Subsector returns the trigger subsector; 0 outside station 1.
func (id ID) Subsector() uint32 {
	return uint32(trignum.SubsectorFromLabels(int(id.Station()), int(id.Chamber())))
}

// CSCID returns the trigger CSC ID (1-9) of the chamber within its sector.
func (id ID) CSCID() uint32 {
	return uint32(trignum.CSCIDFromLabels(int(id.Station()), int(id.Ring()), int(id.Chamber())))
}

// String renders the chamber name, e.g. "ME+1/2/10", with the layer
// appended when set ("ME-3/1/7/4").
func (id ID) String() string {
	sign := "+"
	if id.Endcap() == 2 {
		sign = "-"
	}
	name := fmt.Sprintf("ME%s%d/%d/%d", sign, id.Station(), id.Ring(), id.Chamber())
	if l := id.Layer(); l != 0 {
		name += fmt.Sprintf("/%d", l)
	}
	return name
}
