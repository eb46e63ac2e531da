// Package trignum maps CSC chamber labels (station, ring, chamber) to the
// trigger labels used by the sector processors (sector, subsector, CSC ID)
// and back.
package trignum

import (
	"errors"
	"fmt"
)

// Trigger label ranges.
const (
	MinStation = 1
	MaxStation = 4

	MinSector = 1
	MaxSector = 6

	MinSubsector = 1
	MaxSubsector = 2

	MinCSCID = 1
	MaxCSCID = 9
)

// ErrOutOfRange is returned when a trigger label falls outside its range.
var ErrOutOfRange = errors.New("trigger label out of range")

// SectorFromLabels returns the trigger sector (1-6) of a chamber.
// Sectors start at chamber 3 (chamber 2 for the 20-degree rings), so the
// lowest-numbered chambers wrap into sector 6.
func SectorFromLabels(station, ring, chamber int) int {
	var result int
	switch {
	case station > 1 && ring > 1:
		// 10-degree chambers: 3-8 -> 1, 9-14 -> 2, ...
		result = int((uint32(chamber-3)&0x7f)/6) + 1
	case station > 1:
		// 20-degree chambers: 2-4 -> 1, 5-7 -> 2, ...
		result = int((uint32(chamber-2)&0x1f)/3) + 1
	default:
		result = int((uint32(chamber-3)&0x7f)/6) + 1
	}
	if result > MaxSector {
		return MaxSector
	}
	return result
}

// SubsectorFromLabels returns the trigger subsector of a chamber. Only
// station 1 has subsectors (1 or 2); every other station returns 0.
func SubsectorFromLabels(station, chamber int) int {
	if station != 1 {
		return 0
	}
	switch chamber {
	case 1:
		chamber = 36
	case 2:
		chamber = 35
	default:
		chamber -= 2
	}
	chamber = ((chamber - 1) % 6) + 1
	return ((chamber - 1) / 3) + 1
}

// CSCIDFromLabels returns the trigger CSC ID (1-9) of a chamber within its
// sector. Ring 4 (ME1/1a) shares the numbering of ring 1.
func CSCIDFromLabels(station, ring, chamber int) int {
	if station == 1 {
		result := chamber%3 + 1
		switch ring {
		case 2:
			result += 3
		case 3:
			result += 6
		}
		return result
	}
	if ring == 1 {
		return (chamber+1)%3 + 1
	}
	return (chamber+3)%6 + 4
}

// RingFromTriggerLabels recovers the ring from a station and trigger CSC ID.
func RingFromTriggerLabels(station, cscid int) (int, error) {
	if station < MinStation || station > MaxStation {
		return 0, fmt.Errorf("station %d: %w", station, ErrOutOfRange)
	}
	if cscid < MinCSCID || cscid > MaxCSCID {
		return 0, fmt.Errorf("cscid %d: %w", cscid, ErrOutOfRange)
	}
	if station == 1 {
		return (cscid-1)/3 + 1, nil
	}
	if cscid <= 3 {
		return 1, nil
	}
	return 2, nil
}

// ChambersInRing returns the number of chambers in a ring: 18 for the
// 20-degree inner rings of stations 2-4, 36 everywhere else.
func ChambersInRing(station, ring int) int {
	if station > 1 && ring == 1 {
		return 18
	}
	return 36
}

// ChamberFromTriggerLabels recovers the chamber number from trigger labels.
// The subsector is only checked in station 1.
func ChamberFromTriggerLabels(sector, subsector, station, cscid int) (int, error) {
	if sector < MinSector || sector > MaxSector {
		return 0, fmt.Errorf("sector %d: %w", sector, ErrOutOfRange)
	}
	if station == 1 && (subsector < MinSubsector || subsector > MaxSubsector) {
		return 0, fmt.Errorf("subsector %d: %w", subsector, ErrOutOfRange)
	}
	ring, err := RingFromTriggerLabels(station, cscid)
	if err != nil {
		return 0, err
	}
	for chamber := 1; chamber <= ChambersInRing(station, ring); chamber++ {
		if SectorFromLabels(station, ring, chamber) != sector {
			continue
		}
		if station == 1 && SubsectorFromLabels(station, chamber) != subsector {
			continue
		}
		if CSCIDFromLabels(station, ring, chamber) == cscid {
			return chamber, nil
		}
	}
	return 0, fmt.Errorf("sector %d subsector %d station %d cscid %d: %w",
		sector, subsector, station, cscid, ErrOutOfRange)
}
