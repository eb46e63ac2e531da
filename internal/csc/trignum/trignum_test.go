package trignum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectorFromLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		station, ring, chamber int
		want                   int
	}{
		{"ME1/1 first chamber of sector 1", 1, 1, 3, 1},
		{"ME1/1 last chamber of sector 1", 1, 1, 8, 1},
		{"ME1/1 sector 2", 1, 1, 9, 2},
		{"ME1/2 chamber 1 wraps to sector 6", 1, 2, 1, 6},
		{"ME1/2 chamber 2 wraps to sector 6", 1, 2, 2, 6},
		{"ME1/3 chamber 36", 1, 3, 36, 6},
		{"ME2/1 chamber 2", 2, 1, 2, 1},
		{"ME2/1 chamber 4", 2, 1, 4, 1},
		{"ME2/1 chamber 5", 2, 1, 5, 2},
		{"ME3/1 chamber 1 wraps to sector 6", 3, 1, 1, 6},
		{"ME4/1 chamber 18", 4, 1, 18, 6},
		{"ME2/2 chamber 3", 2, 2, 3, 1},
		{"ME3/2 chamber 14", 3, 2, 14, 2},
		{"ME4/2 chamber 2", 4, 2, 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectorFromLabels(tt.station, tt.ring, tt.chamber))
		})
	}
}

func TestSubsectorFromLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, SubsectorFromLabels(2, 5), "only station 1 has subsectors")
	assert.Equal(t, 0, SubsectorFromLabels(4, 30))

	want := map[int]int{3: 1, 4: 1, 5: 1, 6: 2, 7: 2, 8: 2, 9: 1, 33: 1, 35: 1, 36: 2, 1: 2, 2: 2}
	for chamber, sub := range want {
		assert.Equal(t, sub, SubsectorFromLabels(1, chamber), "chamber %d", chamber)
	}
}

func TestCSCIDFromLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, CSCIDFromLabels(1, 1, 3))
	assert.Equal(t, 3, CSCIDFromLabels(1, 1, 5))
	assert.Equal(t, 1, CSCIDFromLabels(1, 4, 3), "ME1/1a numbers like ME1/1")
	assert.Equal(t, 4, CSCIDFromLabels(1, 2, 3))
	assert.Equal(t, 9, CSCIDFromLabels(1, 3, 5))
	assert.Equal(t, 1, CSCIDFromLabels(2, 1, 2))
	assert.Equal(t, 3, CSCIDFromLabels(3, 1, 4))
	assert.Equal(t, 4, CSCIDFromLabels(2, 2, 3))
	assert.Equal(t, 9, CSCIDFromLabels(4, 2, 8))
}

func TestRingFromTriggerLabels(t *testing.T) {
	t.Parallel()

	ring, err := RingFromTriggerLabels(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, ring)

	ring, err = RingFromTriggerLabels(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, ring)

	ring, err = RingFromTriggerLabels(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, ring)

	_, err = RingFromTriggerLabels(5, 1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = RingFromTriggerLabels(2, 10)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestChamberFromTriggerLabels_RoundTrip(t *testing.T) {
	t.Parallel()

	rings := map[int][]int{1: {1, 2, 3}, 2: {1, 2}, 3: {1, 2}, 4: {1, 2}}
	for station := MinStation; station <= MaxStation; station++ {
		for _, ring := range rings[station] {
			for chamber := 1; chamber <= ChambersInRing(station, ring); chamber++ {
				sector := SectorFromLabels(station, ring, chamber)
				sub := SubsectorFromLabels(station, chamber)
				cscid := CSCIDFromLabels(station, ring, chamber)

				gotRing, err := RingFromTriggerLabels(station, cscid)
				require.NoError(t, err)
				require.Equal(t, ring, gotRing, "ME%d/%d/%d", station, ring, chamber)

				got, err := ChamberFromTriggerLabels(sector, sub, station, cscid)
				require.NoError(t, err)
				require.Equal(t, chamber, got, "ME%d/%d/%d", station, ring, chamber)
			}
		}
	}
}

func TestChamberFromTriggerLabels_Errors(t *testing.T) {
	t.Parallel()

	_, err := ChamberFromTriggerLabels(0, 1, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ChamberFromTriggerLabels(1, 3, 1, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ChamberFromTriggerLabels(1, 0, 2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestChambersInRing(t *testing.T) {
	assert.Equal(t, 36, ChambersInRing(1, 1))
	assert.Equal(t, 18, ChambersInRing(2, 1))
	assert.Equal(t, 36, ChambersInRing(4, 2))
}
