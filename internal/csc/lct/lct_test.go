package lct

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func sampleFields() Fields {
	return Fields{
		TrackNumber: 1,
		Valid:       true,
		Quality:     13,
		KeyWG:       42,
		Strip:       117,
		Pattern:     0xA,
		Bend:        1,
		BX:          6,
		MPCLink:     2,
		BX0:         1,
		SyncErr:     0,
		CSCID:       5,
	}
}

func TestNew_FieldsRoundTrip(t *testing.T) {
	f := sampleFields()
	d := New(f)

	if diff := cmp.Diff(f, d.Fields()); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint32(1), d.TrackNumber())
	assert.True(t, d.IsValid())
	assert.Equal(t, uint32(13), d.Quality())
	assert.Equal(t, uint32(42), d.KeyWG())
	assert.Equal(t, uint32(117), d.Strip())
	assert.Equal(t, uint32(0xA), d.Pattern())
	assert.Equal(t, uint32(1), d.Bend())
	assert.Equal(t, uint32(6), d.BX())
	assert.Equal(t, uint32(2), d.MPCLink())
	assert.Equal(t, uint32(1), d.BX0())
	assert.Equal(t, uint32(0), d.SyncErr())
	assert.Equal(t, uint32(5), d.CSCID())
}

func TestPatternDecoding(t *testing.T) {
	d := New(Fields{Pattern: 0xA})
	assert.Equal(t, uint32(2), d.CLCTPattern())
	assert.Equal(t, uint32(1), d.StripType())

	d = New(Fields{Pattern: 0x5})
	assert.Equal(t, uint32(5), d.CLCTPattern())
	assert.Equal(t, uint32(0), d.StripType())
}

func TestEqual_IgnoresMPCLink(t *testing.T) {
	a := New(sampleFields())
	b := a
	b.SetMPCLink(3)

	assert.Equal(t, uint32(3), b.MPCLink())
	assert.Equal(t, uint32(2), a.MPCLink(), "copies do not share state")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	f := sampleFields()
	f.Quality = 7
	assert.False(t, a.Equal(New(f)))

	f = sampleFields()
	f.TrackNumber = 2
	assert.False(t, a.Equal(New(f)))
}

func TestZeroValue(t *testing.T) {
	var d Digi
	assert.False(t, d.IsValid())
	assert.True(t, d.Equal(New(Fields{})))
}

func TestString(t *testing.T) {
	s := New(sampleFields()).String()
	assert.Contains(t, s, "q=13")
	assert.Contains(t, s, "link=2")
}
