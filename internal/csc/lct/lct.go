// Package lct holds the correlated local charged track (LCT) record: the
// trigger primitive a chamber's trigger motherboard builds by pairing an
// anode (wire group) and a cathode (strip) segment.
package lct

import "fmt"

// Fields is the exported form of a Digi, used to build one.
// Values are stored as given; no range is enforced.
type Fields struct {
	TrackNumber uint32 // 1 or 2: best or second-best LCT of the chamber
	Valid       bool
	Quality     uint32 // 4 bits
	KeyWG       uint32
	Strip       uint32 // half-strip index
	Pattern     uint32 // CLCT pattern id in bits 0-2, strip type in bit 3
	Bend        uint32 // 0 left, 1 right
	BX          uint32
	MPCLink     uint32 // sorting order assigned by the muon port card
	BX0         uint32
	SyncErr     uint32
	CSCID       uint32
}

// Digi is a correlated LCT. It is a comparable value; use Equal to compare
// records, since == also compares the MPC link.
type Digi struct {
	trknmb  uint32
	valid   bool
	quality uint32
	keywire uint32
	strip   uint32
	pattern uint32
	bend    uint32
	bx      uint32
	mpclink uint32
	bx0     uint32
	syncErr uint32
	cscID   uint32
}

// New builds a Digi from its fields.
func New(f Fields) Digi {
	return Digi{
		trknmb:  f.TrackNumber,
		valid:   f.Valid,
		quality: f.Quality,
		keywire: f.KeyWG,
		strip:   f.Strip,
		pattern: f.Pattern,
		bend:    f.Bend,
		bx:      f.BX,
		mpclink: f.MPCLink,
		bx0:     f.BX0,
		syncErr: f.SyncErr,
		cscID:   f.CSCID,
	}
}

// Fields returns the record as a Fields value.
func (d Digi) Fields() Fields {
	return Fields{
		TrackNumber: d.trknmb,
		Valid:       d.valid,
		Quality:     d.quality,
		KeyWG:       d.keywire,
		Strip:       d.strip,
		Pattern:     d.pattern,
		Bend:        d.bend,
		BX:          d.bx,
		MPCLink:     d.mpclink,
		BX0:         d.bx0,
		SyncErr:     d.syncErr,
		CSCID:       d.cscID,
	}
}

func (d Digi) TrackNumber() uint32 { return d.trknmb }
func (d Digi) IsValid() bool       { return d.valid }
func (d Digi) Quality() uint32     { return d.quality }
func (d Digi) KeyWG() uint32       { return d.keywire }
func (d Digi) Strip() uint32       { return d.strip }
func (d Digi) Pattern() uint32     { return d.pattern }
func (d Digi) Bend() uint32        { return d.bend }
func (d Digi) BX() uint32          { return d.bx }
func (d Digi) MPCLink() uint32     { return d.mpclink }
func (d Digi) BX0() uint32         { return d.bx0 }
func (d Digi) SyncErr() uint32     { return d.syncErr }
func (d Digi) CSCID() uint32       { return d.cscID }

// CLCTPattern returns the cathode pattern id (low 3 bits of the pattern).
func (d Digi) CLCTPattern() uint32 { return d.pattern & 0x7 }

// StripType returns 1 for half-strip patterns and 0 for di-strip patterns.
func (d Digi) StripType() uint32 { return (d.pattern & 0x8) >> 3 }

// SetMPCLink records the link the muon port card assigned to this LCT.
func (d *Digi) SetMPCLink(link uint32) { d.mpclink = link }

// Equal reports whether two records describe the same LCT. The MPC link is
// sorting metadata and takes no part in the comparison.
func (d Digi) Equal(o Digi) bool {
	d.mpclink, o.mpclink = 0, 0
	return d == o
}

func (d Digi) String() string {
	return fmt.Sprintf("LCT #%d valid=%t q=%d wg=%d hs=%d pat=%d bend=%d bx=%d link=%d",
		d.trknmb, d.valid, d.quality, d.keywire, d.strip, d.pattern, d.bend, d.bx, d.mpclink)
}
