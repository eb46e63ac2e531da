package trackstub

import (
	"fmt"

	"github.com/banshee-data/csctrigger/internal/csc/binning"
	"github.com/banshee-data/csctrigger/internal/csc/detid"
	"github.com/banshee-data/csctrigger/internal/csc/lct"
)

// Located is implemented by anything that knows which chamber, in trigger
// labels, it comes from.
type Located interface {
	Endcap() uint32
	Station() uint32
	Sector() uint32
	Subsector() uint32
	CSCID() uint32
}

var (
	_ Located = TrackStub{}
	_ Located = detid.ID{}
)

// TrackStub is a correlated LCT together with the chamber that produced it
// and its packed eta/phi position. The zero value is an unset placeholder.
//
// TrackStub is a value: assignment copies every field.
type TrackStub struct {
	detID  detid.ID
	digi   lct.Digi
	etaBin uint32
	phiBin uint32
}

// New wraps digi and id. The packed eta and phi bins start at zero.
func New(digi lct.Digi, id detid.ID) TrackStub {
	return TrackStub{detID: id, digi: digi}
}

// NewWithBins wraps digi and id with already computed packed bins.
func NewWithBins(digi lct.Digi, id detid.ID, phi, eta uint32) TrackStub {
	return TrackStub{detID: id, digi: digi, etaBin: eta, phiBin: phi}
}

// SetMPCLink sets the muon port card link (sorting order) on the wrapped LCT.
func (s *TrackStub) SetMPCLink(link uint32) { s.digi.SetMPCLink(link) }

// MPCLink returns the muon port card link of the wrapped LCT.
func (s TrackStub) MPCLink() uint32 { return s.digi.MPCLink() }

func (s *TrackStub) SetEtaPacked(eta uint32) { s.etaBin = eta }
func (s *TrackStub) SetPhiPacked(phi uint32) { s.phiBin = phi }

// EtaValue returns the physical eta of the stub.
func (s TrackStub) EtaValue(c binning.Constants) float64 { return c.Eta(s.etaBin) }

// PhiValue returns the physical phi of the stub, in radians from the sector edge.
func (s TrackStub) PhiValue(c binning.Constants) float64 { return c.Phi(s.phiBin) }

func (s TrackStub) EtaPacked() uint32 { return s.etaBin }
func (s TrackStub) PhiPacked() uint32 { return s.phiBin }

func (s TrackStub) IsValid() bool       { return s.digi.IsValid() }
func (s TrackStub) Quality() uint32     { return s.digi.Quality() }
func (s TrackStub) KeyWG() uint32       { return s.digi.KeyWG() }
func (s TrackStub) Strip() uint32       { return s.digi.Strip() }
func (s TrackStub) CLCTPattern() uint32 { return s.digi.CLCTPattern() }
func (s TrackStub) Pattern() uint32     { return s.digi.Pattern() }
func (s TrackStub) StripType() uint32   { return s.digi.StripType() }
func (s TrackStub) Bend() uint32        { return s.digi.Bend() }
func (s TrackStub) BX() uint32          { return s.digi.BX() }
func (s TrackStub) TrackNumber() uint32 { return s.digi.TrackNumber() }

// Digi returns a copy of the LCT the stub was made from.
func (s TrackStub) Digi() lct.Digi { return s.digi }

// DetID returns a copy of the chamber id.
func (s TrackStub) DetID() detid.ID { return s.detID }

func (s TrackStub) Endcap() uint32    { return s.detID.Endcap() }
func (s TrackStub) Station() uint32   { return s.detID.Station() }
func (s TrackStub) Sector() uint32    { return s.detID.Sector() }
func (s TrackStub) Subsector() uint32 { return s.detID.Subsector() }
func (s TrackStub) CSCID() uint32     { return s.detID.CSCID() }

// Equal reports whether both stubs wrap the same chamber and the same LCT.
// Packed bins and the MPC link are not compared.
func (s TrackStub) Equal(o TrackStub) bool {
	return s.detID == o.detID && s.digi.Equal(o.digi)
}

func (s TrackStub) String() string {
	return fmt.Sprintf("%s %s eta=%d phi=%d", s.detID, s.digi, s.etaBin, s.phiBin)
}
