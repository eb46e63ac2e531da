// Package trackstub owns the track stub: a correlated LCT merged with the
// id of the chamber that produced it, plus its packed eta/phi position.
//
// Responsibilities: packed-to-physical coordinate conversion, delegating
// accessors to the LCT and chamber id, and the ranking used to sort stubs
// before they are forwarded by the muon port card.
// Key types: TrackStub, RankingPolicy, Ranker.
//
// Dependency rule: trackstub depends on detid, lct and binning only.
// No I/O is performed in this package; the only side effect is logging
// through the streams set with SetLogWriters.
package trackstub
