// Command cscstub builds a single track stub from chamber labels and LCT
// fields and prints its trigger labels and physical coordinates.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/banshee-data/csctrigger/internal/config"
	"github.com/banshee-data/csctrigger/internal/csc/binning"
	"github.com/banshee-data/csctrigger/internal/csc/detid"
	"github.com/banshee-data/csctrigger/internal/csc/lct"
	"github.com/banshee-data/csctrigger/internal/csc/trackstub"
	"github.com/banshee-data/csctrigger/internal/monitoring"
	"github.com/banshee-data/csctrigger/internal/units"
	"github.com/banshee-data/csctrigger/internal/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("cscstub: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cscstub", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "binning config JSON (defaults to the CSC geometry)")
	showVersion := fs.Bool("version", false, "print version and exit")
	verbose := fs.Bool("v", false, "log config loading to stderr")
	phiUnits := fs.String("phi-units", units.RAD, "phi output units ("+units.GetValidUnitsString()+")")

	raw := fs.Uint("raw", 0, "raw detector id (overrides the chamber labels)")
	endcap := fs.Int("endcap", 1, "endcap (1 = +z, 2 = -z)")
	station := fs.Int("station", 1, "station (1-4)")
	ring := fs.Int("ring", 1, "ring (1-4)")
	chamber := fs.Int("chamber", 3, "chamber (1-36)")

	valid := fs.Bool("valid", true, "LCT valid bit")
	quality := fs.Uint("quality", 15, "LCT quality (4 bits)")
	trknmb := fs.Uint("track", 1, "LCT track number (1 or 2)")
	keywg := fs.Uint("keywg", 0, "key wire group")
	strip := fs.Uint("strip", 0, "key half-strip")
	pattern := fs.Uint("pattern", 0, "CLCT pattern (bit 3 = strip type)")
	bend := fs.Uint("bend", 0, "bend (0 left, 1 right)")
	bx := fs.Uint("bx", 0, "bunch crossing")
	eta := fs.Uint("eta", 0, "packed eta bin")
	phi := fs.Uint("phi", 0, "packed phi bin")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String("cscstub"))
		return nil
	}

	if !units.IsValid(*phiUnits) {
		return fmt.Errorf("invalid phi units %q, want one of %s", *phiUnits, units.GetValidUnitsString())
	}

	if *verbose {
		monitoring.SetOutput("[cscstub] ", stderr)
	} else {
		monitoring.SetLogger(nil)
	}

	consts := binning.Default()
	if *configPath != "" {
		cfg, err := config.LoadBinningConfig(*configPath)
		if err != nil {
			return fmt.Errorf("load binning config: %w", err)
		}
		consts = cfg.Constants()
	}

	var id detid.ID
	if *raw != 0 {
		id = detid.FromRaw(uint32(*raw))
		if !id.IsCSC() {
			monitoring.Logf("raw id 0x%08x is not a CSC id", *raw)
		}
	} else {
		var err error
		id, err = detid.New(*endcap, *station, *ring, *chamber, 0)
		if err != nil {
			return fmt.Errorf("chamber labels: %w", err)
		}
	}

	digi := lct.New(lct.Fields{
		TrackNumber: uint32(*trknmb),
		Valid:       *valid,
		Quality:     uint32(*quality),
		KeyWG:       uint32(*keywg),
		Strip:       uint32(*strip),
		Pattern:     uint32(*pattern),
		Bend:        uint32(*bend),
		BX:          uint32(*bx),
	})
	stub := trackstub.NewWithBins(digi, id, uint32(*phi), uint32(*eta))

	printStub(stdout, stub, consts, *phiUnits)
	return nil
}

func printStub(w io.Writer, s trackstub.TrackStub, c binning.Constants, phiUnits string) {
	id := s.DetID()
	fmt.Fprintf(w, "chamber  %s (raw 0x%08x)\n", id, id.Raw())
	fmt.Fprintf(w, "trigger  endcap=%d station=%d sector=%d subsector=%d cscid=%d\n",
		s.Endcap(), s.Station(), s.Sector(), s.Subsector(), s.CSCID())
	fmt.Fprintf(w, "lct      %s\n", s.Digi())
	fmt.Fprintf(w, "pattern  clct=%d strip_type=%d\n", s.CLCTPattern(), s.StripType())
	fmt.Fprintf(w, "valid    %t\n", s.IsValid())
	fmt.Fprintf(w, "eta      bin %d -> %.4f\n", s.EtaPacked(), s.EtaValue(c))
	fmt.Fprintf(w, "phi      bin %d -> %.6f %s\n", s.PhiPacked(), units.ConvertAngle(s.PhiValue(c), phiUnits), phiUnits)
}
