package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/csctrigger/internal/csc/binning"
	"github.com/banshee-data/csctrigger/internal/monitoring"
)

// DefaultConfigPath is the path to the canonical binning defaults file.
const DefaultConfigPath = "config/binning.defaults.json"

// BinningConfig describes the geometry the eta/phi bin widths are derived
// from. Fields omitted from the JSON fall back to the CSC defaults.
type BinningConfig struct {
	EtaMin         *float64 `json:"eta_min,omitempty"`
	EtaMax         *float64 `json:"eta_max,omitempty"`
	EtaBins        *int     `json:"eta_bins,omitempty"`
	SectorWidthDeg *float64 `json:"sector_width_deg,omitempty"`
	PhiBits        *int     `json:"phi_bits,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

// EmptyBinningConfig returns a BinningConfig with all fields set to nil.
func EmptyBinningConfig() *BinningConfig {
	return &BinningConfig{}
}

// DefaultBinningConfig returns a BinningConfig with every field set to the
// standard CSC geometry.
func DefaultBinningConfig() *BinningConfig {
	return &BinningConfig{
		EtaMin:         ptrFloat64(binning.MinEta),
		EtaMax:         ptrFloat64(binning.MaxEta),
		EtaBins:        ptrInt(binning.EtaBins),
		SectorWidthDeg: ptrFloat64(binning.SectorWidthDeg),
		PhiBits:        ptrInt(binning.PhiBits),
	}
}

// LoadBinningConfig loads a BinningConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadBinningConfig(path string) (*BinningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyBinningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	monitoring.Logf("loaded binning config from %s: %s", cleanPath, cfg.Constants())
	return cfg, nil
}

// MustLoadDefaultConfig loads the binning defaults from DefaultConfigPath,
// searching the current directory and its parents.
// Panics if the file cannot be loaded, intended for test setup and tools.
func MustLoadDefaultConfig() *BinningConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath,       // from internal/config/ and cmd/cscstub/
		"../../../" + DefaultConfigPath,    // from internal/csc/trackstub/
		"../../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadBinningConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run from repository root")
}

// Validate checks that the configured geometry gives positive bin widths.
func (c *BinningConfig) Validate() error {
	if c.GetEtaMax() <= c.GetEtaMin() {
		return fmt.Errorf("eta_max (%g) must be greater than eta_min (%g)", c.GetEtaMax(), c.GetEtaMin())
	}
	if c.GetEtaBins() <= 0 {
		return fmt.Errorf("eta_bins must be positive, got %d", c.GetEtaBins())
	}
	if c.GetSectorWidthDeg() <= 0 {
		return fmt.Errorf("sector_width_deg must be positive, got %g", c.GetSectorWidthDeg())
	}
	if bits := c.GetPhiBits(); bits < 1 || bits > 31 {
		return fmt.Errorf("phi_bits must be between 1 and 31, got %d", bits)
	}
	return nil
}

// GetEtaMin returns the eta_min value or the default.
func (c *BinningConfig) GetEtaMin() float64 {
	if c.EtaMin == nil {
		return binning.MinEta
	}
	return *c.EtaMin
}

// GetEtaMax returns the eta_max value or the default.
func (c *BinningConfig) GetEtaMax() float64 {
	if c.EtaMax == nil {
		return binning.MaxEta
	}
	return *c.EtaMax
}

// GetEtaBins returns the eta_bins value or the default.
func (c *BinningConfig) GetEtaBins() int {
	if c.EtaBins == nil {
		return binning.EtaBins
	}
	return *c.EtaBins
}

// GetSectorWidthDeg returns the sector_width_deg value or the default.
func (c *BinningConfig) GetSectorWidthDeg() float64 {
	if c.SectorWidthDeg == nil {
		return binning.SectorWidthDeg
	}
	return *c.SectorWidthDeg
}

// GetPhiBits returns the phi_bits value or the default.
func (c *BinningConfig) GetPhiBits() int {
	if c.PhiBits == nil {
		return binning.PhiBits
	}
	return *c.PhiBits
}

// Constants derives the binning constants from the config.
func (c *BinningConfig) Constants() binning.Constants {
	return binning.FromGeometry(c.GetEtaMin(), c.GetEtaMax(), c.GetEtaBins(), c.GetSectorWidthDeg(), c.GetPhiBits())
}
