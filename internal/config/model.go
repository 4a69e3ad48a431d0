package config

import (
	"fmt"

	"github.com/vk/hadesgeo/internal/metadata"
)

// AllAssemblies is the default selection: every assembly the orchestrator
// knows how to build, in no particular order.
var AllAssemblies = []string{
	"cryostat",
	"cavity",
	"detector",
	"wrap",
	"holder",
	"bottom_plate",
	"lead_castle",
	"source",
	"source_holder",
}

// Setup describes one measurement setup.
type Setup struct {
	// Detector is the detector identifier, e.g. "B99000A".
	Detector string `hcl:"detector"`
	// Campaign names the measurement campaign, informational only.
	Campaign string `hcl:"campaign,optional"`
	// Measurement is the raw measurement identifier,
	// "<source>_<HSn>_<position>_<id>".
	Measurement string `hcl:"measurement"`
	// Assemblies restricts which assemblies are built. Absent means all.
	Assemblies *[]string `hcl:"assemblies,optional"`

	SourcePosition *SourcePosition `hcl:"source_position,block"`
	DAQ            *DAQ            `hcl:"daq,block"`
}

// SourcePosition is the explicit source position in polar coordinates
// around the cryostat axis.
type SourcePosition struct {
	PhiInDeg float64 `hcl:"phi_in_deg,optional"`
	RInMM    float64 `hcl:"r_in_mm,optional"`
	ZInMM    float64 `hcl:"z_in_mm,optional"`
}

// DAQ identifies the data-acquisition hardware the detector was cabled to.
// The card interface determines which measurement table (and so which lead
// castle) the setup used.
type DAQ struct {
	CardInterface string `hcl:"card_interface"`
}

// Selection returns the set of assemblies to build.
func (s *Setup) Selection() map[string]bool {
	names := AllAssemblies
	if s.Assemblies != nil {
		names = *s.Assemblies
	}
	sel := make(map[string]bool, len(names))
	for _, name := range names {
		sel[name] = true
	}
	return sel
}

// Table maps the DAQ card interface to the measurement table. Setups
// without DAQ information default to table 1.
func (s *Setup) Table() (int, error) {
	if s.DAQ == nil {
		return 1, nil
	}
	switch s.DAQ.CardInterface {
	case "efb1":
		return 1, nil
	case "efb2":
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: unknown DAQ card interface %q",
			metadata.ErrConfiguration, s.DAQ.CardInterface)
	}
}

// validate checks the fields every construction needs.
func (s *Setup) validate() error {
	if s.Detector == "" {
		return fmt.Errorf("%w: detector id is required", metadata.ErrConfiguration)
	}
	if s.Measurement == "" {
		return fmt.Errorf("%w: measurement identifier is required", metadata.ErrConfiguration)
	}
	known := make(map[string]bool, len(AllAssemblies))
	for _, name := range AllAssemblies {
		known[name] = true
	}
	if s.Assemblies != nil {
		for _, name := range *s.Assemblies {
			if !known[name] {
				return fmt.Errorf("%w: unknown assembly %q", metadata.ErrConfiguration, name)
			}
		}
	}
	_, err := s.Table()
	return err
}
