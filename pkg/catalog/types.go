// Package catalog holds the Project -> DeviceFamily -> Firmware hierarchy
// retrieved from the remote firmware service and the loader that builds it.
package catalog

import (
	"github.com/hashicorp/go-version"
)

// DefaultFlashMethod is the flash method supported by the desktop flasher.
// Families using any other method are excluded when the loader runs in
// esptool-only mode.
const DefaultFlashMethod = "esptool"

// Project is a top-level grouping of device families. Each project owns its
// device-family mapping exclusively: the families stored here are independent
// copies of the entries in the catalog's global registry, so appending
// firmware to one project's copy never leaks into another's.
type Project struct {
	ID               int
	Name             string
	Weight           int
	Description      string
	SupportURL       string
	ProjectURL       string
	DocumentationURL string
	ShowInStandalone bool

	Families map[int]*DeviceFamily

	// familyOrder preserves the insertion order of Families for display.
	familyOrder []int
}

// Display returns the project's display string.
func (p *Project) Display() string {
	return p.Name
}

// addFamily registers an independent copy of the family under its id.
func (p *Project) addFamily(f *DeviceFamily) {
	if _, exists := p.Families[f.ID]; !exists {
		p.familyOrder = append(p.familyOrder, f.ID)
	}
	p.Families[f.ID] = f
}

// removeFamily drops a family from the mapping and the display order.
func (p *Project) removeFamily(id int) {
	delete(p.Families, id)
	for i, fid := range p.familyOrder {
		if fid == id {
			p.familyOrder = append(p.familyOrder[:i], p.familyOrder[i+1:]...)
			break
		}
	}
}

// DeviceFamily is a class of hardware sharing a flash method and
// bootloader/partition characteristics. Identity is the numeric id;
// display uses the name only.
type DeviceFamily struct {
	ID                 int
	Name               string
	FlashMethod        string
	DetectionFamily    string
	Use1200BpsTouch    bool
	BootloaderURL      string
	OtadataURL         string
	OtadataAddress     string
	BootloaderChecksum string
	OtadataChecksum    string

	// Firmware is the ordered sequence of flashable variants; order is
	// insertion order from the service response.
	Firmware []*Firmware
}

// Display returns the family's display string.
func (f *DeviceFamily) Display() string {
	return f.Name
}

// Clone returns an independent copy of the family for a project's mapping.
// The firmware sequence is copied so later appends to one copy do not
// affect the other; the Firmware records themselves are shared.
func (f *DeviceFamily) Clone() *DeviceFamily {
	clone := *f
	clone.Firmware = make([]*Firmware, len(f.Firmware))
	copy(clone.Firmware, f.Firmware)
	return &clone
}

// Firmware is one flashable firmware variant. Family is a non-owning
// back-reference to the entry in the catalog's global registry.
type Firmware struct {
	ID                     int
	Name                   string
	Version                string
	Variant                string
	FamilyID               int
	Family                 *DeviceFamily
	ProjectID              int
	IsFermentrackSupported bool
	InError                bool
	Description            string
	VariantDescription     string
	DownloadURL            string
	Checksum               string
	PartitionsURL          string
	PartitionsChecksum     string
	SpiffsURL              string
	SpiffsChecksum         string
	SpiffsAddress          string
	PostInstallInstr       string
	Weight                 int
}

// Display returns the firmware's display string: the name, followed by the
// version and variant when present.
func (fw *Firmware) Display() string {
	s := fw.Name
	if len(fw.Version) > 0 {
		s += " - " + fw.Version
	}
	if len(fw.Variant) > 0 {
		s += " - " + fw.Variant
	}
	return s
}

// SemVer parses the firmware version. Returns nil when the version string
// is not a parseable version.
func (fw *Firmware) SemVer() *version.Version {
	v, err := version.NewVersion(fw.Version)
	if err != nil {
		return nil
	}
	return v
}
