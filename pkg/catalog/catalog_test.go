package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCatalog(t *testing.T) *Catalog {
	t.Helper()

	cat := New()
	cat.addProject(&Project{ID: 1, Name: "ProjectA", Families: make(map[int]*DeviceFamily)})
	cat.addProject(&Project{ID: 2, Name: "ProjectB", Families: make(map[int]*DeviceFamily)})

	family := &DeviceFamily{ID: 10, Name: "FamA", FlashMethod: DefaultFlashMethod}
	cat.Families[family.ID] = family
	cat.validFamilyIDs[family.ID] = struct{}{}
	cat.Projects[1].addFamily(family.Clone())
	cat.Projects[2].addFamily(family.Clone())

	fw := &Firmware{ID: 100, Name: "FW1", Version: "1.0", FamilyID: 10, ProjectID: 1, Family: family}
	family.Firmware = append(family.Firmware, fw)
	cat.Projects[1].Families[10].Firmware = append(cat.Projects[1].Families[10].Firmware, fw)

	return cat
}

func TestFirmwareDisplay(t *testing.T) {
	tests := []struct {
		name     string
		firmware Firmware
		expected string
	}{
		{
			name:     "name only",
			firmware: Firmware{Name: "FW1"},
			expected: "FW1",
		},
		{
			name:     "name and version",
			firmware: Firmware{Name: "FW1", Version: "1.0"},
			expected: "FW1 - 1.0",
		},
		{
			name:     "name, version and variant",
			firmware: Firmware{Name: "FW1", Version: "1.0", Variant: "TFT"},
			expected: "FW1 - 1.0 - TFT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.firmware.Display())
		})
	}
}

func TestQueries(t *testing.T) {
	cat := buildCatalog(t)

	assert.Equal(t, []string{"ProjectA", "ProjectB"}, cat.ProjectNames())

	id, ok := cat.ProjectID("ProjectA")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = cat.ProjectID("NoSuchProject")
	assert.False(t, ok)

	assert.Equal(t, []string{"FamA"}, cat.FamilyNames(1))

	fid, ok := cat.FamilyID(1, "FamA")
	require.True(t, ok)
	assert.Equal(t, 10, fid)

	assert.Equal(t, []string{"FW1 - 1.0"}, cat.FirmwareNames(1, 10))

	fw := cat.Firmware(1, 10, "FW1 - 1.0")
	require.NotNil(t, fw)
	assert.Equal(t, 100, fw.ID)
}

func TestQueriesUnknownIDs(t *testing.T) {
	cat := buildCatalog(t)

	// Lookups never error for "not found"; they return placeholder rows.
	assert.Equal(t, []string{""}, cat.FamilyNames(999))
	assert.Equal(t, []string{""}, cat.FirmwareNames(999, 10))
	assert.Equal(t, []string{""}, cat.FirmwareNames(1, 999))
	assert.Nil(t, cat.Firmware(999, 10, "FW1 - 1.0"))
	assert.Nil(t, cat.Firmware(1, 10, "not there"))

	_, ok := cat.FamilyID(999, "FamA")
	assert.False(t, ok)
}

func TestEmptyCatalogPlaceholders(t *testing.T) {
	cat := New()
	assert.Equal(t, []string{PlaceholderProjects}, cat.ProjectNames())

	cat.addProject(&Project{ID: 1, Name: "ProjectA", Families: make(map[int]*DeviceFamily)})
	assert.Equal(t, []string{PlaceholderFamilies}, cat.FamilyNames(1))

	cat.Projects[1].addFamily(&DeviceFamily{ID: 10, Name: "FamA"})
	assert.Equal(t, []string{PlaceholderFirmware}, cat.FirmwareNames(1, 10))
}

func TestCleanse(t *testing.T) {
	cat := buildCatalog(t)

	// ProjectB's family copy has no firmware, so both the family and the
	// project must disappear.
	cat.cleanse()

	assert.Equal(t, []string{"ProjectA"}, cat.ProjectNames())
	_, ok := cat.Projects[2]
	assert.False(t, ok)

	// Every surviving family has firmware and every surviving project has
	// families.
	for _, project := range cat.Projects {
		require.NotEmpty(t, project.Families)
		for _, family := range project.Families {
			assert.NotEmpty(t, family.Firmware)
		}
	}
}

func TestProjectCopiesAreIndependent(t *testing.T) {
	cat := buildCatalog(t)

	extra := &Firmware{ID: 101, Name: "FW2", FamilyID: 10, ProjectID: 2}
	famB := cat.Projects[2].Families[10]
	famB.Firmware = append(famB.Firmware, extra)

	// Appending to ProjectB's copy must not leak into ProjectA's copy or
	// shrink/grow the global registry.
	assert.Len(t, cat.Projects[1].Families[10].Firmware, 1)
	assert.Len(t, cat.Families[10].Firmware, 1)
	assert.Len(t, cat.Projects[2].Families[10].Firmware, 2)
}

func TestLatestFirmware(t *testing.T) {
	cat := buildCatalog(t)
	family := cat.Projects[1].Families[10]
	family.Firmware = append(family.Firmware,
		&Firmware{ID: 101, Name: "FW1", Version: "1.2.1"},
		&Firmware{ID: 102, Name: "FW1", Version: "1.0.9"},
		&Firmware{ID: 103, Name: "FW1", Version: "nightly"},
	)

	latest := cat.LatestFirmware(1, 10)
	require.NotNil(t, latest)
	assert.Equal(t, 101, latest.ID)

	assert.Nil(t, cat.LatestFirmware(999, 10))
}

func TestLatestFirmwareNoParseableVersions(t *testing.T) {
	cat := New()
	cat.addProject(&Project{ID: 1, Name: "P", Families: make(map[int]*DeviceFamily)})
	family := &DeviceFamily{ID: 10, Name: "F"}
	family.Firmware = append(family.Firmware,
		&Firmware{ID: 1, Name: "A", Version: "nightly"},
		&Firmware{ID: 2, Name: "B", Version: "latest"},
	)
	cat.Projects[1].addFamily(family)

	// Falls back to response order when nothing parses.
	latest := cat.LatestFirmware(1, 10)
	require.NotNil(t, latest)
	assert.Equal(t, 1, latest.ID)
}
