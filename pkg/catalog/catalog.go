package catalog

// Placeholder rows returned by listing queries when the catalog is empty or
// an id is unknown. Lookups never fail for "not found"; they return these
// sentinels so a partially-unavailable backend degrades gracefully in the UI.
const (
	PlaceholderProjects = "Unable to download project list"
	PlaceholderFamilies = "Unable to download device family list"
	PlaceholderFirmware = "Unable to download firmware list"
)

// Catalog is the reconciled firmware hierarchy produced by one load cycle.
// It is a value object: every Load builds a fresh instance and the previous
// one is discarded, so there is no incremental update path.
type Catalog struct {
	// Families is the global id -> family registry. Every firmware
	// reachable from a project is also reachable from here.
	Families map[int]*DeviceFamily

	// Projects maps project id -> project.
	Projects map[int]*Project

	// validFamilyIDs records the families that survived the load filter;
	// firmware rows referencing other ids are dropped.
	validFamilyIDs map[int]struct{}

	// projectOrder preserves the insertion order of Projects for display.
	projectOrder []int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		Families:       make(map[int]*DeviceFamily),
		Projects:       make(map[int]*Project),
		validFamilyIDs: make(map[int]struct{}),
	}
}

func (c *Catalog) addProject(p *Project) {
	if _, exists := c.Projects[p.ID]; !exists {
		c.projectOrder = append(c.projectOrder, p.ID)
	}
	c.Projects[p.ID] = p
}

func (c *Catalog) removeProject(id int) {
	delete(c.Projects, id)
	for i, pid := range c.projectOrder {
		if pid == id {
			c.projectOrder = append(c.projectOrder[:i], c.projectOrder[i+1:]...)
			break
		}
	}
}

// ProjectNames lists project display names in catalog order.
func (c *Catalog) ProjectNames() []string {
	names := make([]string, 0, len(c.projectOrder))
	for _, id := range c.projectOrder {
		names = append(names, c.Projects[id].Display())
	}
	if len(names) == 0 {
		return []string{PlaceholderProjects}
	}
	return names
}

// ProjectID resolves a project display name to its id.
func (c *Catalog) ProjectID(name string) (int, bool) {
	for _, id := range c.projectOrder {
		if c.Projects[id].Display() == name {
			return id, true
		}
	}
	return 0, false
}

// FamilyNames lists the device family display names of a project.
func (c *Catalog) FamilyNames(projectID int) []string {
	project, ok := c.Projects[projectID]
	if !ok {
		return []string{""}
	}
	names := make([]string, 0, len(project.familyOrder))
	for _, fid := range project.familyOrder {
		names = append(names, project.Families[fid].Display())
	}
	if len(names) == 0 {
		return []string{PlaceholderFamilies}
	}
	return names
}

// FamilyID resolves a family display name within a project to its id.
func (c *Catalog) FamilyID(projectID int, name string) (int, bool) {
	project, ok := c.Projects[projectID]
	if !ok {
		return 0, false
	}
	for _, fid := range project.familyOrder {
		if project.Families[fid].Display() == name {
			return fid, true
		}
	}
	return 0, false
}

// FirmwareNames lists firmware display strings of a family within a project,
// in service response order.
func (c *Catalog) FirmwareNames(projectID, familyID int) []string {
	project, ok := c.Projects[projectID]
	if !ok {
		return []string{""}
	}
	family, ok := project.Families[familyID]
	if !ok {
		return []string{""}
	}
	names := make([]string, 0, len(family.Firmware))
	for _, fw := range family.Firmware {
		names = append(names, fw.Display())
	}
	if len(names) == 0 {
		return []string{PlaceholderFirmware}
	}
	return names
}

// Firmware resolves a firmware display string within a project and family.
// Returns nil when any of the ids or the display string is unknown.
func (c *Catalog) Firmware(projectID, familyID int, display string) *Firmware {
	project, ok := c.Projects[projectID]
	if !ok {
		return nil
	}
	family, ok := project.Families[familyID]
	if !ok {
		return nil
	}
	for _, fw := range family.Firmware {
		if fw.Display() == display {
			return fw
		}
	}
	return nil
}

// LatestFirmware returns the firmware with the highest parseable version in
// a family. Entries without a parseable version are skipped; when none
// parse, the first entry is returned. Returns nil for unknown ids or an
// empty family.
func (c *Catalog) LatestFirmware(projectID, familyID int) *Firmware {
	project, ok := c.Projects[projectID]
	if !ok {
		return nil
	}
	family, ok := project.Families[familyID]
	if !ok || len(family.Firmware) == 0 {
		return nil
	}

	var best *Firmware
	for _, fw := range family.Firmware {
		v := fw.SemVer()
		if v == nil {
			continue
		}
		if best == nil || v.GreaterThan(best.SemVer()) {
			best = fw
		}
	}
	if best == nil {
		return family.Firmware[0]
	}
	return best
}

// cleanse removes every device family whose firmware sequence is empty from
// each project, then removes projects left without families. Afterwards the
// catalog contains only flashable branches.
func (c *Catalog) cleanse() {
	for _, pid := range append([]int(nil), c.projectOrder...) {
		project := c.Projects[pid]
		for _, fid := range append([]int(nil), project.familyOrder...) {
			if len(project.Families[fid].Firmware) == 0 {
				project.removeFamily(fid)
			}
		}
		if len(project.Families) == 0 {
			c.removeProject(pid)
		}
	}
}
