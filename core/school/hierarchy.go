package school

// The resolver is the only place that interprets the name-string links
// between students and classes. Everything else navigates through it, so a
// future switch to id-based links stays contained here.

// EffectiveClassList merges stored classes with virtual ones derived from
// student rows whose ClassName matches no stored class. Virtual classes are
// never persisted; their ids follow the deterministic virtual-<name> scheme.
func EffectiveClassList(classes []Class, students []Student) []Class {
	known := make(map[string]bool, len(classes))
	for _, c := range classes {
		known[c.Name] = true
	}

	seen := make(map[string]bool)
	effective := append([]Class(nil), classes...)
	for _, s := range students {
		if known[s.ClassName] || seen[s.ClassName] {
			continue
		}
		seen[s.ClassName] = true
		effective = append(effective, Class{ID: VirtualClassID(s.ClassName), Name: s.ClassName})
	}
	return effective
}

// GroupByCycle pairs each cycle with its classes, appending a synthetic
// "unassigned" group for classes without a cycle. The synthetic group is
// only present when non-empty; it stays addressable by UnassignedCycleID
// either way.
func GroupByCycle(cycles []Cycle, classes []Class) []CycleGroup {
	groups := make([]CycleGroup, 0, len(cycles)+1)
	for _, cy := range cycles {
		g := CycleGroup{Cycle: cy, Classes: []Class{}}
		for _, c := range classes {
			if c.CycleID == cy.ID {
				g.Classes = append(g.Classes, c)
			}
		}
		groups = append(groups, g)
	}

	var unassigned []Class
	for _, c := range classes {
		if c.CycleID == "" {
			unassigned = append(unassigned, c)
		}
	}
	if len(unassigned) > 0 {
		groups = append(groups, CycleGroup{
			Cycle:   Cycle{ID: UnassignedCycleID, Name: "Unassigned"},
			Classes: unassigned,
		})
	}
	return groups
}

// EffectiveClasses loads current records and resolves the class list.
func (svc *Service) EffectiveClasses() ([]Class, error) {
	classes, err := svc.classes.QueryAllClasses()
	if err != nil {
		return nil, err
	}
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return nil, err
	}
	return EffectiveClassList(classes, students), nil
}

// ClassTree resolves the grouped-by-cycle view over the effective class list.
func (svc *Service) ClassTree() ([]CycleGroup, error) {
	cycles, err := svc.cycles.QueryAllCycles()
	if err != nil {
		return nil, err
	}
	classes, err := svc.EffectiveClasses()
	if err != nil {
		return nil, err
	}
	return GroupByCycle(cycles, classes), nil
}

// CycleClasses resolves the classes of a single cycle, addressed by id.
// UnassignedCycleID selects classes without a cycle.
func (svc *Service) CycleClasses(cycleID string) ([]Class, error) {
	classes, err := svc.EffectiveClasses()
	if err != nil {
		return nil, err
	}
	if cycleID == UnassignedCycleID {
		cycleID = ""
	}
	var out []Class
	for _, c := range classes {
		if c.CycleID == cycleID {
			out = append(out, c)
		}
	}
	return out, nil
}
