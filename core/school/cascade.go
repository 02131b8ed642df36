package school

import "github.com/daftarhq/daftar/core"

// Cascades run as plain sequences of single-record operations, matching the
// store's contract: there is no multi-collection transaction, and a failure
// mid-sequence leaves the store partially deleted. Callers re-read state
// after a cascade instead of trusting in-memory copies.

// ErrCopyConflict aborts a class copy when the target cycle already holds a
// class with the same name. Nothing is written when it is returned.
var ErrCopyConflict = core.NewConflictError("a class with this name already exists in the target cycle")

// DeleteStudent removes a single student. Attendance records pointing at the
// student are left in place; the resolver drops them at render time.
func (svc *Service) DeleteStudent(id string) error {
	return svc.students.DeleteStudentByID(id)
}

// DeleteClass removes the class record (skipped for virtual classes, which
// have none) and every student whose ClassName matches, regardless of which
// cycle triggered the delete. Sessions are not touched.
func (svc *Service) DeleteClass(classID string) error {
	classes, err := svc.EffectiveClasses()
	if err != nil {
		return err
	}
	var cls *Class
	for i := range classes {
		if classes[i].ID == classID {
			cls = &classes[i]
			break
		}
	}
	if cls == nil {
		return ErrNotFound
	}

	if !cls.Virtual() {
		if err := svc.classes.DeleteClassByID(cls.ID); err != nil {
			return err
		}
	}
	return svc.deleteStudentsOfClass(cls.Name)
}

// DeleteCycle removes the cycle record, then cascades through every class
// holding its id. Sessions referencing the cycle remain in place.
func (svc *Service) DeleteCycle(cycleID string) error {
	if err := svc.cycles.DeleteCycleByID(cycleID); err != nil {
		return err
	}
	classes, err := svc.classes.QueryAllClasses()
	if err != nil {
		return err
	}
	for _, cls := range classes {
		if cls.CycleID != cycleID {
			continue
		}
		if err := svc.classes.DeleteClassByID(cls.ID); err != nil {
			return err
		}
		if err := svc.deleteStudentsOfClass(cls.Name); err != nil {
			return err
		}
	}
	return nil
}

func (svc *Service) deleteStudentsOfClass(className string) error {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return err
	}
	for _, s := range students {
		if s.ClassName != className {
			continue
		}
		if err := svc.students.DeleteStudentByID(s.ID); err != nil {
			return err
		}
	}
	return nil
}

// CopyClass duplicates a class and its sessions into the target cycle
// (UnassignedCycleID for none). The copy is refused with ErrCopyConflict,
// before any write, when the target cycle already holds a class with the
// same name. Duplicated sessions get fresh ids and the target cycle id but
// keep their attendance payload. Returns the new class and the number of
// sessions copied.
func (svc *Service) CopyClass(classID, targetCycleID string) (Class, int, error) {
	classes, err := svc.EffectiveClasses()
	if err != nil {
		return Class{}, 0, err
	}
	var src *Class
	for i := range classes {
		if classes[i].ID == classID {
			src = &classes[i]
			break
		}
	}
	if src == nil {
		return Class{}, 0, ErrNotFound
	}

	newCycleID := targetCycleID
	if newCycleID == UnassignedCycleID {
		newCycleID = ""
	}
	for _, c := range classes {
		if c.Name == src.Name && c.CycleID == newCycleID {
			return Class{}, 0, ErrCopyConflict
		}
	}

	newClass := Class{ID: core.NewID(), Name: src.Name, CycleID: newCycleID}
	if err := svc.classes.SaveClass(newClass); err != nil {
		return Class{}, 0, err
	}

	sessions, err := svc.sessions.QueryAllSessions()
	if err != nil {
		return Class{}, 0, err
	}
	var copied int
	for _, sess := range sessions {
		if sess.ClassName != src.Name || sess.CycleID != src.CycleID {
			continue
		}
		dup := sess
		dup.ID = core.NewID()
		dup.CycleID = newCycleID
		if err := svc.sessions.SaveSession(dup); err != nil {
			return Class{}, copied, err
		}
		copied++
	}
	return newClass, copied, nil
}
