package school_test

import (
	"testing"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/school"
	testutil "github.com/daftarhq/daftar/tests"
)

func TestDeleteClassCascade(t *testing.T) {
	svc := testutil.SchoolService(t)

	cls, _, err := svc.CreateClass("2A", "")
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	testutil.CreateStudent(t, svc, "Youssef", "EL AMRANI", "2A")
	testutil.CreateStudent(t, svc, "Sara", "BENNIS", "2A")
	kept := testutil.CreateStudent(t, svc, "Omar", "TAZI", "2B")

	if err := svc.DeleteClass(cls.ID); err != nil {
		t.Fatalf("DeleteClass() failed: %v", err)
	}

	students, err := svc.Students()
	if err != nil {
		t.Fatalf("Students() failed: %v", err)
	}
	if len(students) != 1 || students[0].ID != kept.ID {
		t.Errorf("expected only the 2B student to survive, got %+v", students)
	}
}

func TestDeleteVirtualClass(t *testing.T) {
	svc := testutil.SchoolService(t)
	testutil.CreateStudent(t, svc, "Youssef", "EL AMRANI", "X")

	// no stored record to delete, but the students must go
	if err := svc.DeleteClass(school.VirtualClassID("X")); err != nil {
		t.Fatalf("DeleteClass(virtual) failed: %v", err)
	}
	students, _ := svc.Students()
	if len(students) != 0 {
		t.Errorf("expected no students left, got %d", len(students))
	}
}

func TestDeleteCycleCascadeLeavesSessions(t *testing.T) {
	svc := testutil.SchoolService(t)

	cy, err := svc.CreateCycle("College")
	if err != nil {
		t.Fatalf("CreateCycle() failed: %v", err)
	}
	clsA, _, _ := svc.CreateClass("2A", cy.ID)
	clsB, _, _ := svc.CreateClass("2B", cy.ID)
	_ = clsA
	_ = clsB
	testutil.CreateStudent(t, svc, "Youssef", "EL AMRANI", "2A")
	testutil.CreateStudent(t, svc, "Sara", "BENNIS", "2B")
	testutil.CreateSessionRecord(t, svc, "2024-05-02", "2A", cy.ID, nil)
	testutil.CreateSessionRecord(t, svc, "2024-05-09", "2B", cy.ID, nil)

	if err := svc.DeleteCycle(cy.ID); err != nil {
		t.Fatalf("DeleteCycle() failed: %v", err)
	}

	classes, _ := svc.CycleClasses(cy.ID)
	if len(classes) != 0 {
		t.Errorf("expected no classes left in cycle, got %d", len(classes))
	}
	students, _ := svc.Students()
	if len(students) != 0 {
		t.Errorf("expected no students left, got %d", len(students))
	}
	// orphaned on purpose: session history outlives the cycle
	sessions, _ := svc.Sessions()
	if len(sessions) != 2 {
		t.Errorf("expected sessions untouched, got %d", len(sessions))
	}
}

func TestCopyClass(t *testing.T) {
	svc := testutil.SchoolService(t)

	cy1, _ := svc.CreateCycle("College")
	cy2, _ := svc.CreateCycle("Lycee")
	src, _, err := svc.CreateClass("2A", cy1.ID)
	if err != nil {
		t.Fatalf("CreateClass() failed: %v", err)
	}
	stu := testutil.CreateStudent(t, svc, "Youssef", "EL AMRANI", "2A")
	attendance := []school.AttendanceRecord{{StudentID: stu.ID, Status: school.StatusAbsent}}
	srcSess := testutil.CreateSessionRecord(t, svc, "2024-05-02", "2A", cy1.ID, attendance)

	newClass, copied, err := svc.CopyClass(src.ID, cy2.ID)
	if err != nil {
		t.Fatalf("CopyClass() failed: %v", err)
	}
	if copied != 1 {
		t.Errorf("copied = %d, want 1", copied)
	}
	if newClass.Name != "2A" || newClass.CycleID != cy2.ID {
		t.Errorf("unexpected copied class: %+v", newClass)
	}
	if newClass.ID == src.ID {
		t.Errorf("copy must get a fresh id")
	}

	sessions, _ := svc.Sessions()
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions after copy, got %d", len(sessions))
	}
	var dup *school.Session
	for i := range sessions {
		if sessions[i].ID != srcSess.ID {
			dup = &sessions[i]
		}
	}
	if dup == nil {
		t.Fatal("duplicated session not found")
	}
	if dup.CycleID != cy2.ID || dup.ClassName != "2A" {
		t.Errorf("unexpected duplicated session: %+v", dup)
	}
	if len(dup.Attendance) != 1 || dup.Attendance[0] != attendance[0] {
		t.Errorf("attendance payload not carried over: %+v", dup.Attendance)
	}
}

func TestCopyClassConflict(t *testing.T) {
	svc := testutil.SchoolService(t)

	cy1, _ := svc.CreateCycle("College")
	cy2, _ := svc.CreateCycle("Lycee")
	src, _, _ := svc.CreateClass("2A", cy1.ID)
	_, _, _ = svc.CreateClass("2A", cy2.ID) // already in target
	testutil.CreateSessionRecord(t, svc, "2024-05-02", "2A", cy1.ID, nil)

	_, copied, err := svc.CopyClass(src.ID, cy2.ID)
	if !core.IsConflict(err) {
		t.Fatalf("CopyClass() error = %v, want conflict", err)
	}
	if copied != 0 {
		t.Errorf("conflict must not copy sessions, copied %d", copied)
	}

	// zero writes: still one session, still two stored 2A classes
	sessions, _ := svc.Sessions()
	if len(sessions) != 1 {
		t.Errorf("expected 1 session, got %d", len(sessions))
	}
	classes, _ := svc.EffectiveClasses()
	if len(classes) != 2 {
		t.Errorf("expected 2 classes, got %d", len(classes))
	}
}

func TestCopyClassToUnassigned(t *testing.T) {
	svc := testutil.SchoolService(t)

	cy1, _ := svc.CreateCycle("College")
	src, _, _ := svc.CreateClass("2A", cy1.ID)

	newClass, _, err := svc.CopyClass(src.ID, school.UnassignedCycleID)
	if err != nil {
		t.Fatalf("CopyClass(unassigned) failed: %v", err)
	}
	if newClass.CycleID != "" {
		t.Errorf("CycleID = %q, want empty for unassigned target", newClass.CycleID)
	}
}
