package testutil

import (
	"testing"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/document"
	"github.com/daftarhq/daftar/core/school"
	inmemdb "github.com/daftarhq/daftar/storage/database/inmem"
)

// SchoolService builds a service over a fresh in-memory store.
func SchoolService(t *testing.T) *school.Service {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return school.NewService(
		inmemdb.NewCycleRepository(db),
		inmemdb.NewClassRepository(db),
		inmemdb.NewStudentRepository(db),
		inmemdb.NewSessionRepository(db),
	)
}

// DocumentService builds a document service over a fresh in-memory store.
func DocumentService(t *testing.T) *document.Service {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return document.NewService(inmemdb.NewDocumentRepository(db))
}

// CreateStudent stores a student linked to className by name.
func CreateStudent(t *testing.T, svc *school.Service, firstName, lastName, className string) school.Student {
	t.Helper()
	s := school.Student{
		ID:        core.NewID(),
		MassarID:  "M" + core.NewID()[:8],
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: "2010-09-01",
		ClassName: className,
	}
	if err := svc.SaveStudent(s); err != nil {
		t.Fatalf("SaveStudent() failed: %v", err)
	}
	return s
}

// CreateSessionRecord stores a session with the given attendance payload,
// bypassing the roster snapshot.
func CreateSessionRecord(t *testing.T, svc *school.Service, date, className, cycleID string, attendance []school.AttendanceRecord) school.Session {
	t.Helper()
	s := school.Session{
		ID:         core.NewID(),
		Date:       date,
		ClassName:  className,
		CycleID:    cycleID,
		Attendance: attendance,
	}
	if err := svc.SaveSession(s); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	return s
}
