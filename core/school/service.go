package school

import (
	"errors"
	"sort"
	"time"

	"github.com/daftarhq/daftar/core"
)

var ErrNotFound = errors.New("record not found")

type (
	CycleRepository interface {
		QueryAllCycles() ([]Cycle, error)
		SaveCycle(Cycle) error
		DeleteCycleByID(id string) error
	}

	ClassRepository interface {
		QueryAllClasses() ([]Class, error)
		SaveClass(Class) error
		DeleteClassByID(id string) error
	}

	StudentRepository interface {
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// SaveStudent inserts or replaces by id; saving the same student
		// twice leaves a single unchanged record.
		SaveStudent(Student) error
		DeleteStudentByID(id string) error
	}

	SessionRepository interface {
		QueryAllSessions() ([]Session, error)
		GetSessionByID(id string) (Session, error)
		SaveSession(Session) error
		DeleteSessionByID(id string) error
	}

	Service struct {
		cycles   CycleRepository
		classes  ClassRepository
		students StudentRepository
		sessions SessionRepository
	}
)

func NewService(cycles CycleRepository, classes ClassRepository, students StudentRepository, sessions SessionRepository) *Service {
	return &Service{
		cycles:   cycles,
		classes:  classes,
		students: students,
		sessions: sessions,
	}
}

// Cycles

func (svc *Service) CreateCycle(name string) (Cycle, error) {
	name = core.CleanString(name)
	if name == "" {
		return Cycle{}, core.NewValidationError(errors.New("cycle name is required"),
			core.FieldError{Field: "name", Error: "this field is required"})
	}
	cy := Cycle{ID: core.NewID(), Name: name}
	if err := svc.cycles.SaveCycle(cy); err != nil {
		return Cycle{}, err
	}
	return cy, nil
}

func (svc *Service) Cycles() ([]Cycle, error) {
	return svc.cycles.QueryAllCycles()
}

// Classes

// CreateClass stores a new class under the given cycle (UnassignedCycleID or
// "" for none). Duplicate names never block: when the name already exists in
// another cycle the class is created anyway and the returned flag is true so
// the caller can warn.
func (svc *Service) CreateClass(name, cycleID string) (Class, bool, error) {
	name = core.CleanString(name)
	if name == "" {
		return Class{}, false, core.NewValidationError(errors.New("class name is required"),
			core.FieldError{Field: "name", Error: "this field is required"})
	}
	if cycleID == UnassignedCycleID {
		cycleID = ""
	}

	var existsElsewhere bool
	existing, err := svc.EffectiveClasses()
	if err != nil {
		return Class{}, false, err
	}
	for _, c := range existing {
		if c.Name == name && c.CycleID != "" && c.CycleID != cycleID {
			existsElsewhere = true
			break
		}
	}

	cls := Class{ID: core.NewID(), Name: name, CycleID: cycleID}
	if err := svc.classes.SaveClass(cls); err != nil {
		return Class{}, false, err
	}
	return cls, existsElsewhere, nil
}

// Students

func (svc *Service) Students() ([]Student, error) {
	return svc.students.QueryAllStudents()
}

func (svc *Service) GetStudent(id string) (Student, error) {
	return svc.students.GetStudentByID(id)
}

func (svc *Service) SaveStudent(s Student) error {
	return svc.students.SaveStudent(s)
}

// AttachPhoto stores a base64 data URL on the student record.
func (svc *Service) AttachPhoto(studentID, photoData string) (Student, error) {
	s, err := svc.students.GetStudentByID(studentID)
	if err != nil {
		return Student{}, err
	}
	s.PhotoData = photoData
	if err := svc.students.SaveStudent(s); err != nil {
		return Student{}, err
	}
	return s, nil
}

// Sessions

// CreateSession snapshots the current roster of the class: every student
// whose ClassName matches gets an attendance record marked present. The
// snapshot is never revisited when the roster changes afterwards.
func (svc *Service) CreateSession(classID, date string) (Session, error) {
	classes, err := svc.classes.QueryAllClasses()
	if err != nil {
		return Session{}, err
	}
	var cls *Class
	for i := range classes {
		if classes[i].ID == classID {
			cls = &classes[i]
			break
		}
	}
	if cls == nil {
		return Session{}, ErrNotFound
	}

	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return Session{}, err
	}
	var attendance []AttendanceRecord
	for _, s := range students {
		if s.ClassName == cls.Name {
			attendance = append(attendance, AttendanceRecord{StudentID: s.ID, Status: StatusPresent})
		}
	}

	sess := Session{
		ID:         core.NewID(),
		Date:       date,
		Time:       time.Now().Format("15:04"),
		ClassName:  cls.Name,
		CycleID:    cls.CycleID,
		Attendance: attendance,
	}
	if err := svc.sessions.SaveSession(sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Sessions returns all sessions, most recent date first.
func (svc *Service) Sessions() ([]Session, error) {
	sessions, err := svc.sessions.QueryAllSessions()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(sessions, func(i, j int) bool { return sessions[i].Date > sessions[j].Date })
	return sessions, nil
}

func (svc *Service) GetSession(id string) (Session, error) {
	return svc.sessions.GetSessionByID(id)
}

func (svc *Service) SaveSession(s Session) error {
	for _, rec := range s.Attendance {
		if !rec.Status.Valid() {
			return core.NewValidationError(errors.New("unknown attendance status"),
				core.FieldError{Field: "attendance", Error: "unknown status: " + string(rec.Status)})
		}
	}
	return svc.sessions.SaveSession(s)
}

func (svc *Service) DeleteSession(id string) error {
	return svc.sessions.DeleteSessionByID(id)
}
