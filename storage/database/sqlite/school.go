package sqlitedb

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/daftarhq/daftar/core/school"
)

// Cycles

type cycleRepository struct {
	db *sql.DB
}

func NewCycleRepository(db *sql.DB) school.CycleRepository {
	return &cycleRepository{db: db}
}

func (repo *cycleRepository) QueryAllCycles() ([]school.Cycle, error) {
	docs, err := queryAll(repo.db, "cycles")
	if err != nil {
		return nil, err
	}
	cycles := make([]school.Cycle, 0, len(docs))
	for _, data := range docs {
		var cy school.Cycle
		if err = json.Unmarshal(data, &cy); err != nil {
			return nil, errors.Wrap(err, "decoding cycle")
		}
		cycles = append(cycles, cy)
	}
	return cycles, nil
}

func (repo *cycleRepository) SaveCycle(cy school.Cycle) error {
	data, err := json.Marshal(cy)
	if err != nil {
		return errors.Wrap(err, "encoding cycle")
	}
	return putRecord(repo.db, "cycles", cy.ID, data)
}

func (repo *cycleRepository) DeleteCycleByID(id string) error {
	return deleteRecord(repo.db, "cycles", id)
}

// Classes

type classRepository struct {
	db *sql.DB
}

func NewClassRepository(db *sql.DB) school.ClassRepository {
	return &classRepository{db: db}
}

func (repo *classRepository) QueryAllClasses() ([]school.Class, error) {
	docs, err := queryAll(repo.db, "classes")
	if err != nil {
		return nil, err
	}
	classes := make([]school.Class, 0, len(docs))
	for _, data := range docs {
		var c school.Class
		if err = json.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(err, "decoding class")
		}
		classes = append(classes, c)
	}
	return classes, nil
}

func (repo *classRepository) SaveClass(c school.Class) error {
	data, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding class")
	}
	return putRecord(repo.db, "classes", c.ID, data)
}

func (repo *classRepository) DeleteClassByID(id string) error {
	return deleteRecord(repo.db, "classes", id)
}

// Students

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) school.StudentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) QueryAllStudents() ([]school.Student, error) {
	docs, err := queryAll(repo.db, "students")
	if err != nil {
		return nil, err
	}
	students := make([]school.Student, 0, len(docs))
	for _, data := range docs {
		var s school.Student
		if err = json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decoding student")
		}
		students = append(students, s)
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(id string) (school.Student, error) {
	data, err := getRecord(repo.db, "students", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return school.Student{}, school.ErrNotFound
		}
		return school.Student{}, errors.Wrap(err, "getting student")
	}
	var s school.Student
	if err = json.Unmarshal(data, &s); err != nil {
		return school.Student{}, errors.Wrap(err, "decoding student")
	}
	return s, nil
}

func (repo *studentRepository) SaveStudent(s school.Student) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encoding student")
	}
	return putRecord(repo.db, "students", s.ID, data)
}

func (repo *studentRepository) DeleteStudentByID(id string) error {
	return deleteRecord(repo.db, "students", id)
}

// Sessions

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) school.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) QueryAllSessions() ([]school.Session, error) {
	docs, err := queryAll(repo.db, "sessions")
	if err != nil {
		return nil, err
	}
	sessions := make([]school.Session, 0, len(docs))
	for _, data := range docs {
		var s school.Session
		if err = json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "decoding session")
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (repo *sessionRepository) GetSessionByID(id string) (school.Session, error) {
	data, err := getRecord(repo.db, "sessions", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return school.Session{}, school.ErrNotFound
		}
		return school.Session{}, errors.Wrap(err, "getting session")
	}
	var s school.Session
	if err = json.Unmarshal(data, &s); err != nil {
		return school.Session{}, errors.Wrap(err, "decoding session")
	}
	return s, nil
}

func (repo *sessionRepository) SaveSession(s school.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	return putRecord(repo.db, "sessions", s.ID, data)
}

func (repo *sessionRepository) DeleteSessionByID(id string) error {
	return deleteRecord(repo.db, "sessions", id)
}
