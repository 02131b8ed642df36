package inmemdb

import "github.com/daftarhq/daftar/core/school"

// Cycles

type cycleRepository struct {
	db *cycleTable
}

func NewCycleRepository(db *DB) school.CycleRepository {
	return &cycleRepository{db: db.cycles}
}

func (repo *cycleRepository) QueryAllCycles() ([]school.Cycle, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	cycles := make([]school.Cycle, 0, len(repo.db.table))
	for _, cy := range repo.db.table {
		cycles = append(cycles, *cy)
	}
	return cycles, nil
}

func (repo *cycleRepository) SaveCycle(cy school.Cycle) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[cy.ID] = &cy
	return nil
}

func (repo *cycleRepository) DeleteCycleByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}

// Classes

type classRepository struct {
	db *classTable
}

func NewClassRepository(db *DB) school.ClassRepository {
	return &classRepository{db: db.classes}
}

func (repo *classRepository) QueryAllClasses() ([]school.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	classes := make([]school.Class, 0, len(repo.db.table))
	for _, c := range repo.db.table {
		classes = append(classes, *c)
	}
	return classes, nil
}

func (repo *classRepository) SaveClass(c school.Class) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[c.ID] = &c
	return nil
}

func (repo *classRepository) DeleteClassByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}

// Students

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) school.StudentRepository {
	return &studentRepository{db: db.students}
}

func (repo *studentRepository) QueryAllStudents() ([]school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	students := make([]school.Student, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		students = append(students, *s)
	}
	return students, nil
}

func (repo *studentRepository) GetStudentByID(id string) (school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return school.Student{}, school.ErrNotFound
}

func (repo *studentRepository) SaveStudent(s school.Student) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[s.ID] = &s
	return nil
}

func (repo *studentRepository) DeleteStudentByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}

// Sessions

type sessionRepository struct {
	db *sessionTable
}

func NewSessionRepository(db *DB) school.SessionRepository {
	return &sessionRepository{db: db.sessions}
}

func (repo *sessionRepository) QueryAllSessions() ([]school.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	sessions := make([]school.Session, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		sessions = append(sessions, *s)
	}
	return sessions, nil
}

func (repo *sessionRepository) GetSessionByID(id string) (school.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return school.Session{}, school.ErrNotFound
}

func (repo *sessionRepository) SaveSession(s school.Session) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[s.ID] = &s
	return nil
}

func (repo *sessionRepository) DeleteSessionByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}
