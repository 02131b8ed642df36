package inmemdb

import (
	"sync"

	"github.com/daftarhq/daftar/core/document"
	"github.com/daftarhq/daftar/core/school"
)

type (
	DB struct {
		cycles    *cycleTable
		classes   *classTable
		students  *studentTable
		sessions  *sessionTable
		documents *documentTable
	}

	cycleTable struct {
		sync.RWMutex
		table map[string]*school.Cycle
	}

	classTable struct {
		sync.RWMutex
		table map[string]*school.Class
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*school.Student
	}

	sessionTable struct {
		sync.RWMutex
		table map[string]*school.Session
	}

	documentTable struct {
		sync.RWMutex
		table map[string]*document.File
	}
)

func Open() (*DB, error) {
	db := &DB{
		cycles:    &cycleTable{table: make(map[string]*school.Cycle)},
		classes:   &classTable{table: make(map[string]*school.Class)},
		students:  &studentTable{table: make(map[string]*school.Student)},
		sessions:  &sessionTable{table: make(map[string]*school.Session)},
		documents: &documentTable{table: make(map[string]*document.File)},
	}
	return db, nil
}
