package importer

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/school"
)

// ErrNoIDColumn refuses a generic-mode commit when no id column is mapped.
var ErrNoIDColumn = errors.New("no id column selected for import")

// Massar sheets carry a fixed 15-row header block followed by data rows with
// known column offsets. The official layout is fixed by the ministry, so the
// offsets are constants rather than configuration.
const (
	massarHeaderRows = 15
	massarIDCol      = 2 // col C
	massarNameCol    = 3 // col D
	massarBirthCol   = 5 // col F
)

// DefaultClassName is assigned when an import runs outside any class context
// and no class column is mapped.
const DefaultClassName = "Imported"

// headerLeakRe flags rows where header text leaked into the data block,
// which happens when the 15-row boundary was mis-detected.
var headerLeakRe = regexp.MustCompile(`(?i)nom|prenom`)

// Preview is the analyzed shape of an uploaded sheet, shown to the user
// before committing.
type Preview struct {
	Massar    bool     `json:"massar"`
	Headers   []string `json:"headers,omitempty"`
	RowCount  int      `json:"rowCount"`
	Suggested Mapping  `json:"suggested"`

	rows [][]string
}

// Analyze classifies the sheet. The Massar probe is a single heuristic with
// no fallback verification: more than 15 rows with a non-empty official-id
// cell at row 15. A generic sheet with data at exactly that cell will be
// misclassified; the official layout makes the probe reliable in practice.
func Analyze(rows [][]string) Preview {
	if len(rows) > massarHeaderRows && cellAt(rows[massarHeaderRows], massarIDCol) != "" {
		return Preview{Massar: true, RowCount: len(rows) - massarHeaderRows, rows: rows}
	}

	p := Preview{rows: rows}
	if len(rows) > 0 {
		p.Headers = rows[0]
		p.RowCount = len(rows) - 1
		p.Suggested = SuggestMapping(rows[0])
	}
	return p
}

// Students materializes student records from the analyzed sheet.
// targetClass is the class-context name; empty means no context. Rows
// missing required fields are silently dropped, never reported. Every
// student gets a fresh id; re-importing the same roster creates duplicates.
func (p Preview) Students(targetClass string, m Mapping) ([]school.Student, error) {
	if p.Massar {
		return p.massarStudents(targetClass), nil
	}
	return p.genericStudents(targetClass, m)
}

func (p Preview) massarStudents(targetClass string) []school.Student {
	if targetClass == "" {
		targetClass = DefaultClassName
	}

	var students []school.Student
	for _, row := range p.rows[massarHeaderRows:] {
		rawName := strings.TrimSpace(cellAt(row, massarNameCol))
		if rawName == "" || headerLeakRe.MatchString(rawName) {
			continue
		}

		// official layout: first whitespace token is the last name
		var firstName, lastName string
		parts := strings.Fields(rawName)
		if len(parts) > 1 {
			lastName = parts[0]
			firstName = strings.Join(parts[1:], " ")
		} else {
			lastName = rawName
		}

		students = append(students, school.Student{
			ID:        core.NewID(),
			MassarID:  strings.TrimSpace(cellAt(row, massarIDCol)),
			FirstName: firstName,
			LastName:  lastName,
			BirthDate: core.NormalizeDate(cellAt(row, massarBirthCol)),
			ClassName: targetClass,
		})
	}
	return students
}

func (p Preview) genericStudents(targetClass string, m Mapping) ([]school.Student, error) {
	if m.MassarID == "" {
		return nil, ErrNoIDColumn
	}

	idxLast := headerIndex(p.Headers, m.LastName)
	idxBirth := headerIndex(p.Headers, m.BirthDate)
	idxMassar := headerIndex(p.Headers, m.MassarID)

	// a class column only applies outside a class context
	idxClass := -1
	if targetClass == "" {
		idxClass = headerIndex(p.Headers, m.ClassName)
	}
	if targetClass == "" {
		targetClass = DefaultClassName
	}

	var students []school.Student
	if len(p.rows) == 0 {
		return students, nil
	}
	for _, row := range p.rows[1:] {
		var firstName, lastName string
		if idxLast > -1 {
			// generic sheets usually put the given name last
			val := strings.TrimSpace(cellAt(row, idxLast))
			parts := strings.Fields(val)
			if len(parts) > 1 {
				firstName = parts[len(parts)-1]
				lastName = strings.Join(parts[:len(parts)-1], " ")
			} else {
				lastName = val
			}
		}

		birthDate := core.FallbackDate
		if idxBirth > -1 && cellAt(row, idxBirth) != "" {
			birthDate = core.NormalizeDate(cellAt(row, idxBirth))
		}

		className := targetClass
		if idxClass > -1 && cellAt(row, idxClass) != "" {
			className = cellAt(row, idxClass)
		}

		s := school.Student{
			ID:        core.NewID(),
			MassarID:  cellAt(row, idxMassar),
			FirstName: firstName,
			LastName:  lastName,
			BirthDate: birthDate,
			ClassName: className,
		}
		if s.MassarID == "" || (s.FirstName == "" && s.LastName == "") {
			continue
		}
		students = append(students, s)
	}
	return students, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

type Service struct {
	students school.StudentRepository
}

func NewService(students school.StudentRepository) *Service {
	return &Service{students: students}
}

// Commit writes the produced students one at a time. There is no duplicate
// detection against existing records and no rollback: an error mid-way
// leaves the already-written students in place.
func (svc *Service) Commit(students []school.Student) (int, error) {
	var saved int
	for _, s := range students {
		if err := svc.students.SaveStudent(s); err != nil {
			return saved, err
		}
		saved++
	}
	return saved, nil
}

// ImportFile runs the whole pipeline on an xlsx stream: read, classify,
// materialize (using the suggested mapping when none is given) and commit.
func (svc *Service) ImportFile(r io.Reader, targetClass string, m *Mapping) (int, Preview, error) {
	rows, err := ReadWorkbook(r)
	if err != nil {
		return 0, Preview{}, err
	}
	p := Analyze(rows)

	mapping := p.Suggested
	if m != nil {
		mapping = *m
	}
	students, err := p.Students(targetClass, mapping)
	if err != nil {
		return 0, p, err
	}
	n, err := svc.Commit(students)
	return n, p, err
}
