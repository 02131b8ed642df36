package school

import "strings"

// UnassignedCycleID addresses the synthetic group holding classes that
// belong to no cycle. It never corresponds to a stored Cycle record.
const UnassignedCycleID = "unassigned"

const virtualIDPrefix = "virtual-"

// Cycle is a top-level grouping of classes (e.g. "Collège", "Lycée").
type Cycle struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Class groups students by name. CycleID is empty for unassigned classes.
// Class names are deliberately not unique: the same name may exist in
// several cycles, and create/import paths only warn about duplicates.
type Class struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	CycleID string `json:"cycleId,omitempty"`
}

// Virtual reports whether the class is a derived record synthesized from
// student rows rather than a stored entity. Virtual classes have no stable
// identity beyond their name and cannot be deleted on their own.
func (c Class) Virtual() bool {
	return strings.HasPrefix(c.ID, virtualIDPrefix)
}

// VirtualClassID builds the deterministic id of a virtual class.
func VirtualClassID(name string) string {
	return virtualIDPrefix + name
}

// Student is linked to its class by name, not by id. A student whose
// ClassName matches no stored Class implicitly defines a virtual one.
type Student struct {
	ID        string `json:"id"`
	MassarID  string `json:"massarId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	ClassName string `json:"className"`
	PhotoData string `json:"photoData,omitempty"` // base64 data URL
}

// Status is the attendance state of one student in one session.
type Status string

const (
	StatusPresent  Status = "present"
	StatusAbsent   Status = "absent"
	StatusLate     Status = "late"
	StatusSick     Status = "sick"
	StatusNoKit    Status = "no_kit"
	StatusExempted Status = "exempted"
)

var AllStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusSick, StatusNoKit, StatusExempted}

func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// AttendanceRecord ties a student to a status within one session.
type AttendanceRecord struct {
	StudentID string `json:"studentId"`
	Status    Status `json:"status"`
	Note      string `json:"note,omitempty"`
}

// Session snapshots a class roster on a given date. The attendance list is
// fixed at creation time: students added to or removed from the class later
// do not alter existing sessions, and records pointing at since-deleted
// students stay in place until render time.
type Session struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"` // YYYY-MM-DD
	Time       string             `json:"time,omitempty"`
	ClassName  string             `json:"className"`
	CycleID    string             `json:"cycleId,omitempty"`
	Notes      string             `json:"notes"`
	Attendance []AttendanceRecord `json:"attendance"`
}

// CycleGroup pairs a cycle with the classes it holds, for the tree view.
type CycleGroup struct {
	Cycle   Cycle   `json:"cycle"`
	Classes []Class `json:"classes"`
}
