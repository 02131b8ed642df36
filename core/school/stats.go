package school

import (
	"math"
	"sort"
	"time"
)

type (
	// AtRiskStudent is a student with a worrying number of absences.
	AtRiskStudent struct {
		Student
		Absences int `json:"absences"`
	}

	// CycleStat counts sessions held under one cycle.
	CycleStat struct {
		Name         string `json:"name"`
		SessionCount int    `json:"sessionCount"`
	}

	// DashboardStats aggregates the numbers shown on the dashboard.
	DashboardStats struct {
		TotalStudents  int             `json:"totalStudents"`
		SessionsCount  int             `json:"sessionsCount"` // current calendar month
		AvgAttendance  int             `json:"avgAttendance"` // percent, 0 when no records
		ClassCount     int             `json:"classCount"`
		CycleStats     []CycleStat     `json:"cycleStats"`
		AtRiskStudents []AtRiskStudent `json:"atRiskStudents"`
	}
)

const (
	atRiskThreshold = 3 // strictly more absences than this
	atRiskLimit     = 5
)

// ComputeStats derives dashboard metrics from raw records. Pure: it never
// touches the store.
func ComputeStats(students []Student, sessions []Session, classes []Class, cycles []Cycle, now time.Time) DashboardStats {
	currentMonth := now.UTC().Format("2006-01")

	var sessionsThisMonth int
	for _, s := range sessions {
		if len(s.Date) >= len(currentMonth) && s.Date[:len(currentMonth)] == currentMonth {
			sessionsThisMonth++
		}
	}

	var present, records int
	absences := make(map[string]int)
	for _, s := range sessions {
		for _, rec := range s.Attendance {
			records++
			switch rec.Status {
			case StatusPresent:
				present++
			case StatusAbsent:
				absences[rec.StudentID]++
			}
		}
	}
	var avg int
	if records > 0 {
		avg = int(math.Round(float64(present) / float64(records) * 100))
	}

	atRisk := make([]AtRiskStudent, 0)
	for _, s := range students {
		if absences[s.ID] > atRiskThreshold {
			atRisk = append(atRisk, AtRiskStudent{Student: s, Absences: absences[s.ID]})
		}
	}
	sort.SliceStable(atRisk, func(i, j int) bool { return atRisk[i].Absences > atRisk[j].Absences })
	if len(atRisk) > atRiskLimit {
		atRisk = atRisk[:atRiskLimit]
	}

	cycleStats := make([]CycleStat, 0, len(cycles))
	for _, cy := range cycles {
		var count int
		for _, s := range sessions {
			if s.CycleID == cy.ID {
				count++
			}
		}
		cycleStats = append(cycleStats, CycleStat{Name: cy.Name, SessionCount: count})
	}

	return DashboardStats{
		TotalStudents:  len(students),
		SessionsCount:  sessionsThisMonth,
		AvgAttendance:  avg,
		ClassCount:     len(classes),
		CycleStats:     cycleStats,
		AtRiskStudents: atRisk,
	}
}

// Stats loads the four collections and computes dashboard metrics. The four
// reads are independent; there is no ordering dependency between them.
func (svc *Service) Stats() (DashboardStats, error) {
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return DashboardStats{}, err
	}
	sessions, err := svc.sessions.QueryAllSessions()
	if err != nil {
		return DashboardStats{}, err
	}
	classes, err := svc.classes.QueryAllClasses()
	if err != nil {
		return DashboardStats{}, err
	}
	cycles, err := svc.cycles.QueryAllCycles()
	if err != nil {
		return DashboardStats{}, err
	}
	return ComputeStats(students, sessions, classes, cycles, time.Now()), nil
}
