package school_test

import (
	"testing"
	"time"

	"github.com/daftarhq/daftar/core/school"
)

func TestComputeStatsEmpty(t *testing.T) {
	stats := school.ComputeStats(nil, nil, nil, nil, time.Now())
	if stats.AvgAttendance != 0 {
		t.Errorf("AvgAttendance = %d, want 0", stats.AvgAttendance)
	}
	if len(stats.AtRiskStudents) != 0 {
		t.Errorf("AtRiskStudents = %+v, want empty", stats.AtRiskStudents)
	}
	if stats.TotalStudents != 0 || stats.SessionsCount != 0 {
		t.Errorf("unexpected counts: %+v", stats)
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	students := []school.Student{
		{ID: "s1", FirstName: "Youssef", LastName: "EL AMRANI"},
		{ID: "s2", FirstName: "Sara", LastName: "BENNIS"},
	}
	cycles := []school.Cycle{{ID: "cy1", Name: "College"}}

	absent := func(id string) school.AttendanceRecord {
		return school.AttendanceRecord{StudentID: id, Status: school.StatusAbsent}
	}
	present := func(id string) school.AttendanceRecord {
		return school.AttendanceRecord{StudentID: id, Status: school.StatusPresent}
	}

	sessions := []school.Session{
		{ID: "x1", Date: "2024-05-02", CycleID: "cy1", Attendance: []school.AttendanceRecord{present("s1"), absent("s2")}},
		{ID: "x2", Date: "2024-05-09", CycleID: "cy1", Attendance: []school.AttendanceRecord{present("s1"), absent("s2")}},
		{ID: "x3", Date: "2024-04-25", Attendance: []school.AttendanceRecord{absent("s2"), absent("s2")}},
	}

	stats := school.ComputeStats(students, sessions, nil, cycles, now)

	if stats.TotalStudents != 2 {
		t.Errorf("TotalStudents = %d, want 2", stats.TotalStudents)
	}
	if stats.SessionsCount != 2 { // only the May sessions
		t.Errorf("SessionsCount = %d, want 2", stats.SessionsCount)
	}
	// 2 present out of 6 records = 33%
	if stats.AvgAttendance != 33 {
		t.Errorf("AvgAttendance = %d, want 33", stats.AvgAttendance)
	}
	// s2 has 4 absences (> 3), s1 has none
	if len(stats.AtRiskStudents) != 1 {
		t.Fatalf("AtRiskStudents = %+v, want exactly s2", stats.AtRiskStudents)
	}
	if stats.AtRiskStudents[0].ID != "s2" || stats.AtRiskStudents[0].Absences != 4 {
		t.Errorf("unexpected at-risk entry: %+v", stats.AtRiskStudents[0])
	}
	if len(stats.CycleStats) != 1 || stats.CycleStats[0].SessionCount != 2 {
		t.Errorf("unexpected cycle stats: %+v", stats.CycleStats)
	}
}

func TestComputeStatsAtRiskOrderAndLimit(t *testing.T) {
	var students []school.Student
	var records []school.AttendanceRecord
	for _, s := range []struct {
		id       string
		absences int
	}{
		{"a", 4}, {"b", 6}, {"c", 5}, {"d", 7}, {"e", 8}, {"f", 9}, {"g", 2},
	} {
		students = append(students, school.Student{ID: s.id})
		for i := 0; i < s.absences; i++ {
			records = append(records, school.AttendanceRecord{StudentID: s.id, Status: school.StatusAbsent})
		}
	}
	sessions := []school.Session{{ID: "x", Date: "2020-01-01", Attendance: records}}

	stats := school.ComputeStats(students, sessions, nil, nil, time.Now())
	if len(stats.AtRiskStudents) != 5 {
		t.Fatalf("at-risk list truncates to 5, got %d", len(stats.AtRiskStudents))
	}
	wantOrder := []string{"f", "e", "d", "b", "c"}
	for i, want := range wantOrder {
		if stats.AtRiskStudents[i].ID != want {
			t.Errorf("at-risk[%d] = %q, want %q", i, stats.AtRiskStudents[i].ID, want)
		}
	}
}
