package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
)

func (cli *commandLine) stats() error {
	stats, err := cli.schoolSvc.Stats()
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "students\t%d\n", stats.TotalStudents)
	fmt.Fprintf(w, "classes\t%d\n", stats.ClassCount)
	fmt.Fprintf(w, "sessions this month\t%d\n", stats.SessionsCount)
	fmt.Fprintf(w, "avg attendance\t%d%%\n", stats.AvgAttendance)
	for _, cs := range stats.CycleStats {
		fmt.Fprintf(w, "sessions in %s\t%d\n", cs.Name, cs.SessionCount)
	}
	for _, s := range stats.AtRiskStudents {
		fmt.Fprintf(w, "at risk: %s %s\t%d absences\n", s.FirstName, s.LastName, s.Absences)
	}
	return w.Flush()
}
