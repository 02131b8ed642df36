package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// seed data for a fresh install: the usual Moroccan secondary structure.
var seedLayout = map[string][]string{
	"Collège": {"1APIC", "2APIC", "3APIC"},
	"Lycée":   {"TC", "1BAC", "2BAC"},
}

func (cli *commandLine) seed() error {
	existing, err := cli.schoolSvc.Cycles()
	if err != nil {
		return errors.Wrap(err, "querying cycles")
	}
	if len(existing) > 0 {
		fmt.Println("cycles already exist; nothing to seed")
		return nil
	}

	for cycleName, classNames := range seedLayout {
		cy, err := cli.schoolSvc.CreateCycle(cycleName)
		if err != nil {
			return errors.Wrapf(err, "creating cycle %s", cycleName)
		}
		for _, className := range classNames {
			if _, _, err := cli.schoolSvc.CreateClass(className, cy.ID); err != nil {
				return errors.Wrapf(err, "creating class %s", className)
			}
		}
		fmt.Printf("created cycle %s with %d classes\n", cycleName, len(classNames))
	}
	return nil
}
