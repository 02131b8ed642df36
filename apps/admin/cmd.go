package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/daftarhq/daftar/core/importer"
	"github.com/daftarhq/daftar/core/school"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	schoolSvc *school.Service
	importSvc *importer.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  import -file FILE [-class CLASS] - import students from an xlsx roster")
	fmt.Println("  seed - create a starter set of cycles and classes")
	fmt.Println("  stats - print dashboard statistics")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "Path of the xlsx roster to import.")
	importClass := importCmd.String("class", "", "Class name assigned to the imported students. Defaults to the sheet's class column, if any.")

	switch args[1] {
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importRoster(*importFile, *importClass)
	case "seed":
		return cli.seed()
	case "stats":
		return cli.stats()
	default:
		cli.printUsage()
		return errHelp
	}
}
