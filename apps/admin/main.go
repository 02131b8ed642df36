package main

import (
	"log"
	"os"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/importer"
	"github.com/daftarhq/daftar/core/school"
	sqlitedb "github.com/daftarhq/daftar/storage/database/sqlite"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := sqlitedb.Open(core.Conf.GetString("database.path"))
	errAndDie(err)
	defer db.Close()

	studentRepo := sqlitedb.NewStudentRepository(db)
	schoolSvc := school.NewService(
		sqlitedb.NewCycleRepository(db),
		sqlitedb.NewClassRepository(db),
		studentRepo,
		sqlitedb.NewSessionRepository(db),
	)

	// start CLI
	cli := commandLine{
		schoolSvc: schoolSvc,
		importSvc: importer.NewService(studentRepo),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
