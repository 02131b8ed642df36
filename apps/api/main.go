package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/daftarhq/daftar/apps/api/echo"
	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/document"
	"github.com/daftarhq/daftar/core/importer"
	"github.com/daftarhq/daftar/core/school"
	inmemdb "github.com/daftarhq/daftar/storage/database/inmem"
	sqlitedb "github.com/daftarhq/daftar/storage/database/sqlite"
)

func main() {
	var (
		cycleRepo   school.CycleRepository
		classRepo   school.ClassRepository
		studentRepo school.StudentRepository
		sessionRepo school.SessionRepository
		docRepo     document.Repository
	)

	switch engine := core.Conf.GetString("database.engine"); engine {
	case "sqlite":
		db, err := sqlitedb.Open(core.Conf.GetString("database.path"))
		errAndDie(err)
		defer db.Close()
		cycleRepo = sqlitedb.NewCycleRepository(db)
		classRepo = sqlitedb.NewClassRepository(db)
		studentRepo = sqlitedb.NewStudentRepository(db)
		sessionRepo = sqlitedb.NewSessionRepository(db)
		docRepo = sqlitedb.NewDocumentRepository(db)
	case "inmem":
		db, err := inmemdb.Open()
		errAndDie(err)
		cycleRepo = inmemdb.NewCycleRepository(db)
		classRepo = inmemdb.NewClassRepository(db)
		studentRepo = inmemdb.NewStudentRepository(db)
		sessionRepo = inmemdb.NewSessionRepository(db)
		docRepo = inmemdb.NewDocumentRepository(db)
	default:
		log.Fatalf("unknown database.engine %q", engine)
	}

	// set up services
	schoolSvc := school.NewService(cycleRepo, classRepo, studentRepo, sessionRepo)
	docSvc := document.NewService(docRepo)
	importSvc := importer.NewService(studentRepo)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:   core.Conf.GetString("address"),
			SchoolSvc: schoolSvc,
			DocSvc:    docSvc,
			ImportSvc: importSvc,
		},
	)
	go app.Start()

	// graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		log.Fatal(err)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
