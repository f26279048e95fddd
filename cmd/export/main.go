// Package main is the record export tool. It dumps every student,
// instructor and lesson from a school database into the plain-text
// handover document, for backups or for taking the records to a machine
// without the server running.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/passit-driving/school-hub/internal/application/query"
	"github.com/passit-driving/school-hub/internal/infrastructure/persistence/sqlite"
	"github.com/passit-driving/school-hub/internal/interface/export"
)

func main() {
	var (
		dbPath  = flag.String("db", "school.db", "sqlite database file")
		outPath = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	if err := run(*dbPath, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, outPath string) error {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	snapshot := query.NewGetSnapshotHandler(
		sqlite.NewStudentRepository(store),
		sqlite.NewInstructorRepository(store),
		sqlite.NewLessonRepository(store),
	)

	snap, err := snapshot.Handle(context.Background(), query.GetSnapshotQuery{})
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return export.Render(out, snap)
}
