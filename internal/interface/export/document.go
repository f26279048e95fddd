// Package export renders report snapshots into plain-text documents:
// one section per entity, each record printed as a labeled field block.
// The renderer consumes the core's query results and carries no business
// logic of its own.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/passit-driving/school-hub/internal/domain/report"
)

// Render writes the snapshot document to w.
func Render(w io.Writer, snap *report.Snapshot) error {
	var b strings.Builder

	b.WriteString("PASS IT DRIVING SCHOOL - RECORD EXPORT\n")
	fmt.Fprintf(&b, "Export ID: %s\n", snap.ExportID)
	fmt.Fprintf(&b, "Generated: %s\n", snap.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	b.WriteString("\n")

	section(&b, "STUDENTS")
	for _, s := range snap.Students {
		fmt.Fprintf(&b, "ID: %d\n", s.ID)
		fmt.Fprintf(&b, "Name: %s\n", s.Name)
		fmt.Fprintf(&b, "Address: %s\n", s.Address)
		fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
		fmt.Fprintf(&b, "Progress: %s\n", s.Progress)
		fmt.Fprintf(&b, "Payment Status: %s\n", s.PaymentStatus)
		b.WriteString("\n")
	}

	section(&b, "INSTRUCTORS")
	for _, i := range snap.Instructors {
		fmt.Fprintf(&b, "ID: %d\n", i.ID)
		fmt.Fprintf(&b, "Name: %s\n", i.Name)
		fmt.Fprintf(&b, "Phone: %s\n", i.Phone)
		fmt.Fprintf(&b, "Email: %s\n", i.Email)
		fmt.Fprintf(&b, "Instructor Type: %s\n", i.Type)
		b.WriteString("\n")
	}

	section(&b, "LESSONS")
	for _, l := range snap.Lessons {
		fmt.Fprintf(&b, "ID: %d\n", l.ID)
		fmt.Fprintf(&b, "Student ID: %d\n", l.StudentID)
		fmt.Fprintf(&b, "Student Name: %s\n", l.StudentName)
		fmt.Fprintf(&b, "Instructor ID: %d\n", l.InstructorID)
		fmt.Fprintf(&b, "Instructor Name: %s\n", l.InstructorName)
		fmt.Fprintf(&b, "Lesson Type: %s\n", l.Type)
		fmt.Fprintf(&b, "Date: %s\n", l.Date)
		fmt.Fprintf(&b, "Status: %s\n", l.Status)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Document renders the snapshot into a string.
func Document(snap *report.Snapshot) string {
	var b strings.Builder
	Render(&b, snap) // strings.Builder writes never fail
	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}
