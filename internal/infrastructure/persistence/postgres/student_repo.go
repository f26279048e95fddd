package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// StudentRepository implements student.Repository for PostgreSQL.
type StudentRepository struct {
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{conn: conn}
}

// Create inserts the student and assigns the store-generated id.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	var id int64
	err := r.conn.QueryRow(ctx,
		`INSERT INTO students (name, address, phone, progress, payment_status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.Name, s.Address, s.Phone, s.Progress, string(s.PaymentStatus),
	).Scan(&id)
	if err != nil {
		return storeErr("student", "Create", err)
	}

	s.ID = student.ID(id)
	return nil
}

// GetByID returns the student with the given id.
func (r *StudentRepository) GetByID(ctx context.Context, id student.ID) (*student.Student, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, name, address, phone, progress, payment_status
		 FROM students WHERE id = $1`, int64(id),
	)

	s, err := scanStudent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, student.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("student", "Get", err)
	}
	return s, nil
}

// Update overwrites the mutable fields of the stored student.
func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE students
		 SET name = $1, address = $2, phone = $3, progress = $4, payment_status = $5
		 WHERE id = $6`,
		s.Name, s.Address, s.Phone, s.Progress, string(s.PaymentStatus), int64(s.ID),
	)
	if err != nil {
		return storeErr("student", "Update", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}
	return nil
}

// Delete removes the student. Dependent rows are left untouched.
func (r *StudentRepository) Delete(ctx context.Context, id student.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM students WHERE id = $1`, int64(id))
	if err != nil {
		return storeErr("student", "Delete", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrNotFound
	}
	return nil
}

// Search returns (id, name) pairs for names containing the substring.
func (r *StudentRepository) Search(ctx context.Context, nameSubstring string) ([]student.Ref, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, name FROM students
		 WHERE name LIKE '%' || $1 || '%'
		 ORDER BY id`, nameSubstring,
	)
	if err != nil {
		return nil, storeErr("student", "Search", err)
	}
	defer rows.Close()

	var refs []student.Ref
	for rows.Next() {
		var ref student.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, storeErr("student", "Search", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("student", "Search", err)
	}
	return refs, nil
}

// ListAll returns every student in id order.
func (r *StudentRepository) ListAll(ctx context.Context) ([]*student.Student, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, name, address, phone, progress, payment_status
		 FROM students ORDER BY id`,
	)
	if err != nil {
		return nil, storeErr("student", "ListAll", err)
	}
	defer rows.Close()

	var students []*student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, storeErr("student", "ListAll", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("student", "ListAll", err)
	}
	return students, nil
}

// Count returns the total number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&n); err != nil {
		return 0, storeErr("student", "Count", err)
	}
	return n, nil
}

func scanStudent(row pgx.Row) (*student.Student, error) {
	var s student.Student
	var status string
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Progress, &status); err != nil {
		return nil, err
	}
	s.PaymentStatus = student.PaymentStatus(status)
	return &s, nil
}
