package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passit-driving/school-hub/internal/domain/student"
)

// StudentRepository implements student.Repository for SQLite.
type StudentRepository struct {
	store *Store
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// Create inserts the student and assigns the store-generated id.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO students (name, address, phone, progress, payment_status)
		 VALUES (?, ?, ?, ?, ?)`,
		s.Name, s.Address, s.Phone, s.Progress, string(s.PaymentStatus),
	)
	if err != nil {
		return storeErr("student", "Create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("student", "Create", err)
	}
	s.ID = student.ID(id)

	return nil
}

// GetByID returns the student with the given id.
func (r *StudentRepository) GetByID(ctx context.Context, id student.ID) (*student.Student, error) {
	row := r.store.db.QueryRowContext(ctx,
		`SELECT id, name, address, phone, progress, payment_status
		 FROM students WHERE id = ?`, int64(id),
	)

	s, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, student.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("student", "Get", err)
	}
	return s, nil
}

// Update overwrites the mutable fields of the stored student.
func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE students
		 SET name = ?, address = ?, phone = ?, progress = ?, payment_status = ?
		 WHERE id = ?`,
		s.Name, s.Address, s.Phone, s.Progress, string(s.PaymentStatus), int64(s.ID),
	)
	if err != nil {
		return storeErr("student", "Update", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("student", "Update", err)
	}
	if affected == 0 {
		return student.ErrNotFound
	}
	return nil
}

// Delete removes the student. Dependent rows are left untouched.
func (r *StudentRepository) Delete(ctx context.Context, id student.ID) error {
	res, err := r.store.db.ExecContext(ctx,
		`DELETE FROM students WHERE id = ?`, int64(id),
	)
	if err != nil {
		return storeErr("student", "Delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("student", "Delete", err)
	}
	if affected == 0 {
		return student.ErrNotFound
	}
	return nil
}

// Search returns (id, name) pairs for names containing the substring.
func (r *StudentRepository) Search(ctx context.Context, nameSubstring string) ([]student.Ref, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, name FROM students
		 WHERE name LIKE '%' || ? || '%'
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
	rows, err := r.store.db.QueryContext(ctx,
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
	err := r.store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&n)
	if err != nil {
		return 0, storeErr("student", "Count", err)
	}
	return n, nil
}

// scanStudent maps a row onto the entity.
func scanStudent(row interface{ Scan(dest ...any) error }) (*student.Student, error) {
	var s student.Student
	var status string
	if err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.Progress, &status); err != nil {
		return nil, err
	}
	s.PaymentStatus = student.PaymentStatus(status)
	return &s, nil
}
