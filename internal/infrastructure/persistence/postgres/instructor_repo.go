package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/passit-driving/school-hub/internal/domain/instructor"
)

// InstructorRepository implements instructor.Repository for PostgreSQL.
type InstructorRepository struct {
	conn *Connection
}

// NewInstructorRepository creates a new InstructorRepository.
func NewInstructorRepository(conn *Connection) *InstructorRepository {
	return &InstructorRepository{conn: conn}
}

// Create inserts the instructor and assigns the store-generated id.
func (r *InstructorRepository) Create(ctx context.Context, i *instructor.Instructor) error {
	var id int64
	err := r.conn.QueryRow(ctx,
		`INSERT INTO instructors (name, phone, email, instructor_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		i.Name, i.Phone, i.Email, string(i.Type),
	).Scan(&id)
	if err != nil {
		return storeErr("instructor", "Create", err)
	}

	i.ID = instructor.ID(id)
	return nil
}

// GetByID returns the instructor with the given id.
func (r *InstructorRepository) GetByID(ctx context.Context, id instructor.ID) (*instructor.Instructor, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, name, phone, email, instructor_type
		 FROM instructors WHERE id = $1`, int64(id),
	)

	i, err := scanInstructor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, instructor.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("instructor", "Get", err)
	}
	return i, nil
}

// Update overwrites the mutable fields of the stored instructor.
func (r *InstructorRepository) Update(ctx context.Context, i *instructor.Instructor) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE instructors
		 SET name = $1, phone = $2, email = $3, instructor_type = $4
		 WHERE id = $5`,
		i.Name, i.Phone, i.Email, string(i.Type), int64(i.ID),
	)
	if err != nil {
		return storeErr("instructor", "Update", err)
	}
	if tag.RowsAffected() == 0 {
		return instructor.ErrNotFound
	}
	return nil
}

// Delete removes the instructor without touching dependent lessons.
func (r *InstructorRepository) Delete(ctx context.Context, id instructor.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM instructors WHERE id = $1`, int64(id))
	if err != nil {
		return storeErr("instructor", "Delete", err)
	}
	if tag.RowsAffected() == 0 {
		return instructor.ErrNotFound
	}
	return nil
}

// Search returns (id, name) pairs for names containing the substring.
func (r *InstructorRepository) Search(ctx context.Context, nameSubstring string) ([]instructor.Ref, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, name FROM instructors
		 WHERE name LIKE '%' || $1 || '%'
		 ORDER BY id`, nameSubstring,
	)
	if err != nil {
		return nil, storeErr("instructor", "Search", err)
	}
	defer rows.Close()

	var refs []instructor.Ref
	for rows.Next() {
		var ref instructor.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, storeErr("instructor", "Search", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("instructor", "Search", err)
	}
	return refs, nil
}

// ListAll returns every instructor in id order.
func (r *InstructorRepository) ListAll(ctx context.Context) ([]*instructor.Instructor, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, name, phone, email, instructor_type
		 FROM instructors ORDER BY id`,
	)
	if err != nil {
		return nil, storeErr("instructor", "ListAll", err)
	}
	defer rows.Close()

	var instructors []*instructor.Instructor
	for rows.Next() {
		i, err := scanInstructor(rows)
		if err != nil {
			return nil, storeErr("instructor", "ListAll", err)
		}
		instructors = append(instructors, i)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("instructor", "ListAll", err)
	}
	return instructors, nil
}

// Count returns the total number of instructors.
func (r *InstructorRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&n); err != nil {
		return 0, storeErr("instructor", "Count", err)
	}
	return n, nil
}

func scanInstructor(row pgx.Row) (*instructor.Instructor, error) {
	var i instructor.Instructor
	var typ string
	if err := row.Scan(&i.ID, &i.Name, &i.Phone, &i.Email, &typ); err != nil {
		return nil, err
	}
	i.Type = instructor.Type(typ)
	return &i, nil
}
