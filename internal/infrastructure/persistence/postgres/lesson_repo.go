package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// LessonRepository implements lesson.Repository for PostgreSQL.
type LessonRepository struct {
	conn *Connection
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(conn *Connection) *LessonRepository {
	return &LessonRepository{conn: conn}
}

// Create inserts the lesson and assigns the store-generated id.
func (r *LessonRepository) Create(ctx context.Context, l *lesson.Lesson) error {
	var id int64
	err := r.conn.QueryRow(ctx,
		`INSERT INTO lessons (student_id, student_name, instructor_id, instructor_name, lesson_type, date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		int64(l.StudentID), l.StudentName, int64(l.InstructorID), l.InstructorName,
		string(l.Type), l.Date, string(l.Status),
	).Scan(&id)
	if err != nil {
		return storeErr("lesson", "Create", err)
	}

	l.ID = lesson.ID(id)
	return nil
}

// GetByID returns the lesson with the given id.
func (r *LessonRepository) GetByID(ctx context.Context, id lesson.ID) (*lesson.Lesson, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons WHERE id = $1`, int64(id),
	)

	l, err := scanLesson(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, lesson.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("lesson", "Get", err)
	}
	return l, nil
}

// Update writes the date and status only.
func (r *LessonRepository) Update(ctx context.Context, l *lesson.Lesson) error {
	tag, err := r.conn.Exec(ctx,
		`UPDATE lessons SET date = $1, status = $2 WHERE id = $3`,
		l.Date, string(l.Status), int64(l.ID),
	)
	if err != nil {
		return storeErr("lesson", "Update", err)
	}
	if tag.RowsAffected() == 0 {
		return lesson.ErrNotFound
	}
	return nil
}

// Delete removes the lesson.
func (r *LessonRepository) Delete(ctx context.Context, id lesson.ID) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, int64(id))
	if err != nil {
		return storeErr("lesson", "Delete", err)
	}
	if tag.RowsAffected() == 0 {
		return lesson.ErrNotFound
	}
	return nil
}

// SearchByStudentID matches the decimal text form of student_id against
// the substring. An empty substring matches every lesson.
func (r *LessonRepository) SearchByStudentID(ctx context.Context, idSubstring string) ([]*lesson.Lesson, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons
		 WHERE student_id::text LIKE '%' || $1 || '%'
		 ORDER BY id`, idSubstring,
	)
	if err != nil {
		return nil, storeErr("lesson", "SearchByStudentID", err)
	}
	return collectLessons(rows, "SearchByStudentID")
}

// ListByStudent returns the student's lessons in insertion (id) order.
func (r *LessonRepository) ListByStudent(ctx context.Context, studentID student.ID) ([]*lesson.Lesson, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons WHERE student_id = $1 ORDER BY id`, int64(studentID),
	)
	if err != nil {
		return nil, storeErr("lesson", "ListByStudent", err)
	}
	return collectLessons(rows, "ListByStudent")
}

// ListAll returns every lesson in id order.
func (r *LessonRepository) ListAll(ctx context.Context) ([]*lesson.Lesson, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons ORDER BY id`,
	)
	if err != nil {
		return nil, storeErr("lesson", "ListAll", err)
	}
	return collectLessons(rows, "ListAll")
}

// CountByStatus counts lessons carrying exactly the given status label.
func (r *LessonRepository) CountByStatus(ctx context.Context, status lesson.Status) (int, error) {
	var n int
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM lessons WHERE status = $1`, string(status),
	).Scan(&n)
	if err != nil {
		return 0, storeErr("lesson", "CountByStatus", err)
	}
	return n, nil
}

func collectLessons(rows pgx.Rows, op string) ([]*lesson.Lesson, error) {
	defer rows.Close()

	var lessons []*lesson.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, storeErr("lesson", op, err)
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("lesson", op, err)
	}
	return lessons, nil
}

func scanLesson(row pgx.Row) (*lesson.Lesson, error) {
	var l lesson.Lesson
	var typ, status string
	err := row.Scan(&l.ID, &l.StudentID, &l.StudentName, &l.InstructorID,
		&l.InstructorName, &typ, &l.Date, &status)
	if err != nil {
		return nil, err
	}
	l.Type = lesson.Type(typ)
	l.Status = lesson.Status(status)
	return &l, nil
}
