package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passit-driving/school-hub/internal/domain/lesson"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// LessonRepository implements lesson.Repository for SQLite.
type LessonRepository struct {
	store *Store
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(store *Store) *LessonRepository {
	return &LessonRepository{store: store}
}

// Create inserts the lesson and assigns the store-generated id.
func (r *LessonRepository) Create(ctx context.Context, l *lesson.Lesson) error {
	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO lessons (student_id, student_name, instructor_id, instructor_name, lesson_type, date, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(l.StudentID), l.StudentName, int64(l.InstructorID), l.InstructorName,
		string(l.Type), l.Date, string(l.Status),
	)
	if err != nil {
		return storeErr("lesson", "Create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("lesson", "Create", err)
	}
	l.ID = lesson.ID(id)

	return nil
}

// GetByID returns the lesson with the given id.
func (r *LessonRepository) GetByID(ctx context.Context, id lesson.ID) (*lesson.Lesson, error) {
	row := r.store.db.QueryRowContext(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons WHERE id = ?`, int64(id),
	)

	l, err := scanLesson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lesson.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("lesson", "Get", err)
	}
	return l, nil
}

// Update writes the date and status only; the parties, the type and the
// name snapshots are immutable after booking.
func (r *LessonRepository) Update(ctx context.Context, l *lesson.Lesson) error {
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE lessons SET date = ?, status = ? WHERE id = ?`,
		l.Date, string(l.Status), int64(l.ID),
	)
	if err != nil {
		return storeErr("lesson", "Update", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("lesson", "Update", err)
	}
	if affected == 0 {
		return lesson.ErrNotFound
	}
	return nil
}

// Delete removes the lesson.
func (r *LessonRepository) Delete(ctx context.Context, id lesson.ID) error {
	res, err := r.store.db.ExecContext(ctx,
		`DELETE FROM lessons WHERE id = ?`, int64(id),
	)
	if err != nil {
		return storeErr("lesson", "Delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("lesson", "Delete", err)
	}
	if affected == 0 {
		return lesson.ErrNotFound
	}
	return nil
}

// SearchByStudentID matches the decimal text form of student_id against
// the substring. An empty substring matches every lesson.
func (r *LessonRepository) SearchByStudentID(ctx context.Context, idSubstring string) ([]*lesson.Lesson, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons
		 WHERE CAST(student_id AS TEXT) LIKE '%' || ? || '%'
		 ORDER BY id`, idSubstring,
	)
	if err != nil {
		return nil, storeErr("lesson", "SearchByStudentID", err)
	}
	return collectLessons(rows, "SearchByStudentID")
}

// ListByStudent returns the student's lessons in insertion (id) order,
// which is the order the progress fold depends on.
func (r *LessonRepository) ListByStudent(ctx context.Context, studentID student.ID) ([]*lesson.Lesson, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, student_id, student_name, instructor_id, instructor_name, lesson_type, date, status
		 FROM lessons WHERE student_id = ? ORDER BY id`, int64(studentID),
	)
	if err != nil {
		return nil, storeErr("lesson", "ListByStudent", err)
	}
	return collectLessons(rows, "ListByStudent")
}

// ListAll returns every lesson in id order.
func (r *LessonRepository) ListAll(ctx context.Context) ([]*lesson.Lesson, error) {
	rows, err := r.store.db.QueryContext(ctx,
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
	err := r.store.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM lessons WHERE status = ?`, string(status),
	).Scan(&n)
	if err != nil {
		return 0, storeErr("lesson", "CountByStatus", err)
	}
	return n, nil
}

func collectLessons(rows *sql.Rows, op string) ([]*lesson.Lesson, error) {
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

func scanLesson(row interface{ Scan(dest ...any) error }) (*lesson.Lesson, error) {
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
