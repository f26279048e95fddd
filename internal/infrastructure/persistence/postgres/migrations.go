package postgres

import (
	"context"
	"fmt"

	"github.com/passit-driving/school-hub/internal/domain/shared"
)

// schema creates the four tables. Creation is idempotent: repeat
// invocations neither fail nor touch existing data. No foreign key
// constraints are declared: references are soft, matching the sqlite
// store, and a delete never cascades or blocks.
const schema = `
CREATE TABLE IF NOT EXISTS students (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    phone TEXT NOT NULL,
    progress TEXT NOT NULL,
    payment_status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS instructors (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    phone TEXT NOT NULL,
    email TEXT NOT NULL,
    instructor_type TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS lessons (
    id BIGSERIAL PRIMARY KEY,
    student_id BIGINT NOT NULL,
    student_name TEXT NOT NULL,
    instructor_id BIGINT NOT NULL,
    instructor_name TEXT NOT NULL,
    lesson_type TEXT NOT NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lessons_student_id ON lessons(student_id);
CREATE INDEX IF NOT EXISTS idx_lessons_status ON lessons(status);

CREATE TABLE IF NOT EXISTS payments (
    id BIGSERIAL PRIMARY KEY,
    student_id BIGINT NOT NULL,
    amount BIGINT NOT NULL,
    payment_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id);
`

// Migrate applies the schema.
func (c *Connection) Migrate(ctx context.Context) error {
	if _, err := c.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to apply schema: %w", err)
	}
	return nil
}

// storeErr wraps an underlying database failure with its cause attached.
func storeErr(domain, op string, err error) error {
	return shared.WrapError(domain, op, shared.ErrStore, "storage operation failed", err)
}
