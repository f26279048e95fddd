package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// PaymentRepository implements payment.Repository for SQLite.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

// Create inserts the payment and assigns the store-generated id.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO payments (student_id, amount, payment_date)
		 VALUES (?, ?, ?)`,
		int64(p.StudentID), p.Amount, p.Date,
	)
	if err != nil {
		return storeErr("payment", "Create", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return storeErr("payment", "Create", err)
	}
	p.ID = payment.ID(id)

	return nil
}

// GetByID returns the payment with the given id.
func (r *PaymentRepository) GetByID(ctx context.Context, id payment.ID) (*payment.Payment, error) {
	row := r.store.db.QueryRowContext(ctx,
		`SELECT id, student_id, amount, payment_date
		 FROM payments WHERE id = ?`, int64(id),
	)

	var p payment.Payment
	err := row.Scan(&p.ID, &p.StudentID, &p.Amount, &p.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, payment.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("payment", "Get", err)
	}
	return &p, nil
}

// ListByStudent returns the student's payments in insertion order.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID student.ID) ([]*payment.Payment, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, student_id, amount, payment_date
		 FROM payments WHERE student_id = ? ORDER BY id`, int64(studentID),
	)
	if err != nil {
		return nil, storeErr("payment", "ListByStudent", err)
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &p.Date); err != nil {
			return nil, storeErr("payment", "ListByStudent", err)
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("payment", "ListByStudent", err)
	}
	return payments, nil
}

// Delete removes the payment.
func (r *PaymentRepository) Delete(ctx context.Context, id payment.ID) error {
	res, err := r.store.db.ExecContext(ctx,
		`DELETE FROM payments WHERE id = ?`, int64(id),
	)
	if err != nil {
		return storeErr("payment", "Delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr("payment", "Delete", err)
	}
	if affected == 0 {
		return payment.ErrNotFound
	}
	return nil
}
