package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/passit-driving/school-hub/internal/domain/payment"
	"github.com/passit-driving/school-hub/internal/domain/student"
)

// PaymentRepository implements payment.Repository for PostgreSQL.
type PaymentRepository struct {
	conn *Connection
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(conn *Connection) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// Create inserts the payment and assigns the store-generated id.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	var id int64
	err := r.conn.QueryRow(ctx,
		`INSERT INTO payments (student_id, amount, payment_date)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		int64(p.StudentID), p.Amount, p.Date,
	).Scan(&id)
	if err != nil {
		return storeErr("payment", "Create", err)
	}

	p.ID = payment.ID(id)
	return nil
}

// GetByID returns the payment with the given id.
func (r *PaymentRepository) GetByID(ctx context.Context, id payment.ID) (*payment.Payment, error) {
	var p payment.Payment
	err := r.conn.QueryRow(ctx,
		`SELECT id, student_id, amount, payment_date
		 FROM payments WHERE id = $1`, int64(id),
	).Scan(&p.ID, &p.StudentID, &p.Amount, &p.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, payment.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("payment", "Get", err)
	}
	return &p, nil
}

// ListByStudent returns the student's payments in insertion order.
func (r *PaymentRepository) ListByStudent(ctx context.Context, studentID student.ID) ([]*payment.Payment, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, student_id, amount, payment_date
		 FROM payments WHERE student_id = $1 ORDER BY id`, int64(studentID),
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
	tag, err := r.conn.Exec(ctx, `DELETE FROM payments WHERE id = $1`, int64(id))
	if err != nil {
		return storeErr("payment", "Delete", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrNotFound
	}
	return nil
}
