package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkozyrev/fintrack/internal/domain"
)

const selectDebtSQL = `
SELECT id, counterparty, direction, amount, due_date, paid, created_at, updated_at
FROM debts`

// DebtRepository implements usecase.DebtRepository.
type DebtRepository struct {
	conn dbConn
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return newDebtRepositoryWithConn(pool)
}

func newDebtRepositoryWithConn(conn dbConn) *DebtRepository {
	return &DebtRepository{conn: conn}
}

// Create persists a new debt.
func (r *DebtRepository) Create(ctx context.Context, d *domain.Debt) error {
	_, err := r.conn.Exec(ctx, `
INSERT INTO debts (id, counterparty, direction, amount, due_date, paid, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID,
		d.Counterparty,
		string(d.Direction),
		decimalToNumeric(d.Amount),
		timePtrToPgTimestamptz(d.DueDate),
		d.Paid,
		timeToPgTimestamptz(d.CreatedAt),
		timeToPgTimestamptz(d.UpdatedAt),
	)

	return err
}

// GetByID retrieves a debt by ID.
func (r *DebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	row := r.conn.QueryRow(ctx, selectDebtSQL+" WHERE id = $1", id)

	d, err := scanDebt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}

		return nil, err
	}

	return d, nil
}

// List retrieves all debts, oldest first.
func (r *DebtRepository) List(ctx context.Context) ([]*domain.Debt, error) {
	rows, err := r.conn.Query(ctx, selectDebtSQL+" ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []*domain.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}

		debts = append(debts, d)
	}

	return debts, rows.Err()
}

// SetPaid marks a debt as paid.
func (r *DebtRepository) SetPaid(ctx context.Context, id string, updatedAt time.Time) error {
	tag, err := r.conn.Exec(ctx, "UPDATE debts SET paid = TRUE, updated_at = $2 WHERE id = $1",
		id, timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrDebtNotFound
	}

	return nil
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var (
		d         domain.Debt
		direction string
		amount    pgtype.Numeric
		dueDate   pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&d.ID, &d.Counterparty, &direction, &amount, &dueDate, &d.Paid, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	d.Direction = domain.DebtDirection(direction)
	d.Amount = numericToDecimal(amount)
	d.DueDate = pgTimestamptzToTimePtr(dueDate)
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}
