package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

const insertTransactionSQL = `
INSERT INTO transactions (id, account_id, amount, occurred_at, description, category, recurrence_days, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const selectTransactionSQL = `
SELECT id, account_id, amount, occurred_at, description, category, recurrence_days, created_at
FROM transactions`

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	conn dbConn
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return newTransactionRepositoryWithConn(pool)
}

func newTransactionRepositoryWithConn(conn dbConn) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create appends a transaction to the log.
func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	return insertTransaction(ctx, r.conn, t)
}

// CreateTx appends a transaction to the log inside a database transaction.
func (r *TransactionRepository) CreateTx(ctx context.Context, tx usecase.Tx, t *domain.Transaction) error {
	return insertTransaction(ctx, tx.(*Tx).PgxTx(), t)
}

func insertTransaction(ctx context.Context, conn dbConn, t *domain.Transaction) error {
	_, err := conn.Exec(ctx, insertTransactionSQL,
		t.ID,
		t.AccountID,
		decimalToNumeric(t.Amount),
		timeToPgTimestamptz(t.OccurredAt),
		t.Description,
		t.Category,
		int32(t.RecurrenceDays),
		timeToPgTimestamptz(t.CreatedAt),
	)

	return err
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx, selectTransactionSQL+" WHERE id = $1", id)

	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return t, nil
}

// ListByAccount retrieves an account's transactions in chronological order.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Transaction, error) {
	rows, err := r.conn.Query(ctx, selectTransactionSQL+" WHERE account_id = $1 ORDER BY occurred_at, created_at, id", accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txs = append(txs, t)
	}

	return txs, rows.Err()
}

// ListAccountIDs retrieves the distinct account IDs present in the log.
func (r *TransactionRepository) ListAccountIDs(ctx context.Context) ([]string, error) {
	rows, err := r.conn.Query(ctx, "SELECT DISTINCT account_id FROM transactions ORDER BY account_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// SumByAccount folds an account's stored amounts into a single balance.
func (r *TransactionRepository) SumByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var sum pgtype.Numeric

	row := r.conn.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE account_id = $1", accountID)
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// Delete removes a transaction from the log.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.conn.Exec(ctx, "DELETE FROM transactions WHERE id = $1", id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t              domain.Transaction
		amount         pgtype.Numeric
		occurredAt     pgtype.Timestamptz
		createdAt      pgtype.Timestamptz
		recurrenceDays int32
	)

	err := row.Scan(&t.ID, &t.AccountID, &amount, &occurredAt, &t.Description, &t.Category, &recurrenceDays, &createdAt)
	if err != nil {
		return nil, err
	}

	t.Amount = numericToDecimal(amount)
	t.OccurredAt = occurredAt.Time
	t.CreatedAt = createdAt.Time
	t.RecurrenceDays = int(recurrenceDays)

	return &t, nil
}
