package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vkozyrev/fintrack/internal/domain"
	"github.com/vkozyrev/fintrack/internal/usecase"
)

const selectGoalSQL = `
SELECT id, name, target, accumulated, created_at, updated_at
FROM savings_goals`

// GoalRepository implements usecase.GoalRepository.
type GoalRepository struct {
	conn dbConn
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return newGoalRepositoryWithConn(pool)
}

func newGoalRepositoryWithConn(conn dbConn) *GoalRepository {
	return &GoalRepository{conn: conn}
}

// Create persists a new savings goal.
func (r *GoalRepository) Create(ctx context.Context, g *domain.SavingsGoal) error {
	_, err := r.conn.Exec(ctx, `
INSERT INTO savings_goals (id, name, target, accumulated, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID,
		g.Name,
		decimalToNumeric(g.Target),
		decimalToNumeric(g.Accumulated),
		timeToPgTimestamptz(g.CreatedAt),
		timeToPgTimestamptz(g.UpdatedAt),
	)

	return err
}

// GetByID retrieves a goal by ID.
func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.SavingsGoal, error) {
	row := r.conn.QueryRow(ctx, selectGoalSQL+" WHERE id = $1", id)

	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}

		return nil, err
	}

	return g, nil
}

// List retrieves all savings goals, oldest first.
func (r *GoalRepository) List(ctx context.Context) ([]*domain.SavingsGoal, error) {
	rows, err := r.conn.Query(ctx, selectGoalSQL+" ORDER BY created_at, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.SavingsGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}

		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// UpdateAccumulated sets a goal's accumulated amount inside a database
// transaction, alongside the contribution's expense row.
func (r *GoalRepository) UpdateAccumulated(ctx context.Context, tx usecase.Tx, id string, accumulated decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, "UPDATE savings_goals SET accumulated = $2, updated_at = $3 WHERE id = $1",
		id, decimalToNumeric(accumulated), timeToPgTimestamptz(updatedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

func scanGoal(row pgx.Row) (*domain.SavingsGoal, error) {
	var (
		g           domain.SavingsGoal
		target      pgtype.Numeric
		accumulated pgtype.Numeric
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(&g.ID, &g.Name, &target, &accumulated, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	g.Target = numericToDecimal(target)
	g.Accumulated = numericToDecimal(accumulated)
	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return &g, nil
}
