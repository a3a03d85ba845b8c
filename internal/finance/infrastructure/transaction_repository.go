package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/PersonalLedger/internal/dbx"
	"github.com/sebuszqo/PersonalLedger/internal/finance/domain"
)

const transactionColumns = `
	t.id, t.title, t.amount, t.type, t.date, t.user_id, t.category_id, t.created_at, t.updated_at,
	c.id, c.name, c.user_id, c.created_at, c.updated_at`

type TransactionRepository struct {
	db *sql.DB
	q  dbx.DBTX
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db, q: db}
}

func (r *TransactionRepository) InTx(ctx context.Context, fn func(repo domain.TransactionRepository) error) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(&TransactionRepository{db: r.db, q: tx})
	})
}

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, title, amount, type, date, user_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.q.QueryRowContext(ctx, query,
		transaction.ID, transaction.Title, int64(transaction.Amount), transaction.Type,
		transaction.Date, transaction.UserID, transaction.CategoryID,
	).Scan(&transaction.CreatedAt, &transaction.UpdatedAt)
}

// FindByUser composes the recognized filters with AND on top of the owner
// scope and returns transactions newest-first with the category joined.
func (r *TransactionRepository) FindByUser(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1`
	args := []interface{}{userID}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND t.category_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND t.type = $%d", len(args))
	}
	if filter.HasDateRange() {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND t.date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND t.date <= $%d", len(args))
	}

	query += " ORDER BY t.date DESC"

	if filter.HasPagination() {
		args = append(args, filter.PageSize)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, (filter.Page-1)*filter.PageSize)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	return r.findByID(ctx, id, "")
}

// FindByIDForUpdate locks the transaction row only; the joined category row
// stays unlocked.
func (r *TransactionRepository) FindByIDForUpdate(ctx context.Context, id string) (*domain.Transaction, error) {
	return r.findByID(ctx, id, " FOR UPDATE OF t")
}

func (r *TransactionRepository) findByID(ctx context.Context, id, suffix string) (*domain.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = $1` + suffix

	transaction, err := scanTransaction(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return transaction, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE transactions SET title = $1, amount = $2, type = $3, date = $4, category_id = $5, updated_at = NOW() WHERE id = $6`,
		transaction.Title, int64(transaction.Amount), transaction.Type, transaction.Date,
		transaction.CategoryID, transaction.ID)
	return err
}

func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var category domain.Category
	var amount int64
	err := row.Scan(
		&transaction.ID, &transaction.Title, &amount, &transaction.Type, &transaction.Date,
		&transaction.UserID, &transaction.CategoryID, &transaction.CreatedAt, &transaction.UpdatedAt,
		&category.ID, &category.Name, &category.UserID, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	transaction.Amount = domain.Cents(amount)
	transaction.Category = &category
	return &transaction, nil
}
